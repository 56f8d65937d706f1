package audit

import (
	"strconv"

	"github.com/Natemerkl/yegna-inventory-hub/internal/auth"
	"github.com/Natemerkl/yegna-inventory-hub/internal/database"
	"github.com/Natemerkl/yegna-inventory-hub/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /api/audit-logs?entity_type=inventory_item&limit=50
func ListAuditLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := auth.ProfileID(c)
		if err != nil {
			return err
		}

		limit := 50
		if v := c.Query("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
				limit = n
			}
		}

		dbq := database.DB.Model(&models.AuditLog{}).
			Where("profile_id = ?", profileID)

		if entityType := c.Query("entity_type"); entityType != "" {
			dbq = dbq.Where("entity_type = ?", entityType)
		}

		var logs []models.AuditLog
		if err := dbq.Order("created_at desc").Limit(limit).Find(&logs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list audit logs")
		}

		return c.JSON(logs)
	}
}
