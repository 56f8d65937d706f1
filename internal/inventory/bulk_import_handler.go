package inventory

import (
	"log"

	"github.com/Natemerkl/yegna-inventory-hub/internal/audit"
	"github.com/Natemerkl/yegna-inventory-hub/internal/auth"
	"github.com/Natemerkl/yegna-inventory-hub/internal/database"
	"github.com/Natemerkl/yegna-inventory-hub/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// POST /api/inventory/import  (multipart form, field "file", .xlsx)
func BulkImportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := auth.ProfileID(c)
		if err != nil {
			return err
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "An .xlsx file upload named 'file' is required")
		}

		file, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Could not open uploaded file")
		}
		defer file.Close()

		excelFile, err := excelize.OpenReader(file)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Could not read Excel file: "+err.Error())
		}
		defer excelFile.Close()

		sheetList := excelFile.GetSheetList()
		if len(sheetList) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Excel file has no sheets")
		}

		rows, err := excelFile.GetRows(sheetList[0])
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Could not read sheet: "+err.Error())
		}
		if len(rows) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Excel file is empty")
		}

		items, result := parseRows(rows, profileID)

		if len(items) > 0 {
			if err := database.DB.Create(&items).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not save imported products")
			}

			for _, item := range items {
				if err := audit.WriteLog(audit.LogOptions{
					ProfileID:   profileID,
					UserName:    auth.UserName(c),
					EntityType:  "inventory_item",
					EntityID:    item.ID,
					Action:      models.AuditActionCreate,
					Description: "Imported product " + item.ProductName,
					After:       item,
				}); err != nil {
					log.Println("audit:", err)
				}
			}
		}

		log.Printf("Bulk import for profile %s: %d imported, %d skipped", profileID, result.Imported, result.Skipped)

		return c.JSON(result)
	}
}
