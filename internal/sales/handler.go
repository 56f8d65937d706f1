package sales

import (
	"errors"
	"fmt"
	"log"

	"github.com/Natemerkl/yegna-inventory-hub/internal/audit"
	"github.com/Natemerkl/yegna-inventory-hub/internal/auth"
	"github.com/Natemerkl/yegna-inventory-hub/internal/database"
	"github.com/Natemerkl/yegna-inventory-hub/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SaleResponse is a sale joined with its product for display; ProductName
// and SKU are empty when the inventory item was deleted after the sale.
type SaleResponse struct {
	models.Sale
	ProductName string `json:"product_name"`
	SKU         string `json:"sku"`
}

// POST /api/sales
func RecordSaleHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := auth.ProfileID(c)
		if err != nil {
			return err
		}

		var req RecordRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		sale, err := svc.Record(c.Context(), profileID, req)
		if err != nil {
			var insufficient *InsufficientStockError
			switch {
			case errors.As(err, &insufficient):
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{
					"error":     "Not enough items in stock",
					"available": insufficient.Available,
				})
			case errors.Is(err, ErrNotFound):
				return fiber.NewError(fiber.StatusNotFound, "Inventory item not found")
			case errors.Is(err, ErrInvalidArgument):
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			case errors.Is(err, ErrStorageUnavailable):
				return fiber.NewError(fiber.StatusServiceUnavailable, "Storage temporarily unavailable, retry later")
			default:
				return err
			}
		}

		if err := audit.WriteLog(audit.LogOptions{
			ProfileID:   profileID,
			UserName:    auth.UserName(c),
			EntityType:  "sale",
			EntityID:    sale.ID,
			Action:      models.AuditActionSale,
			Description: fmt.Sprintf("Sold %d x inventory %s", sale.QuantitySold, sale.InventoryID),
			After:       sale,
		}); err != nil {
			log.Println("audit:", err)
		}

		return c.Status(fiber.StatusCreated).JSON(sale)
	}
}

// GET /api/sales
func ListSalesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := auth.ProfileID(c)
		if err != nil {
			return err
		}

		var results []SaleResponse
		err = database.DB.Model(&models.Sale{}).
			Select("sales.*, inventory_items.product_name AS product_name, inventory_items.sku AS sku").
			Joins("LEFT JOIN inventory_items ON inventory_items.id = sales.inventory_id").
			Where("sales.profile_id = ?", profileID).
			Order("sales.sale_date desc").
			Scan(&results).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list sales")
		}

		return c.JSON(results)
	}
}

// GET /api/sales/:id
func GetSaleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := auth.ProfileID(c)
		if err != nil {
			return err
		}
		id := c.Params("id")

		var result SaleResponse
		err = database.DB.Model(&models.Sale{}).
			Select("sales.*, inventory_items.product_name AS product_name, inventory_items.sku AS sku").
			Joins("LEFT JOIN inventory_items ON inventory_items.id = sales.inventory_id").
			Where("sales.id = ? AND sales.profile_id = ?", id, profileID).
			Scan(&result).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch sale")
		}
		if result.ID == "" {
			return fiber.NewError(fiber.StatusNotFound, "Sale not found")
		}

		return c.JSON(result)
	}
}

// GET /api/inventory/:id/sales
func ListSalesByInventoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := auth.ProfileID(c)
		if err != nil {
			return err
		}
		inventoryID := c.Params("id")

		var sales []models.Sale
		err = database.DB.
			Where("inventory_id = ? AND profile_id = ?", inventoryID, profileID).
			Order("sale_date desc").
			Find(&sales).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list sales")
		}

		return c.JSON(sales)
	}
}
