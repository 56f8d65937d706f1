package inventory

import (
	"log"
	"strings"

	"github.com/Natemerkl/yegna-inventory-hub/internal/audit"
	"github.com/Natemerkl/yegna-inventory-hub/internal/auth"
	"github.com/Natemerkl/yegna-inventory-hub/internal/database"
	"github.com/Natemerkl/yegna-inventory-hub/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateItemRequest struct {
	ProductName string  `json:"product_name"`
	SKU         string  `json:"sku"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	CostPrice   float64 `json:"cost_price"`
}

type UpdateItemRequest struct {
	ProductName *string  `json:"product_name"`
	SKU         *string  `json:"sku"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"image_url"`
	Quantity    *int     `json:"quantity"`
	Price       *float64 `json:"price"`
	CostPrice   *float64 `json:"cost_price"`
}

// GET /api/inventory?category=...&search=...
func ListItemsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := auth.ProfileID(c)
		if err != nil {
			return err
		}

		dbq := database.DB.Model(&models.InventoryItem{}).
			Where("profile_id = ?", profileID)

		if category := c.Query("category"); category != "" {
			dbq = dbq.Where("category = ?", category)
		}
		if search := strings.TrimSpace(c.Query("search")); search != "" {
			like := "%" + search + "%"
			dbq = dbq.Where("product_name ILIKE ? OR sku ILIKE ?", like, like)
		}

		var items []models.InventoryItem
		if err := dbq.Order("created_at desc").Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list inventory")
		}

		return c.JSON(items)
	}
}

// GET /api/inventory/:id
func GetItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := auth.ProfileID(c)
		if err != nil {
			return err
		}
		id := c.Params("id")

		var item models.InventoryItem
		if err := database.DB.First(&item, "id = ? AND profile_id = ?", id, profileID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Inventory item not found")
		}

		return c.JSON(item)
	}
}

// POST /api/inventory
func CreateItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := auth.ProfileID(c)
		if err != nil {
			return err
		}

		var body CreateItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.ProductName = strings.TrimSpace(body.ProductName)
		if body.ProductName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Product name is required")
		}
		if body.Quantity < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Quantity must not be negative")
		}
		if body.Price < 0 || body.CostPrice < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Prices must not be negative")
		}

		item := models.InventoryItem{
			ProductName: body.ProductName,
			SKU:         strings.TrimSpace(body.SKU),
			Category:    strings.TrimSpace(body.Category),
			Description: body.Description,
			ImageURL:    body.ImageURL,
			Quantity:    body.Quantity,
			Price:       body.Price,
			CostPrice:   body.CostPrice,
			ProfileID:   profileID,
		}

		if err := database.DB.Create(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create inventory item")
		}

		if err := audit.WriteLog(audit.LogOptions{
			ProfileID:   profileID,
			UserName:    auth.UserName(c),
			EntityType:  "inventory_item",
			EntityID:    item.ID,
			Action:      models.AuditActionCreate,
			Description: "Added product " + item.ProductName,
			After:       item,
		}); err != nil {
			log.Println("audit:", err)
		}

		return c.Status(fiber.StatusCreated).JSON(item)
	}
}

// PUT /api/inventory/:id
func UpdateItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := auth.ProfileID(c)
		if err != nil {
			return err
		}
		id := c.Params("id")

		var item models.InventoryItem
		if err := database.DB.First(&item, "id = ? AND profile_id = ?", id, profileID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Inventory item not found")
		}
		before := item

		var body UpdateItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.ProductName != nil {
			name := strings.TrimSpace(*body.ProductName)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Product name must not be empty")
			}
			item.ProductName = name
		}
		if body.SKU != nil {
			item.SKU = strings.TrimSpace(*body.SKU)
		}
		if body.Category != nil {
			item.Category = strings.TrimSpace(*body.Category)
		}
		if body.Description != nil {
			item.Description = *body.Description
		}
		if body.ImageURL != nil {
			item.ImageURL = *body.ImageURL
		}
		if body.Quantity != nil {
			if *body.Quantity < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Quantity must not be negative")
			}
			item.Quantity = *body.Quantity
		}
		if body.Price != nil {
			if *body.Price < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Price must not be negative")
			}
			item.Price = *body.Price
		}
		if body.CostPrice != nil {
			if *body.CostPrice < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Cost price must not be negative")
			}
			item.CostPrice = *body.CostPrice
		}

		if err := database.DB.Save(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update inventory item")
		}

		if err := audit.WriteLog(audit.LogOptions{
			ProfileID:   profileID,
			UserName:    auth.UserName(c),
			EntityType:  "inventory_item",
			EntityID:    item.ID,
			Action:      models.AuditActionUpdate,
			Description: "Updated product " + item.ProductName,
			Before:      before,
			After:       item,
		}); err != nil {
			log.Println("audit:", err)
		}

		return c.JSON(item)
	}
}

// DELETE /api/inventory/:id
//
// Existing sales keep their inventory_id after deletion; the sales ledger
// is history and is never cascaded.
func DeleteItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := auth.ProfileID(c)
		if err != nil {
			return err
		}
		id := c.Params("id")

		var item models.InventoryItem
		if err := database.DB.First(&item, "id = ? AND profile_id = ?", id, profileID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Inventory item not found")
		}

		if err := database.DB.Delete(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete inventory item")
		}

		if err := audit.WriteLog(audit.LogOptions{
			ProfileID:   profileID,
			UserName:    auth.UserName(c),
			EntityType:  "inventory_item",
			EntityID:    item.ID,
			Action:      models.AuditActionDelete,
			Description: "Deleted product " + item.ProductName,
			Before:      item,
		}); err != nil {
			log.Println("audit:", err)
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
