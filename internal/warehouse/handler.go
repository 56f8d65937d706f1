package warehouse

import (
	"strings"

	"github.com/Natemerkl/yegna-inventory-hub/internal/auth"
	"github.com/Natemerkl/yegna-inventory-hub/internal/database"
	"github.com/Natemerkl/yegna-inventory-hub/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateWarehouseRequest struct {
	Code           string  `json:"code"`
	Name           string  `json:"name"`
	Location       string  `json:"location"`
	Manager        string  `json:"manager"`
	Contact        string  `json:"contact"`
	StockAvailable int     `json:"stock_available"`
	StockShipping  int     `json:"stock_shipping"`
	Revenue        float64 `json:"revenue"`
}

type UpdateWarehouseRequest struct {
	Code           *string  `json:"code"`
	Name           *string  `json:"name"`
	Location       *string  `json:"location"`
	Manager        *string  `json:"manager"`
	Contact        *string  `json:"contact"`
	StockAvailable *int     `json:"stock_available"`
	StockShipping  *int     `json:"stock_shipping"`
	Revenue        *float64 `json:"revenue"`
}

// GET /api/warehouses
func ListWarehousesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := auth.ProfileID(c)
		if err != nil {
			return err
		}

		var warehouses []models.Warehouse
		if err := database.DB.
			Where("profile_id = ?", profileID).
			Order("code asc").
			Find(&warehouses).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list warehouses")
		}

		return c.JSON(warehouses)
	}
}

// GET /api/warehouses/:id
func GetWarehouseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := auth.ProfileID(c)
		if err != nil {
			return err
		}

		var warehouse models.Warehouse
		if err := database.DB.First(&warehouse, "id = ? AND profile_id = ?", c.Params("id"), profileID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Warehouse not found")
		}

		return c.JSON(warehouse)
	}
}

// POST /api/warehouses
func CreateWarehouseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := auth.ProfileID(c)
		if err != nil {
			return err
		}

		var body CreateWarehouseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Warehouse name is required")
		}
		if body.StockAvailable < 0 || body.StockShipping < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Stock counts must not be negative")
		}

		warehouse := models.Warehouse{
			Code:           strings.TrimSpace(body.Code),
			Name:           body.Name,
			Location:       strings.TrimSpace(body.Location),
			Manager:        strings.TrimSpace(body.Manager),
			Contact:        strings.TrimSpace(body.Contact),
			StockAvailable: body.StockAvailable,
			StockShipping:  body.StockShipping,
			Revenue:        body.Revenue,
			ProfileID:      profileID,
		}

		if err := database.DB.Create(&warehouse).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create warehouse")
		}

		return c.Status(fiber.StatusCreated).JSON(warehouse)
	}
}

// PUT /api/warehouses/:id
func UpdateWarehouseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := auth.ProfileID(c)
		if err != nil {
			return err
		}

		var warehouse models.Warehouse
		if err := database.DB.First(&warehouse, "id = ? AND profile_id = ?", c.Params("id"), profileID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Warehouse not found")
		}

		var body UpdateWarehouseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Warehouse name must not be empty")
			}
			warehouse.Name = name
		}
		if body.Code != nil {
			warehouse.Code = strings.TrimSpace(*body.Code)
		}
		if body.Location != nil {
			warehouse.Location = strings.TrimSpace(*body.Location)
		}
		if body.Manager != nil {
			warehouse.Manager = strings.TrimSpace(*body.Manager)
		}
		if body.Contact != nil {
			warehouse.Contact = strings.TrimSpace(*body.Contact)
		}
		if body.StockAvailable != nil {
			if *body.StockAvailable < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Stock available must not be negative")
			}
			warehouse.StockAvailable = *body.StockAvailable
		}
		if body.StockShipping != nil {
			if *body.StockShipping < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Stock shipping must not be negative")
			}
			warehouse.StockShipping = *body.StockShipping
		}
		if body.Revenue != nil {
			warehouse.Revenue = *body.Revenue
		}

		if err := database.DB.Save(&warehouse).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update warehouse")
		}

		return c.JSON(warehouse)
	}
}

// DELETE /api/warehouses/:id
func DeleteWarehouseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := auth.ProfileID(c)
		if err != nil {
			return err
		}

		if err := database.DB.
			Where("id = ? AND profile_id = ?", c.Params("id"), profileID).
			Delete(&models.Warehouse{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete warehouse")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
