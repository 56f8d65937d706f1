package categories

import (
	"strings"

	"github.com/Natemerkl/yegna-inventory-hub/internal/auth"
	"github.com/Natemerkl/yegna-inventory-hub/internal/database"
	"github.com/Natemerkl/yegna-inventory-hub/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CategoryResponse includes how many inventory items currently use the
// category, for the category cards on the dashboard.
type CategoryResponse struct {
	models.Category
	ProductCount int64 `json:"product_count"`
}

// GET /api/categories
func ListCategoriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := auth.ProfileID(c)
		if err != nil {
			return err
		}

		var categories []models.Category
		if err := database.DB.
			Where("profile_id = ?", profileID).
			Order("name asc").
			Find(&categories).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list categories")
		}

		res := make([]CategoryResponse, 0, len(categories))
		for _, category := range categories {
			var count int64
			database.DB.Model(&models.InventoryItem{}).
				Where("profile_id = ? AND category = ?", profileID, category.Name).
				Count(&count)
			res = append(res, CategoryResponse{Category: category, ProductCount: count})
		}

		return c.JSON(res)
	}
}

// POST /api/categories
func CreateCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := auth.ProfileID(c)
		if err != nil {
			return err
		}

		var body CreateCategoryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Category name is required")
		}

		var count int64
		database.DB.Model(&models.Category{}).
			Where("profile_id = ? AND name = ?", profileID, body.Name).
			Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, "Category already exists")
		}

		category := models.Category{
			Name:        body.Name,
			Description: strings.TrimSpace(body.Description),
			ProfileID:   profileID,
		}

		if err := database.DB.Create(&category).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create category")
		}

		return c.Status(fiber.StatusCreated).JSON(category)
	}
}

// PUT /api/categories/:id
func UpdateCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := auth.ProfileID(c)
		if err != nil {
			return err
		}

		var category models.Category
		if err := database.DB.First(&category, "id = ? AND profile_id = ?", c.Params("id"), profileID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Category not found")
		}

		var body UpdateCategoryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Category name must not be empty")
			}
			category.Name = name
		}
		if body.Description != nil {
			category.Description = strings.TrimSpace(*body.Description)
		}

		if err := database.DB.Save(&category).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update category")
		}

		return c.JSON(category)
	}
}

// DELETE /api/categories/:id
func DeleteCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := auth.ProfileID(c)
		if err != nil {
			return err
		}

		if err := database.DB.
			Where("id = ? AND profile_id = ?", c.Params("id"), profileID).
			Delete(&models.Category{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete category")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
