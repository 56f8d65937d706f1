package customers

import (
	"strings"
	"time"

	"github.com/Natemerkl/yegna-inventory-hub/internal/auth"
	"github.com/Natemerkl/yegna-inventory-hub/internal/database"
	"github.com/Natemerkl/yegna-inventory-hub/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateCustomerRequest struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	TotalAmount   float64 `json:"total_amount"`
	AmountDue     float64 `json:"amount_due"`
	DueDate       string  `json:"due_date"` // RFC 3339, optional
	PaymentMethod string  `json:"payment_method"`
	Status        string  `json:"status"`
}

type UpdateCustomerRequest struct {
	Name          *string  `json:"name"`
	Email         *string  `json:"email"`
	TotalAmount   *float64 `json:"total_amount"`
	AmountDue     *float64 `json:"amount_due"`
	DueDate       *string  `json:"due_date"`
	PaymentMethod *string  `json:"payment_method"`
	Status        *string  `json:"status"`
}

func parseDueDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GET /api/customers
func ListCustomersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := auth.ProfileID(c)
		if err != nil {
			return err
		}

		dbq := database.DB.Model(&models.Customer{}).Where("profile_id = ?", profileID)
		if search := strings.TrimSpace(c.Query("search")); search != "" {
			like := "%" + search + "%"
			dbq = dbq.Where("name ILIKE ? OR email ILIKE ?", like, like)
		}

		var customers []models.Customer
		if err := dbq.Order("name asc").Find(&customers).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list customers")
		}

		return c.JSON(customers)
	}
}

// GET /api/customers/:id
func GetCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := auth.ProfileID(c)
		if err != nil {
			return err
		}

		var customer models.Customer
		if err := database.DB.First(&customer, "id = ? AND profile_id = ?", c.Params("id"), profileID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Customer not found")
		}

		return c.JSON(customer)
	}
}

// POST /api/customers
func CreateCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := auth.ProfileID(c)
		if err != nil {
			return err
		}

		var body CreateCustomerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Customer name is required")
		}

		dueDate, err := parseDueDate(body.DueDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "due_date must be RFC 3339")
		}

		customer := models.Customer{
			Name:          body.Name,
			Email:         strings.TrimSpace(strings.ToLower(body.Email)),
			TotalAmount:   body.TotalAmount,
			AmountDue:     body.AmountDue,
			DueDate:       dueDate,
			PaymentMethod: strings.TrimSpace(body.PaymentMethod),
			Status:        "active",
			ProfileID:     profileID,
		}
		if body.Status != "" {
			customer.Status = body.Status
		}

		if err := database.DB.Create(&customer).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create customer")
		}

		return c.Status(fiber.StatusCreated).JSON(customer)
	}
}

// PUT /api/customers/:id
func UpdateCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := auth.ProfileID(c)
		if err != nil {
			return err
		}

		var customer models.Customer
		if err := database.DB.First(&customer, "id = ? AND profile_id = ?", c.Params("id"), profileID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Customer not found")
		}

		var body UpdateCustomerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Customer name must not be empty")
			}
			customer.Name = name
		}
		if body.Email != nil {
			customer.Email = strings.TrimSpace(strings.ToLower(*body.Email))
		}
		if body.TotalAmount != nil {
			customer.TotalAmount = *body.TotalAmount
		}
		if body.AmountDue != nil {
			customer.AmountDue = *body.AmountDue
		}
		if body.DueDate != nil {
			dueDate, err := parseDueDate(*body.DueDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "due_date must be RFC 3339")
			}
			customer.DueDate = dueDate
		}
		if body.PaymentMethod != nil {
			customer.PaymentMethod = strings.TrimSpace(*body.PaymentMethod)
		}
		if body.Status != nil {
			customer.Status = *body.Status
		}

		if err := database.DB.Save(&customer).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update customer")
		}

		return c.JSON(customer)
	}
}

// DELETE /api/customers/:id
func DeleteCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := auth.ProfileID(c)
		if err != nil {
			return err
		}

		if err := database.DB.
			Where("id = ? AND profile_id = ?", c.Params("id"), profileID).
			Delete(&models.Customer{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete customer")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
