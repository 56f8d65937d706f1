package orders

import (
	"strings"

	"github.com/Natemerkl/yegna-inventory-hub/internal/auth"
	"github.com/Natemerkl/yegna-inventory-hub/internal/database"
	"github.com/Natemerkl/yegna-inventory-hub/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateOrderRequest struct {
	Reference      string  `json:"reference"`
	CustomerName   string  `json:"customer_name"`
	Items          int     `json:"items"`
	Amount         float64 `json:"amount"`
	PaymentStatus  string  `json:"payment_status"`
	ReceivedStatus string  `json:"received_status"`
}

type UpdateOrderRequest struct {
	Reference      *string  `json:"reference"`
	CustomerName   *string  `json:"customer_name"`
	Items          *int     `json:"items"`
	Amount         *float64 `json:"amount"`
	PaymentStatus  *string  `json:"payment_status"`
	ReceivedStatus *string  `json:"received_status"`
}

// OrderStats feeds the stat cards at the top of the orders page.
type OrderStats struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in_progress"`
	Delivered  int64 `json:"delivered"`
	Failed     int64 `json:"failed"`
}

func validPaymentStatus(s models.PaymentStatus) bool {
	switch s {
	case models.PaymentStatusPaid, models.PaymentStatusCOD, models.PaymentStatusPending:
		return true
	}
	return false
}

func validReceivedStatus(s models.ReceivedStatus) bool {
	switch s {
	case models.ReceivedStatusDelivered, models.ReceivedStatusInProgress,
		models.ReceivedStatusFailed, models.ReceivedStatusPending:
		return true
	}
	return false
}

// GET /api/orders?received_status=delivered
func ListOrdersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := auth.ProfileID(c)
		if err != nil {
			return err
		}

		dbq := database.DB.Model(&models.Order{}).Where("profile_id = ?", profileID)
		if status := c.Query("received_status"); status != "" {
			dbq = dbq.Where("received_status = ?", status)
		}
		if status := c.Query("payment_status"); status != "" {
			dbq = dbq.Where("payment_status = ?", status)
		}

		var orders []models.Order
		if err := dbq.Order("created_at desc").Find(&orders).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list orders")
		}

		return c.JSON(orders)
	}
}

// GET /api/orders/stats
func OrderStatsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := auth.ProfileID(c)
		if err != nil {
			return err
		}

		var stats OrderStats

		countWhere := func(dst *int64, query string, args ...interface{}) error {
			dbq := database.DB.Model(&models.Order{}).Where("profile_id = ?", profileID)
			if query != "" {
				dbq = dbq.Where(query, args...)
			}
			return dbq.Count(dst).Error
		}

		if err := countWhere(&stats.Total, ""); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not count orders")
		}
		if err := countWhere(&stats.Pending, "received_status = ?", models.ReceivedStatusPending); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not count orders")
		}
		if err := countWhere(&stats.InProgress, "received_status = ?", models.ReceivedStatusInProgress); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not count orders")
		}
		if err := countWhere(&stats.Delivered, "received_status = ?", models.ReceivedStatusDelivered); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not count orders")
		}
		if err := countWhere(&stats.Failed, "received_status = ?", models.ReceivedStatusFailed); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not count orders")
		}

		return c.JSON(stats)
	}
}

// GET /api/orders/:id
func GetOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := auth.ProfileID(c)
		if err != nil {
			return err
		}

		var order models.Order
		if err := database.DB.First(&order, "id = ? AND profile_id = ?", c.Params("id"), profileID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Order not found")
		}

		return c.JSON(order)
	}
}

// POST /api/orders
func CreateOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := auth.ProfileID(c)
		if err != nil {
			return err
		}

		var body CreateOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.CustomerName = strings.TrimSpace(body.CustomerName)
		if body.CustomerName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Customer name is required")
		}
		if body.Items < 0 || body.Amount < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Items and amount must not be negative")
		}

		order := models.Order{
			Reference:      strings.TrimSpace(body.Reference),
			CustomerName:   body.CustomerName,
			Items:          body.Items,
			Amount:         body.Amount,
			PaymentStatus:  models.PaymentStatusPending,
			ReceivedStatus: models.ReceivedStatusPending,
			ProfileID:      profileID,
		}

		if body.PaymentStatus != "" {
			status := models.PaymentStatus(body.PaymentStatus)
			if !validPaymentStatus(status) {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid payment status")
			}
			order.PaymentStatus = status
		}
		if body.ReceivedStatus != "" {
			status := models.ReceivedStatus(body.ReceivedStatus)
			if !validReceivedStatus(status) {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid received status")
			}
			order.ReceivedStatus = status
		}

		if err := database.DB.Create(&order).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create order")
		}

		return c.Status(fiber.StatusCreated).JSON(order)
	}
}

// PUT /api/orders/:id
func UpdateOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := auth.ProfileID(c)
		if err != nil {
			return err
		}

		var order models.Order
		if err := database.DB.First(&order, "id = ? AND profile_id = ?", c.Params("id"), profileID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Order not found")
		}

		var body UpdateOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.CustomerName != nil {
			name := strings.TrimSpace(*body.CustomerName)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Customer name must not be empty")
			}
			order.CustomerName = name
		}
		if body.Reference != nil {
			order.Reference = strings.TrimSpace(*body.Reference)
		}
		if body.Items != nil {
			if *body.Items < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Items must not be negative")
			}
			order.Items = *body.Items
		}
		if body.Amount != nil {
			if *body.Amount < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Amount must not be negative")
			}
			order.Amount = *body.Amount
		}
		if body.PaymentStatus != nil {
			status := models.PaymentStatus(*body.PaymentStatus)
			if !validPaymentStatus(status) {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid payment status")
			}
			order.PaymentStatus = status
		}
		if body.ReceivedStatus != nil {
			status := models.ReceivedStatus(*body.ReceivedStatus)
			if !validReceivedStatus(status) {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid received status")
			}
			order.ReceivedStatus = status
		}

		if err := database.DB.Save(&order).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update order")
		}

		return c.JSON(order)
	}
}

// DELETE /api/orders/:id
func DeleteOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := auth.ProfileID(c)
		if err != nil {
			return err
		}

		if err := database.DB.
			Where("id = ? AND profile_id = ?", c.Params("id"), profileID).
			Delete(&models.Order{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete order")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
