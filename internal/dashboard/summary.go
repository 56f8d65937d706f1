package dashboard

import (
	"time"

	"github.com/Natemerkl/yegna-inventory-hub/internal/auth"
	"github.com/Natemerkl/yegna-inventory-hub/internal/database"
	"github.com/Natemerkl/yegna-inventory-hub/internal/models"

	"github.com/gofiber/fiber/v2"
)

type SummaryResponse struct {
	TotalProducts   int64   `json:"total_products"`
	TotalStockUnits int64   `json:"total_stock_units"`
	StockValue      float64 `json:"stock_value"` // sum of quantity * price
	LowStockCount   int64   `json:"low_stock_count"`
	OutOfStockCount int64   `json:"out_of_stock_count"`
	SalesCount30d   int64   `json:"sales_count_30d"`
	Revenue30d      float64 `json:"revenue_30d"`
	OrdersPending   int64   `json:"orders_pending"`
	Customers       int64   `json:"customers"`
}

// Items at or below this quantity count as low stock.
const lowStockThreshold = 5

// GET /api/dashboard/summary
func SummaryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, err := auth.ProfileID(c)
		if err != nil {
			return err
		}

		var res SummaryResponse

		if err := database.DB.Model(&models.InventoryItem{}).
			Where("profile_id = ?", profileID).
			Count(&res.TotalProducts).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not compute summary")
		}

		type stockAgg struct {
			Units int64
			Value float64
		}
		var agg stockAgg
		if err := database.DB.Model(&models.InventoryItem{}).
			Select("COALESCE(SUM(quantity), 0) AS units, COALESCE(SUM(quantity * price), 0) AS value").
			Where("profile_id = ?", profileID).
			Scan(&agg).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not compute summary")
		}
		res.TotalStockUnits = agg.Units
		res.StockValue = agg.Value

		database.DB.Model(&models.InventoryItem{}).
			Where("profile_id = ? AND quantity > 0 AND quantity <= ?", profileID, lowStockThreshold).
			Count(&res.LowStockCount)
		database.DB.Model(&models.InventoryItem{}).
			Where("profile_id = ? AND quantity = 0", profileID).
			Count(&res.OutOfStockCount)

		since := time.Now().AddDate(0, 0, -30)
		type salesAgg struct {
			Count   int64
			Revenue float64
		}
		var sAgg salesAgg
		if err := database.DB.Model(&models.Sale{}).
			Select("COUNT(*) AS count, COALESCE(SUM(quantity_sold * sale_price), 0) AS revenue").
			Where("profile_id = ? AND sale_date >= ?", profileID, since).
			Scan(&sAgg).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not compute summary")
		}
		res.SalesCount30d = sAgg.Count
		res.Revenue30d = sAgg.Revenue

		database.DB.Model(&models.Order{}).
			Where("profile_id = ? AND received_status IN ?", profileID,
				[]models.ReceivedStatus{models.ReceivedStatusPending, models.ReceivedStatusInProgress}).
			Count(&res.OrdersPending)

		database.DB.Model(&models.Customer{}).
			Where("profile_id = ?", profileID).
			Count(&res.Customers)

		return c.JSON(res)
	}
}
