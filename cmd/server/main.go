package main

import (
	"log"
	"strings"

	"github.com/Natemerkl/yegna-inventory-hub/internal/audit"
	"github.com/Natemerkl/yegna-inventory-hub/internal/auth"
	"github.com/Natemerkl/yegna-inventory-hub/internal/categories"
	"github.com/Natemerkl/yegna-inventory-hub/internal/config"
	"github.com/Natemerkl/yegna-inventory-hub/internal/customers"
	"github.com/Natemerkl/yegna-inventory-hub/internal/dashboard"
	"github.com/Natemerkl/yegna-inventory-hub/internal/database"
	"github.com/Natemerkl/yegna-inventory-hub/internal/inventory"
	"github.com/Natemerkl/yegna-inventory-hub/internal/orders"
	"github.com/Natemerkl/yegna-inventory-hub/internal/sales"
	"github.com/Natemerkl/yegna-inventory-hub/internal/warehouse"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	salesService := sales.NewService(sales.NewStore(database.DB))

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	app.Use(recover.New())
	app.Use(logger.New())

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register", auth.RegisterHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Inventory
	protected.Get("/inventory", inventory.ListItemsHandler())
	protected.Post("/inventory", inventory.CreateItemHandler())
	protected.Post("/inventory/import", inventory.BulkImportHandler())
	protected.Get("/inventory/:id", inventory.GetItemHandler())
	protected.Put("/inventory/:id", inventory.UpdateItemHandler())
	protected.Delete("/inventory/:id", inventory.DeleteItemHandler())
	protected.Get("/inventory/:id/sales", sales.ListSalesByInventoryHandler())

	// Sales ledger
	protected.Post("/sales", sales.RecordSaleHandler(salesService))
	protected.Get("/sales", sales.ListSalesHandler())
	protected.Get("/sales/:id", sales.GetSaleHandler())

	// Warehouses
	protected.Get("/warehouses", warehouse.ListWarehousesHandler())
	protected.Post("/warehouses", warehouse.CreateWarehouseHandler())
	protected.Get("/warehouses/:id", warehouse.GetWarehouseHandler())
	protected.Put("/warehouses/:id", warehouse.UpdateWarehouseHandler())
	protected.Delete("/warehouses/:id", warehouse.DeleteWarehouseHandler())

	// Orders
	protected.Get("/orders", orders.ListOrdersHandler())
	protected.Post("/orders", orders.CreateOrderHandler())
	protected.Get("/orders/stats", orders.OrderStatsHandler())
	protected.Get("/orders/:id", orders.GetOrderHandler())
	protected.Put("/orders/:id", orders.UpdateOrderHandler())
	protected.Delete("/orders/:id", orders.DeleteOrderHandler())

	// Customers
	protected.Get("/customers", customers.ListCustomersHandler())
	protected.Post("/customers", customers.CreateCustomerHandler())
	protected.Get("/customers/:id", customers.GetCustomerHandler())
	protected.Put("/customers/:id", customers.UpdateCustomerHandler())
	protected.Delete("/customers/:id", customers.DeleteCustomerHandler())

	// Categories
	protected.Get("/categories", categories.ListCategoriesHandler())
	protected.Post("/categories", categories.CreateCategoryHandler())
	protected.Put("/categories/:id", categories.UpdateCategoryHandler())
	protected.Delete("/categories/:id", categories.DeleteCategoryHandler())

	// Dashboard
	protected.Get("/dashboard/summary", dashboard.SummaryHandler())

	// Audit logs
	protected.Get("/audit-logs", audit.ListAuditLogsHandler())

	log.Println("Server listening on port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
