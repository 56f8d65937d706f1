package database

import (
	"log"

	"github.com/Natemerkl/yegna-inventory-hub/internal/config"
	"github.com/Natemerkl/yegna-inventory-hub/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.Profile{},
		&models.InventoryItem{},
		&models.Sale{},
		&models.Warehouse{},
		&models.Order{},
		&models.Customer{},
		&models.Category{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	log.Println("Database connected, migrations complete.")
}
