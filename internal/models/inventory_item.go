package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryItem is the authoritative stock record for one product.
// Quantity never goes below zero; the sales store enforces that with a
// conditional decrement, the check constraint is a backstop.
type InventoryItem struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	ProductName string    `gorm:"size:200;not null" json:"product_name"`
	SKU         string    `gorm:"size:100;index" json:"sku"`
	Category    string    `gorm:"size:100;index" json:"category"`
	Description string    `gorm:"size:1000" json:"description"`
	ImageURL    string    `gorm:"size:500" json:"image_url"`
	Quantity    int       `gorm:"not null;default:0;check:quantity >= 0" json:"quantity"`
	Price       float64   `gorm:"not null;default:0" json:"price"`
	CostPrice   float64   `gorm:"not null;default:0" json:"cost_price"`
	ProfileID   string    `gorm:"type:uuid;index;not null" json:"profile_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
