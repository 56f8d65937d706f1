package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale is one append-only ledger entry. Rows are created by the sale
// recording service and never updated or deleted afterwards. InventoryID
// may dangle if the referenced item is deleted later; the ledger keeps
// its history regardless.
type Sale struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	InventoryID  string    `gorm:"type:uuid;index;not null" json:"inventory_id"`
	QuantitySold int       `gorm:"not null" json:"quantity_sold"`
	SalePrice    float64   `gorm:"not null" json:"sale_price"`
	CustomerName string    `gorm:"size:200" json:"customer_name"`
	SaleDate     time.Time `gorm:"index;not null" json:"sale_date"`
	ProfileID    string    `gorm:"type:uuid;index;not null" json:"profile_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.SaleDate.IsZero() {
		s.SaleDate = time.Now()
	}
	return nil
}
