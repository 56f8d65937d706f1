package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Warehouse struct {
	ID             string    `gorm:"type:uuid;primaryKey" json:"id"`
	Code           string    `gorm:"size:20;index" json:"code"` // e.g. WH-001
	Name           string    `gorm:"size:100;not null" json:"name"`
	Location       string    `gorm:"size:255" json:"location"`
	Manager        string    `gorm:"size:100" json:"manager"`
	Contact        string    `gorm:"size:50" json:"contact"`
	StockAvailable int       `gorm:"not null;default:0" json:"stock_available"`
	StockShipping  int       `gorm:"not null;default:0" json:"stock_shipping"`
	Revenue        float64   `gorm:"not null;default:0" json:"revenue"`
	ProfileID      string    `gorm:"type:uuid;index;not null" json:"profile_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (w *Warehouse) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}
