package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID            string     `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string     `gorm:"size:200;not null" json:"name"`
	Email         string     `gorm:"size:100;index" json:"email"`
	TotalAmount   float64    `gorm:"not null;default:0" json:"total_amount"`
	AmountDue     float64    `gorm:"not null;default:0" json:"amount_due"`
	DueDate       *time.Time `json:"due_date"`
	PaymentMethod string     `gorm:"size:50" json:"payment_method"`
	Status        string     `gorm:"size:20;not null;default:'active'" json:"status"`
	ProfileID     string     `gorm:"type:uuid;index;not null" json:"profile_id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
