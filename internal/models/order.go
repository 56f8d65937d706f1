package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusCOD     PaymentStatus = "cod"
	PaymentStatusPending PaymentStatus = "pending"
)

type ReceivedStatus string

const (
	ReceivedStatusDelivered  ReceivedStatus = "delivered"
	ReceivedStatusInProgress ReceivedStatus = "in_progress"
	ReceivedStatusFailed     ReceivedStatus = "failed"
	ReceivedStatusPending    ReceivedStatus = "pending"
)

type Order struct {
	ID             string         `gorm:"type:uuid;primaryKey" json:"id"`
	Reference      string         `gorm:"size:30;index" json:"reference"` // e.g. 583488/80
	CustomerName   string         `gorm:"size:200;not null" json:"customer_name"`
	Items          int            `gorm:"not null;default:0" json:"items"`
	Amount         float64        `gorm:"not null;default:0" json:"amount"`
	PaymentStatus  PaymentStatus  `gorm:"size:20;not null;default:'pending'" json:"payment_status"`
	ReceivedStatus ReceivedStatus `gorm:"size:20;not null;default:'pending'" json:"received_status"`
	ProfileID      string         `gorm:"type:uuid;index;not null" json:"profile_id"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
