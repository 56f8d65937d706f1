package models

import "time"

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
	AuditActionSale   AuditAction = "sale"
)

// AuditLog is an append-only trail of dashboard mutations. There is no
// undo: replaying or reversing entries would bypass the atomic sale path,
// so the trail is strictly for review.
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	ProfileID string `gorm:"type:uuid;index;not null" json:"profile_id"`
	UserName  string `gorm:"size:100" json:"user_name"` // denormalized for display

	// e.g. "inventory_item", "sale", "warehouse"
	EntityType string `gorm:"size:50;index" json:"entity_type"`
	EntityID   string `gorm:"size:40;index" json:"entity_id"`

	Action      AuditAction `gorm:"size:20" json:"action"`
	Description string      `gorm:"size:255" json:"description"`

	// Entity state before and after the mutation (JSON)
	BeforeData string `gorm:"type:jsonb" json:"before_data"`
	AfterData  string `gorm:"type:jsonb" json:"after_data"`
}
