package model

import "time"

type AuditAction string

const (
	AuditActionUpdateOrderStatus AuditAction = "UPDATE_ORDER_STATUS"
	AuditActionCancelOrder       AuditAction = "CANCEL_ORDER"
)

const AuditResourceOrder = "order"

type AuditLog struct {
	ID           int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	Action       AuditAction `gorm:"type:varchar(64);not null" json:"action"`
	ResourceType string      `gorm:"type:varchar(32);not null" json:"resource_type"`
	ResourceID   int64       `gorm:"not null;index" json:"resource_id"`
	BeforeJSON   string      `gorm:"type:text" json:"before_json"`
	AfterJSON    string      `gorm:"type:text" json:"after_json"`
	CreatedAt    time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
}
