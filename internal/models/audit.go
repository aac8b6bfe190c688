package models

import (
	"time"
)

// AuditLog records who changed which ledger entity
type AuditLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	BusinessID *uint     `gorm:"index" json:"business_id"`
	Action     string    `gorm:"size:50;not null" json:"action"` // CREATE, UPDATE, DELETE, LOGIN
	Entity     string    `gorm:"size:50;not null" json:"entity"` // Business, Client, Transaction, Debt, Installment
	EntityID   uint      `json:"entity_id"`
	Details    string    `gorm:"type:text" json:"details"`
	IPAddress  string    `gorm:"size:45" json:"ip_address"`
	UserAgent  string    `gorm:"size:255" json:"user_agent"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

// TableName specifies the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}

// Audit action constants
const (
	AuditActionCreate = "CREATE"
	AuditActionUpdate = "UPDATE"
	AuditActionDelete = "DELETE"
	AuditActionLogin  = "LOGIN"
)
