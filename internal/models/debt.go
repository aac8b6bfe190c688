package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Debt is an amount a client owes, originated by exactly one transaction.
// Status is derived from PaidAmount and TotalAmount and only changes through
// the installment transition.
type Debt struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	TransactionID uint            `gorm:"not null;uniqueIndex" json:"transaction_id"`
	ClientID      uint            `gorm:"not null;index" json:"client_id"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	PaidAmount    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"paid_amount"`
	Status        string          `gorm:"size:10;not null;index" json:"status"`
	Description   *string         `gorm:"type:text" json:"description"`
	CreatedAt     time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	// Associations
	Client      *Client      `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Transaction *Transaction `gorm:"foreignKey:TransactionID" json:"transaction,omitempty"`
}

// TableName specifies the table name for Debt
func (Debt) TableName() string {
	return "debts"
}

// Debt status constants
const (
	DebtStatusPending = "pending"
	DebtStatusPartial = "partial"
	DebtStatusSettled = "settled"
)

// IsValidDebtStatus reports whether status is a known debt status
func IsValidDebtStatus(status string) bool {
	switch status {
	case DebtStatusPending, DebtStatusPartial, DebtStatusSettled:
		return true
	}
	return false
}

// OutstandingBalance returns TotalAmount - PaidAmount
func (d *Debt) OutstandingBalance() decimal.Decimal {
	return d.TotalAmount.Sub(d.PaidAmount)
}

// IsSettled returns true if nothing is left to pay
func (d *Debt) IsSettled() bool {
	return d.Status == DebtStatusSettled
}

// DebtResponse is the JSON response format for debts
type DebtResponse struct {
	ID                 uint                 `json:"id"`
	TransactionID      uint                 `json:"transaction_id"`
	ClientID           uint                 `json:"client_id"`
	TotalAmount        Money                `json:"total_amount"`
	PaidAmount         Money                `json:"paid_amount"`
	OutstandingBalance Money                `json:"outstanding_balance"`
	Status             string               `json:"status"`
	Description        *string              `json:"description"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
	Client             *ClientSummary       `json:"client,omitempty"`
	Transaction        *TransactionResponse `json:"transaction,omitempty"`
}

// ClientSummary is the client data embedded in debt details
type ClientSummary struct {
	ID       uint   `json:"id"`
	Identity string `json:"identity"`
	Name     string `json:"name"`
}

// ToResponse converts Debt to DebtResponse, embedding preloaded associations
func (d *Debt) ToResponse() DebtResponse {
	resp := DebtResponse{
		ID:                 d.ID,
		TransactionID:      d.TransactionID,
		ClientID:           d.ClientID,
		TotalAmount:        NewMoney(d.TotalAmount),
		PaidAmount:         NewMoney(d.PaidAmount),
		OutstandingBalance: NewMoney(d.OutstandingBalance()),
		Status:             d.Status,
		Description:        d.Description,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
	if d.Client != nil {
		resp.Client = &ClientSummary{ID: d.Client.ID, Identity: d.Client.Identity, Name: d.Client.Name}
	}
	if d.Transaction != nil {
		tx := d.Transaction.ToResponse()
		resp.Transaction = &tx
	}
	return resp
}

// DebtPosition is the projection of a debt used by aggregations
type DebtPosition struct {
	ID          uint
	ClientID    uint
	TotalAmount decimal.Decimal
	PaidAmount  decimal.Decimal
	Status      string
}
