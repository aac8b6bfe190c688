package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is an income or expense entry of a business
type Transaction struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	BusinessID  uint            `gorm:"not null;index" json:"business_id"`
	Kind        string          `gorm:"size:10;not null;index" json:"kind"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Description *string         `gorm:"type:text" json:"description"`
	Date        time.Time       `gorm:"type:date;not null;index" json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}

// BeforeCreate defaults the effective date to the creation date
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.Date.IsZero() {
		t.Date = Today()
	} else {
		t.Date = DateOnly(t.Date)
	}
	return nil
}

// Transaction kind constants
const (
	TransactionKindIncome  = "income"
	TransactionKindExpense = "expense"
)

// IsValidTransactionKind reports whether kind is income or expense
func IsValidTransactionKind(kind string) bool {
	return kind == TransactionKindIncome || kind == TransactionKindExpense
}

// TransactionResponse is the JSON response format for transactions
type TransactionResponse struct {
	ID          uint      `json:"id"`
	BusinessID  uint      `json:"business_id"`
	Kind        string    `json:"kind"`
	Amount      Money     `json:"amount"`
	Description *string   `json:"description"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToResponse converts Transaction to TransactionResponse
func (t *Transaction) ToResponse() TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		BusinessID:  t.BusinessID,
		Kind:        t.Kind,
		Amount:      NewMoney(t.Amount),
		Description: t.Description,
		Date:        FormatDate(t.Date),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// TransactionFilter narrows a transaction listing
type TransactionFilter struct {
	Kind   string
	Window DateWindow
}

// TransactionAmount is the projection of a transaction used by the balance
type TransactionAmount struct {
	Kind   string
	Amount decimal.Decimal
}
