package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Installment ("abono") is a partial payment applied against a debt. Rows are never updated.
type Installment struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	DebtID    uint            `gorm:"not null;index" json:"debt_id"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Date      time.Time       `gorm:"type:date;not null;index" json:"date"`
	Notes     *string         `gorm:"type:text" json:"notes"`
	CreatedAt time.Time       `json:"created_at"`
}

// TableName specifies the table name for Installment
func (Installment) TableName() string {
	return "installments"
}

// BeforeCreate defaults the payment date to today
func (i *Installment) BeforeCreate(tx *gorm.DB) error {
	if i.Date.IsZero() {
		i.Date = Today()
	} else {
		i.Date = DateOnly(i.Date)
	}
	return nil
}

// InstallmentResponse is the JSON response format for installments
type InstallmentResponse struct {
	ID        uint      `json:"id"`
	DebtID    uint      `json:"debt_id"`
	Amount    Money     `json:"amount"`
	Date      string    `json:"date"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse converts Installment to InstallmentResponse
func (i *Installment) ToResponse() InstallmentResponse {
	return InstallmentResponse{
		ID:        i.ID,
		DebtID:    i.DebtID,
		Amount:    NewMoney(i.Amount),
		Date:      FormatDate(i.Date),
		Notes:     i.Notes,
		CreatedAt: i.CreatedAt,
	}
}
