package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Balance is income minus expense for a business over an optional window
type Balance struct {
	BusinessID   uint            `json:"business_id"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Balance      decimal.Decimal `json:"balance"`
	From         *time.Time      `json:"-"`
	To           *time.Time      `json:"-"`
}

// BalanceResponse is the JSON response format for a balance
type BalanceResponse struct {
	BusinessID   uint    `json:"business_id"`
	TotalIncome  Money   `json:"total_income"`
	TotalExpense Money   `json:"total_expense"`
	Balance      Money   `json:"balance"`
	From         *string `json:"from"`
	To           *string `json:"to"`
}

// ToResponse converts Balance to BalanceResponse
func (b *Balance) ToResponse() BalanceResponse {
	return BalanceResponse{
		BusinessID:   b.BusinessID,
		TotalIncome:  NewMoney(b.TotalIncome),
		TotalExpense: NewMoney(b.TotalExpense),
		Balance:      NewMoney(b.Balance),
		From:         formatOptionalDate(b.From),
		To:           formatOptionalDate(b.To),
	}
}

// DebtSummary describes the debt portfolio of a business.
//
// TotalSettled is the face value of fully settled debts. TotalPaid is
// everything collected through installments, so that
// TotalOutstanding + TotalPaid == TotalDebt.
type DebtSummary struct {
	BusinessID       uint
	TotalDebt        decimal.Decimal
	TotalOutstanding decimal.Decimal
	TotalSettled     decimal.Decimal
	TotalPaid        decimal.Decimal
	ClientsWithDebt  int
}

// DebtSummaryResponse is the JSON response format for a debt summary
type DebtSummaryResponse struct {
	BusinessID       uint  `json:"business_id"`
	TotalDebt        Money `json:"total_debt"`
	TotalOutstanding Money `json:"total_outstanding"`
	TotalSettled     Money `json:"total_settled"`
	TotalPaid        Money `json:"total_paid"`
	ClientsWithDebt  int   `json:"clients_with_debt"`
}

// ToResponse converts DebtSummary to DebtSummaryResponse
func (s DebtSummary) ToResponse() DebtSummaryResponse {
	return DebtSummaryResponse{
		BusinessID:       s.BusinessID,
		TotalDebt:        NewMoney(s.TotalDebt),
		TotalOutstanding: NewMoney(s.TotalOutstanding),
		TotalSettled:     NewMoney(s.TotalSettled),
		TotalPaid:        NewMoney(s.TotalPaid),
		ClientsWithDebt:  s.ClientsWithDebt,
	}
}
