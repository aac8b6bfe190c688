package models

import (
	"github.com/shopspring/decimal"
)

// Money is an amount rendered in JSON as a string with exactly two decimals,
// matching the decimal(12,2) columns.
type Money struct {
	decimal.Decimal
}

// NewMoney rounds d to cents
func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d.Round(2)}
}

// MarshalJSON renders the amount as "100.00"
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.StringFixed(2) + `"`), nil
}
