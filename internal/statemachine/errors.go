package statemachine

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrNonPositiveAmount = errors.New("el monto debe ser mayor a cero")
	ErrExceedsBalance    = errors.New("el abono excede el saldo pendiente")
	ErrInvalidTransition = errors.New("transición de estado inválida")
)

// ExceedsBalanceError carries the rejected amount and the balance it was checked against
type ExceedsBalanceError struct {
	Requested   decimal.Decimal
	Outstanding decimal.Decimal
}

func (e *ExceedsBalanceError) Error() string {
	return fmt.Sprintf("El abono (%s) excede el saldo pendiente (%s)",
		e.Requested.StringFixed(2), e.Outstanding.StringFixed(2))
}

func (e *ExceedsBalanceError) Unwrap() error {
	return ErrExceedsBalance
}
