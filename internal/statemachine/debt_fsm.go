package statemachine

import (
	"context"
	"errors"
	"fmt"

	"github.com/looplab/fsm"
	"github.com/shopspring/decimal"
	"github.com/sjperalta/gestor-negocios-api/internal/models"
)

// Debt events
const (
	EventPay    = "pay"
	EventSettle = "settle"
)

// DeriveStatus maps (paid, total) to a debt status. It is the only place
// where a debt status is decided.
func DeriveStatus(paid, total decimal.Decimal) string {
	switch {
	case paid.Sign() <= 0:
		return models.DebtStatusPending
	case paid.LessThan(total):
		return models.DebtStatusPartial
	default:
		return models.DebtStatusSettled
	}
}

// DebtFSM wraps a debt with its state machine
type DebtFSM struct {
	debt *models.Debt
	fsm  *fsm.FSM
}

// NewDebtFSM creates a state machine positioned at the debt's derived status
func NewDebtFSM(debt *models.Debt) *DebtFSM {
	dfsm := &DebtFSM{
		debt: debt,
	}

	dfsm.fsm = fsm.NewFSM(
		DeriveStatus(debt.PaidAmount, debt.TotalAmount),
		fsm.Events{
			// pending/partial → partial (installment leaves a balance)
			{Name: EventPay, Src: []string{models.DebtStatusPending, models.DebtStatusPartial}, Dst: models.DebtStatusPartial},

			// pending/partial → settled (installment covers the balance)
			{Name: EventSettle, Src: []string{models.DebtStatusPending, models.DebtStatusPartial}, Dst: models.DebtStatusSettled},
		},
		fsm.Callbacks{},
	)

	return dfsm
}

// ApplyInstallment adds amount to the paid total and moves the debt to its new status.
// The debt is left untouched when the amount is rejected.
func (d *DebtFSM) ApplyInstallment(ctx context.Context, amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrNonPositiveAmount
	}

	outstanding := d.debt.OutstandingBalance()
	if amount.GreaterThan(outstanding) {
		return &ExceedsBalanceError{Requested: amount, Outstanding: outstanding}
	}

	paid := d.debt.PaidAmount.Add(amount)
	event := EventPay
	if DeriveStatus(paid, d.debt.TotalAmount) == models.DebtStatusSettled {
		event = EventSettle
	}

	if err := d.fsm.Event(ctx, event); err != nil {
		// partial → partial is a valid self transition
		var noTransition fsm.NoTransitionError
		if !errors.As(err, &noTransition) {
			return fmt.Errorf("%w: %s desde %s: %v", ErrInvalidTransition, event, d.fsm.Current(), err)
		}
	}

	d.debt.PaidAmount = paid
	d.debt.Status = d.fsm.Current()
	return nil
}

// Current returns the current state
func (d *DebtFSM) Current() string {
	return d.fsm.Current()
}

// Can checks if a transition is possible
func (d *DebtFSM) Can(event string) bool {
	return d.fsm.Can(event)
}
