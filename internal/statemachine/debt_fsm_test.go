package statemachine

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/gestor-negocios-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newDebt(total string) *models.Debt {
	return &models.Debt{
		TotalAmount: dec(total),
		PaidAmount:  decimal.Zero,
		Status:      models.DebtStatusPending,
	}
}

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name  string
		paid  string
		total string
		want  string
	}{
		{"nothing paid", "0", "100.00", models.DebtStatusPending},
		{"one cent paid", "0.01", "100.00", models.DebtStatusPartial},
		{"almost paid", "99.99", "100.00", models.DebtStatusPartial},
		{"fully paid", "100.00", "100.00", models.DebtStatusSettled},
		{"trailing zeros do not matter", "100", "100.00", models.DebtStatusSettled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(dec(tt.paid), dec(tt.total)))
		})
	}
}

func TestDebtFSM_InstallmentSequence(t *testing.T) {
	ctx := context.Background()
	debt := newDebt("100.00")
	machine := NewDebtFSM(debt)
	assert.Equal(t, models.DebtStatusPending, machine.Current())

	require.NoError(t, machine.ApplyInstallment(ctx, dec("60.00")))
	assert.Equal(t, "60.00", debt.PaidAmount.StringFixed(2))
	assert.Equal(t, models.DebtStatusPartial, debt.Status)
	assert.Equal(t, "40.00", debt.OutstandingBalance().StringFixed(2))

	err := machine.ApplyInstallment(ctx, dec("41.00"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExceedsBalance))
	var exceeds *ExceedsBalanceError
	require.True(t, errors.As(err, &exceeds))
	assert.Equal(t, "41.00", exceeds.Requested.StringFixed(2))
	assert.Equal(t, "40.00", exceeds.Outstanding.StringFixed(2))
	assert.Equal(t, "El abono (41.00) excede el saldo pendiente (40.00)", err.Error())
	assert.Equal(t, "60.00", debt.PaidAmount.StringFixed(2))
	assert.Equal(t, models.DebtStatusPartial, debt.Status)

	require.NoError(t, machine.ApplyInstallment(ctx, dec("40.00")))
	assert.Equal(t, "100.00", debt.PaidAmount.StringFixed(2))
	assert.Equal(t, models.DebtStatusSettled, debt.Status)
	assert.Equal(t, "0.00", debt.OutstandingBalance().StringFixed(2))
	assert.False(t, machine.Can(EventPay))
}

func TestDebtFSM_PartialToPartial(t *testing.T) {
	ctx := context.Background()
	debt := newDebt("50.00")
	machine := NewDebtFSM(debt)

	require.NoError(t, machine.ApplyInstallment(ctx, dec("10.00")))
	require.NoError(t, machine.ApplyInstallment(ctx, dec("10.00")))
	assert.Equal(t, models.DebtStatusPartial, debt.Status)
	assert.Equal(t, "20.00", debt.PaidAmount.StringFixed(2))
}

func TestDebtFSM_RejectsNonPositiveAmount(t *testing.T) {
	for _, amount := range []string{"0", "-5.00"} {
		debt := newDebt("10.00")
		err := NewDebtFSM(debt).ApplyInstallment(context.Background(), dec(amount))
		assert.ErrorIs(t, err, ErrNonPositiveAmount)
		assert.True(t, debt.PaidAmount.IsZero())
		assert.Equal(t, models.DebtStatusPending, debt.Status)
	}
}

func TestDebtFSM_SettledDebtAcceptsNothing(t *testing.T) {
	debt := &models.Debt{TotalAmount: dec("25.00"), PaidAmount: dec("25.00"), Status: models.DebtStatusSettled}
	err := NewDebtFSM(debt).ApplyInstallment(context.Background(), dec("0.01"))
	assert.ErrorIs(t, err, ErrExceedsBalance)
	assert.Equal(t, "25.00", debt.PaidAmount.StringFixed(2))
}

func TestDebtFSM_PaidNeverExceedsTotal(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(7))

	for run := 0; run < 50; run++ {
		debt := newDebt("250.00")
		machine := NewDebtFSM(debt)
		for step := 0; step < 40; step++ {
			amount := decimal.New(int64(rng.Intn(12000)+1), -2)
			before := debt.PaidAmount
			err := machine.ApplyInstallment(ctx, amount)
			if err != nil {
				assert.ErrorIs(t, err, ErrExceedsBalance)
				assert.True(t, before.Equal(debt.PaidAmount))
			}
			assert.True(t, debt.PaidAmount.GreaterThanOrEqual(decimal.Zero))
			assert.True(t, debt.PaidAmount.LessThanOrEqual(debt.TotalAmount))
			assert.Equal(t, DeriveStatus(debt.PaidAmount, debt.TotalAmount), debt.Status)
		}
	}
}
