package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_MarshalJSONKeepsTwoDecimals(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"100", `"100.00"`},
		{"150.5", `"150.50"`},
		{"0", `"0.00"`},
		{"-50.55", `"-50.55"`},
		{"10.005", `"10.01"`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			out, err := json.Marshal(NewMoney(decimal.RequireFromString(tt.in)))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestDebtSummary_ToResponseFixesPrecision(t *testing.T) {
	s := DebtSummary{
		BusinessID:       1,
		TotalDebt:        decimal.RequireFromString("150"),
		TotalOutstanding: decimal.RequireFromString("40"),
		TotalSettled:     decimal.RequireFromString("50"),
		TotalPaid:        decimal.RequireFromString("110"),
	}

	out, err := json.Marshal(s.ToResponse())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"business_id": 1,
		"total_debt": "150.00",
		"total_outstanding": "40.00",
		"total_settled": "50.00",
		"total_paid": "110.00",
		"clients_with_debt": 0
	}`, string(out))
}

func TestDebt_ToResponseFixesPrecision(t *testing.T) {
	d := &Debt{
		ID:          3,
		TotalAmount: decimal.RequireFromString("100"),
		PaidAmount:  decimal.RequireFromString("60"),
		Status:      DebtStatusPartial,
	}

	out, err := json.Marshal(d.ToResponse())
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &body))
	assert.Equal(t, "100.00", body["total_amount"])
	assert.Equal(t, "60.00", body["paid_amount"])
	assert.Equal(t, "40.00", body["outstanding_balance"])
}
