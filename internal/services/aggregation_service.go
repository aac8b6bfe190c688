package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/gestor-negocios-api/internal/models"
	"github.com/sjperalta/gestor-negocios-api/internal/repository"
)

// ComputeBalance folds transaction amounts into income, expense and their difference
func ComputeBalance(businessID uint, rows []models.TransactionAmount, window models.DateWindow) models.Balance {
	income := decimal.Zero
	expense := decimal.Zero
	for _, row := range rows {
		switch row.Kind {
		case models.TransactionKindIncome:
			income = income.Add(row.Amount)
		case models.TransactionKindExpense:
			expense = expense.Add(row.Amount)
		}
	}
	return models.Balance{
		BusinessID:   businessID,
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
		From:         window.From,
		To:           window.To,
	}
}

// ComputeDebtSummary folds debt positions into the portfolio summary
func ComputeDebtSummary(businessID uint, positions []models.DebtPosition) models.DebtSummary {
	summary := models.DebtSummary{
		BusinessID:       businessID,
		TotalDebt:        decimal.Zero,
		TotalOutstanding: decimal.Zero,
		TotalSettled:     decimal.Zero,
		TotalPaid:        decimal.Zero,
	}
	debtors := make(map[uint]struct{})

	for _, p := range positions {
		summary.TotalDebt = summary.TotalDebt.Add(p.TotalAmount)
		summary.TotalPaid = summary.TotalPaid.Add(p.PaidAmount)
		if p.Status == models.DebtStatusSettled {
			summary.TotalSettled = summary.TotalSettled.Add(p.TotalAmount)
			continue
		}
		summary.TotalOutstanding = summary.TotalOutstanding.Add(p.TotalAmount.Sub(p.PaidAmount))
		debtors[p.ClientID] = struct{}{}
	}

	summary.ClientsWithDebt = len(debtors)
	return summary
}

// OutstandingByClient sums the outstanding balance of open debts per client
func OutstandingByClient(positions []models.DebtPosition) map[uint]decimal.Decimal {
	totals := make(map[uint]decimal.Decimal)
	for _, p := range positions {
		if p.Status == models.DebtStatusSettled {
			continue
		}
		totals[p.ClientID] = totals[p.ClientID].Add(p.TotalAmount.Sub(p.PaidAmount))
	}
	return totals
}

// AggregationService answers balance and debt summary queries
type AggregationService struct {
	repos *repository.Repositories
}

func NewAggregationService(repos *repository.Repositories) *AggregationService {
	return &AggregationService{repos: repos}
}

// Balance returns income minus expense inside the inclusive window
func (s *AggregationService) Balance(ctx context.Context, userID, businessID uint, window models.DateWindow) (*models.Balance, error) {
	if _, err := authorizeBusiness(ctx, s.repos, businessID, userID); err != nil {
		return nil, err
	}
	if err := validateWindow(window); err != nil {
		return nil, err
	}

	rows, err := s.repos.Transaction.AmountRows(ctx, businessID, window)
	if err != nil {
		return nil, err
	}
	balance := ComputeBalance(businessID, rows, window)
	return &balance, nil
}

// DebtSummary returns the debt portfolio of the business
func (s *AggregationService) DebtSummary(ctx context.Context, userID, businessID uint) (*models.DebtSummary, error) {
	if _, err := authorizeBusiness(ctx, s.repos, businessID, userID); err != nil {
		return nil, err
	}

	positions, err := s.repos.Debt.Positions(ctx, businessID)
	if err != nil {
		return nil, err
	}
	summary := ComputeDebtSummary(businessID, positions)
	return &summary, nil
}

func validateWindow(window models.DateWindow) error {
	if window.From != nil && window.To != nil && window.From.After(*window.To) {
		return validationError("La fecha inicial no puede ser posterior a la fecha final")
	}
	return nil
}
