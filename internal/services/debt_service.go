package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/gestor-negocios-api/internal/metrics"
	"github.com/sjperalta/gestor-negocios-api/internal/models"
	"github.com/sjperalta/gestor-negocios-api/internal/repository"
	"github.com/sjperalta/gestor-negocios-api/internal/statemachine"
	"github.com/sjperalta/gestor-negocios-api/pkg/logger"
)

// DebtInput holds the fields of a new debt
type DebtInput struct {
	TransactionID uint
	ClientID      uint
	TotalAmount   decimal.Decimal
	Description   *string
}

// DebtUpdate holds the editable fields of a debt. Amounts and status only
// change through installments.
type DebtUpdate struct {
	Description *string
}

// InstallmentInput holds the fields of a new installment
type InstallmentInput struct {
	Amount decimal.Decimal
	Date   *time.Time
	Notes  *string
}

// InstallmentResult is the stored installment and the debt after applying it
type InstallmentResult struct {
	Installment *models.Installment
	Debt        *models.Debt
}

// DebtService handles debts and the installments paid against them
type DebtService struct {
	repos    *repository.Repositories
	tx       repository.Transactor
	notifier *LedgerNotifier
	audit    *AuditService
	metrics  *metrics.Metrics
}

func NewDebtService(repos *repository.Repositories, tx repository.Transactor, notifier *LedgerNotifier, audit *AuditService, m *metrics.Metrics) *DebtService {
	return &DebtService{repos: repos, tx: tx, notifier: notifier, audit: audit, metrics: m}
}

var errTransactionHasDebt = &Error{Kind: ErrValidation, Message: "la transacción ya tiene una deuda asociada"}

// Create opens a debt of a client funded by a transaction of the same business
func (s *DebtService) Create(ctx context.Context, userID uint, in DebtInput) (*models.Debt, error) {
	var (
		debt   *models.Debt
		client *models.Client
		actor  *models.User
	)
	err := s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		transaction, err := repos.Transaction.FindByID(ctx, in.TransactionID)
		if err != nil {
			return lookup(err, errTransactionNotFound)
		}
		client, err = repos.Client.FindByID(ctx, in.ClientID)
		if err != nil {
			return lookup(err, errClientNotFound)
		}
		if client.BusinessID != transaction.BusinessID {
			return ErrCrossBusinessMismatch
		}
		if err := NewAccessControl(repos.Membership).Authorize(ctx, client.BusinessID, userID); err != nil {
			return err
		}
		if err := validateAmount(in.TotalAmount); err != nil {
			return err
		}
		funded, err := repos.Debt.ExistsForTransaction(ctx, transaction.ID)
		if err != nil {
			return err
		}
		if funded {
			return errTransactionHasDebt
		}

		debt = &models.Debt{
			TransactionID: transaction.ID,
			ClientID:      client.ID,
			TotalAmount:   in.TotalAmount,
			PaidAmount:    decimal.Zero,
			Status:        statemachine.DeriveStatus(decimal.Zero, in.TotalAmount),
			Description:   in.Description,
		}
		if err := repos.Debt.Create(ctx, debt); err != nil {
			if errors.Is(err, repository.ErrDuplicateKey) {
				return errTransactionHasDebt
			}
			return err
		}
		if debt, err = repos.Debt.FindDetail(ctx, debt.ID); err != nil {
			return err
		}
		actor, _ = repos.User.FindByID(ctx, userID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Log(ctx, userID, client.BusinessID, models.AuditActionCreate, "Debt", debt.ID,
		fmt.Sprintf("Deuda creada para %s por %s", client.Name, money(debt.TotalAmount)))
	s.notifier.Publish(debtCreatedMessage(actor, debt, client))
	return debt, nil
}

// List returns the business debts, optionally only those in status
func (s *DebtService) List(ctx context.Context, userID, businessID uint, status string) ([]models.Debt, error) {
	if _, err := authorizeBusiness(ctx, s.repos, businessID, userID); err != nil {
		return nil, err
	}
	if status != "" && !models.IsValidDebtStatus(status) {
		return nil, validationError("Estado de deuda inválido: %s", status)
	}
	return s.repos.Debt.ListByBusiness(ctx, businessID, status)
}

// Get returns the debt with its client and transaction
func (s *DebtService) Get(ctx context.Context, userID, debtID uint) (*models.Debt, error) {
	if _, _, err := authorizeDebt(ctx, s.repos, debtID, userID, false); err != nil {
		return nil, err
	}
	debt, err := s.repos.Debt.FindDetail(ctx, debtID)
	if err != nil {
		return nil, lookup(err, errDebtNotFound)
	}
	return debt, nil
}

// Update changes the description of the debt
func (s *DebtService) Update(ctx context.Context, userID, debtID uint, in DebtUpdate) (*models.Debt, error) {
	var (
		debt   *models.Debt
		client *models.Client
	)
	err := s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		var err error
		if _, client, err = authorizeDebt(ctx, repos, debtID, userID, false); err != nil {
			return err
		}
		if in.Description != nil {
			if err := repos.Debt.UpdateDescription(ctx, debtID, in.Description); err != nil {
				return err
			}
		}
		debt, err = repos.Debt.FindDetail(ctx, debtID)
		return lookup(err, errDebtNotFound)
	})
	if err != nil {
		return nil, err
	}

	s.audit.Log(ctx, userID, client.BusinessID, models.AuditActionUpdate, "Debt", debtID, "Descripción de deuda actualizada")
	return debt, nil
}

// Delete removes the debt and its installments
func (s *DebtService) Delete(ctx context.Context, userID, debtID uint) error {
	var (
		debt   *models.Debt
		client *models.Client
		actor  *models.User
	)
	err := s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		var err error
		if debt, client, err = authorizeDebt(ctx, repos, debtID, userID, true); err != nil {
			return err
		}
		if err := repos.Debt.Delete(ctx, debtID); err != nil {
			return lookup(err, errDebtNotFound)
		}
		actor, _ = repos.User.FindByID(ctx, userID)
		return nil
	})
	if err != nil {
		return err
	}

	s.audit.Log(ctx, userID, client.BusinessID, models.AuditActionDelete, "Debt", debtID,
		fmt.Sprintf("Deuda eliminada de %s por %s", client.Name, money(debt.TotalAmount)))
	s.notifier.Publish(debtDeletedMessage(actor, debt, client))
	return nil
}

// ApplyInstallment records a payment against the debt. The debt row is locked
// for the whole read-validate-write sequence, and the installment and the new
// paid amount are committed together. An amount above the outstanding balance
// is rejected without touching the debt.
func (s *DebtService) ApplyInstallment(ctx context.Context, userID, debtID uint, in InstallmentInput) (*InstallmentResult, error) {
	var (
		result *InstallmentResult
		client *models.Client
		actor  *models.User
	)
	err := s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		debt, c, err := authorizeDebt(ctx, repos, debtID, userID, true)
		if err != nil {
			return err
		}
		client = c

		if err := validateAmount(in.Amount); err != nil {
			return err
		}

		previousPaid := debt.PaidAmount
		if err := statemachine.NewDebtFSM(debt).ApplyInstallment(ctx, in.Amount); err != nil {
			if errors.Is(err, statemachine.ErrNonPositiveAmount) {
				return validationError("El monto debe ser mayor a cero")
			}
			return err
		}

		installment := &models.Installment{
			DebtID: debt.ID,
			Amount: in.Amount,
			Notes:  in.Notes,
		}
		if in.Date != nil {
			installment.Date = models.DateOnly(*in.Date)
		}
		if err := repos.Installment.Create(ctx, installment); err != nil {
			return err
		}
		if err := repos.Debt.UpdatePayment(ctx, debt, previousPaid); err != nil {
			return err
		}

		actor, _ = repos.User.FindByID(ctx, userID)
		result = &InstallmentResult{Installment: installment, Debt: debt}
		return nil
	})
	if err != nil {
		s.metrics.ObserveInstallment(installmentOutcome(err))
		return nil, err
	}
	s.metrics.ObserveInstallment(metrics.OutcomeApplied)

	debt := result.Debt
	logger.Info("Installment applied",
		"debt_id", debt.ID,
		"amount", in.Amount.StringFixed(2),
		"paid", debt.PaidAmount.StringFixed(2),
		"status", debt.Status)

	s.audit.Log(ctx, userID, client.BusinessID, models.AuditActionCreate, "Installment", result.Installment.ID,
		fmt.Sprintf("Abono de %s a la deuda %d, saldo pendiente %s", money(in.Amount), debt.ID, money(debt.OutstandingBalance())))
	s.notifier.Publish(installmentMessage(actor, debt, client, in.Amount))
	return result, nil
}

// Installments lists the installments of the debt, most recent date first
func (s *DebtService) Installments(ctx context.Context, userID, debtID uint) ([]models.Installment, error) {
	if _, _, err := authorizeDebt(ctx, s.repos, debtID, userID, false); err != nil {
		return nil, err
	}
	return s.repos.Installment.ListByDebt(ctx, debtID)
}

func installmentOutcome(err error) string {
	if errors.Is(err, ErrValidation) || errors.Is(err, ErrExceedsBalance) ||
		errors.Is(err, ErrNotFound) || errors.Is(err, ErrForbidden) {
		return metrics.OutcomeRejected
	}
	return metrics.OutcomeFailed
}
