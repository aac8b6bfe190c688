package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/gestor-negocios-api/internal/models"
	"github.com/sjperalta/gestor-negocios-api/internal/repository"
)

// decimal(12,2) upper bound
var maxAmount = decimal.New(1, 10)

// TransactionInput holds the fields of a new transaction
type TransactionInput struct {
	Kind        string
	Amount      decimal.Decimal
	Description *string
	Date        *time.Time
}

// TransactionUpdate holds the fields to change; nil fields are left as they are
type TransactionUpdate struct {
	Kind        *string
	Amount      *decimal.Decimal
	Description *string
	Date        *time.Time
}

// TransactionService handles income and expense entries
type TransactionService struct {
	repos    *repository.Repositories
	tx       repository.Transactor
	notifier *LedgerNotifier
	audit    *AuditService
}

func NewTransactionService(repos *repository.Repositories, tx repository.Transactor, notifier *LedgerNotifier, audit *AuditService) *TransactionService {
	return &TransactionService{repos: repos, tx: tx, notifier: notifier, audit: audit}
}

// Create records a transaction in the business
func (s *TransactionService) Create(ctx context.Context, userID, businessID uint, in TransactionInput) (*models.Transaction, error) {
	var (
		transaction *models.Transaction
		actor       *models.User
	)
	err := s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		if _, err := authorizeBusiness(ctx, repos, businessID, userID); err != nil {
			return err
		}
		if err := validateKind(in.Kind); err != nil {
			return err
		}
		if err := validateAmount(in.Amount); err != nil {
			return err
		}

		transaction = &models.Transaction{
			BusinessID:  businessID,
			Kind:        in.Kind,
			Amount:      in.Amount,
			Description: in.Description,
		}
		if in.Date != nil {
			transaction.Date = models.DateOnly(*in.Date)
		}
		if err := repos.Transaction.Create(ctx, transaction); err != nil {
			return err
		}
		actor, _ = repos.User.FindByID(ctx, userID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Log(ctx, userID, businessID, models.AuditActionCreate, "Transaction", transaction.ID,
		fmt.Sprintf("%s registrado por %s", kindLabel(transaction.Kind), money(transaction.Amount)))
	s.notifier.Publish(transactionMessage(models.NotificationTypeTransactionCreated, "Transacción registrada", actor, transaction))
	return transaction, nil
}

// List returns the business transactions matching filter, most recent date first
func (s *TransactionService) List(ctx context.Context, userID, businessID uint, filter models.TransactionFilter) ([]models.Transaction, error) {
	if _, err := authorizeBusiness(ctx, s.repos, businessID, userID); err != nil {
		return nil, err
	}
	if filter.Kind != "" {
		if err := validateKind(filter.Kind); err != nil {
			return nil, err
		}
	}
	if err := validateWindow(filter.Window); err != nil {
		return nil, err
	}
	return s.repos.Transaction.List(ctx, businessID, filter)
}

// Get returns one transaction
func (s *TransactionService) Get(ctx context.Context, userID, transactionID uint) (*models.Transaction, error) {
	return authorizeTransaction(ctx, s.repos, transactionID, userID)
}

// Update applies the supplied fields. The business of a transaction never changes.
func (s *TransactionService) Update(ctx context.Context, userID, transactionID uint, in TransactionUpdate) (*models.Transaction, error) {
	var (
		transaction *models.Transaction
		actor       *models.User
	)
	err := s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		var err error
		transaction, err = authorizeTransaction(ctx, repos, transactionID, userID)
		if err != nil {
			return err
		}
		if in.Kind != nil {
			if err := validateKind(*in.Kind); err != nil {
				return err
			}
			transaction.Kind = *in.Kind
		}
		if in.Amount != nil {
			if err := validateAmount(*in.Amount); err != nil {
				return err
			}
			transaction.Amount = *in.Amount
		}
		if in.Description != nil {
			transaction.Description = in.Description
		}
		if in.Date != nil {
			transaction.Date = models.DateOnly(*in.Date)
		}
		if err := repos.Transaction.Update(ctx, transaction); err != nil {
			return err
		}
		actor, _ = repos.User.FindByID(ctx, userID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Log(ctx, userID, transaction.BusinessID, models.AuditActionUpdate, "Transaction", transaction.ID,
		fmt.Sprintf("Transacción actualizada: %s %s", kindLabel(transaction.Kind), money(transaction.Amount)))
	s.notifier.Publish(transactionMessage(models.NotificationTypeTransactionUpdated, "Transacción modificada", actor, transaction))
	return transaction, nil
}

// Delete removes the transaction together with the debt it funds
func (s *TransactionService) Delete(ctx context.Context, userID, transactionID uint) error {
	var (
		transaction *models.Transaction
		actor       *models.User
	)
	err := s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		var err error
		transaction, err = authorizeTransaction(ctx, repos, transactionID, userID)
		if err != nil {
			return err
		}
		if err := repos.Transaction.Delete(ctx, transactionID); err != nil {
			return lookup(err, errTransactionNotFound)
		}
		actor, _ = repos.User.FindByID(ctx, userID)
		return nil
	})
	if err != nil {
		return err
	}

	s.audit.Log(ctx, userID, transaction.BusinessID, models.AuditActionDelete, "Transaction", transactionID,
		fmt.Sprintf("Transacción eliminada: %s %s", kindLabel(transaction.Kind), money(transaction.Amount)))
	s.notifier.Publish(transactionMessage(models.NotificationTypeTransactionDeleted, "Transacción eliminada", actor, transaction))
	return nil
}

func validateKind(kind string) error {
	if !models.IsValidTransactionKind(kind) {
		return validationError("Tipo de transacción inválido: debe ser %s o %s", models.TransactionKindIncome, models.TransactionKindExpense)
	}
	return nil
}

// validateAmount accepts positive amounts that fit decimal(12,2)
func validateAmount(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return validationError("El monto debe ser mayor a cero")
	}
	if !amount.Equal(amount.Round(2)) {
		return validationError("El monto no puede tener más de dos decimales")
	}
	if amount.GreaterThanOrEqual(maxAmount) {
		return validationError("El monto excede el máximo permitido")
	}
	return nil
}
