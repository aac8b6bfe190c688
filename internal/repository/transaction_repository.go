package repository

import (
	"context"

	"github.com/sjperalta/gestor-negocios-api/internal/models"
	"gorm.io/gorm"
)

// TransactionRepository defines the interface for transaction data access
type TransactionRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Transaction, error)
	List(ctx context.Context, businessID uint, filter models.TransactionFilter) ([]models.Transaction, error)
	AmountRows(ctx context.Context, businessID uint, window models.DateWindow) ([]models.TransactionAmount, error)
	Create(ctx context.Context, transaction *models.Transaction) error
	Update(ctx context.Context, transaction *models.Transaction) error
	Delete(ctx context.Context, id uint) error
}

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) FindByID(ctx context.Context, id uint) (*models.Transaction, error) {
	var transaction models.Transaction
	err := r.db.WithContext(ctx).First(&transaction, id).Error
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

// List returns the business transactions, most recent date first
func (r *transactionRepository) List(ctx context.Context, businessID uint, filter models.TransactionFilter) ([]models.Transaction, error) {
	var transactions []models.Transaction
	db := r.db.WithContext(ctx).Where("business_id = ?", businessID)

	if filter.Kind != "" {
		db = db.Where("kind = ?", filter.Kind)
	}
	db = applyWindow(db, "date", filter.Window)

	err := db.Order("date DESC").Order("id DESC").Find(&transactions).Error
	return transactions, err
}

// AmountRows projects kind and amount of the transactions inside the window
func (r *transactionRepository) AmountRows(ctx context.Context, businessID uint, window models.DateWindow) ([]models.TransactionAmount, error) {
	var rows []models.TransactionAmount
	db := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Select("kind", "amount").
		Where("business_id = ?", businessID)
	db = applyWindow(db, "date", window)

	err := db.Scan(&rows).Error
	return rows, err
}

func (r *transactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	return r.db.WithContext(ctx).Create(transaction).Error
}

func (r *transactionRepository) Update(ctx context.Context, transaction *models.Transaction) error {
	return r.db.WithContext(ctx).Save(transaction).Error
}

// Delete removes the transaction and the debt it funds. Run it inside a transaction.
func (r *transactionRepository) Delete(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)

	var debtIDs []uint
	if err := db.Model(&models.Debt{}).Where("transaction_id = ?", id).Pluck("id", &debtIDs).Error; err != nil {
		return err
	}
	if err := deleteDebts(db, debtIDs); err != nil {
		return err
	}

	res := db.Delete(&models.Transaction{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func applyWindow(db *gorm.DB, column string, window models.DateWindow) *gorm.DB {
	if window.From != nil {
		db = db.Where(column+" >= ?", models.DateOnly(*window.From))
	}
	if window.To != nil {
		db = db.Where(column+" <= ?", models.DateOnly(*window.To))
	}
	return db
}
