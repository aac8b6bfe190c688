package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/gestor-negocios-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DebtRepository defines the interface for debt data access
type DebtRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Debt, error)
	FindDetail(ctx context.Context, id uint) (*models.Debt, error)
	FindByIDForUpdate(ctx context.Context, id uint) (*models.Debt, error)
	ExistsForTransaction(ctx context.Context, transactionID uint) (bool, error)
	ListByBusiness(ctx context.Context, businessID uint, status string) ([]models.Debt, error)
	ListByClient(ctx context.Context, clientID uint) ([]models.Debt, error)
	Positions(ctx context.Context, businessID uint) ([]models.DebtPosition, error)
	OpenPositionsByClients(ctx context.Context, clientIDs []uint) ([]models.DebtPosition, error)
	Create(ctx context.Context, debt *models.Debt) error
	UpdatePayment(ctx context.Context, debt *models.Debt, previousPaid decimal.Decimal) error
	UpdateDescription(ctx context.Context, id uint, description *string) error
	Delete(ctx context.Context, id uint) error
}

type debtRepository struct {
	db *gorm.DB
}

// NewDebtRepository creates a new debt repository
func NewDebtRepository(db *gorm.DB) DebtRepository {
	return &debtRepository{db: db}
}

func (r *debtRepository) FindByID(ctx context.Context, id uint) (*models.Debt, error) {
	var debt models.Debt
	err := r.db.WithContext(ctx).First(&debt, id).Error
	if err != nil {
		return nil, err
	}
	return &debt, nil
}

// FindDetail loads the debt with its client and transaction
func (r *debtRepository) FindDetail(ctx context.Context, id uint) (*models.Debt, error) {
	var debt models.Debt
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Transaction").
		First(&debt, id).Error
	if err != nil {
		return nil, err
	}
	return &debt, nil
}

// FindByIDForUpdate reads the debt holding a row lock until the surrounding transaction ends
func (r *debtRepository) FindByIDForUpdate(ctx context.Context, id uint) (*models.Debt, error) {
	var debt models.Debt
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&debt, id).Error
	if err != nil {
		return nil, err
	}
	return &debt, nil
}

func (r *debtRepository) ExistsForTransaction(ctx context.Context, transactionID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Debt{}).
		Where("transaction_id = ?", transactionID).
		Count(&count).Error
	return count > 0, err
}

// ListByBusiness returns the business debts with client and transaction, newest first
func (r *debtRepository) ListByBusiness(ctx context.Context, businessID uint, status string) ([]models.Debt, error) {
	var debts []models.Debt
	db := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Transaction").
		Joins("JOIN clients ON clients.id = debts.client_id").
		Where("clients.business_id = ?", businessID)

	if status != "" {
		db = db.Where("debts.status = ?", status)
	}

	err := db.Order("debts.created_at DESC").Order("debts.id DESC").Find(&debts).Error
	return debts, err
}

// ListByClient returns the client debts, newest first
func (r *debtRepository) ListByClient(ctx context.Context, clientID uint) ([]models.Debt, error) {
	var debts []models.Debt
	err := r.db.WithContext(ctx).
		Preload("Transaction").
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&debts).Error
	return debts, err
}

// Positions projects every debt of the business for aggregation
func (r *debtRepository) Positions(ctx context.Context, businessID uint) ([]models.DebtPosition, error) {
	var rows []models.DebtPosition
	err := r.db.WithContext(ctx).
		Model(&models.Debt{}).
		Select("debts.id", "debts.client_id", "debts.total_amount", "debts.paid_amount", "debts.status").
		Joins("JOIN clients ON clients.id = debts.client_id").
		Where("clients.business_id = ?", businessID).
		Scan(&rows).Error
	return rows, err
}

// OpenPositionsByClients projects the non-settled debts of the given clients
func (r *debtRepository) OpenPositionsByClients(ctx context.Context, clientIDs []uint) ([]models.DebtPosition, error) {
	var rows []models.DebtPosition
	if len(clientIDs) == 0 {
		return rows, nil
	}
	err := r.db.WithContext(ctx).
		Model(&models.Debt{}).
		Select("id", "client_id", "total_amount", "paid_amount", "status").
		Where("client_id IN ? AND status <> ?", clientIDs, models.DebtStatusSettled).
		Scan(&rows).Error
	return rows, err
}

func (r *debtRepository) Create(ctx context.Context, debt *models.Debt) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(debt).Error)
}

// UpdatePayment writes paid amount and status only if the row still holds
// previousPaid. A lost race yields ErrConcurrentUpdate.
func (r *debtRepository) UpdatePayment(ctx context.Context, debt *models.Debt, previousPaid decimal.Decimal) error {
	res := r.db.WithContext(ctx).
		Model(&models.Debt{}).
		Where("id = ? AND paid_amount = ?", debt.ID, previousPaid).
		Updates(map[string]interface{}{
			"paid_amount": debt.PaidAmount,
			"status":      debt.Status,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrConcurrentUpdate
	}
	return nil
}

func (r *debtRepository) UpdateDescription(ctx context.Context, id uint, description *string) error {
	return r.db.WithContext(ctx).
		Model(&models.Debt{}).
		Where("id = ?", id).
		Update("description", description).Error
}

// Delete removes the debt and its installments. Run it inside a transaction.
func (r *debtRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Where("debt_id = ?", id).Delete(&models.Installment{}).Error; err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Delete(&models.Debt{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func deleteDebts(db *gorm.DB, debtIDs []uint) error {
	if len(debtIDs) == 0 {
		return nil
	}
	if err := db.Where("debt_id IN ?", debtIDs).Delete(&models.Installment{}).Error; err != nil {
		return err
	}
	return db.Where("id IN ?", debtIDs).Delete(&models.Debt{}).Error
}

// InstallmentRepository defines the interface for installment data access
type InstallmentRepository interface {
	Create(ctx context.Context, installment *models.Installment) error
	ListByDebt(ctx context.Context, debtID uint) ([]models.Installment, error)
}

type installmentRepository struct {
	db *gorm.DB
}

// NewInstallmentRepository creates a new installment repository
func NewInstallmentRepository(db *gorm.DB) InstallmentRepository {
	return &installmentRepository{db: db}
}

func (r *installmentRepository) Create(ctx context.Context, installment *models.Installment) error {
	return r.db.WithContext(ctx).Create(installment).Error
}

// ListByDebt returns the debt installments, most recent date first
func (r *installmentRepository) ListByDebt(ctx context.Context, debtID uint) ([]models.Installment, error) {
	var installments []models.Installment
	err := r.db.WithContext(ctx).
		Where("debt_id = ?", debtID).
		Order("date DESC").
		Order("id DESC").
		Find(&installments).Error
	return installments, err
}
