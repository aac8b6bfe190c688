package repository

import (
	"context"
	"strings"

	"github.com/sjperalta/gestor-negocios-api/internal/models"
	"gorm.io/gorm"
)

// ClientRepository defines the interface for client data access
type ClientRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Client, error)
	ListByBusiness(ctx context.Context, businessID uint, search string) ([]models.Client, error)
	IdentityTaken(ctx context.Context, businessID uint, identity string, excludeID uint) (bool, error)
	Create(ctx context.Context, client *models.Client) error
	Update(ctx context.Context, client *models.Client) error
	Delete(ctx context.Context, id uint) error
}

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) FindByID(ctx context.Context, id uint) (*models.Client, error) {
	var client models.Client
	err := r.db.WithContext(ctx).First(&client, id).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// ListByBusiness returns the business clients ordered by name
func (r *clientRepository) ListByBusiness(ctx context.Context, businessID uint, search string) ([]models.Client, error) {
	var clients []models.Client
	db := r.db.WithContext(ctx).Where("business_id = ?", businessID)

	if search = strings.TrimSpace(search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		db = db.Where("LOWER(name) LIKE ? OR LOWER(identity) LIKE ?", pattern, pattern)
	}

	err := db.Order("name ASC").Order("id ASC").Find(&clients).Error
	return clients, err
}

// IdentityTaken reports whether another client of the business already uses identity
func (r *clientRepository) IdentityTaken(ctx context.Context, businessID uint, identity string, excludeID uint) (bool, error) {
	var count int64
	db := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("business_id = ? AND identity = ?", businessID, identity)
	if excludeID != 0 {
		db = db.Where("id <> ?", excludeID)
	}
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *clientRepository) Create(ctx context.Context, client *models.Client) error {
	return translateError(r.db.WithContext(ctx).Create(client).Error)
}

func (r *clientRepository) Update(ctx context.Context, client *models.Client) error {
	return translateError(r.db.WithContext(ctx).Save(client).Error)
}

// Delete removes the client with its debts and their installments. Run it inside a transaction.
func (r *clientRepository) Delete(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)

	var debtIDs []uint
	if err := db.Model(&models.Debt{}).Where("client_id = ?", id).Pluck("id", &debtIDs).Error; err != nil {
		return err
	}
	if err := deleteDebts(db, debtIDs); err != nil {
		return err
	}

	res := db.Delete(&models.Client{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
