package repository

import (
	"context"

	"github.com/sjperalta/gestor-negocios-api/internal/models"
	"gorm.io/gorm"
)

// BusinessRepository defines the interface for business data access
type BusinessRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Business, error)
	ListByMember(ctx context.Context, userID uint) ([]models.Business, error)
	Create(ctx context.Context, business *models.Business) error
	Update(ctx context.Context, business *models.Business) error
	Delete(ctx context.Context, id uint) error
}

type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository creates a new business repository
func NewBusinessRepository(db *gorm.DB) BusinessRepository {
	return &businessRepository{db: db}
}

func (r *businessRepository) FindByID(ctx context.Context, id uint) (*models.Business, error) {
	var business models.Business
	err := r.db.WithContext(ctx).First(&business, id).Error
	if err != nil {
		return nil, err
	}
	return &business, nil
}

// ListByMember returns the businesses the user belongs to, newest first
func (r *businessRepository) ListByMember(ctx context.Context, userID uint) ([]models.Business, error) {
	var businesses []models.Business
	err := r.db.WithContext(ctx).
		Joins("JOIN memberships ON memberships.business_id = businesses.id").
		Where("memberships.user_id = ?", userID).
		Order("businesses.created_at DESC").
		Order("businesses.id DESC").
		Find(&businesses).Error
	return businesses, err
}

func (r *businessRepository) Create(ctx context.Context, business *models.Business) error {
	return r.db.WithContext(ctx).Create(business).Error
}

func (r *businessRepository) Update(ctx context.Context, business *models.Business) error {
	return r.db.WithContext(ctx).Save(business).Error
}

// Delete removes the business and everything it owns. Run it inside a transaction.
func (r *businessRepository) Delete(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)

	var clientIDs []uint
	if err := db.Model(&models.Client{}).Where("business_id = ?", id).Pluck("id", &clientIDs).Error; err != nil {
		return err
	}

	if len(clientIDs) > 0 {
		var debtIDs []uint
		if err := db.Model(&models.Debt{}).Where("client_id IN ?", clientIDs).Pluck("id", &debtIDs).Error; err != nil {
			return err
		}
		if err := deleteDebts(db, debtIDs); err != nil {
			return err
		}
	}

	steps := []interface{}{
		&models.Client{},
		&models.Transaction{},
		&models.Membership{},
		&models.Notification{},
	}
	for _, model := range steps {
		if err := db.Where("business_id = ?", id).Delete(model).Error; err != nil {
			return err
		}
	}

	res := db.Delete(&models.Business{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MembershipRepository defines the interface for business membership access
type MembershipRepository interface {
	IsMember(ctx context.Context, businessID, userID uint) (bool, error)
	Add(ctx context.Context, businessID, userID uint) error
	Remove(ctx context.Context, businessID, userID uint) error
	CountMembers(ctx context.Context, businessID uint) (int64, error)
	ListMembers(ctx context.Context, businessID uint) ([]models.User, error)
}

type membershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

func (r *membershipRepository) IsMember(ctx context.Context, businessID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Membership{}).
		Where("business_id = ? AND user_id = ?", businessID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *membershipRepository) Add(ctx context.Context, businessID, userID uint) error {
	membership := &models.Membership{BusinessID: businessID, UserID: userID}
	return translateError(r.db.WithContext(ctx).Create(membership).Error)
}

func (r *membershipRepository) Remove(ctx context.Context, businessID, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("business_id = ? AND user_id = ?", businessID, userID).
		Delete(&models.Membership{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *membershipRepository) CountMembers(ctx context.Context, businessID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Membership{}).
		Where("business_id = ?", businessID).
		Count(&count).Error
	return count, err
}

// ListMembers returns the member users ordered by name
func (r *membershipRepository) ListMembers(ctx context.Context, businessID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Joins("JOIN memberships ON memberships.user_id = users.id").
		Where("memberships.business_id = ?", businessID).
		Order("users.full_name ASC").
		Find(&users).Error
	return users, err
}
