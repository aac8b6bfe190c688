package repository

import (
	"context"
	"strings"

	"github.com/sjperalta/gestor-negocios-api/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Search(ctx context.Context, term string, limit int) ([]models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("email = ?", models.NormalizeEmail(email)).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return translateError(r.db.WithContext(ctx).Create(user).Error)
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// Search matches name or email case-insensitively, ordered by name
func (r *userRepository) Search(ctx context.Context, term string, limit int) ([]models.User, error) {
	var users []models.User
	pattern := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"

	db := r.db.WithContext(ctx).
		Where("LOWER(full_name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern).
		Order("full_name ASC")
	if limit > 0 {
		db = db.Limit(limit)
	}

	err := db.Find(&users).Error
	return users, err
}

// ListQuery represents common query parameters
type ListQuery struct {
	Page    int
	PerPage int
	Search  string
	Filters map[string]string
}

// NewListQuery creates a ListQuery with defaults
func NewListQuery() *ListQuery {
	return &ListQuery{
		Page:    1,
		PerPage: 20,
		Filters: make(map[string]string),
	}
}

func (q *ListQuery) offset() int {
	if q.Page < 1 {
		return 0
	}
	return (q.Page - 1) * q.PerPage
}
