package repository

import (
	"context"
	"strings"
	"time"

	"github.com/sjperalta/gestor-negocios-api/internal/models"
	"gorm.io/gorm"
)

// NotificationRepository defines the interface for notification data access
type NotificationRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Notification, error)
	FindByUser(ctx context.Context, userID uint, query *ListQuery) ([]models.Notification, int64, error)
	Create(ctx context.Context, notification *models.Notification) error
	Update(ctx context.Context, notification *models.Notification) error
	CountUnread(ctx context.Context, userID uint) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) FindByID(ctx context.Context, id uint) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.WithContext(ctx).First(&notification, id).Error
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) FindByUser(ctx context.Context, userID uint, query *ListQuery) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Notification{}).Where("user_id = ?", userID)

	switch strings.ToLower(query.Filters["status"]) {
	case "unread":
		db = db.Where("read_at IS NULL")
	case "read":
		db = db.Where("read_at IS NOT NULL")
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	db = db.Order("created_at DESC").Order("id DESC")

	if query.PerPage > 0 {
		db = db.Offset(query.offset()).Limit(query.PerPage)
	}

	err := db.Find(&notifications).Error
	return notifications, total, err
}

func (r *notificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) Update(ctx context.Context, notification *models.Notification) error {
	return r.db.WithContext(ctx).Save(notification).Error
}

func (r *notificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND read_at IS NULL", userID).
		Count(&count).Error
	return count, err
}

// RefreshTokenRepository defines the interface for refresh token data access
type RefreshTokenRepository interface {
	FindByToken(ctx context.Context, token string) (*models.RefreshToken, error)
	Create(ctx context.Context, rt *models.RefreshToken) error
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type refreshTokenRepository struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

func (r *refreshTokenRepository) FindByToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	var rt models.RefreshToken
	err := r.db.WithContext(ctx).Where("token = ?", token).First(&rt).Error
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *refreshTokenRepository) Create(ctx context.Context, rt *models.RefreshToken) error {
	return translateError(r.db.WithContext(ctx).Create(rt).Error)
}

func (r *refreshTokenRepository) Delete(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Where("token = ?", token).Delete(&models.RefreshToken{}).Error
}

func (r *refreshTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at IS NOT NULL AND expires_at < ?", now).
		Delete(&models.RefreshToken{})
	return res.RowsAffected, res.Error
}
