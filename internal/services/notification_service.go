package services

import (
	"context"

	"github.com/sjperalta/gestor-negocios-api/internal/models"
	"github.com/sjperalta/gestor-negocios-api/internal/repository"
)

// NotificationService exposes a user's in-app notifications
type NotificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// FindByUser lists the notifications of the user, newest first
func (s *NotificationService) FindByUser(ctx context.Context, userID uint, query *repository.ListQuery) ([]models.Notification, int64, error) {
	return s.repo.FindByUser(ctx, userID, query)
}

// CountUnread returns how many notifications the user has not read
func (s *NotificationService) CountUnread(ctx context.Context, userID uint) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

// MarkAsRead marks one of the user's notifications as read. Notifications of
// other users are reported as missing.
func (s *NotificationService) MarkAsRead(ctx context.Context, userID, id uint) (*models.Notification, error) {
	notification, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookup(err, errNotificationNotFound)
	}
	if notification.UserID != userID {
		return nil, errNotificationNotFound
	}
	if notification.IsRead() {
		return notification, nil
	}
	notification.MarkAsRead()
	if err := s.repo.Update(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}
