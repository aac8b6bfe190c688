package notify

import (
	"context"

	"github.com/sjperalta/gestor-negocios-api/internal/models"
	"github.com/sjperalta/gestor-negocios-api/internal/repository"
)

// InAppSink stores a Notification row per recipient
type InAppSink struct {
	repo repository.NotificationRepository
}

// NewInAppSink creates a sink writing through repo
func NewInAppSink(repo repository.NotificationRepository) *InAppSink {
	return &InAppSink{repo: repo}
}

// Name implements Sink
func (s *InAppSink) Name() string {
	return "in_app"
}

// Notify implements Sink
func (s *InAppSink) Notify(ctx context.Context, to Recipient, msg Message) error {
	if to.UserID == 0 {
		return nil
	}
	notification := &models.Notification{
		UserID:  to.UserID,
		Title:   msg.Title,
		Message: msg.Text,
	}
	if msg.BusinessID != 0 {
		businessID := msg.BusinessID
		notification.BusinessID = &businessID
	}
	if msg.Type != "" {
		notifType := msg.Type
		notification.NotificationType = &notifType
	}
	return s.repo.Create(ctx, notification)
}
