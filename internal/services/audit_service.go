package services

import (
	"context"

	"github.com/sjperalta/gestor-negocios-api/internal/models"
	"github.com/sjperalta/gestor-negocios-api/pkg/logger"
	"gorm.io/gorm"
)

type clientInfoKey struct{}

type clientInfo struct {
	ip        string
	userAgent string
}

// WithClientInfo attaches the caller address and user agent for audit entries
func WithClientInfo(ctx context.Context, ip, userAgent string) context.Context {
	return context.WithValue(ctx, clientInfoKey{}, clientInfo{ip: ip, userAgent: userAgent})
}

type AuditService struct {
	db *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{db: db}
}

// Log records an audit entry. businessID 0 means the entry is not tied to a business.
// Failures are logged and returned; callers may ignore them.
func (s *AuditService) Log(ctx context.Context, userID, businessID uint, action, entity string, entityID uint, details string) error {
	if s == nil {
		return nil
	}
	info, _ := ctx.Value(clientInfoKey{}).(clientInfo)

	entry := &models.AuditLog{
		UserID:    userID,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Details:   details,
		IPAddress: info.ip,
		UserAgent: info.userAgent,
	}
	if businessID != 0 {
		entry.BusinessID = &businessID
	}

	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		logger.Error("Failed to write audit log", "action", action, "entity", entity, "entity_id", entityID, "error", err.Error())
		return err
	}
	return nil
}

// ListByBusiness retrieves the audit trail of a business, newest first
func (s *AuditService) ListByBusiness(ctx context.Context, businessID uint, limit, offset int) ([]models.AuditLog, int64, error) {
	var logs []models.AuditLog
	var total int64

	db := s.db.WithContext(ctx).Model(&models.AuditLog{}).Where("business_id = ?", businessID)
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	result := db.Order("created_at desc").Order("id desc").Limit(limit).Offset(offset).Find(&logs)
	return logs, total, result.Error
}
