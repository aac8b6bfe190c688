package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/sjperalta/gestor-negocios-api/internal/models"
	"github.com/sjperalta/gestor-negocios-api/internal/repository"
)

const (
	minSearchLength = 4
	searchLimit     = 20
)

var errInvalidPassword = &Error{Kind: ErrValidation, Message: "contraseña actual inválida"}

// UserUpdate holds the profile fields to change; nil fields are left as they are
type UserUpdate struct {
	FullName       *string
	TelegramChatID *string
}

// UserService handles user-related business logic
type UserService struct {
	repo     repository.UserRepository
	auditSvc *AuditService
}

func NewUserService(repo repository.UserRepository, auditSvc *AuditService) *UserService {
	return &UserService{
		repo:     repo,
		auditSvc: auditSvc,
	}
}

// Me returns the authenticated user
func (s *UserService) Me(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, lookup(err, errUserNotFound)
	}
	return user, nil
}

// UpdateMe changes the name or the notification address of the authenticated user.
// An empty telegram_chat_id clears the address.
func (s *UserService) UpdateMe(ctx context.Context, userID uint, in UserUpdate) (*models.User, error) {
	user, err := s.Me(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.FullName != nil {
		name, err := validateName(*in.FullName, "nombre")
		if err != nil {
			return nil, err
		}
		user.FullName = name
	}
	if in.TelegramChatID != nil {
		chatID := strings.TrimSpace(*in.TelegramChatID)
		if chatID == "" {
			user.TelegramChatID = nil
		} else {
			user.TelegramChatID = &chatID
		}
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	s.auditSvc.Log(ctx, userID, 0, models.AuditActionUpdate, "User", userID, "Perfil actualizado")
	return user, nil
}

// ChangePassword replaces the password after checking the current one
func (s *UserService) ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	user, err := s.Me(ctx, userID)
	if err != nil {
		return err
	}
	if !VerifyPassword(currentPassword, user.EncryptedPassword) {
		return errInvalidPassword
	}
	if utf8.RuneCountInString(newPassword) < minPasswordLength {
		return ErrWeakPassword
	}
	hashedPassword, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.EncryptedPassword = hashedPassword
	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}
	s.auditSvc.Log(ctx, userID, 0, models.AuditActionUpdate, "User", userID, "Contraseña actualizada por el usuario")
	return nil
}

// Search finds users by name or email so they can be added to a business
func (s *UserService) Search(ctx context.Context, query string) ([]models.User, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minSearchLength {
		return nil, validationError("La búsqueda debe tener al menos %d caracteres", minSearchLength)
	}
	return s.repo.Search(ctx, query, searchLimit)
}
