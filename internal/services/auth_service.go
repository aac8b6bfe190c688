package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/mail"
	"time"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sjperalta/gestor-negocios-api/internal/config"
	"github.com/sjperalta/gestor-negocios-api/internal/models"
	"github.com/sjperalta/gestor-negocios-api/internal/repository"
	"github.com/sjperalta/gestor-negocios-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

var (
	errInvalidCredentials = &Error{Kind: ErrUnauthenticated, Message: "credenciales inválidas"}
	errInactiveAccount    = &Error{Kind: ErrUnauthenticated, Message: "cuenta inactiva o suspendida"}
	errInvalidToken       = &Error{Kind: ErrUnauthenticated, Message: "token inválido"}
	errExpiredToken       = &Error{Kind: ErrUnauthenticated, Message: "token expirado"}
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	cfg              *config.Config
	audit            *AuditService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, rtRepo repository.RefreshTokenRepository, cfg *config.Config, audit *AuditService) *AuthService {
	return &AuthService{
		userRepo:         userRepo,
		refreshTokenRepo: rtRepo,
		cfg:              cfg,
		audit:            audit,
	}
}

// LoginResult represents the result of a login attempt
type LoginResult struct {
	Token        string              `json:"token"`
	RefreshToken string              `json:"refresh_token"`
	User         models.UserResponse `json:"user"`
}

// RegisterInput holds the fields of a new account
type RegisterInput struct {
	FullName       string
	Email          string
	Password       string
	TelegramChatID *string
}

// Register creates an active account
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	name, err := validateName(in.FullName, "nombre")
	if err != nil {
		return nil, err
	}
	email := models.NormalizeEmail(in.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, validationError("Email inválido")
	}
	if utf8.RuneCountInString(in.Password) < minPasswordLength {
		return nil, ErrWeakPassword
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !repository.IsNotFound(err) {
		return nil, err
	}

	hashedPassword, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName:          name,
		Email:             email,
		EncryptedPassword: hashedPassword,
		TelegramChatID:    in.TelegramChatID,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	logger.Info("User registered", "user_id", user.ID)
	return user, nil
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, models.NormalizeEmail(email))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive() {
		return nil, errInactiveAccount
	}

	if !VerifyPassword(password, user.EncryptedPassword) {
		return nil, errInvalidCredentials
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	s.audit.Log(ctx, user.ID, 0, models.AuditActionLogin, "User", user.ID, "Inicio de sesión")
	return result, nil
}

// RefreshToken exchanges a refresh token for a new token pair. The old refresh token is revoked.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginResult, error) {
	rt, err := s.refreshTokenRepo.FindByToken(ctx, refreshToken)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, errInvalidToken
		}
		return nil, err
	}

	if rt.IsExpired() {
		_ = s.refreshTokenRepo.Delete(ctx, refreshToken)
		return nil, errExpiredToken
	}

	user, err := s.userRepo.FindByID(ctx, rt.UserID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, errInvalidToken
		}
		return nil, err
	}

	if !user.IsActive() {
		return nil, errInactiveAccount
	}

	if err := s.refreshTokenRepo.Delete(ctx, refreshToken); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Logout invalidates a refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.refreshTokenRepo.Delete(ctx, refreshToken)
}

// PurgeExpiredTokens deletes refresh tokens past their expiry
func (s *AuthService) PurgeExpiredTokens(ctx context.Context) error {
	removed, err := s.refreshTokenRepo.DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		return err
	}
	if removed > 0 {
		logger.Info("Expired refresh tokens purged", "count", removed)
	}
	return nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*LoginResult, error) {
	token, err := s.generateJWT(user)
	if err != nil {
		return nil, errors.New("error al generar token")
	}

	refreshToken, err := s.generateRefreshToken(ctx, user.ID)
	if err != nil {
		return nil, errors.New("error al generar refresh token")
	}

	return &LoginResult{
		Token:        token,
		RefreshToken: refreshToken,
		User:         user.ToResponse(),
	}, nil
}

// generateJWT creates a new JWT token for a user
func (s *AuthService) generateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     now.Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// generateRefreshToken creates and stores a new refresh token
func (s *AuthService) generateRefreshToken(ctx context.Context, userID uint) (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	token := hex.EncodeToString(bytes)

	days := s.cfg.RefreshTokenDays
	if days <= 0 {
		days = 30
	}
	expiresAt := time.Now().UTC().Add(time.Duration(days) * 24 * time.Hour)

	rt := &models.RefreshToken{
		UserID:    userID,
		Token:     token,
		ExpiresAt: &expiresAt,
	}
	if err := s.refreshTokenRepo.Create(ctx, rt); err != nil {
		return "", err
	}

	return token, nil
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// VerifyPassword compares a password with a hash
func VerifyPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
