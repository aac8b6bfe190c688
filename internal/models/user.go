package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// User represents an account that can belong to one or more businesses
type User struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Email             string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	EncryptedPassword string    `gorm:"column:encrypted_password;not null" json:"-"`
	FullName          string    `gorm:"size:200;not null" json:"full_name"`
	Status            string    `gorm:"size:20;default:active;not null" json:"status"`
	TelegramChatID    *string   `gorm:"size:64" json:"telegram_chat_id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// BeforeCreate hook for setting defaults
func (u *User) BeforeCreate(tx *gorm.DB) error {
	u.Email = NormalizeEmail(u.Email)
	if u.Status == "" {
		u.Status = StatusActive
	}
	return nil
}

// IsActive returns true if user status is active
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// NotificationAddress returns the external chat id, or "" when none is registered
func (u *User) NotificationAddress() string {
	if u.TelegramChatID == nil {
		return ""
	}
	return strings.TrimSpace(*u.TelegramChatID)
}

// NormalizeEmail lowercases and trims an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Status constants
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// UserResponse is the JSON response format for users
type UserResponse struct {
	ID             uint      `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	Status         string    `json:"status"`
	Active         bool      `json:"active"`
	TelegramChatID *string   `json:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		FullName:       u.FullName,
		Status:         u.Status,
		Active:         u.IsActive(),
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt,
	}
}

// UserSummary is the reduced format used in member lists and search results
type UserSummary struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Active   bool   `json:"active"`
}

// ToSummary converts User to UserSummary
func (u *User) ToSummary() UserSummary {
	return UserSummary{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Active:   u.IsActive(),
	}
}
