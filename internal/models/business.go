package models

import (
	"time"

	"gorm.io/gorm"
)

// Business is a bookkeeping unit shared by its member users
type Business struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	FoundedOn   time.Time `gorm:"type:date;not null" json:"founded_on"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for Business
func (Business) TableName() string {
	return "businesses"
}

// BeforeCreate defaults the founding date to today
func (b *Business) BeforeCreate(tx *gorm.DB) error {
	if b.FoundedOn.IsZero() {
		b.FoundedOn = Today()
	} else {
		b.FoundedOn = DateOnly(b.FoundedOn)
	}
	return nil
}

// Membership links a user to a business. It carries no other attributes.
type Membership struct {
	UserID     uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	BusinessID uint      `gorm:"primaryKey;autoIncrement:false;index" json:"business_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName specifies the table name for Membership
func (Membership) TableName() string {
	return "memberships"
}

// BusinessResponse is the JSON response format for businesses
type BusinessResponse struct {
	ID          uint          `json:"id"`
	Name        string        `json:"name"`
	Description *string       `json:"description"`
	FoundedOn   string        `json:"founded_on"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	Members     []UserSummary `json:"members,omitempty"`
}

// ToResponse converts Business to BusinessResponse
func (b *Business) ToResponse() BusinessResponse {
	return BusinessResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		FoundedOn:   FormatDate(b.FoundedOn),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
