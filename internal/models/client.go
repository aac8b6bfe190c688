package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client is a customer of a business. Identity is unique per business.
type Client struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	BusinessID uint      `gorm:"not null;uniqueIndex:idx_clients_business_identity" json:"business_id"`
	Identity   string    `gorm:"size:50;not null;uniqueIndex:idx_clients_business_identity" json:"identity"`
	Name       string    `gorm:"size:200;not null;index" json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name for Client
func (Client) TableName() string {
	return "clients"
}

// ClientResponse is the JSON response format for clients
type ClientResponse struct {
	ID         uint      `json:"id"`
	BusinessID uint      `json:"business_id"`
	Identity   string    `json:"identity"`
	Name       string    `json:"name"`
	TotalDebt  Money     `json:"total_debt"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToResponse converts Client to ClientResponse. totalDebt is the outstanding
// balance of the client's open debts, computed by the caller at read time.
func (c *Client) ToResponse(totalDebt decimal.Decimal) ClientResponse {
	return ClientResponse{
		ID:         c.ID,
		BusinessID: c.BusinessID,
		Identity:   c.Identity,
		Name:       c.Name,
		TotalDebt:  NewMoney(totalDebt),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
