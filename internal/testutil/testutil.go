// Package testutil provides an in-memory ledger store and fixtures for tests.
package testutil

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/gestor-negocios-api/internal/database"
	"github.com/sjperalta/gestor-negocios-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens an in-memory SQLite database with the full schema
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// every connection to :memory: is a separate database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(database.Models()...))
	return db
}

// Money parses a decimal literal
func Money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Date builds a calendar date
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// CreateUser inserts an active user
func CreateUser(t testing.TB, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, FullName: email, EncryptedPassword: "x"}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateBusiness inserts a business and makes each user a member
func CreateBusiness(t testing.TB, db *gorm.DB, name string, members ...*models.User) *models.Business {
	t.Helper()
	business := &models.Business{Name: name}
	require.NoError(t, db.Create(business).Error)
	for _, u := range members {
		require.NoError(t, db.Create(&models.Membership{UserID: u.ID, BusinessID: business.ID}).Error)
	}
	return business
}

// CreateClient inserts a client in a business
func CreateClient(t testing.TB, db *gorm.DB, businessID uint, identity string) *models.Client {
	t.Helper()
	client := &models.Client{BusinessID: businessID, Identity: identity, Name: "Cliente " + identity}
	require.NoError(t, db.Create(client).Error)
	return client
}

// CreateTransaction inserts a transaction with the given kind, amount and date
func CreateTransaction(t testing.TB, db *gorm.DB, businessID uint, kind, amount string, date time.Time) *models.Transaction {
	t.Helper()
	tx := &models.Transaction{BusinessID: businessID, Kind: kind, Amount: Money(amount), Date: date}
	require.NoError(t, db.Create(tx).Error)
	return tx
}

// CreateDebt inserts a debt with an explicit paid amount and matching status
func CreateDebt(t testing.TB, db *gorm.DB, transactionID, clientID uint, total, paid, status string) *models.Debt {
	t.Helper()
	debt := &models.Debt{
		TransactionID: transactionID,
		ClientID:      clientID,
		TotalAmount:   Money(total),
		PaidAmount:    Money(paid),
		Status:        status,
	}
	require.NoError(t, db.Create(debt).Error)
	return debt
}
