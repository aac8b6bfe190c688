package repository

import (
	"gorm.io/gorm"
)

// Repositories holds all repository instances bound to one handle
type Repositories struct {
	User         UserRepository
	Notification NotificationRepository
	RefreshToken RefreshTokenRepository
	Business     BusinessRepository
	Membership   MembershipRepository
	Client       ClientRepository
	Transaction  TransactionRepository
	Debt         DebtRepository
	Installment  InstallmentRepository
}

// NewRepositories creates all repository instances. db may be the pool or an open transaction.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Notification: NewNotificationRepository(db),
		RefreshToken: NewRefreshTokenRepository(db),
		Business:     NewBusinessRepository(db),
		Membership:   NewMembershipRepository(db),
		Client:       NewClientRepository(db),
		Transaction:  NewTransactionRepository(db),
		Debt:         NewDebtRepository(db),
		Installment:  NewInstallmentRepository(db),
	}
}
