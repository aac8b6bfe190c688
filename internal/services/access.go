package services

import (
	"context"

	"github.com/sjperalta/gestor-negocios-api/internal/models"
	"github.com/sjperalta/gestor-negocios-api/internal/repository"
)

// AccessControl decides whether a user may act on a business
type AccessControl struct {
	memberships repository.MembershipRepository
}

// NewAccessControl creates the predicate over a membership repository
func NewAccessControl(memberships repository.MembershipRepository) *AccessControl {
	return &AccessControl{memberships: memberships}
}

// IsMember reports whether the user belongs to the business
func (a *AccessControl) IsMember(ctx context.Context, businessID, userID uint) (bool, error) {
	return a.memberships.IsMember(ctx, businessID, userID)
}

// Authorize returns ErrForbidden unless the user belongs to the business
func (a *AccessControl) Authorize(ctx context.Context, businessID, userID uint) error {
	ok, err := a.IsMember(ctx, businessID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return nil
}

// The helpers below resolve an entity, then its owning business, then check
// membership. A missing entity is reported before a missing membership.

func authorizeBusiness(ctx context.Context, repos *repository.Repositories, businessID, userID uint) (*models.Business, error) {
	business, err := repos.Business.FindByID(ctx, businessID)
	if err != nil {
		return nil, lookup(err, errBusinessNotFound)
	}
	if err := NewAccessControl(repos.Membership).Authorize(ctx, business.ID, userID); err != nil {
		return nil, err
	}
	return business, nil
}

func authorizeClient(ctx context.Context, repos *repository.Repositories, clientID, userID uint) (*models.Client, error) {
	client, err := repos.Client.FindByID(ctx, clientID)
	if err != nil {
		return nil, lookup(err, errClientNotFound)
	}
	if err := NewAccessControl(repos.Membership).Authorize(ctx, client.BusinessID, userID); err != nil {
		return nil, err
	}
	return client, nil
}

func authorizeTransaction(ctx context.Context, repos *repository.Repositories, transactionID, userID uint) (*models.Transaction, error) {
	transaction, err := repos.Transaction.FindByID(ctx, transactionID)
	if err != nil {
		return nil, lookup(err, errTransactionNotFound)
	}
	if err := NewAccessControl(repos.Membership).Authorize(ctx, transaction.BusinessID, userID); err != nil {
		return nil, err
	}
	return transaction, nil
}

// authorizeDebt resolves debt → client → business. With lock set the debt row
// stays locked until the surrounding transaction ends.
func authorizeDebt(ctx context.Context, repos *repository.Repositories, debtID, userID uint, lock bool) (*models.Debt, *models.Client, error) {
	find := repos.Debt.FindByID
	if lock {
		find = repos.Debt.FindByIDForUpdate
	}
	debt, err := find(ctx, debtID)
	if err != nil {
		return nil, nil, lookup(err, errDebtNotFound)
	}
	client, err := repos.Client.FindByID(ctx, debt.ClientID)
	if err != nil {
		return nil, nil, lookup(err, errClientNotFound)
	}
	if err := NewAccessControl(repos.Membership).Authorize(ctx, client.BusinessID, userID); err != nil {
		return nil, nil, err
	}
	return debt, client, nil
}
