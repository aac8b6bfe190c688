package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sjperalta/gestor-negocios-api/internal/models"
	"github.com/sjperalta/gestor-negocios-api/internal/repository"
)

const maxNameLength = 200

// BusinessInput holds the fields of a new business
type BusinessInput struct {
	Name        string
	Description *string
	FoundedOn   *time.Time
}

// BusinessUpdate holds the fields to change; nil fields are left as they are
type BusinessUpdate struct {
	Name        *string
	Description *string
	FoundedOn   *time.Time
}

// BusinessService handles businesses and their members
type BusinessService struct {
	repos    *repository.Repositories
	tx       repository.Transactor
	notifier *LedgerNotifier
	audit    *AuditService
}

func NewBusinessService(repos *repository.Repositories, tx repository.Transactor, notifier *LedgerNotifier, audit *AuditService) *BusinessService {
	return &BusinessService{repos: repos, tx: tx, notifier: notifier, audit: audit}
}

// Create stores a business and makes the creator its first member
func (s *BusinessService) Create(ctx context.Context, userID uint, in BusinessInput) (*models.Business, error) {
	name, err := validateName(in.Name, "nombre del negocio")
	if err != nil {
		return nil, err
	}

	business := &models.Business{Name: name, Description: in.Description}
	if in.FoundedOn != nil {
		business.FoundedOn = models.DateOnly(*in.FoundedOn)
	}

	err = s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		business.ID = 0
		if err := repos.Business.Create(ctx, business); err != nil {
			return err
		}
		return repos.Membership.Add(ctx, business.ID, userID)
	})
	if err != nil {
		return nil, err
	}

	s.audit.Log(ctx, userID, business.ID, models.AuditActionCreate, "Business", business.ID,
		fmt.Sprintf("Negocio creado: %s", business.Name))
	return business, nil
}

// List returns the businesses the user belongs to, newest first
func (s *BusinessService) List(ctx context.Context, userID uint) ([]models.Business, error) {
	return s.repos.Business.ListByMember(ctx, userID)
}

// Get returns the business with its members
func (s *BusinessService) Get(ctx context.Context, userID, businessID uint) (*models.Business, []models.User, error) {
	business, err := authorizeBusiness(ctx, s.repos, businessID, userID)
	if err != nil {
		return nil, nil, err
	}
	members, err := s.repos.Membership.ListMembers(ctx, businessID)
	if err != nil {
		return nil, nil, err
	}
	return business, members, nil
}

// Update applies the supplied fields
func (s *BusinessService) Update(ctx context.Context, userID, businessID uint, in BusinessUpdate) (*models.Business, error) {
	var business *models.Business
	err := s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		var err error
		business, err = authorizeBusiness(ctx, repos, businessID, userID)
		if err != nil {
			return err
		}
		if in.Name != nil {
			if business.Name, err = validateName(*in.Name, "nombre del negocio"); err != nil {
				return err
			}
		}
		if in.Description != nil {
			business.Description = in.Description
		}
		if in.FoundedOn != nil {
			business.FoundedOn = models.DateOnly(*in.FoundedOn)
		}
		return repos.Business.Update(ctx, business)
	})
	if err != nil {
		return nil, err
	}

	s.audit.Log(ctx, userID, businessID, models.AuditActionUpdate, "Business", businessID,
		fmt.Sprintf("Negocio actualizado: %s", business.Name))
	return business, nil
}

// Delete removes the business with its clients, transactions, debts and memberships
func (s *BusinessService) Delete(ctx context.Context, userID, businessID uint) error {
	err := s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		if _, err := authorizeBusiness(ctx, repos, businessID, userID); err != nil {
			return err
		}
		return lookup(repos.Business.Delete(ctx, businessID), errBusinessNotFound)
	})
	if err != nil {
		return err
	}

	s.audit.Log(ctx, userID, businessID, models.AuditActionDelete, "Business", businessID, "Negocio eliminado")
	return nil
}

// Members lists the members of the business ordered by name
func (s *BusinessService) Members(ctx context.Context, userID, businessID uint) ([]models.User, error) {
	if _, err := authorizeBusiness(ctx, s.repos, businessID, userID); err != nil {
		return nil, err
	}
	return s.repos.Membership.ListMembers(ctx, businessID)
}

// AddMember associates an existing user with the business
func (s *BusinessService) AddMember(ctx context.Context, userID, businessID, memberID uint) (*models.User, error) {
	var (
		business *models.Business
		member   *models.User
		actor    *models.User
	)
	err := s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		var err error
		business, err = authorizeBusiness(ctx, repos, businessID, userID)
		if err != nil {
			return err
		}
		member, err = repos.User.FindByID(ctx, memberID)
		if err != nil {
			return lookup(err, errUserNotFound)
		}
		already, err := repos.Membership.IsMember(ctx, businessID, memberID)
		if err != nil {
			return err
		}
		if already {
			return validationError("Usuario ya está asociado al negocio")
		}
		if err := repos.Membership.Add(ctx, businessID, memberID); err != nil {
			return err
		}
		actor, _ = repos.User.FindByID(ctx, userID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Log(ctx, userID, businessID, models.AuditActionCreate, "Membership", memberID,
		fmt.Sprintf("Miembro agregado: %s", member.Email))
	s.notifier.Publish(memberAddedMessage(actor, business, member))
	return member, nil
}

// RemoveMember detaches a user from the business. The last member cannot be removed.
func (s *BusinessService) RemoveMember(ctx context.Context, userID, businessID, memberID uint) error {
	err := s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		if _, err := authorizeBusiness(ctx, repos, businessID, userID); err != nil {
			return err
		}
		isMember, err := repos.Membership.IsMember(ctx, businessID, memberID)
		if err != nil {
			return err
		}
		if !isMember {
			return errMembershipNotFound
		}
		count, err := repos.Membership.CountMembers(ctx, businessID)
		if err != nil {
			return err
		}
		if count <= 1 {
			return validationError("No se puede eliminar al último miembro del negocio")
		}
		return lookup(repos.Membership.Remove(ctx, businessID, memberID), errMembershipNotFound)
	})
	if err != nil {
		return err
	}

	s.audit.Log(ctx, userID, businessID, models.AuditActionDelete, "Membership", memberID, "Miembro eliminado")
	return nil
}

// AuditTrail returns the audit entries of the business, newest first
func (s *BusinessService) AuditTrail(ctx context.Context, userID, businessID uint, query *repository.ListQuery) ([]models.AuditLog, int64, error) {
	if _, err := authorizeBusiness(ctx, s.repos, businessID, userID); err != nil {
		return nil, 0, err
	}
	offset := 0
	if query.Page > 1 {
		offset = (query.Page - 1) * query.PerPage
	}
	return s.audit.ListByBusiness(ctx, businessID, query.PerPage, offset)
}

func validateName(raw, field string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", validationError("El %s es requerido", field)
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return "", validationError("El %s no puede exceder %d caracteres", field, maxNameLength)
	}
	return name, nil
}
