package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/gestor-negocios-api/internal/models"
	"github.com/sjperalta/gestor-negocios-api/internal/repository"
)

const maxIdentityLength = 50

// ClientInput holds the fields of a new client
type ClientInput struct {
	Identity string
	Name     string
}

// ClientUpdate holds the fields to change; nil fields are left as they are
type ClientUpdate struct {
	Identity *string
	Name     *string
}

// ClientService handles the clients of a business
type ClientService struct {
	repos *repository.Repositories
	tx    repository.Transactor
	audit *AuditService
}

func NewClientService(repos *repository.Repositories, tx repository.Transactor, audit *AuditService) *ClientService {
	return &ClientService{repos: repos, tx: tx, audit: audit}
}

// Create adds a client to the business. Identity must be unique within the business.
func (s *ClientService) Create(ctx context.Context, userID, businessID uint, in ClientInput) (*models.ClientResponse, error) {
	var client *models.Client
	err := s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		if _, err := authorizeBusiness(ctx, repos, businessID, userID); err != nil {
			return err
		}
		identity, err := validateIdentity(in.Identity)
		if err != nil {
			return err
		}
		name, err := validateName(in.Name, "nombre del cliente")
		if err != nil {
			return err
		}
		client = &models.Client{BusinessID: businessID, Identity: identity, Name: name}
		taken, err := repos.Client.IdentityTaken(ctx, businessID, identity, 0)
		if err != nil {
			return err
		}
		if taken {
			return ErrDuplicateClientIdentity
		}
		return duplicateIdentity(repos.Client.Create(ctx, client))
	})
	if err != nil {
		return nil, err
	}

	s.audit.Log(ctx, userID, businessID, models.AuditActionCreate, "Client", client.ID,
		fmt.Sprintf("Cliente creado: %s (%s)", client.Name, client.Identity))
	resp := client.ToResponse(decimal.Zero)
	return &resp, nil
}

// List returns the clients of the business by name with their open debt
func (s *ClientService) List(ctx context.Context, userID, businessID uint, search string) ([]models.ClientResponse, error) {
	if _, err := authorizeBusiness(ctx, s.repos, businessID, userID); err != nil {
		return nil, err
	}

	clients, err := s.repos.Client.ListByBusiness(ctx, businessID, search)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(clients))
	for i, c := range clients {
		ids[i] = c.ID
	}
	positions, err := s.repos.Debt.OpenPositionsByClients(ctx, ids)
	if err != nil {
		return nil, err
	}
	totals := OutstandingByClient(positions)

	responses := make([]models.ClientResponse, len(clients))
	for i := range clients {
		responses[i] = clients[i].ToResponse(totals[clients[i].ID])
	}
	return responses, nil
}

// Get returns a client with its open debt
func (s *ClientService) Get(ctx context.Context, userID, clientID uint) (*models.ClientResponse, error) {
	client, err := authorizeClient(ctx, s.repos, clientID, userID)
	if err != nil {
		return nil, err
	}
	return s.withDebt(ctx, s.repos, client)
}

// Update applies the supplied fields
func (s *ClientService) Update(ctx context.Context, userID, clientID uint, in ClientUpdate) (*models.ClientResponse, error) {
	var resp *models.ClientResponse
	var client *models.Client
	err := s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		var err error
		client, err = authorizeClient(ctx, repos, clientID, userID)
		if err != nil {
			return err
		}
		var identity, name string
		if in.Identity != nil {
			if identity, err = validateIdentity(*in.Identity); err != nil {
				return err
			}
		}
		if in.Name != nil {
			if name, err = validateName(*in.Name, "nombre del cliente"); err != nil {
				return err
			}
		}
		if in.Identity != nil && identity != client.Identity {
			taken, err := repos.Client.IdentityTaken(ctx, client.BusinessID, identity, client.ID)
			if err != nil {
				return err
			}
			if taken {
				return ErrDuplicateClientIdentity
			}
			client.Identity = identity
		}
		if in.Name != nil {
			client.Name = name
		}
		if err := duplicateIdentity(repos.Client.Update(ctx, client)); err != nil {
			return err
		}
		resp, err = s.withDebt(ctx, repos, client)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.audit.Log(ctx, userID, client.BusinessID, models.AuditActionUpdate, "Client", client.ID,
		fmt.Sprintf("Cliente actualizado: %s (%s)", client.Name, client.Identity))
	return resp, nil
}

// Delete removes the client with its debts and their installments
func (s *ClientService) Delete(ctx context.Context, userID, clientID uint) error {
	var client *models.Client
	err := s.tx.WithinTx(ctx, func(repos *repository.Repositories) error {
		var err error
		client, err = authorizeClient(ctx, repos, clientID, userID)
		if err != nil {
			return err
		}
		return lookup(repos.Client.Delete(ctx, clientID), errClientNotFound)
	})
	if err != nil {
		return err
	}

	s.audit.Log(ctx, userID, client.BusinessID, models.AuditActionDelete, "Client", clientID,
		fmt.Sprintf("Cliente eliminado: %s (%s)", client.Name, client.Identity))
	return nil
}

// Debts lists the debts of the client, newest first
func (s *ClientService) Debts(ctx context.Context, userID, clientID uint) ([]models.Debt, error) {
	if _, err := authorizeClient(ctx, s.repos, clientID, userID); err != nil {
		return nil, err
	}
	return s.repos.Debt.ListByClient(ctx, clientID)
}

func (s *ClientService) withDebt(ctx context.Context, repos *repository.Repositories, client *models.Client) (*models.ClientResponse, error) {
	positions, err := repos.Debt.OpenPositionsByClients(ctx, []uint{client.ID})
	if err != nil {
		return nil, err
	}
	resp := client.ToResponse(OutstandingByClient(positions)[client.ID])
	return &resp, nil
}

func validateIdentity(raw string) (string, error) {
	identity := strings.TrimSpace(raw)
	if identity == "" {
		return "", validationError("La identidad del cliente es requerida")
	}
	if utf8.RuneCountInString(identity) > maxIdentityLength {
		return "", validationError("La identidad no puede exceder %d caracteres", maxIdentityLength)
	}
	return identity, nil
}

// duplicateIdentity maps a lost unique race on (business_id, identity)
func duplicateIdentity(err error) error {
	if errors.Is(err, repository.ErrDuplicateKey) {
		return ErrDuplicateClientIdentity
	}
	return err
}
