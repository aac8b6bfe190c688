package handlers

import (
	"github.com/sjperalta/gestor-negocios-api/internal/services"
)

// Handlers holds all handler instances
type Handlers struct {
	Health       *HealthHandler
	Auth         *AuthHandler
	User         *UserHandler
	Business     *BusinessHandler
	Client       *ClientHandler
	Transaction  *TransactionHandler
	Debt         *DebtHandler
	Notification *NotificationHandler
	Job          *JobHandler
}

// NewHandlers creates all handler instances
func NewHandlers(svcs *services.Services) *Handlers {
	RegisterValidators()
	return &Handlers{
		Health:       NewHealthHandler(),
		Auth:         NewAuthHandler(svcs.Auth),
		User:         NewUserHandler(svcs.User),
		Business:     NewBusinessHandler(svcs.Business, svcs.Aggregation),
		Client:       NewClientHandler(svcs.Client),
		Transaction:  NewTransactionHandler(svcs.Transaction),
		Debt:         NewDebtHandler(svcs.Debt, svcs.Aggregation),
		Notification: NewNotificationHandler(svcs.Notification),
		Job:          NewJobHandler(svcs.Job),
	}
}
