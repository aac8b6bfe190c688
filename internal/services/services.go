package services

import (
	"github.com/sjperalta/gestor-negocios-api/internal/config"
	"github.com/sjperalta/gestor-negocios-api/internal/jobs"
	"github.com/sjperalta/gestor-negocios-api/internal/metrics"
	"github.com/sjperalta/gestor-negocios-api/internal/notify"
	"github.com/sjperalta/gestor-negocios-api/internal/repository"
	"gorm.io/gorm"
)

// Services holds all service instances
type Services struct {
	Auth         *AuthService
	User         *UserService
	Business     *BusinessService
	Client       *ClientService
	Transaction  *TransactionService
	Debt         *DebtService
	Aggregation  *AggregationService
	Notification *NotificationService
	Audit        *AuditService
	Job          *JobService
}

// NewServices creates all service instances. db is the pool; tx runs the
// mutating operations; sink receives ledger notifications through worker.
func NewServices(db *gorm.DB, repos *repository.Repositories, tx repository.Transactor, worker *jobs.Worker, sink notify.Sink, m *metrics.Metrics, cfg *config.Config) *Services {
	auditSvc := NewAuditService(db)
	notifier := NewLedgerNotifier(repos.Membership, sink, worker)

	return &Services{
		Auth:         NewAuthService(repos.User, repos.RefreshToken, cfg, auditSvc),
		User:         NewUserService(repos.User, auditSvc),
		Business:     NewBusinessService(repos, tx, notifier, auditSvc),
		Client:       NewClientService(repos, tx, auditSvc),
		Transaction:  NewTransactionService(repos, tx, notifier, auditSvc),
		Debt:         NewDebtService(repos, tx, notifier, auditSvc, m),
		Aggregation:  NewAggregationService(repos),
		Notification: NewNotificationService(repos.Notification),
		Audit:        auditSvc,
		Job:          NewJobService(worker),
	}
}
