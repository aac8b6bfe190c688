package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/sjperalta/gestor-negocios-api/internal/config"
	"github.com/sjperalta/gestor-negocios-api/internal/jobs"
	"github.com/sjperalta/gestor-negocios-api/internal/metrics"
	"github.com/sjperalta/gestor-negocios-api/internal/models"
	"github.com/sjperalta/gestor-negocios-api/internal/notify"
	"github.com/sjperalta/gestor-negocios-api/internal/repository"
	"github.com/sjperalta/gestor-negocios-api/internal/statemachine"
	"github.com/sjperalta/gestor-negocios-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// syncDispatcher runs jobs inline so notifications are observable right after a call
type syncDispatcher struct{}

func (syncDispatcher) EnqueueAsync(job jobs.Job) {
	_ = job(context.Background())
}

type recordingSink struct {
	mu         sync.Mutex
	err        error
	messages   []notify.Message
	recipients []notify.Recipient
}

func (s *recordingSink) Name() string { return "recording" }

func (s *recordingSink) Notify(ctx context.Context, to notify.Recipient, msg notify.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
	s.recipients = append(s.recipients, to)
	return s.err
}

func (s *recordingSink) types() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for _, m := range s.messages {
		out = append(out, m.Type)
	}
	return out
}

type ledgerEnv struct {
	db    *gorm.DB
	sink  *recordingSink
	svcs  *Services
	owner *models.User
	biz   *models.Business
}

func newLedgerEnv(t *testing.T) *ledgerEnv {
	t.Helper()
	db := testutil.NewDB(t)
	sink := &recordingSink{}
	repos := repository.NewRepositories(db)
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpirationHours: 1, RefreshTokenDays: 1}

	svcs := NewServices(db, repos, repository.NewTransactor(db, 2), nil, sink, metrics.New(), cfg)
	notifier := NewLedgerNotifier(repos.Membership, sink, syncDispatcher{})
	svcs.Business.notifier = notifier
	svcs.Transaction.notifier = notifier
	svcs.Debt.notifier = notifier

	owner := testutil.CreateUser(t, db, "owner@example.com")
	return &ledgerEnv{
		db:    db,
		sink:  sink,
		svcs:  svcs,
		owner: owner,
		biz:   testutil.CreateBusiness(t, db, "Tienda", owner),
	}
}

func (e *ledgerEnv) debt(t *testing.T, total string) *models.Debt {
	t.Helper()
	client := testutil.CreateClient(t, e.db, e.biz.ID, "C-"+total)
	tx := testutil.CreateTransaction(t, e.db, e.biz.ID, models.TransactionKindIncome, total, testutil.Date(2024, 5, 1))
	debt, err := e.svcs.Debt.Create(context.Background(), e.owner.ID, DebtInput{
		TransactionID: tx.ID,
		ClientID:      client.ID,
		TotalAmount:   testutil.Money(total),
	})
	require.NoError(t, err)
	return debt
}

func (e *ledgerEnv) countInstallments(t *testing.T, debtID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(&models.Installment{}).Where("debt_id = ?", debtID).Count(&n).Error)
	return n
}

func TestApplyInstallment_PaysDownAndSettles(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()
	debt := env.debt(t, "100.00")
	assert.Equal(t, models.DebtStatusPending, debt.Status)

	res, err := env.svcs.Debt.ApplyInstallment(ctx, env.owner.ID, debt.ID, InstallmentInput{Amount: testutil.Money("60.00")})
	require.NoError(t, err)
	assert.Equal(t, "60.00", res.Debt.PaidAmount.StringFixed(2))
	assert.Equal(t, models.DebtStatusPartial, res.Debt.Status)
	assert.Equal(t, "40.00", res.Debt.OutstandingBalance().StringFixed(2))

	_, err = env.svcs.Debt.ApplyInstallment(ctx, env.owner.ID, debt.ID, InstallmentInput{Amount: testutil.Money("41.00")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExceedsBalance)
	var exceeds *statemachine.ExceedsBalanceError
	require.ErrorAs(t, err, &exceeds)
	assert.Equal(t, "El abono (41.00) excede el saldo pendiente (40.00)", err.Error())

	stored, err := env.svcs.Debt.Get(ctx, env.owner.ID, debt.ID)
	require.NoError(t, err)
	assert.Equal(t, "60.00", stored.PaidAmount.StringFixed(2))
	assert.Equal(t, int64(1), env.countInstallments(t, debt.ID))

	res, err = env.svcs.Debt.ApplyInstallment(ctx, env.owner.ID, debt.ID, InstallmentInput{Amount: testutil.Money("40.00")})
	require.NoError(t, err)
	assert.Equal(t, "100.00", res.Debt.PaidAmount.StringFixed(2))
	assert.Equal(t, models.DebtStatusSettled, res.Debt.Status)
	assert.True(t, res.Debt.OutstandingBalance().IsZero())

	_, err = env.svcs.Debt.ApplyInstallment(ctx, env.owner.ID, debt.ID, InstallmentInput{Amount: testutil.Money("0.01")})
	assert.ErrorIs(t, err, ErrExceedsBalance)

	installments, err := env.svcs.Debt.Installments(ctx, env.owner.ID, debt.ID)
	require.NoError(t, err)
	assert.Len(t, installments, 2)
}

func TestApplyInstallment_RejectsInvalidAmounts(t *testing.T) {
	env := newLedgerEnv(t)
	debt := env.debt(t, "10.00")

	for _, amount := range []string{"0", "-5", "1.005"} {
		_, err := env.svcs.Debt.ApplyInstallment(context.Background(), env.owner.ID, debt.ID, InstallmentInput{Amount: testutil.Money(amount)})
		assert.ErrorIs(t, err, ErrValidation, amount)
	}
	assert.Equal(t, int64(0), env.countInstallments(t, debt.ID))
}

func TestApplyInstallment_ConcurrentPaymentsNeverOvershoot(t *testing.T) {
	env := newLedgerEnv(t)
	debt := env.debt(t, "100.00")

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded, rejected := 0, 0
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.svcs.Debt.ApplyInstallment(context.Background(), env.owner.ID, debt.ID, InstallmentInput{Amount: testutil.Money("30.00")})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, ErrExceedsBalance):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, succeeded)
	assert.Equal(t, 2, rejected)

	stored, err := env.svcs.Debt.Get(context.Background(), env.owner.ID, debt.ID)
	require.NoError(t, err)
	assert.Equal(t, "90.00", stored.PaidAmount.StringFixed(2))
	assert.Equal(t, models.DebtStatusPartial, stored.Status)
	assert.Equal(t, int64(3), env.countInstallments(t, debt.ID))
}

func TestApplyInstallment_NotifiesMembersWithoutRollingBackOnFailure(t *testing.T) {
	env := newLedgerEnv(t)
	chatID := "555"
	env.owner.TelegramChatID = &chatID
	require.NoError(t, env.db.Save(env.owner).Error)
	debt := env.debt(t, "80.00")

	env.sink.err = errors.New("telegram unreachable")
	res, err := env.svcs.Debt.ApplyInstallment(context.Background(), env.owner.ID, debt.ID, InstallmentInput{Amount: testutil.Money("20.00")})
	require.NoError(t, err)
	assert.Equal(t, "20.00", res.Debt.PaidAmount.StringFixed(2))
	assert.Equal(t, int64(1), env.countInstallments(t, debt.ID))

	assert.Contains(t, env.sink.types(), models.NotificationTypeInstallmentApplied)
	last := env.sink.messages[len(env.sink.messages)-1]
	assert.Equal(t, env.biz.ID, last.BusinessID)
	assert.Contains(t, last.Text, "$20.00")
	assert.Contains(t, last.Text, "$60.00")
	assert.Equal(t, "555", env.sink.recipients[len(env.sink.recipients)-1].TelegramChatID)
}

func TestCreateDebt_PreconditionChain(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()
	stranger := testutil.CreateUser(t, env.db, "stranger@example.com")
	otherBiz := testutil.CreateBusiness(t, env.db, "Otro", env.owner)

	client := testutil.CreateClient(t, env.db, env.biz.ID, "C1")
	foreignClient := testutil.CreateClient(t, env.db, otherBiz.ID, "C2")
	tx := testutil.CreateTransaction(t, env.db, env.biz.ID, models.TransactionKindIncome, "50.00", testutil.Date(2024, 5, 1))

	tests := []struct {
		name    string
		userID  uint
		in      DebtInput
		wantErr error
	}{
		{"missing transaction", env.owner.ID, DebtInput{TransactionID: 999, ClientID: client.ID, TotalAmount: testutil.Money("5")}, ErrNotFound},
		{"missing client", env.owner.ID, DebtInput{TransactionID: tx.ID, ClientID: 999, TotalAmount: testutil.Money("5")}, ErrNotFound},
		{"cross business", env.owner.ID, DebtInput{TransactionID: tx.ID, ClientID: foreignClient.ID, TotalAmount: testutil.Money("5")}, ErrCrossBusinessMismatch},
		{"not a member", stranger.ID, DebtInput{TransactionID: tx.ID, ClientID: client.ID, TotalAmount: testutil.Money("5")}, ErrForbidden},
		{"zero total", env.owner.ID, DebtInput{TransactionID: tx.ID, ClientID: client.ID, TotalAmount: testutil.Money("0")}, ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.svcs.Debt.Create(ctx, tt.userID, tt.in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	debt, err := env.svcs.Debt.Create(ctx, env.owner.ID, DebtInput{TransactionID: tx.ID, ClientID: client.ID, TotalAmount: testutil.Money("50.00")})
	require.NoError(t, err)
	require.NotNil(t, debt.Client)
	require.NotNil(t, debt.Transaction)
	assert.True(t, debt.PaidAmount.IsZero())

	_, err = env.svcs.Debt.Create(ctx, env.owner.ID, DebtInput{TransactionID: tx.ID, ClientID: client.ID, TotalAmount: testutil.Money("1.00")})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "la transacción ya tiene una deuda asociada", err.Error())
}

func TestDebt_MissingIsReportedBeforeForbidden(t *testing.T) {
	env := newLedgerEnv(t)
	stranger := testutil.CreateUser(t, env.db, "stranger@example.com")
	debt := env.debt(t, "10.00")

	_, err := env.svcs.Debt.Get(context.Background(), stranger.ID, 9999)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = env.svcs.Debt.Get(context.Background(), stranger.ID, debt.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = env.svcs.Debt.ApplyInstallment(context.Background(), stranger.ID, debt.ID, InstallmentInput{Amount: testutil.Money("1")})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDebt_UpdateOnlyTouchesDescription(t *testing.T) {
	env := newLedgerEnv(t)
	debt := env.debt(t, "10.00")
	desc := "fiado de la semana"

	updated, err := env.svcs.Debt.Update(context.Background(), env.owner.ID, debt.ID, DebtUpdate{Description: &desc})
	require.NoError(t, err)
	require.NotNil(t, updated.Description)
	assert.Equal(t, desc, *updated.Description)
	assert.Equal(t, "10.00", updated.TotalAmount.StringFixed(2))

	unchanged, err := env.svcs.Debt.Update(context.Background(), env.owner.ID, debt.ID, DebtUpdate{})
	require.NoError(t, err)
	assert.Equal(t, desc, *unchanged.Description)
}

func TestDebt_ListFiltersByStatus(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()
	open := env.debt(t, "10.00")
	paid := env.debt(t, "20.00")
	_, err := env.svcs.Debt.ApplyInstallment(ctx, env.owner.ID, paid.ID, InstallmentInput{Amount: testutil.Money("20.00")})
	require.NoError(t, err)

	settled, err := env.svcs.Debt.List(ctx, env.owner.ID, env.biz.ID, models.DebtStatusSettled)
	require.NoError(t, err)
	require.Len(t, settled, 1)
	assert.Equal(t, paid.ID, settled[0].ID)

	pending, err := env.svcs.Debt.List(ctx, env.owner.ID, env.biz.ID, models.DebtStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, open.ID, pending[0].ID)

	_, err = env.svcs.Debt.List(ctx, env.owner.ID, env.biz.ID, "overdue")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDebtSummary_MatchesInstallments(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()
	a := env.debt(t, "100.00")
	b := env.debt(t, "50.00")
	env.debt(t, "25.00")

	_, err := env.svcs.Debt.ApplyInstallment(ctx, env.owner.ID, a.ID, InstallmentInput{Amount: testutil.Money("60.00")})
	require.NoError(t, err)
	_, err = env.svcs.Debt.ApplyInstallment(ctx, env.owner.ID, b.ID, InstallmentInput{Amount: testutil.Money("50.00")})
	require.NoError(t, err)

	s, err := env.svcs.Aggregation.DebtSummary(ctx, env.owner.ID, env.biz.ID)
	require.NoError(t, err)
	assert.Equal(t, "175.00", s.TotalDebt.StringFixed(2))
	assert.Equal(t, "65.00", s.TotalOutstanding.StringFixed(2))
	assert.Equal(t, "50.00", s.TotalSettled.StringFixed(2))
	assert.Equal(t, "110.00", s.TotalPaid.StringFixed(2))
	assert.Equal(t, 2, s.ClientsWithDebt)
	assert.True(t, s.TotalOutstanding.Add(s.TotalPaid).Equal(s.TotalDebt))
}

func TestBalance_WindowAndMembership(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()
	stranger := testutil.CreateUser(t, env.db, "stranger@example.com")

	empty, err := env.svcs.Aggregation.Balance(ctx, env.owner.ID, env.biz.ID, models.DateWindow{})
	require.NoError(t, err)
	assert.True(t, empty.TotalIncome.IsZero())
	assert.True(t, empty.TotalExpense.IsZero())
	assert.True(t, empty.Balance.IsZero())

	testutil.CreateTransaction(t, env.db, env.biz.ID, models.TransactionKindIncome, "100.00", testutil.Date(2024, 1, 1))
	testutil.CreateTransaction(t, env.db, env.biz.ID, models.TransactionKindExpense, "30.25", testutil.Date(2024, 1, 31))
	testutil.CreateTransaction(t, env.db, env.biz.ID, models.TransactionKindIncome, "5.00", testutil.Date(2024, 2, 1))

	from := testutil.Date(2024, 1, 1)
	to := testutil.Date(2024, 1, 31)
	january, err := env.svcs.Aggregation.Balance(ctx, env.owner.ID, env.biz.ID, models.DateWindow{From: &from, To: &to})
	require.NoError(t, err)
	assert.Equal(t, "100.00", january.TotalIncome.StringFixed(2))
	assert.Equal(t, "30.25", january.TotalExpense.StringFixed(2))
	assert.Equal(t, "69.75", january.Balance.StringFixed(2))

	_, err = env.svcs.Aggregation.Balance(ctx, stranger.ID, env.biz.ID, models.DateWindow{})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = env.svcs.Aggregation.Balance(ctx, env.owner.ID, env.biz.ID, models.DateWindow{From: &to, To: &from})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestClient_DuplicateIdentityPerBusiness(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()
	other := testutil.CreateBusiness(t, env.db, "Otro", env.owner)

	_, err := env.svcs.Client.Create(ctx, env.owner.ID, env.biz.ID, ClientInput{Identity: "0801", Name: "Ana"})
	require.NoError(t, err)

	_, err = env.svcs.Client.Create(ctx, env.owner.ID, env.biz.ID, ClientInput{Identity: "0801", Name: "Otra Ana"})
	assert.ErrorIs(t, err, ErrDuplicateClientIdentity)

	_, err = env.svcs.Client.Create(ctx, env.owner.ID, other.ID, ClientInput{Identity: "0801", Name: "Ana"})
	assert.NoError(t, err)
}

func TestClient_TotalDebtCountsOpenDebtsOnly(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()
	client := testutil.CreateClient(t, env.db, env.biz.ID, "C1")

	for _, amount := range []string{"40.00", "10.00"} {
		tx := testutil.CreateTransaction(t, env.db, env.biz.ID, models.TransactionKindIncome, amount, testutil.Date(2024, 5, 1))
		debt, err := env.svcs.Debt.Create(ctx, env.owner.ID, DebtInput{TransactionID: tx.ID, ClientID: client.ID, TotalAmount: testutil.Money(amount)})
		require.NoError(t, err)
		if amount == "10.00" {
			_, err = env.svcs.Debt.ApplyInstallment(ctx, env.owner.ID, debt.ID, InstallmentInput{Amount: testutil.Money("10.00")})
			require.NoError(t, err)
		} else {
			_, err = env.svcs.Debt.ApplyInstallment(ctx, env.owner.ID, debt.ID, InstallmentInput{Amount: testutil.Money("15.00")})
			require.NoError(t, err)
		}
	}

	resp, err := env.svcs.Client.Get(ctx, env.owner.ID, client.ID)
	require.NoError(t, err)
	assert.Equal(t, "25.00", resp.TotalDebt.StringFixed(2))

	list, err := env.svcs.Client.List(ctx, env.owner.ID, env.biz.ID, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "25.00", list[0].TotalDebt.StringFixed(2))
}

func TestTransaction_LifecycleNotifiesAndCascades(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()

	tx, err := env.svcs.Transaction.Create(ctx, env.owner.ID, env.biz.ID, TransactionInput{
		Kind:   models.TransactionKindIncome,
		Amount: testutil.Money("75.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.Today(), tx.Date)

	newAmount := testutil.Money("80.00")
	updated, err := env.svcs.Transaction.Update(ctx, env.owner.ID, tx.ID, TransactionUpdate{Amount: &newAmount})
	require.NoError(t, err)
	assert.Equal(t, "80.00", updated.Amount.StringFixed(2))
	assert.Equal(t, models.TransactionKindIncome, updated.Kind)

	bad := "gift"
	_, err = env.svcs.Transaction.Update(ctx, env.owner.ID, tx.ID, TransactionUpdate{Kind: &bad})
	assert.ErrorIs(t, err, ErrValidation)

	client := testutil.CreateClient(t, env.db, env.biz.ID, "C1")
	debt, err := env.svcs.Debt.Create(ctx, env.owner.ID, DebtInput{TransactionID: tx.ID, ClientID: client.ID, TotalAmount: testutil.Money("80.00")})
	require.NoError(t, err)

	require.NoError(t, env.svcs.Transaction.Delete(ctx, env.owner.ID, tx.ID))
	_, err = env.svcs.Debt.Get(ctx, env.owner.ID, debt.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, env.svcs.Transaction.Delete(ctx, env.owner.ID, tx.ID), ErrNotFound)

	assert.Equal(t, []string{
		models.NotificationTypeTransactionCreated,
		models.NotificationTypeTransactionUpdated,
		models.NotificationTypeDebtCreated,
		models.NotificationTypeTransactionDeleted,
	}, env.sink.types())
}

func TestTransaction_ListFilters(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()
	testutil.CreateTransaction(t, env.db, env.biz.ID, models.TransactionKindIncome, "1.00", testutil.Date(2024, 1, 1))
	testutil.CreateTransaction(t, env.db, env.biz.ID, models.TransactionKindExpense, "2.00", testutil.Date(2024, 1, 2))

	expenses, err := env.svcs.Transaction.List(ctx, env.owner.ID, env.biz.ID, models.TransactionFilter{Kind: models.TransactionKindExpense})
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "2.00", expenses[0].Amount.StringFixed(2))

	_, err = env.svcs.Transaction.List(ctx, env.owner.ID, env.biz.ID, models.TransactionFilter{Kind: "other"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBusiness_MembershipRules(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()
	guest := testutil.CreateUser(t, env.db, "guest@example.com")

	created, err := env.svcs.Business.Create(ctx, guest.ID, BusinessInput{Name: "  Panadería  "})
	require.NoError(t, err)
	assert.Equal(t, "Panadería", created.Name)

	mine, err := env.svcs.Business.List(ctx, guest.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, created.ID, mine[0].ID)

	_, err = env.svcs.Business.Create(ctx, guest.ID, BusinessInput{Name: "   "})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.svcs.Business.AddMember(ctx, env.owner.ID, env.biz.ID, guest.ID)
	require.NoError(t, err)
	_, err = env.svcs.Business.AddMember(ctx, env.owner.ID, env.biz.ID, guest.ID)
	assert.ErrorIs(t, err, ErrValidation)
	_, err = env.svcs.Business.AddMember(ctx, env.owner.ID, env.biz.ID, 999)
	assert.ErrorIs(t, err, ErrNotFound)

	members, err := env.svcs.Business.Members(ctx, guest.ID, env.biz.ID)
	require.NoError(t, err)
	assert.Len(t, members, 2)

	require.NoError(t, env.svcs.Business.RemoveMember(ctx, env.owner.ID, env.biz.ID, guest.ID))
	err = env.svcs.Business.RemoveMember(ctx, env.owner.ID, env.biz.ID, env.owner.ID)
	assert.ErrorIs(t, err, ErrValidation)

	_, _, err = env.svcs.Business.Get(ctx, guest.ID, env.biz.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestBusiness_PartialUpdateAndCascadeDelete(t *testing.T) {
	env := newLedgerEnv(t)
	ctx := context.Background()
	desc := "abarrotería"

	updated, err := env.svcs.Business.Update(ctx, env.owner.ID, env.biz.ID, BusinessUpdate{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "Tienda", updated.Name)
	assert.Equal(t, desc, *updated.Description)

	debt := env.debt(t, "30.00")
	_, err = env.svcs.Debt.ApplyInstallment(ctx, env.owner.ID, debt.ID, InstallmentInput{Amount: testutil.Money("5.00")})
	require.NoError(t, err)

	require.NoError(t, env.svcs.Business.Delete(ctx, env.owner.ID, env.biz.ID))
	assert.ErrorIs(t, env.svcs.Business.Delete(ctx, env.owner.ID, env.biz.ID), ErrNotFound)

	for _, model := range []interface{}{&models.Client{}, &models.Transaction{}, &models.Debt{}, &models.Installment{}, &models.Membership{}} {
		var n int64
		require.NoError(t, env.db.Model(model).Count(&n).Error)
		assert.Zero(t, n, "%T", model)
	}

	trail, total, err := env.svcs.Audit.ListByBusiness(ctx, env.biz.ID, 50, 0)
	require.NoError(t, err)
	assert.NotZero(t, total)
	assert.Equal(t, models.AuditActionDelete, trail[0].Action)
}
