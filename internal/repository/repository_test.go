package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sjperalta/gestor-negocios-api/internal/models"
	"github.com/sjperalta/gestor-negocios-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestClientRepository_IdentityUniquePerBusiness(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := NewClientRepository(db)
	owner := testutil.CreateUser(t, db, "owner@example.com")
	bizA := testutil.CreateBusiness(t, db, "A", owner)
	bizB := testutil.CreateBusiness(t, db, "B", owner)

	require.NoError(t, repo.Create(ctx, &models.Client{BusinessID: bizA.ID, Identity: "ID1", Name: "Uno"}))

	err := repo.Create(ctx, &models.Client{BusinessID: bizA.ID, Identity: "ID1", Name: "Otro"})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	require.NoError(t, repo.Create(ctx, &models.Client{BusinessID: bizB.ID, Identity: "ID1", Name: "Uno en B"}))

	taken, err := repo.IdentityTaken(ctx, bizA.ID, "ID1", 0)
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestClientRepository_ListByBusinessOrdersByName(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	owner := testutil.CreateUser(t, db, "owner@example.com")
	biz := testutil.CreateBusiness(t, db, "A", owner)
	for _, name := range []string{"Zoila", "Ana", "Mario"} {
		require.NoError(t, db.Create(&models.Client{BusinessID: biz.ID, Identity: name, Name: name}).Error)
	}

	clients, err := NewClientRepository(db).ListByBusiness(ctx, biz.ID, "")
	require.NoError(t, err)
	require.Len(t, clients, 3)
	assert.Equal(t, "Ana", clients[0].Name)
	assert.Equal(t, "Zoila", clients[2].Name)

	filtered, err := NewClientRepository(db).ListByBusiness(ctx, biz.ID, "mar")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Mario", filtered[0].Name)
}

func TestTransactionRepository_ListFiltersAndOrder(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	owner := testutil.CreateUser(t, db, "owner@example.com")
	biz := testutil.CreateBusiness(t, db, "A", owner)

	testutil.CreateTransaction(t, db, biz.ID, models.TransactionKindIncome, "10.00", testutil.Date(2024, 1, 5))
	testutil.CreateTransaction(t, db, biz.ID, models.TransactionKindExpense, "3.00", testutil.Date(2024, 1, 10))
	testutil.CreateTransaction(t, db, biz.ID, models.TransactionKindIncome, "7.50", testutil.Date(2024, 2, 1))

	repo := NewTransactionRepository(db)

	all, err := repo.List(ctx, biz.ID, models.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "2024-02-01", models.FormatDate(all[0].Date))

	incomes, err := repo.List(ctx, biz.ID, models.TransactionFilter{Kind: models.TransactionKindIncome})
	require.NoError(t, err)
	assert.Len(t, incomes, 2)

	from := testutil.Date(2024, 1, 5)
	to := testutil.Date(2024, 1, 10)
	january, err := repo.AmountRows(ctx, biz.ID, models.DateWindow{From: &from, To: &to})
	require.NoError(t, err)
	assert.Len(t, january, 2)
}

func TestDebtRepository_UpdatePaymentDetectsStaleRead(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	owner := testutil.CreateUser(t, db, "owner@example.com")
	biz := testutil.CreateBusiness(t, db, "A", owner)
	client := testutil.CreateClient(t, db, biz.ID, "C1")
	tx := testutil.CreateTransaction(t, db, biz.ID, models.TransactionKindIncome, "100.00", testutil.Date(2024, 3, 1))
	debt := testutil.CreateDebt(t, db, tx.ID, client.ID, "100.00", "0", models.DebtStatusPending)

	repo := NewDebtRepository(db)

	debt.PaidAmount = testutil.Money("60.00")
	debt.Status = models.DebtStatusPartial
	require.NoError(t, repo.UpdatePayment(ctx, debt, testutil.Money("0")))

	// a second writer that still believes nothing was paid
	debt.PaidAmount = testutil.Money("30.00")
	err := repo.UpdatePayment(ctx, debt, testutil.Money("0"))
	assert.ErrorIs(t, err, ErrConcurrentUpdate)

	stored, err := repo.FindByID(ctx, debt.ID)
	require.NoError(t, err)
	assert.Equal(t, "60.00", stored.PaidAmount.StringFixed(2))
	assert.Equal(t, models.DebtStatusPartial, stored.Status)
}

func TestDebtRepository_UniqueTransaction(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	owner := testutil.CreateUser(t, db, "owner@example.com")
	biz := testutil.CreateBusiness(t, db, "A", owner)
	client := testutil.CreateClient(t, db, biz.ID, "C1")
	tx := testutil.CreateTransaction(t, db, biz.ID, models.TransactionKindIncome, "100.00", testutil.Date(2024, 3, 1))
	testutil.CreateDebt(t, db, tx.ID, client.ID, "100.00", "0", models.DebtStatusPending)

	err := NewDebtRepository(db).Create(ctx, &models.Debt{
		TransactionID: tx.ID,
		ClientID:      client.ID,
		TotalAmount:   testutil.Money("5.00"),
		Status:        models.DebtStatusPending,
	})
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestBusinessRepository_DeleteCascades(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	owner := testutil.CreateUser(t, db, "owner@example.com")
	biz := testutil.CreateBusiness(t, db, "A", owner)
	other := testutil.CreateBusiness(t, db, "B", owner)
	client := testutil.CreateClient(t, db, biz.ID, "C1")
	tx := testutil.CreateTransaction(t, db, biz.ID, models.TransactionKindIncome, "100.00", testutil.Date(2024, 3, 1))
	debt := testutil.CreateDebt(t, db, tx.ID, client.ID, "100.00", "10.00", models.DebtStatusPartial)
	require.NoError(t, db.Create(&models.Installment{DebtID: debt.ID, Amount: testutil.Money("10.00")}).Error)
	testutil.CreateClient(t, db, other.ID, "C1")

	err := db.Transaction(func(gtx *gorm.DB) error {
		return NewBusinessRepository(gtx).Delete(ctx, biz.ID)
	})
	require.NoError(t, err)

	count := func(model interface{}) int64 {
		var n int64
		require.NoError(t, db.Model(model).Count(&n).Error)
		return n
	}
	assert.Equal(t, int64(0), count(&models.Installment{}))
	assert.Equal(t, int64(0), count(&models.Debt{}))
	assert.Equal(t, int64(0), count(&models.Transaction{}))
	assert.Equal(t, int64(1), count(&models.Client{}))
	assert.Equal(t, int64(1), count(&models.Membership{}))
	assert.Equal(t, int64(1), count(&models.Business{}))

	err = NewBusinessRepository(db).Delete(ctx, biz.ID)
	assert.True(t, IsNotFound(err))
}

func TestTransactionRepository_DeleteRemovesFundedDebt(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	owner := testutil.CreateUser(t, db, "owner@example.com")
	biz := testutil.CreateBusiness(t, db, "A", owner)
	client := testutil.CreateClient(t, db, biz.ID, "C1")
	tx := testutil.CreateTransaction(t, db, biz.ID, models.TransactionKindIncome, "40.00", testutil.Date(2024, 3, 1))
	debt := testutil.CreateDebt(t, db, tx.ID, client.ID, "40.00", "0", models.DebtStatusPending)
	require.NoError(t, db.Create(&models.Installment{DebtID: debt.ID, Amount: testutil.Money("1.00")}).Error)

	require.NoError(t, NewTransactionRepository(db).Delete(ctx, tx.ID))

	_, err := NewDebtRepository(db).FindByID(ctx, debt.ID)
	assert.True(t, IsNotFound(err))
	installments, err := NewInstallmentRepository(db).ListByDebt(ctx, debt.ID)
	require.NoError(t, err)
	assert.Empty(t, installments)
	_, err = NewClientRepository(db).FindByID(ctx, client.ID)
	assert.NoError(t, err)
}

func TestMembershipRepository(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	owner := testutil.CreateUser(t, db, "owner@example.com")
	guest := testutil.CreateUser(t, db, "guest@example.com")
	biz := testutil.CreateBusiness(t, db, "A", owner)
	repo := NewMembershipRepository(db)

	ok, err := repo.IsMember(ctx, biz.ID, guest.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Add(ctx, biz.ID, guest.ID))
	assert.ErrorIs(t, repo.Add(ctx, biz.ID, guest.ID), ErrDuplicateKey)

	members, err := repo.ListMembers(ctx, biz.ID)
	require.NoError(t, err)
	assert.Len(t, members, 2)

	require.NoError(t, repo.Remove(ctx, biz.ID, guest.ID))
	assert.True(t, IsNotFound(repo.Remove(ctx, biz.ID, guest.ID)))
}

func TestTransactor_RollsBackOnError(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	owner := testutil.CreateUser(t, db, "owner@example.com")
	boom := errors.New("boom")

	err := NewTransactor(db, 2).WithinTx(ctx, func(repos *Repositories) error {
		business := &models.Business{Name: "Temporal"}
		if err := repos.Business.Create(ctx, business); err != nil {
			return err
		}
		if err := repos.Membership.Add(ctx, business.ID, owner.ID); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var n int64
	require.NoError(t, db.Model(&models.Business{}).Count(&n).Error)
	assert.Equal(t, int64(0), n)
}

func TestTransactor_RetriesTransientErrors(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	attempts := 0
	err := NewTransactor(db, 2).WithinTx(ctx, func(repos *Repositories) error {
		attempts++
		return ErrConcurrentUpdate
	})
	assert.Equal(t, 3, attempts)
	assert.ErrorIs(t, err, ErrUnavailable)

	attempts = 0
	err = NewTransactor(db, 2).WithinTx(ctx, func(repos *Repositories) error {
		attempts++
		if attempts < 2 {
			return ErrConcurrentUpdate
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestTransactor_DoesNotRetryDomainErrors(t *testing.T) {
	db := testutil.NewDB(t)
	attempts := 0
	err := NewTransactor(db, 5).WithinTx(context.Background(), func(repos *Repositories) error {
		attempts++
		return gorm.ErrRecordNotFound
	})
	assert.Equal(t, 1, attempts)
	assert.True(t, IsNotFound(err))
}

func TestDebtRepository_FindByIDForUpdateLocksRowOnPostgres(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "debts" WHERE "debts"."id" = \$1 ORDER BY "debts"."id" LIMIT .+ FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "transaction_id", "client_id", "total_amount", "paid_amount", "status"}).
			AddRow(7, 3, 4, "100.00", "60.00", models.DebtStatusPartial))

	debt, err := NewDebtRepository(db).FindByIDForUpdate(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, uint(7), debt.ID)
	assert.Equal(t, "40.00", debt.OutstandingBalance().StringFixed(2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(ErrConcurrentUpdate))
	assert.True(t, IsTransient(errors.New("database is locked")))
	assert.False(t, IsTransient(gorm.ErrRecordNotFound))
	assert.False(t, IsTransient(nil))
}
