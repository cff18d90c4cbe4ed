package postgres_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack/fintrack-api/internal/domain"
	"github.com/fintrack/fintrack-api/internal/platform/postgres"
	"github.com/fintrack/fintrack-api/internal/store"
	"github.com/fintrack/fintrack-api/internal/testdb"
)

// These tests run only when TEST_DATABASE_URL (or DATABASE_URL) points at a
// disposable PostgreSQL instance.

func integrationLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func mustCreateUser(t *testing.T, users store.UserStore, username string) *domain.User {
	t.Helper()
	user, err := domain.NewUser(username, username+"@example.com", "hashedpassword123")
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func TestUserStoreIntegration(t *testing.T) {
	db := testdb.Open(t)
	testdb.Truncate(t, db, "users")

	users := postgres.NewUserStore(db, integrationLogger())
	ctx := context.Background()

	alice := mustCreateUser(t, users, "alice")
	assert.Positive(t, alice.UserID, "create must assign the surrogate key")

	t.Run("duplicate username", func(t *testing.T) {
		dup, err := domain.NewUser("alice", "other@example.com", "hashedpassword123")
		require.NoError(t, err)

		err = users.Create(ctx, dup)
		assert.True(t, errors.Is(err, store.ErrUsernameExists))
	})

	t.Run("get by id", func(t *testing.T) {
		got, err := users.GetByID(ctx, alice.UserID)
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Username)
		assert.Equal(t, "hashedpassword123", got.HashedPassword)
	})

	t.Run("get by unknown id", func(t *testing.T) {
		_, err := users.GetByID(ctx, 999999)
		assert.True(t, errors.Is(err, store.ErrUserNotFound))
	})

	t.Run("get by username", func(t *testing.T) {
		got, err := users.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, alice.UserID, got.UserID)

		_, err = users.GetByUsername(ctx, "nobody")
		assert.True(t, errors.Is(err, store.ErrUserNotFound))
	})

	t.Run("list in insertion order", func(t *testing.T) {
		mustCreateUser(t, users, "bob")

		all, err := users.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "alice", all[0].Username)
		assert.Equal(t, "bob", all[1].Username)
	})
}

func TestAccountStoreIntegration(t *testing.T) {
	db := testdb.Open(t)
	testdb.Truncate(t, db, "users")

	users := postgres.NewUserStore(db, integrationLogger())
	accounts := postgres.NewAccountStore(db, integrationLogger())
	ctx := context.Background()

	owner := mustCreateUser(t, users, "carol")

	t.Run("create and read back", func(t *testing.T) {
		account, err := domain.NewAccount(owner.UserID, domain.AccountTypeChecking, decimal.NewFromFloat(1250.75))
		require.NoError(t, err)
		require.NoError(t, accounts.Create(ctx, account))
		assert.Positive(t, account.AccountID)

		got, err := accounts.GetByID(ctx, account.AccountID)
		require.NoError(t, err)
		assert.True(t, got.Balance.Equal(decimal.NewFromFloat(1250.75)),
			"decimal balances must round-trip exactly")
	})

	t.Run("unknown owner", func(t *testing.T) {
		account, err := domain.NewAccount(999999, domain.AccountTypeSavings, decimal.Zero)
		require.NoError(t, err)

		err = accounts.Create(ctx, account)
		assert.True(t, errors.Is(err, store.ErrInvalidEntity))
	})

	t.Run("list by owner", func(t *testing.T) {
		other := mustCreateUser(t, users, "dave")
		account, err := domain.NewAccount(other.UserID, domain.AccountTypeSavings, decimal.Zero)
		require.NoError(t, err)
		require.NoError(t, accounts.Create(ctx, account))

		owned, err := accounts.ListByUserID(ctx, other.UserID)
		require.NoError(t, err)
		require.Len(t, owned, 1)
		assert.Equal(t, account.AccountID, owned[0].AccountID)
	})
}

func TestBudgetStoreIntegration(t *testing.T) {
	db := testdb.Open(t)
	testdb.Truncate(t, db, "users")

	users := postgres.NewUserStore(db, integrationLogger())
	budgets := postgres.NewBudgetStore(db, integrationLogger())
	ctx := context.Background()

	owner := mustCreateUser(t, users, "frank")

	t.Run("create and read back", func(t *testing.T) {
		budget, err := domain.NewBudget(owner.UserID, "vacation", decimal.NewFromFloat(1200.50),
			time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		require.NoError(t, budgets.Create(ctx, budget))
		assert.Positive(t, budget.BudgetID)

		got, err := budgets.GetByID(ctx, budget.BudgetID)
		require.NoError(t, err)
		assert.Equal(t, "vacation", got.Name)
		assert.True(t, got.Amount.Equal(decimal.NewFromFloat(1200.50)),
			"decimal amounts must round-trip exactly")
		assert.True(t, got.StartDate.Equal(budget.StartDate))
		assert.True(t, got.EndDate.Equal(budget.EndDate))
	})

	t.Run("inverted range is persisted", func(t *testing.T) {
		budget, err := domain.NewBudget(owner.UserID, "backwards", decimal.NewFromInt(100),
			time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		require.NoError(t, budgets.Create(ctx, budget))

		got, err := budgets.GetByID(ctx, budget.BudgetID)
		require.NoError(t, err)
		assert.True(t, got.InvertedRange())
	})

	t.Run("unknown owner", func(t *testing.T) {
		budget, err := domain.NewBudget(999999, "orphan", decimal.NewFromInt(50),
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		err = budgets.Create(ctx, budget)
		assert.True(t, errors.Is(err, store.ErrInvalidEntity))
	})

	t.Run("get by unknown id", func(t *testing.T) {
		_, err := budgets.GetByID(ctx, 999999)
		assert.True(t, errors.Is(err, store.ErrBudgetNotFound))
	})

	t.Run("list by owner", func(t *testing.T) {
		owned, err := budgets.ListByUserID(ctx, owner.UserID)
		require.NoError(t, err)
		require.Len(t, owned, 2)
		assert.Equal(t, "vacation", owned[0].Name)
		assert.Equal(t, "backwards", owned[1].Name)
	})
}

func TestLoyaltyProgramStoreIntegration(t *testing.T) {
	db := testdb.Open(t)
	testdb.Truncate(t, db, "users")

	users := postgres.NewUserStore(db, integrationLogger())
	programs := postgres.NewLoyaltyProgramStore(db, integrationLogger())
	ctx := context.Background()

	owner := mustCreateUser(t, users, "grace")

	t.Run("create and read back", func(t *testing.T) {
		program, err := domain.NewLoyaltyProgram(owner.UserID, "SkyMiles", 12500,
			time.Date(2024, 2, 14, 9, 30, 0, 0, time.UTC))
		require.NoError(t, err)
		require.NoError(t, programs.Create(ctx, program))
		assert.Positive(t, program.LoyaltyID)

		got, err := programs.GetByID(ctx, program.LoyaltyID)
		require.NoError(t, err)
		assert.Equal(t, "SkyMiles", got.ProgramName)
		assert.Equal(t, int64(12500), got.Points)
		assert.True(t, got.LastUpdatedDate.Equal(program.LastUpdatedDate))
	})

	t.Run("negative points are persisted", func(t *testing.T) {
		program, err := domain.NewLoyaltyProgram(owner.UserID, "overdrawn", -200,
			time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		require.NoError(t, programs.Create(ctx, program))

		got, err := programs.GetByID(ctx, program.LoyaltyID)
		require.NoError(t, err)
		assert.Equal(t, int64(-200), got.Points)
	})

	t.Run("unknown owner", func(t *testing.T) {
		program, err := domain.NewLoyaltyProgram(999999, "orphan", 0,
			time.Date(2024, 2, 16, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		err = programs.Create(ctx, program)
		assert.True(t, errors.Is(err, store.ErrInvalidEntity))
	})

	t.Run("get by unknown id", func(t *testing.T) {
		_, err := programs.GetByID(ctx, 999999)
		assert.True(t, errors.Is(err, store.ErrLoyaltyProgramNotFound))
	})

	t.Run("list by owner", func(t *testing.T) {
		owned, err := programs.ListByUserID(ctx, owner.UserID)
		require.NoError(t, err)
		require.Len(t, owned, 2)
		assert.Equal(t, "SkyMiles", owned[0].ProgramName)
		assert.Equal(t, "overdrawn", owned[1].ProgramName)
	})
}

func TestTransactionStoreIntegration(t *testing.T) {
	db := testdb.Open(t)
	testdb.Truncate(t, db, "users")

	users := postgres.NewUserStore(db, integrationLogger())
	accounts := postgres.NewAccountStore(db, integrationLogger())
	budgets := postgres.NewBudgetStore(db, integrationLogger())
	transactions := postgres.NewTransactionStore(db, integrationLogger())
	ctx := context.Background()

	owner := mustCreateUser(t, users, "erin")

	account, err := domain.NewAccount(owner.UserID, domain.AccountTypeChecking, decimal.Zero)
	require.NoError(t, err)
	require.NoError(t, accounts.Create(ctx, account))

	budget, err := domain.NewBudget(owner.UserID, "groceries", decimal.NewFromInt(500),
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, budgets.Create(ctx, budget))

	t.Run("unbudgeted round trip", func(t *testing.T) {
		txn, err := domain.NewTransaction(owner.UserID, account.AccountID, nil,
			time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC), decimal.NewFromFloat(-42.50), "coffee")
		require.NoError(t, err)
		require.NoError(t, transactions.Create(ctx, txn))

		got, err := transactions.GetByID(ctx, txn.TransactionID)
		require.NoError(t, err)
		assert.Nil(t, got.BudgetID)
		assert.Equal(t, "coffee", got.Description)
	})

	t.Run("budgeted round trip", func(t *testing.T) {
		txn, err := domain.NewTransaction(owner.UserID, account.AccountID, &budget.BudgetID,
			time.Date(2024, 1, 6, 12, 0, 0, 0, time.UTC), decimal.NewFromFloat(-80), "groceries")
		require.NoError(t, err)
		require.NoError(t, transactions.Create(ctx, txn))

		got, err := transactions.GetByID(ctx, txn.TransactionID)
		require.NoError(t, err)
		require.NotNil(t, got.BudgetID)
		assert.Equal(t, budget.BudgetID, *got.BudgetID)
	})

	t.Run("unknown budget reference", func(t *testing.T) {
		missing := int64(999999)
		txn, err := domain.NewTransaction(owner.UserID, account.AccountID, &missing,
			time.Date(2024, 1, 7, 12, 0, 0, 0, time.UTC), decimal.NewFromInt(10), "")
		require.NoError(t, err)

		err = transactions.Create(ctx, txn)
		assert.True(t, errors.Is(err, store.ErrInvalidEntity))
	})
}
