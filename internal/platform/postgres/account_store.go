package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fintrack/fintrack-api/internal/domain"
	"github.com/fintrack/fintrack-api/internal/platform/logger"
	"github.com/fintrack/fintrack-api/internal/store"
)

// AccountStore implements the store.AccountStore interface using a PostgreSQL
// database as the storage backend.
type AccountStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewAccountStore creates a new PostgreSQL implementation of
// store.AccountStore. If logger is nil, the default logger is used.
func NewAccountStore(db store.DBTX, log *slog.Logger) *AccountStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &AccountStore{
		db:     db,
		logger: log.With(slog.String("component", "account_store")),
	}
}

// Ensure AccountStore implements store.AccountStore.
var _ store.AccountStore = (*AccountStore)(nil)

// WithTx implements store.AccountStore.WithTx.
func (s *AccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	return &AccountStore{db: tx, logger: s.logger}
}

// Create implements store.AccountStore.Create.
// Returns store.ErrInvalidEntity if the owning user does not exist.
func (s *AccountStore) Create(ctx context.Context, account *domain.Account) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := account.Validate(); err != nil {
		log.Warn("account validation failed during create",
			slog.String("error", err.Error()),
			slog.Int64("user_id", account.UserID))
		return err
	}

	query := `
		INSERT INTO accounts (user_id, account_type, balance)
		VALUES ($1, $2, $3)
		RETURNING account_id
	`
	err := s.db.QueryRowContext(ctx, query,
		account.UserID,
		string(account.AccountType),
		account.Balance,
	).Scan(&account.AccountID)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during account creation",
				slog.Int64("user_id", account.UserID))
			return fmt.Errorf("%w: user with ID %d not found",
				store.ErrInvalidEntity, account.UserID)
		}
		log.Error("failed to create account",
			slog.String("error", err.Error()),
			slog.Int64("user_id", account.UserID))
		return MapError(err)
	}

	log.Info("account created successfully",
		slog.Int64("account_id", account.AccountID),
		slog.Int64("user_id", account.UserID),
		slog.String("account_type", string(account.AccountType)))
	return nil
}

// GetByID implements store.AccountStore.GetByID.
func (s *AccountStore) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT account_id, user_id, account_type, balance
		FROM accounts
		WHERE account_id = $1
	`

	var account domain.Account
	var accountType string
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&account.AccountID,
		&account.UserID,
		&accountType,
		&account.Balance,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("account not found", slog.Int64("account_id", id))
			return nil, store.ErrAccountNotFound
		}
		log.Error("failed to get account by ID",
			slog.String("error", err.Error()),
			slog.Int64("account_id", id))
		return nil, MapError(err)
	}

	account.AccountType = domain.AccountType(accountType)
	return &account, nil
}

// List implements store.AccountStore.List.
func (s *AccountStore) List(ctx context.Context) ([]*domain.Account, error) {
	return s.queryAccounts(ctx, `
		SELECT account_id, user_id, account_type, balance
		FROM accounts
		ORDER BY account_id ASC
	`)
}

// ListByUserID implements store.AccountStore.ListByUserID.
func (s *AccountStore) ListByUserID(ctx context.Context, userID int64) ([]*domain.Account, error) {
	return s.queryAccounts(ctx, `
		SELECT account_id, user_id, account_type, balance
		FROM accounts
		WHERE user_id = $1
		ORDER BY account_id ASC
	`, userID)
}

// queryAccounts runs a multi-row account query and scans the results.
func (s *AccountStore) queryAccounts(ctx context.Context, query string, args ...any) ([]*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query accounts", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	accounts := []*domain.Account{}
	for rows.Next() {
		var account domain.Account
		var accountType string
		if err := rows.Scan(
			&account.AccountID,
			&account.UserID,
			&accountType,
			&account.Balance,
		); err != nil {
			log.Error("failed to scan account row", slog.String("error", err.Error()))
			return nil, err
		}
		account.AccountType = domain.AccountType(accountType)
		accounts = append(accounts, &account)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return accounts, nil
}
