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

// TransactionStore implements the store.TransactionStore interface using a
// PostgreSQL database as the storage backend.
type TransactionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewTransactionStore creates a new PostgreSQL implementation of
// store.TransactionStore. If logger is nil, the default logger is used.
func NewTransactionStore(db store.DBTX, log *slog.Logger) *TransactionStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &TransactionStore{
		db:     db,
		logger: log.With(slog.String("component", "transaction_store")),
	}
}

// Ensure TransactionStore implements store.TransactionStore.
var _ store.TransactionStore = (*TransactionStore)(nil)

// WithTx implements store.TransactionStore.WithTx.
func (s *TransactionStore) WithTx(tx *sql.Tx) store.TransactionStore {
	return &TransactionStore{db: tx, logger: s.logger}
}

// Create implements store.TransactionStore.Create.
// A nil BudgetID is stored as NULL; the transaction is then unbudgeted.
func (s *TransactionStore) Create(ctx context.Context, txn *domain.Transaction) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := txn.Validate(); err != nil {
		log.Warn("transaction validation failed during create",
			slog.String("error", err.Error()),
			slog.Int64("user_id", txn.UserID))
		return err
	}

	query := `
		INSERT INTO transactions (user_id, account_id, budget_id, date, amount, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING transaction_id
	`
	err := s.db.QueryRowContext(ctx, query,
		txn.UserID,
		txn.AccountID,
		txn.BudgetID,
		txn.Date,
		txn.Amount,
		txn.Description,
	).Scan(&txn.TransactionID)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during transaction creation",
				slog.Int64("user_id", txn.UserID),
				slog.Int64("account_id", txn.AccountID))
			return fmt.Errorf("%w: referenced user, account or budget not found",
				store.ErrInvalidEntity)
		}
		log.Error("failed to create transaction",
			slog.String("error", err.Error()),
			slog.Int64("user_id", txn.UserID),
			slog.Int64("account_id", txn.AccountID))
		return MapError(err)
	}

	log.Info("transaction created successfully",
		slog.Int64("transaction_id", txn.TransactionID),
		slog.Int64("user_id", txn.UserID),
		slog.Int64("account_id", txn.AccountID))
	return nil
}

// GetByID implements store.TransactionStore.GetByID.
func (s *TransactionStore) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT transaction_id, user_id, account_id, budget_id, date, amount, description
		FROM transactions
		WHERE transaction_id = $1
	`

	txn, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("transaction not found", slog.Int64("transaction_id", id))
			return nil, store.ErrTransactionNotFound
		}
		log.Error("failed to get transaction by ID",
			slog.String("error", err.Error()),
			slog.Int64("transaction_id", id))
		return nil, MapError(err)
	}

	return txn, nil
}

// List implements store.TransactionStore.List.
func (s *TransactionStore) List(ctx context.Context) ([]*domain.Transaction, error) {
	return s.queryTransactions(ctx, `
		SELECT transaction_id, user_id, account_id, budget_id, date, amount, description
		FROM transactions
		ORDER BY transaction_id ASC
	`)
}

// ListByUserID implements store.TransactionStore.ListByUserID.
func (s *TransactionStore) ListByUserID(ctx context.Context, userID int64) ([]*domain.Transaction, error) {
	return s.queryTransactions(ctx, `
		SELECT transaction_id, user_id, account_id, budget_id, date, amount, description
		FROM transactions
		WHERE user_id = $1
		ORDER BY transaction_id ASC
	`, userID)
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanTransaction scans one transaction row, converting the nullable budget
// reference.
func scanTransaction(row scanner) (*domain.Transaction, error) {
	var txn domain.Transaction
	var budgetID sql.NullInt64

	err := row.Scan(
		&txn.TransactionID,
		&txn.UserID,
		&txn.AccountID,
		&budgetID,
		&txn.Date,
		&txn.Amount,
		&txn.Description,
	)
	if err != nil {
		return nil, err
	}

	if budgetID.Valid {
		txn.BudgetID = &budgetID.Int64
	}
	return &txn, nil
}

// queryTransactions runs a multi-row transaction query and scans the results.
func (s *TransactionStore) queryTransactions(ctx context.Context, query string, args ...any) ([]*domain.Transaction, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query transactions", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	transactions := []*domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			log.Error("failed to scan transaction row", slog.String("error", err.Error()))
			return nil, err
		}
		transactions = append(transactions, txn)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return transactions, nil
}
