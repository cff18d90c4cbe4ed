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

// BudgetStore implements the store.BudgetStore interface using a PostgreSQL
// database as the storage backend.
type BudgetStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewBudgetStore creates a new PostgreSQL implementation of
// store.BudgetStore. If logger is nil, the default logger is used.
func NewBudgetStore(db store.DBTX, log *slog.Logger) *BudgetStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &BudgetStore{
		db:     db,
		logger: log.With(slog.String("component", "budget_store")),
	}
}

// Ensure BudgetStore implements store.BudgetStore.
var _ store.BudgetStore = (*BudgetStore)(nil)

// WithTx implements store.BudgetStore.WithTx.
func (s *BudgetStore) WithTx(tx *sql.Tx) store.BudgetStore {
	return &BudgetStore{db: tx, logger: s.logger}
}

// Create implements store.BudgetStore.Create.
// An inverted date range is persisted but logged, matching the
// accepted-but-flagged policy for budgets.
func (s *BudgetStore) Create(ctx context.Context, budget *domain.Budget) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := budget.Validate(); err != nil {
		log.Warn("budget validation failed during create",
			slog.String("error", err.Error()),
			slog.Int64("user_id", budget.UserID))
		return err
	}

	if budget.InvertedRange() {
		log.Warn("budget end date precedes start date",
			slog.Int64("user_id", budget.UserID),
			slog.String("name", budget.Name),
			slog.Time("start_date", budget.StartDate),
			slog.Time("end_date", budget.EndDate))
	}

	query := `
		INSERT INTO budgets (user_id, name, amount, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING budget_id
	`
	err := s.db.QueryRowContext(ctx, query,
		budget.UserID,
		budget.Name,
		budget.Amount,
		budget.StartDate,
		budget.EndDate,
	).Scan(&budget.BudgetID)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during budget creation",
				slog.Int64("user_id", budget.UserID))
			return fmt.Errorf("%w: user with ID %d not found",
				store.ErrInvalidEntity, budget.UserID)
		}
		log.Error("failed to create budget",
			slog.String("error", err.Error()),
			slog.Int64("user_id", budget.UserID))
		return MapError(err)
	}

	log.Info("budget created successfully",
		slog.Int64("budget_id", budget.BudgetID),
		slog.Int64("user_id", budget.UserID),
		slog.String("name", budget.Name))
	return nil
}

// GetByID implements store.BudgetStore.GetByID.
func (s *BudgetStore) GetByID(ctx context.Context, id int64) (*domain.Budget, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT budget_id, user_id, name, amount, start_date, end_date
		FROM budgets
		WHERE budget_id = $1
	`

	var budget domain.Budget
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&budget.BudgetID,
		&budget.UserID,
		&budget.Name,
		&budget.Amount,
		&budget.StartDate,
		&budget.EndDate,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("budget not found", slog.Int64("budget_id", id))
			return nil, store.ErrBudgetNotFound
		}
		log.Error("failed to get budget by ID",
			slog.String("error", err.Error()),
			slog.Int64("budget_id", id))
		return nil, MapError(err)
	}

	return &budget, nil
}

// List implements store.BudgetStore.List.
func (s *BudgetStore) List(ctx context.Context) ([]*domain.Budget, error) {
	return s.queryBudgets(ctx, `
		SELECT budget_id, user_id, name, amount, start_date, end_date
		FROM budgets
		ORDER BY budget_id ASC
	`)
}

// ListByUserID implements store.BudgetStore.ListByUserID.
func (s *BudgetStore) ListByUserID(ctx context.Context, userID int64) ([]*domain.Budget, error) {
	return s.queryBudgets(ctx, `
		SELECT budget_id, user_id, name, amount, start_date, end_date
		FROM budgets
		WHERE user_id = $1
		ORDER BY budget_id ASC
	`, userID)
}

// queryBudgets runs a multi-row budget query and scans the results.
func (s *BudgetStore) queryBudgets(ctx context.Context, query string, args ...any) ([]*domain.Budget, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query budgets", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	budgets := []*domain.Budget{}
	for rows.Next() {
		var budget domain.Budget
		if err := rows.Scan(
			&budget.BudgetID,
			&budget.UserID,
			&budget.Name,
			&budget.Amount,
			&budget.StartDate,
			&budget.EndDate,
		); err != nil {
			log.Error("failed to scan budget row", slog.String("error", err.Error()))
			return nil, err
		}
		budgets = append(budgets, &budget)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return budgets, nil
}
