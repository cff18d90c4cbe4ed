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

// LoyaltyProgramStore implements the store.LoyaltyProgramStore interface
// using a PostgreSQL database as the storage backend.
type LoyaltyProgramStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewLoyaltyProgramStore creates a new PostgreSQL implementation of
// store.LoyaltyProgramStore. If logger is nil, the default logger is used.
func NewLoyaltyProgramStore(db store.DBTX, log *slog.Logger) *LoyaltyProgramStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &LoyaltyProgramStore{
		db:     db,
		logger: log.With(slog.String("component", "loyalty_store")),
	}
}

// Ensure LoyaltyProgramStore implements store.LoyaltyProgramStore.
var _ store.LoyaltyProgramStore = (*LoyaltyProgramStore)(nil)

// WithTx implements store.LoyaltyProgramStore.WithTx.
func (s *LoyaltyProgramStore) WithTx(tx *sql.Tx) store.LoyaltyProgramStore {
	return &LoyaltyProgramStore{db: tx, logger: s.logger}
}

// Create implements store.LoyaltyProgramStore.Create.
func (s *LoyaltyProgramStore) Create(ctx context.Context, program *domain.LoyaltyProgram) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := program.Validate(); err != nil {
		log.Warn("loyalty program validation failed during create",
			slog.String("error", err.Error()),
			slog.Int64("user_id", program.UserID))
		return err
	}

	query := `
		INSERT INTO loyalty_programs (user_id, program_name, points, last_updated_date)
		VALUES ($1, $2, $3, $4)
		RETURNING loyalty_id
	`
	err := s.db.QueryRowContext(ctx, query,
		program.UserID,
		program.ProgramName,
		program.Points,
		program.LastUpdatedDate,
	).Scan(&program.LoyaltyID)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during loyalty program creation",
				slog.Int64("user_id", program.UserID))
			return fmt.Errorf("%w: user with ID %d not found",
				store.ErrInvalidEntity, program.UserID)
		}
		log.Error("failed to create loyalty program",
			slog.String("error", err.Error()),
			slog.Int64("user_id", program.UserID))
		return MapError(err)
	}

	log.Info("loyalty program created successfully",
		slog.Int64("loyalty_id", program.LoyaltyID),
		slog.Int64("user_id", program.UserID),
		slog.String("program_name", program.ProgramName))
	return nil
}

// GetByID implements store.LoyaltyProgramStore.GetByID.
func (s *LoyaltyProgramStore) GetByID(ctx context.Context, id int64) (*domain.LoyaltyProgram, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT loyalty_id, user_id, program_name, points, last_updated_date
		FROM loyalty_programs
		WHERE loyalty_id = $1
	`

	var program domain.LoyaltyProgram
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&program.LoyaltyID,
		&program.UserID,
		&program.ProgramName,
		&program.Points,
		&program.LastUpdatedDate,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("loyalty program not found", slog.Int64("loyalty_id", id))
			return nil, store.ErrLoyaltyProgramNotFound
		}
		log.Error("failed to get loyalty program by ID",
			slog.String("error", err.Error()),
			slog.Int64("loyalty_id", id))
		return nil, MapError(err)
	}

	return &program, nil
}

// List implements store.LoyaltyProgramStore.List.
func (s *LoyaltyProgramStore) List(ctx context.Context) ([]*domain.LoyaltyProgram, error) {
	return s.queryPrograms(ctx, `
		SELECT loyalty_id, user_id, program_name, points, last_updated_date
		FROM loyalty_programs
		ORDER BY loyalty_id ASC
	`)
}

// ListByUserID implements store.LoyaltyProgramStore.ListByUserID.
func (s *LoyaltyProgramStore) ListByUserID(ctx context.Context, userID int64) ([]*domain.LoyaltyProgram, error) {
	return s.queryPrograms(ctx, `
		SELECT loyalty_id, user_id, program_name, points, last_updated_date
		FROM loyalty_programs
		WHERE user_id = $1
		ORDER BY loyalty_id ASC
	`, userID)
}

// queryPrograms runs a multi-row loyalty program query and scans the results.
func (s *LoyaltyProgramStore) queryPrograms(ctx context.Context, query string, args ...any) ([]*domain.LoyaltyProgram, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query loyalty programs", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	programs := []*domain.LoyaltyProgram{}
	for rows.Next() {
		var program domain.LoyaltyProgram
		if err := rows.Scan(
			&program.LoyaltyID,
			&program.UserID,
			&program.ProgramName,
			&program.Points,
			&program.LastUpdatedDate,
		); err != nil {
			log.Error("failed to scan loyalty program row", slog.String("error", err.Error()))
			return nil, err
		}
		programs = append(programs, &program)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return programs, nil
}
