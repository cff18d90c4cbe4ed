package main

import (
	"database/sql"
	"log/slog"

	"github.com/fintrack/fintrack-api/internal/api"
	"github.com/fintrack/fintrack-api/internal/config"
	"github.com/fintrack/fintrack-api/internal/platform/postgres"
	"github.com/fintrack/fintrack-api/internal/service"
	"github.com/fintrack/fintrack-api/internal/service/auth"
	"golang.org/x/crypto/bcrypt"
)

// application holds the wired dependency graph: stores over the shared
// connection pool, services on top of the stores, and handlers on top of
// the services.
type application struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *sql.DB

	userHandler        *api.UserHandler
	accountHandler     *api.AccountHandler
	budgetHandler      *api.BudgetHandler
	transactionHandler *api.TransactionHandler
	loyaltyHandler     *api.LoyaltyProgramHandler
}

func newApplication(cfg *config.Config, log *slog.Logger, db *sql.DB) *application {
	userStore := postgres.NewUserStore(db, log)
	accountStore := postgres.NewAccountStore(db, log)
	budgetStore := postgres.NewBudgetStore(db, log)
	transactionStore := postgres.NewTransactionStore(db, log)
	loyaltyStore := postgres.NewLoyaltyProgramStore(db, log)

	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	userService := service.NewUserService(userStore, hasher, db, log)

	return &application{
		cfg:    cfg,
		logger: log,
		db:     db,

		userHandler:        api.NewUserHandler(userService),
		accountHandler:     api.NewAccountHandler(accountStore),
		budgetHandler:      api.NewBudgetHandler(budgetStore),
		transactionHandler: api.NewTransactionHandler(transactionStore),
		loyaltyHandler:     api.NewLoyaltyProgramHandler(loyaltyStore),
	}
}
