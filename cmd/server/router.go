package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	apimiddleware "github.com/fintrack/fintrack-api/internal/api/middleware"
	"github.com/fintrack/fintrack-api/internal/api/shared"
)

// setupRouter builds the chi router with middleware and all API routes.
func (app *application) setupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.Trace)

	// Liveness probe.
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, map[string]int{"Mic check": 12})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/users/register", app.userHandler.Register)
		r.Get("/users", app.userHandler.ListUsers)
		r.Get("/user/login", app.userHandler.Login)

		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", app.accountHandler.CreateAccount)
			r.Get("/", app.accountHandler.ListAccounts)
			r.Get("/{id}", app.accountHandler.GetAccount)
		})

		r.Route("/budgets", func(r chi.Router) {
			r.Post("/", app.budgetHandler.CreateBudget)
			r.Get("/", app.budgetHandler.ListBudgets)
			r.Get("/{id}", app.budgetHandler.GetBudget)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Post("/", app.transactionHandler.CreateTransaction)
			r.Get("/", app.transactionHandler.ListTransactions)
			r.Get("/{id}", app.transactionHandler.GetTransaction)
		})

		r.Route("/loyalty-programs", func(r chi.Router) {
			r.Post("/", app.loyaltyHandler.CreateLoyaltyProgram)
			r.Get("/", app.loyaltyHandler.ListLoyaltyPrograms)
			r.Get("/{id}", app.loyaltyHandler.GetLoyaltyProgram)
		})
	})

	return r
}
