package api

import (
	"net/http"

	"github.com/fintrack/fintrack-api/internal/api/shared"
	"github.com/fintrack/fintrack-api/internal/domain"
	"github.com/fintrack/fintrack-api/internal/store"
)

// BudgetHandler handles budget creation and reads.
type BudgetHandler struct {
	budgets store.BudgetStore
}

// NewBudgetHandler creates a new BudgetHandler with the given dependencies.
func NewBudgetHandler(budgets store.BudgetStore) *BudgetHandler {
	return &BudgetHandler{budgets: budgets}
}

// CreateBudget handles POST /api/v1/budgets.
// An inverted date range is accepted and persisted; the store flags it in
// the logs.
func (h *BudgetHandler) CreateBudget(w http.ResponseWriter, r *http.Request) {
	var req CreateBudgetRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	budget, err := domain.NewBudget(req.UserID, req.Name, req.Amount, req.StartDate, req.EndDate)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.budgets.Create(r.Context(), budget); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, budget)
}

// ListBudgets handles GET /api/v1/budgets. An optional user_id query
// parameter narrows the result to one owner.
func (h *BudgetHandler) ListBudgets(w http.ResponseWriter, r *http.Request) {
	userID, byUser, err := getUserIDQuery(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var budgets []*domain.Budget
	if byUser {
		budgets, err = h.budgets.ListByUserID(r.Context(), userID)
	} else {
		budgets, err = h.budgets.List(r.Context())
	}
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, budgets)
}

// GetBudget handles GET /api/v1/budgets/{id}.
func (h *BudgetHandler) GetBudget(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	budget, err := h.budgets.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, budget)
}
