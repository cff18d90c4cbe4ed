package api

import (
	"net/http"

	"github.com/fintrack/fintrack-api/internal/api/shared"
	"github.com/fintrack/fintrack-api/internal/domain"
	"github.com/fintrack/fintrack-api/internal/store"
)

// TransactionHandler handles transaction creation and reads.
type TransactionHandler struct {
	transactions store.TransactionStore
}

// NewTransactionHandler creates a new TransactionHandler with the given
// dependencies.
func NewTransactionHandler(transactions store.TransactionStore) *TransactionHandler {
	return &TransactionHandler{transactions: transactions}
}

// CreateTransaction handles POST /api/v1/transactions.
// budget_id may be omitted for an unbudgeted transaction. Responds 400 when
// a referenced user, account or budget does not exist.
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req CreateTransactionRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	txn, err := domain.NewTransaction(
		req.UserID,
		req.AccountID,
		req.BudgetID,
		req.Date,
		req.Amount,
		req.Description,
	)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.transactions.Create(r.Context(), txn); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, txn)
}

// ListTransactions handles GET /api/v1/transactions. An optional user_id
// query parameter narrows the result to one owner.
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	userID, byUser, err := getUserIDQuery(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var txns []*domain.Transaction
	if byUser {
		txns, err = h.transactions.ListByUserID(r.Context(), userID)
	} else {
		txns, err = h.transactions.List(r.Context())
	}
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, txns)
}

// GetTransaction handles GET /api/v1/transactions/{id}.
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	txn, err := h.transactions.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, txn)
}
