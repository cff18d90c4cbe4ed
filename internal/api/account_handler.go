package api

import (
	"net/http"

	"github.com/fintrack/fintrack-api/internal/api/shared"
	"github.com/fintrack/fintrack-api/internal/domain"
	"github.com/fintrack/fintrack-api/internal/store"
)

// AccountHandler handles account creation and reads.
type AccountHandler struct {
	accounts store.AccountStore
}

// NewAccountHandler creates a new AccountHandler with the given dependencies.
func NewAccountHandler(accounts store.AccountStore) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// CreateAccount handles POST /api/v1/accounts.
// Responds 201 with the stored account, or 400 when the owning user does not
// exist.
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req CreateAccountRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	account, err := domain.NewAccount(req.UserID, domain.AccountType(req.AccountType), req.Balance)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.accounts.Create(r.Context(), account); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, account)
}

// ListAccounts handles GET /api/v1/accounts. An optional user_id query
// parameter narrows the result to one owner.
func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	userID, byUser, err := getUserIDQuery(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var accounts []*domain.Account
	if byUser {
		accounts, err = h.accounts.ListByUserID(r.Context(), userID)
	} else {
		accounts, err = h.accounts.List(r.Context())
	}
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, accounts)
}

// GetAccount handles GET /api/v1/accounts/{id}.
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	account, err := h.accounts.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, account)
}
