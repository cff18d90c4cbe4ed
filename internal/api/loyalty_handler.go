package api

import (
	"net/http"

	"github.com/fintrack/fintrack-api/internal/api/shared"
	"github.com/fintrack/fintrack-api/internal/domain"
	"github.com/fintrack/fintrack-api/internal/store"
)

// LoyaltyProgramHandler handles loyalty program creation and reads.
type LoyaltyProgramHandler struct {
	programs store.LoyaltyProgramStore
}

// NewLoyaltyProgramHandler creates a new LoyaltyProgramHandler with the
// given dependencies.
func NewLoyaltyProgramHandler(programs store.LoyaltyProgramStore) *LoyaltyProgramHandler {
	return &LoyaltyProgramHandler{programs: programs}
}

// CreateLoyaltyProgram handles POST /api/v1/loyalty-programs.
func (h *LoyaltyProgramHandler) CreateLoyaltyProgram(w http.ResponseWriter, r *http.Request) {
	var req CreateLoyaltyProgramRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	program, err := domain.NewLoyaltyProgram(req.UserID, req.ProgramName, req.Points, req.LastUpdatedDate)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.programs.Create(r.Context(), program); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, program)
}

// ListLoyaltyPrograms handles GET /api/v1/loyalty-programs. An optional
// user_id query parameter narrows the result to one owner.
func (h *LoyaltyProgramHandler) ListLoyaltyPrograms(w http.ResponseWriter, r *http.Request) {
	userID, byUser, err := getUserIDQuery(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var programs []*domain.LoyaltyProgram
	if byUser {
		programs, err = h.programs.ListByUserID(r.Context(), userID)
	} else {
		programs, err = h.programs.List(r.Context())
	}
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, programs)
}

// GetLoyaltyProgram handles GET /api/v1/loyalty-programs/{id}.
func (h *LoyaltyProgramHandler) GetLoyaltyProgram(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	program, err := h.programs.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, program)
}
