package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fintrack/fintrack-api/internal/domain"
)

// getPathID extracts a positive int64 surrogate key from the URL path.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, fmt.Errorf("%w: missing %s", domain.ErrInvalidID, paramName)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidID, paramName)
	}

	return id, nil
}

// getUserIDQuery extracts an optional user_id query parameter used to narrow
// list endpoints to one owner. Returns (0, false, nil) when absent.
func getUserIDQuery(r *http.Request) (int64, bool, error) {
	raw := r.URL.Query().Get("user_id")
	if raw == "" {
		return 0, false, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false, fmt.Errorf("%w: user_id must be a positive integer", domain.ErrInvalidID)
	}

	return id, true, nil
}
