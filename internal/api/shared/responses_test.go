package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)

	RespondWithJSON(recorder, req, http.StatusCreated, map[string]int{"n": 1})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"n": 1}`, recorder.Body.String())
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/api/v1/users", nil)
	req = req.WithContext(SetTraceID(req.Context()))
	recorder := httptest.NewRecorder()

	RespondWithError(recorder, req, http.StatusBadRequest, "Invalid request format")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "Invalid request format", resp.Detail)
	assert.NotEmpty(t, resp.TraceID, "error bodies carry the request trace ID")
}

func TestRespondWithErrorWithoutTraceID(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/", nil)
	recorder := httptest.NewRecorder()

	RespondWithError(recorder, req, http.StatusNotFound, "Account not found")

	// trace_id is omitted, not empty, when no trace is attached.
	assert.NotContains(t, recorder.Body.String(), "trace_id")
}

func TestRespondWithErrorAndLogNeverLeaksTheError(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/", nil)
	recorder := httptest.NewRecorder()

	err := errors.New("pq: connect to db.internal:5432 password=s3cret")
	RespondWithErrorAndLog(recorder, req, http.StatusInternalServerError, "An unexpected error occurred", err)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "s3cret")
	assert.NotContains(t, recorder.Body.String(), "db.internal")

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "An unexpected error occurred", resp.Detail)
}

func TestTraceIDRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := SetTraceID(httptest.NewRequest("GET", "/", nil).Context())
	traceID := GetTraceID(ctx)

	assert.NotEmpty(t, traceID)
	assert.Equal(t, traceID, GetTraceID(ctx), "trace ID is stable for the request")
	assert.Empty(t, GetTraceID(httptest.NewRequest("GET", "/", nil).Context()))
}
