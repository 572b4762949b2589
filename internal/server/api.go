package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"stockroom/internal/store"
)

// Version is reported by the health endpoints.
const Version = "1.0.0"

// Stable reason codes carried in error payloads.
const (
	codeBadRequest = "bad_request"
	codeValidation = "validation_error"
	codeDuplicate  = "duplicate_key"
	codeNotFound   = "not_found"
	codeInternal   = "internal_error"
)

type errorBody struct {
	Error     string             `json:"error"`
	Code      string             `json:"code"`
	Fields    []store.FieldError `json:"fields,omitempty"`
	RequestID string             `json:"request_id,omitempty"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Uptime    float64   `json:"uptime"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, msg string, fields []store.FieldError) {
	writeJSON(w, status, errorBody{
		Error:     msg,
		Code:      code,
		Fields:    fields,
		RequestID: GetRequestID(r.Context()),
	})
}

// decodeJSON reads a bounded body into dst; a false return means the
// 400 has already been written.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	defer r.Body.Close()
	body, err := io.ReadAll(io.LimitReader(r.Body, 2<<20))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, codeBadRequest, "bad body", nil)
		return false
	}
	if err := json.Unmarshal(body, dst); err != nil {
		writeError(w, r, http.StatusBadRequest, codeBadRequest, "bad json", nil)
		return false
	}
	return true
}

// writeStoreError maps a store outcome to the external contract.
// duplicateStatus varies per entity: the user APIs answer a duplicate
// email with 400, the inventory API answers a duplicate item ID with
// 409.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error, duplicateStatus int, duplicateMsg string) {
	switch {
	case store.IsValidation(err):
		writeError(w, r, http.StatusBadRequest, codeValidation, "validation failed", store.AsValidation(err).Fields)
	case errors.Is(err, store.ErrDuplicateKey):
		writeError(w, r, duplicateStatus, codeDuplicate, duplicateMsg, nil)
	case errors.Is(err, store.ErrNotFound):
		writeError(w, r, http.StatusNotFound, codeNotFound, "not found", nil)
	default:
		log.Error().Err(err).
			Str("request_id", GetRequestID(r.Context())).
			Str("path", r.URL.Path).
			Msg("unexpected store fault")
		writeError(w, r, http.StatusInternalServerError, codeInternal, "internal error", nil)
	}
}

// queryInt parses an optional non-negative integer query parameter.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(name + " must be an integer")
	}
	return n, nil
}

func handleHealth(started time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC(),
			Version:   Version,
			Uptime:    time.Since(started).Seconds(),
		})
	}
}
