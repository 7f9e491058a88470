package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jobfeedhq/jobfeed/internal/model"
)

// APIError is the error envelope every non-2xx response carries.
type APIError struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id,omitempty"`
	} `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	var e APIError
	e.Error.Code = code
	e.Error.Message = message
	e.Error.RequestID = RequestIDFrom(r.Context())
	WriteJSON(w, status, e)
}

// writeEngineError maps the core's error kinds onto status codes:
// bad input 400, lookup miss 404, upstream feed failure 502, rest 500.
func writeEngineError(w http.ResponseWriter, r *http.Request, err error) {
	var invalid *model.InvalidArgumentError
	if errors.As(err, &invalid) {
		WriteError(w, r, http.StatusBadRequest, "invalid_argument", err.Error())
		return
	}
	var notFound *model.NotFoundError
	if errors.As(err, &notFound) {
		WriteError(w, r, http.StatusNotFound, "not_found", err.Error())
		return
	}
	var upstream *model.DataSourceError
	if errors.As(err, &upstream) {
		WriteError(w, r, http.StatusBadGateway, "upstream_unavailable", err.Error())
		return
	}
	WriteError(w, r, http.StatusInternalServerError, "internal_error", err.Error())
}

func methodMux(m map[string]http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h, ok := m[r.Method]; ok {
			h(w, r)
			return
		}
		WriteError(w, r, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	}
}
