package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/readkit/pkg/logger"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

// writeJSON encodes body before the status line goes out, so a value that
// cannot be encoded turns into a 500 envelope instead of an empty 200.
func writeJSON(w http.ResponseWriter, status int, body Envelope) {
	buf, err := json.Marshal(body)
	if err != nil {
		status = http.StatusInternalServerError
		buf, _ = json.Marshal(Envelope{Error: &ErrorDetail{
			Code:    ErrInternal.Code,
			Message: "response could not be encoded",
		}})
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(append(buf, '\n'))
}

func respondData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, Envelope{Data: data})
}

// respondError renders err in the error envelope. Server-side failures are
// logged with the request context.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	he := toHTTPError(err)
	if he.Status >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed", logger.Error(err), slog.String("code", he.Code))
	}
	writeJSON(w, he.Status, Envelope{Error: &ErrorDetail{Code: he.Code, Message: he.Message}})
}
