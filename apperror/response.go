package apperror

import (
	"encoding/json"
	"net/http"
	"time"
)

// timestampLayout matches JavaScript's Date.toISOString, which is what the web
// client already parses.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// ErrorResponse is the single error shape every endpoint returns.
// `errors` is only present for field validation failures.
type ErrorResponse struct {
	StatusCode int          `json:"statusCode" example:"404"`
	Timestamp  string       `json:"timestamp" example:"2024-01-01T12:00:00.000Z"`
	Path       string       `json:"path" example:"/todos/42"`
	Message    string       `json:"message" example:"Todo not found"`
	Errors     []FieldError `json:"errors,omitempty"`
}

// ToResponse converts an AppError to an ErrorResponse for the given request path.
// Only the user-facing Message is included, never the underlying Err.
func (e *AppError) ToResponse(path string) ErrorResponse {
	return ErrorResponse{
		StatusCode: e.StatusCode(),
		Timestamp:  time.Now().UTC().Format(timestampLayout),
		Path:       path,
		Message:    e.Message,
		Errors:     e.Fields,
	}
}

// WriteJSON serializes `data` to JSON and writes it with the given status.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Avoid writing nil, which would produce a "null" body.
	if data != nil {
		// Headers are already sent; nothing useful can be done if encoding fails here.
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteError converts any error into the standard envelope.
// Errors that are not *AppError become a generic 500 so internals never leak.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := FromError(err)
	if !ok {
		appErr = NewInternalError("Internal server error", err)
	}
	// 5xx responses hide whatever message a lower layer attached.
	if appErr.StatusCode() >= http.StatusInternalServerError && appErr.Type != UnavailableError {
		appErr = &AppError{Type: appErr.Type, Message: "Internal server error", Err: appErr.Err}
	}
	WriteJSON(w, appErr.StatusCode(), appErr.ToResponse(r.URL.RequestURI()))
}
