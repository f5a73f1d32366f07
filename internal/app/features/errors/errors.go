// internal/app/features/errors/errors.go
package errors

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger logs handler failures with request context and writes the
// matching JSON response. Internal detail goes to the log; clients only see
// the user-facing message.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(log *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: log}
}

type errorBody struct {
	Error  string   `json:"error"`
	Errors []string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (e *ErrorLogger) requestFields(r *http.Request, err error) []zap.Field {
	fields := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	return fields
}

// LogServerError logs an internal failure and responds with a generic 500.
// The internal error is never echoed to the client.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg string) {
	e.log.Error(logMsg, e.requestFields(r, err)...)
	if userMsg == "" {
		userMsg = "Something went wrong. Please try again."
	}
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: userMsg})
}

// LogBadRequest logs a client error and responds 400 with the user message.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg string) {
	e.log.Warn(logMsg, e.requestFields(r, err)...)
	if userMsg == "" {
		userMsg = "Invalid request."
	}
	writeJSON(w, http.StatusBadRequest, errorBody{Error: userMsg})
}

// LogForbidden logs a denied action and responds 403.
func (e *ErrorLogger) LogForbidden(w http.ResponseWriter, r *http.Request, logMsg, userMsg string) {
	e.log.Warn(logMsg, e.requestFields(r, nil)...)
	if userMsg == "" {
		userMsg = "You don't have permission to do that."
	}
	writeJSON(w, http.StatusForbidden, errorBody{Error: userMsg})
}

// RenderNotFound responds 404 without logging; missing records are routine.
func (e *ErrorLogger) RenderNotFound(w http.ResponseWriter, r *http.Request, userMsg string) {
	if userMsg == "" {
		userMsg = "Not found."
	}
	writeJSON(w, http.StatusNotFound, errorBody{Error: userMsg})
}

// RenderValidation responds 422 with the full list of validation errors so
// the wizard can show every problem at once.
func (e *ErrorLogger) RenderValidation(w http.ResponseWriter, r *http.Request, errs []string) {
	e.log.Info("validation failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("violations", len(errs)),
	)
	writeJSON(w, http.StatusUnprocessableEntity, errorBody{
		Error:  "Validation failed.",
		Errors: errs,
	})
}
