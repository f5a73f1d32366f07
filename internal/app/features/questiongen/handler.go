// internal/app/features/questiongen/handler.go
package questiongen

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/launchpadjia/careerhub/internal/app/features/errors"
	"github.com/launchpadjia/careerhub/internal/app/system/auditlog"
	"github.com/launchpadjia/careerhub/internal/app/system/auth"
	"github.com/launchpadjia/careerhub/internal/app/system/sanitize"
	"github.com/launchpadjia/careerhub/internal/app/system/timeouts"
)

// Handler serves interview question generation.
type Handler struct {
	Gen    Generator
	Log    *zap.Logger
	ErrLog *errors.ErrorLogger
	Audit  *auditlog.Logger
}

// NewHandler constructs a questiongen Handler. The audit logger may be nil.
func NewHandler(gen Generator, logger *zap.Logger, audit *auditlog.Logger) *Handler {
	return &Handler{
		Gen:    gen,
		Log:    logger,
		ErrLog: errors.NewErrorLogger(logger),
		Audit:  audit,
	}
}

type generateRequest struct {
	JobTitle          string   `json:"jobTitle"`
	Description       string   `json:"description"`
	Category          string   `json:"category"`
	ExistingQuestions []string `json:"existingQuestions"`
}

type generateResponse struct {
	Questions []string `json:"questions"`
}

// HandleGenerate handles POST /api/questions/generate. One call generates
// two questions for a single category; the wizard calls it per category.
// A malformed model response is a failure, not silently retried.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	var req generateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "generate questions: bad json", err, "Request body must be a JSON object.")
		return
	}

	req.JobTitle = sanitize.Text(req.JobTitle, sanitize.Strict)
	req.Description = sanitize.Text(req.Description, sanitize.Rich)
	req.ExistingQuestions = sanitize.TextSlice(req.ExistingQuestions, sanitize.Basic)

	if req.JobTitle == "" || req.Description == "" || req.Category == "" {
		h.ErrLog.LogBadRequest(w, r, "generate questions: missing fields", nil, "jobTitle, description and category are required.")
		return
	}
	if !KnownCategory(req.Category) {
		h.ErrLog.LogBadRequest(w, r, "generate questions: unknown category", nil, "Unknown question category.")
		return
	}

	prompt := BuildPrompt(req.JobTitle, req.Description, req.Category, req.ExistingQuestions)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	raw, err := h.Gen.GenerateText(ctx, prompt)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "generate questions failed", err, "Failed to generate questions.")
		return
	}

	questions, err := ParseQuestions(raw)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "parse generated questions failed", err, "Failed to parse generated questions.")
		return
	}

	questions = sanitize.TextSlice(questions, sanitize.Basic)
	h.Audit.QuestionsGenerated(ctx, r, u.Email, u.OrgID, req.JobTitle, len(questions))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(generateResponse{Questions: questions})
}
