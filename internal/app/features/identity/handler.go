// internal/app/features/identity/handler.go
package identity

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/launchpadjia/careerhub/internal/app/features/errors"
	"github.com/launchpadjia/careerhub/internal/app/store/members"
	"github.com/launchpadjia/careerhub/internal/app/system/auditlog"
	"github.com/launchpadjia/careerhub/internal/app/system/auth"
	"github.com/launchpadjia/careerhub/internal/app/system/inputval"
	"github.com/launchpadjia/careerhub/internal/app/system/sanitize"
	"github.com/launchpadjia/careerhub/internal/app/system/timeouts"
)

// Handler resolves upstream-authenticated identities to member accounts.
type Handler struct {
	Log     *zap.Logger
	ErrLog  *errors.ErrorLogger
	Audit   *auditlog.Logger
	Members *memberstore.Store
}

// NewHandler constructs an identity Handler bound to a DB and logger. The
// audit logger may be nil, which disables audit recording.
func NewHandler(db *mongo.Database, logger *zap.Logger, audit *auditlog.Logger) *Handler {
	return &Handler{
		Log:     logger,
		ErrLog:  errors.NewErrorLogger(logger),
		Audit:   audit,
		Members: memberstore.New(db),
	}
}

type resolveRequest struct {
	Name  string `json:"name" validate:"required" label:"Name"`
	Email string `json:"email" validate:"required" label:"Email"`
	Image string `json:"image"`
}

type resolveResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image,omitempty"`
	Role  string `json:"role"`
	OrgID string `json:"orgID,omitempty"`
}

// HandleResolve handles POST /api/identity. The caller arrives with a
// verified {name,email,image} from the host platform's auth provider; this
// endpoint maps it to a member account, refreshes the stored profile, and
// opens the session. Unknown emails are rejected: there is no self-signup
// on the recruiting side.
func (h *Handler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "resolve identity: bad json", err, "Request body must be a JSON object.")
		return
	}

	req.Name = sanitize.Text(req.Name, sanitize.Strict)
	if res := inputval.Validate(req); res.HasErrors() {
		h.ErrLog.LogBadRequest(w, r, "resolve identity: invalid input", nil, res.First())
		return
	}
	if !inputval.IsValidEmail(req.Email) {
		h.ErrLog.LogBadRequest(w, r, "resolve identity: invalid email", nil, "Email must be a valid email address.")
		return
	}
	if req.Image != "" && !inputval.IsValidURL(req.Image) {
		req.Image = ""
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	member, err := h.Members.FindByEmail(ctx, req.Email)
	if err != nil {
		if stderrors.Is(err, memberstore.ErrNotFound) {
			h.ErrLog.LogForbidden(w, r, "resolve identity: unknown member", "This account has no access.")
			return
		}
		h.ErrLog.LogServerError(w, r, "resolve identity failed", err, "Unable to resolve the account.")
		return
	}

	member.Name = req.Name
	member.Image = req.Image
	updated, err := h.Members.UpsertIdentity(ctx, member)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "refresh member identity failed", err, "Unable to resolve the account.")
		return
	}

	sessUser := &auth.SessionUser{
		Name:  updated.Name,
		Email: updated.Email,
		Image: updated.Image,
		Role:  updated.Role,
		OrgID: updated.OrgID,
	}
	if err := auth.SignIn(w, r, sessUser); err != nil {
		h.Log.Warn("session save failed", zap.Error(err))
	}
	h.Audit.MemberSeen(ctx, r, updated.Email, updated.OrgID)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resolveResponse{
		Name:  updated.Name,
		Email: updated.Email,
		Image: updated.Image,
		Role:  updated.Role,
		OrgID: updated.OrgID,
	})
}

// HandleSignOut handles POST /api/identity/signout.
func (h *Handler) HandleSignOut(w http.ResponseWriter, r *http.Request) {
	if err := auth.SignOut(w, r); err != nil {
		h.ErrLog.LogServerError(w, r, "sign out failed", err, "Unable to sign out.")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]bool{"signedOut": true})
}
