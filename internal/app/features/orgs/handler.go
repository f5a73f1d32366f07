// internal/app/features/orgs/handler.go
package orgs

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/launchpadjia/careerhub/internal/app/features/errors"
	"github.com/launchpadjia/careerhub/internal/app/store/careers"
	"github.com/launchpadjia/careerhub/internal/app/store/members"
	"github.com/launchpadjia/careerhub/internal/app/store/organizations"
	"github.com/launchpadjia/careerhub/internal/app/system/auth"
	"github.com/launchpadjia/careerhub/internal/app/system/timeouts"
	"github.com/launchpadjia/careerhub/internal/domain/models"
)

// Handler serves organization detail and membership lookups.
type Handler struct {
	Log     *zap.Logger
	ErrLog  *errors.ErrorLogger
	Orgs    *organizationstore.Store
	Members *memberstore.Store
	Careers *careerstore.Store
}

// NewHandler constructs an orgs Handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Log:     logger,
		ErrLog:  errors.NewErrorLogger(logger),
		Orgs:    organizationstore.New(db),
		Members: memberstore.New(db),
		Careers: careerstore.New(db),
	}
}

type orgRequest struct {
	OrgID string `json:"orgID"`
}

// detailsResponse is the org record plus how many careers are currently
// live, so the frontend can show plan usage against MaxActiveJobs.
type detailsResponse struct {
	models.OrganizationDetails
	ActiveCareers int64 `json:"activeCareers"`
}

// resolveOrgID scopes the lookup: org members always read their own org,
// platform admins may name any org in the body.
func resolveOrgID(u *auth.SessionUser, requested string) string {
	if u.OrgID != "" {
		return u.OrgID
	}
	return requested
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// HandleDetails handles POST /api/orgs/details: the organization with its
// subscription plan resolved.
func (h *Handler) HandleDetails(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	var req orgRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "org details: bad json", err, "Request body must be a JSON object.")
		return
	}

	orgID := resolveOrgID(u, req.OrgID)
	if orgID == "" {
		h.ErrLog.LogBadRequest(w, r, "org details: missing orgID", nil, "Organization ID is required.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	details, err := h.Orgs.GetDetails(ctx, orgID)
	if err != nil {
		if stderrors.Is(err, organizationstore.ErrNotFound) {
			h.ErrLog.RenderNotFound(w, r, "Organization not found.")
			return
		}
		h.ErrLog.LogServerError(w, r, "org details failed", err, "Unable to load the organization.")
		return
	}

	active, err := h.Careers.CountByOrg(ctx, orgID, models.StatusActive)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "count active careers failed", err, "Unable to load the organization.")
		return
	}

	writeJSON(w, http.StatusOK, detailsResponse{
		OrganizationDetails: details,
		ActiveCareers:       active,
	})
}

// HandleMembers handles POST /api/orgs/members: all members of an
// organization.
func (h *Handler) HandleMembers(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	var req orgRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "org members: bad json", err, "Request body must be a JSON object.")
		return
	}

	orgID := resolveOrgID(u, req.OrgID)
	if orgID == "" {
		h.ErrLog.LogBadRequest(w, r, "org members: missing orgID", nil, "Organization ID is required.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	list, err := h.Members.ListByOrg(ctx, orgID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "org members failed", err, "Unable to load organization members.")
		return
	}

	writeJSON(w, http.StatusOK, list)
}
