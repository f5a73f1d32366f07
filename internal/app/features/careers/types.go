// internal/app/features/careers/types.go
package careers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/launchpadjia/careerhub/internal/app/system/auth"
	"github.com/launchpadjia/careerhub/internal/app/system/sanitize"
	"github.com/launchpadjia/careerhub/internal/domain/models"
)

// listResponse is the JSON body for GET /api/careers.
type listResponse struct {
	Careers []models.Career `json:"careers"`
	Total   int64           `json:"total"`
	HasPrev bool            `json:"hasPrev"`
	HasNext bool            `json:"hasNext"`
	Prev    string          `json:"prev,omitempty"`
	Next    string          `json:"next,omitempty"`
}

// draftResponse is the JSON body for the draft endpoints. Draft is null when
// no draft exists, which clients treat as "start fresh".
type draftResponse struct {
	Draft *models.CareerDraft `json:"draft"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// decodeBody reads a JSON object body into a generic map. Payloads are
// schema-checked downstream by the sanitizer, so any object shape is accepted
// here.
func decodeBody(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	var raw map[string]any
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// resolveOrgID picks the organization scope for a request. Org members are
// always scoped to their own organization; platform admins may address any
// org via the request.
func resolveOrgID(u *auth.SessionUser, requested string) string {
	if u.OrgID != "" {
		return u.OrgID
	}
	return requested
}

// suspiciousFields walks a decoded payload and returns the paths of string
// values matching a known dangerous construct. Detection is observational:
// the sanitizer neutralizes the content regardless, this only feeds the
// security audit trail.
func suspiciousFields(prefix string, v any) []string {
	var hits []string
	switch t := v.(type) {
	case string:
		if sanitize.Suspicious(t) {
			hits = append(hits, prefix)
		}
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			path := k
			if prefix != "" {
				path = prefix + "." + k
			}
			hits = append(hits, suspiciousFields(path, t[k])...)
		}
	case []any:
		for i, item := range t {
			hits = append(hits, suspiciousFields(fmt.Sprintf("%s[%d]", prefix, i), item)...)
		}
	}
	return hits
}

// auditSuspicious records one security event per flagged field.
func (h *Handler) auditSuspicious(r *http.Request, u *auth.SessionUser, orgID string, raw map[string]any) {
	for _, field := range suspiciousFields("", raw) {
		h.Audit.SuspiciousInput(r.Context(), r, u.Email, orgID, field)
	}
}
