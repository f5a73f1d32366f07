// internal/app/features/careers/list.go
package careers

import (
	"context"
	"maps"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/launchpadjia/careerhub/internal/app/system/auth"
	"github.com/launchpadjia/careerhub/internal/app/system/paging"
	"github.com/launchpadjia/careerhub/internal/app/system/timeouts"
	"github.com/launchpadjia/careerhub/internal/domain/models"
)

// ServeList handles GET /api/careers with optional ?status= and ?q= filters.
// Results are keyset-paginated on the folded job title with before/after
// cursors.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	orgID := resolveOrgID(u, query.Get(r, "orgID"))
	if orgID == "" {
		h.ErrLog.LogBadRequest(w, r, "list careers: no org scope", nil, "An organization is required.")
		return
	}

	q := query.Search(r, "q")
	status := query.Get(r, "status")
	after := query.Get(r, "after")
	before := query.Get(r, "before")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	base := bson.M{"org_id": orgID}
	if status != "" && models.IsValidStatus(status) {
		base["status"] = status
	}
	if q != "" {
		if fq := text.Fold(q); fq != "" {
			base["job_title_ci"] = bson.M{"$gte": fq, "$lt": fq + "\uffff"}
		}
	}

	coll := h.DB.Collection("careers")

	total, err := coll.CountDocuments(ctx, base)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "count careers failed", err, "Unable to load careers.")
		return
	}

	f := maps.Clone(base)
	find := options.Find()
	sortField := "job_title_ci"

	cfg := paging.ConfigureKeyset(before, after)
	cfg.ApplyToFind(find, sortField)

	if ks := cfg.KeysetWindow(sortField); ks != nil {
		if _, hasRange := base["job_title_ci"]; hasRange {
			f["$and"] = []bson.M{{"job_title_ci": base["job_title_ci"]}, ks}
			delete(f, "job_title_ci")
		} else {
			maps.Copy(f, ks)
		}
	}

	cur, err := coll.Find(ctx, f, find)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "find careers failed", err, "Unable to load careers.")
		return
	}
	defer cur.Close(ctx)

	var rows []models.Career
	if err := cur.All(ctx, &rows); err != nil {
		h.ErrLog.LogServerError(w, r, "decode careers failed", err, "Unable to load careers.")
		return
	}

	if cfg.Direction == paging.Backward {
		paging.Reverse(rows)
	}

	page := paging.TrimPage(&rows, before, after)

	prev, next := paging.BuildCursors(rows,
		func(c models.Career) string { return c.JobTitleCI },
		func(c models.Career) primitive.ObjectID { return c.ID },
	)

	writeJSON(w, http.StatusOK, listResponse{
		Careers: rows,
		Total:   total,
		HasPrev: page.HasPrev,
		HasNext: page.HasNext,
		Prev:    prev,
		Next:    next,
	})
}
