package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/launchpadjia/careerhub/internal/app/system/auth"
)

// TestUser represents user data for testing HTTP handlers.
type TestUser struct {
	Name  string
	Email string
	Role  string
	OrgID string
}

// RecruiterUser returns a TestUser with recruiter role in the given org.
func RecruiterUser(orgID string) TestUser {
	return TestUser{
		Name:  "Test Recruiter",
		Email: "recruiter@test.com",
		Role:  "recruiter",
		OrgID: orgID,
	}
}

// AdminUser returns a TestUser with admin role in the given org.
func AdminUser(orgID string) TestUser {
	return TestUser{
		Name:  "Test Admin",
		Email: "admin@test.com",
		Role:  "admin",
		OrgID: orgID,
	}
}

// WithUser adds a user to the request context for testing authenticated
// handlers. This bypasses the session middleware and injects the user
// directly.
func WithUser(r *http.Request, user TestUser) *http.Request {
	return auth.WithUser(r, &auth.SessionUser{
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		OrgID: user.OrgID,
	})
}

// NewJSONRequest creates an HTTP request with a JSON-encoded body.
func NewJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// DecodeJSON decodes a JSON response body into dst.
func DecodeJSON(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(dst); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}
