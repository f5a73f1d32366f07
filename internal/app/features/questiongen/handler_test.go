// internal/app/features/questiongen/handler_test.go
package questiongen_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/launchpadjia/careerhub/internal/app/features/questiongen"
	"github.com/launchpadjia/careerhub/internal/testutil"
)

// fakeGenerator returns a canned response and records the prompt it saw.
type fakeGenerator struct {
	response string
	err      error
	prompt   string
}

func (f *fakeGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func newRequest(t *testing.T, body any) *http.Request {
	t.Helper()
	req := testutil.NewJSONRequest(t, "POST", "/api/questions/generate", body)
	return testutil.WithUser(req, testutil.RecruiterUser("org_gen"))
}

func validBody() map[string]any {
	return map[string]any{
		"jobTitle":    "Backend Engineer",
		"description": "<p>Design and operate Go services.</p>",
		"category":    "Technical",
	}
}

func TestHandleGenerate(t *testing.T) {
	gen := &fakeGenerator{response: `["How do you design APIs?", "Describe your testing approach."]`}
	h := questiongen.NewHandler(gen, zap.NewNop(), nil)

	rec := httptest.NewRecorder()
	h.HandleGenerate(rec, newRequest(t, validBody()))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Questions []string `json:"questions"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if len(resp.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %v", resp.Questions)
	}

	if !strings.Contains(gen.prompt, "Backend Engineer") {
		t.Error("prompt missing job title")
	}
	if !strings.Contains(gen.prompt, "technical interview questions") {
		t.Error("prompt missing category instruction")
	}
}

func TestHandleGenerateStripsMarkdownFences(t *testing.T) {
	gen := &fakeGenerator{response: "```json\n[\"Question one?\", \"Question two?\"]\n```"}
	h := questiongen.NewHandler(gen, zap.NewNop(), nil)

	rec := httptest.NewRecorder()
	h.HandleGenerate(rec, newRequest(t, validBody()))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHandleGenerateIncludesExistingQuestions(t *testing.T) {
	gen := &fakeGenerator{response: `["A fresh question?", "Another fresh one?"]`}
	h := questiongen.NewHandler(gen, zap.NewNop(), nil)

	body := validBody()
	body["existingQuestions"] = []string{"What is a goroutine?"}
	rec := httptest.NewRecorder()
	h.HandleGenerate(rec, newRequest(t, body))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(gen.prompt, "What is a goroutine?") {
		t.Error("prompt missing existing questions")
	}
}

func TestHandleGenerateMissingFields(t *testing.T) {
	h := questiongen.NewHandler(&fakeGenerator{}, zap.NewNop(), nil)

	rec := httptest.NewRecorder()
	h.HandleGenerate(rec, newRequest(t, map[string]any{"jobTitle": "Engineer"}))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleGenerateUnknownCategory(t *testing.T) {
	h := questiongen.NewHandler(&fakeGenerator{}, zap.NewNop(), nil)

	body := validBody()
	body["category"] = "Astrology"
	rec := httptest.NewRecorder()
	h.HandleGenerate(rec, newRequest(t, body))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleGenerateMalformedModelOutput(t *testing.T) {
	gen := &fakeGenerator{response: "Sure! Here are two questions:\n1. First?\n2. Second?"}
	h := questiongen.NewHandler(gen, zap.NewNop(), nil)

	rec := httptest.NewRecorder()
	h.HandleGenerate(rec, newRequest(t, validBody()))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestHandleGenerateModelError(t *testing.T) {
	gen := &fakeGenerator{err: fmt.Errorf("quota exceeded")}
	h := questiongen.NewHandler(gen, zap.NewNop(), nil)

	rec := httptest.NewRecorder()
	h.HandleGenerate(rec, newRequest(t, validBody()))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
