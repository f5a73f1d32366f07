package sanitize_test

import (
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/launchpadjia/careerhub/internal/app/system/sanitize"
)

func TestStructure_PreservesShape(t *testing.T) {
	input := map[string]any{
		"title": `<script>alert(1)</script>Engineer`,
		"count": 42,
		"live":  true,
		"tags":  []any{"<b>go</b>", "backend"},
		"nested": map[string]any{
			"note": "<iframe></iframe>clean",
		},
	}

	out, ok := sanitize.Structure(input, sanitize.Strict).(map[string]any)
	if !ok {
		t.Fatal("expected map[string]any back")
	}
	if out["title"] != "Engineer" {
		t.Errorf("title: got %q", out["title"])
	}
	if out["count"] != 42 {
		t.Errorf("count changed: got %v", out["count"])
	}
	if out["live"] != true {
		t.Errorf("live changed: got %v", out["live"])
	}
	tags, ok := out["tags"].([]any)
	if !ok || len(tags) != 2 {
		t.Fatalf("tags shape changed: %#v", out["tags"])
	}
	if tags[0] != "go" || tags[1] != "backend" {
		t.Errorf("tags: got %#v", tags)
	}
	nested, ok := out["nested"].(map[string]any)
	if !ok {
		t.Fatalf("nested shape changed: %#v", out["nested"])
	}
	if nested["note"] != "clean" {
		t.Errorf("nested note: got %q", nested["note"])
	}
}

func TestStructure_BsonTypes(t *testing.T) {
	doc := bson.M{
		"description": "<p>ok</p><script>bad()</script>",
		"options":     bson.A{"<em>a</em>", 3},
	}
	out, ok := sanitize.Structure(doc, sanitize.Rich).(bson.M)
	if !ok {
		t.Fatal("expected bson.M back")
	}
	desc, _ := out["description"].(string)
	if strings.Contains(desc, "script") {
		t.Errorf("script survived: %q", desc)
	}
	if !strings.Contains(desc, "<p>ok</p>") {
		t.Errorf("rich markup lost: %q", desc)
	}
	opts, ok := out["options"].(bson.A)
	if !ok || len(opts) != 2 {
		t.Fatalf("options shape changed: %#v", out["options"])
	}
	if opts[1] != 3 {
		t.Errorf("non-string element changed: %v", opts[1])
	}
}

func TestStructure_NonStringPassthrough(t *testing.T) {
	if got := sanitize.Structure(7.5, sanitize.Strict); got != 7.5 {
		t.Errorf("float changed: %v", got)
	}
	if got := sanitize.Structure(nil, sanitize.Strict); got != nil {
		t.Errorf("nil changed: %v", got)
	}
}

func TestDocument_Nil(t *testing.T) {
	if got := sanitize.Document(nil, sanitize.Strict); got != nil {
		t.Errorf("expected nil, got %#v", got)
	}
}
