package sanitize_test

import (
	"strings"
	"testing"

	"github.com/launchpadjia/careerhub/internal/app/system/sanitize"
)

var allPolicies = []struct {
	name   string
	policy sanitize.Policy
}{
	{"strict", sanitize.Strict},
	{"basic", sanitize.Basic},
	{"rich", sanitize.Rich},
}

func TestText_Empty(t *testing.T) {
	for _, p := range allPolicies {
		if got := sanitize.Text("", p.policy); got != "" {
			t.Errorf("%s: expected empty string, got %q", p.name, got)
		}
	}
}

func TestText_PlainTextUnchanged(t *testing.T) {
	for _, p := range allPolicies {
		if got := sanitize.Text("Senior Go Engineer", p.policy); got != "Senior Go Engineer" {
			t.Errorf("%s: expected plain text unchanged, got %q", p.name, got)
		}
	}
}

func TestText_RemovesScriptUnderAllPolicies(t *testing.T) {
	payloads := []string{
		`<script>alert("XSS")</script>Engineer`,
		`<SCRIPT>alert(1)</SCRIPT>`,
		`<scr<script>ipt>alert(1)</script>`,
		`<div><p><script>nested()</script></p></div>`,
	}
	for _, p := range allPolicies {
		for _, payload := range payloads {
			got := sanitize.Text(payload, p.policy)
			if strings.Contains(strings.ToLower(got), "<script") {
				t.Errorf("%s: script survived: %q -> %q", p.name, payload, got)
			}
		}
	}
}

func TestText_StrictHasNoAngleBrackets(t *testing.T) {
	inputs := []string{
		"<p>Hello</p>",
		`<img src=x onerror=alert(1)>`,
		"<b>bold</b> text",
		`<a href="https://example.com">link</a>`,
	}
	for _, in := range inputs {
		got := sanitize.Text(in, sanitize.Strict)
		if strings.ContainsAny(got, "<>") {
			t.Errorf("strict output contains angle bracket: %q -> %q", in, got)
		}
	}
}

func TestText_Idempotent(t *testing.T) {
	inputs := []string{
		`<script>alert(1)</script>Hello`,
		"<p>Build <b>things</b></p>",
		`<a href="javascript:alert(1)">x</a>`,
		"plain text",
		"5 &lt; 10",
	}
	for _, p := range allPolicies {
		for _, in := range inputs {
			once := sanitize.Text(in, p.policy)
			twice := sanitize.Text(once, p.policy)
			if once != twice {
				t.Errorf("%s: not idempotent for %q: first %q, second %q", p.name, in, once, twice)
			}
		}
	}
}

func TestText_BasicKeepsInlineFormattingOnly(t *testing.T) {
	got := sanitize.Text("<p><strong>Bold</strong> and <em>italic</em></p>", sanitize.Basic)
	if strings.Contains(got, "<p>") {
		t.Errorf("basic should drop block tags, got %q", got)
	}
	if !strings.Contains(got, "<strong>Bold</strong>") || !strings.Contains(got, "<em>italic</em>") {
		t.Errorf("basic should keep inline formatting, got %q", got)
	}
}

func TestText_RichKeepsParagraphsAndLists(t *testing.T) {
	input := "<p>About the role</p><ul><li>Ship features</li><li>Review code</li></ul>"
	if got := sanitize.Text(input, sanitize.Rich); got != input {
		t.Errorf("rich should preserve paragraphs and lists, got %q", got)
	}
}

func TestText_RichDropsEventHandlers(t *testing.T) {
	got := sanitize.Text(`<p onclick="alert(1)">Hello</p>`, sanitize.Rich)
	if strings.Contains(got, "onclick") {
		t.Errorf("expected onclick removed, got %q", got)
	}
	if !strings.Contains(got, "Hello") {
		t.Errorf("expected text content preserved, got %q", got)
	}
}

func TestText_RichDropsJavascriptHref(t *testing.T) {
	got := sanitize.Text(`<a href="javascript:alert(1)">Click</a>`, sanitize.Rich)
	if strings.Contains(strings.ToLower(got), "javascript:") {
		t.Errorf("expected javascript: href removed, got %q", got)
	}
}

func TestText_RichKeepsHTTPSLinks(t *testing.T) {
	got := sanitize.Text(`<a href="https://example.com" target="_blank">Apply</a>`, sanitize.Rich)
	if !strings.Contains(got, "https://example.com") {
		t.Errorf("expected safe link preserved, got %q", got)
	}
}

func TestText_RemovesIframe(t *testing.T) {
	got := sanitize.Text(`<p>Content</p><iframe src="https://evil.com"></iframe>`, sanitize.Rich)
	if strings.Contains(got, "iframe") {
		t.Errorf("expected iframe removed, got %q", got)
	}
	if !strings.Contains(got, "Content") {
		t.Errorf("expected safe content preserved, got %q", got)
	}
}

func TestText_StripsNulBytesAndTrims(t *testing.T) {
	got := sanitize.Text("  hello\x00world  ", sanitize.Strict)
	if got != "helloworld" {
		t.Errorf("expected NUL stripped and whitespace trimmed, got %q", got)
	}
}

func TestTextSlice_PreservesOrder(t *testing.T) {
	in := []string{"<b>one</b>", "two", "<script>x</script>three"}
	got := sanitize.TextSlice(in, sanitize.Strict)
	want := []string{"one", "two", "three"}
	if len(got) != len(want) {
		t.Fatalf("length changed: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSuspicious(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{`<script>alert(1)</script>`, true},
		{`<SCRIPT>x</SCRIPT>`, true},
		{`javascript:alert(1)`, true},
		{`<img src=x onerror=alert(1)>`, true},
		{`<iframe src="x">`, true},
		{`<object data="x">`, true},
		{`<embed src="x">`, true},
		{`eval(code)`, true},
		{`expression(alert(1))`, true},
		{`a plain job description`, false},
		{`<p>Build stuff</p>`, false},
		{`salary is negotiable`, false},
		{``, false},
	}
	for _, tt := range tests {
		if got := sanitize.Suspicious(tt.input); got != tt.want {
			t.Errorf("Suspicious(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
