// internal/app/system/sanitize/sanitize.go

// Package sanitize neutralizes untrusted input before it is stored or
// rendered. Markup is parsed and reserialized through bluemonday allowlist
// policies rather than regex-stripped, so nested or oddly-capitalized
// payloads cannot slip through. Three escalating policies cover the
// application's content types; anything not explicitly allowlisted is
// removed, never escaped-and-kept.
package sanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Policy selects how much markup survives sanitization. Selection is always
// the caller's responsibility; it is never inferred from content.
type Policy int

const (
	// Strict strips all markup and keeps only text content. Use for titles,
	// names, locations, and any other plain-text field.
	Strict Policy = iota

	// Basic keeps a small inline-formatting allowlist (b, i, em, strong, u)
	// with no attributes. Use for remarks and question text.
	Basic

	// Rich keeps block and inline formatting (p, br, ul, ol, li, links) with
	// href/target allowed on links only. Use for job descriptions from the
	// rich text editor.
	Rich
)

var (
	policyOnce sync.Once

	strictPolicy *bluemonday.Policy
	basicPolicy  *bluemonday.Policy
	richPolicy   *bluemonday.Policy
)

func initPolicies() {
	strictPolicy = bluemonday.StrictPolicy()

	basicPolicy = bluemonday.NewPolicy()
	basicPolicy.AllowElements("b", "i", "em", "strong", "u")

	richPolicy = bluemonday.NewPolicy()
	richPolicy.AllowElements("b", "i", "em", "strong", "u")
	richPolicy.AllowElements("p", "br", "ul", "ol", "li")
	richPolicy.AllowAttrs("href", "target").OnElements("a")
	richPolicy.AllowURLSchemes("http", "https")
	richPolicy.RequireParseableURLs(true)
}

func policyFor(p Policy) *bluemonday.Policy {
	policyOnce.Do(initPolicies)
	switch p {
	case Basic:
		return basicPolicy
	case Rich:
		return richPolicy
	default:
		return strictPolicy
	}
}

// Text sanitizes a single string under the given policy. The empty string is
// returned unchanged, and the function never fails on any input. After the
// markup pass, embedded NUL bytes are dropped and surrounding whitespace is
// trimmed. Text is idempotent: sanitizing already-sanitized output is a
// no-op.
func Text(input string, p Policy) string {
	if input == "" {
		return ""
	}

	cleaned := policyFor(p).Sanitize(input)

	// Defense in depth after the markup pass.
	cleaned = strings.ReplaceAll(cleaned, "\x00", "")
	return strings.TrimSpace(cleaned)
}

// TextSlice sanitizes every element of a string slice under the given
// policy, preserving length and order. A nil slice stays nil.
func TextSlice(in []string, p Policy) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = Text(s, p)
	}
	return out
}
