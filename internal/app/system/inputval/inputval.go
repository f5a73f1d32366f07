// internal/app/system/inputval/inputval.go

// Package inputval validates request input. Struct validation runs through
// go-playground/validator with `validate:` rules and human-friendly `label:`
// tags; the free predicates cover the formats struct tags handle poorly.
package inputval

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Result accumulates field-level validation messages.
type Result struct {
	errors []string
}

// HasErrors reports whether any rule failed.
func (r Result) HasErrors() bool { return len(r.errors) > 0 }

// First returns the first error message, or "" when validation passed.
func (r Result) First() string {
	if len(r.errors) == 0 {
		return ""
	}
	return r.errors[0]
}

// All returns every error message in rule order.
func (r Result) All() []string { return r.errors }

// Add appends a custom message to the result.
func (r *Result) Add(msg string) { r.errors = append(r.errors, msg) }

// Validate checks a struct against its `validate:` tags. Field names in
// messages come from the `label:` tag when present, falling back to the Go
// field name.
func Validate(input any) Result {
	var res Result
	err := instance().Struct(input)
	if err == nil {
		return res
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		res.Add("Invalid input.")
		return res
	}

	t := reflect.TypeOf(input)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	for _, fe := range verrs {
		label := fe.StructField()
		if f, found := t.FieldByName(fe.StructField()); found {
			if l := f.Tag.Get("label"); l != "" {
				label = l
			}
		}
		res.Add(messageFor(label, fe))
	}
	return res
}

func messageFor(label string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", label)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters.", label, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters.", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s is invalid.", label)
	case "email":
		return fmt.Sprintf("%s must be a valid email address.", label)
	default:
		return fmt.Sprintf("%s is invalid.", label)
	}
}

/* ------------------------------ predicates ------------------------------- */

// IsValidEmail reports whether s looks like a plausible bare email address
// (local@domain, no display name). Single-label domains are accepted for
// dev and test environments.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}

	at := strings.LastIndexByte(s, '@')
	if at <= 0 || at == len(s)-1 {
		return false
	}
	local, domain := s[:at], s[at+1:]

	if strings.ContainsAny(s, " \t<>") {
		return false
	}
	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") || strings.Contains(local, "..") {
		return false
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") || strings.Contains(domain, "..") {
		return false
	}
	return true
}

// IsValidURL reports whether s is an absolute URL with an explicit http or
// https scheme and a host.
func IsValidURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}
