// internal/app/system/sanitize/structure.go
package sanitize

import (
	"go.mongodb.org/mongo-driver/bson"
)

// Structure walks a JSON-shaped value and sanitizes every string leaf under
// the given policy. The traversal dispatches over a closed set of shapes:
// strings, sequences, string-keyed mappings, and everything else (numbers,
// booleans, nil) which passes through unchanged.
//
// The shape of the input is preserved exactly: mappings keep their key set,
// sequences keep their length and order. Only string leaf content changes.
//
// Both the encoding/json shapes (map[string]any, []any) and the bson shapes
// (bson.M, bson.A) are handled, since draft snapshots round-trip through the
// Mongo driver.
func Structure(v any, p Policy) any {
	switch val := v.(type) {
	case string:
		return Text(val, p)

	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Structure(item, p)
		}
		return out

	case bson.A:
		out := make(bson.A, len(val))
		for i, item := range val {
			out[i] = Structure(item, p)
		}
		return out

	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = Structure(item, p)
		}
		return out

	case bson.M:
		out := make(bson.M, len(val))
		for k, item := range val {
			out[k] = Structure(item, p)
		}
		return out

	default:
		// Non-string scalar: numbers, booleans, nil, timestamps.
		return v
	}
}

// Document sanitizes a draft snapshot in place of storage: every string leaf
// is cleaned under the policy and the bson.M shape is preserved. A nil map
// stays nil.
func Document(doc bson.M, p Policy) bson.M {
	if doc == nil {
		return nil
	}
	return Structure(doc, p).(bson.M)
}
