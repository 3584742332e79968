// Package normalize rewrites decoded Litmos JSON payloads into the shape
// callers consume: snake_case keys and time.Time values for embedded dates.
package normalize

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/hashicorp-forge/litmos/pkg/msdate"
)

var (
	acronymBoundary = regexp.MustCompile(`([A-Z\d]+)([A-Z][a-z])`)
	caseBoundary    = regexp.MustCompile(`([a-z\d])([A-Z])`)
)

// Key converts a camelCase or PascalCase key to snake_case.
//
//	UserName      -> user_name
//	HTMLParser    -> html_parser
//	Address1      -> address1
//	Access::Level -> access/level
//	dont-care     -> dont_care
//
// Keys that are already snake_case are returned unchanged.
func Key(s string) string {
	s = strings.ReplaceAll(s, "::", "/")
	s = acronymBoundary.ReplaceAllString(s, "${1}_${2}")
	s = caseBoundary.ReplaceAllString(s, "${1}_${2}")
	s = strings.ReplaceAll(s, "-", "_")
	return strings.ToLower(s)
}

// Value normalizes a decoded JSON value.
//
// Objects get their keys rewritten with Key, arrays are walked in order, and
// strings in the "/Date(...)/" form become time.Time. Everything else is
// returned as is. When two keys of one object normalize to the same key, the
// one that sorts last among the original keys wins.
func Value(v any) any {
	switch v := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		out := make(map[string]any, len(v))
		for _, k := range keys {
			out[Key(k)] = Value(v[k])
		}
		return out

	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = Value(elem)
		}
		return out

	case string:
		if !msdate.Match(v) {
			return v
		}
		t, err := msdate.Decode(v)
		if err != nil {
			return v
		}
		return t

	default:
		return v
	}
}

// JSON decodes data, which must hold exactly one JSON value, and normalizes
// the result. Numbers are kept as json.Number so large identifiers survive
// the round trip.
func JSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, errors.New("unexpected data after top-level JSON value")
	}
	return Value(v), nil
}
