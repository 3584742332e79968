package litmos

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/mitchellh/mapstructure"

	"github.com/hashicorp-forge/litmos/pkg/normalize"
)

// ResponseKind tells how a successful response body was handled.
type ResponseKind int

const (
	// ResponseEmpty means the API answered 200/201 with a blank body.
	ResponseEmpty ResponseKind = iota

	// ResponseRaw means normalization was suppressed with DontParseResponse.
	ResponseRaw

	// ResponseNormalized means Value holds the normalized body.
	ResponseNormalized
)

func (k ResponseKind) String() string {
	switch k {
	case ResponseEmpty:
		return "empty"
	case ResponseRaw:
		return "raw"
	case ResponseNormalized:
		return "normalized"
	default:
		return fmt.Sprintf("ResponseKind(%d)", int(k))
	}
}

// Response is a successful API response.
type Response struct {
	StatusCode int
	Kind       ResponseKind

	// Body is the raw response body, whatever the Kind.
	Body []byte

	// Value is the normalized body: map[string]any, []any or a scalar, with
	// snake_case keys and time.Time dates. It is nil unless Kind is
	// ResponseNormalized.
	Value any
}

// Empty reports whether the API returned no content.
func (r *Response) Empty() bool {
	return r.Kind == ResponseEmpty
}

// Object returns Value as a JSON object.
func (r *Response) Object() (map[string]any, bool) {
	m, ok := r.Value.(map[string]any)
	return m, ok
}

// List returns Value as a JSON array.
func (r *Response) List() ([]any, bool) {
	l, ok := r.Value.([]any)
	return l, ok
}

// Decode stores the response in target.
//
// Values are decoded with mapstructure, so target fields are matched against
// snake_case keys (use `mapstructure:"user_name"` tags). Raw responses are
// normalized first so the same target type works for both kinds; Body keeps
// the original keys. Dates that were not in the "/Date(...)/" form are parsed
// from their text, or read as epoch milliseconds when numeric, if the target
// field is a time.Time; blank strings become the zero time. An object is not
// decoded into a slice. Empty responses leave target untouched.
func (r *Response) Decode(target any) error {
	switch r.Kind {
	case ResponseEmpty:
		return nil

	case ResponseRaw:
		value, err := normalize.JSON(r.Body)
		if err != nil {
			return fmt.Errorf("failed to decode raw response: %w", err)
		}
		return decodeValue(value, target)

	default:
		return decodeValue(r.Value, target)
	}
}

func decodeValue(value, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			objectToSliceHook,
			toTimeHook,
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := dec.Decode(value); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

var timeType = reflect.TypeOf(time.Time{})

// objectToSliceHook stops weak decoding from wrapping a single object in a
// one-element slice.
func objectToSliceHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() == reflect.Map && (to.Kind() == reflect.Slice || to.Kind() == reflect.Array) {
		return nil, fmt.Errorf("expected a list, got an object")
	}
	return data, nil
}

// toTimeHook converts textual and numeric dates for time.Time fields.
func toTimeHook(_, to reflect.Type, data any) (any, error) {
	if to != timeType {
		return data, nil
	}

	switch v := data.(type) {
	case json.Number:
		ms, err := v.Int64()
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", v.String(), err)
		}
		return time.UnixMilli(ms).UTC(), nil

	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return time.Time{}, nil
		}

		t, err := dateparse.ParseIn(s, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", s, err)
		}
		return t, nil

	default:
		return data, nil
	}
}
