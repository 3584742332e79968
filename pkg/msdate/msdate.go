// Package msdate decodes the "/Date(<ms><sign><offset>)/" strings that the
// Litmos API embeds in JSON payloads.
package msdate

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// pattern matches the full encoded form. The offset digits are captured so
// the whole string is validated, but they are not applied.
var pattern = regexp.MustCompile(`^/Date\((\d+)[+-](\d+)\)/$`)

// FormatError is returned by Decode when the input is not an encoded date.
type FormatError struct {
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid date %q: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("invalid date %q: expected /Date(<ms>+<offset>)/", e.Value)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Match reports whether s is an encoded date.
func Match(s string) bool {
	return pattern.MatchString(s)
}

// Decode converts an encoded date to a UTC time.
//
// The timezone offset is discarded: "/Date(1388534400000+0200)/" and
// "/Date(1388534400000+0000)/" decode to the same instant. Existing consumers
// of the API depend on this.
func Decode(s string) (time.Time, error) {
	m := pattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, &FormatError{Value: s}
	}

	ms, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return time.Time{}, &FormatError{Value: s, Err: err}
	}

	return time.UnixMilli(ms).UTC(), nil
}

// Encode formats t in the API's date form with a zero offset.
func Encode(t time.Time) string {
	return fmt.Sprintf("/Date(%d+0000)/", t.UnixMilli())
}
