package litmos

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an *Error.
type Kind int

const (
	// KindConfiguration means the client was constructed with missing or
	// invalid settings.
	KindConfiguration Kind = iota + 1

	// KindNotFound means the requested resource does not exist (404).
	KindNotFound

	// KindRateLimited means the rolling request quota was exceeded (503).
	// Callers should back off; the client does not retry.
	KindRateLimited

	// KindAPI covers every other failed status: malformed requests, bad
	// credentials, conflicts and server errors.
	KindAPI
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration error"
	case KindNotFound:
		return "not found"
	case KindRateLimited:
		return "rate limit exceeded"
	case KindAPI:
		return "api error"
	default:
		return fmt.Sprintf("unknown error kind %d", int(k))
	}
}

// Sentinel errors for use with errors.Is. They match any *Error of the same
// Kind.
var (
	ErrConfiguration = &Error{Kind: KindConfiguration}
	ErrNotFound      = &Error{Kind: KindNotFound}
	ErrRateLimited   = &Error{Kind: KindRateLimited}
	ErrAPI           = &Error{Kind: KindAPI}
)

// maxBodyInMessage bounds how much of a response body Error() prints.
const maxBodyInMessage = 256

// Error is returned for every failure the client itself detects.
type Error struct {
	Kind Kind

	// Op is the failed operation, e.g. "GET users/42".
	Op string

	// StatusCode and Body are the HTTP status and the raw response body.
	// Both are zero for configuration errors.
	StatusCode int
	Body       []byte

	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("litmos: ")
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.String())
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (status %d)", e.StatusCode)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	if body := strings.TrimSpace(string(e.Body)); body != "" {
		if len(body) > maxBodyInMessage {
			body = body[:maxBodyInMessage] + "..."
		}
		b.WriteString(": ")
		b.WriteString(body)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// IsNotFound reports whether err is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsRateLimited reports whether err is a rate limit error.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}
