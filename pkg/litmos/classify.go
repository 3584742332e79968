package litmos

import (
	"bytes"
	"net/http"
)

type outcomeKind int

const (
	outcomeEmpty outcomeKind = iota
	outcomeBody
	outcomeNotFound
	outcomeRateLimited
	outcomeAPIError
)

// outcome is the verdict for one HTTP response.
type outcome struct {
	kind   outcomeKind
	status int
	body   []byte
}

// classify maps a status code and body to an outcome. Only 200 and 201 are
// successes; every status other than 404 and 503 is an API error.
func classify(status int, body []byte) outcome {
	o := outcome{status: status, body: body}

	switch status {
	case http.StatusOK, http.StatusCreated:
		if len(bytes.TrimSpace(body)) == 0 {
			o.kind = outcomeEmpty
		} else {
			o.kind = outcomeBody
		}
	case http.StatusNotFound:
		o.kind = outcomeNotFound
	case http.StatusServiceUnavailable:
		o.kind = outcomeRateLimited
	default:
		o.kind = outcomeAPIError
	}

	return o
}

func (o outcome) success() bool {
	return o.kind == outcomeEmpty || o.kind == outcomeBody
}

// err returns the *Error for failed outcomes and nil for successes.
func (o outcome) err(op string) error {
	var kind Kind
	switch o.kind {
	case outcomeNotFound:
		kind = KindNotFound
	case outcomeRateLimited:
		kind = KindRateLimited
	case outcomeAPIError:
		kind = KindAPI
	default:
		return nil
	}

	return &Error{
		Kind:       kind,
		Op:         op,
		StatusCode: o.status,
		Body:       o.body,
	}
}
