package litmos

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp-forge/litmos/pkg/msdate"
)

// DontParseResponse is the reserved params key that disables normalization
// for a single call. It is removed before the request is built.
const DontParseResponse = "dont_parse_response"

// Params holds request body or query parameters.
type Params map[string]any

// split returns a copy of p without DontParseResponse and whether the caller
// asked for the raw response.
func (p Params) split() (Params, bool) {
	out := make(Params, len(p))
	raw := false
	for k, v := range p {
		if k == DontParseResponse {
			raw = truthy(v)
			continue
		}
		out[k] = v
	}
	return out, raw
}

func truthy(v any) bool {
	switch v := v.(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(v, "true")
	default:
		return false
	}
}

// values converts p into query values.
func (p Params) values() url.Values {
	q := url.Values{}
	for k, v := range p {
		q.Set(k, queryValue(v))
	}
	return q
}

func queryValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return msdate.Encode(v)
	default:
		return fmt.Sprint(v)
	}
}
