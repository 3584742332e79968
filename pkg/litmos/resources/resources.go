// Package resources wraps individual Litmos endpoints (users, teams,
// courses) on top of the four verb methods of litmos.Client.
package resources

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/hashicorp-forge/litmos/pkg/litmos"
)

// Requester is the part of litmos.Client the resource services use.
type Requester interface {
	Get(ctx context.Context, path string, params litmos.Params) (*litmos.Response, error)
	Post(ctx context.Context, path string, params, query litmos.Params) (*litmos.Response, error)
	Put(ctx context.Context, path string, params, query litmos.Params) (*litmos.Response, error)
	Delete(ctx context.Context, path string, params litmos.Params) (*litmos.Response, error)
}

var _ Requester = (*litmos.Client)(nil)

// Service groups the resource services.
type Service struct {
	Users   *UsersService
	Teams   *TeamsService
	Courses *CoursesService
}

// New creates the resource services on top of r.
func New(r Requester) *Service {
	return &Service{
		Users:   &UsersService{r: r},
		Teams:   &TeamsService{r: r},
		Courses: &CoursesService{r: r},
	}
}

// ListOptions are the paging and search parameters accepted by list
// endpoints. Zero values are not sent.
type ListOptions struct {
	Search string
	Start  int
	Limit  int
}

func (o ListOptions) params() litmos.Params {
	p := litmos.Params{}
	if o.Search != "" {
		p["search"] = o.Search
	}
	if o.Start > 0 {
		p["start"] = o.Start
	}
	if o.Limit > 0 {
		p["limit"] = o.Limit
	}
	return p
}

// pascalize converts snake_case field names to the PascalCase names the API
// expects in request bodies, so callers can use the same keys responses are
// normalized to.
func pascalize(fields litmos.Params) litmos.Params {
	out := make(litmos.Params, len(fields))
	for k, v := range fields {
		if k == litmos.DontParseResponse {
			out[k] = v
			continue
		}
		out[strcase.ToCamel(k)] = v
	}
	return out
}

// resourcePath joins path segments, escaping each one.
func resourcePath(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return strings.Join(escaped, "/")
}

// decodeOne decodes a single object response.
func decodeOne[T any](resp *litmos.Response, what string) (*T, error) {
	var out T
	if err := resp.Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", what, err)
	}
	return &out, nil
}

// decodeMany decodes a list response. An empty response yields an empty
// slice.
func decodeMany[T any](resp *litmos.Response, what string) ([]T, error) {
	out := []T{}
	if err := resp.Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", what, err)
	}
	return out, nil
}
