package litmos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hashicorp-forge/litmos/pkg/normalize"
)

const (
	apiKeyHeader = "apikey"
	apiKeyParam  = "apikey"
	sourceParam  = "source"
)

// request describes one call. For GET and DELETE only query is used.
type request struct {
	method string
	path   string
	body   Params
	query  Params
}

func (r request) op() string {
	return r.method + " " + strings.TrimLeft(r.path, "/")
}

func hasBody(method string) bool {
	return method == http.MethodPost || method == http.MethodPut
}

// dispatch issues exactly one HTTP request and turns the reply into a
// *Response or an *Error. Transport and body read errors are returned as is.
func (c *Client) dispatch(ctx context.Context, r request) (*Response, error) {
	body, rawBody := r.body.split()
	query, rawQuery := r.query.split()
	raw := rawBody || rawQuery

	var reqBody io.Reader
	if hasBody(r.method) {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	target, err := c.url(r.method, r.path, query)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(apiKeyHeader, c.config.APIKey)

	logger := c.logger.With(
		"request_id", uuid.NewString(),
		"method", r.method,
		"path", r.path,
	)
	logger.Debug("sending request")
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Debug("request failed", "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Debug("failed to read response", "error", err)
		return nil, err
	}

	verdict := classify(resp.StatusCode, data)
	logger = logger.With(
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if !verdict.success() {
		err := verdict.err(r.op())
		logger.Warn("request returned an error status", "error_kind", err.(*Error).Kind.String())
		return nil, err
	}

	switch {
	case verdict.kind == outcomeEmpty:
		logger.Debug("received empty response")
		return &Response{StatusCode: resp.StatusCode, Kind: ResponseEmpty, Body: data}, nil

	case raw:
		logger.Debug("received response", "normalized", false, "bytes", len(data))
		return &Response{StatusCode: resp.StatusCode, Kind: ResponseRaw, Body: data}, nil
	}

	value, err := normalize.JSON(data)
	if err != nil {
		logger.Warn("failed to decode response body", "error", err)
		return nil, &Error{
			Kind:       KindAPI,
			Op:         r.op(),
			StatusCode: resp.StatusCode,
			Body:       data,
			Err:        fmt.Errorf("failed to decode response: %w", err),
		}
	}

	logger.Debug("received response", "normalized", true, "bytes", len(data))
	return &Response{
		StatusCode: resp.StatusCode,
		Kind:       ResponseNormalized,
		Body:       data,
		Value:      value,
	}, nil
}

// url builds the request URL. A query string already present in path is
// kept; params override it and the credentials override both. GET and DELETE
// carry the API key in the query string as well as the header; every method
// carries the source.
func (c *Client) url(method, path string, query Params) (string, error) {
	path, rawQuery, _ := strings.Cut(path, "?")

	q, err := url.ParseQuery(rawQuery)
	if err != nil {
		return "", fmt.Errorf("invalid query in path %q: %w", path, err)
	}
	for k, v := range query.values() {
		q[k] = v
	}

	q.Set(sourceParam, c.config.Source)
	if !hasBody(method) {
		q.Set(apiKeyParam, c.config.APIKey)
	}

	return c.baseURL + "/" + strings.TrimLeft(path, "/") + "?" + q.Encode(), nil
}
