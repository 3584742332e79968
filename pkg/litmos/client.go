package litmos

import (
	"context"
	"net/http"

	"github.com/hashicorp/go-hclog"
)

// Client issues requests against the Litmos API. It is safe for concurrent
// use; its configuration is fixed at construction.
type Client struct {
	config     Config
	baseURL    string
	httpClient *http.Client
	logger     hclog.Logger
}

// NewClient validates cfg and creates a client. A missing API key or source
// returns an error matching ErrConfiguration.
func NewClient(cfg Config) (*Client, error) {
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, &Error{
			Kind: KindConfiguration,
			Op:   "NewClient",
			Err:  err,
		}
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = cfg.NewHTTPClient()
	}

	return &Client{
		config:     cfg,
		baseURL:    cfg.Endpoint(),
		httpClient: httpClient,
		logger:     cfg.Logger.Named("litmos"),
	}, nil
}

// BaseURL returns the URL every request path is appended to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Source returns the configured source site.
func (c *Client) Source() string {
	return c.config.Source
}

// Get fetches path. params are sent as query parameters.
func (c *Client) Get(ctx context.Context, path string, params Params) (*Response, error) {
	return c.dispatch(ctx, request{
		method: http.MethodGet,
		path:   path,
		query:  params,
	})
}

// Post sends params as a JSON body to path, with query as query parameters.
func (c *Client) Post(ctx context.Context, path string, params, query Params) (*Response, error) {
	return c.dispatch(ctx, request{
		method: http.MethodPost,
		path:   path,
		body:   params,
		query:  query,
	})
}

// Put sends params as a JSON body to path, with query as query parameters.
func (c *Client) Put(ctx context.Context, path string, params, query Params) (*Response, error) {
	return c.dispatch(ctx, request{
		method: http.MethodPut,
		path:   path,
		body:   params,
		query:  query,
	})
}

// Delete deletes path. params are sent as query parameters.
func (c *Client) Delete(ctx context.Context, path string, params Params) (*Response, error) {
	return c.dispatch(ctx, request{
		method: http.MethodDelete,
		path:   path,
		query:  params,
	})
}
