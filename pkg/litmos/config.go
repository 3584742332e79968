package litmos

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
)

const (
	// DefaultHost is the API host used when Config.Host is empty.
	DefaultHost = "litmos.com"

	// DefaultAPIVersion is the API version used when Config.APIVersion is empty.
	DefaultAPIVersion = "1"

	// DefaultTimeout is the HTTP timeout used when Config.Timeout is zero.
	DefaultTimeout = 30 * time.Second
)

// Config contains configuration for the Litmos client.
type Config struct {
	// APIKey is the account API key. Required.
	APIKey string `json:"-"`

	// Source identifies the calling site to the API. Required.
	Source string `json:"source"`

	// APIVersion selects the versioned service path.
	// Default: "1"
	APIVersion string `json:"apiVersion,omitempty"`

	// Host is the API domain; requests go to https://api.<Host>.
	// Default: "litmos.com"
	Host string `json:"host,omitempty"`

	// BaseURL overrides the URL derived from Host and APIVersion.
	// Example: "http://127.0.0.1:8080/v1.svc"
	BaseURL string `json:"baseUrl,omitempty"`

	// Timeout for API requests. Ignored when HTTPClient is set.
	// Default: 30 seconds
	Timeout time.Duration `json:"timeout,omitempty"`

	// TLSVerify controls TLS certificate verification. Ignored when
	// HTTPClient is set.
	// Default: true
	TLSVerify *bool `json:"tlsVerify,omitempty"`

	// HTTPClient is used for all requests when set.
	HTTPClient *http.Client `json:"-"`

	// Logger receives request and response logs. Optional.
	Logger hclog.Logger `json:"-"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	tlsVerify := true
	return &Config{
		APIVersion: DefaultAPIVersion,
		Host:       DefaultHost,
		Timeout:    DefaultTimeout,
		TLSVerify:  &tlsVerify,
	}
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.APIVersion == "" {
		c.APIVersion = defaults.APIVersion
	}
	if c.Host == "" {
		c.Host = defaults.Host
	}
	if c.Timeout == 0 {
		c.Timeout = defaults.Timeout
	}
	if c.TLSVerify == nil {
		c.TLSVerify = defaults.TLSVerify
	}
	if c.Logger == nil {
		c.Logger = hclog.NewNullLogger()
	}
}

// Validate checks if the configuration is valid. All problems are reported
// together.
func (c *Config) Validate() error {
	var result *multierror.Error

	if strings.TrimSpace(c.APIKey) == "" {
		result = multierror.Append(result, errors.New("api_key is required"))
	}
	if strings.TrimSpace(c.Source) == "" {
		result = multierror.Append(result, errors.New("source is required"))
	}
	if c.BaseURL == "" && strings.TrimSpace(c.APIVersion) == "" {
		result = multierror.Append(result, errors.New("api_version is required"))
	}

	if c.BaseURL != "" {
		parsedURL, err := url.Parse(c.BaseURL)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("invalid base_url: %w", err))
		} else if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
			result = multierror.Append(result, fmt.Errorf(
				"base_url must use http or https scheme, got: %q", parsedURL.Scheme))
		}
	}

	if c.Timeout < 0 {
		result = multierror.Append(result, fmt.Errorf(
			"timeout must be non-negative, got: %v", c.Timeout))
	}

	return result.ErrorOrNil()
}

// Endpoint returns the base URL requests are built on, without a trailing
// slash.
func (c *Config) Endpoint() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}

	version := c.APIVersion
	if version == "" {
		version = DefaultAPIVersion
	}
	host := c.Host
	if host == "" {
		host = DefaultHost
	}

	return fmt.Sprintf("https://api.%s/v%s.svc", host, version)
}

// NewHTTPClient creates the HTTP client used when Config.HTTPClient is nil.
func (c *Config) NewHTTPClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	if c.TLSVerify != nil && !*c.TLSVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &http.Client{
		Timeout:   c.Timeout,
		Transport: transport,
	}
}
