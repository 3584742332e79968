package base

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/hashicorp-forge/litmos/pkg/litmos"
)

const (
	// EnvAPIKey overrides api_key from the config file.
	EnvAPIKey = "LITMOS_API_KEY"

	// EnvSource overrides source from the config file.
	EnvSource = "LITMOS_SOURCE"
)

// FileConfig is the HCL configuration file read by the CLI.
//
//	api_key = "..."
//	source  = "my-site"
//	timeout = "10s"
type FileConfig struct {
	APIKey     string `hcl:"api_key,optional"`
	Source     string `hcl:"source,optional"`
	APIVersion string `hcl:"api_version,optional"`
	Host       string `hcl:"host,optional"`
	BaseURL    string `hcl:"base_url,optional"`
	Timeout    string `hcl:"timeout,optional"`
	TLSVerify  *bool  `hcl:"tls_verify,optional"`
}

// LoadConfig reads the config file at path, if any, and applies the
// environment overrides. An empty path yields a config built from the
// environment alone.
func LoadConfig(path string) (*FileConfig, error) {
	cfg := &FileConfig{}
	if path != "" {
		if err := hclsimple.DecodeFile(path, nil, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}
	}

	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv(EnvSource); v != "" {
		cfg.Source = v
	}

	return cfg, nil
}

// ClientConfig converts the file config into a litmos.Config.
func (c *FileConfig) ClientConfig(logger hclog.Logger) (litmos.Config, error) {
	cfg := litmos.Config{
		APIKey:     c.APIKey,
		Source:     c.Source,
		APIVersion: c.APIVersion,
		Host:       c.Host,
		BaseURL:    c.BaseURL,
		TLSVerify:  c.TLSVerify,
		Logger:     logger,
	}

	if c.Timeout != "" {
		d, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return litmos.Config{}, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
		}
		cfg.Timeout = d
	}

	return cfg, nil
}

// NewClient loads the config at path and builds a client from it.
func (c *Command) NewClient(path string) (*litmos.Client, error) {
	fc, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	cfg, err := fc.ClientConfig(c.Log)
	if err != nil {
		return nil, err
	}

	return litmos.NewClient(cfg)
}
