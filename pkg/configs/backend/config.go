package backend

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Default lifetime of issued access tokens: 7 days, matching the
// expiry the storefront advertises to its users.
const DefaultTokenExpiry = 168 * time.Hour

var ErrInvalidConfig = errors.New("invalid backend config")

// BackendConfig is the configuration of the ecd server.
type BackendConfig struct {
	// ServerPort is the port ecd listens on.
	ServerPort string `yaml:"port"`

	// TokenSecret signs access tokens (HMAC-SHA256). Required.
	TokenSecret string `yaml:"tokenSecret"`

	// TokenExpiry is the lifetime of issued tokens, in
	// time.ParseDuration syntax. Empty means 168h.
	TokenExpiry string `yaml:"tokenExpiry"`

	// SeedFile points a YAML file loaded into the store at boot.
	// Empty means no seeding.
	SeedFile string `yaml:"seed"`
}

func LoadBackendConfig(filepath string) (*BackendConfig, error) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	return Unmarshal(content)
}

func Unmarshal(conf []byte) (*BackendConfig, error) {
	var out BackendConfig
	if err := yaml.Unmarshal(conf, &out); err != nil {
		return nil, err
	}
	if out.TokenSecret == "" {
		return nil, fmt.Errorf("%w: tokenSecret is required", ErrInvalidConfig)
	}
	if out.ServerPort == "" {
		out.ServerPort = "8000"
	}
	return &out, nil
}

// Expiry parses TokenExpiry, defaulting to DefaultTokenExpiry.
func (c *BackendConfig) Expiry() (time.Duration, error) {
	if c.TokenExpiry == "" {
		return DefaultTokenExpiry, nil
	}
	d, err := time.ParseDuration(c.TokenExpiry)
	if err != nil {
		return 0, fmt.Errorf("%w: tokenExpiry: %s", ErrInvalidConfig, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: tokenExpiry should be positive: %s", ErrInvalidConfig, c.TokenExpiry)
	}
	return d, nil
}
