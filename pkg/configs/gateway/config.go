package gateway

import (
	"errors"
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid gateway config")

// GatewayConfig is the configuration of the ecgw server.
type GatewayConfig struct {
	// ServerPort is the port ecgw listens on.
	ServerPort string `yaml:"port"`

	// BackendApiRoot is the origin of the backend API server,
	// like "http://localhost:8000".
	BackendApiRoot string `yaml:"backendApiRoot"`
}

func LoadGatewayConfig(filepath string) (*GatewayConfig, error) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	return Unmarshal(content)
}

func Unmarshal(conf []byte) (*GatewayConfig, error) {
	var out GatewayConfig
	if err := yaml.Unmarshal(conf, &out); err != nil {
		return nil, err
	}
	if out.BackendApiRoot == "" {
		return nil, fmt.Errorf("%w: backendApiRoot is required", ErrInvalidConfig)
	}
	if u, err := url.Parse(out.BackendApiRoot); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf(
			"%w: backendApiRoot should be an absolute URL: %s",
			ErrInvalidConfig, out.BackendApiRoot,
		)
	}
	if out.ServerPort == "" {
		out.ServerPort = "8080"
	}
	return &out, nil
}
