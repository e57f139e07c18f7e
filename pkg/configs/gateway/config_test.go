package gateway_test

import (
	"errors"
	"testing"

	kcg "github.com/echo-commerce/echo-commerce/pkg/configs/gateway"
)

func TestLoadGatewayConfig(t *testing.T) {

	t.Run("it can be created from a config file", func(t *testing.T) {
		result, err := kcg.LoadGatewayConfig("./testdata/config.yaml")
		if err != nil {
			t.Fatalf("failed to parse config.: %v", err)
		}

		if result.ServerPort != "8080" {
			t.Errorf("unmatch port:%s, expected:%s", result.ServerPort, "8080")
		}
		expectedBackend := "http://127.0.0.1:8000"
		if result.BackendApiRoot != expectedBackend {
			t.Errorf("unmatch backendApiRoot:%s, expected:%s", result.BackendApiRoot, expectedBackend)
		}
	})

	t.Run("it rejects config without backendApiRoot", func(t *testing.T) {
		_, err := kcg.Unmarshal([]byte(`port: "8080"`))
		if !errors.Is(err, kcg.ErrInvalidConfig) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("it rejects relative backendApiRoot", func(t *testing.T) {
		_, err := kcg.Unmarshal([]byte(`backendApiRoot: "/api"`))
		if !errors.Is(err, kcg.ErrInvalidConfig) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
