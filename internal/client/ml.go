package client

import (
	"context"
	"fmt"
	"time"

	"stoik.com/phishscan/internal/core/port"
)

const (
	MLBackendHTTP   = "http"
	MLBackendGemini = "gemini"
)

type MLConfig struct {
	Backend      string
	Endpoint     string
	Timeout      time.Duration
	GeminiAPIKey string
	GeminiModel  string
}

// NewMLClient returns the text classifier selected by cfg.Backend.
func NewMLClient(ctx context.Context, cfg MLConfig) (port.MLClient, error) {
	switch cfg.Backend {
	case MLBackendHTTP:
		return NewHTTPModelClient(cfg.Endpoint, cfg.Timeout), nil
	case MLBackendGemini:
		return NewGeminiModelClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	default:
		return nil, fmt.Errorf("unknown ml backend %q", cfg.Backend)
	}
}
