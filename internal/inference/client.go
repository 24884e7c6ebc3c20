// Package inference holds the client for the model inference service.
// Only the health probe is consumed here; analysis itself runs inside the
// workflow engine.
package inference

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/finsight/orchestrator/internal/config"
	"github.com/finsight/orchestrator/pkg/models"
)

// Prober classifies the inference service's reachability
type Prober interface {
	CheckHealth(ctx context.Context) models.ServiceHealth
}

// Client implements Prober against the service's model-listing endpoint
type Client struct {
	logger  *zap.Logger
	http    *http.Client
	baseURL string
	timeout time.Duration
}

// NewClient creates an inference service client from configuration
func NewClient(logger *zap.Logger, cfg config.InferenceConfig) *Client {
	return &Client{
		logger:  logger,
		http:    &http.Client{},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: cfg.Timeout,
	}
}

// CheckHealth lists available models as a reachability probe
func (c *Client) CheckHealth(ctx context.Context) models.ServiceHealth {
	endpoint := fmt.Sprintf("%s/api/tags", c.baseURL)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.ServiceHealth{Status: models.HealthUnreachable, Error: err.Error()}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return models.ServiceHealth{Status: models.HealthUnreachable, Error: err.Error()}
	}
	defer resp.Body.Close()

	status := models.HealthHealthy
	if resp.StatusCode != http.StatusOK {
		status = models.HealthUnhealthy
	}
	return models.ServiceHealth{Status: status, Code: resp.StatusCode}
}
