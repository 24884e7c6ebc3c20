// Package workflow proxies long-running analysis jobs to the external
// workflow execution engine. Failures at this boundary are data: trigger
// errors come back as structured results, retrieval errors as absent or
// empty values. Calls are stateless, time-bounded and never retried.
package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/finsight/orchestrator/internal/config"
	"github.com/finsight/orchestrator/pkg/metrics"
	"github.com/finsight/orchestrator/pkg/models"
)

// Engine defines the workflow engine proxy operations
type Engine interface {
	Trigger(ctx context.Context, mode models.RunMode, riskThreshold int, sendNotifications bool) models.TriggerResult
	Execution(ctx context.Context, executionID string) *models.ExecutionRecord
	ListExecutions(ctx context.Context, limit int, state string) []map[string]any
	ExecutionLogs(ctx context.Context, executionID string) []map[string]any
	CheckHealth(ctx context.Context) models.ServiceHealth
}

// Client implements Engine over the engine's HTTP API
type Client struct {
	logger         *zap.Logger
	http           *http.Client
	baseURL        string
	namespace      string
	flowID         string
	webhookKey     string
	requestTimeout time.Duration
	healthTimeout  time.Duration
}

// NewClient creates an engine client from configuration
func NewClient(logger *zap.Logger, cfg config.EngineConfig) *Client {
	return &Client{
		logger:         logger,
		http:           &http.Client{},
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		namespace:      cfg.Namespace,
		flowID:         cfg.FlowID,
		webhookKey:     cfg.WebhookKey,
		requestTimeout: cfg.RequestTimeout,
		healthTimeout:  cfg.HealthTimeout,
	}
}

// Trigger starts a workflow run through the unauthenticated webhook
// endpoint. A non-success HTTP status yields a FAILED result, any other
// failure an ERROR result; nothing is raised past this boundary.
func (c *Client) Trigger(ctx context.Context, mode models.RunMode, riskThreshold int, sendNotifications bool) models.TriggerResult {
	endpoint := fmt.Sprintf("%s/api/v1/executions/webhook/%s/%s/%s",
		c.baseURL, c.namespace, c.flowID, c.webhookKey)

	payload := map[string]any{
		"run_mode":           string(mode),
		"risk_threshold":     riskThreshold,
		"send_notifications": strconv.FormatBool(sendNotifications),
	}
	body, _ := json.Marshal(payload)

	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return c.triggerError(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return c.triggerError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Warn("workflow trigger rejected",
			zap.Int("status", resp.StatusCode), zap.String("flow_id", c.flowID))
		metrics.EngineCallsTotal.WithLabelValues("trigger", "failed").Inc()
		return models.TriggerResult{
			ExecutionID: "",
			Status:      models.TriggerStatusFailed,
			Message:     fmt.Sprintf("failed to trigger workflow: HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(detail))),
			Timestamp:   time.Now().UTC(),
		}
	}

	var data struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return c.triggerError(err)
	}

	metrics.EngineCallsTotal.WithLabelValues("trigger", "triggered").Inc()
	return models.TriggerResult{
		ExecutionID: data.ID,
		Status:      models.TriggerStatusTriggered,
		Message:     fmt.Sprintf("workflow %s triggered successfully", c.flowID),
		Timestamp:   time.Now().UTC(),
	}
}

func (c *Client) triggerError(err error) models.TriggerResult {
	c.logger.Warn("workflow trigger error", zap.Error(err))
	metrics.EngineCallsTotal.WithLabelValues("trigger", "error").Inc()
	return models.TriggerResult{
		ExecutionID: "",
		Status:      models.TriggerStatusError,
		Message:     fmt.Sprintf("error: %v", err),
		Timestamp:   time.Now().UTC(),
	}
}

// executionPayload is the engine-native execution representation
type executionPayload struct {
	ID        string         `json:"id"`
	FlowID    string         `json:"flowId"`
	Namespace string         `json:"namespace"`
	State     string         `json:"state"`
	StartDate *time.Time     `json:"startDate"`
	EndDate   *time.Time     `json:"endDate"`
	Duration  *float64       `json:"duration"`
	Outputs   map[string]any `json:"outputs"`
}

// Execution fetches one execution by id and maps it into the stable
// contract. Any retrieval failure returns nil, which callers surface as
// not found.
func (c *Client) Execution(ctx context.Context, executionID string) *models.ExecutionRecord {
	endpoint := fmt.Sprintf("%s/api/v1/executions/%s", c.baseURL, url.PathEscape(executionID))

	var payload executionPayload
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		c.logger.Warn("execution lookup failed",
			zap.String("execution_id", executionID), zap.Error(err))
		metrics.EngineCallsTotal.WithLabelValues("status", "error").Inc()
		return nil
	}

	metrics.EngineCallsTotal.WithLabelValues("status", "ok").Inc()
	record := &models.ExecutionRecord{
		ExecutionID: payload.ID,
		FlowID:      payload.FlowID,
		Namespace:   payload.Namespace,
		State:       MapState(payload.State),
		StartDate:   payload.StartDate,
		EndDate:     payload.EndDate,
		Outputs:     payload.Outputs,
	}
	if payload.Duration != nil {
		ms := int64(*payload.Duration)
		record.DurationMS = &ms
	}
	return record
}

// ListExecutions returns recent executions for the configured flow in the
// engine's raw summary form. Failures yield an empty list.
func (c *Client) ListExecutions(ctx context.Context, limit int, state string) []map[string]any {
	params := url.Values{}
	params.Set("namespace", c.namespace)
	params.Set("flowId", c.flowID)
	params.Set("size", strconv.Itoa(limit))
	if state != "" {
		params.Set("state", state)
	}
	endpoint := fmt.Sprintf("%s/api/v1/executions?%s", c.baseURL, params.Encode())

	var payload struct {
		Results []map[string]any `json:"results"`
	}
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		c.logger.Warn("execution listing failed", zap.Error(err))
		metrics.EngineCallsTotal.WithLabelValues("list", "error").Inc()
		return []map[string]any{}
	}

	metrics.EngineCallsTotal.WithLabelValues("list", "ok").Inc()
	if payload.Results == nil {
		return []map[string]any{}
	}
	return payload.Results
}

// ExecutionLogs returns raw log entries for an execution. Failures yield
// an empty list.
func (c *Client) ExecutionLogs(ctx context.Context, executionID string) []map[string]any {
	endpoint := fmt.Sprintf("%s/api/v1/logs/%s", c.baseURL, url.PathEscape(executionID))

	var logs []map[string]any
	if err := c.getJSON(ctx, endpoint, &logs); err != nil {
		c.logger.Warn("execution log retrieval failed",
			zap.String("execution_id", executionID), zap.Error(err))
		metrics.EngineCallsTotal.WithLabelValues("logs", "error").Inc()
		return []map[string]any{}
	}

	metrics.EngineCallsTotal.WithLabelValues("logs", "ok").Inc()
	return logs
}

// CheckHealth probes the engine's plugin listing as a lightweight
// reachability check.
func (c *Client) CheckHealth(ctx context.Context) models.ServiceHealth {
	endpoint := fmt.Sprintf("%s/api/v1/plugins", c.baseURL)

	ctx, cancel := context.WithTimeout(ctx, c.healthTimeout)
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

// getJSON performs a time-bounded GET and decodes a 2xx JSON response
func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
