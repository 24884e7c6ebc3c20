package workflow

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/finsight/orchestrator/internal/config"
	"github.com/finsight/orchestrator/pkg/models"
)

func newTestClient(baseURL string) *Client {
	return NewClient(zap.NewNop(), config.EngineConfig{
		BaseURL:        baseURL,
		Namespace:      "finance",
		FlowID:         "finance-ai-orchestrator",
		WebhookKey:     "finance-orchestrator-trigger",
		RequestTimeout: 5 * time.Second,
		HealthTimeout:  2 * time.Second,
	})
}

// unreachableURL points at a server that has already been shut down
func unreachableURL(t *testing.T) string {
	t.Helper()
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()
	return url
}

func TestTriggerSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/executions/webhook/finance/finance-ai-orchestrator/finance-orchestrator-trigger", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "full", payload["run_mode"])
		assert.Equal(t, 70.0, payload["risk_threshold"])
		assert.Equal(t, "true", payload["send_notifications"])

		json.NewEncoder(w).Encode(map[string]string{"id": "exec-123"})
	}))
	defer ts.Close()

	result := newTestClient(ts.URL).Trigger(context.Background(), models.RunModeFull, 70, true)

	assert.Equal(t, models.TriggerStatusTriggered, result.Status)
	assert.Equal(t, "exec-123", result.ExecutionID)
	assert.Contains(t, result.Message, "finance-ai-orchestrator")
	assert.False(t, result.Timestamp.IsZero())
}

func TestTriggerHTTPErrorReturnsFailed(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "flow is disabled", http.StatusInternalServerError)
	}))
	defer ts.Close()

	result := newTestClient(ts.URL).Trigger(context.Background(), models.RunModeFull, 70, true)

	assert.Equal(t, models.TriggerStatusFailed, result.Status)
	assert.Empty(t, result.ExecutionID)
	assert.Contains(t, result.Message, "500")
	assert.Contains(t, result.Message, "flow is disabled")
}

func TestTriggerNetworkErrorReturnsError(t *testing.T) {
	result := newTestClient(unreachableURL(t)).Trigger(context.Background(), models.RunModeTreasuryOnly, 50, false)

	assert.Equal(t, models.TriggerStatusError, result.Status)
	assert.Empty(t, result.ExecutionID)
	assert.NotEmpty(t, result.Message)
}

func TestMapState(t *testing.T) {
	tests := []struct {
		raw      string
		expected models.ExecutionState
	}{
		{"CREATED", models.ExecutionCreated},
		{"RUNNING", models.ExecutionRunning},
		{"SUCCESS", models.ExecutionSuccess},
		{"FAILED", models.ExecutionFailed},
		{"KILLED", models.ExecutionKilled},
		{"PAUSED", models.ExecutionCreated},
		{"", models.ExecutionCreated},
		{"restarted", models.ExecutionCreated},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, MapState(tt.raw), "raw state %q", tt.raw)
	}
}

func TestExecutionFound(t *testing.T) {
	start := time.Date(2025, 8, 2, 10, 0, 0, 0, time.UTC)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/executions/exec-1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"id":        "exec-1",
			"flowId":    "finance-ai-orchestrator",
			"namespace": "finance",
			"state":     "RUNNING",
			"startDate": start,
			"duration":  1500.0,
			"outputs":   map[string]any{"report": "s3://bucket/report.pdf"},
		})
	}))
	defer ts.Close()

	record := newTestClient(ts.URL).Execution(context.Background(), "exec-1")

	require.NotNil(t, record)
	assert.Equal(t, "exec-1", record.ExecutionID)
	assert.Equal(t, "finance", record.Namespace)
	assert.Equal(t, models.ExecutionRunning, record.State)
	require.NotNil(t, record.StartDate)
	assert.True(t, record.StartDate.Equal(start))
	assert.Nil(t, record.EndDate)
	require.NotNil(t, record.DurationMS)
	assert.Equal(t, int64(1500), *record.DurationMS)
	assert.Equal(t, "s3://bucket/report.pdf", record.Outputs["report"])
}

func TestExecutionUnknownStateMapsToCreated(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"id": "exec-2", "state": "QUEUED"})
	}))
	defer ts.Close()

	record := newTestClient(ts.URL).Execution(context.Background(), "exec-2")

	require.NotNil(t, record)
	assert.Equal(t, models.ExecutionCreated, record.State)
}

func TestExecutionRetrievalFailureReturnsNil(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer ts.Close()

	assert.Nil(t, newTestClient(ts.URL).Execution(context.Background(), "missing"))
	assert.Nil(t, newTestClient(unreachableURL(t)).Execution(context.Background(), "exec-1"))
}

func TestListExecutions(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/executions", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "finance", q.Get("namespace"))
		assert.Equal(t, "finance-ai-orchestrator", q.Get("flowId"))
		assert.Equal(t, "5", q.Get("size"))
		assert.Equal(t, "SUCCESS", q.Get("state"))

		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{{"id": "exec-1"}, {"id": "exec-2"}},
		})
	}))
	defer ts.Close()

	results := newTestClient(ts.URL).ListExecutions(context.Background(), 5, "SUCCESS")

	require.Len(t, results, 2)
	assert.Equal(t, "exec-1", results[0]["id"])
}

func TestListExecutionsOmitsEmptyStateFilter(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.URL.Query()["state"]
		assert.False(t, present)
		json.NewEncoder(w).Encode(map[string]any{"results": []map[string]any{}})
	}))
	defer ts.Close()

	assert.Empty(t, newTestClient(ts.URL).ListExecutions(context.Background(), 10, ""))
}

func TestListExecutionsFailureReturnsEmpty(t *testing.T) {
	results := newTestClient(unreachableURL(t)).ListExecutions(context.Background(), 10, "")
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestExecutionLogs(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/logs/exec-1", r.URL.Path)
		json.NewEncoder(w).Encode([]map[string]any{
			{"level": "INFO", "message": "task started"},
			{"level": "ERROR", "message": "task failed"},
		})
	}))
	defer ts.Close()

	logs := newTestClient(ts.URL).ExecutionLogs(context.Background(), "exec-1")

	require.Len(t, logs, 2)
	assert.Equal(t, "task failed", logs[1]["message"])
}

func TestExecutionLogsFailureReturnsEmpty(t *testing.T) {
	logs := newTestClient(unreachableURL(t)).ExecutionLogs(context.Background(), "exec-1")
	assert.NotNil(t, logs)
	assert.Empty(t, logs)
}

func TestCheckHealth(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/plugins", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer healthy.Close()

	h := newTestClient(healthy.URL).CheckHealth(context.Background())
	assert.Equal(t, models.HealthHealthy, h.Status)
	assert.Equal(t, http.StatusOK, h.Code)

	unhealthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer unhealthy.Close()

	h = newTestClient(unhealthy.URL).CheckHealth(context.Background())
	assert.Equal(t, models.HealthUnhealthy, h.Status)
	assert.Equal(t, http.StatusServiceUnavailable, h.Code)

	h = newTestClient(unreachableURL(t)).CheckHealth(context.Background())
	assert.Equal(t, models.HealthUnreachable, h.Status)
	assert.NotEmpty(t, h.Error)
}
