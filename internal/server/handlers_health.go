package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finsight/orchestrator/pkg/models"
)

// handleHealth probes the workflow engine and the inference service and
// reports a composite status.
func (s *Server) handleHealth(c *gin.Context) {
	ctx := c.Request.Context()

	engineHealth := s.engine.CheckHealth(ctx)
	inferenceHealth := s.prober.CheckHealth(ctx)

	status := models.HealthDegraded
	if engineHealth.Status == models.HealthHealthy && inferenceHealth.Status == models.HealthHealthy {
		status = models.HealthHealthy
	}

	c.JSON(http.StatusOK, models.HealthReport{
		Status:          status,
		APIVersion:      s.apiVersion,
		EngineStatus:    engineHealth.Status,
		InferenceStatus: inferenceHealth.Status,
		Timestamp:       time.Now().UTC(),
	})
}

// handleReady is the readiness probe for container orchestration
func (s *Server) handleReady(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready", "timestamp": time.Now().UTC().Format(time.RFC3339)})
}

// handleLive is the liveness probe for container orchestration
func (s *Server) handleLive(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive", "timestamp": time.Now().UTC().Format(time.RFC3339)})
}
