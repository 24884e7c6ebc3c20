package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finsight/orchestrator/pkg/models"
)

// triggerRequest is the trigger body; all fields are optional with defaults
type triggerRequest struct {
	RunMode           models.RunMode `json:"run_mode" binding:"omitempty,oneof=full treasury_only portfolio_only compliance_only"`
	RiskThreshold     *int           `json:"risk_threshold" binding:"omitempty,gte=0,lte=100"`
	SendNotifications *bool          `json:"send_notifications"`
}

// handleTrigger starts a workflow run. A FAILED trigger result is still a
// successful response; only ERROR results surface as a server error.
func (s *Server) handleTrigger(c *gin.Context) {
	req := triggerRequest{}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	mode := req.RunMode
	if mode == "" {
		mode = models.RunModeFull
	}
	threshold := 70
	if req.RiskThreshold != nil {
		threshold = *req.RiskThreshold
	}
	notify := true
	if req.SendNotifications != nil {
		notify = *req.SendNotifications
	}

	s.respondTrigger(c, mode, threshold, notify)
}

// handleTriggerTreasury starts a treasury-only analysis run
func (s *Server) handleTriggerTreasury(c *gin.Context) {
	s.respondTrigger(c, models.RunModeTreasuryOnly, 70, true)
}

// handleTriggerPortfolio starts a portfolio-only analysis run
func (s *Server) handleTriggerPortfolio(c *gin.Context) {
	s.respondTrigger(c, models.RunModePortfolioOnly, 70, true)
}

// handleTriggerCompliance starts a compliance-only analysis run
func (s *Server) handleTriggerCompliance(c *gin.Context) {
	s.respondTrigger(c, models.RunModeComplianceOnly, 70, true)
}

func (s *Server) respondTrigger(c *gin.Context, mode models.RunMode, threshold int, notify bool) {
	result := s.engine.Trigger(c.Request.Context(), mode, threshold, notify)
	if result.Status == models.TriggerStatusError {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Message})
		return
	}
	c.JSON(http.StatusOK, result)
}

// handleListExecutions lists recent executions, optionally filtered by state
func (s *Server) handleListExecutions(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return
	}
	state := c.Query("state")

	c.JSON(http.StatusOK, s.engine.ListExecutions(c.Request.Context(), limit, state))
}

// handleGetExecution returns the mapped status of one execution
func (s *Server) handleGetExecution(c *gin.Context) {
	record := s.engine.Execution(c.Request.Context(), c.Param("id"))
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "execution not found"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// handleExecutionLogs returns the raw log entries of one execution
func (s *Server) handleExecutionLogs(c *gin.Context) {
	id := c.Param("id")
	c.JSON(http.StatusOK, gin.H{
		"execution_id": id,
		"logs":         s.engine.ExecutionLogs(c.Request.Context(), id),
	})
}
