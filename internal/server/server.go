package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/finsight/orchestrator/internal/aggregation"
	"github.com/finsight/orchestrator/internal/inference"
	"github.com/finsight/orchestrator/internal/workflow"
)

// Server represents the HTTP server
type Server struct {
	logger      *zap.Logger
	apiTitle    string
	apiVersion  string
	corsOrigins []string
	aggregator  aggregation.Service
	engine      workflow.Engine
	prober      inference.Prober
}

// NewServer creates a new HTTP server
func NewServer(
	logger *zap.Logger,
	apiTitle string,
	apiVersion string,
	corsOrigins []string,
	aggregator aggregation.Service,
	engine workflow.Engine,
	prober inference.Prober,
) *Server {
	return &Server{
		logger:      logger,
		apiTitle:    apiTitle,
		apiVersion:  apiVersion,
		corsOrigins: corsOrigins,
		aggregator:  aggregator,
		engine:      engine,
		prober:      prober,
	}
}

// Router creates a new HTTP router
func (s *Server) Router() *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(ginzap.Ginzap(s.logger, "2006-01-02T15:04:05Z07:00", true))
	router.Use(ginzap.RecoveryWithZap(s.logger, true))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     s.corsOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(MetricsMiddleware())

	router.GET("/", s.handleIndex)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	health := router.Group("/health")
	{
		health.GET("", s.handleHealth)
		health.GET("/ready", s.handleReady)
		health.GET("/live", s.handleLive)
	}

	data := router.Group("/data")
	{
		data.GET("/dashboard", s.handleDashboard)
		data.GET("/treasury", s.handleTreasury)
		data.GET("/portfolio", s.handlePortfolio)
		data.GET("/compliance", s.handleCompliance)
		data.GET("/market", s.handleMarket)
	}

	workflows := router.Group("/workflows")
	{
		workflows.POST("/trigger", s.handleTrigger)
		workflows.POST("/trigger/treasury", s.handleTriggerTreasury)
		workflows.POST("/trigger/portfolio", s.handleTriggerPortfolio)
		workflows.POST("/trigger/compliance", s.handleTriggerCompliance)
		workflows.GET("/executions", s.handleListExecutions)
		workflows.GET("/executions/:id", s.handleGetExecution)
		workflows.GET("/executions/:id/logs", s.handleExecutionLogs)
	}

	return router
}

// handleIndex returns API information and the endpoint map
func (s *Server) handleIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    s.apiTitle,
		"version": s.apiVersion,
		"health":  "/health",
		"endpoints": gin.H{
			"dashboard":        "/data/dashboard",
			"treasury":         "/data/treasury",
			"portfolio":        "/data/portfolio",
			"compliance":       "/data/compliance",
			"market":           "/data/market",
			"trigger_workflow": "/workflows/trigger",
			"executions":       "/workflows/executions",
		},
	})
}
