package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleDashboard returns the consolidated cross-domain risk summary
func (s *Server) handleDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, s.aggregator.Dashboard(c.Request.Context()))
}

// handleTreasury returns cash positions, debt schedule and FX exposures
func (s *Server) handleTreasury(c *gin.Context) {
	c.JSON(http.StatusOK, s.aggregator.Treasury(c.Request.Context()))
}

// handlePortfolio returns holdings, risk metrics and YTD performance
func (s *Server) handlePortfolio(c *gin.Context) {
	c.JSON(http.StatusOK, s.aggregator.Portfolio(c.Request.Context()))
}

// handleCompliance returns AML alerts, KYC status and audit events
func (s *Server) handleCompliance(c *gin.Context) {
	c.JSON(http.StatusOK, s.aggregator.Compliance(c.Request.Context()))
}

// handleMarket returns the news feed and economic indicators
func (s *Server) handleMarket(c *gin.Context) {
	c.JSON(http.StatusOK, s.aggregator.Market(c.Request.Context()))
}
