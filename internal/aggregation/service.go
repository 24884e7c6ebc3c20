// Package aggregation builds per-domain reporting snapshots from the raw
// data sources and assembles the composite dashboard. Every snapshot is
// recomputed from the latest source state on each call; there is no cache.
package aggregation

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/finsight/orchestrator/internal/risk"
	"github.com/finsight/orchestrator/internal/source"
	"github.com/finsight/orchestrator/pkg/metrics"
	"github.com/finsight/orchestrator/pkg/models"
)

// Source domains and logical file names
const (
	domainTreasury   = "treasury"
	domainPortfolio  = "portfolio"
	domainCompliance = "compliance"
	domainMarket     = "market"

	fileCashPositions = "cash_positions.csv"
	fileDebtSchedule  = "debt_schedule.csv"
	fileFXRates       = "fx_rates.json"
	fileHoldings      = "holdings.json"
	filePerformance   = "performance.json"
	fileVaRMetrics    = "var_metrics.csv"
	fileAMLAlerts     = "aml_alerts.json"
	fileKYCStatus     = "kyc_status.json"
	fileAuditLogs     = "audit_logs.csv"
	fileNewsFeed      = "news_feed.json"
	fileIndicators    = "economic_indicators.json"
)

// Service exposes the per-domain snapshot and dashboard operations.
// Aggregation never fails: unavailable sources collapse to defaults.
type Service interface {
	Treasury(ctx context.Context) models.TreasurySnapshot
	Portfolio(ctx context.Context) models.PortfolioSnapshot
	Compliance(ctx context.Context) models.ComplianceSnapshot
	Market(ctx context.Context) models.MarketSnapshot
	Dashboard(ctx context.Context) models.DashboardSummary
}

type service struct {
	logger *zap.Logger
	store  source.Store
}

// NewService creates the aggregation service over a data store
func NewService(logger *zap.Logger, store source.Store) Service {
	return &service{logger: logger, store: store}
}

// Dashboard aggregates all four domains concurrently and scores the result.
// The aggregators read disjoint data, so no ordering is required.
func (s *service) Dashboard(ctx context.Context) models.DashboardSummary {
	var (
		treasury   models.TreasurySnapshot
		portfolio  models.PortfolioSnapshot
		compliance models.ComplianceSnapshot
		market     models.MarketSnapshot
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { treasury = s.Treasury(gctx); return nil })
	g.Go(func() error { portfolio = s.Portfolio(gctx); return nil })
	g.Go(func() error { compliance = s.Compliance(gctx); return nil })
	g.Go(func() error { market = s.Market(gctx); return nil })
	_ = g.Wait()

	return risk.BuildSummary(treasury, portfolio, compliance, market)
}

// observe times one domain aggregation for the metrics histogram
func observe(domain string) func() {
	start := time.Now()
	return func() {
		metrics.AggregationDuration.WithLabelValues(domain).Observe(time.Since(start).Seconds())
	}
}

// today is the nominal date used when a source carries no date field
func today() string {
	return time.Now().Format("2006-01-02")
}
