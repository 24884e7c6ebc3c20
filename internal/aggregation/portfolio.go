package aggregation

import (
	"context"

	"github.com/finsight/orchestrator/pkg/models"
)

// Portfolio aggregates holdings, the latest risk-metrics row and YTD
// performance. With no risk-metrics row the VaR figures default to zero
// and the risk score to a neutral 50.
func (s *service) Portfolio(_ context.Context) models.PortfolioSnapshot {
	defer observe(domainPortfolio)()

	holdingsDoc := s.store.Document(domainPortfolio, fileHoldings)
	performance := s.store.Document(domainPortfolio, filePerformance)
	varMetrics := s.store.Table(domainPortfolio, fileVaRMetrics)

	entries := holdingsDoc.List("holdings")
	holdings := make([]models.Holding, 0, len(entries))
	for _, h := range entries {
		holdings = append(holdings, models.Holding{
			Ticker:        h.Str("ticker", ""),
			Name:          h.Str("name", ""),
			AssetClass:    h.Str("asset_class", ""),
			Quantity:      h.Float("quantity", 0),
			CurrentPrice:  h.Float("current_price", 0),
			MarketValue:   h.Float("market_value", 0),
			WeightPct:     h.Float("weight_pct", 0),
			UnrealizedPnL: h.Float("unrealized_pnl", 0),
		})
	}

	snapshot := models.PortfolioSnapshot{
		Date:      today(),
		Holdings:  holdings,
		TotalAUM:  holdingsDoc.Float("total_aum", 0),
		RiskScore: 50,
	}

	// The risk-metrics table holds at most one current row
	if len(varMetrics) > 0 {
		latest := varMetrics[0]
		snapshot.Date = latest.Str("date", snapshot.Date)
		snapshot.VaR95OneDay = latest.Float("var_95_1d", 0)
		snapshot.VaR99OneDay = latest.Float("var_99_1d", 0)
		snapshot.SharpeRatio = latest.Float("sharpe_ratio", 0)
		snapshot.MaxDrawdown = latest.Float("max_drawdown", 0)
		snapshot.RiskScore = latest.Int("risk_score", 50)
	}

	ytd := performance.Section("performance").Section("ytd")
	snapshot.YTDReturn = ytd.Float("return_pct", 0)
	snapshot.BenchmarkReturn = ytd.Float("benchmark_pct", 0)
	snapshot.Alpha = ytd.Float("alpha", 0)

	return snapshot
}
