package aggregation

import (
	"context"

	"github.com/finsight/orchestrator/pkg/models"
)

// Market aggregates the news feed and economic indicators. Every nested
// indicator path defaults to zero at each level of absence.
func (s *service) Market(_ context.Context) models.MarketSnapshot {
	defer observe(domainMarket)()

	newsDoc := s.store.Document(domainMarket, fileNewsFeed)
	indicators := s.store.Document(domainMarket, fileIndicators)

	articles := newsDoc.List("articles")
	items := make([]models.NewsItem, 0, len(articles))
	for _, a := range articles {
		items = append(items, models.NewsItem{
			Headline:       a.Str("headline", ""),
			Source:         a.Str("source", ""),
			Sentiment:      a.Str("sentiment", "NEUTRAL"),
			SentimentScore: a.Float("sentiment_score", 0),
			Impact:         a.Str("market_impact", ""),
		})
	}

	indices := indicators.Section("indices")
	rates := indicators.Section("interest_rates")
	sp500 := indices.Section("sp500")

	return models.MarketSnapshot{
		Date:             today(),
		NewsItems:        items,
		OverallSentiment: newsDoc.Section("market_summary").Str("overall_sentiment", "NEUTRAL"),
		SP500Level:       sp500.Float("value", 0),
		SP500ChangePct:   sp500.Float("daily_change_pct", 0),
		VIX:              indices.Section("vix").Float("value", 0),
		FedFundsRate:     rates.Float("fed_funds", 0),
		Treasury10Y:      rates.Float("treasury_10y", 0),
	}
}
