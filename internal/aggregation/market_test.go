package aggregation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight/orchestrator/internal/source"
)

func TestMarketAggregation(t *testing.T) {
	store := emptyStore()
	store.docs["market/news_feed.json"] = source.Document{
		"articles": []any{
			map[string]any{
				"headline": "Fed holds rates", "source": "Reuters",
				"sentiment": "POSITIVE", "sentiment_score": 0.62, "market_impact": "HIGH",
			},
			map[string]any{"headline": "Earnings miss"},
		},
		"market_summary": map[string]any{"overall_sentiment": "BEARISH"},
	}
	store.docs["market/economic_indicators.json"] = source.Document{
		"indices": map[string]any{
			"sp500": map[string]any{"value": 5432.1, "daily_change_pct": -0.8},
			"vix":   map[string]any{"value": 19.4},
		},
		"interest_rates": map[string]any{"fed_funds": 5.25, "treasury_10y": 4.1},
	}

	snap := newTestService(store).Market(context.Background())

	require.Len(t, snap.NewsItems, 2)
	assert.Equal(t, "Fed holds rates", snap.NewsItems[0].Headline)
	assert.Equal(t, "HIGH", snap.NewsItems[0].Impact)
	assert.Equal(t, "NEUTRAL", snap.NewsItems[1].Sentiment)

	assert.Equal(t, "BEARISH", snap.OverallSentiment)
	assert.Equal(t, 5432.1, snap.SP500Level)
	assert.Equal(t, -0.8, snap.SP500ChangePct)
	assert.Equal(t, 19.4, snap.VIX)
	assert.Equal(t, 5.25, snap.FedFundsRate)
	assert.Equal(t, 4.1, snap.Treasury10Y)
}

func TestMarketEmptySources(t *testing.T) {
	snap := newTestService(emptyStore()).Market(context.Background())

	assert.Empty(t, snap.NewsItems)
	assert.Equal(t, "NEUTRAL", snap.OverallSentiment)
	assert.Zero(t, snap.SP500Level)
	assert.Zero(t, snap.VIX)
	assert.Zero(t, snap.FedFundsRate)
	assert.Zero(t, snap.Treasury10Y)
}
