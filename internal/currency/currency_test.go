package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToReporting(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		code     string
		expected float64
	}{
		{"usd identity", 100, "USD", 100},
		{"eur", 100, "EUR", 108},
		{"gbp", 100, "GBP", 127},
		{"jpy", 10000, "JPY", 67},
		{"chf", 100, "CHF", 114},
		{"cad", 100, "CAD", 74},
		{"unknown code converts at rate 1", 250, "XAU", 250},
		{"empty code converts at rate 1", 250, "", 250},
		{"zero amount", 0, "EUR", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ToReporting(tt.amount, tt.code), 1e-9)
		})
	}
}

func TestRateUnknownDefaultsToOne(t *testing.T) {
	assert.Equal(t, 1.0, Rate("BTC"))
	assert.Equal(t, 1.08, Rate("EUR"))
}
