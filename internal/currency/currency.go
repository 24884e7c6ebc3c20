// Package currency converts monetary amounts into the USD reporting
// currency using a process-wide immutable rate table.
package currency

// rates is the fixed conversion table into the reporting currency
var rates = map[string]float64{
	"USD": 1,
	"EUR": 1.08,
	"GBP": 1.27,
	"JPY": 0.0067,
	"CHF": 1.14,
	"CAD": 0.74,
}

// Rate returns the conversion rate for a currency code. Unknown codes are
// treated as already in the reporting currency and return 1.
func Rate(code string) float64 {
	if r, ok := rates[code]; ok {
		return r
	}
	return 1
}

// ToReporting converts an amount in the given currency into the reporting
// currency.
func ToReporting(amount float64, code string) float64 {
	return amount * Rate(code)
}
