package gst

import "github.com/shopspring/decimal"

// Round2 rounds a monetary value to 2 decimals, half away from zero.
// Only line-level aggregates go through it; unit values keep full precision.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
