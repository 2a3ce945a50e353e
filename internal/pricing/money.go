package pricing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// percentCents computes base × rate / 100 on an integer-cent base, rounding
// half-up at the cent.
func percentCents(baseCents int64, ratePercent decimal.Decimal) int64 {
	return decimal.NewFromInt(baseCents).Mul(ratePercent).Div(hundred).Round(0).IntPart()
}

// toCents converts a currency amount in whole units to integer cents,
// rounding half-up.
func toCents(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}
