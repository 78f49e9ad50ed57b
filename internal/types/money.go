// README: Common money value object used across modules.
package types

import (
	"fmt"
	"math"
)

// Money is an amount in the currency's minor units (cents for FJD/USD/AUD/NZD).
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// RoundHalfUp converts a fractional minor-unit value to whole minor units,
// rounding halves away from zero. Prices in this domain are non-negative, so
// this matches standard round-half-up.
func RoundHalfUp(v float64) int64 {
	return int64(math.Round(v))
}

// Scale multiplies the amount by factor and rounds to whole minor units.
func (m Money) Scale(factor float64) Money {
	return Money{Amount: RoundHalfUp(float64(m.Amount) * factor), Currency: m.Currency}
}

// Add returns m + other. Operands must share a currency; mixing currencies
// is a programming error in this core, not a runtime condition.
func (m Money) Add(other Money) Money {
	return Money{Amount: m.Amount + other.Amount, Currency: m.Currency}
}

// String renders the amount with two decimal places, e.g. "85.00 FJD".
// Negative amounts (discount lines) keep their sign.
func (m Money) String() string {
	sign := ""
	a := m.Amount
	if a < 0 {
		sign = "-"
		a = -a
	}
	return fmt.Sprintf("%s%d.%02d %s", sign, a/100, a%100, m.Currency)
}
