package promptpay

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	amountDecimals  = 2
	maxAmountLength = 13

	maxAmountExponent = 10
	minAmountExponent = -16
)

var (
	ErrInvalidAmount = errors.New("invalid amount")

	maxAmount = decimal.RequireFromString("9999999999.99")
)

// ParseAmount reads a decimal amount. The whole trimmed string must be a
// number; trailing garbage is rejected.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d, checkAmount(d)
}

func AmountFromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, fmt.Errorf("%w: %v is not finite", ErrInvalidAmount, f)
	}
	d := decimal.NewFromFloat(f)
	return d, checkAmount(d)
}

// FormatAmount renders d with exactly two fractional digits, rounding half
// away from zero.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(amountDecimals)
}

// checkAmount bounds the exponent first: comparing or rounding a decimal
// rescales it, which costs time and memory linear in the exponent.
func checkAmount(d decimal.Decimal) error {
	if e := d.Exponent(); e > maxAmountExponent || e < minAmountExponent {
		return fmt.Errorf("%w: exponent %d out of range", ErrInvalidAmount, e)
	}
	if d.IsNegative() {
		return fmt.Errorf("%w: %s is negative", ErrInvalidAmount, d)
	}
	if d.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: %s exceeds %s", ErrInvalidAmount, d, maxAmount)
	}
	if n := len(FormatAmount(d)); n > maxAmountLength {
		return fmt.Errorf("%w: %d characters, at most %d allowed", ErrInvalidAmount, n, maxAmountLength)
	}
	return nil
}
