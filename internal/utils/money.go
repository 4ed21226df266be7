package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Cents is the amount representation used everywhere inside the engine.
// JSON boundaries speak 2-decimal floats; conversion happens once at the edge.
type Cents = int64

// ToCents converts a decimal amount (e.g. 110.00) to cents, rounding half away from zero.
func ToCents(amount float64) Cents {
	return Cents(math.Round(amount * 100))
}

// FromCents converts cents back to a decimal amount for JSON responses.
func FromCents(c Cents) float64 {
	return float64(c) / 100
}

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(c Cents) string {
	return fmt.Sprintf("%.2f", FromCents(c))
}

// RoundedTax computes tax on a subtotal at the given rate, rounded to a cent.
func RoundedTax(subtotal Cents, rate float64) Cents {
	return Cents(math.Round(float64(subtotal) * rate))
}

// ParseMoney parses "110.00", "110", or "1,250.50" into cents.
func ParseMoney(s string) (Cents, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, fmt.Errorf("invalid money amount")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return ToCents(f), nil
}
