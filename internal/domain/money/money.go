// Package money interprets the wizard's decimal-string currency fields.
//
// Values travel through the form as strings matching ^\d+(\.\d{1,2})?$ and
// are only parsed here, during payment derivation. Derived values are always
// re-serialized with exactly two fraction digits.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Parse converts a currency string to a decimal. Empty and unparsable inputs
// report ok=false; derivation treats those as "leave the prior value alone"
// or as zero depending on the field.
func Parse(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// Format renders a derived amount with exactly two fraction digits.
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Difference computes total minus down formatted to two fraction digits.
// ok is false when either operand is empty or unparsable; callers must then
// keep the previous derived value.
func Difference(total, down string) (string, bool) {
	t, ok := Parse(total)
	if !ok {
		return "", false
	}
	d, ok := Parse(down)
	if !ok {
		return "", false
	}
	return Format(t.Sub(d)), true
}

// DifferenceLenient subtracts b from a treating empty or unparsable operands
// as zero, formatted to two fraction digits.
func DifferenceLenient(a, b string) string {
	left := decimal.Zero
	if d, ok := Parse(a); ok {
		left = d
	}
	right := decimal.Zero
	if d, ok := Parse(b); ok {
		right = d
	}
	return Format(left.Sub(right))
}

// SumLenient adds two currency strings treating empty or unparsable operands
// as zero, formatted to two fraction digits.
func SumLenient(a, b string) string {
	sum := decimal.Zero
	if d, ok := Parse(a); ok {
		sum = sum.Add(d)
	}
	if d, ok := Parse(b); ok {
		sum = sum.Add(d)
	}
	return Format(sum)
}
