package menu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// PriceContext is the decimal context used for all menu arithmetic.
// Display rounding is half-up: 0.125 renders as "0.13".
var PriceContext = func() *apd.Context {
	ctx := apd.BaseContext.WithPrecision(34)
	ctx.Rounding = apd.RoundHalfUp
	return ctx
}()

// Price digit limits. A price has at most MaxPriceIntegerDigits before the
// decimal point and MaxPriceFractionDigits after it (trailing zeros are
// not counted), so sums over a menu stay exact and averages render with
// two places inside PriceContext's precision.
const (
	MaxPriceIntegerDigits  = 15
	MaxPriceFractionDigits = 15
)

// Price is an immutable, non-negative exact decimal amount.
// The zero value is a price of 0.
type Price struct {
	d *apd.Decimal
}

// ParsePrice parses textual input into a Price.
// The input must be a finite, non-negative decimal number.
func ParsePrice(s string) (Price, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Price{}, fmt.Errorf("price is empty")
	}
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Price{}, fmt.Errorf("price %q is not a number", s)
	}
	if d.Form != apd.Finite {
		return Price{}, fmt.Errorf("price %q is not finite", s)
	}
	if d.IsZero() {
		d.Negative = false
	}
	if d.Negative {
		return Price{}, errNegativePrice
	}
	if err := checkDigits(s, d); err != nil {
		return Price{}, err
	}
	return Price{d: d}, nil
}

// checkDigits enforces the price digit limits on d with trailing zeros
// removed.
func checkDigits(s string, d *apd.Decimal) error {
	var r apd.Decimal
	r.Reduce(d)
	if n := integerDigits(&r); n > MaxPriceIntegerDigits {
		return fmt.Errorf("price %q has %d digits before the decimal point, at most %d allowed", s, n, MaxPriceIntegerDigits)
	}
	if r.Exponent < 0 && int64(-r.Exponent) > MaxPriceFractionDigits {
		return fmt.Errorf("price %q has %d digits after the decimal point, at most %d allowed", s, -int64(r.Exponent), MaxPriceFractionDigits)
	}
	return nil
}

// integerDigits counts the digits of d before the decimal point; at least 1.
func integerDigits(d *apd.Decimal) int64 {
	n := d.NumDigits() + int64(d.Exponent)
	if n < 1 {
		return 1
	}
	return n
}

// MustParsePrice is ParsePrice for literals known to be valid.
func MustParsePrice(s string) Price {
	p, err := ParsePrice(s)
	if err != nil {
		panic(err)
	}
	return p
}

var errNegativePrice = errors.New("price must not be negative")

// Decimal returns a copy of the underlying decimal.
func (p Price) Decimal() *apd.Decimal {
	out := new(apd.Decimal)
	if p.d != nil {
		out.Set(p.d)
	}
	return out
}

// Cmp compares p and q like apd.Decimal.Cmp.
func (p Price) Cmp(q Price) int {
	return p.Decimal().Cmp(q.Decimal())
}

// String returns the price as entered, without exponent notation.
func (p Price) String() string {
	if p.d == nil {
		return "0"
	}
	return p.d.Text('f')
}

// Fixed renders the price with exactly two decimal places.
func (p Price) Fixed() string {
	return FormatFixed(p.Decimal())
}

// MarshalText renders the two-decimal form so JSON output is a string.
func (p Price) MarshalText() ([]byte, error) {
	return []byte(p.Fixed()), nil
}

// FormatFixed quantises d to two places using PriceContext rounding.
// The precision grows with d, so the result always has two places.
func FormatFixed(d *apd.Decimal) string {
	ctx := PriceContext
	// Two places plus one digit for a carry such as 99.995 -> 100.00.
	if need := integerDigits(d) + 3; need > int64(ctx.Precision) {
		ctx = ctx.WithPrecision(uint32(need))
	}
	var out apd.Decimal
	if _, err := ctx.Quantize(&out, d, -2); err != nil {
		// Only exponents beyond the context's range fail here.
		return d.Text('f')
	}
	return out.Text('f')
}
