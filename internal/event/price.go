package event

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
)

// PriceScale is the number of fractional digits a price carries.
const PriceScale = 2

// price bounds in cents, inclusive
const (
	MinPriceCents = 1
	MaxPriceCents = 9999
)

// Price is a fixed-point monetary amount with two fractional digits.
// It encodes as a bare JSON number such as 7.50.
type Price struct {
	d decimal.Decimal
}

// PriceFromCents returns the price of n hundredths.
func PriceFromCents(n int64) Price {
	return Price{d: decimal.New(n, -PriceScale)}
}

// ParsePrice parses a decimal string, rounding half away from zero to two
// fractional digits.
func ParsePrice(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, fmt.Errorf("parse price %q: %w", s, err)
	}
	return Price{d: d.Round(PriceScale)}, nil
}

// Cents returns the price as a whole number of hundredths.
func (p Price) Cents() int64 {
	return p.d.Shift(PriceScale).IntPart()
}

// Decimal returns the underlying decimal value.
func (p Price) Decimal() decimal.Decimal {
	return p.d
}

// Valid reports whether the price lies within the generated range.
func (p Price) Valid() bool {
	c := p.Cents()
	return c >= MinPriceCents && c <= MaxPriceCents
}

func (p Price) String() string {
	return p.d.StringFixed(PriceScale)
}

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal. null leaves p
// unchanged.
func (p *Price) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) >= 2 && b[0] == '"' && b[len(b)-1] == '"' {
		b = b[1 : len(b)-1]
	}
	parsed, err := ParsePrice(string(b))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
