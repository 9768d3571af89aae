// Package money provides the exact decimal amount used for every value
// moved by the orchestrators.
package money

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// minDisplayPlaces is the number of fractional digits always rendered.
const minDisplayPlaces = 2

// Amount is an immutable decimal money value. The zero value is 0.
type Amount struct {
	d decimal.Decimal
}

// Zero is the zero amount.
var Zero = Amount{d: decimal.Zero}

// Parse reads a decimal string such as "1000.00".
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Amount{d: d}, nil
}

// MustParse is Parse for constants and tests. It panics on malformed input.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// FromInt returns a whole-unit amount.
func FromInt(v int64) Amount {
	return Amount{d: decimal.NewFromInt(v)}
}

// FromDecimal wraps an existing decimal.
func FromDecimal(d decimal.Decimal) Amount {
	return Amount{d: d}
}

// Decimal exposes the underlying decimal.
func (a Amount) Decimal() decimal.Decimal { return a.d }

func (a Amount) IsPositive() bool { return a.d.IsPositive() }
func (a Amount) IsZero() bool     { return a.d.IsZero() }

func (a Amount) LessThan(b Amount) bool    { return a.d.LessThan(b.d) }
func (a Amount) GreaterThan(b Amount) bool { return a.d.GreaterThan(b.d) }

// Equal compares numerically, so "10" equals "10.00".
func (a Amount) Equal(b Amount) bool { return a.d.Equal(b.d) }

func (a Amount) Add(b Amount) Amount { return Amount{d: a.d.Add(b.d)} }
func (a Amount) Sub(b Amount) Amount { return Amount{d: a.d.Sub(b.d)} }

// Cents returns the amount in hundredths, rounded half-up.
func (a Amount) Cents() int64 {
	return a.d.Shift(2).Round(0).IntPart()
}

// StringFixed renders exactly places fractional digits.
func (a Amount) StringFixed(places int32) string {
	return a.d.StringFixed(places)
}

// String renders at least two fractional digits without losing precision.
func (a Amount) String() string {
	s := a.d.String()
	if dot := strings.IndexByte(s, '.'); dot >= 0 && len(s)-dot-1 > minDisplayPlaces {
		return s
	}
	return a.d.StringFixed(minDisplayPlaces)
}

// MarshalJSON encodes the amount as a decimal string.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts both "12.30" and 12.30.
func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		return fmt.Errorf("amount is required")
	}
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Value stores the amount as a NUMERIC literal.
func (a Amount) Value() (driver.Value, error) {
	return a.d.String(), nil
}

// Scan reads NUMERIC, text and float columns.
func (a *Amount) Scan(value any) error {
	switch v := value.(type) {
	case Amount:
		*a = v
		return nil
	case decimal.Decimal:
		a.d = v
		return nil
	case nil:
		a.d = decimal.Zero
		return nil
	}
	var d decimal.Decimal
	if err := d.Scan(value); err != nil {
		return fmt.Errorf("scan amount: %w", err)
	}
	a.d = d
	return nil
}
