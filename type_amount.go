package acctreports

import (
	"github.com/shopspring/decimal"
)

// Places is the number of fractional digits of every reported amount.
const Places = 2

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | string | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case string:
		return decimal.RequireFromString(v)
	default:
		panic("unsupported type")
	}
}

// Amount is a monetary value as it is reported: rounded to exactly two
// decimal places, half-up (ties away from zero).
//
// Intermediate sums must be kept as decimal.Decimal and converted to an Amount
// only once, at the time of reporting.
type Amount struct {
	value decimal.Decimal
}

// A returns the reported Amount for value.
func A[T float64 | int | int64 | string | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value).Round(Places)}
}

func (a Amount) Decimal() decimal.Decimal { return a.value }
func (a Amount) Equal(b Amount) bool      { return a.value.Equal(b.value) }
func (a Amount) IsZero() bool             { return a.value.IsZero() }

// String returns the amount with exactly two fractional digits.
func (a Amount) String() string { return a.value.StringFixed(Places) }

// MarshalJSON writes the amount as a JSON number with exactly two fractional
// digits (e.g. 12.30), never as a string.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}
