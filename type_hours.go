package projectflow

import "github.com/shopspring/decimal"

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Hours is an exact quantity of hours. Time entries accumulate fractional
// hours (1h45m is 1.75) and the sums must stay exact across task and project
// rollups, so float64 is not used.
type Hours struct {
	value decimal.Decimal
}

func H[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Hours {
	return Hours{value: newDecimal(value)}
}

func (h Hours) Equal(x Hours) bool    { return h.value.Equal(x.value) }
func (h Hours) LessThan(x Hours) bool { return h.value.LessThan(x.value) }
func (h Hours) Add(x Hours) Hours     { return Hours{value: h.value.Add(x.value)} }
func (h Hours) Sub(x Hours) Hours     { return Hours{value: h.value.Sub(x.value)} }
func (h Hours) IsNegative() bool      { return h.value.IsNegative() }
func (h Hours) IsZero() bool          { return h.value.IsZero() }
func (h Hours) String() string        { return h.value.String() }

// AsFloat returns the hours as a float64, for display ratios only.
func (h Hours) AsFloat() float64 { return h.value.InexactFloat64() }

// MarshalJSON implements the json.Marshaler interface.
func (h Hours) MarshalJSON() ([]byte, error) {
	return h.value.MarshalJSON()
}

func (h *Hours) UnmarshalJSON(decimalBytes []byte) error {
	return h.value.UnmarshalJSON(decimalBytes)
}
