package projectflow

import (
	"encoding/json"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's full currency definition.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string   { return m.cur }
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool       { return m.value.IsZero() }
func (m Money) IsPositive() bool   { return m.value.IsPositive() }
func (m Money) IsNegative() bool   { return m.value.IsNegative() }
func (m Money) Neg() Money         { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Abs() Money         { return Money{value: m.value.Abs(), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch " + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// AsFloat returns the amount as a float64, for display ratios only.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// jsonMoney is the persisted form of a Money value.
type jsonMoney struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency,omitempty"`
}

func (m Money) MarshalJSON() ([]byte, error) {
	rounded := m.value.Round(int32(m.currency().Fraction))
	return json.Marshal(jsonMoney{Amount: rounded, Currency: m.cur})
}

func (m *Money) UnmarshalJSON(bytes []byte) error {
	var j jsonMoney
	if err := json.Unmarshal(bytes, &j); err != nil {
		return fmt.Errorf("invalid money value %q: %w", string(bytes), err)
	}
	m.value = j.Amount
	m.cur = j.Currency
	return nil
}

var _ json.Marshaler = (*Money)(nil)
var _ json.Unmarshaler = (*Money)(nil)
