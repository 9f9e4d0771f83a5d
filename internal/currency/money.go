package currency

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is an amount tagged with its currency. Amounts keep full precision;
// rounding only happens when formatting.
//
// Arithmetic between two Money values requires the same currency and panics
// otherwise: moving an amount across currencies goes through a converter.
type Money struct {
	Amount   decimal.Decimal
	Currency Code
}

// New returns amount in currency c.
func New(amount decimal.Decimal, c Code) Money {
	return Money{Amount: amount, Currency: c}
}

// FromFloat is a convenience for literals and tests.
func FromFloat(f float64, c Code) Money {
	return Money{Amount: decimal.NewFromFloat(f), Currency: c}
}

// Zero returns a zero amount in c.
func Zero(c Code) Money {
	return Money{Amount: decimal.Zero, Currency: c}
}

// Add returns m + o.
func (m Money) Add(o Money) Money {
	m.mustMatch(o, "add")
	return Money{Amount: m.Amount.Add(o.Amount), Currency: m.Currency}
}

// Sub returns m - o.
func (m Money) Sub(o Money) Money {
	m.mustMatch(o, "subtract")
	return Money{Amount: m.Amount.Sub(o.Amount), Currency: m.Currency}
}

// Mul scales m by a dimensionless factor.
func (m Money) Mul(f decimal.Decimal) Money {
	return Money{Amount: m.Amount.Mul(f), Currency: m.Currency}
}

// MulInt scales m by n, e.g. a daily amount by a number of days.
func (m Money) MulInt(n int) Money {
	return m.Mul(decimal.NewFromInt(int64(n)))
}

// DivInt divides m by n. n must be non-zero.
func (m Money) DivInt(n int) Money {
	return Money{Amount: m.Amount.Div(decimal.NewFromInt(int64(n))), Currency: m.Currency}
}

// Abs returns |m|.
func (m Money) Abs() Money {
	return Money{Amount: m.Amount.Abs(), Currency: m.Currency}
}

// Cmp compares m and o: -1, 0 or +1.
func (m Money) Cmp(o Money) int {
	m.mustMatch(o, "compare")
	return m.Amount.Cmp(o.Amount)
}

// IsPositive reports m > 0.
func (m Money) IsPositive() bool { return m.Amount.IsPositive() }

// IsNegative reports m < 0.
func (m Money) IsNegative() bool { return m.Amount.IsNegative() }

// IsZero reports m == 0.
func (m Money) IsZero() bool { return m.Amount.IsZero() }

// String renders the exact amount with its code, e.g. "1500.5 USD".
func (m Money) String() string {
	return m.Amount.String() + " " + string(m.Currency)
}

func (m Money) mustMatch(o Money, op string) {
	if m.Currency != o.Currency {
		panic(fmt.Sprintf("currency: cannot %s %s and %s", op, m.Currency, o.Currency))
	}
}
