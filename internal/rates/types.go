package rates

import (
	"fmt"

	"github.com/ImJustSebas/University-budget-manager/internal/currency"

	"github.com/shopspring/decimal"
)

// LatestResponse is the rate table returned for one base currency.
// Rates maps ISO codes to the amount of that currency one unit of Base buys.
type LatestResponse struct {
	Base  string                     `json:"base"`
	Date  string                     `json:"date"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// RateFor extracts the rate for code from the table.
func (l *LatestResponse) RateFor(code currency.Code) (decimal.Decimal, error) {
	rate, ok := l.Rates[string(code)]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrMissingRate, code)
	}
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s=%s", ErrInvalidRate, code, rate)
	}
	return rate, nil
}

// Quote is the outcome of one rate lookup. When the lookup failed, Rate is
// exactly 1, Fallback is set and Err holds the cause.
type Quote struct {
	From     currency.Code
	To       currency.Code
	Rate     decimal.Decimal
	Fallback bool
	Err      error
}

// Warning records a conversion that used the 1:1 fallback.
type Warning struct {
	From currency.Code
	To   currency.Code
	Err  error
}

func (w Warning) String() string {
	return fmt.Sprintf("could not fetch %s→%s rate, used 1:1 (%v)", w.From, w.To, w.Err)
}
