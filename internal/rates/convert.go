package rates

import (
	"context"

	"github.com/ImJustSebas/University-budget-manager/internal/currency"

	"github.com/rs/zerolog/log"
)

// Converter moves money between currencies. Same-currency conversions
// return the input untouched without a lookup; every other conversion does
// one lookup and keeps full precision.
type Converter struct {
	quoter   Quoter
	warnings []Warning
}

// NewConverter returns a converter backed by q.
func NewConverter(q Quoter) *Converter {
	return &Converter{quoter: q}
}

// Convert returns m expressed in to.
func (c *Converter) Convert(ctx context.Context, m currency.Money, to currency.Code) currency.Money {
	if m.Currency == to {
		return m
	}

	q := c.quoter.Quote(ctx, m.Currency, to)
	if q.Fallback {
		log.Debug().Err(q.Err).Str("from", string(q.From)).Str("to", string(q.To)).Msg("rate lookup failed, using 1:1")
		c.warnings = append(c.warnings, Warning{From: q.From, To: q.To, Err: q.Err})
	}
	return currency.New(m.Amount.Mul(q.Rate), to)
}

// Warnings returns every fallback recorded so far, oldest first.
func (c *Converter) Warnings() []Warning {
	out := make([]Warning, len(c.warnings))
	copy(out, c.warnings)
	return out
}
