package rates

import (
	"context"

	"github.com/ImJustSebas/University-budget-manager/internal/currency"

	"github.com/shopspring/decimal"
)

// Quoter returns a usable rate for every pair, degrading instead of failing.
type Quoter interface {
	Quote(ctx context.Context, from, to currency.Code) Quote
}

// Provider turns any Source failure (network, status, JSON, missing key)
// into a 1:1 fallback quote. Failure classes are not distinguished beyond
// the cause kept on the Quote.
type Provider struct {
	source Source
}

// NewProvider wraps src.
func NewProvider(src Source) *Provider {
	return &Provider{source: src}
}

// Quote implements Quoter.
func (p *Provider) Quote(ctx context.Context, from, to currency.Code) Quote {
	rate, err := p.source.Rate(ctx, from, to)
	if err != nil {
		return Quote{From: from, To: to, Rate: decimal.NewFromInt(1), Fallback: true, Err: err}
	}
	return Quote{From: from, To: to, Rate: rate}
}
