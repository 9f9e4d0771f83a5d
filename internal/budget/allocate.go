package budget

import (
	"context"

	"github.com/ImJustSebas/University-budget-manager/internal/currency"

	"github.com/shopspring/decimal"
)

// Share of the remaining funds suggested for each daily category.
var (
	FoodShare       = decimal.RequireFromString("0.6")
	IncidentalShare = decimal.RequireFromString("0.4")
)

// Converter moves money into another currency.
type Converter interface {
	Convert(ctx context.Context, m currency.Money, to currency.Code) currency.Money
}

// SuggestInput carries the committed amounts, each in any supported currency.
type SuggestInput struct {
	Scholarship    currency.Money
	TransportTotal currency.Money
	FixedTotal     currency.Money
	Savings        currency.Money
	TotalDays      int
	Display        currency.Code
}

// Suggestion is the proposed daily split, in the display currency.
// Remaining may be negative; the daily amounts are then negative too.
type Suggestion struct {
	Remaining         currency.Money
	FoodPerDay        currency.Money
	IncidentalsPerDay currency.Money
}

// Allocator computes suggested daily allocations.
type Allocator struct {
	conv Converter
}

// NewAllocator returns an allocator converting through conv.
func NewAllocator(conv Converter) *Allocator {
	return &Allocator{conv: conv}
}

// Suggest splits whatever is left after transport, fixed expenses and
// savings into FoodShare and IncidentalShare per day. TotalDays must be >= 1.
func (a *Allocator) Suggest(ctx context.Context, in SuggestInput) Suggestion {
	to := in.Display
	remaining := a.conv.Convert(ctx, in.Scholarship, to).
		Sub(a.conv.Convert(ctx, orZero(in.TransportTotal, to), to)).
		Sub(a.conv.Convert(ctx, orZero(in.FixedTotal, to), to)).
		Sub(a.conv.Convert(ctx, orZero(in.Savings, to), to))

	return Suggestion{
		Remaining:         remaining,
		FoodPerDay:        remaining.Mul(FoodShare).DivInt(in.TotalDays),
		IncidentalsPerDay: remaining.Mul(IncidentalShare).DivInt(in.TotalDays),
	}
}

// Accept converts an accepted suggestion back into the base currency so it
// can be stored on a Plan.
func (a *Allocator) Accept(ctx context.Context, s Suggestion, base currency.Code) (food, incidentals currency.Money) {
	return a.conv.Convert(ctx, s.FoodPerDay, base), a.conv.Convert(ctx, s.IncidentalsPerDay, base)
}
