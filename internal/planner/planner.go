// Package planner runs a budgeting session: it turns gathered answers into
// a suggested daily split, then into a finished plan and its report.
package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/ImJustSebas/University-budget-manager/internal/budget"
	"github.com/ImJustSebas/University-budget-manager/internal/currency"
	"github.com/ImJustSebas/University-budget-manager/internal/period"
	"github.com/ImJustSebas/University-budget-manager/internal/rates"
	"github.com/ImJustSebas/University-budget-manager/internal/report"

	"github.com/shopspring/decimal"
)

// Inputs are the answers gathered before the suggestion step. Amounts are
// in the scholarship's currency.
type Inputs struct {
	Scholarship    currency.Money
	Display        currency.Code
	Start          time.Time
	End            time.Time
	DaysPerWeek    int
	DailyTransport decimal.Decimal
	FixedExpenses  []budget.FixedExpense
	Savings        decimal.Decimal
}

// Base is the scholarship's currency.
func (in Inputs) Base() currency.Code { return in.Scholarship.Currency }

// Draft is the state shown on the suggestion screen.
type Draft struct {
	Inputs         Inputs
	Span           period.Span
	TransportTotal currency.Money
	FixedTotal     currency.Money
	Suggestion     budget.Suggestion
}

// Decision is the user's answer to the suggestion. When Accept is false the
// daily amounts are taken as entered, in the base currency.
type Decision struct {
	Accept           bool
	DailyFood        decimal.Decimal
	DailyIncidentals decimal.Decimal
}

// Result holds everything produced by a finished session.
type Result struct {
	Plan      budget.Plan
	Statement budget.Statement
	Report    report.Report
	// Warnings lists every conversion that fell back to 1:1, in order.
	Warnings []rates.Warning
}

// Planner owns one converter for the whole session so that every fallback
// is reported once the session ends.
type Planner struct {
	conv  *rates.Converter
	alloc *budget.Allocator
}

// New returns a planner that quotes rates through q.
func New(q rates.Quoter) *Planner {
	conv := rates.NewConverter(q)
	return &Planner{conv: conv, alloc: budget.NewAllocator(conv)}
}

// Draft computes the period and the suggested daily split. An inverted
// date range returns period.ErrInvalidRange.
func (p *Planner) Draft(ctx context.Context, in Inputs) (Draft, error) {
	span, err := period.Compute(in.Start, in.End, in.DaysPerWeek)
	if err != nil {
		return Draft{}, err
	}
	base := in.Base()
	if !base.Valid() {
		return Draft{}, fmt.Errorf("%w: base %q", budget.ErrUnsupportedCurrency, base)
	}
	if in.Display == "" {
		in.Display = base
	}

	d := Draft{
		Inputs:         in,
		Span:           span,
		TransportTotal: currency.New(in.DailyTransport, base).MulInt(span.AttendingDays),
		FixedTotal:     budget.SumFixed(in.FixedExpenses, base),
	}
	d.Suggestion = p.alloc.Suggest(ctx, budget.SuggestInput{
		Scholarship:    in.Scholarship,
		TransportTotal: d.TransportTotal,
		FixedTotal:     d.FixedTotal,
		Savings:        currency.New(in.Savings, base),
		TotalDays:      span.TotalDays,
		Display:        in.Display,
	})
	return d, nil
}

// Finalize applies the decision, settles the plan in the display currency
// and builds the report.
func (p *Planner) Finalize(ctx context.Context, d Draft, dec Decision) (*Result, error) {
	in := d.Inputs
	base := in.Base()

	food, incidentals := currency.New(dec.DailyFood, base), currency.New(dec.DailyIncidentals, base)
	if dec.Accept {
		food, incidentals = p.alloc.Accept(ctx, d.Suggestion, base)
	}

	plan, err := budget.NewPlan(budget.Params{
		Scholarship:      in.Scholarship,
		Display:          in.Display,
		Span:             d.Span,
		DailyTransport:   currency.New(in.DailyTransport, base),
		FixedExpenses:    in.FixedExpenses,
		Savings:          currency.New(in.Savings, base),
		DailyFood:        food,
		DailyIncidentals: incidentals,
	})
	if err != nil {
		return nil, fmt.Errorf("building plan: %w", err)
	}

	st := budget.Settle(ctx, p.conv, plan)
	return &Result{
		Plan:      plan,
		Statement: st,
		Report:    report.Build(plan, st),
		Warnings:  p.conv.Warnings(),
	}, nil
}

// Run drafts and finalizes in one go, for non-interactive sessions.
func (p *Planner) Run(ctx context.Context, in Inputs, dec Decision) (*Result, error) {
	d, err := p.Draft(ctx, in)
	if err != nil {
		return nil, err
	}
	return p.Finalize(ctx, d, dec)
}

// Warnings returns the fallbacks recorded so far.
func (p *Planner) Warnings() []rates.Warning {
	return p.conv.Warnings()
}
