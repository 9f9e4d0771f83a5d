// Package budget holds the plan a scholarship recipient builds, the
// suggested daily split of what remains after fixed commitments, and the
// final accounting in the display currency.
package budget

import (
	"errors"
	"fmt"

	"github.com/ImJustSebas/University-budget-manager/internal/currency"
	"github.com/ImJustSebas/University-budget-manager/internal/period"
)

var (
	// ErrCurrencyMismatch means an input amount is not in the plan's base currency.
	ErrCurrencyMismatch = errors.New("budget: amount not in base currency")
	// ErrEmptySpan means the plan has no computed period.
	ErrEmptySpan = errors.New("budget: period has no days")
	// ErrUnsupportedCurrency means a code outside the supported set.
	ErrUnsupportedCurrency = errors.New("budget: unsupported currency")
)

// FixedExpense is a named recurring cost entered by the user.
type FixedExpense struct {
	Name   string
	Amount currency.Money
}

// Params are the inputs to NewPlan. Every amount is in the scholarship's currency.
type Params struct {
	Scholarship      currency.Money
	Display          currency.Code
	Span             period.Span
	DailyTransport   currency.Money // per attendance day
	FixedExpenses    []FixedExpense
	Savings          currency.Money
	DailyFood        currency.Money
	DailyIncidentals currency.Money
}

// Plan is a fully built budget. It is not modified after NewPlan; a new
// run builds a new Plan.
type Plan struct {
	Scholarship      currency.Money
	Display          currency.Code
	Span             period.Span
	DailyTransport   currency.Money
	FixedExpenses    []FixedExpense
	Savings          currency.Money
	DailyFood        currency.Money
	DailyIncidentals currency.Money
}

// NewPlan checks p and returns the plan. Zero-valued optional amounts
// (savings, transport, daily budgets) default to zero in the base currency.
func NewPlan(p Params) (Plan, error) {
	base := p.Scholarship.Currency
	if !base.Valid() {
		return Plan{}, fmt.Errorf("%w: base %q", ErrUnsupportedCurrency, base)
	}
	if !p.Display.Valid() {
		return Plan{}, fmt.Errorf("%w: display %q", ErrUnsupportedCurrency, p.Display)
	}
	if p.Span.TotalDays < 1 {
		return Plan{}, ErrEmptySpan
	}

	plan := Plan{
		Scholarship:      p.Scholarship,
		Display:          p.Display,
		Span:             p.Span,
		DailyTransport:   orZero(p.DailyTransport, base),
		Savings:          orZero(p.Savings, base),
		DailyFood:        orZero(p.DailyFood, base),
		DailyIncidentals: orZero(p.DailyIncidentals, base),
		FixedExpenses:    make([]FixedExpense, len(p.FixedExpenses)),
	}
	copy(plan.FixedExpenses, p.FixedExpenses)

	checks := map[string]currency.Money{
		"daily transport":   plan.DailyTransport,
		"savings":           plan.Savings,
		"daily food":        plan.DailyFood,
		"daily incidentals": plan.DailyIncidentals,
	}
	for name, m := range checks {
		if m.Currency != base {
			return Plan{}, fmt.Errorf("%w: %s is %s, base is %s", ErrCurrencyMismatch, name, m.Currency, base)
		}
	}
	for _, fe := range plan.FixedExpenses {
		if fe.Amount.Currency != base {
			return Plan{}, fmt.Errorf("%w: fixed expense %q is %s, base is %s", ErrCurrencyMismatch, fe.Name, fe.Amount.Currency, base)
		}
	}

	return plan, nil
}

// Base is the currency the plan's amounts were entered in.
func (p Plan) Base() currency.Code { return p.Scholarship.Currency }

// TransportTotal is the daily transport cost over every attendance day.
func (p Plan) TransportTotal() currency.Money {
	return p.DailyTransport.MulInt(p.Span.AttendingDays)
}

// FixedTotal sums the fixed expenses.
func (p Plan) FixedTotal() currency.Money {
	return SumFixed(p.FixedExpenses, p.Base())
}

// FoodTotal is the daily food budget over the whole period.
func (p Plan) FoodTotal() currency.Money {
	return p.DailyFood.MulInt(p.Span.TotalDays)
}

// IncidentalsTotal is the daily incidentals budget over the whole period.
func (p Plan) IncidentalsTotal() currency.Money {
	return p.DailyIncidentals.MulInt(p.Span.TotalDays)
}

// TotalExpenses is transport + food + incidentals + fixed + savings, in the base currency.
func (p Plan) TotalExpenses() currency.Money {
	return p.TransportTotal().
		Add(p.FoodTotal()).
		Add(p.IncidentalsTotal()).
		Add(p.FixedTotal()).
		Add(p.Savings)
}

// SumFixed totals expenses, which must all be in base.
func SumFixed(expenses []FixedExpense, base currency.Code) currency.Money {
	total := currency.Zero(base)
	for _, fe := range expenses {
		total = total.Add(fe.Amount)
	}
	return total
}

func orZero(m currency.Money, base currency.Code) currency.Money {
	if m.Currency == "" {
		return currency.Zero(base)
	}
	return m
}
