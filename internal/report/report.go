// Package report turns a settled budget plan into an itemized summary and
// writes it to the terminal and to the summary file.
package report

import (
	"time"

	"github.com/ImJustSebas/University-budget-manager/internal/budget"
	"github.com/ImJustSebas/University-budget-manager/internal/currency"

	"github.com/shopspring/decimal"
)

// Title heads every summary.
const Title = "Scholarship Budget Planner"

// Row labels.
const (
	LabelTransport   = "Transportation"
	LabelFood        = "Food"
	LabelIncidentals = "Incidentals"
	LabelFixed       = "Fixed expenses"
	LabelSavings     = "Savings reserved"
	LabelTotal       = "Total expenses"
	LabelDeficit     = "Deficit"
	LabelSurplus     = "Surplus/Savings"
)

// Kind classifies a row for layout and styling.
type Kind int

// Row kinds.
const (
	KindItem Kind = iota
	KindGroup
	KindSubItem
	KindTotal
	KindResult
)

// Row is one labeled amount. Amounts are in Report.Currency.
type Row struct {
	Kind   Kind
	Label  string
	Amount decimal.Decimal
}

// Header is the general information block above the rows.
type Header struct {
	Start         time.Time
	End           time.Time
	Scholarship   decimal.Decimal
	TotalDays     int
	AttendingDays int
	DaysPerWeek   int
}

// Report is the structured summary of one plan.
type Report struct {
	Currency currency.Code
	Header   Header
	Rows     []Row
	Deficit  bool
}

// Build lays out the rows in their fixed order: transportation, food,
// incidentals, the fixed expenses group (only when there are any), savings
// (only when positive), total expenses and the result.
func Build(p budget.Plan, st budget.Statement) Report {
	r := Report{
		Currency: st.Display,
		Header: Header{
			Start:         p.Span.Start,
			End:           p.Span.End,
			Scholarship:   st.Scholarship.Amount,
			TotalDays:     p.Span.TotalDays,
			AttendingDays: p.Span.AttendingDays,
			DaysPerWeek:   p.Span.DaysPerWeek,
		},
		Deficit: st.Deficit(),
	}

	r.Rows = append(r.Rows,
		Row{Kind: KindItem, Label: LabelTransport, Amount: st.Transport.Amount},
		Row{Kind: KindItem, Label: LabelFood, Amount: st.Food.Amount},
		Row{Kind: KindItem, Label: LabelIncidentals, Amount: st.Incidentals.Amount},
	)

	if len(st.Fixed) > 0 {
		r.Rows = append(r.Rows, Row{Kind: KindGroup, Label: LabelFixed, Amount: st.FixedTotal.Amount})
		for _, line := range st.Fixed {
			r.Rows = append(r.Rows, Row{Kind: KindSubItem, Label: line.Name, Amount: line.Amount.Amount})
		}
	}

	if p.Savings.IsPositive() {
		r.Rows = append(r.Rows, Row{Kind: KindItem, Label: LabelSavings, Amount: st.Savings.Amount})
	}

	result := LabelSurplus
	if r.Deficit {
		result = LabelDeficit
	}
	r.Rows = append(r.Rows,
		Row{Kind: KindTotal, Label: LabelTotal, Amount: st.TotalExpenses.Amount},
		Row{Kind: KindResult, Label: result, Amount: st.Balance.Amount.Abs()},
	)

	return r
}
