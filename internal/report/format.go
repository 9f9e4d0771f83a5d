package report

import (
	"fmt"

	"github.com/ImJustSebas/University-budget-manager/internal/cli"
	"github.com/ImJustSebas/University-budget-manager/internal/currency"
	"github.com/ImJustSebas/University-budget-manager/internal/period"
)

// Line is a Row with its amount formatted for display.
type Line struct {
	Kind  Kind
	Label string
	Value string
}

// Formatted is a Report with every value rendered to text. It is produced
// once per run and handed to each sink, so all sinks show the same figures.
type Formatted struct {
	Period      string
	Scholarship string
	TotalDays   string
	Attendance  string
	Lines       []Line
	Deficit     bool
}

// Format renders every amount with the report currency's symbol.
func (r Report) Format(f currency.Formatter) Formatted {
	h := r.Header
	out := Formatted{
		Period:      h.Start.Format(period.DateLayout) + " → " + h.End.Format(period.DateLayout),
		Scholarship: f.Amount(r.Currency, h.Scholarship),
		TotalDays:   f.Int(h.TotalDays),
		Attendance:  fmt.Sprintf("%s (%s)", f.Int(h.AttendingDays), cli.FormatPerWeek(h.DaysPerWeek)),
		Deficit:     r.Deficit,
		Lines:       make([]Line, 0, len(r.Rows)),
	}
	for _, row := range r.Rows {
		out.Lines = append(out.Lines, Line{
			Kind:  row.Kind,
			Label: row.Label,
			Value: f.Amount(r.Currency, row.Amount),
		})
	}
	return out
}
