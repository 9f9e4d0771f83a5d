package budget

import (
	"context"

	"github.com/ImJustSebas/University-budget-manager/internal/currency"
)

// StatementLine is a fixed expense converted for display.
type StatementLine struct {
	Name   string
	Amount currency.Money
}

// Statement is the final accounting of a plan in its display currency.
type Statement struct {
	Display       currency.Code
	Scholarship   currency.Money
	Transport     currency.Money
	Food          currency.Money
	Incidentals   currency.Money
	FixedTotal    currency.Money
	Fixed         []StatementLine
	Savings       currency.Money
	TotalExpenses currency.Money
	// Balance is Scholarship - TotalExpenses; negative on a deficit.
	Balance currency.Money
}

// Settle totals the plan in its base currency and converts each figure to
// the display currency. Totals are computed before conversion, so
// TotalExpenses is one conversion of the base total rather than a sum of
// converted parts.
func Settle(ctx context.Context, conv Converter, p Plan) Statement {
	to := p.Display
	st := Statement{
		Display:       to,
		Scholarship:   conv.Convert(ctx, p.Scholarship, to),
		Transport:     conv.Convert(ctx, p.TransportTotal(), to),
		Food:          conv.Convert(ctx, p.FoodTotal(), to),
		Incidentals:   conv.Convert(ctx, p.IncidentalsTotal(), to),
		FixedTotal:    conv.Convert(ctx, p.FixedTotal(), to),
		Savings:       conv.Convert(ctx, p.Savings, to),
		TotalExpenses: conv.Convert(ctx, p.TotalExpenses(), to),
	}
	for _, fe := range p.FixedExpenses {
		st.Fixed = append(st.Fixed, StatementLine{Name: fe.Name, Amount: conv.Convert(ctx, fe.Amount, to)})
	}
	st.Balance = st.Scholarship.Sub(st.TotalExpenses)
	return st
}

// Deficit reports whether expenses exceed the scholarship.
func (s Statement) Deficit() bool {
	return s.TotalExpenses.Cmp(s.Scholarship) > 0
}
