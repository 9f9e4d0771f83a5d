package wizard

import (
	"fmt"
	"strconv"

	"github.com/ImJustSebas/University-budget-manager/internal/budget"
	"github.com/ImJustSebas/University-budget-manager/internal/currency"
	"github.com/ImJustSebas/University-budget-manager/internal/planner"
	"github.com/ImJustSebas/University-budget-manager/internal/prompt"

	"github.com/shopspring/decimal"
)

// expenseEntry is one fixed expense as typed.
type expenseEntry struct {
	name   string
	amount string
}

// answers is the raw text bound to the form fields.
type answers struct {
	base           currency.Code
	scholarship    string
	display        currency.Code
	start          string
	end            string
	daysPerWeek    string
	dailyTransport string
	hasFixed       bool
	fixed          []expenseEntry
	hasSavings     bool
	savings        string
}

func newAnswers(opts Options) *answers {
	a := &answers{base: opts.Currency, display: opts.Currency}
	if opts.Display.Valid() {
		a.display = opts.Display
	}
	if opts.DaysPerWeek >= 1 && opts.DaysPerWeek <= 7 {
		a.daysPerWeek = strconv.Itoa(opts.DaysPerWeek)
	}
	return a
}

// inputs parses the raw answers with the same parsers the fields validate with.
func (a *answers) inputs() (planner.Inputs, error) {
	var in planner.Inputs

	amount, err := prompt.ParsePositiveAmount(a.scholarship)
	if err != nil {
		return in, fmt.Errorf("scholarship: %w", err)
	}
	in.Scholarship = currency.New(amount, a.base)
	in.Display = a.display

	if in.Start, err = prompt.ParseDate(a.start); err != nil {
		return in, fmt.Errorf("start date: %w", err)
	}
	if in.End, err = prompt.ParseDate(a.end); err != nil {
		return in, fmt.Errorf("end date: %w", err)
	}
	if in.DaysPerWeek, err = prompt.ParseDaysPerWeek(a.daysPerWeek); err != nil {
		return in, fmt.Errorf("days per week: %w", err)
	}
	if in.DailyTransport, err = prompt.ParseNonNegativeAmount(a.dailyTransport); err != nil {
		return in, fmt.Errorf("daily transportation: %w", err)
	}

	if a.hasFixed {
		for _, e := range a.fixed {
			amt, err := prompt.ParseNonNegativeAmount(e.amount)
			if err != nil {
				return in, fmt.Errorf("fixed expense %q: %w", e.name, err)
			}
			in.FixedExpenses = append(in.FixedExpenses, budget.FixedExpense{
				Name:   e.name,
				Amount: currency.New(amt, a.base),
			})
		}
	}

	in.Savings = decimal.Zero
	if a.hasSavings {
		if in.Savings, err = prompt.ParseNonNegativeAmount(a.savings); err != nil {
			return in, fmt.Errorf("savings: %w", err)
		}
	}
	return in, nil
}

// validateExpenseName accepts a name or the sentinel that ends the list.
func validateExpenseName(raw string) error {
	if prompt.IsSentinel(raw) {
		return nil
	}
	_, err := prompt.ParseName(raw)
	return err
}
