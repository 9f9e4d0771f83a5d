package wizard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ImJustSebas/University-budget-manager/internal/currency"
	"github.com/ImJustSebas/University-budget-manager/internal/period"
	"github.com/ImJustSebas/University-budget-manager/internal/planner"
	"github.com/ImJustSebas/University-budget-manager/internal/prompt"

	"github.com/charmbracelet/huh"
)

// Gather asks the six numbered questions and returns the parsed inputs.
func (w *Wizard) Gather(ctx context.Context) (planner.Inputs, error) {
	a := newAnswers(w.opts)

	steps := []func(context.Context, *answers) error{
		w.askScholarship,
		w.askPeriod,
		w.askAttendance,
		w.askTransport,
		w.askFixed,
		w.askSavings,
	}
	for _, step := range steps {
		if err := step(ctx, a); err != nil {
			return planner.Inputs{}, err
		}
	}
	return a.inputs()
}

func (w *Wizard) askScholarship(ctx context.Context, a *answers) error {
	if err := w.run(ctx, stepGroup(1, "Scholarship",
		huh.NewSelect[currency.Code]().
			Title("Which currency is your scholarship paid in?").
			Options(currencyOptions()...).
			Value(&a.base),
	)); err != nil {
		return err
	}

	if !w.opts.Display.Valid() {
		a.display = a.base
	}
	return w.run(ctx, stepGroup(1, "Scholarship",
		huh.NewInput().
			Title(fmt.Sprintf("Amount received (%s)", a.base.Name())).
			Placeholder("0").
			Value(&a.scholarship).
			Validate(prompt.Validate(prompt.ParsePositiveAmount)),
		huh.NewSelect[currency.Code]().
			Title("Which currency should results be shown in?").
			Options(currencyOptions()...).
			Value(&a.display),
	))
}

func (w *Wizard) askPeriod(ctx context.Context, a *answers) error {
	today := time.Now().Format(period.DateLayout)
	return w.run(ctx, stepGroup(2, "Scholarship period",
		huh.NewNote().
			Title("Dates use the YYYY-MM-DD format").
			Description("Today is "+today),
		huh.NewInput().
			Title("Start date").
			Placeholder(today).
			Value(&a.start).
			Validate(prompt.Validate(prompt.ParseDate)),
		huh.NewInput().
			Title("End date").
			Placeholder(today).
			Value(&a.end).
			Validate(prompt.Validate(prompt.ParseDate)),
	))
}

func (w *Wizard) askAttendance(ctx context.Context, a *answers) error {
	return w.run(ctx, stepGroup(3, "Attendance",
		huh.NewInput().
			Title("How many days per week do you attend university?").
			Description("1 to 7").
			Value(&a.daysPerWeek).
			Validate(prompt.Validate(prompt.ParseDaysPerWeek)),
	))
}

func (w *Wizard) askTransport(ctx context.Context, a *answers) error {
	return w.run(ctx, stepGroup(4, "Daily expenses",
		huh.NewInput().
			Title(fmt.Sprintf("Transportation per attendance day (%s)", a.base.Symbol())).
			Placeholder("0").
			Value(&a.dailyTransport).
			Validate(prompt.Validate(prompt.ParseNonNegativeAmount)),
	))
}

func (w *Wizard) askFixed(ctx context.Context, a *answers) error {
	if err := w.run(ctx, stepGroup(5, "Fixed expenses",
		huh.NewConfirm().
			Title("Do you have fixed expenses such as a gym or subscriptions?").
			Affirmative("Yes").
			Negative("No").
			Value(&a.hasFixed),
	)); err != nil {
		return err
	}
	if !a.hasFixed {
		return nil
	}

	hint := fmt.Sprintf("Type %q as the name to finish", prompt.Sentinel())
	for {
		var name string
		if err := w.run(ctx, stepGroup(5, "Fixed expenses",
			huh.NewInput().
				Title(fmt.Sprintf("Expense #%d name", len(a.fixed)+1)).
				Description(hint).
				Value(&name).
				Validate(validateExpenseName),
		)); err != nil {
			return err
		}
		if prompt.IsSentinel(name) {
			return nil
		}

		entry := expenseEntry{name: strings.TrimSpace(name)}
		if err := w.run(ctx, stepGroup(5, "Fixed expenses",
			huh.NewInput().
				Title(fmt.Sprintf("%s amount (%s)", entry.name, a.base.Symbol())).
				Value(&entry.amount).
				Validate(prompt.Validate(prompt.ParseNonNegativeAmount)),
		)); err != nil {
			return err
		}
		a.fixed = append(a.fixed, entry)
	}
}

func (w *Wizard) askSavings(ctx context.Context, a *answers) error {
	if err := w.run(ctx, stepGroup(6, "Savings",
		huh.NewConfirm().
			Title("Reserve part of the scholarship for savings?").
			Affirmative("Yes").
			Negative("No").
			Value(&a.hasSavings),
	)); err != nil {
		return err
	}
	if !a.hasSavings {
		return nil
	}
	return w.run(ctx, stepGroup(6, "Savings",
		huh.NewInput().
			Title(fmt.Sprintf("Amount to save (%s)", a.base.Symbol())).
			Value(&a.savings).
			Validate(prompt.Validate(prompt.ParseNonNegativeAmount)),
	))
}
