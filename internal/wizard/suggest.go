package wizard

import (
	"context"
	"fmt"

	"github.com/ImJustSebas/University-budget-manager/internal/budget"
	"github.com/ImJustSebas/University-budget-manager/internal/cli"
	"github.com/ImJustSebas/University-budget-manager/internal/currency"
	"github.com/ImJustSebas/University-budget-manager/internal/planner"
	"github.com/ImJustSebas/University-budget-manager/internal/prompt"

	"github.com/charmbracelet/huh"
)

// SuggestionText describes the suggested split for the confirmation screen.
func SuggestionText(d planner.Draft, f currency.Formatter) string {
	s := d.Suggestion
	return fmt.Sprintf("Food (%s): %s per day\nIncidentals (%s): %s per day\n\nRemaining after commitments: %s over %s",
		cli.FormatPercent(budget.FoodShare.InexactFloat64()), f.Money(s.FoodPerDay),
		cli.FormatPercent(budget.IncidentalShare.InexactFloat64()), f.Money(s.IncidentalsPerDay),
		f.Money(s.Remaining),
		cli.FormatDays(d.Span.TotalDays))
}

// Decide shows the suggestion and asks whether to accept it. Declining
// asks for daily food and incidentals in the scholarship's currency.
func (w *Wizard) Decide(ctx context.Context, d planner.Draft, f currency.Formatter) (planner.Decision, error) {
	accept := true
	if err := w.run(ctx, huh.NewGroup(
		huh.NewNote().
			Title("Suggested daily budget").
			Description(SuggestionText(d, f)),
		huh.NewConfirm().
			Title("Accept this suggestion?").
			Affirmative("Yes").
			Negative("No, enter my own").
			Value(&accept),
	).Title("Suggestion")); err != nil {
		return planner.Decision{}, err
	}
	if accept {
		return planner.Decision{Accept: true}, nil
	}

	symbol := d.Inputs.Base().Symbol()
	var food, incidentals string
	if err := w.run(ctx, huh.NewGroup(
		huh.NewInput().
			Title(fmt.Sprintf("Daily food budget (%s)", symbol)).
			Value(&food).
			Validate(prompt.Validate(prompt.ParseNonNegativeAmount)),
		huh.NewInput().
			Title(fmt.Sprintf("Daily incidentals budget (%s)", symbol)).
			Value(&incidentals).
			Validate(prompt.Validate(prompt.ParseNonNegativeAmount)),
	).Title("Your own daily budget")); err != nil {
		return planner.Decision{}, err
	}
	return customDecision(food, incidentals)
}

func customDecision(food, incidentals string) (planner.Decision, error) {
	var dec planner.Decision
	var err error
	if dec.DailyFood, err = prompt.ParseNonNegativeAmount(food); err != nil {
		return dec, fmt.Errorf("daily food: %w", err)
	}
	if dec.DailyIncidentals, err = prompt.ParseNonNegativeAmount(incidentals); err != nil {
		return dec, fmt.Errorf("daily incidentals: %w", err)
	}
	return dec, nil
}
