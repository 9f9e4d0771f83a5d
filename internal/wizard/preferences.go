package wizard

import (
	"context"
	"strconv"
	"strings"

	"github.com/ImJustSebas/University-budget-manager/internal/currency"
	"github.com/ImJustSebas/University-budget-manager/internal/prompt"
	"github.com/ImJustSebas/University-budget-manager/internal/theme"

	"github.com/charmbracelet/huh"
)

// Locales offered for number grouping.
var Locales = []string{"en", "es-CR", "es", "de", "fr"}

// Preferences are the values edited by the setup form.
type Preferences struct {
	Base        currency.Code
	Display     currency.Code // empty follows Base
	OutputFile  string
	DaysPerWeek int // 0 asks every time
	Theme       string
	Locale      string
}

// EditPreferences shows the setup form prefilled with p and updates it in place.
func (w *Wizard) EditPreferences(ctx context.Context, p *Preferences) error {
	days := ""
	if p.DaysPerWeek > 0 {
		days = strconv.Itoa(p.DaysPerWeek)
	}

	displayOpts := append([]huh.Option[currency.Code]{huh.NewOption("Same as scholarship", currency.Code(""))}, currencyOptions()...)

	var themeOpts []huh.Option[string]
	for _, name := range theme.Names() {
		themeOpts = append(themeOpts, huh.NewOption(name, name))
	}
	var localeOpts []huh.Option[string]
	for _, l := range Locales {
		localeOpts = append(localeOpts, huh.NewOption(l, l))
	}

	err := w.run(ctx,
		huh.NewGroup(
			huh.NewSelect[currency.Code]().
				Title("Default scholarship currency").
				Options(currencyOptions()...).
				Value(&p.Base),
			huh.NewSelect[currency.Code]().
				Title("Default results currency").
				Options(displayOpts...).
				Value(&p.Display),
			huh.NewInput().
				Title("Summary file").
				Value(&p.OutputFile).
				Validate(prompt.Validate(prompt.ParseName)),
			huh.NewInput().
				Title("Days per week at university").
				Description("Leave blank to be asked every time").
				Value(&days).
				Validate(prompt.Validate(parseOptionalDays)),
		).Title("Planning defaults"),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&p.Theme),
			huh.NewSelect[string]().
				Title("Number format").
				Options(localeOpts...).
				Value(&p.Locale),
		).Title("Appearance"),
	)
	if err != nil {
		return err
	}

	p.OutputFile = strings.TrimSpace(p.OutputFile)
	p.DaysPerWeek, err = parseOptionalDays(days)
	return err
}

var parseOptionalDays = prompt.WithDefault(prompt.ParseDaysPerWeek, 0)
