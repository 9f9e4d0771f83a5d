package planner

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ImJustSebas/University-budget-manager/internal/budget"
	"github.com/ImJustSebas/University-budget-manager/internal/currency"
	"github.com/ImJustSebas/University-budget-manager/internal/period"
	"github.com/ImJustSebas/University-budget-manager/internal/prompt"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"
)

// ErrAnswers wraps every problem found in an answers file.
var ErrAnswers = errors.New("answers file")

// value holds a TOML scalar as the text a user would have typed, so the
// answers file goes through the same parsers as the interactive prompts.
type value struct {
	text string
	set  bool
}

// UnmarshalTOML accepts strings, numbers, booleans and dates.
func (v *value) UnmarshalTOML(data any) error {
	switch x := data.(type) {
	case string:
		v.text = x
	case int64:
		v.text = strconv.FormatInt(x, 10)
	case float64:
		v.text = decimal.NewFromFloat(x).String()
	case bool:
		v.text = strconv.FormatBool(x)
	case time.Time:
		v.text = x.Format(period.DateLayout)
	default:
		return fmt.Errorf("unsupported value %v (%T)", data, data)
	}
	v.set = true
	return nil
}

type answersFile struct {
	Currency       value `toml:"currency"`
	Scholarship    value `toml:"scholarship"`
	Display        value `toml:"display_currency"`
	Start          value `toml:"start"`
	End            value `toml:"end"`
	DaysPerWeek    value `toml:"days_per_week"`
	DailyTransport value `toml:"daily_transport"`
	Savings        value `toml:"savings"`
	Fixed          []struct {
		Name   value `toml:"name"`
		Amount value `toml:"amount"`
	} `toml:"fixed"`
	Suggestion *struct {
		Accept           *bool `toml:"accept"`
		DailyFood        value `toml:"daily_food"`
		DailyIncidentals value `toml:"daily_incidentals"`
	} `toml:"suggestion"`
}

// Defaults fill answers that a file leaves out.
type Defaults struct {
	Currency currency.Code
	// Display falls back to the scholarship currency when empty.
	Display     currency.Code
	DaysPerWeek int
}

// LoadInputs reads an answers file. The returned decision is nil when the
// file has no [suggestion] table, leaving the choice to the caller.
func LoadInputs(path string, defs Defaults) (Inputs, *Decision, error) {
	var f answersFile
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return Inputs{}, nil, fmt.Errorf("%w: %w", ErrAnswers, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return Inputs{}, nil, fmt.Errorf("%w: unknown key %q", ErrAnswers, undec[0].String())
	}
	return f.inputs(defs)
}

func (f *answersFile) inputs(defs Defaults) (Inputs, *Decision, error) {
	var in Inputs

	base, err := field("currency", f.Currency, prompt.WithDefault(prompt.ParseCurrency, defs.Currency))
	if err != nil {
		return in, nil, err
	}
	amount, err := field("scholarship", f.Scholarship, prompt.ParsePositiveAmount)
	if err != nil {
		return in, nil, err
	}
	in.Scholarship = currency.New(amount, base)

	display := base
	if defs.Display.Valid() {
		display = defs.Display
	}
	if in.Display, err = field("display_currency", f.Display, prompt.WithDefault(prompt.ParseCurrency, display)); err != nil {
		return in, nil, err
	}
	if in.Start, err = field("start", f.Start, prompt.ParseDate); err != nil {
		return in, nil, err
	}
	if in.End, err = field("end", f.End, prompt.ParseDate); err != nil {
		return in, nil, err
	}

	dpw := prompt.ParseDaysPerWeek
	if defs.DaysPerWeek > 0 {
		dpw = prompt.WithDefault(dpw, defs.DaysPerWeek)
	}
	if in.DaysPerWeek, err = field("days_per_week", f.DaysPerWeek, dpw); err != nil {
		return in, nil, err
	}

	optional := prompt.WithDefault(prompt.ParseNonNegativeAmount, decimal.Zero)
	if in.DailyTransport, err = field("daily_transport", f.DailyTransport, optional); err != nil {
		return in, nil, err
	}
	if in.Savings, err = field("savings", f.Savings, optional); err != nil {
		return in, nil, err
	}

	for i, fe := range f.Fixed {
		name, err := field(fmt.Sprintf("fixed[%d].name", i), fe.Name, prompt.ParseName)
		if err != nil {
			return in, nil, err
		}
		amt, err := field(fmt.Sprintf("fixed[%d].amount", i), fe.Amount, prompt.ParseNonNegativeAmount)
		if err != nil {
			return in, nil, err
		}
		in.FixedExpenses = append(in.FixedExpenses, budget.FixedExpense{Name: name, Amount: currency.New(amt, base)})
	}

	if f.Suggestion == nil {
		return in, nil, nil
	}
	s := f.Suggestion
	dec := &Decision{Accept: s.Accept == nil || *s.Accept}
	if !dec.Accept {
		if dec.DailyFood, err = field("suggestion.daily_food", s.DailyFood, prompt.ParseNonNegativeAmount); err != nil {
			return in, nil, err
		}
		if dec.DailyIncidentals, err = field("suggestion.daily_incidentals", s.DailyIncidentals, prompt.ParseNonNegativeAmount); err != nil {
			return in, nil, err
		}
	}
	return in, dec, nil
}

func field[T any](key string, v value, parse prompt.Parser[T]) (T, error) {
	out, err := parse(v.text)
	if err != nil {
		if !v.set {
			return out, fmt.Errorf("%w: %s is required", ErrAnswers, key)
		}
		return out, fmt.Errorf("%w: %s: %w", ErrAnswers, key, err)
	}
	return out, nil
}
