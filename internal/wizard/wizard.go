// Package wizard gathers a budgeting session's answers through a sequence
// of terminal forms.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ImJustSebas/University-budget-manager/internal/cli"
	"github.com/ImJustSebas/University-budget-manager/internal/currency"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// Steps is the number of numbered questions before the suggestion screen.
const Steps = 6

// ErrAborted is returned when the user quits a form.
var ErrAborted = errors.New("wizard: aborted")

// Options control how forms are shown.
type Options struct {
	Accessible bool
	AltScreen  bool
	// Input and Output default to the terminal when nil.
	Input  io.Reader
	Output io.Writer
	// Currency preselects the scholarship currency.
	Currency currency.Code
	// Display preselects the results currency. Empty follows Currency.
	Display currency.Code
	// DaysPerWeek prefills the attendance question when in 1..7.
	DaysPerWeek int
}

// Wizard runs the interactive session.
type Wizard struct {
	opts Options
}

// New returns a wizard with the given options.
func New(opts Options) *Wizard {
	if !opts.Currency.Valid() {
		opts.Currency = currency.CRC
	}
	return &Wizard{opts: opts}
}

func keyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "quit"),
	)
	return km
}

// run shows one form and maps an abort to ErrAborted.
func (w *Wizard) run(ctx context.Context, groups ...*huh.Group) error {
	form := huh.NewForm(groups...).
		WithAccessible(w.opts.Accessible).
		WithKeyMap(keyMap()).
		WithShowHelp(true)
	if w.opts.Input != nil {
		form = form.WithInput(w.opts.Input)
	}
	if w.opts.Output != nil {
		form = form.WithOutput(w.opts.Output)
	}
	if w.opts.AltScreen && !w.opts.Accessible {
		form = form.WithProgramOptions(tea.WithAltScreen())
	}

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return fmt.Errorf("wizard: %w", err)
	}
	return nil
}

// stepGroup titles a group with its position in the sequence.
func stepGroup(step int, title string, fields ...huh.Field) *huh.Group {
	return huh.NewGroup(fields...).
		Title(title).
		Description(cli.RenderProgressBar(step, Steps, 20))
}

// Busy shows a spinner with title while action runs. In accessible mode
// the action runs without animation.
func (w *Wizard) Busy(title string, action func()) error {
	if w.opts.Accessible {
		action()
		return nil
	}
	return spinner.New().Title(" " + title).Action(action).Run()
}

func currencyOptions() []huh.Option[currency.Code] {
	var opts []huh.Option[currency.Code]
	for _, info := range currency.All() {
		label := fmt.Sprintf("%s (%s - %s)", info.Code, info.Name, info.Symbol)
		opts = append(opts, huh.NewOption(label, info.Code))
	}
	return opts
}
