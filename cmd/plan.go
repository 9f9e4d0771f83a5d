package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ImJustSebas/University-budget-manager/internal/cli"
	"github.com/ImJustSebas/University-budget-manager/internal/planner"
	"github.com/ImJustSebas/University-budget-manager/internal/report"
	"github.com/ImJustSebas/University-budget-manager/internal/wizard"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagInputs string
	flagAccept bool
	flagNoFile bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build a budget step by step (default command)",
	RunE:  runPlan,
}

func init() {
	addPlanFlags(planCmd)
	rootCmd.AddCommand(planCmd)
}

func addPlanFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagInputs, "inputs", "", "Read answers from a TOML file instead of prompting")
	cmd.Flags().BoolVar(&flagAccept, "accept", false, "Accept the suggested daily budget without asking")
	cmd.Flags().BoolVar(&flagNoFile, "no-file", false, "Do not write the summary file")
}

func runPlan(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	wz := wizard.New(wizard.Options{
		Accessible:  accessible(),
		AltScreen:   appConfig.Appearance.AltScreen,
		Currency:    appConfig.Base(),
		Display:     appConfig.Display(),
		DaysPerWeek: appConfig.General.DaysPerWeek,
	})
	p := planner.New(newQuoter())
	f := formatter()

	in, decision, err := gatherInputs(ctx, wz)
	if err != nil {
		return quietAbort(err)
	}

	var draft planner.Draft
	var draftErr error
	if err := busy(wz, "Calculating budget...", func() {
		draft, draftErr = p.Draft(ctx, in)
	}); err != nil {
		return err
	}
	if draftErr != nil {
		return draftErr
	}

	switch {
	case decision != nil:
	case flagAccept || flagInputs != "":
		decision = &planner.Decision{Accept: true}
	default:
		d, err := wz.Decide(ctx, draft, f)
		if err != nil {
			return quietAbort(err)
		}
		decision = &d
	}

	var result *planner.Result
	var finalErr error
	if err := busy(wz, "Preparing summary...", func() {
		result, finalErr = p.Finalize(ctx, draft, *decision)
	}); err != nil {
		return err
	}
	if finalErr != nil {
		return finalErr
	}

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	formatted := result.Report.Format(f)
	fmt.Fprintln(out)
	fmt.Fprintln(out, report.RenderTerminal(formatted))

	if !flagNoFile {
		path := outputPath()
		if err := report.Save(path, formatted); err != nil {
			return err
		}
		fmt.Fprintln(out, cli.RenderSuccess("Summary saved to "+path))
	}

	// Fallback warnings are part of the result, so --quiet keeps them.
	for _, w := range result.Warnings {
		fmt.Fprintln(errOut, cli.RenderWarning(w.String()))
	}
	log.Debug().Int("warnings", len(result.Warnings)).Bool("deficit", result.Report.Deficit).Msg("plan complete")
	return nil
}

// gatherInputs reads answers from --inputs or runs the wizard.
func gatherInputs(ctx context.Context, wz *wizard.Wizard) (planner.Inputs, *planner.Decision, error) {
	if flagInputs != "" {
		return planner.LoadInputs(flagInputs, planner.Defaults{
			Currency:    appConfig.Base(),
			Display:     appConfig.Display(),
			DaysPerWeek: appConfig.General.DaysPerWeek,
		})
	}
	if !flagQuiet {
		fmt.Println(cli.RenderTitle(report.Title))
	}
	in, err := wz.Gather(ctx)
	return in, nil, err
}

// busy shows a spinner around action unless the run is non-interactive.
func busy(wz *wizard.Wizard, title string, action func()) error {
	if flagInputs != "" || flagQuiet {
		action()
		return nil
	}
	return wz.Busy(title, action)
}

// quietAbort turns a user abort into a clean exit.
func quietAbort(err error) error {
	if errors.Is(err, wizard.ErrAborted) {
		fmt.Fprintln(os.Stderr, cli.RenderMuted("Cancelled."))
		return nil
	}
	return err
}
