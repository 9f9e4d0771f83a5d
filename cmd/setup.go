package cmd

import (
	"fmt"

	"github.com/ImJustSebas/University-budget-manager/internal/cli"
	"github.com/ImJustSebas/University-budget-manager/internal/config"
	"github.com/ImJustSebas/University-budget-manager/internal/wizard"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Choose default currencies, summary file and appearance",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	cfg := appConfig
	prefs := &wizard.Preferences{
		Base:        cfg.Base(),
		Display:     cfg.Display(),
		OutputFile:  cfg.General.OutputFile,
		DaysPerWeek: cfg.General.DaysPerWeek,
		Theme:       cfg.Appearance.Theme,
		Locale:      cfg.Appearance.Locale,
	}

	wz := wizard.New(wizard.Options{Accessible: accessible()})
	if err := wz.EditPreferences(cmd.Context(), prefs); err != nil {
		return quietAbort(err)
	}

	cfg.General.BaseCurrency = string(prefs.Base)
	cfg.General.DisplayCurrency = string(prefs.Display)
	cfg.General.OutputFile = prefs.OutputFile
	cfg.General.DaysPerWeek = prefs.DaysPerWeek
	cfg.Appearance.Theme = prefs.Theme
	cfg.Appearance.Locale = prefs.Locale

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Println(cli.RenderSuccess("Saved to " + config.ConfigPath()))
	fmt.Println(cli.RenderMuted("  Run `stipend setup` anytime to reconfigure."))
	return nil
}
