package cmd

import (
	"fmt"
	"os"

	"github.com/ImJustSebas/University-budget-manager/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := appConfig

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Scholarship currency: %s\n", cfg.Base())
	if d := cfg.Display(); d != "" {
		fmt.Printf("    Results currency:     %s\n", d)
	} else {
		fmt.Println("    Results currency:     same as scholarship")
	}
	fmt.Printf("    Summary file:         %s%s\n", outputPath(), envNote(config.EnvOutput))
	if cfg.General.DaysPerWeek > 0 {
		fmt.Printf("    Days per week:        %d\n", cfg.General.DaysPerWeek)
	} else {
		fmt.Println("    Days per week:        ask")
	}
	fmt.Println()

	fmt.Println("  [Rates]")
	fmt.Printf("    Endpoint: %s%s\n", config.GetRatesURL(cfg), envNote(config.EnvRatesURL))
	fmt.Printf("    Offline:  %v%s\n", offline(), envNote(config.EnvOffline))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme:       %s\n", cfg.Appearance.Theme)
	fmt.Printf("    Locale:      %s\n", cfg.Appearance.Locale)
	fmt.Printf("    Accessible:  %v\n", accessible())
	fmt.Printf("    Alt screen:  %v\n", cfg.Appearance.AltScreen)
	fmt.Println()

	fmt.Println("  Run `stipend setup` to reconfigure.")
	return nil
}

func envNote(name string) string {
	if os.Getenv(name) != "" {
		return fmt.Sprintf(" (from %s)", name)
	}
	return ""
}
