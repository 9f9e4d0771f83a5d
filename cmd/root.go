// Package cmd implements the stipend CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/ImJustSebas/University-budget-manager/internal/cli"
	"github.com/ImJustSebas/University-budget-manager/internal/config"
	"github.com/ImJustSebas/University-budget-manager/internal/currency"
	"github.com/ImJustSebas/University-budget-manager/internal/logging"
	"github.com/ImJustSebas/University-budget-manager/internal/rates"
	"github.com/ImJustSebas/University-budget-manager/internal/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagConfigDir  string
	flagOutput     string
	flagOffline    bool
	flagQuiet      bool
	flagVerbose    bool
	flagNoColor    bool
	flagAccessible bool
)

// appConfig is loaded once per invocation before any command runs.
var appConfig = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:   "stipend",
	Short: "Scholarship budget planner",
	Long: "Plan how a scholarship stretches over a study period: fixed costs, " +
		"transport, savings and a suggested daily food and incidentals budget.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initApp,
	RunE:              runPlan,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), cli.RenderError(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "Config directory (default $XDG_CONFIG_HOME/stipend)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "Summary file path (default from config)")
	rootCmd.PersistentFlags().BoolVar(&flagOffline, "offline", false, "Skip rate lookups and convert 1:1")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress log output (rate fallback warnings are still shown)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug details to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagAccessible, "accessible", false, "Use plain line-by-line prompts")

	addPlanFlags(rootCmd)
}

func initApp(cmd *cobra.Command, _ []string) error {
	logging.Setup(os.Stderr, flagVerbose, flagQuiet)

	if err := config.LoadEnv(); err != nil {
		log.Warn().Err(err).Msg("could not read .env")
	}

	config.SetDir(flagConfigDir)
	cfg, err := config.Load()
	if err != nil {
		// setup is how a broken config gets repaired, so it runs anyway.
		if cmd != setupCmd {
			return err
		}
		log.Warn().Err(err).Msg("config is invalid, starting setup from what could be read")
		if !errors.Is(err, config.ErrInvalid) {
			cfg = config.DefaultConfig()
		}
	}
	appConfig = cfg
	log.Debug().Str("path", config.ConfigPath()).Bool("exists", config.Exists()).Msg("config loaded")

	theme.SetActive(cfg.Appearance.Theme)
	if flagNoColor || os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return nil
}

// offline reports whether rate lookups are disabled by flag, env or config.
func offline() bool {
	return flagOffline || config.IsOffline(appConfig)
}

// newQuoter builds the rate provider for this run.
func newQuoter() rates.Quoter {
	if offline() {
		return rates.NewProvider(rates.Offline{})
	}
	return rates.NewProvider(rates.NewClient(config.GetRatesURL(appConfig)))
}

func outputPath() string {
	if flagOutput != "" {
		return flagOutput
	}
	return config.GetOutputFile(appConfig)
}

func accessible() bool {
	return flagAccessible || appConfig.Appearance.Accessible
}

func formatter() currency.Formatter {
	return currency.NewFormatter(appConfig.Appearance.Locale)
}
