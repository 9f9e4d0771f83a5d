package cmd

import (
	"fmt"

	"github.com/ImJustSebas/University-budget-manager/internal/cli"
	"github.com/ImJustSebas/University-budget-manager/internal/config"
	"github.com/ImJustSebas/University-budget-manager/internal/currency"
	"github.com/ImJustSebas/University-budget-manager/internal/rates"

	"github.com/spf13/cobra"
)

var ratesCmd = &cobra.Command{
	Use:   "rates [FROM]",
	Short: "Show live exchange rates between the supported currencies",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRates,
}

func init() {
	rootCmd.AddCommand(ratesCmd)
}

func runRates(cmd *cobra.Command, args []string) error {
	from := appConfig.Base()
	if len(args) == 1 {
		code, err := currency.Parse(args[0])
		if err != nil {
			return err
		}
		from = code
	}
	if offline() {
		return fmt.Errorf("%w: rates command needs network access", rates.ErrOffline)
	}

	client := rates.NewClient(config.GetRatesURL(appConfig))
	latest, err := client.Latest(cmd.Context(), from)
	if err != nil {
		return fmt.Errorf("fetching %s rates: %w", from, err)
	}

	var rows [][]string
	for _, info := range currency.All() {
		if info.Code == from {
			continue
		}
		rate, err := latest.RateFor(info.Code)
		if err != nil {
			return err
		}
		rows = append(rows, []string{
			fmt.Sprintf("%s (%s)", info.Code, info.Name),
			info.Symbol + rate.String(),
		})
	}

	title := fmt.Sprintf("EXCHANGE RATES  1 %s", from)
	if latest.Date != "" {
		title += "  " + latest.Date
	}
	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Currency", "Rate"},
		Rows:    rows,
	}))
	return nil
}
