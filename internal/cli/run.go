package cli

import (
	"github.com/spf13/cobra"

	"ipowatch/internal/market"
	"ipowatch/internal/notify"
	"ipowatch/internal/runner"
)

func newRunCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fetch today's IPO calendar and email any large offerings",
		Long: `Run executes one pass of the alert pipeline: fetch today's IPO
calendar, keep NYSE/NASDAQ offerings with status expected or priced,
estimate each offering size, and email the ones strictly above the
alert threshold. When nothing qualifies the run exits 0 without
sending anything.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			// Credentials are checked here, before any network call.
			if err := app.Config.Validate(); err != nil {
				return err
			}

			client := market.NewClient(
				app.Config.Finnhub.BaseURL,
				app.Config.Finnhub.APIKey,
				app.Config.Finnhub.Timeout,
			)

			var channel notify.Channel
			if dryRun {
				channel = notify.NewNoOpChannel()
			} else {
				channel = notify.NewEmailChannel(app.Config.Email)
			}

			r := runner.New(app.Config, app.Logger, client, channel)
			hits, err := r.Run(cmd.Context())
			if err != nil {
				return err
			}

			if output.IsJSON() {
				return output.JSON(hits)
			}
			if len(hits) == 0 {
				output.Dim("No IPOs above the alert threshold today.")
				return nil
			}
			for _, hit := range hits {
				output.Printf("%-8s %-24s %-10s $%.0f\n",
					hit.Symbol, hit.Exchange, hit.Status, hit.EstimatedOffering)
			}
			if dryRun {
				output.Warning("Dry run: alert email not sent.")
			} else {
				output.Success("Alert email sent (%d qualifying IPOs).", len(hits))
			}
			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "evaluate the calendar without sending email")
	return cmd
}
