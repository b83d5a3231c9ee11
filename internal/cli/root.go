package cli

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"ipowatch/internal/config"
	"ipowatch/internal/logging"
	"ipowatch/internal/market"
	"ipowatch/internal/notify"
)

// Version information
const (
	Version = "0.1.0"
)

// App holds the application dependencies.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	rootCmd := &cobra.Command{
		Use:   "ipowatch",
		Short: "Daily large-IPO email alerter",
		Long: `ipowatch checks the Finnhub IPO calendar for offerings scheduled
today on NYSE or NASDAQ, estimates their size from price and share
count, and emails a summary when any estimate exceeds the alert
threshold.

It is meant to be invoked once per day by an external scheduler;
each run is independent and keeps no state.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/ipowatch)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newRunCmd(app))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"version": Version})
			} else {
				output.Printf("ipowatch v%s\n", Version)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and validate application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": config.DefaultConfigDir()})
			} else {
				output.Println(config.DefaultConfigDir())
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration and credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			if output.IsJSON() {
				return output.JSON(map[string]bool{"valid": true})
			}
			output.Success("Configuration is valid")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration (credentials redacted)",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			redacted := *app.Config
			redacted.Finnhub.APIKey = redact(redacted.Finnhub.APIKey)
			redacted.Email.Password = redact(redacted.Email.Password)
			if output.IsJSON() {
				return output.JSON(redacted)
			}
			output.Printf("Finnhub base URL:  %s\n", redacted.Finnhub.BaseURL)
			output.Printf("Finnhub API key:   %s\n", redacted.Finnhub.APIKey)
			output.Printf("SMTP relay:        %s:%d\n", redacted.Email.SMTPHost, redacted.Email.SMTPPort)
			output.Printf("Mail from:         %s\n", redacted.Email.From)
			output.Printf("Mail to:           %s\n", redacted.Email.To)
			output.Printf("Alert threshold:   $%.0f\n", redacted.Alert.ThresholdUSD)
			output.Printf("Timezone:          %s\n", redacted.Alert.Timezone)
			return nil
		},
	})

	return cmd
}

func redact(s string) string {
	if s == "" {
		return "(unset)"
	}
	return "********"
}

// ExitCode maps an error to the process exit status: 0 for success,
// 2 for configuration errors, 3 for fetch failures, 4 for delivery
// failures and 1 for anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var missing *config.MissingVarError
	if errors.As(err, &missing) {
		return 2
	}
	var fetch *market.FetchError
	if errors.As(err, &fetch) {
		return 3
	}
	var delivery *notify.DeliveryError
	if errors.As(err, &delivery) {
		return 4
	}
	return 1
}
