// Package cli provides the cobra commands of ovhwatch: the monitor loop
// itself, a single-pass check and a configuration dump.
package cli

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ovhwatch/config"
	"ovhwatch/internal/logging"
	"ovhwatch/internal/notifier"
	"ovhwatch/internal/repository"
	"ovhwatch/internal/service"

	"github.com/spf13/cobra"
)

const defaultConfigPath = "ovhwatch.json"

// NewRootCmd builds the ovhwatch command tree
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ovhwatch",
		Short: "Watch OVH Eco availability and push a notification on restock",
		Long: `ovhwatch polls the OVH Eco availability API for a hardware configuration
(memory + storage) across plan codes, and sends a Qmsg push notification as
soon as a datacenter can deliver it.

Configuration comes from defaults, an optional JSON file and OVHWATCH_*
environment variables (a .env file in the working directory is loaded first).`,
		Example: `  # Watch the default North America / Europe plan codes
  OVHWATCH_QMSG_KEY=xxxx ovhwatch

  # Watch Singapore and Sydney instead
  OVHWATCH_REGIONS=24sk202-sgp,24sk202-syd ovhwatch

  # Scan once and print what is in stock
  ovhwatch check`,
		SilenceUsage: true,
		RunE:         runMonitor,
	}

	root.PersistentFlags().StringP("config", "c", defaultConfigPath, "Path to JSON config file")
	root.PersistentFlags().String("log-level", "", "Log level (trace, debug, info, warn, error)")

	root.AddCommand(newCheckCmd())
	root.AddCommand(newConfigCmd())

	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// loadConfig loads the configuration named by the flags and sets up logging
func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	logging.InitWithOutput(cfg.LogLevel, cmd.ErrOrStderr())

	return cfg, nil
}

// newService wires the repository, notifiers and service from the configuration
func newService(cfg *config.Configuration) *service.Service {
	repo := repository.NewRepository(&http.Client{Timeout: cfg.HTTPTimeout}, cfg.APIURL, cfg.UserAgent)
	fp := cfg.Fingerprint()
	stock := notifier.NewStockNotifier(notifier.New(cfg), fp.Label, cfg.OrderURL)

	return service.NewService(repo, stock, service.Options{
		Regions:     cfg.Regions,
		Fingerprint: fp,
		Intervals: service.Intervals{
			Idle:     cfg.IdleInterval,
			Cooldown: cfg.CooldownInterval,
		},
		RequestsPerMinute: cfg.RequestsPerMinute,
	})
}

func runMonitor(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newService(cfg).Start(ctx)
}
