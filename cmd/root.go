package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/boater/app"
	"github.com/kilianp07/boater/config"
	"github.com/kilianp07/boater/infra/logger"
)

var (
	cfgPath string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:               "boater",
	Short:             "Boat trip fuel cost estimator",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.SetLevel(c.Logging.Level); err != nil {
		return err
	}
	cfg = c
	return nil
}

// withService builds the service from the loaded configuration and closes
// it once fn returns.
func withService(fn func(svc *app.Service) error) error {
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()
	return fn(svc)
}
