package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/boater/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Answer estimate requests over MQTT and expose metrics",
	RunE:  serve,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return withService(func(svc *app.Service) error {
		return svc.Run(ctx)
	})
}
