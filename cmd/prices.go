package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/boater/app"
)

var pricesJSON bool

var pricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "Show the current regional fuel prices",
	RunE:  showPrices,
}

func init() {
	pricesCmd.Flags().BoolVar(&pricesJSON, "json", false, "print the quote as JSON")
	rootCmd.AddCommand(pricesCmd)
}

func showPrices(cmd *cobra.Command, args []string) error {
	return withService(func(svc *app.Service) error {
		q := svc.Prices(cmd.Context())
		out := cmd.OutOrStdout()
		if pricesJSON {
			return json.NewEncoder(out).Encode(struct {
				Region   string  `json:"region"`
				Source   string  `json:"source"`
				Gasoline float64 `json:"gasoline"`
				Diesel   float64 `json:"diesel"`
			}{q.Region, q.Source, q.Prices.Gasoline, q.Prices.Diesel})
		}
		fmt.Fprintf(out, "region:   %s\nsource:   %s\ngasoline: %.3f\ndiesel:   %.3f\n",
			q.Region, q.Source, q.Prices.Gasoline, q.Prices.Diesel)
		if q.Warning != nil {
			fmt.Fprintf(out, "note:     default prices used (%v)\n", q.Warning)
		}
		return nil
	})
}
