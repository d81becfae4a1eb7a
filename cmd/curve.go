package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kilianp07/boater/app"
	"github.com/kilianp07/boater/core/cost"
	"github.com/kilianp07/boater/pkg/export"
)

var (
	curveCSV  string
	curveHTML string
	curveJSON string
)

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Compute cost curves for the configured boats",
	Long: "Computes total cost and cost per seat over the configured distance range for\n" +
		"every entry of curves.specs. CSV is printed to stdout unless an output file is given.",
	RunE: curve,
}

func init() {
	curveCmd.Flags().StringVar(&curveCSV, "csv", "", "write the curves as CSV to this file")
	curveCmd.Flags().StringVar(&curveHTML, "html", "", "write an HTML line chart to this file")
	curveCmd.Flags().StringVar(&curveJSON, "json", "", "write the curves as JSON to this file")
	rootCmd.AddCommand(curveCmd)
}

func curve(cmd *cobra.Command, args []string) error {
	if len(cfg.Curves.Specs) == 0 {
		return errors.New("no curves configured: add curves.specs to the configuration file")
	}
	distances, err := cfg.Curves.Distances()
	if err != nil {
		return err
	}
	return withService(func(svc *app.Service) error {
		curves, err := svc.Curves(cmd.Context(), cfg.Curves.Specs, distances)
		if err != nil {
			return err
		}
		written := false
		for _, out := range []struct {
			path  string
			write func(f *os.File, c []cost.Curve) error
		}{
			{curveCSV, func(f *os.File, c []cost.Curve) error { return export.WriteCSV(f, c) }},
			{curveHTML, func(f *os.File, c []cost.Curve) error { return export.WriteChartHTML(f, c) }},
			{curveJSON, func(f *os.File, c []cost.Curve) error { return export.WriteJSON(f, c) }},
		} {
			if out.path == "" {
				continue
			}
			if err := writeFile(out.path, curves, out.write); err != nil {
				return err
			}
			written = true
		}
		if !written {
			return export.WriteCSV(cmd.OutOrStdout(), curves)
		}
		return nil
	})
}

func writeFile(path string, curves []cost.Curve, write func(*os.File, []cost.Curve) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f, curves); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
