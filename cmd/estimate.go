package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/boater/app"
)

var (
	trip         app.Trip
	estimateJSON bool
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate the fuel cost of a boat trip",
	Example: "  boater estimate --engine outboard --hp 100 --speed 20 --seats 6 --distance 10\n" +
		"  boater estimate --engine inboard-diesel --hp 250 --speed 15 --seats 8 --distance 40 --json",
	RunE: estimate,
}

func init() {
	f := estimateCmd.Flags()
	f.StringVar(&trip.Engine, "engine", "", "engine type: outboard, inboard-gasoline or inboard-diesel")
	f.IntVar(&trip.HP, "hp", 0, "engine power in horsepower")
	f.Float64Var(&trip.SpeedKnots, "speed", 0, "cruising speed in knots")
	f.IntVar(&trip.Seats, "seats", 0, "number of seats")
	f.Float64Var(&trip.DistanceKm, "distance", 0, "trip distance in km")
	f.BoolVar(&estimateJSON, "json", false, "print the estimate as JSON")
	_ = estimateCmd.MarkFlagRequired("engine")
	rootCmd.AddCommand(estimateCmd)
}

func estimate(cmd *cobra.Command, args []string) error {
	return withService(func(svc *app.Service) error {
		est, err := svc.Estimate(cmd.Context(), trip)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if estimateJSON {
			return json.NewEncoder(out).Encode(struct {
				EngineType  string  `json:"engine_type"`
				FuelPrice   float64 `json:"fuel_price"`
				PriceSource string  `json:"price_source"`
				CostPerKm   float64 `json:"cost_per_km"`
				CostTotal   float64 `json:"cost_total"`
			}{string(est.Engine), est.FuelPrice, est.Quote.Source, est.Result.CostPerKm, est.Result.CostTotal})
		}
		fmt.Fprintf(out, "engine:      %s\n", est.Engine)
		fmt.Fprintf(out, "fuel price:  %.3f (%s)\n", est.FuelPrice, est.Quote.Source)
		fmt.Fprintf(out, "consumption: %.4f\n", est.Breakdown.Consumption)
		fmt.Fprintf(out, "factors:     hp %.3g (band %g), seats %.3g (band %g)\n",
			est.Breakdown.HPFactor, est.Breakdown.HPBand, est.Breakdown.SeatFactor, est.Breakdown.SeatBand)
		fmt.Fprintf(out, "cost per km: %.2f\n", est.Result.CostPerKm)
		fmt.Fprintf(out, "total cost:  %.2f\n", est.Result.CostTotal)
		return nil
	})
}
