package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/kilianp07/boater/core/cost"
)

// WriteJSON writes the curves to w in JSON format.
func WriteJSON(w io.Writer, curves []cost.Curve) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(curves)
}

// WriteCSV writes one row per curve point.
func WriteCSV(w io.Writer, curves []cost.Curve) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"curve", "distance_km", "cost_total", "cost_per_seat"}); err != nil {
		return err
	}
	for _, c := range curves {
		for _, p := range c.Points {
			rec := []string{
				c.Name,
				strconv.FormatFloat(p.DistanceKm, 'f', -1, 64),
				strconv.FormatFloat(p.CostTotal, 'f', 2, 64),
				strconv.FormatFloat(p.CostPerSeat, 'f', 2, 64),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteChartHTML renders two line charts, total cost and cost per seat
// against distance. All curves must share the distances of the first one.
func WriteChartHTML(w io.Writer, curves []cost.Curve) error {
	if len(curves) == 0 {
		return fmt.Errorf("no curves to chart")
	}
	var xAxis []string
	for _, p := range curves[0].Points {
		xAxis = append(xAxis, strconv.FormatFloat(p.DistanceKm, 'f', -1, 64))
	}

	total := newLine("Trip cost", "Total cost")
	perSeat := newLine("Cost per seat", "Cost per seat")
	total.SetXAxis(xAxis)
	perSeat.SetXAxis(xAxis)
	for _, c := range curves {
		if len(c.Points) != len(xAxis) {
			return fmt.Errorf("curve %q has %d points, want %d", c.Name, len(c.Points), len(xAxis))
		}
		totals := make([]opts.LineData, 0, len(c.Points))
		seats := make([]opts.LineData, 0, len(c.Points))
		for i, p := range c.Points {
			if xAxis[i] != strconv.FormatFloat(p.DistanceKm, 'f', -1, 64) {
				return fmt.Errorf("curve %q: distance %v does not match %s km", c.Name, p.DistanceKm, xAxis[i])
			}
			totals = append(totals, opts.LineData{Value: round2(p.CostTotal)})
			seats = append(seats, opts.LineData{Value: round2(p.CostPerSeat)})
		}
		total.AddSeries(c.Name, totals)
		perSeat.AddSeries(c.Name, seats)
	}

	page := components.NewPage()
	page.PageTitle = "Boater trip costs"
	page.AddCharts(total, perSeat)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

func newLine(title, yName string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Distance (km)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{}),
	)
	return line
}

func round2(v float64) float64 {
	f, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return f
}
