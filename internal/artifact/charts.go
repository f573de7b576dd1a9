package artifact

import (
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"
)

// renderMetricsChart plots the per-step max amplitude and field energy on a
// shared time axis, energy on the secondary y-axis.
func renderMetricsChart(path string, maxAmp, energy []float64) error {
	steps := make([]float64, len(maxAmp))
	for i := range steps {
		steps[i] = float64(i)
	}

	graph := chart.Chart{
		Width:  800,
		Height: 400,
		XAxis: chart.XAxis{
			Name: "Time step",
		},
		YAxis: chart.YAxis{
			Name: "Max amplitude",
		},
		YAxisSecondary: chart.YAxis{
			Name: "Energy",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Max amplitude",
				XValues: steps,
				YValues: maxAmp,
				Style:   chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 2.0},
			},
			chart.ContinuousSeries{
				Name:    "Energy",
				XValues: steps,
				YValues: energy,
				YAxis:   chart.YAxisSecondary,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2.0},
			},
		},
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart: %w", err)
	}
	if err := graph.Render(chart.PNG, f); err != nil {
		f.Close()
		return fmt.Errorf("render chart: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close chart: %w", err)
	}
	return nil
}
