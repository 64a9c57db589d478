// Package chart renders history series to PNG images.
package chart

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/bobmcallan/myxview/internal/models"
)

// RenderHistory renders a PNG close-price line chart for one instrument's
// history series. Points must be sorted ascending by date. Returns raw PNG
// bytes.
func RenderHistory(ticker string, points []models.HistoricalPoint) ([]byte, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("need at least 2 data points, got %d", len(points))
	}

	xValues := make([]time.Time, len(points))
	closeY := make([]float64, len(points))
	for i, p := range points {
		date, err := time.Parse("20060102", p.Date)
		if err != nil {
			return nil, fmt.Errorf("malformed point date %q: %w", p.Date, err)
		}
		xValues[i] = date
		closeY[i] = p.Close
	}

	closeSeries := chart.TimeSeries{
		Name: ticker,
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("2563eb"), // blue-600
			StrokeWidth: 2.5,
		},
		XValues: xValues,
		YValues: closeY,
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s Close", ticker),
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("02 Jan 06")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("RM %.2f", f)
				}
				return ""
			},
		},
		Series: []chart.Series{closeSeries},
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}
