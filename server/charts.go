package server

import (
	"errors"
	"fmt"
	"html/template"
	"math"
	"strconv"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/render"
	"github.com/gobmi/models"
)

const (
	seriesName  = "BMI Categories"
	HoverOffset = 8
	legendTop   = "30"
	chartHeight = "420px"
)

// Palette colors slices by position: underweight, normal, overweight, obesity.
var Palette = []string{"#007bff", "#28a745", "#ffc107", "#dc3545"}

// ErrMismatchedInput is returned when labels and ranges differ in length.
var ErrMismatchedInput = errors.New("labels and ranges differ in length")

// ChartOptions carries the engine settings that come from configuration.
type ChartOptions struct {
	Theme      string
	AssetsHost string
}

// RenderChart builds the BMI doughnut and attaches it to the target slot of the surface.
func RenderChart(surface *Surface, targetID string, input models.ChartInput, o ChartOptions) error {
	pie, err := NewBMIChart(targetID, input, o)
	if err != nil {
		return err
	}

	snippet := pie.RenderSnippet()
	fragment := Fragment{
		Element: template.HTML(snippet.Element),
		Script:  template.HTML(snippet.Script),
		Assets:  append([]string(nil), pie.JSAssets.Values...),
	}

	if err := surface.Attach(targetID, fragment); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// NewBMIChart creates the doughnut chart configuration. targetID becomes the
// chart element id and must be a valid JavaScript identifier.
func NewBMIChart(targetID string, input models.ChartInput, o ChartOptions) (*charts.Pie, error) {
	if len(input.Labels) != len(input.Ranges) {
		return nil, fmt.Errorf("%w: %d labels, %d ranges", ErrMismatchedInput, len(input.Labels), len(input.Ranges))
	}

	title := ChartTitle(input.UserBMI)
	pie := charts.NewPie()

	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:  title,
			ChartID:    targetID,
			Theme:      o.Theme,
			AssetsHost: o.AssetsHost,
			Width:      "100%",
			Height:     chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
			Left:  "center",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Top:  legendTop,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "item",
		}),
		charts.WithColorsOpts(append(opts.Colors(nil), Palette...)),
	)

	pie.AddSeries(seriesName, generatePieItems(input),
		charts.WithPieChartOpts(opts.PieChart{
			Radius: []string{"40%", "70%"},
		}),
	)

	// hover scaling and resizing are not part of the typed options
	pie.AddJSFuncs(
		fmt.Sprintf("%s.setOption({series: [{emphasis: {scale: true, scaleSize: %d}}]});", render.EchartsInstancePlaceholder, HoverOffset),
		fmt.Sprintf("window.addEventListener('resize', function () { %s.resize(); });", render.EchartsInstancePlaceholder),
	)

	return pie, nil
}

// ChartTitle interpolates the BMI as-is, without rounding.
func ChartTitle(bmi float64) string {
	return "Your BMI: " + jsNumber(bmi)
}

// jsNumber formats v the way JavaScript converts a number to a string:
// shortest round-trip digits, with exponent form outside [1e-6, 1e21).
func jsNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}
	if abs := math.Abs(v); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	// Go pads the exponent to two digits; JavaScript does not
	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + digits
}

// generatePieItems pairs labels with ranges and colors each slice by position
func generatePieItems(input models.ChartInput) []opts.PieData {
	items := make([]opts.PieData, 0, len(input.Labels))
	for i, label := range input.Labels {
		items = append(items, opts.PieData{
			Name:      label,
			Value:     input.Ranges[i],
			ItemStyle: &opts.ItemStyle{Color: Palette[i%len(Palette)]},
		})
	}
	return items
}
