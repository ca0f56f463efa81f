package ui

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/socialcrm/internal/services/web/components/layout"
)

// ChartDataset is one bar series.
type ChartDataset struct {
	Label        string
	Data         []float64
	Color        string
	BorderRadius float64
}

// ChartData holds category labels and the series plotted against them.
type ChartData struct {
	Labels   []string
	Datasets []ChartDataset
}

// BarChartOptions controls chart sizing and copy.
type BarChartOptions struct {
	// Label is the accessible name of the chart.
	Label string
	// EmptyText is shown instead of the chart when there is nothing to plot.
	EmptyText string
	Width     int
	Height    int
	Props     Props
}

const (
	defaultChartWidth  = 720
	defaultChartHeight = 320
	chartMarginTop     = 12
	chartMarginRight   = 12
	chartMarginBottom  = 28
	chartMarginLeft    = 44
	chartTicks         = 4
	chartGroupFill     = 0.8
	defaultBarColor    = "#2563eb"
)

// chartGeometry is the resolved plotting area and y scale.
type chartGeometry struct {
	width, height float64
	plotX, plotY  float64
	plotW, plotH  float64
	yMax, yStep   float64
}

func (g chartGeometry) y(value float64) float64 {
	return g.plotY + g.plotH - g.barHeight(value)
}

func (g chartGeometry) barHeight(value float64) float64 {
	if value <= 0 || g.yMax <= 0 {
		return 0
	}
	return value / g.yMax * g.plotH
}

// BarChart renders grouped vertical bars as inline SVG with a legend.
func BarChart(data ChartData, opts BarChartOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if isEmptyChart(data) {
			return element("p", "text-sm text-muted-foreground", Props{Attrs: templ.Attributes{"data-chart-empty": true}}, []templ.Component{Text(opts.EmptyText)}).Render(ctx, w)
		}

		geometry := newChartGeometry(data, opts)
		var b strings.Builder
		writeChartSVG(&b, data, geometry, opts.Label)

		figure := element("figure", "w-full space-y-3", opts.Props, []templ.Component{
			templ.Raw(b.String()),
			chartLegend(data.Datasets),
		})
		return figure.Render(ctx, w)
	})
}

func isEmptyChart(data ChartData) bool {
	if len(data.Labels) == 0 || len(data.Datasets) == 0 {
		return true
	}
	for _, dataset := range data.Datasets {
		if len(dataset.Data) > 0 {
			return false
		}
	}
	return true
}

func newChartGeometry(data ChartData, opts BarChartOptions) chartGeometry {
	width := float64(opts.Width)
	if width <= 0 {
		width = defaultChartWidth
	}
	height := float64(opts.Height)
	if height <= 0 {
		height = defaultChartHeight
	}
	maxValue := 0.0
	for _, dataset := range data.Datasets {
		for _, value := range dataset.Data {
			maxValue = math.Max(maxValue, value)
		}
	}
	yMax, yStep := niceScale(maxValue, chartTicks)
	return chartGeometry{
		width:  width,
		height: height,
		plotX:  chartMarginLeft,
		plotY:  chartMarginTop,
		plotW:  width - chartMarginLeft - chartMarginRight,
		plotH:  height - chartMarginTop - chartMarginBottom,
		yMax:   yMax,
		yStep:  yStep,
	}
}

// niceScale rounds maxValue up to a multiple of a 1/2/2.5/5 x 10^k step so
// that ticks land on readable values.
func niceScale(maxValue float64, ticks int) (float64, float64) {
	if maxValue <= 0 || ticks <= 0 {
		return 1, 1
	}
	rough := maxValue / float64(ticks)
	magnitude := math.Pow(10, math.Floor(math.Log10(rough)))
	step := magnitude * 10
	for _, factor := range []float64{1, 2, 2.5, 5, 10} {
		if rough <= factor*magnitude {
			step = factor * magnitude
			break
		}
	}
	return math.Ceil(maxValue/step) * step, step
}

func writeChartSVG(b *strings.Builder, data ChartData, g chartGeometry, label string) {
	fmt.Fprintf(b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" class="h-auto w-full" role="img" aria-label="%s">`,
		formatNumber(g.width), formatNumber(g.height), templ.EscapeString(label))

	b.WriteString(`<g class="text-muted-foreground" font-size="11" fill="currentColor">`)
	for value := 0.0; value <= g.yMax+g.yStep/2; value += g.yStep {
		y := formatNumber(g.y(value))
		fmt.Fprintf(b, `<line x1="%s" x2="%s" y1="%s" y2="%s" stroke="currentColor" stroke-opacity="0.15"/>`,
			formatNumber(g.plotX), formatNumber(g.plotX+g.plotW), y, y)
		fmt.Fprintf(b, `<text x="%s" y="%s" text-anchor="end" dominant-baseline="middle">%s</text>`,
			formatNumber(g.plotX-6), y, formatNumber(value))
	}
	b.WriteString(`</g>`)

	groupWidth := g.plotW / float64(len(data.Labels))
	barWidth := groupWidth * chartGroupFill / float64(len(data.Datasets))
	for seriesIndex, dataset := range data.Datasets {
		color := strings.TrimSpace(dataset.Color)
		if color == "" {
			color = defaultBarColor
		}
		radius := math.Min(math.Max(dataset.BorderRadius, 0), barWidth/2)
		fmt.Fprintf(b, `<g data-series="%s" fill="%s">`, templ.EscapeString(dataset.Label), templ.EscapeString(color))
		for labelIndex, category := range data.Labels {
			if labelIndex >= len(dataset.Data) {
				break
			}
			value := dataset.Data[labelIndex]
			x := g.plotX + float64(labelIndex)*groupWidth + groupWidth*(1-chartGroupFill)/2 + float64(seriesIndex)*barWidth
			fmt.Fprintf(b, `<rect x="%s" y="%s" width="%s" height="%s" rx="%s"><title>%s</title></rect>`,
				formatNumber(x), formatNumber(g.y(value)), formatNumber(barWidth), formatNumber(g.barHeight(value)), formatNumber(radius),
				templ.EscapeString(category+" "+dataset.Label+": "+formatNumber(value)))
		}
		b.WriteString(`</g>`)
	}

	b.WriteString(`<g class="text-muted-foreground" font-size="11" fill="currentColor" text-anchor="middle">`)
	for labelIndex, category := range data.Labels {
		x := g.plotX + (float64(labelIndex)+0.5)*groupWidth
		fmt.Fprintf(b, `<text x="%s" y="%s">%s</text>`,
			formatNumber(x), formatNumber(g.plotY+g.plotH+18), templ.EscapeString(category))
	}
	b.WriteString(`</g></svg>`)
}

func chartLegend(datasets []ChartDataset) templ.Component {
	items := make([]templ.Component, 0, len(datasets))
	for _, dataset := range datasets {
		color := strings.TrimSpace(dataset.Color)
		if color == "" {
			color = defaultBarColor
		}
		swatch := templ.Raw(`<svg class="h-3 w-3" viewBox="0 0 12 12" aria-hidden="true"><rect width="12" height="12" rx="2" fill="` + templ.EscapeString(color) + `"/></svg>`)
		items = append(items, layout.Flex(layout.FlexProps{
			Justify: layout.JustifyStart,
			Class:   "gap-2 text-sm",
			Attrs:   templ.Attributes{"data-legend": dataset.Label},
		}, swatch, Text(dataset.Label)))
	}
	return layout.Flex(layout.FlexProps{Justify: layout.JustifyCenter, Class: "flex-wrap gap-4"}, items...)
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(math.Round(value*100)/100, 'f', -1, 64)
}
