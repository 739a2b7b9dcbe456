package csv2graph

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const goChartDPI = 96.0

func chartColor(col color.RGBA) drawing.Color {
	return drawing.Color{R: col.R, G: col.G, B: col.B, A: col.A}
}

// chartRange is a continuous range whose ticks come from the layout, so the axis keeps its full domain rather than shrinking to the outer ticks.
type chartRange struct {
	*chart.ContinuousRange
	ticks []chart.Tick
}

func newChartRange(r Range, ticks []Tick) chartRange {
	// go-chart refuses a zero delta
	if r.Degenerate() {
		r = Range{r.Min - 0.5, r.Max + 0.5}
	}
	cr := chartRange{
		ContinuousRange: &chart.ContinuousRange{Min: r.Min, Max: r.Max},
		ticks:           make([]chart.Tick, len(ticks)),
	}
	for i, tick := range ticks {
		cr.ticks[i] = chart.Tick{Value: tick.Value, Label: tick.Label}
	}
	return cr
}

func (r chartRange) GetTicks(chart.Renderer, chart.Style, chart.ValueFormatter) []chart.Tick {
	return r.ticks
}

func (r chartRange) gridLines(style chart.Style) []chart.GridLine {
	lines := make([]chart.GridLine, len(r.ticks))
	for i, tick := range r.ticks {
		lines[i] = chart.GridLine{Style: style, Value: tick.Value}
	}
	return lines
}

// LoadChartFont parses a TrueType font for go-chart. An empty filename returns nil, which selects the go-chart default font.
func LoadChartFont(filename string) (*truetype.Font, error) {
	if filename == "" {
		return nil, nil
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("load font %s: %w", filename, err)
	}
	f, err := truetype.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("load font %s: %w", filename, err)
	}
	return f, nil
}

// GoChart returns the plot as a go-chart chart. Sizes are converted from pixels to points at 96 DPI.
func (p *Plot) GoChart(font *truetype.Font) (chart.Chart, error) {
	background, err := ParseColor(p.Style.Background)
	if err != nil {
		return chart.Chart{}, err
	}
	gridColor, err := ParseColor(p.Style.GridColor)
	if err != nil {
		return chart.Chart{}, err
	}

	m := p.Mapper
	margin := int(m.Margin)
	axisStyle := chart.Style{
		StrokeColor: drawing.ColorBlack,
		StrokeWidth: p.Style.AxisWidth,
		FontSize:    p.Style.FontSize * ptPerPx,
		FontColor:   drawing.ColorBlack,
	}
	gridStyle := chart.Style{
		StrokeColor: chartColor(gridColor),
		StrokeWidth: 1.0,
	}

	xr := newChartRange(m.X, p.XTicks)
	yr := newChartRange(m.Y, p.YTicks)
	ch := chart.Chart{
		Title: p.Title,
		TitleStyle: chart.Style{
			FontSize:  p.Style.TitleSize * ptPerPx,
			FontColor: drawing.ColorBlack,
		},
		Width:  int(m.Width),
		Height: int(m.Height),
		DPI:    goChartDPI,
		Font:   font,
		Background: chart.Style{
			Padding:     chart.Box{Top: margin, Left: margin, Right: margin, Bottom: margin, IsSet: true},
			FillColor:   chartColor(background),
			StrokeColor: chartColor(background),
		},
		Canvas: chart.Style{
			FillColor: chartColor(background),
		},
		XAxis: chart.XAxis{
			Style:          axisStyle,
			Range:          xr,
			GridLines:      xr.gridLines(gridStyle),
			GridMajorStyle: gridStyle,
		},
		// the primary y axis is drawn on the right, so the series use the secondary one on the left
		YAxis: chart.YAxis{
			Style: chart.Style{Hidden: true},
			Range: newChartRange(m.Y, nil),
		},
		YAxisSecondary: chart.YAxis{
			Style:          axisStyle,
			Range:          yr,
			GridLines:      yr.gridLines(gridStyle),
			GridMajorStyle: gridStyle,
		},
	}
	for _, s := range p.Series {
		ch.Series = append(ch.Series, chart.ContinuousSeries{
			Name:    s.Name,
			YAxis:   chart.YAxisSecondary,
			XValues: s.X,
			YValues: s.Y,
			Style: chart.Style{
				StrokeColor: chartColor(s.Color),
				StrokeWidth: p.Style.LineWidth,
				DotColor:    chartColor(s.Color),
				DotWidth:    p.Style.PointRadius,
			},
		})
	}
	if len(ch.Series) == 0 {
		// go-chart renders nothing without at least one visible series
		ch.Series = append(ch.Series, chart.ContinuousSeries{
			YAxis: chart.YAxisSecondary,
			Style: chart.Style{StrokeColor: drawing.ColorTransparent},
		})
	}
	ch.Elements = []chart.Renderable{p.goChartLegend()}
	return ch, nil
}

// goChartLegend draws the legend at the position given by LayoutLegend.
func (p *Plot) goChartLegend() chart.Renderable {
	return func(r chart.Renderer, _ chart.Box, defaults chart.Style) {
		textStyle := chart.Style{
			Font:      defaults.Font,
			FontSize:  p.Style.FontSize * ptPerPx,
			FontColor: drawing.ColorBlack,
		}
		l := p.Legend(func(s string) float64 {
			return float64(chart.Draw.MeasureText(r, s, textStyle).Width())
		})
		if l.Empty() {
			return
		}

		chart.Draw.Box(r, chart.Box{
			Top:    int(l.Y),
			Left:   int(l.X),
			Right:  int(l.X + l.W),
			Bottom: int(l.Y + l.H),
		}, chart.Style{
			FillColor:   drawing.ColorWhite,
			StrokeColor: drawing.ColorBlack,
			StrokeWidth: 1.0,
		})
		for _, entry := range l.Entries {
			col := chartColor(entry.Color)
			chart.Draw.Box(r, chart.Box{
				Top:    int(entry.Swatch[1]),
				Left:   int(entry.Swatch[0]),
				Right:  int(entry.Swatch[0] + l.Swatch),
				Bottom: int(entry.Swatch[1] + l.Swatch),
			}, chart.Style{
				FillColor:   col,
				StrokeColor: col,
				StrokeWidth: 1.0,
			})
			height := chart.Draw.MeasureText(r, entry.Name, textStyle).Height()
			chart.Draw.Text(r, entry.Name, int(entry.Label[0]), int(entry.Label[1])+height/2, textStyle)
		}
	}
}

// GoChartCanvas renders the plot with go-chart and returns the resulting canvas. One pixel is mmPerPx millimeters.
func (p *Plot) GoChartCanvas(font *truetype.Font) (*canvas.Canvas, error) {
	ch, err := p.GoChart(font)
	if err != nil {
		return nil, err
	}

	var c *canvas.Canvas
	capture := func(_ io.Writer, rendered *canvas.Canvas) error {
		c = rendered
		return nil
	}
	if err := ch.Render(renderers.NewGoChart(capture), io.Discard); err != nil {
		return nil, fmt.Errorf("go-chart: %w", err)
	}
	return c, nil
}
