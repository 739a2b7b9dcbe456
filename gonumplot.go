package csv2graph

import (
	"image/color"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// The gonum and go-chart backends lay out in points and pixels at 96 DPI.
const (
	mmPerPx = 25.4 / 96.0
	ptPerPx = 72.0 / 96.0
)

const gonumPadding = 10.0

func px(v float64) vg.Length {
	return vg.Length(v * ptPerPx)
}

func gonumTicks(ticks []Tick) plot.ConstantTicks {
	marks := make(plot.ConstantTicks, len(ticks))
	for i, tick := range ticks {
		marks[i] = plot.Tick{Value: tick.Value, Label: tick.Label}
	}
	return marks
}

// GonumPlot returns the plot as a gonum plot with its ticks, grid and axis ranges taken from the layout, and the legend which is drawn separately.
func (p *Plot) GonumPlot() (*plot.Plot, *plot.Legend, error) {
	background, err := ParseColor(p.Style.Background)
	if err != nil {
		return nil, nil, err
	}
	gridColor, err := ParseColor(p.Style.GridColor)
	if err != nil {
		return nil, nil, err
	}

	pl := plot.New()
	pl.BackgroundColor = background
	pl.Title.Text = p.Title
	pl.Title.TextStyle.Font.Size = px(p.Style.TitleSize)
	for _, axis := range []*plot.Axis{&pl.X, &pl.Y} {
		axis.Padding = 0
		axis.Width = px(p.Style.AxisWidth)
		axis.Tick.Label.Font.Size = px(p.Style.FontSize)
		axis.Tick.Length = px(tickLength)
	}
	pl.X.Tick.Marker = gonumTicks(p.XTicks)
	pl.Y.Tick.Marker = gonumTicks(p.YTicks)

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Vertical.Width = px(1.0)
	grid.Horizontal.Color = gridColor
	grid.Horizontal.Width = px(1.0)
	pl.Add(grid)

	legend := plot.NewLegend()
	legend.Top = true
	legend.Left = true
	legend.ThumbnailWidth = px(legendSwatch)
	legend.TextStyle.Font.Size = px(p.Style.FontSize)
	for _, s := range p.Series {
		xys := make(plotter.XYs, s.Len())
		for i := range s.X {
			xys[i].X, xys[i].Y = s.X[i], s.Y[i]
		}

		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, nil, err
		}
		line.LineStyle.Color = s.Color
		line.LineStyle.Width = px(p.Style.LineWidth)

		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, nil, err
		}
		scatter.GlyphStyle.Color = s.Color
		scatter.GlyphStyle.Radius = px(p.Style.PointRadius)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}

		if 0 < s.Len() {
			pl.Add(line, scatter)
		}
		legend.Add(s.Name, line)
	}

	// axis ranges are set after adding plotters, which would extend them to the data
	pl.X.Min, pl.X.Max = p.Mapper.X.Min, p.Mapper.X.Max
	pl.Y.Min, pl.Y.Max = p.Mapper.Y.Min, p.Mapper.Y.Max
	return pl, &legend, nil
}

// DrawGonum draws the plot using gonum onto dc, which spans the frame.
func (p *Plot) DrawGonum(dc draw.Canvas) error {
	pl, legend, err := p.GonumPlot()
	if err != nil {
		return err
	}

	m := p.Mapper
	l := p.Legend(func(s string) float64 {
		return float64(legend.TextStyle.Rectangle(s).Max.X) / ptPerPx
	})

	dc.SetColor(pl.BackgroundColor)
	dc.Fill(dc.Rectangle.Path())

	right := m.Width - gonumPadding
	if !l.Empty() {
		right = l.X - legendOffset
	}
	pl.Draw(draw.Crop(dc, px(gonumPadding), -px(m.Width-right), px(gonumPadding), -px(gonumPadding)))

	if !l.Empty() {
		box := []vg.Point{
			{X: px(l.X), Y: px(m.Height - l.Y)},
			{X: px(l.X + l.W), Y: px(m.Height - l.Y)},
			{X: px(l.X + l.W), Y: px(m.Height - l.Y - l.H)},
			{X: px(l.X), Y: px(m.Height - l.Y - l.H)},
		}
		dc.FillPolygon(color.White, box)
		dc.StrokeLines(draw.LineStyle{Color: color.Black, Width: px(1.0)}, append(box, box[0]))
		legend.Draw(draw.Crop(dc, px(l.X+legendPadding), -px(m.Width-l.X-l.W+legendPadding), px(m.Height-l.Y-l.H), -px(l.Y+legendPadding/2.0)))
	}
	return nil
}

// GonumCanvas returns a new canvas with the plot drawn by gonum. One pixel is mmPerPx millimeters.
func (p *Plot) GonumCanvas() (*canvas.Canvas, error) {
	c := canvas.New(p.Mapper.Width*mmPerPx, p.Mapper.Height*mmPerPx)
	if err := p.DrawGonum(renderers.NewGonumPlot(c)); err != nil {
		return nil, err
	}
	return c, nil
}
