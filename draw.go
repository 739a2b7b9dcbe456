package csv2graph

import (
	"image/color"

	"github.com/tdewolff/canvas"
)

// One canvas unit is one pixel, rendered at canvas.DPMM(1.0). Font sizes are given in points.
const ptPerUnit = 72.0 / 25.4

const (
	tickLength = 5.0
	titleRow   = 20.0
)

// drawer draws in pixel coordinates with rows increasing downwards onto a canvas with the y axis pointing up.
type drawer struct {
	ctx    *canvas.Context
	height float64
}

func (d drawer) line(col color.Color, width, x0, y0, x1, y1 float64) {
	p := &canvas.Path{}
	p.MoveTo(x0, d.height-y0)
	p.LineTo(x1, d.height-y1)
	d.stroke(col, width, p)
}

func (d drawer) stroke(col color.Color, width float64, p *canvas.Path) {
	d.ctx.SetFillColor(canvas.Transparent)
	d.ctx.SetStrokeColor(col)
	d.ctx.SetStrokeWidth(width)
	d.ctx.DrawPath(0.0, 0.0, p)
}

func (d drawer) rect(fill, stroke color.Color, width, x, y, w, h float64) {
	d.ctx.SetFillColor(fill)
	d.ctx.SetStrokeColor(stroke)
	d.ctx.SetStrokeWidth(width)
	d.ctx.DrawPath(x, d.height-y-h, canvas.Rectangle(w, h))
}

func (d drawer) dot(col color.Color, r, x, y float64) {
	d.ctx.SetFillColor(col)
	d.ctx.SetStrokeColor(canvas.Transparent)
	d.ctx.DrawPath(x, d.height-y, canvas.Circle(r))
}

// text draws s with its anchor at pixel (x,y), the text is vertically centered on y.
func (d drawer) text(face *canvas.FontFace, s string, x, y float64, align canvas.TextAlign) {
	baseline := y + face.Metrics().CapHeight/2.0
	d.ctx.DrawText(x, d.height-baseline, canvas.NewTextLine(face, s, align))
}

// Draw draws the plot onto a canvas context of the frame size.
func (p *Plot) Draw(ctx *canvas.Context, family *canvas.FontFamily) {
	m := p.Mapper
	d := drawer{ctx, m.Height}
	background, _ := ParseColor(p.Style.Background)
	grid, _ := ParseColor(p.Style.GridColor)
	labelFace := family.Face(p.Style.FontSize*ptPerUnit, canvas.Black, canvas.FontRegular, canvas.FontNormal)
	titleFace := family.Face(p.Style.TitleSize*ptPerUnit, canvas.Black, canvas.FontRegular, canvas.FontNormal)

	ctx.SetStrokeCapper(canvas.ButtCap)
	ctx.SetStrokeJoiner(canvas.RoundJoin)
	d.rect(background, canvas.Transparent, 0.0, 0.0, 0.0, m.Width, m.Height)

	// grid
	for _, tick := range p.XTicks {
		d.line(grid, 1.0, tick.Pixel, m.Top(), tick.Pixel, m.Bottom())
	}
	for _, tick := range p.YTicks {
		d.line(grid, 1.0, m.Left(), tick.Pixel, m.Right(), tick.Pixel)
	}

	// axes
	d.line(canvas.Black, p.Style.AxisWidth, m.Left(), m.Bottom(), m.Right(), m.Bottom())
	d.line(canvas.Black, p.Style.AxisWidth, m.Left(), m.Top(), m.Left(), m.Bottom())

	// ticks
	ctx.SetFillColor(canvas.Black)
	for _, tick := range p.XTicks {
		d.line(canvas.Black, 1.0, tick.Pixel, m.Bottom()-tickLength, tick.Pixel, m.Bottom()+tickLength)
		d.text(labelFace, tick.Label, tick.Pixel, m.Bottom()+2.0*tickLength+p.Style.FontSize/2.0, canvas.Center)
	}
	for _, tick := range p.YTicks {
		d.line(canvas.Black, 1.0, m.Left()-tickLength, tick.Pixel, m.Left()+tickLength, tick.Pixel)
		d.text(labelFace, tick.Label, m.Left()-2.0*tickLength, tick.Pixel, canvas.Right)
	}

	// series
	ctx.SetStrokeCapper(canvas.RoundCap)
	for _, s := range p.Series {
		pts := p.Pixels(s)
		if 1 < len(pts) {
			path := &canvas.Path{}
			path.MoveTo(pts[0][0], m.Height-pts[0][1])
			for _, pt := range pts[1:] {
				path.LineTo(pt[0], m.Height-pt[1])
			}
			d.stroke(s.Color, p.Style.LineWidth, path)
		}
		for _, pt := range pts {
			d.dot(s.Color, p.Style.PointRadius, pt[0], pt[1])
		}
	}

	// legend
	legend := p.Legend(labelFace.TextWidth)
	if !legend.Empty() {
		d.rect(canvas.White, canvas.Black, 1.0, legend.X, legend.Y, legend.W, legend.H)
		for _, entry := range legend.Entries {
			d.rect(entry.Color, canvas.Transparent, 0.0, entry.Swatch[0], entry.Swatch[1], legend.Swatch, legend.Swatch)
			d.text(labelFace, entry.Name, entry.Label[0], entry.Label[1], canvas.Left)
		}
	}

	if p.Title != "" {
		d.text(titleFace, p.Title, m.Width/2.0, titleRow, canvas.Center)
	}
}

// Canvas returns a new canvas of the frame size with the plot drawn on it.
func (p *Plot) Canvas(family *canvas.FontFamily) *canvas.Canvas {
	c := canvas.New(p.Mapper.Width, p.Mapper.Height)
	p.Draw(canvas.NewContext(c), family)
	return c
}
