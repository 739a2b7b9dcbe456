package csv2graph

import (
	"fmt"
	"math"
)

// Range is a closed interval of data values with Min <= Max.
type Range struct {
	Min, Max float64
}

// NewRange returns the range between a and b in either order.
func NewRange(a, b float64) Range {
	if b < a {
		a, b = b, a
	}
	return Range{a, b}
}

// Span returns Max-Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Degenerate is true when the range is a single value.
func (r Range) Degenerate() bool {
	return r.Max == r.Min
}

// Contains returns true if v lies within the range.
func (r Range) Contains(v float64) bool {
	return r.Min <= v && v <= r.Max
}

// Center returns the middle of the range.
func (r Range) Center() float64 {
	return r.Min + r.Span()/2.0
}

// Add extends the range to include v.
func (r Range) Add(v float64) Range {
	return Range{math.Min(r.Min, v), math.Max(r.Max, v)}
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.Min, r.Max)
}

// Frame is the pixel surface of the image. The plot area is inset by Margin on all sides.
type Frame struct {
	Width, Height float64
	Margin        float64
}

// Left returns the pixel column of the y axis.
func (f Frame) Left() float64 { return f.Margin }

// Right returns the pixel column of the right edge of the plot area.
func (f Frame) Right() float64 { return f.Width - f.Margin }

// Top returns the pixel row of the top edge of the plot area.
func (f Frame) Top() float64 { return f.Margin }

// Bottom returns the pixel row of the x axis.
func (f Frame) Bottom() float64 { return f.Height - f.Margin }

// PlotWidth is the width of the plot area.
func (f Frame) PlotWidth() float64 { return f.Width - 2.0*f.Margin }

// PlotHeight is the height of the plot area.
func (f Frame) PlotHeight() float64 { return f.Height - 2.0*f.Margin }

// Mapper maps data coordinates to pixel coordinates. Pixel rows increase downwards.
type Mapper struct {
	Frame
	X, Y Range
}

// XToPixel maps an x value to a pixel column. A degenerate x range maps to the center of the plot area.
func (m Mapper) XToPixel(x float64) float64 {
	if m.X.Degenerate() {
		return m.Left() + m.PlotWidth()/2.0
	}
	return m.Left() + (x-m.X.Min)/m.X.Span()*m.PlotWidth()
}

// YToPixel maps a y value to a pixel row. A degenerate y range maps to the center of the plot area.
func (m Mapper) YToPixel(y float64) float64 {
	if m.Y.Degenerate() {
		return m.Top() + m.PlotHeight()/2.0
	}
	return m.Bottom() - (y-m.Y.Min)/m.Y.Span()*m.PlotHeight()
}

// ToPixel maps a data point to pixel coordinates.
func (m Mapper) ToPixel(x, y float64) (float64, float64) {
	return m.XToPixel(x), m.YToPixel(y)
}

// PixelToX is the inverse of XToPixel.
func (m Mapper) PixelToX(px float64) float64 {
	if m.X.Degenerate() || m.PlotWidth() == 0.0 {
		return m.X.Min
	}
	return m.X.Min + (px-m.Left())/m.PlotWidth()*m.X.Span()
}

// PixelToY is the inverse of YToPixel.
func (m Mapper) PixelToY(py float64) float64 {
	if m.Y.Degenerate() || m.PlotHeight() == 0.0 {
		return m.Y.Min
	}
	return m.Y.Min + (m.Bottom()-py)/m.PlotHeight()*m.Y.Span()
}

// RescaleX maps the x column linearly so that 0 goes to target.Min and xmax to target.Max. The mapping assumes the data starts at zero, it divides by xmax only. If xmax is zero all values map to target.Min.
func RescaleX(t *Table, xmax float64, target Range) *Table {
	return t.MapX(func(x float64) float64 {
		if xmax == 0.0 {
			return target.Min
		}
		return target.Min + x/xmax*target.Span()
	})
}
