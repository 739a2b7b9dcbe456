package csv2graph

import (
	"image/color"
	"math"
)

const (
	legendOffset  = 10.0 // gap between plot area and legend
	legendPadding = 10.0
	legendSwatch  = 10.0
	legendGap     = 10.0 // between swatch and label
	legendSpacing = 20.0
	legendEdge    = 5.0 // minimum distance to the right image edge
)

// LegendEntry is one row of the legend. Swatch is the top-left corner of the color box, Label is where the name starts and is vertically centered.
type LegendEntry struct {
	Name   string
	Color  color.RGBA
	Swatch [2]float64
	Label  [2]float64
}

// Legend is the legend box in pixels.
type Legend struct {
	X, Y, W, H float64
	Swatch     float64
	Entries    []LegendEntry
}

// Empty is true when there is nothing to draw.
func (l Legend) Empty() bool {
	return len(l.Entries) == 0
}

// LayoutLegend places the legend to the right of the plot area at the top, moving it left when it would not fit in the frame. The box is wide enough for the longest name as measured by measure.
func LayoutLegend(f Frame, series []*Series, measure func(string) float64) Legend {
	if len(series) == 0 {
		return Legend{}
	}

	textWidth := 0.0
	for _, s := range series {
		textWidth = math.Max(textWidth, measure(s.Name))
	}

	l := Legend{
		X:      f.Right() + legendOffset,
		Y:      f.Top(),
		W:      legendPadding + legendSwatch + legendGap + textWidth + legendPadding,
		H:      float64(len(series))*legendSpacing + 2.0*legendPadding,
		Swatch: legendSwatch,
	}
	if f.Width-legendEdge < l.X+l.W {
		l.X = math.Max(0.0, f.Width-legendEdge-l.W)
	}

	y := l.Y + legendPadding
	for _, s := range series {
		l.Entries = append(l.Entries, LegendEntry{
			Name:   s.Name,
			Color:  s.Color,
			Swatch: [2]float64{l.X + legendPadding, y},
			Label:  [2]float64{l.X + legendPadding + legendSwatch + legendGap, y + legendSwatch/2.0},
		})
		y += legendSpacing
	}
	return l
}
