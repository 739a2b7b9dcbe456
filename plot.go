package csv2graph

import (
	"image/color"
	"math"
	"sort"

	"github.com/sirupsen/logrus"
)

// Series is a table column to plot. Points are in data coordinates sorted by x.
type Series struct {
	Name   string
	Column int
	Color  color.RGBA
	X, Y   []float64
}

// Len returns the number of points.
func (s *Series) Len() int {
	return len(s.X)
}

// Plot is the laid out plot shared by all backends. All positions are in pixels.
type Plot struct {
	Title  string
	Style  Style
	Mapper Mapper
	XTicks []Tick
	YTicks []Tick
	Series []*Series
}

// NewPlot resolves the columns against the table and lays out the plot. Columns missing from the table are logged and skipped. Points with an x value outside the domain or with non-numeric cells are left out.
func NewPlot(t *Table, domain Range, columns []string, frame Frame, style Style, log logrus.FieldLogger) *Plot {
	if log == nil {
		log = logrus.StandardLogger()
	}

	resolved := []int{}
	names := []string{}
	for _, name := range columns {
		j, ok := t.Column(name)
		if !ok {
			log.WithField("column", name).Warn("column not found, skipping")
			continue
		}
		resolved = append(resolved, j)
		names = append(names, name)
	}

	colors := Palette(len(resolved))
	series := make([]*Series, len(resolved))
	yrange := Range{math.Inf(1), math.Inf(-1)}
	for k, j := range resolved {
		s := &Series{
			Name:   names[k],
			Column: j,
			Color:  colors[k],
		}
		for i := range t.Rows {
			x, okX := t.X(i)
			y, okY := t.Float(i, j)
			if !okX || !okY || !domain.Contains(x) {
				continue
			}
			s.X = append(s.X, x)
			s.Y = append(s.Y, y)
			yrange = yrange.Add(y)
		}
		sort.Stable(byX{s})
		series[k] = s
		log.WithFields(logrus.Fields{"column": s.Name, "points": s.Len()}).Debug("series resolved")
	}
	if yrange.Max < yrange.Min {
		yrange = Range{0.0, 1.0}
	}

	m := Mapper{
		Frame: frame,
		X:     domain,
		Y:     yrange,
	}
	return &Plot{
		Title:  style.Title,
		Style:  style,
		Mapper: m,
		XTicks: XTicks(m),
		YTicks: YTicks(m),
		Series: series,
	}
}

type byX struct {
	*Series
}

func (s byX) Less(i, j int) bool {
	return s.X[i] < s.X[j]
}

func (s byX) Swap(i, j int) {
	s.X[i], s.X[j] = s.X[j], s.X[i]
	s.Y[i], s.Y[j] = s.Y[j], s.Y[i]
}

// Pixels returns the pixel coordinates of the points of series s.
func (p *Plot) Pixels(s *Series) [][2]float64 {
	pts := make([][2]float64, s.Len())
	for i := range s.X {
		pts[i][0], pts[i][1] = p.Mapper.ToPixel(s.X[i], s.Y[i])
	}
	return pts
}

// Legend lays out the legend box, measure returns the pixel width of a label.
func (p *Plot) Legend(measure func(string) float64) Legend {
	return LayoutLegend(p.Mapper.Frame, p.Series, measure)
}
