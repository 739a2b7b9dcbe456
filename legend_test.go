package csv2graph

import (
	"image/color"
	"testing"

	"github.com/tdewolff/test"
)

// measureChars measures every character as 6 pixels wide.
func measureChars(s string) float64 {
	return 6.0 * float64(len(s))
}

func TestLayoutLegend(t *testing.T) {
	series := []*Series{
		{Name: "a", Color: color.RGBA{1, 2, 3, 255}},
		{Name: "longer", Color: color.RGBA{4, 5, 6, 255}},
	}
	f := Frame{Width: 1000.0, Height: 500.0, Margin: 120.0}

	l := LayoutLegend(f, series, measureChars)
	test.Float(t, l.X, 890.0)
	test.Float(t, l.Y, 120.0)
	test.Float(t, l.W, 76.0)
	test.Float(t, l.H, 60.0)
	test.T(t, len(l.Entries), 2)
	test.T(t, l.Entries[1].Name, "longer")
	test.T(t, l.Entries[1].Color, color.RGBA{4, 5, 6, 255})
	test.T(t, l.Entries[0].Swatch, [2]float64{900.0, 130.0})
	test.T(t, l.Entries[1].Swatch, [2]float64{900.0, 150.0})
	test.T(t, l.Entries[1].Label, [2]float64{920.0, 155.0})
}

func TestLayoutLegendShift(t *testing.T) {
	series := []*Series{{Name: "some column"}}
	l := LayoutLegend(testFrame, series, measureChars)
	test.Float(t, l.W, 106.0)
	test.Float(t, l.X, 768.0-5.0-106.0)
	test.That(t, l.X+l.W <= testFrame.Width)

	narrow := Frame{Width: 50.0, Height: 50.0, Margin: 10.0}
	l = LayoutLegend(narrow, series, measureChars)
	test.Float(t, l.X, 0.0)
}

func TestLayoutLegendEmpty(t *testing.T) {
	l := LayoutLegend(testFrame, nil, measureChars)
	test.That(t, l.Empty())
}
