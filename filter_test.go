package csv2graph

import (
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func exampleTable(t *testing.T) *Table {
	tab, err := ReadCSV(strings.NewReader("x,a\n1,10\n2,20\n3,15\n4,25\n5,30\n"), ',', true)
	test.Error(t, err)
	return tab
}

func xs(tab *Table) []float64 {
	vals := []float64{}
	for i := range tab.Rows {
		x, _ := tab.X(i)
		vals = append(vals, x)
	}
	return vals
}

func TestFilter(t *testing.T) {
	var tts = []struct {
		name   string
		bound  Bound
		stride int
		xs     []float64
		xmax   float64
	}{
		{"all", NoBound, 1, []float64{1, 2, 3, 4, 5}, 5.0},
		{"range", UpperBound(3.0), 1, []float64{1, 2, 3}, 3.0},
		{"range skip", UpperBound(3.0), 2, []float64{1, 3}, 3.0},
		{"skip", NoBound, 2, []float64{1, 3, 5}, 5.0},
		{"stride beyond length", NoBound, 10, []float64{1}, 5.0},
		{"zero stride", NoBound, 0, []float64{1, 2, 3, 4, 5}, 5.0},
		{"bound below data", UpperBound(0.5), 1, []float64{}, 0.5},
		{"bound above data", UpperBound(100.0), 1, []float64{1, 2, 3, 4, 5}, 100.0},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			tab, xmax := Filter(exampleTable(t), tt.bound, tt.stride)
			test.T(t, xs(tab), tt.xs)
			test.Float(t, xmax, tt.xmax)
		})
	}
}

func TestFilterNonNumericX(t *testing.T) {
	tab, err := ReadCSV(strings.NewReader("x,a\nfoo,1\n2,2\n"), ',', true)
	test.Error(t, err)

	filtered, xmax := Filter(tab, NoBound, 1)
	test.T(t, filtered.Len(), 2)
	test.Float(t, xmax, 2.0)

	filtered, _ = Filter(tab, UpperBound(10.0), 1)
	test.T(t, filtered.Len(), 1)
}

func TestFilterEmpty(t *testing.T) {
	tab, err := ReadCSV(strings.NewReader("a\n"), ',', false)
	test.Error(t, err)
	filtered, xmax := Filter(tab, NoBound, 1)
	test.T(t, filtered.Len(), 0)
	test.Float(t, xmax, 0.0)
}

func TestFilterNonFiniteX(t *testing.T) {
	tab, err := ReadCSV(strings.NewReader("x,a\n1,1\nnan,2\n3,3\ninf,4\n"), ',', true)
	test.Error(t, err)

	filtered, xmax := Filter(tab, NoBound, 1)
	test.T(t, filtered.Len(), 4)
	test.Float(t, xmax, 3.0)

	filtered, xmax = Filter(tab, UpperBound(10.0), 1)
	test.T(t, xs(filtered), []float64{1.0, 3.0})
	test.Float(t, xmax, 10.0)
}

func TestMaxX(t *testing.T) {
	xmax, ok := MaxX(exampleTable(t))
	test.That(t, ok)
	test.Float(t, xmax, 5.0)

	tab, err := ReadCSV(strings.NewReader("x,a\nfoo,1\n"), ',', true)
	test.Error(t, err)
	_, ok = MaxX(tab)
	test.That(t, !ok)
}

func TestThin(t *testing.T) {
	tab := exampleTable(t)
	test.T(t, xs(Thin(tab, 1)), []float64{1, 2, 3, 4, 5})
	test.T(t, xs(Thin(tab, 2)), []float64{1, 3, 5})
	test.T(t, xs(Thin(Bounded(tab, UpperBound(2.0)), 2)), []float64{1})
}
