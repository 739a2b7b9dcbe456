package csv2graph

import "math"

// Bound is an optional upper bound on the x values.
type Bound struct {
	Max float64
	Set bool
}

// NoBound keeps all rows.
var NoBound = Bound{}

// UpperBound keeps rows with x <= max.
func UpperBound(max float64) Bound {
	return Bound{Max: max, Set: true}
}

// Bounded keeps the rows with a numeric x value within the bound. Without a bound the table is returned as is.
func Bounded(t *Table, bound Bound) *Table {
	if !bound.Set {
		return t
	}
	rows := make([][]Value, 0, len(t.Rows))
	for i, row := range t.Rows {
		if x, ok := t.X(i); ok && x <= bound.Max {
			rows = append(rows, row)
		}
	}
	return t.WithRows(rows)
}

// Thin keeps every stride-th row starting with the first.
func Thin(t *Table, stride int) *Table {
	if stride <= 1 {
		return t
	}
	rows := make([][]Value, 0, (len(t.Rows)+stride-1)/stride)
	for i := 0; i < len(t.Rows); i += stride {
		rows = append(rows, t.Rows[i])
	}
	return t.WithRows(rows)
}

// MaxX returns the largest numeric x value, ok is false when there is none.
func MaxX(t *Table) (float64, bool) {
	xmax := math.Inf(-1)
	for i := range t.Rows {
		if x, ok := t.X(i); ok {
			xmax = math.Max(xmax, x)
		}
	}
	return xmax, !math.IsInf(xmax, -1)
}

// Filter keeps the rows with an x value within the bound and then every stride-th row starting with the first. It returns the filtered table and the effective x maximum, which is the bound if set or else the largest observed x value.
func Filter(t *Table, bound Bound, stride int) (*Table, float64) {
	filtered := Thin(Bounded(t, bound), stride)
	if bound.Set {
		return filtered, bound.Max
	}
	xmax, _ := MaxX(t)
	if math.IsInf(xmax, -1) {
		xmax = 0.0
	}
	return filtered, xmax
}
