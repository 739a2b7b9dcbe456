package csv2graph

import (
	"math"
	"strconv"
)

const (
	MinTickSpacing = 50.0 // minimum pixels between x ticks
	DigitWidth     = 20.0 // estimated pixel width of one label digit
	LabelDigits    = 3    // estimated digits per x label
	YTickCount     = 6
)

// Tick is a labelled position along an axis. Grid lines are drawn at the tick pixels.
type Tick struct {
	Value float64
	Pixel float64
	Label string
}

// MaxXTicks returns the number of x ticks that fit in the available width, at least one.
func MaxXTicks(width float64) int {
	n := int(math.Min(math.Floor(width/MinTickSpacing), math.Floor(width/(DigitWidth*LabelDigits))))
	if n < 1 {
		n = 1
	}
	return n
}

// XStep returns the smallest integral step between x ticks for a domain span such that at most maxTicks ticks are emitted. Beyond the integer precision of float64 the step grows by the smallest relative amount that still changes it.
func XStep(span float64, maxTicks int) float64 {
	if maxTicks < 1 {
		maxTicks = 1
	}
	if !isFinite(span) || span <= 0.0 {
		return 1.0
	}
	step := math.Max(1.0, math.Floor(span/float64(maxTicks))+1.0)
	for maxTicks < tickCount(span, step) {
		step = math.Max(step+1.0, step*(1.0+1e-9))
	}
	return step
}

func tickCount(span, step float64) int {
	return int(math.Floor(span/step+1e-9)) + 1
}

// XTicks returns the x axis ticks from the start of the domain in integral steps.
func XTicks(m Mapper) []Tick {
	if m.X.Degenerate() || !isFinite(m.X.Span()) {
		return []Tick{newXTick(m, m.X.Center())}
	}

	step := XStep(m.X.Span(), MaxXTicks(m.PlotWidth()))
	n := tickCount(m.X.Span(), step)
	ticks := make([]Tick, 0, n)
	for i := 0; i < n; i++ {
		ticks = append(ticks, newXTick(m, m.X.Min+float64(i)*step))
	}
	return ticks
}

func newXTick(m Mapper, x float64) Tick {
	return Tick{
		Value: x,
		Pixel: m.XToPixel(x),
		Label: strconv.FormatFloat(x, 'g', -1, 64),
	}
}

// YTicks returns YTickCount ticks evenly spanning the y range, inclusive.
func YTicks(m Mapper) []Tick {
	ticks := make([]Tick, YTickCount)
	for i := range ticks {
		y := m.Y.Min + float64(i)*m.Y.Span()/float64(YTickCount-1)
		if i == YTickCount-1 {
			y = m.Y.Max
		}
		ticks[i] = Tick{
			Value: y,
			Pixel: m.YToPixel(y),
			Label: strconv.FormatFloat(y, 'f', 1, 64),
		}
	}
	return ticks
}
