package csv2graph

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	paletteSaturation = 0.7
	paletteValue      = 0.9
)

// Palette returns n colors with evenly spaced hues.
func Palette(n int) []color.RGBA {
	cols := make([]color.RGBA, n)
	for i := range cols {
		h := 360.0 * float64(i) / float64(n)
		r, g, b := colorful.Hsv(h, paletteSaturation, paletteValue).RGB255()
		cols[i] = color.RGBA{r, g, b, 255}
	}
	return cols
}

// ParseColor parses a hex color such as #c8c8c8.
func ParseColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}, nil
}
