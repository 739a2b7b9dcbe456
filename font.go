package csv2graph

import (
	"fmt"

	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/tdewolff/canvas"
)

// LoadFontFamily loads the font used for labels. An empty filename selects the embedded Latin Modern Roman.
func LoadFontFamily(filename string) (*canvas.FontFamily, error) {
	if filename == "" {
		family := canvas.NewFontFamily("latin-modern")
		if err := family.LoadFont(lmroman10regular.TTF, 0, canvas.FontRegular); err != nil {
			return nil, fmt.Errorf("load embedded font: %w", err)
		}
		return family, nil
	}

	family := canvas.NewFontFamily(filename)
	if err := family.LoadFontFile(filename, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("load font %s: %w", filename, err)
	}
	return family, nil
}
