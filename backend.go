package csv2graph

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
)

// Backend selects the library that draws the plot.
type Backend string

const (
	CanvasBackend  Backend = "canvas"
	GonumBackend   Backend = "gonum"
	GoChartBackend Backend = "gochart"
)

var (
	ErrUnknownBackend = errors.New("unknown backend")
	ErrUnknownFormat  = errors.New("unknown output format")
)

// ParseBackend parses a backend name, the empty string selects the canvas backend.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case "":
		return CanvasBackend, nil
	case CanvasBackend, GonumBackend, GoChartBackend:
		return b, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBackend, s)
}

// OutputFormat returns the image format for filename by its extension.
func OutputFormat(filename string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".png", ".gif", ".svg", ".pdf":
		return ext[1:], nil
	case ".jpg", ".jpeg":
		return "jpeg", nil
	case ".tif", ".tiff":
		return "tiff", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

// Render draws the plot with the backend of its style and returns the canvas together with the resolution at which one canvas unit is one pixel.
func (p *Plot) Render() (*canvas.Canvas, canvas.Resolution, error) {
	backend, err := ParseBackend(string(p.Style.Backend))
	if err != nil {
		return nil, 0, err
	}

	switch backend {
	case GonumBackend:
		c, err := p.GonumCanvas()
		return c, canvas.DPMM(1.0/mmPerPx), err
	case GoChartBackend:
		font, err := LoadChartFont(p.Style.Font)
		if err != nil {
			return nil, 0, err
		}
		c, err := p.GoChartCanvas(font)
		return c, canvas.DPMM(1.0/mmPerPx), err
	}

	family, err := LoadFontFamily(p.Style.Font)
	if err != nil {
		return nil, 0, err
	}
	return p.Canvas(family), canvas.DPMM(1.0), nil
}

// Save renders the plot and writes it to filename, the format follows from the extension.
func (p *Plot) Save(filename string) error {
	if _, err := OutputFormat(filename); err != nil {
		return err
	}
	c, res, err := p.Render()
	if err != nil {
		return err
	}
	if err := renderers.Write(filename, c, res); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}
