package csv2graph

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default values for optional settings.
const (
	DefaultWidth       = 768
	DefaultHeight      = 512
	DefaultSkip        = 1
	DefaultOut         = "scatter_plot.png"
	DefaultTitle       = "Scatter Plot from CSV"
	DefaultMargin      = 60.0
	DefaultFontSize    = 12.0
	DefaultTitleSize   = 16.0
	DefaultPointRadius = 2.0
	DefaultLineWidth   = 1.0
	DefaultAxisWidth   = 2.0
	DefaultBackground  = "#ffffff"
	DefaultGridColor   = "#c8c8c8"
)

var (
	ErrBadSize   = errors.New("size must be WIDTHxHEIGHT")
	ErrBadXScale = errors.New("xscale must be START,END with finite END > START")
	ErrBadRange  = errors.New("range must be a finite number")
)

// Style holds the visual settings, it can be loaded from a YAML file. Sizes are in pixels.
type Style struct {
	Title       string  `yaml:"title"`
	Margin      float64 `yaml:"margin"`
	FontSize    float64 `yaml:"font_size"`
	TitleSize   float64 `yaml:"title_size"`
	PointRadius float64 `yaml:"point_radius"`
	LineWidth   float64 `yaml:"line_width"`
	AxisWidth   float64 `yaml:"axis_width"`
	Background  string  `yaml:"background"`
	GridColor   string  `yaml:"grid_color"`
	Font        string  `yaml:"font"`
	Backend     Backend `yaml:"backend"`
}

// DefaultStyle returns the default style.
func DefaultStyle() Style {
	return Style{
		Title:       DefaultTitle,
		Margin:      DefaultMargin,
		FontSize:    DefaultFontSize,
		TitleSize:   DefaultTitleSize,
		PointRadius: DefaultPointRadius,
		LineWidth:   DefaultLineWidth,
		AxisWidth:   DefaultAxisWidth,
		Background:  DefaultBackground,
		GridColor:   DefaultGridColor,
		Backend:     CanvasBackend,
	}
}

// LoadStyle reads a YAML style file on top of base. Keys missing from the file keep the value of base. Environment variables of the form ${VAR} are expanded.
func LoadStyle(filename string, base Style) (Style, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Style{}, fmt.Errorf("read style file: %w", err)
	}

	style := base
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &style); err != nil {
		return Style{}, fmt.Errorf("parse style yaml: %w", err)
	}
	return style, nil
}

func (s Style) validate() error {
	var errs []error
	if s.Margin < 0.0 {
		errs = append(errs, fmt.Errorf("margin must be >= 0, got %g", s.Margin))
	}
	if s.FontSize <= 0.0 || s.TitleSize <= 0.0 {
		errs = append(errs, errors.New("font_size and title_size must be > 0"))
	}
	if s.PointRadius < 0.0 || s.LineWidth < 0.0 || s.AxisWidth < 0.0 {
		errs = append(errs, errors.New("point_radius, line_width and axis_width must be >= 0"))
	}
	if _, err := ParseColor(s.Background); err != nil {
		errs = append(errs, fmt.Errorf("background: %w", err))
	}
	if _, err := ParseColor(s.GridColor); err != nil {
		errs = append(errs, fmt.Errorf("grid_color: %w", err))
	}
	if _, err := ParseBackend(string(s.Backend)); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Config is the complete set of settings for one run.
type Config struct {
	Data    string
	Sheet   string
	Columns []string
	XInData bool
	Bound   Bound
	Skip    int
	XScale  *Range
	Width   int
	Height  int
	Out     string
	Style   Style
}

// DefaultConfig returns a configuration with all optional settings at their defaults.
func DefaultConfig() Config {
	return Config{
		Skip:   DefaultSkip,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Out:    DefaultOut,
		Style:  DefaultStyle(),
	}
}

// Validate checks that all required fields are set and values are valid.
func (cfg Config) Validate() error {
	var errs []error
	if cfg.Data == "" {
		errs = append(errs, errors.New("data file is required"))
	}
	if len(cfg.Columns) == 0 {
		errs = append(errs, errors.New("at least one column is required"))
	}
	if cfg.Skip < 1 {
		errs = append(errs, fmt.Errorf("skip must be >= 1, got %d", cfg.Skip))
	}
	if cfg.Width < 1 || cfg.Height < 1 {
		errs = append(errs, fmt.Errorf("%w: got %dx%d", ErrBadSize, cfg.Width, cfg.Height))
	}
	if cfg.XScale != nil && (!isFinite(cfg.XScale.Min) || !isFinite(cfg.XScale.Max) || cfg.XScale.Max <= cfg.XScale.Min) {
		errs = append(errs, ErrBadXScale)
	}
	if cfg.Bound.Set && !isFinite(cfg.Bound.Max) {
		errs = append(errs, fmt.Errorf("%w: got %g", ErrBadRange, cfg.Bound.Max))
	}
	if cfg.Out == "" {
		errs = append(errs, errors.New("output file is required"))
	}
	if err := cfg.Style.validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Frame returns the image frame.
func (cfg Config) Frame() Frame {
	return Frame{
		Width:  float64(cfg.Width),
		Height: float64(cfg.Height),
		Margin: cfg.Style.Margin,
	}
}

// ParseSize parses WIDTHxHEIGHT, e.g. 768x512.
func ParseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadSize, s)
	}
	w, errW := strconv.Atoi(strings.TrimSpace(ws))
	h, errH := strconv.Atoi(strings.TrimSpace(hs))
	if errW != nil || errH != nil || w < 1 || h < 1 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadSize, s)
	}
	return w, h, nil
}

// ParseXScale parses START,END into the target x interval.
func ParseXScale(s string) (Range, error) {
	ss, es, ok := strings.Cut(s, ",")
	if !ok {
		return Range{}, fmt.Errorf("%w: %q", ErrBadXScale, s)
	}
	start, errS := strconv.ParseFloat(strings.TrimSpace(ss), 64)
	end, errE := strconv.ParseFloat(strings.TrimSpace(es), 64)
	if errS != nil || errE != nil || !isFinite(start) || !isFinite(end) || end <= start {
		return Range{}, fmt.Errorf("%w: %q", ErrBadXScale, s)
	}
	return Range{start, end}, nil
}

// ParseBound parses an x upper bound, an empty string is no bound.
func ParseBound(s string) (Bound, error) {
	if strings.TrimSpace(s) == "" {
		return NoBound, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !isFinite(f) {
		return NoBound, fmt.Errorf("%w: %q", ErrBadRange, s)
	}
	return UpperBound(f), nil
}

// ParseColumns splits a comma-separated list of column names, empty names are dropped.
func ParseColumns(s string) []string {
	columns := []string{}
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			columns = append(columns, name)
		}
	}
	return columns
}
