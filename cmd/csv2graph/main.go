package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/csv2graph"
)

func main() {
	var data, bound, columns, xscale, sheet, title, backend, font, config string
	var verbose bool
	size := fmt.Sprintf("%dx%d", csv2graph.DefaultWidth, csv2graph.DefaultHeight)
	skip := csv2graph.DefaultSkip
	xdata := "false"
	out := csv2graph.DefaultOut

	f := argp.New("Plot columns of a CSV, TSV or XLSX file as lines with point markers")
	f.AddOpt(&data, "d", "data", "Input data file (.csv, .tsv or .xlsx)")
	f.AddOpt(&bound, "r", "range", "Upper bound of the x values to plot")
	f.AddOpt(&columns, "c", "columns", "Comma-separated list of columns to plot")
	f.AddOpt(&size, "s", "size", "Image size as WIDTHxHEIGHT")
	f.AddOpt(&skip, "", "skip", "Plot every n-th row")
	f.AddOpt(&xdata, "", "xdata", "First column holds the x values (true|false), otherwise the row index is used")
	f.AddOpt(&out, "o", "out", "Output file, the format follows from the extension")
	f.AddOpt(&xscale, "", "xscale", "Rescale the x values linearly onto START,END")
	f.AddOpt(&title, "t", "title", "Plot title (default \""+csv2graph.DefaultTitle+"\")")
	f.AddOpt(&backend, "b", "backend", "Drawing backend: canvas, gonum or gochart")
	f.AddOpt(&sheet, "", "sheet", "Sheet name for XLSX files, defaults to the first sheet")
	f.AddOpt(&font, "", "font", "TTF or OTF font file, defaults to Latin Modern Roman")
	f.AddOpt(&config, "", "config", "YAML file with style settings")
	f.AddOpt(&verbose, "v", "verbose", "Verbose logging")
	f.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if data == "" || columns == "" {
		f.PrintHelp()
		os.Exit(1)
	}

	cfg, err := buildConfig(options{
		data:    data,
		bound:   bound,
		columns: columns,
		size:    size,
		skip:    skip,
		xdata:   xdata,
		out:     out,
		xscale:  xscale,
		sheet:   sheet,
		title:   title,
		backend: backend,
		font:    font,
		config:  config,
	})
	if err == nil {
		err = csv2graph.Run(cfg, log)
	}
	if err != nil {
		log.WithError(err).Error("failed to plot")
		os.Exit(1)
	}
	fmt.Printf("Graph saved to %s\n", cfg.Out)
}

type options struct {
	data, bound, columns, size string
	skip                       int
	xdata, out, xscale, sheet  string
	title, backend, font       string
	config                     string
}

// buildConfig applies the style file and then the flags on top of the defaults.
func buildConfig(o options) (csv2graph.Config, error) {
	cfg := csv2graph.DefaultConfig()
	if o.config != "" {
		style, err := csv2graph.LoadStyle(o.config, cfg.Style)
		if err != nil {
			return cfg, err
		}
		cfg.Style = style
	}

	var err error
	cfg.Data = o.data
	cfg.Sheet = o.sheet
	cfg.Columns = csv2graph.ParseColumns(o.columns)
	cfg.Skip = o.skip
	cfg.Out = o.out
	if cfg.Width, cfg.Height, err = csv2graph.ParseSize(o.size); err != nil {
		return cfg, err
	}
	if cfg.Bound, err = csv2graph.ParseBound(o.bound); err != nil {
		return cfg, err
	}
	if cfg.XInData, err = strconv.ParseBool(o.xdata); err != nil {
		return cfg, fmt.Errorf("xdata must be true or false: %w", err)
	}
	if o.xscale != "" {
		r, err := csv2graph.ParseXScale(o.xscale)
		if err != nil {
			return cfg, err
		}
		cfg.XScale = &r
	}
	if o.title != "" {
		cfg.Style.Title = o.title
	}
	if o.font != "" {
		cfg.Style.Font = o.font
	}
	if o.backend != "" {
		if cfg.Style.Backend, err = csv2graph.ParseBackend(o.backend); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}
