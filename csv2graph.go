// Package csv2graph turns a CSV, TSV or XLSX table into a line-and-scatter plot. It maps data values to pixels, lays out the axis ticks and the legend, and draws the result with the tdewolff/canvas renderers, gonum/plot or go-chart.
package csv2graph

import (
	"github.com/sirupsen/logrus"
)

// Run loads the data file of cfg, filters and optionally rescales it, and writes the plot to cfg.Out.
func Run(cfg Config, log logrus.FieldLogger) error {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	t, err := LoadFile(cfg.Data, LoadOptions{XInData: cfg.XInData, Sheet: cfg.Sheet})
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"file": cfg.Data, "rows": t.Len(), "x": t.XName()}).Debug("table loaded")

	t, domain := prepare(t, cfg)
	log.WithFields(logrus.Fields{"rows": t.Len(), "domain": domain.String()}).Debug("table filtered")
	if t.Len() == 0 {
		log.WithField("file", cfg.Data).Warn("no rows left to plot")
	}

	p := NewPlot(t, domain, cfg.Columns, cfg.Frame(), cfg.Style, log)
	if err := p.Save(cfg.Out); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"file": cfg.Out, "backend": string(p.Style.Backend)}).Debug("plot written")
	return nil
}

// prepare filters the table by the bound and stride of cfg and rescales the x values if requested. It returns the table to plot and its x domain.
func prepare(t *Table, cfg Config) (*Table, Range) {
	// the rescale maximum is taken before thinning so that skipped rows still count
	bounded := Bounded(t, cfg.Bound)
	t, xmax := Filter(bounded, cfg.Bound, cfg.Skip)
	if cfg.XScale == nil {
		return t, NewRange(0.0, xmax)
	}
	dataMax, _ := MaxX(bounded)
	return RescaleX(t, dataMax, *cfg.XScale), *cfg.XScale
}
