package csv2graph

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/tdewolff/test"
)

const exampleCSV = "x,a,b\n1,10,5\n2,20,6\n3,15,7\n4,25,8\n5,30,9\n"

func testConfig(t *testing.T, out string) Config {
	dir := t.TempDir()
	data := filepath.Join(dir, "data.csv")
	test.Error(t, os.WriteFile(data, []byte(exampleCSV), 0644))

	cfg := DefaultConfig()
	cfg.Data = data
	cfg.Columns = []string{"a", "b"}
	cfg.XInData = true
	cfg.Out = filepath.Join(dir, out)
	return cfg
}

func readPNG(t *testing.T, filename string) image.Image {
	b, err := os.ReadFile(filename)
	test.Error(t, err)
	img, err := png.Decode(bytes.NewReader(b))
	test.Error(t, err)
	return img
}

func dark(img image.Image, x, y int) bool {
	r, g, b, _ := img.At(x, y).RGBA()
	return r < 0x4000 && g < 0x4000 && b < 0x4000
}

func white(img image.Image, x, y int) bool {
	r, g, b, _ := img.At(x, y).RGBA()
	return 0xf000 < r && 0xf000 < g && 0xf000 < b
}

func TestRun(t *testing.T) {
	cfg := testConfig(t, "plot.png")
	log, hook := logtest.NewNullLogger()
	test.Error(t, Run(cfg, log))
	test.T(t, len(hook.Entries), 0)

	img := readPNG(t, cfg.Out)
	test.T(t, img.Bounds().Dx(), DefaultWidth)
	test.T(t, img.Bounds().Dy(), DefaultHeight)
	test.That(t, white(img, 3, 3), "background")
	test.That(t, white(img, 30, 330), "left margin")
	test.That(t, dark(img, 300, 451), "x axis")
	test.That(t, dark(img, 60, 300), "y axis")
}

func TestRunSize(t *testing.T) {
	cfg := testConfig(t, "plot.png")
	cfg.Width, cfg.Height = 400, 300
	cfg.Bound = UpperBound(3.0)
	cfg.Skip = 2
	xscale := Range{10.0, 20.0}
	cfg.XScale = &xscale
	test.Error(t, Run(cfg, nil))

	img := readPNG(t, cfg.Out)
	test.T(t, img.Bounds().Dx(), 400)
	test.T(t, img.Bounds().Dy(), 300)
}

func TestPrepare(t *testing.T) {
	xscale := Range{0.0, 100.0}
	var tts = []struct {
		name   string
		bound  Bound
		skip   int
		xscale *Range
		xs     []float64
		domain Range
	}{
		{"all", NoBound, 1, nil, []float64{1, 2, 3, 4, 5}, Range{0.0, 5.0}},
		{"skip", NoBound, 2, nil, []float64{1, 3, 5}, Range{0.0, 5.0}},
		{"rescale", NoBound, 1, &xscale, []float64{20, 40, 60, 80, 100}, xscale},
		{"rescale range", UpperBound(4.0), 1, &xscale, []float64{25, 50, 75, 100}, xscale},
		{"rescale skipped max", UpperBound(4.0), 2, &xscale, []float64{25, 75}, xscale},
		{"rescale skipped last", NoBound, 3, &xscale, []float64{20, 80}, xscale},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Bound = tt.bound
			cfg.Skip = tt.skip
			cfg.XScale = tt.xscale
			tab, domain := prepare(exampleTable(t), cfg)
			test.Floats(t, xs(tab), tt.xs)
			test.T(t, domain, tt.domain)
		})
	}
}

func TestRunDebugLog(t *testing.T) {
	cfg := testConfig(t, "plot.png")
	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	test.Error(t, Run(cfg, log))
	test.That(t, 0 < len(hook.Entries))
	test.String(t, hook.Entries[0].Message, "table loaded")
	test.T(t, hook.Entries[0].Data["x"], interface{}("x"))
}

func TestRunNonFiniteCells(t *testing.T) {
	cfg := testConfig(t, "plot.png")
	test.Error(t, os.WriteFile(cfg.Data, []byte("x,a,b\n1,10,5\nnan,NaN,6\n3,inf,7\n"), 0644))
	log, hook := logtest.NewNullLogger()
	test.Error(t, Run(cfg, log))
	test.T(t, len(hook.Entries), 0)
	readPNG(t, cfg.Out)
}

func TestRunMissingColumn(t *testing.T) {
	cfg := testConfig(t, "plot.png")
	cfg.Columns = []string{"a", "nope"}
	log, hook := logtest.NewNullLogger()
	test.Error(t, Run(cfg, log))

	test.T(t, len(hook.Entries), 1)
	test.T(t, hook.LastEntry().Level, logrus.WarnLevel)
	test.T(t, hook.LastEntry().Data["column"], interface{}("nope"))
	_, err := os.Stat(cfg.Out)
	test.Error(t, err)
}

func TestRunEmpty(t *testing.T) {
	cfg := testConfig(t, "plot.png")
	cfg.Bound = UpperBound(0.0)
	log, hook := logtest.NewNullLogger()
	test.Error(t, Run(cfg, log))
	test.T(t, len(hook.Entries), 1)

	img := readPNG(t, cfg.Out)
	test.T(t, img.Bounds().Dx(), DefaultWidth)
}

func TestRunErrors(t *testing.T) {
	cfg := testConfig(t, "plot.png")
	cfg.Skip = 0
	test.That(t, Run(cfg, nil) != nil)

	cfg = testConfig(t, "plot.bmp")
	test.That(t, errors.Is(Run(cfg, nil), ErrUnknownFormat))

	cfg = testConfig(t, "plot.png")
	cfg.Data = filepath.Join(t.TempDir(), "missing.csv")
	test.That(t, errors.Is(Run(cfg, nil), os.ErrNotExist))

	cfg = testConfig(t, "plot.png")
	cfg.Bound = UpperBound(math.NaN())
	test.That(t, errors.Is(Run(cfg, nil), ErrBadRange))

	cfg = testConfig(t, "plot.png")
	cfg.Style.Font = filepath.Join(t.TempDir(), "missing.ttf")
	test.That(t, Run(cfg, nil) != nil)
}

func TestRunSVG(t *testing.T) {
	cfg := testConfig(t, "plot.svg")
	test.Error(t, Run(cfg, nil))

	b, err := os.ReadFile(cfg.Out)
	test.Error(t, err)
	test.That(t, bytes.Contains(b, []byte("<svg")))
}

func TestRunBackends(t *testing.T) {
	for _, backend := range []Backend{GonumBackend, GoChartBackend} {
		t.Run(string(backend), func(t *testing.T) {
			cfg := testConfig(t, "plot.png")
			cfg.Style.Backend = backend
			test.Error(t, Run(cfg, nil))

			img := readPNG(t, cfg.Out)
			test.That(t, DefaultWidth-2 <= img.Bounds().Dx() && img.Bounds().Dx() <= DefaultWidth+2)
			test.That(t, DefaultHeight-2 <= img.Bounds().Dy() && img.Bounds().Dy() <= DefaultHeight+2)
			test.That(t, white(img, 2, 2), "background")
		})
	}
}

func TestRunBackendsEmpty(t *testing.T) {
	for _, backend := range []Backend{GonumBackend, GoChartBackend} {
		t.Run(string(backend), func(t *testing.T) {
			cfg := testConfig(t, "plot.png")
			cfg.Columns = []string{"nope"}
			cfg.Style.Backend = backend
			test.Error(t, Run(cfg, logrus.New()))
			_, err := os.Stat(cfg.Out)
			test.Error(t, err)
		})
	}
}
