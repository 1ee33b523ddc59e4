// Command cfbench applies a color filter to a synthetic image repeatedly
// and reports throughput. It is meant for profiling the filter engine.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/profile"

	"github.com/gogpu/colorfilter"
	"github.com/gogpu/colorfilter/filterdef"
)

func main() {
	var (
		filterPath = flag.String("filter", "", "YAML filter definition (default: sepia after lighting)")
		width      = flag.Int("width", 1920, "image width")
		height     = flag.Int("height", 1080, "image height")
		iterations = flag.Int("iterations", 50, "number of passes over the image")
		workers    = flag.Int("workers", 0, "worker goroutines (0 = GOMAXPROCS, 1 = inline)")
		profMode   = flag.String("profile", "", "write a profile to the current directory: cpu or mem")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	colorfilter.SetLogger(logger)

	if err := run(logger, *filterPath, *width, *height, *iterations, *workers, *profMode); err != nil {
		logger.Error("cfbench failed", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, filterPath string, width, height, iterations, workers int, profMode string) error {
	if width <= 0 || height <= 0 || iterations <= 0 {
		return fmt.Errorf("width, height and iterations must be positive")
	}

	f, err := loadFilter(filterPath)
	if err != nil {
		return err
	}

	switch profMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q", profMode)
	}

	e := colorfilter.NewEngine(colorfilter.WithWorkers(workers))
	defer e.Close()

	pm := colorfilter.NewPixmap(width, height)
	fillGradient(pm)

	start := time.Now()
	for range iterations {
		e.ApplyPixmap(f, pm)
	}
	elapsed := time.Since(start)

	pixels := float64(width) * float64(height) * float64(iterations)
	logger.Info("done",
		"filter", f.Kind(),
		"size", fmt.Sprintf("%dx%d", width, height),
		"iterations", iterations,
		"workers", e.Workers(),
		"elapsed", elapsed,
		"mpixPerSec", fmt.Sprintf("%.1f", pixels/elapsed.Seconds()/1e6))
	return nil
}

func loadFilter(path string) (colorfilter.ColorFilter, error) {
	if path == "" {
		return colorfilter.Chain(
			colorfilter.NewLightingFilter(colorfilter.RGBA8{R: 240, G: 230, B: 220, A: 255}, colorfilter.RGBA8{R: 8, G: 4}),
			colorfilter.NewColorMatrixFilterFrom(colorfilter.SepiaMatrix()),
		)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()
	return filterdef.Decode(file)
}

func fillGradient(pm *colorfilter.Pixmap) {
	w, h := pm.Width(), pm.Height()
	for y := range h {
		for x := range w {
			pm.SetPixel(x, y, colorfilter.RGBA8{
				R: uint8(x * 255 / max(w-1, 1)),
				G: uint8(y * 255 / max(h-1, 1)),
				B: uint8((x + y) & 0xff),
				A: 255,
			})
		}
	}
}
