package colorfilter

import (
	"log/slog"

	"github.com/gogpu/colorfilter/internal/parallel"
)

// EngineOption configures an Engine during creation.
//
// Example:
//
//	// Defaults: GOMAXPROCS workers, 16-row bands
//	e := colorfilter.NewEngine()
//
//	// Fixed worker count and taller bands
//	e := colorfilter.NewEngine(colorfilter.WithWorkers(4), colorfilter.WithBandHeight(64))
type EngineOption func(*engineOptions)

// DefaultParallelThreshold is the pixel count below which an Engine runs
// on the calling goroutine.
const DefaultParallelThreshold = 64 * 64

type engineOptions struct {
	workers           int
	bandHeight        int
	parallelThreshold int
	logger            *slog.Logger
}

func defaultEngineOptions() engineOptions {
	return engineOptions{
		workers:           0, // GOMAXPROCS
		bandHeight:        parallel.DefaultBandHeight,
		parallelThreshold: DefaultParallelThreshold,
	}
}

// WithWorkers sets the number of worker goroutines. Zero or a negative
// value uses GOMAXPROCS; 1 disables the pool and runs every call inline.
func WithWorkers(n int) EngineOption {
	return func(o *engineOptions) {
		o.workers = n
	}
}

// WithBandHeight sets how many rows form one unit of parallel work.
// Non-positive values keep the default.
func WithBandHeight(rows int) EngineOption {
	return func(o *engineOptions) {
		if rows > 0 {
			o.bandHeight = rows
		}
	}
}

// WithParallelThreshold sets the pixel count below which buffers are
// filtered on the caller without touching the pool. Negative values are
// treated as zero, which parallelizes everything with more than one band.
func WithParallelThreshold(pixels int) EngineOption {
	return func(o *engineOptions) {
		o.parallelThreshold = max(pixels, 0)
	}
}

// WithLogger sets the logger used by this engine instead of the package
// logger returned by Logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(o *engineOptions) {
		o.logger = l
	}
}
