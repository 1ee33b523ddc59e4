package colorfilter

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"sync"

	"golang.org/x/image/draw"

	"github.com/gogpu/colorfilter/internal/parallel"
)

// PixelFormat describes the byte layout of a raw pixel buffer.
type PixelFormat uint8

const (
	// PixelFormatRGBA is unpremultiplied R, G, B, A bytes (image.NRGBA layout).
	PixelFormatRGBA PixelFormat = iota
	// PixelFormatRGBAPremul is premultiplied R, G, B, A bytes (image.RGBA
	// layout). Pixels are unpremultiplied before filtering and
	// premultiplied again afterwards.
	PixelFormatRGBAPremul
)

func (f PixelFormat) String() string {
	switch f {
	case PixelFormatRGBA:
		return "rgba"
	case PixelFormatRGBAPremul:
		return "rgba-premul"
	default:
		return fmt.Sprintf("PixelFormat(%d)", uint8(f))
	}
}

// Engine applies filters to whole pixel buffers. Rows are split into bands
// that run on a shared worker pool; the output is identical to calling
// Apply on every pixel in order.
//
// An Engine is safe for concurrent use. Close releases its goroutines.
type Engine struct {
	opts engineOptions
	pool *parallel.WorkerPool
	log  *slog.Logger

	closeOnce sync.Once
}

// NewEngine creates an engine. With more than one worker the pool is
// started immediately.
func NewEngine(opts ...EngineOption) *Engine {
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{opts: o, log: o.logger}
	if e.log == nil {
		e.log = Logger()
	}
	if o.workers != 1 {
		e.pool = parallel.NewWorkerPool(o.workers)
		e.log.Info("colorfilter: engine started",
			"workers", e.pool.Workers(),
			"bandHeight", o.bandHeight,
			"parallelThreshold", o.parallelThreshold)
	}
	return e
}

// Workers reports how many goroutines the engine uses; 1 when it runs inline.
func (e *Engine) Workers() int {
	if e.pool == nil {
		return 1
	}
	return e.pool.Workers()
}

// Close stops the worker pool. It is idempotent; after Close every call
// runs on the caller's goroutine.
func (e *Engine) Close() {
	e.closeOnce.Do(func() {
		if e.pool != nil {
			e.pool.Close()
			e.log.Info("colorfilter: engine closed")
		}
	})
}

// ApplyPixmap filters pm in place.
func (e *Engine) ApplyPixmap(f ColorFilter, pm *Pixmap) {
	if pm == nil {
		return
	}
	e.run(f, pm.data, pm.Stride(), pm.width, pm.height, PixelFormatRGBA)
}

// ApplyImage returns a filtered copy of img. The source may be of any image
// type; it is converted with golang.org/x/image/draw first. The result has
// the same bounds as img.
func (e *Engine) ApplyImage(f ColorFilter, img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, img, b.Min, draw.Src)
	e.run(f, dst.Pix, dst.Stride, b.Dx(), b.Dy(), PixelFormatRGBA)
	return dst
}

// ApplyPixels filters a raw buffer of w x h pixels in place. stride is the
// distance in bytes between rows and must be at least 4*w.
func (e *Engine) ApplyPixels(f ColorFilter, pix []byte, stride, w, h int, format PixelFormat) error {
	const op = "Engine.ApplyPixels"
	switch {
	case w < 0 || h < 0:
		return invalidArgument(op, "size", fmt.Sprintf("must not be negative (got %dx%d)", w, h))
	case format != PixelFormatRGBA && format != PixelFormatRGBAPremul:
		return invalidArgument(op, "format", "unknown pixel format "+format.String())
	case w == 0 || h == 0:
		return nil
	case stride < 4*w:
		return invalidArgument(op, "stride", fmt.Sprintf("must be at least %d (got %d)", 4*w, stride))
	}
	if need := stride*(h-1) + 4*w; len(pix) < need {
		return invalidArgument(op, "pix", fmt.Sprintf("must hold at least %d bytes (got %d)", need, len(pix)))
	}
	e.run(f, pix, stride, w, h, format)
	return nil
}

func (e *Engine) run(f ColorFilter, pix []byte, stride, w, h int, format PixelFormat) {
	if isNil(f) || w == 0 || h == 0 {
		return
	}

	band := func(b parallel.Band) {
		for y := b.Y0; y < b.Y1; y++ {
			row := pix[y*stride : y*stride+4*w]
			filterRow(f, row, format)
		}
	}

	pool := e.pool
	if w*h < e.opts.parallelThreshold || (pool != nil && !pool.IsRunning()) {
		pool = nil
	}
	if pool != nil && e.log.Enabled(context.Background(), slog.LevelDebug) {
		e.log.Debug("colorfilter: scheduling bands",
			"kind", f.Kind(),
			"width", w, "height", h,
			"bands", (h+e.opts.bandHeight-1)/e.opts.bandHeight)
	}
	parallel.ForEachBand(pool, h, e.opts.bandHeight, band)
}

func filterRow(f ColorFilter, row []byte, format PixelFormat) {
	for i := 0; i+4 <= len(row); i += 4 {
		px := row[i : i+4 : i+4]
		var c RGBA8
		if format == PixelFormatRGBAPremul {
			c = PremulRGBA8{R: px[0], G: px[1], B: px[2], A: px[3]}.Unpremultiply()
		} else {
			c = RGBA8{R: px[0], G: px[1], B: px[2], A: px[3]}
		}

		out := f.Apply(c)

		if format == PixelFormatRGBAPremul {
			p := out.Premultiply()
			px[0], px[1], px[2], px[3] = p.R, p.G, p.B, p.A
		} else {
			px[0], px[1], px[2], px[3] = out.R, out.G, out.B, out.A
		}
	}
}
