// Package colorfilter implements composable color filters and a bulk
// engine that applies them to pixel buffers.
//
// # Overview
//
// A ColorFilter maps one unpremultiplied RGBA8 color to another. Filters
// are created by New* constructors, validated once, and immutable after
// that, so a single filter can be evaluated from any number of goroutines.
//
// # Quick Start
//
//	import "github.com/gogpu/colorfilter"
//
//	sepia := colorfilter.NewColorMatrixFilterFrom(colorfilter.SepiaMatrix())
//	dim := colorfilter.NewLightingFilter(colorfilter.RGBA8{200, 200, 200, 255}, colorfilter.Transparent)
//
//	// dim runs first, then sepia
//	f, err := colorfilter.NewComposeFilter(sepia, dim)
//	if err != nil {
//		return err
//	}
//	out := f.Apply(colorfilter.RGBA8{R: 40, G: 120, B: 200, A: 255})
//
// # Filters
//
//   - ModeFilter: blends a constant color with one of 29 blend modes
//   - LightingFilter: per-channel multiply and add
//   - ComposeFilter: outer(inner(c)); Chain builds longer pipelines
//   - ColorCubeFilter: 3D lookup table with trilinear interpolation
//   - ColorMatrixFilter: 4x5 affine matrix, with presets in ColorMatrix
//   - LumaColorFilter: luminance to alpha
//   - TableFilter: per-channel 256-entry lookup tables
//   - GammaFilter: sRGB and linear transfer conversion
//
// # Errors
//
// Constructors report bad arguments as *InvalidArgumentError values that
// match ErrInvalidArgument with errors.Is. Apply never fails.
//
// # Bulk evaluation
//
// Engine applies a filter to a Pixmap, an image.Image, or a raw byte buffer
// in either straight or premultiplied layout, splitting rows into bands on
// a work-stealing pool.
//
// # Logging
//
// The package is silent by default. Call SetLogger to receive log/slog
// records.
package colorfilter
