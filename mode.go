package colorfilter

import "github.com/gogpu/colorfilter/internal/blend"

// ModeFilter blends a constant color into every pixel.
//
// The constant color is the blend source and the pixel is the destination;
// both are premultiplied, blended, and the result unpremultiplied.
//
// Premultiplication happens at 8 bits, so a constant with a low alpha loses
// color precision: {200, 100, 50, 3} premultiplies to {2, 1, 1, 3} and comes
// back out of BlendModeSrc as {170, 85, 85, 3}.
type ModeFilter struct {
	color RGBA8
	mode  BlendMode
	src   PremulRGBA8
	fn    blend.Func
}

// NewModeFilter returns a filter that blends c into its input with mode.
// Undefined modes behave as BlendModeSrcOver.
func NewModeFilter(c RGBA8, mode BlendMode) *ModeFilter {
	return &ModeFilter{
		color: c,
		mode:  mode,
		src:   c.Premultiply(),
		fn:    blend.FuncFor(blend.Mode(mode)),
	}
}

// Color returns the constant color.
func (f *ModeFilter) Color() RGBA8 { return f.color }

// Mode returns the blend mode.
func (f *ModeFilter) Mode() BlendMode { return f.mode }

func (f *ModeFilter) Kind() Kind { return KindMode }

func (f *ModeFilter) Apply(c RGBA8) RGBA8 {
	d := c.Premultiply()
	s := f.src
	r, g, b, a := f.fn(s.R, s.G, s.B, s.A, d.R, d.G, d.B, d.A)
	return PremulRGBA8{R: r, G: g, B: b, A: a}.Unpremultiply()
}

func (*ModeFilter) sealed() {}
