package colorfilter

import "github.com/gogpu/colorfilter/internal/mathx"

// LightingFilter multiplies the color channels by mul and then adds add:
//
//	c' = clamp(c*mul.c/255 + add.c, 0, 255)   for c in R, G, B
//
// Alpha passes through unchanged, as do the alpha components of mul and add.
type LightingFilter struct {
	mul, add RGBA8
}

// NewLightingFilter returns a lighting filter.
func NewLightingFilter(mul, add RGBA8) *LightingFilter {
	return &LightingFilter{mul: mul, add: add}
}

// Mul returns the multiplier color.
func (f *LightingFilter) Mul() RGBA8 { return f.mul }

// Add returns the additive color.
func (f *LightingFilter) Add() RGBA8 { return f.add }

func (f *LightingFilter) Kind() Kind { return KindLighting }

func (f *LightingFilter) Apply(c RGBA8) RGBA8 {
	return RGBA8{
		R: mathx.AddClamp(mathx.MulDiv255(c.R, f.mul.R), f.add.R),
		G: mathx.AddClamp(mathx.MulDiv255(c.G, f.mul.G), f.add.G),
		B: mathx.AddClamp(mathx.MulDiv255(c.B, f.mul.B), f.add.B),
		A: c.A,
	}
}

func (*LightingFilter) sealed() {}
