package colorfilter

import "github.com/gogpu/colorfilter/internal/mathx"

// LumaColorFilter converts a color to a luminance mask: the output is black
// with alpha set to the Rec. 709 luminance of the premultiplied input.
// Transparent inputs therefore produce transparent outputs.
type LumaColorFilter struct{}

var lumaFilter = &LumaColorFilter{}

// NewLumaColorFilter returns the luma filter. The filter is stateless and
// the same value is returned on every call.
func NewLumaColorFilter() *LumaColorFilter { return lumaFilter }

func (*LumaColorFilter) Kind() Kind { return KindLuma }

func (*LumaColorFilter) Apply(c RGBA8) RGBA8 {
	p := c.Premultiply()
	l := lumR*float32(p.R) + lumG*float32(p.G) + lumB*float32(p.B)
	return RGBA8{A: mathx.RoundByte(l)}
}

func (*LumaColorFilter) sealed() {}
