package colorfilter

import (
	"fmt"
	"image/color"

	"github.com/gogpu/colorfilter/internal/mathx"
)

// RGBA8 is an unpremultiplied 8-bit color, the value every filter maps.
type RGBA8 struct {
	R, G, B, A uint8
}

// PremulRGBA8 is an 8-bit color whose R, G and B are already multiplied
// by A. Pixel buffers in image.RGBA layout hold this form.
type PremulRGBA8 struct {
	R, G, B, A uint8
}

// Common colors.
var (
	Transparent = RGBA8{}
	Black       = RGBA8{0, 0, 0, 255}
	White       = RGBA8{255, 255, 255, 255}
	Red         = RGBA8{255, 0, 0, 255}
	Green       = RGBA8{0, 255, 0, 255}
	Blue        = RGBA8{0, 0, 255, 255}
)

// RGBA implements color.Color.
func (c RGBA8) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA converts c to the standard library's unpremultiplied color.
func (c RGBA8) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts any color.Color to RGBA8.
func FromColor(c color.Color) RGBA8 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA8{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Premultiply returns c with its color channels scaled by alpha.
func (c RGBA8) Premultiply() PremulRGBA8 {
	switch c.A {
	case 255:
		return PremulRGBA8(c)
	case 0:
		return PremulRGBA8{}
	}
	return PremulRGBA8{
		R: mathx.MulDiv255(c.R, c.A),
		G: mathx.MulDiv255(c.G, c.A),
		B: mathx.MulDiv255(c.B, c.A),
		A: c.A,
	}
}

// Unpremultiply divides the color channels by alpha, rounding to nearest.
// Fully transparent colors become transparent black.
func (p PremulRGBA8) Unpremultiply() RGBA8 {
	switch p.A {
	case 255:
		return RGBA8(p)
	case 0:
		return RGBA8{}
	}
	a := uint32(p.A)
	div := func(c uint8) uint8 {
		return mathx.ClampByte((uint32(c)*255 + a/2) / a)
	}
	return RGBA8{R: div(p.R), G: div(p.G), B: div(p.B), A: p.A}
}

// ParseHex parses "RGB", "RGBA", "RRGGBB" or "RRGGBBAA", with an optional
// leading '#'. Missing alpha means opaque.
func ParseHex(s string) (RGBA8, error) {
	hex := s
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	digits := make([]uint8, len(hex))
	for i := 0; i < len(hex); i++ {
		d, ok := hexDigit(hex[i])
		if !ok {
			return RGBA8{}, invalidArgument("ParseHex", "hex", fmt.Sprintf("invalid digit %q in %q", hex[i], s))
		}
		digits[i] = d
	}

	switch len(digits) {
	case 3, 4:
		c := RGBA8{R: digits[0] * 17, G: digits[1] * 17, B: digits[2] * 17, A: 255}
		if len(digits) == 4 {
			c.A = digits[3] * 17
		}
		return c, nil
	case 6, 8:
		c := RGBA8{
			R: digits[0]<<4 | digits[1],
			G: digits[2]<<4 | digits[3],
			B: digits[4]<<4 | digits[5],
			A: 255,
		}
		if len(digits) == 8 {
			c.A = digits[6]<<4 | digits[7]
		}
		return c, nil
	}
	return RGBA8{}, invalidArgument("ParseHex", "hex", fmt.Sprintf("%q must have 3, 4, 6 or 8 digits", s))
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Hex formats c as "#rrggbbaa".
func (c RGBA8) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// String implements fmt.Stringer.
func (c RGBA8) String() string {
	return c.Hex()
}
