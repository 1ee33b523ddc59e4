package colorfilter

import "github.com/gogpu/colorfilter/internal/transfer"

// GammaDirection selects the transfer a GammaFilter applies.
type GammaDirection uint8

const (
	// SRGBToLinear decodes sRGB-encoded channels to linear light.
	SRGBToLinear GammaDirection = iota
	// LinearToSRGB encodes linear channels with the sRGB curve.
	LinearToSRGB
)

func (d GammaDirection) String() string {
	if d == LinearToSRGB {
		return "linear-to-srgb"
	}
	return "srgb-to-linear"
}

// GammaFilter converts R, G and B between the sRGB and linear transfer
// functions using 8-bit lookup tables. Alpha is unchanged.
type GammaFilter struct {
	dir   GammaDirection
	table [256]uint8
}

var (
	srgbToLinear = &GammaFilter{dir: SRGBToLinear, table: transfer.SRGBToLinearTable()}
	linearToSRGB = &GammaFilter{dir: LinearToSRGB, table: transfer.LinearToSRGBTable()}
)

// NewSRGBToLinearFilter returns the sRGB decoding filter.
func NewSRGBToLinearFilter() *GammaFilter { return srgbToLinear }

// NewLinearToSRGBFilter returns the sRGB encoding filter.
func NewLinearToSRGBFilter() *GammaFilter { return linearToSRGB }

// Direction reports which conversion f performs.
func (f *GammaFilter) Direction() GammaDirection { return f.dir }

func (f *GammaFilter) Kind() Kind { return KindGamma }

func (f *GammaFilter) Apply(c RGBA8) RGBA8 {
	return RGBA8{R: f.table[c.R], G: f.table[c.G], B: f.table[c.B], A: c.A}
}

func (*GammaFilter) sealed() {}
