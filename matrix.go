package colorfilter

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/colorfilter/internal/mathx"
)

// MatrixSize is the number of coefficients in a ColorMatrix.
const MatrixSize = 20

// ColorMatrix is a 4x5 affine color transform in row-major order:
//
//	[R']   [m0  m1  m2  m3  m4 ]   [R]
//	[G'] = [m5  m6  m7  m8  m9 ] * [G]
//	[B']   [m10 m11 m12 m13 m14]   [B]
//	[A']   [m15 m16 m17 m18 m19]   [A]
//	                               [1]
//
// Inputs are unpremultiplied channels in [0, 255]; the fifth column is a
// translation in the same units.
type ColorMatrix [MatrixSize]float32

// Rec. 709 luminance weights.
const (
	lumR = 0.2126
	lumG = 0.7152
	lumB = 0.0722
)

// IdentityMatrix returns the matrix that leaves colors unchanged.
func IdentityMatrix() ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// ScaleMatrix scales each channel independently.
func ScaleMatrix(r, g, b, a float32) ColorMatrix {
	return ColorMatrix{
		r, 0, 0, 0, 0,
		0, g, 0, 0, 0,
		0, 0, b, 0, 0,
		0, 0, 0, a, 0,
	}
}

// BrightnessMatrix scales R, G and B by factor.
// 0 is black, 1 is unchanged, 2 is twice as bright.
func BrightnessMatrix(factor float32) ColorMatrix {
	return ScaleMatrix(factor, factor, factor, 1)
}

// ContrastMatrix scales R, G and B away from mid gray.
// 0 is flat gray, 1 is unchanged.
func ContrastMatrix(factor float32) ColorMatrix {
	offset := 128 * (1 - factor)
	return ColorMatrix{
		factor, 0, 0, 0, offset,
		0, factor, 0, 0, offset,
		0, 0, factor, 0, offset,
		0, 0, 0, 1, 0,
	}
}

// SaturationMatrix blends between luminance (0) and the original color (1).
func SaturationMatrix(factor float32) ColorMatrix {
	inv := 1 - factor
	r, g, b := lumR*inv, lumG*inv, lumB*inv
	return ColorMatrix{
		r + factor, g, b, 0, 0,
		r, g + factor, b, 0, 0,
		r, g, b + factor, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// GrayscaleMatrix converts to Rec. 709 luminance.
func GrayscaleMatrix() ColorMatrix {
	return SaturationMatrix(0)
}

// SepiaMatrix applies a warm sepia tone.
func SepiaMatrix() ColorMatrix {
	return ColorMatrix{
		0.393, 0.769, 0.189, 0, 0,
		0.349, 0.686, 0.168, 0, 0,
		0.272, 0.534, 0.131, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// InvertMatrix inverts R, G and B.
func InvertMatrix() ColorMatrix {
	return ColorMatrix{
		-1, 0, 0, 0, 255,
		0, -1, 0, 0, 255,
		0, 0, -1, 0, 255,
		0, 0, 0, 1, 0,
	}
}

// HueRotateMatrix rotates hue by degrees (the SVG feColorMatrix hueRotate).
func HueRotateMatrix(degrees float32) ColorMatrix {
	rad := degrees * math32.Pi / 180
	cos := math32.Cos(rad)
	sin := math32.Sin(rad)

	return ColorMatrix{
		lumR + cos*(1-lumR) - sin*lumR, lumG - cos*lumG - sin*lumG, lumB - cos*lumB + sin*(1-lumB), 0, 0,
		lumR - cos*lumR + sin*0.143, lumG + cos*(1-lumG) + sin*0.140, lumB - cos*lumB - sin*0.283, 0, 0,
		lumR - cos*lumR - sin*(1-lumR), lumG - cos*lumG + sin*lumG, lumB + cos*(1-lumB) + sin*lumB, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// OpacityMatrix scales alpha by factor.
func OpacityMatrix(factor float32) ColorMatrix {
	return ScaleMatrix(1, 1, 1, factor)
}

// TintMatrix mixes tint into the color by the tint's alpha.
func TintMatrix(tint RGBA8) ColorMatrix {
	f := float32(tint.A) / 255
	inv := 1 - f
	return ColorMatrix{
		inv, 0, 0, 0, float32(tint.R) * f,
		0, inv, 0, 0, float32(tint.G) * f,
		0, 0, inv, 0, float32(tint.B) * f,
		0, 0, 0, 1, 0,
	}
}

// LightingMatrix is the matrix form of a LightingFilter (without the
// LightingFilter's integer rounding).
func LightingMatrix(mul, add RGBA8) ColorMatrix {
	return ColorMatrix{
		float32(mul.R) / 255, 0, 0, 0, float32(add.R),
		0, float32(mul.G) / 255, 0, 0, float32(add.G),
		0, 0, float32(mul.B) / 255, 0, float32(add.B),
		0, 0, 0, 1, 0,
	}
}

// Concat returns the matrix that applies m first and then next, without
// clamping in between.
func (m ColorMatrix) Concat(next ColorMatrix) ColorMatrix {
	var out ColorMatrix
	for row := range 4 {
		n := next[row*5 : row*5+5]
		for col := range 5 {
			var sum float32
			for k := range 4 {
				sum += n[k] * m[k*5+col]
			}
			out[row*5+col] = sum
		}
		out[row*5+4] += n[4]
	}
	return out
}

// Transform applies m to c, rounding and clamping each output channel.
func (m *ColorMatrix) Transform(c RGBA8) RGBA8 {
	r, g, b, a := float32(c.R), float32(c.G), float32(c.B), float32(c.A)
	return RGBA8{
		R: mathx.RoundByte(m[0]*r + m[1]*g + m[2]*b + m[3]*a + m[4]),
		G: mathx.RoundByte(m[5]*r + m[6]*g + m[7]*b + m[8]*a + m[9]),
		B: mathx.RoundByte(m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14]),
		A: mathx.RoundByte(m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19]),
	}
}

// ColorMatrixFilter transforms colors with a ColorMatrix.
type ColorMatrixFilter struct {
	matrix ColorMatrix
}

// NewColorMatrixFilter returns a matrix filter. matrix must hold exactly
// 20 coefficients; it is copied.
func NewColorMatrixFilter(matrix []float32) (*ColorMatrixFilter, error) {
	const op = "NewColorMatrixFilter"
	if matrix == nil {
		return nil, missingArgument(op, "matrix")
	}
	if len(matrix) != MatrixSize {
		return nil, lengthMismatch(op, "matrix", MatrixSize, len(matrix))
	}
	f := &ColorMatrixFilter{}
	copy(f.matrix[:], matrix)
	return f, nil
}

// NewColorMatrixFilterFrom returns a matrix filter for a fixed-size matrix.
// It cannot fail.
func NewColorMatrixFilterFrom(m ColorMatrix) *ColorMatrixFilter {
	return &ColorMatrixFilter{matrix: m}
}

// Matrix returns a copy of the coefficients.
func (f *ColorMatrixFilter) Matrix() ColorMatrix { return f.matrix }

func (f *ColorMatrixFilter) Kind() Kind { return KindColorMatrix }

func (f *ColorMatrixFilter) Apply(c RGBA8) RGBA8 {
	return f.matrix.Transform(c)
}

func (*ColorMatrixFilter) sealed() {}
