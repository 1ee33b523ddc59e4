// Package transfer provides the sRGB transfer curves as byte lookup tables.
//
// Tables are built once at init so that per-pixel conversions are plain
// array reads instead of math.Pow calls.
//
// References:
//   - sRGB specification: https://www.w3.org/Graphics/Color/sRGB
package transfer

import "math"

var (
	srgbToLinearBytes [256]uint8
	linearToSRGBBytes [256]uint8
)

func init() {
	for i := range 256 {
		srgbToLinearBytes[i] = quantize(decode(float64(i) / 255))
		linearToSRGBBytes[i] = quantize(encode(float64(i) / 255))
	}
}

// decode is the sRGB EOTF.
func decode(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// encode is the inverse of decode.
func encode(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

func quantize(v float64) uint8 {
	q := int(v*255 + 0.5)
	if q < 0 {
		return 0
	}
	if q > 255 {
		return 255
	}
	return uint8(q)
}

// SRGBToLinearTable returns the byte to byte sRGB decoding table.
func SRGBToLinearTable() [256]uint8 {
	return srgbToLinearBytes
}

// LinearToSRGBTable returns the byte to byte sRGB encoding table.
func LinearToSRGBTable() [256]uint8 {
	return linearToSRGBBytes
}
