// Package mathx provides the small numeric helpers shared by the filters:
// generic clamping and exact division by 255 for 8-bit channel arithmetic.
package mathx

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Clamp limits v to the closed range [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// byteSource lists the integer types wide enough to hold 255.
type byteSource interface {
	~int | ~int32 | ~int64 | ~uint32
}

// ClampByte clamps an integer to [0, 255] and narrows it to a byte.
func ClampByte[T byteSource](v T) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// RoundByte rounds f to the nearest integer and clamps it to [0, 255].
// NaN maps to 0.
func RoundByte(f float32) uint8 {
	if f != f {
		return 0
	}
	return uint8(Clamp(math32.Round(f), 0, 255))
}

// Div255 divides x by 255 with round-to-nearest.
//
// Exact for every x in [0, 255*255].
func Div255(x uint32) uint32 {
	x += 128
	return (x + (x >> 8)) >> 8
}

// MulDiv255 returns round(a*b/255).
func MulDiv255(a, b uint8) uint8 {
	return uint8(Div255(uint32(a) * uint32(b)))
}

// AddClamp adds two bytes, saturating at 255.
func AddClamp(a, b uint8) uint8 {
	return ClampByte(int(a) + int(b))
}
