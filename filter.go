package colorfilter

import "fmt"

// Kind identifies the variant of a ColorFilter.
type Kind uint8

const (
	KindMode Kind = iota
	KindLighting
	KindCompose
	KindColorCube
	KindColorMatrix
	KindLuma
	KindTable
	KindGamma
)

func (k Kind) String() string {
	switch k {
	case KindMode:
		return "mode"
	case KindLighting:
		return "lighting"
	case KindCompose:
		return "compose"
	case KindColorCube:
		return "color-cube"
	case KindColorMatrix:
		return "color-matrix"
	case KindLuma:
		return "luma"
	case KindTable:
		return "table"
	case KindGamma:
		return "gamma"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ColorFilter maps one color to another.
//
// Filters are immutable once constructed and safe for concurrent use.
// Apply never fails: every argument is validated by the constructor.
//
// The interface is sealed; the implementations are the filter types in this
// package, obtained from their New* constructors.
type ColorFilter interface {
	// Kind reports the filter variant.
	Kind() Kind

	// Apply filters a single unpremultiplied color.
	Apply(c RGBA8) RGBA8

	sealed()
}

// Apply evaluates f on c. A nil filter is the identity.
func Apply(f ColorFilter, c RGBA8) RGBA8 {
	if isNil(f) {
		return c
	}
	return f.Apply(c)
}

// isNil reports whether f is nil or a nil pointer of one of the filter types.
func isNil(f ColorFilter) bool {
	switch v := f.(type) {
	case nil:
		return true
	case *ModeFilter:
		return v == nil
	case *LightingFilter:
		return v == nil
	case *ComposeFilter:
		return v == nil
	case *ColorCubeFilter:
		return v == nil
	case *ColorMatrixFilter:
		return v == nil
	case *LumaColorFilter:
		return v == nil
	case *TableFilter:
		return v == nil
	case *GammaFilter:
		return v == nil
	}
	return false
}
