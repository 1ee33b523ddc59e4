package colorfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorMatrixFilterLength(t *testing.T) {
	for n := 0; n <= 25; n++ {
		f, err := NewColorMatrixFilter(make([]float32, n))
		if n == MatrixSize {
			require.NoError(t, err)
			assert.NotNil(t, f)
			continue
		}
		assert.Nil(t, f)
		require.ErrorIs(t, err, ErrInvalidArgument, "length %d", n)
	}

	_, err := NewColorMatrixFilter(nil)
	var iae *InvalidArgumentError
	require.ErrorAs(t, err, &iae)
	assert.Equal(t, "matrix", iae.Arg)
	assert.Equal(t, "must not be nil", iae.Reason)
}

func TestColorMatrixFilterCopies(t *testing.T) {
	m := IdentityMatrix()
	coeffs := m[:]
	f, err := NewColorMatrixFilter(coeffs)
	require.NoError(t, err)

	coeffs[0] = 0
	assert.Equal(t, IdentityMatrix(), f.Matrix())
	assert.Equal(t, White, f.Apply(White))
}

func TestColorMatrixPresets(t *testing.T) {
	tests := []struct {
		name string
		m    ColorMatrix
		in   RGBA8
		want RGBA8
	}{
		{"identity", IdentityMatrix(), RGBA8{12, 34, 56, 78}, RGBA8{12, 34, 56, 78}},
		{"invert", InvertMatrix(), RGBA8{10, 20, 30, 40}, RGBA8{245, 235, 225, 40}},
		{"brightness clamps", BrightnessMatrix(2), RGBA8{200, 100, 0, 255}, RGBA8{255, 200, 0, 255}},
		{"brightness zero", BrightnessMatrix(0), RGBA8{200, 100, 50, 9}, RGBA8{0, 0, 0, 9}},
		{"contrast zero", ContrastMatrix(0), RGBA8{200, 100, 50, 255}, RGBA8{128, 128, 128, 255}},
		{"contrast one", ContrastMatrix(1), RGBA8{200, 100, 50, 255}, RGBA8{200, 100, 50, 255}},
		{"grayscale white", GrayscaleMatrix(), White, White},
		{"grayscale red", GrayscaleMatrix(), Red, RGBA8{54, 54, 54, 255}},
		{"saturation one", SaturationMatrix(1), RGBA8{12, 200, 99, 255}, RGBA8{12, 200, 99, 255}},
		{"opacity", OpacityMatrix(0.5), RGBA8{1, 2, 3, 200}, RGBA8{1, 2, 3, 100}},
		{"tint opaque", TintMatrix(Red), RGBA8{1, 2, 3, 4}, RGBA8{255, 0, 0, 4}},
		{"tint transparent", TintMatrix(RGBA8{255, 0, 0, 0}), RGBA8{1, 2, 3, 4}, RGBA8{1, 2, 3, 4}},
		{"sepia black", SepiaMatrix(), Black, Black},
		{"hue rotate zero", HueRotateMatrix(0), RGBA8{12, 200, 99, 255}, RGBA8{12, 200, 99, 255}},
		{"hue rotate full turn", HueRotateMatrix(360), RGBA8{12, 200, 99, 255}, RGBA8{12, 200, 99, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewColorMatrixFilterFrom(tt.m)
			assert.Equal(t, tt.want, f.Apply(tt.in))
		})
	}
}

func TestHueRotateKeepsGray(t *testing.T) {
	f := NewColorMatrixFilterFrom(HueRotateMatrix(123))
	for _, v := range []uint8{0, 64, 128, 255} {
		got := f.Apply(RGBA8{v, v, v, 255})
		assert.InDelta(t, int(v), int(got.R), 1)
		assert.InDelta(t, int(v), int(got.G), 1)
		assert.InDelta(t, int(v), int(got.B), 1)
	}
}

func TestColorMatrixConcat(t *testing.T) {
	halfThenInvert := NewColorMatrixFilterFrom(BrightnessMatrix(0.5).Concat(InvertMatrix()))
	invertThenHalf := NewColorMatrixFilterFrom(InvertMatrix().Concat(BrightnessMatrix(0.5)))

	in := RGBA8{200, 200, 200, 255}
	assert.Equal(t, RGBA8{155, 155, 155, 255}, halfThenInvert.Apply(in))
	assert.Equal(t, RGBA8{28, 28, 28, 255}, invertThenHalf.Apply(in))

	twice := NewColorMatrixFilterFrom(InvertMatrix().Concat(InvertMatrix()))
	for _, c := range samples {
		assert.Equal(t, c, twice.Apply(c))
	}

	assert.Equal(t, SepiaMatrix(), IdentityMatrix().Concat(SepiaMatrix()))
	assert.Equal(t, SepiaMatrix(), SepiaMatrix().Concat(IdentityMatrix()))
}

func TestColorMatrixConcatMatchesCompose(t *testing.T) {
	// Both stages keep every channel inside [0, 255], so clamping between
	// them changes nothing and only rounding differs.
	a, b := ContrastMatrix(0.8), SaturationMatrix(0.4)
	composed, err := NewComposeFilter(NewColorMatrixFilterFrom(b), NewColorMatrixFilterFrom(a))
	require.NoError(t, err)
	merged := NewColorMatrixFilterFrom(a.Concat(b))

	for _, c := range samples {
		got, want := merged.Apply(c), composed.Apply(c)
		assert.InDelta(t, int(want.R), int(got.R), 1, "input %v", c)
		assert.InDelta(t, int(want.G), int(got.G), 1, "input %v", c)
		assert.InDelta(t, int(want.B), int(got.B), 1, "input %v", c)
		assert.Equal(t, want.A, got.A)
	}
}

func TestColorMatrixConcatDoesNotClamp(t *testing.T) {
	up, down := BrightnessMatrix(2), BrightnessMatrix(0.5)
	in := RGBA8{200, 100, 10, 255}

	merged := NewColorMatrixFilterFrom(up.Concat(down))
	assert.Equal(t, in, merged.Apply(in))

	staged, err := NewComposeFilter(NewColorMatrixFilterFrom(down), NewColorMatrixFilterFrom(up))
	require.NoError(t, err)
	assert.Equal(t, RGBA8{128, 100, 10, 255}, staged.Apply(in))
}
