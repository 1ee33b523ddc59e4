package blend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeparableModesOpaque(t *testing.T) {
	white := rgba{255, 255, 255, 255}
	black := rgba{0, 0, 0, 255}
	gray := rgba{128, 128, 128, 255}

	tests := []struct {
		name string
		mode Mode
		src  rgba
		dst  rgba
		want rgba
	}{
		{"multiply white is identity", Multiply, white, gray, gray},
		{"multiply black", Multiply, black, gray, black},
		{"multiply gray gray", Multiply, gray, gray, rgba{64, 64, 64, 255}},
		{"screen black is identity", Screen, black, gray, gray},
		{"screen white", Screen, white, gray, white},
		{"darken", Darken, rgba{10, 200, 30, 255}, rgba{100, 20, 30, 255}, rgba{10, 20, 30, 255}},
		{"lighten", Lighten, rgba{10, 200, 30, 255}, rgba{100, 20, 30, 255}, rgba{100, 200, 30, 255}},
		{"difference", Difference, rgba{200, 50, 0, 255}, rgba{50, 200, 0, 255}, rgba{150, 150, 0, 255}},
		{"exclusion with black", Exclusion, black, gray, gray},
		{"color dodge black source", ColorDodge, black, gray, gray},
		{"color dodge black backdrop", ColorDodge, white, black, black},
		{"color burn white source", ColorBurn, white, gray, gray},
		{"color burn white backdrop", ColorBurn, black, white, white},
		{"hard light black source", HardLight, black, gray, black},
		{"overlay black backdrop", Overlay, gray, black, black},
		{"soft light mid gray source", SoftLight, gray, rgba{100, 100, 100, 255}, rgba{100, 100, 100, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, run(tt.mode, tt.src, tt.dst))
		})
	}
}

func TestSeparableTransparentOperands(t *testing.T) {
	gray := rgba{128, 128, 128, 255}
	for m := Screen; m <= Multiply; m++ {
		assert.Equal(t, gray, run(m, transparent, gray), "mode %d with transparent source", m)
		assert.Equal(t, gray, run(m, gray, transparent), "mode %d with transparent backdrop", m)
	}
}

func TestMultiplyPartialAlpha(t *testing.T) {
	// S*(1-Da) + D*(1-Sa) + S*D with S = 50% white, D = opaque gray.
	got := run(Multiply, rgba{128, 128, 128, 128}, rgba{128, 128, 128, 255})
	assert.Equal(t, rgba{128, 128, 128, 255}, got)

	got = run(Multiply, rgba{128, 0, 0, 128}, rgba{0, 0, 255, 255})
	assert.Equal(t, uint8(255), got.a)
	assert.Equal(t, uint8(0), got.r)
	assert.Equal(t, uint8(127), got.b)
}
