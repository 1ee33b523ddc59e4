package colorfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// identityCube builds a cube whose cells hold their own grid coordinates.
// It is exact when 255 is divisible by dim-1 (dim 4, 6, 16, 18, 52).
func identityCube(dim int) []byte {
	data := make([]byte, cubeBytes(dim))
	step := 255 / (dim - 1)
	for b := range dim {
		for g := range dim {
			for r := range dim {
				i := 4 * (r + g*dim + b*dim*dim)
				data[i+0] = byte(r * step)
				data[i+1] = byte(g * step)
				data[i+2] = byte(b * step)
				data[i+3] = 255
			}
		}
	}
	return data
}

func TestColorCubeValidDimensions(t *testing.T) {
	for dim := MinCubeSize; dim <= MaxCubeSize; dim++ {
		data := make([]byte, 4*dim*dim*dim)
		assert.True(t, IsValidColorCube(data, dim), "dimension %d", dim)

		f, err := NewColorCubeFilter(data, dim)
		require.NoError(t, err, "dimension %d", dim)
		assert.Equal(t, dim, f.Dimension())
	}
}

func TestColorCubeInvalid(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		dim     int
		wantArg string
	}{
		{"dimension too small", make([]byte, 4*27), 3, "dimension"},
		{"dimension zero", nil, 0, "dimension"},
		{"dimension too large", make([]byte, 4*65*65*65), 65, "dimension"},
		{"nil data", nil, 4, "data"},
		{"four bytes", make([]byte, 4), 4, "data"},
		{"one short", make([]byte, 255), 4, "data"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, IsValidColorCube(tt.data, tt.dim))

			f, err := NewColorCubeFilter(tt.data, tt.dim)
			assert.Nil(t, f)
			require.ErrorIs(t, err, ErrInvalidArgument)

			var iae *InvalidArgumentError
			require.ErrorAs(t, err, &iae)
			assert.Equal(t, "NewColorCubeFilter", iae.Op)
			assert.Equal(t, tt.wantArg, iae.Arg)
		})
	}
}

func TestColorCubeSurplusData(t *testing.T) {
	data := append(identityCube(4), 1, 2, 3, 4, 5)
	f, err := NewColorCubeFilter(data, 4)
	require.NoError(t, err)
	assert.Len(t, f.Data(), 256)
}

func TestColorCubeCopiesData(t *testing.T) {
	data := identityCube(4)
	f, err := NewColorCubeFilter(data, 4)
	require.NoError(t, err)

	for i := range data {
		data[i] = 0
	}
	assert.Equal(t, White, f.Apply(White))

	out := f.Data()
	out[0] = 99
	assert.Equal(t, byte(0), f.Data()[0])
}

func TestColorCubeIdentity(t *testing.T) {
	for _, dim := range []int{4, 16} {
		f, err := NewColorCubeFilter(identityCube(dim), dim)
		require.NoError(t, err)

		for v := 0; v < 256; v += 5 {
			c := RGBA8{uint8(v), uint8(255 - v), uint8(v / 2), 200}
			assert.Equal(t, c, f.Apply(c), "dimension %d", dim)
		}
		for _, c := range samples {
			assert.Equal(t, c, f.Apply(c), "dimension %d", dim)
		}
	}
}

func TestColorCubeConstant(t *testing.T) {
	data := make([]byte, cubeBytes(5))
	for i := 0; i < len(data); i += 4 {
		data[i], data[i+1], data[i+2], data[i+3] = 10, 20, 30, 0
	}
	f, err := NewColorCubeFilter(data, 5)
	require.NoError(t, err)

	for _, c := range samples {
		assert.Equal(t, RGBA8{10, 20, 30, c.A}, f.Apply(c))
	}
}

func TestColorCubeInterpolates(t *testing.T) {
	// Red channel of cell (x, _, _) is 0 for x < 3 and 255 at x == 3.
	data := make([]byte, cubeBytes(4))
	for b := range 4 {
		for g := range 4 {
			data[4*(3+g*4+b*16)] = 255
		}
	}
	f, err := NewColorCubeFilter(data, 4)
	require.NoError(t, err)

	// Red 212 maps to grid position 2.494, halfway between cells 2 and 3.
	got := f.Apply(RGBA8{212, 0, 0, 255})
	assert.InDelta(t, 126, int(got.R), 1)
	assert.Equal(t, RGBA8{255, 0, 0, 255}, f.Apply(RGBA8{255, 0, 0, 255}))
	assert.Equal(t, RGBA8{0, 0, 0, 255}, f.Apply(RGBA8{170, 0, 0, 255}))
}

func TestCubeLatticeShared(t *testing.T) {
	a := latticeFor(8)
	b := latticeFor(8)
	assert.Same(t, a, b)

	l := newCubeLattice(4)
	assert.Equal(t, 0, l.lo[0])
	assert.Equal(t, 3, l.lo[255])
	assert.Equal(t, 3, l.hi[255])
	assert.Equal(t, float32(0), l.frac[255])
	assert.Equal(t, 1, l.lo[85])
	assert.Equal(t, float32(0), l.frac[85])
}
