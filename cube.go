package colorfilter

import (
	"fmt"
	"math"

	"github.com/gogpu/colorfilter/internal/cache"
	"github.com/gogpu/colorfilter/internal/mathx"
)

// Cube dimension limits.
const (
	MinCubeSize = 4
	MaxCubeSize = 64
)

// IsValidColorCube reports whether data and dimension describe a usable
// color cube: 4 <= dimension <= 64 and data holds at least 4*dimension^3
// bytes.
func IsValidColorCube(data []byte, dimension int) bool {
	return dimension >= MinCubeSize && dimension <= MaxCubeSize &&
		data != nil && len(data) >= cubeBytes(dimension)
}

func cubeBytes(dimension int) int {
	return 4 * dimension * dimension * dimension
}

// ColorCubeFilter maps colors through a 3D lookup table.
//
// The cube holds dimension^3 cells of 4 bytes in R, G, B, A order. The cell
// for grid point (x, y, z) starts at byte 4*(x + y*dim + z*dim*dim), so red
// varies fastest. Input channels are scaled onto the grid and the eight
// surrounding cells are interpolated trilinearly. The stored alpha is
// ignored; input alpha passes through.
type ColorCubeFilter struct {
	data      []byte
	dimension int
	lattice   *cubeLattice
}

// NewColorCubeFilter returns a cube filter. Surplus bytes past 4*dimension^3
// are accepted and ignored; the needed bytes are copied.
func NewColorCubeFilter(data []byte, dimension int) (*ColorCubeFilter, error) {
	const op = "NewColorCubeFilter"
	if dimension < MinCubeSize || dimension > MaxCubeSize {
		return nil, invalidArgument(op, "dimension",
			fmt.Sprintf("must be in [%d, %d] (got %d)", MinCubeSize, MaxCubeSize, dimension))
	}
	if data == nil {
		return nil, missingArgument(op, "data")
	}
	need := cubeBytes(dimension)
	if len(data) < need {
		return nil, invalidArgument(op, "data",
			fmt.Sprintf("must hold at least %d bytes for dimension %d (got %d)", need, dimension, len(data)))
	}

	Logger().Debug("colorfilter: color cube created", "dimension", dimension, "bytes", need, "surplus", len(data)-need)

	return &ColorCubeFilter{
		data:      append([]byte(nil), data[:need]...),
		dimension: dimension,
		lattice:   latticeFor(dimension),
	}, nil
}

// Dimension returns the side length of the cube.
func (f *ColorCubeFilter) Dimension() int { return f.dimension }

// Data returns a copy of the cube cells.
func (f *ColorCubeFilter) Data() []byte {
	return append([]byte(nil), f.data...)
}

func (f *ColorCubeFilter) Kind() Kind { return KindColorCube }

func (f *ColorCubeFilter) Apply(c RGBA8) RGBA8 {
	l := f.lattice
	dim := f.dimension

	var acc [3]float32
	for corner := range 8 {
		x, wx := l.pick(c.R, corner&1 != 0)
		y, wy := l.pick(c.G, corner&2 != 0)
		z, wz := l.pick(c.B, corner&4 != 0)
		w := wx * wy * wz
		if w == 0 {
			continue
		}
		i := 4 * (x + y*dim + z*dim*dim)
		acc[0] += w * float32(f.data[i])
		acc[1] += w * float32(f.data[i+1])
		acc[2] += w * float32(f.data[i+2])
	}

	return RGBA8{
		R: mathx.RoundByte(acc[0]),
		G: mathx.RoundByte(acc[1]),
		B: mathx.RoundByte(acc[2]),
		A: c.A,
	}
}

func (*ColorCubeFilter) sealed() {}

// cubeLattice maps a channel value onto the two neighboring grid indices
// and the interpolation weight of the upper one. It depends only on the
// dimension.
type cubeLattice struct {
	lo, hi [256]int
	frac   [256]float32
}

func (l *cubeLattice) pick(v uint8, upper bool) (int, float32) {
	if upper {
		return l.hi[v], l.frac[v]
	}
	return l.lo[v], 1 - l.frac[v]
}

func newCubeLattice(dimension int) *cubeLattice {
	l := &cubeLattice{}
	for v := range 256 {
		pos := float64(v*(dimension-1)) / 255
		lo := math.Floor(pos)
		l.lo[v] = int(lo)
		l.hi[v] = min(int(lo)+1, dimension-1)
		l.frac[v] = float32(pos - lo)
	}
	return l
}

// lattices holds one lattice per dimension in use.
var lattices = cache.New[int, *cubeLattice](MaxCubeSize - MinCubeSize + 1)

func latticeFor(dimension int) *cubeLattice {
	return lattices.GetOrCreate(dimension, func() *cubeLattice {
		return newCubeLattice(dimension)
	})
}
