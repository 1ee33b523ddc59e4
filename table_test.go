package colorfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableFilterLength(t *testing.T) {
	for _, n := range []int{0, 1, 255, 257, 512} {
		f, err := NewTableFilter(make([]byte, n))
		assert.Nil(t, f)
		require.ErrorIs(t, err, ErrInvalidArgument, "length %d", n)
	}

	_, err := NewTableFilter(make([]byte, 255))
	assert.EqualError(t, err, "colorfilter: NewTableFilter: table: must have a length of 256 (got 255)")

	_, err = NewTableFilter(nil)
	var iae *InvalidArgumentError
	require.ErrorAs(t, err, &iae)
	assert.Equal(t, "must not be nil", iae.Reason)

	f, err := NewTableFilter(make([]byte, TableSize))
	require.NoError(t, err)
	assert.NotNil(t, f)
}

func TestTableFilterAppliesToAllChannels(t *testing.T) {
	f := mustTableFilter(t, invertTable())
	assert.Equal(t, RGBA8{245, 235, 225, 215}, f.Apply(RGBA8{10, 20, 30, 40}))

	for _, tab := range [][]byte{f.TableA(), f.TableR(), f.TableG(), f.TableB()} {
		assert.Equal(t, invertTable(), tab)
	}
}

func TestTableFilterCopies(t *testing.T) {
	table := invertTable()
	f := mustTableFilter(t, table)
	table[10] = 0

	assert.Equal(t, uint8(245), f.Apply(RGBA8{10, 10, 10, 10}).R)

	out := f.TableR()
	out[10] = 1
	assert.Equal(t, byte(245), f.TableR()[10])
}

func TestTableFilterARGBIdentity(t *testing.T) {
	f, err := NewTableFilterARGB(nil, nil, nil, nil)
	require.NoError(t, err)
	for _, c := range samples {
		assert.Equal(t, c, f.Apply(c))
	}
	assert.Nil(t, f.TableA())
	assert.Nil(t, f.TableR())
	assert.Nil(t, f.TableG())
	assert.Nil(t, f.TableB())
}

func TestTableFilterARGBSingleChannel(t *testing.T) {
	f, err := NewTableFilterARGB(nil, invertTable(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, RGBA8{245, 20, 30, 40}, f.Apply(RGBA8{10, 20, 30, 40}))

	f, err = NewTableFilterARGB(invertTable(), nil, nil, invertTable())
	require.NoError(t, err)
	assert.Equal(t, RGBA8{10, 20, 225, 215}, f.Apply(RGBA8{10, 20, 30, 40}))
}

func TestTableFilterARGBNamesChannel(t *testing.T) {
	good, short := invertTable(), make([]byte, 255)
	tests := []struct {
		name       string
		a, r, g, b []byte
		wantArg    string
	}{
		{"alpha", short, good, good, good, "tableA"},
		{"red", nil, short, nil, nil, "tableR"},
		{"green", good, good, short, good, "tableG"},
		{"blue", nil, nil, nil, make([]byte, 300), "tableB"},
		{"first bad wins", short, nil, nil, short, "tableA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewTableFilterARGB(tt.a, tt.r, tt.g, tt.b)
			assert.Nil(t, f)

			var iae *InvalidArgumentError
			require.ErrorAs(t, err, &iae)
			assert.Equal(t, "NewTableFilterARGB", iae.Op)
			assert.Equal(t, tt.wantArg, iae.Arg)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}
