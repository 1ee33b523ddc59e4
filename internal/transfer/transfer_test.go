package transfer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurvesInvert(t *testing.T) {
	for i := range 101 {
		s := float64(i) / 100
		assert.InDelta(t, s, encode(decode(s)), 1e-9, "sRGB %f", s)
	}
	// The linear segment and the power segment meet at the threshold.
	assert.InDelta(t, decode(0.04045), 0.04045/12.92, 1e-6)
}

func TestByteTablesEndpointsAndMonotonic(t *testing.T) {
	dec := SRGBToLinearTable()
	enc := LinearToSRGBTable()

	assert.Equal(t, uint8(0), dec[0])
	assert.Equal(t, uint8(255), dec[255])
	assert.Equal(t, uint8(0), enc[0])
	assert.Equal(t, uint8(255), enc[255])

	// Mid gray decodes dark and encodes bright.
	assert.Equal(t, uint8(55), dec[128])
	assert.Equal(t, uint8(188), enc[128])

	for i := 1; i < 256; i++ {
		assert.GreaterOrEqual(t, dec[i], dec[i-1])
		assert.GreaterOrEqual(t, enc[i], enc[i-1])
	}
}

func TestByteTablesMatchCurves(t *testing.T) {
	dec := SRGBToLinearTable()
	enc := LinearToSRGBTable()
	for i := range 256 {
		v := float64(i) / 255
		assert.InDelta(t, decode(v)*255, float64(dec[i]), 0.5, "decode %d", i)
		assert.InDelta(t, encode(v)*255, float64(enc[i]), 0.5, "encode %d", i)
	}
}

func TestQuantizeClamps(t *testing.T) {
	assert.Equal(t, uint8(0), quantize(-0.5))
	assert.Equal(t, uint8(255), quantize(1.5))
	assert.Equal(t, uint8(128), quantize(0.5))
}
