package sqlitestore

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeNPY_RoundTrip(t *testing.T) {
	testCases := map[string][]float64{
		"empty":    {},
		"single":   {42.5},
		"negative": {-1.25, 0, 1.25, 3.14159},
		"ramp":     {0.000375, 0.00075, 0.001125, 0.0015, 0.001875},
	}
	for name, values := range testCases {
		t.Run(name, func(t *testing.T) {
			got, err := decodeNPY(encodeNPY(values))
			require.NoError(t, err)
			assert.Equal(t, values, got)
		})
	}
}

func TestEncodeNPY_Header(t *testing.T) {
	blob := encodeNPY([]float64{1, 2, 3})
	require.Greater(t, len(blob), 10)
	assert.Equal(t, npyMagic, string(blob[:6]))
	assert.Equal(t, byte(1), blob[6])
	assert.Equal(t, byte(0), blob[7])

	headerLen := int(binary.LittleEndian.Uint16(blob[8:10]))
	// the full header (magic through the terminating newline) must be a
	// multiple of 64 bytes, newline last
	assert.Equal(t, 0, (10+headerLen)%64)
	assert.Equal(t, byte('\n'), blob[10+headerLen-1])
	assert.Contains(t, string(blob[10:10+headerLen]), "'descr': '<f8'")
	assert.Contains(t, string(blob[10:10+headerLen]), "'shape': (3,)")
	assert.Equal(t, 10+headerLen+8*3, len(blob))
}

func TestDecodeNPY_Errors(t *testing.T) {
	_, err := decodeNPY([]byte("not numpy"))
	assert.ErrorContains(t, err, "not an .npy blob")

	blob := encodeNPY([]float64{1, 2})
	blob[6] = 2 // claim version 2.0
	_, err = decodeNPY(blob)
	assert.ErrorContains(t, err, "unsupported .npy version")

	blob = encodeNPY([]float64{1, 2})
	_, err = decodeNPY(blob[:len(blob)-4])
	assert.ErrorContains(t, err, "data truncated")
}
