package forcevolume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleTopography(t *testing.T) {
	raw := [][]int16{
		{-32768, -1, 0},
		{1, 256, 32767},
	}
	// expected factor computed with the scaler's own float64 operations,
	// not constant-folded exact arithmetic
	zSensitivity, zScale := 50.0, 655.36
	factor := zSensitivity * zScale / 65536.0
	scaled := scaleTopography(raw, zSensitivity, zScale)
	require.Len(t, scaled, 2)
	for i, row := range raw {
		require.Len(t, scaled[i], 3)
		for j, v := range row {
			assert.Equal(t, float64(v)*factor, scaled[i][j])
		}
	}
}

func TestScaleForceVolume(t *testing.T) {
	raw := [][][2][]int16{
		{
			{{-32768, 0, 1}, {100, 200, 300}},
			{{7, 8, 9}, {-7, -8, -9}},
		},
	}
	scaled := scaleForceVolume(raw)
	require.Len(t, scaled, 1)
	require.Len(t, scaled[0], 2)
	for j := 0; j < 2; j++ {
		curve := scaled[0][j]
		require.Len(t, curve.Forward, 3)
		require.Len(t, curve.Backward, 3)
		for k := 0; k < 3; k++ {
			assert.Equal(t, float64(raw[0][j][0][k])*0.000375, curve.Forward[k])
			assert.Equal(t, float64(raw[0][j][1][k])*0.000375, curve.Backward[k])
		}
	}
}

func TestScaleTopography_Empty(t *testing.T) {
	assert.Empty(t, scaleTopography(nil, 50.0, 655.36))
	assert.Empty(t, scaleForceVolume(nil))
}
