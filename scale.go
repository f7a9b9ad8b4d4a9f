package forcevolume

const (
	// full-scale divisor of a 16-bit sample range
	heightFullScale = 65536.0

	// forceScale converts raw force volume samples to physical force
	// units. Opaque calibration constant carried over from the vendor
	// software; preserved exactly, not derived.
	forceScale = 0.000375
)

// TopographyMap is the physically scaled height map, indexed [row][column].
type TopographyMap [][]float64

// ForceCurve holds the two ramp directions measured at one pixel: the
// forward (approach) trace and the backward (retract) trace.
type ForceCurve struct {
	Forward  []float64
	Backward []float64
}

// ForceVolume is the full grid of force curves, indexed [row][column].
type ForceVolume [][]ForceCurve

// scaleTopography converts raw height samples to physical units:
// value x (zSensitivity x zScale) / 65536.
func scaleTopography(raw [][]int16, zSensitivity, zScale float64) TopographyMap {
	factor := zSensitivity * zScale / heightFullScale
	out := make(TopographyMap, len(raw))
	for i, row := range raw {
		scaled := make([]float64, len(row))
		for j, v := range row {
			scaled[j] = float64(v) * factor
		}
		out[i] = scaled
	}
	return out
}

// scaleForceVolume converts raw force samples to physical units.
func scaleForceVolume(raw [][][2][]int16) ForceVolume {
	out := make(ForceVolume, len(raw))
	for i, row := range raw {
		curves := make([]ForceCurve, len(row))
		for j, pair := range row {
			curves[j] = ForceCurve{
				Forward:  scaleRamp(pair[0]),
				Backward: scaleRamp(pair[1]),
			}
		}
		out[i] = curves
	}
	return out
}

func scaleRamp(raw []int16) []float64 {
	out := make([]float64, len(raw))
	for i, v := range raw {
		out[i] = float64(v) * forceScale
	}
	return out
}
