package forcevolume

// Geometry is the acquisition geometry of one force volume capture, derived
// once from the header and immutable thereafter. Lengths are in nm.
type Geometry struct {
	// Rows is the number of grid rows (fast axis)
	Rows int
	// Columns is the number of grid columns (slow axis)
	Columns int
	// ScanLength is the lateral dimension of the scanned area
	ScanLength float64
	// RampLength is the ramped distance at each pixel
	RampLength float64
	// RampPointCount is the number of points recorded per ramp direction
	RampPointCount int
	// ScanIncrement is the distance between consecutive ramp points
	ScanIncrement float64
	// PixelLengthRow and PixelLengthColumn are the lateral pixel dimensions
	// along the fast and slow axes
	PixelLengthRow    float64
	PixelLengthColumn float64
}

// resolveGeometry derives the acquisition geometry from the accumulated
// header parameters. Pure function of the store; every positional lookup
// that comes up short fails with a MissingHeaderValueError naming the key
// and position, never a silent default.
func resolveGeometry(store *ParameterStore) (Geometry, error) {
	rows, err := store.at(refRowCount)
	if err != nil {
		return Geometry{}, err
	}
	columns, err := store.at(refColumnCount)
	if err != nil {
		return Geometry{}, err
	}
	scanSize, err := store.at(refScanSize)
	if err != nil {
		return Geometry{}, err
	}
	rampSize, err := store.at(refRampSize)
	if err != nil {
		return Geometry{}, err
	}
	zSensitivity, err := store.at(refZSensitivity)
	if err != nil {
		return Geometry{}, err
	}
	rampPoints, err := store.at(refRampPointCount)
	if err != nil {
		return Geometry{}, err
	}

	g := Geometry{
		Rows:           int(rows),
		Columns:        int(columns),
		ScanLength:     scanSize,
		RampLength:     rampSize * zSensitivity,
		RampPointCount: int(rampPoints),
	}
	// every divisor below must be non-zero
	if g.Rows < 1 || g.Columns < 1 || g.RampPointCount < 2 {
		return Geometry{}, &DegenerateGeometryError{
			Rows:           g.Rows,
			Columns:        g.Columns,
			RampPointCount: g.RampPointCount,
		}
	}
	g.ScanIncrement = g.RampLength / float64(g.RampPointCount-1)
	// The cross-assignment is deliberate: the instrument software derives
	// the row pixel length from the column count and vice versa. Preserved
	// as-is for downstream compatibility.
	g.PixelLengthRow = g.ScanLength / float64(g.Columns)
	g.PixelLengthColumn = g.ScanLength / float64(g.Rows)
	return g, nil
}
