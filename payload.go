package forcevolume

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var le = binary.LittleEndian

// readTopography reads the raw height map: 2 x sampsPerLine^2 bytes of
// little-endian int16 samples at an absolute byte offset, reshaped
// row-major into [rows][columns]. The stored image is sampsPerLine square;
// the map uses its leading rows x columns samples.
func readTopography(r io.ReaderAt, offset int64, sampsPerLine int, geom Geometry) ([][]int16, error) {
	if sampsPerLine*sampsPerLine < geom.Rows*geom.Columns {
		return nil, fmt.Errorf("topography holds %d samples, fewer than the %dx%d map needs",
			sampsPerLine*sampsPerLine, geom.Rows, geom.Columns)
	}
	samples, err := readInt16Region(r, offset, 2*sampsPerLine*sampsPerLine, "topography")
	if err != nil {
		return nil, err
	}
	out := make([][]int16, geom.Rows)
	for i := range out {
		out[i] = samples[i*geom.Columns : (i+1)*geom.Columns]
	}
	return out, nil
}

// readForceVolume reads the raw force curve volume: 4 bytes per
// (forward, backward) pair of int16 samples, rampPointCount pairs per
// pixel, at an absolute byte offset. The flat buffer is reshaped row-major
// into [rows][columns][2][rampPointCount], index 2 discriminating forward
// (0) from backward (1) ramp direction.
func readForceVolume(r io.ReaderAt, offset int64, geom Geometry) ([][][2][]int16, error) {
	size := 4 * geom.RampPointCount * geom.Rows * geom.Columns
	samples, err := readInt16Region(r, offset, size, "force volume")
	if err != nil {
		return nil, err
	}
	points := geom.RampPointCount
	out := make([][][2][]int16, geom.Rows)
	for i := range out {
		out[i] = make([][2][]int16, geom.Columns)
		for j := range out[i] {
			base := ((i*geom.Columns + j) * 2) * points
			out[i][j] = [2][]int16{
				samples[base : base+points],
				samples[base+points : base+2*points],
			}
		}
	}
	return out, nil
}

// readInt16Region reads exactly size bytes at an absolute offset and
// decodes them as little-endian int16 samples. A short read is a
// TruncatedPayloadError carrying both byte counts.
func readInt16Region(r io.ReaderAt, offset int64, size int, region string) ([]int16, error) {
	buf := make([]byte, size)
	n, err := r.ReadAt(buf, offset)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, &TruncatedPayloadError{Region: region, ExpectedBytes: size, ActualBytes: n}
		}
		return nil, fmt.Errorf("failed to read %s payload at offset %d: %w", region, offset, err)
	}
	samples := make([]int16, size/2)
	for i := range samples {
		samples[i] = int16(le.Uint16(buf[2*i : 2*i+2]))
	}
	return samples, nil
}
