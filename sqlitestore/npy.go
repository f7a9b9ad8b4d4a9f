package sqlitestore

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// numpy .npy version 1.0: magic, version bytes, little-endian uint16 header
// length, then a Python dict literal space-padded so the full header is a
// multiple of 64 bytes, terminated by a newline.
const npyMagic = "\x93NUMPY"

const npyHeaderAlign = 64

// encodeNPY serializes values as a one-dimensional little-endian float64
// array in .npy v1.0 format.
func encodeNPY(values []float64) []byte {
	dict := fmt.Sprintf("{'descr': '<f8', 'fortran_order': False, 'shape': (%d,), }", len(values))
	unpadded := len(npyMagic) + 4 + len(dict) + 1
	pad := (npyHeaderAlign - unpadded%npyHeaderAlign) % npyHeaderAlign
	buf := make([]byte, 0, unpadded+pad+8*len(values))
	buf = append(buf, npyMagic...)
	buf = append(buf, 1, 0)
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(dict)+pad+1))
	buf = append(buf, dict...)
	for i := 0; i < pad; i++ {
		buf = append(buf, ' ')
	}
	buf = append(buf, '\n')
	for _, v := range values {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}
	return buf
}

// decodeNPY reads back a one-dimensional float64 .npy blob.
func decodeNPY(blob []byte) ([]float64, error) {
	if len(blob) < 10 || string(blob[:6]) != npyMagic {
		return nil, errors.New("not an .npy blob")
	}
	if blob[6] != 1 || blob[7] != 0 {
		return nil, fmt.Errorf("unsupported .npy version %d.%d", blob[6], blob[7])
	}
	headerLen := int(binary.LittleEndian.Uint16(blob[8:10]))
	if len(blob) < 10+headerLen {
		return nil, errors.New(".npy header truncated")
	}
	header := string(blob[10 : 10+headerLen])
	if !strings.Contains(header, "'descr': '<f8'") {
		return nil, fmt.Errorf(".npy dtype is not little-endian float64: %s", strings.TrimSpace(header))
	}
	count, err := npyShape(header)
	if err != nil {
		return nil, err
	}
	data := blob[10+headerLen:]
	if len(data) < 8*count {
		return nil, errors.New(".npy data truncated")
	}
	values := make([]float64, count)
	for i := range values {
		values[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[8*i : 8*i+8]))
	}
	return values, nil
}

func npyShape(header string) (int, error) {
	start := strings.Index(header, "(")
	end := strings.Index(header, ")")
	if start < 0 || end < start {
		return 0, errors.New(".npy header has no shape tuple")
	}
	dims := strings.TrimSuffix(strings.TrimSpace(header[start+1:end]), ",")
	n, err := strconv.Atoi(strings.TrimSpace(dims))
	if err != nil {
		return 0, fmt.Errorf(".npy shape is not one-dimensional: (%s)", dims)
	}
	return n, nil
}
