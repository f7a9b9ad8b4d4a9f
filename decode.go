// Package forcevolume decodes Nanoscope Force Volume captures: files that
// interleave a Windows-1252 text header with binary data segments whose
// location and shape are only discoverable by parsing that header.
package forcevolume

import (
	"fmt"
	"io"
	"math"
	"os"
)

type DecodeMode uint8

const (
	DecodeFull DecodeMode = iota
	DecodeGeometryOnly
	DecodeHeaderOnly
)

// DecodeOptions represents the decoding options passed to Decode
type DecodeOptions struct {
	// Mode determines how much of the capture to decode
	//
	// the default is DecodeFull - header, geometry and both binary payloads
	//
	// the minimal is DecodeHeaderOnly - useful for just listing acquisition
	// metadata without paying for the arrays
	//
	// DecodeGeometryOnly resolves the acquisition geometry but skips the
	// binary payloads
	Mode DecodeMode
}

// Record is the decoded contents of one force volume capture
type Record struct {
	// Source identifies the decoded file
	Source string
	// Parameters is everything the header scan accumulated, including keys
	// not consumed by geometry resolution
	Parameters *ParameterStore
	// Geometry is the derived acquisition geometry
	Geometry Geometry
	// Topography is the scaled height map, shape [rows][columns]
	Topography TopographyMap
	// ForceVolume is the scaled force curve grid, shape [rows][columns]
	// with a forward and backward ramp per pixel
	ForceVolume ForceVolume
}

// Decode decodes a force volume capture from the supplied reader with the
// supplied DecodeOptions
//
// if the DecodeOptions supplied is nil, default (full) options are used
//
// The header and the binary payloads are two views of the same bytes: the
// header is scanned sequentially from the start, the payloads are read at
// the absolute byte offsets the header declares.
func Decode(r io.ReaderAt, options *DecodeOptions) (result *Record, err error) {
	if options == nil {
		options = &DecodeOptions{
			Mode: DecodeFull,
		}
	}
	result = &Record{}
	if result.Parameters, err = parseHeader(io.NewSectionReader(r, 0, math.MaxInt64)); err == nil && options.Mode < DecodeHeaderOnly {
		if result.Geometry, err = resolveGeometry(result.Parameters); err == nil && options.Mode < DecodeGeometryOnly {
			err = result.readPayloads(r)
		}
	}
	return result, err
}

// DecodeFile opens and decodes the force volume capture at path
func DecodeFile(path string, options *DecodeOptions) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	result, err := Decode(f, options)
	if result != nil {
		result.Source = path
	}
	return result, err
}

// readPayloads locates, reads and scales both binary regions. The two
// offsets are absolute and independent - nothing assumes the regions are
// contiguous with the header or with each other.
func (rec *Record) readPayloads(r io.ReaderAt) error {
	topoOffset, err := rec.Parameters.at(refTopographyOffset)
	if err != nil {
		return err
	}
	sampsPerLine, err := rec.Parameters.at(refTopographySamps)
	if err != nil {
		return err
	}
	zSensitivity, err := rec.Parameters.at(refZSensitivity)
	if err != nil {
		return err
	}
	zScale, err := rec.Parameters.at(refZScale)
	if err != nil {
		return err
	}
	fvOffset, err := rec.Parameters.at(refForceVolumeOffset)
	if err != nil {
		return err
	}

	rawTopography, err := readTopography(r, int64(topoOffset), int(sampsPerLine), rec.Geometry)
	if err != nil {
		return err
	}
	rec.Topography = scaleTopography(rawTopography, zSensitivity, zScale)

	rawVolume, err := readForceVolume(r, int64(fvOffset), rec.Geometry)
	if err != nil {
		return err
	}
	rec.ForceVolume = scaleForceVolume(rawVolume)
	return nil
}
