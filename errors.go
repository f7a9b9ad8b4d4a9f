package forcevolume

import (
	"errors"
	"fmt"
)

// ErrHeaderIncomplete is returned when the source is exhausted before the
// "*File list end" sentinel line is seen - the header is absent or corrupt.
var ErrHeaderIncomplete = errors.New("header incomplete: \"*File list end\" sentinel not found")

// HeaderDecodeError reports a header line that is not valid Windows-1252
// text. Line numbers are 1-based.
type HeaderDecodeError struct {
	Line int
}

func (e *HeaderDecodeError) Error() string {
	return fmt.Sprintf("header line %d is not valid Windows-1252 text", e.Line)
}

// MissingHeaderValueError reports a positional lookup into a key's
// accumulated values that ran past the end of the sequence. Index is the
// zero-based position that was required; Have is how many values the key
// actually accumulated.
type MissingHeaderValueError struct {
	Key   ParameterKey
	Index int
	Have  int
}

func (e *MissingHeaderValueError) Error() string {
	return fmt.Sprintf("header key %q: value %d required but only %d recorded", string(e.Key), e.Index, e.Have)
}

// DegenerateGeometryError reports resolved geometry that would force a
// division by zero.
type DegenerateGeometryError struct {
	Rows           int
	Columns        int
	RampPointCount int
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("degenerate geometry: %d rows, %d columns, %d ramp points", e.Rows, e.Columns, e.RampPointCount)
}

// TruncatedPayloadError reports a binary region shorter than the geometry
// requires. Region names the payload ("topography" or "force volume").
type TruncatedPayloadError struct {
	Region        string
	ExpectedBytes int
	ActualBytes   int
}

func (e *TruncatedPayloadError) Error() string {
	return fmt.Sprintf("%s payload truncated: expected %d bytes, got %d", e.Region, e.ExpectedBytes, e.ActualBytes)
}
