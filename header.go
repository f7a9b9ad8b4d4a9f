package forcevolume

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// headerEndSentinel marks the last line of the header region. The sentinel
// line is consumed but never scanned for numbers.
const headerEndSentinel = "*File list end"

// numberPattern matches unsigned decimals with an optional single
// fractional part - no sign, no exponent.
var numberPattern = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?`)

// valueSelection controls which of a matching line's extracted numbers are
// recorded.
type valueSelection uint8

const (
	selectAll valueSelection = iota
	selectLast
)

// lineSelection decides the selection policy for one header line: lines
// carrying a soft-scale annotation ("@") or an LSB conversion record only
// their final number - the physical value; the earlier numbers are scale
// plumbing.
func lineSelection(line string) valueSelection {
	if strings.Contains(line, "@") || strings.Contains(line, "LSB") {
		return selectLast
	}
	return selectAll
}

// ParameterStore holds, per recognized header key, the ordered sequence of
// numbers accumulated across every line matching that key. Order matters:
// geometry resolution indexes by position within a key's sequence.
//
// A store is built once by parseHeader and read-only thereafter.
type ParameterStore struct {
	values map[ParameterKey][]float64
}

func newParameterStore() *ParameterStore {
	values := make(map[ParameterKey][]float64, len(recognizedKeys))
	for _, key := range recognizedKeys {
		values[key] = nil
	}
	return &ParameterStore{values: values}
}

// Values returns the accumulated sequence for a key, in recording order.
// The returned slice is shared; callers must not modify it.
func (s *ParameterStore) Values(key ParameterKey) []float64 {
	return s.values[key]
}

// Count returns how many values a key accumulated.
func (s *ParameterStore) Count(key ParameterKey) int {
	return len(s.values[key])
}

// Value returns the value recorded at a zero-based position within a key's
// sequence, or a MissingHeaderValueError naming the key and position.
func (s *ParameterStore) Value(key ParameterKey, index int) (float64, error) {
	seq := s.values[key]
	if index < 0 || index >= len(seq) {
		return 0, &MissingHeaderValueError{Key: key, Index: index, Have: len(seq)}
	}
	return seq[index], nil
}

func (s *ParameterStore) at(ref paramRef) (float64, error) {
	return s.Value(ref.Key, ref.Index)
}

// scanLine records the line's numbers under every recognized key the line
// contains. Key text is matched literally - no pattern interpretation.
func (s *ParameterStore) scanLine(line string) {
	var numbers []string
	for _, key := range recognizedKeys {
		if !strings.Contains(line, string(key)) {
			continue
		}
		if numbers == nil {
			numbers = numberPattern.FindAllString(line, -1)
		}
		if len(numbers) == 0 {
			continue
		}
		switch lineSelection(line) {
		case selectLast:
			s.append(key, numbers[len(numbers)-1])
		default:
			for _, tok := range numbers {
				s.append(key, tok)
			}
		}
	}
}

func (s *ParameterStore) append(key ParameterKey, token string) {
	n, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return // unreachable: numberPattern only yields valid floats
	}
	s.values[key] = append(s.values[key], n)
}

// parseHeader scans the text view of a capture line by line, accumulating
// recognized parameters, until the "*File list end" sentinel. The header is
// Windows-1252 encoded; a line that fails to decode is fatal. Exhausting
// the source without seeing the sentinel means the header is absent or
// corrupt, not empty.
func parseHeader(r io.Reader) (*ParameterStore, error) {
	br := bufio.NewReader(r)
	store := newParameterStore()
	lineNo := 0
	for {
		raw, err := br.ReadBytes('\n')
		if len(raw) > 0 {
			lineNo++
			line, ok := decodeWindows1252(raw)
			if !ok {
				return nil, &HeaderDecodeError{Line: lineNo}
			}
			if strings.Contains(line, headerEndSentinel) {
				return store, nil
			}
			store.scanLine(line)
		}
		if err == io.EOF {
			return nil, ErrHeaderIncomplete
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read header line %d: %w", lineNo+1, err)
		}
	}
}

// decodeWindows1252 decodes one raw header line. Charmap.DecodeByte reports
// the five bytes Windows-1252 leaves undefined as utf8.RuneError, which is
// what makes the failure detectable - the stream decoder would silently
// substitute U+FFFD instead.
func decodeWindows1252(raw []byte) (string, bool) {
	var sb strings.Builder
	sb.Grow(len(raw))
	for _, b := range raw {
		r := charmap.Windows1252.DecodeByte(b)
		if r == utf8.RuneError {
			return "", false
		}
		sb.WriteRune(r)
	}
	return sb.String(), true
}
