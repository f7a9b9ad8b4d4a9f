package forcevolume

// ParameterKey identifies a recognized header parameter. The key text is
// matched literally (substring containment) against each header line,
// punctuation included.
type ParameterKey string

const (
	KeyZSensitivity    ParameterKey = "Sens. Zsens:"
	KeyZScale          ParameterKey = "2:Z scale:"
	KeySampsPerLine    ParameterKey = "Samps/line:"
	KeyDataOffset      ParameterKey = "Data offset"
	KeyScanSize        ParameterKey = "Scan Size:"
	KeyZMagnify        ParameterKey = "Z magnify:"
	KeyRampSize        ParameterKey = "4:Ramp size:"
	KeyForceDataPoints ParameterKey = "Force Data Points:"
	KeyLineCount       ParameterKey = "Number of lines:"
)

// recognizedKeys lists every key the header scan accumulates. KeyZMagnify
// and KeyForceDataPoints are accumulated but not consumed here; callers may
// still need them for other format revisions.
var recognizedKeys = []ParameterKey{
	KeyZSensitivity,
	KeyZScale,
	KeySampsPerLine,
	KeyDataOffset,
	KeyScanSize,
	KeyZMagnify,
	KeyRampSize,
	KeyForceDataPoints,
	KeyLineCount,
}

// paramRef addresses one value by key and position within that key's
// accumulated sequence.
type paramRef struct {
	Key   ParameterKey
	Index int
}

// Positional slots consumed by geometry resolution and payload location.
// The indices are format-version-specific; a format revision edits this
// table, nothing else.
var (
	refRowCount          = paramRef{KeyLineCount, 1}
	refColumnCount       = paramRef{KeySampsPerLine, 6}
	refScanSize          = paramRef{KeyScanSize, 0}
	refRampSize          = paramRef{KeyRampSize, 0}
	refZSensitivity      = paramRef{KeyZSensitivity, 0}
	refZScale            = paramRef{KeyZScale, 0}
	refRampPointCount    = paramRef{KeySampsPerLine, 1}
	refTopographySamps   = paramRef{KeySampsPerLine, 0}
	refTopographyOffset  = paramRef{KeyDataOffset, 0}
	refForceVolumeOffset = paramRef{KeyDataOffset, 1}
)
