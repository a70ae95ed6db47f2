package personread

// FailureKind enumerates where in the pipeline a failure occurred.
type FailureKind int

const (
	// FailNone indicates no failure occurred.
	FailNone FailureKind = iota
	// FailRead indicates the resource could not be fully read.
	FailRead
	// FailDecode indicates the raw bytes were not valid UTF-8.
	FailDecode
	// FailFormat indicates the decoded text did not have exactly two comma-separated fields.
	FailFormat
)

func (k FailureKind) String() string {
	switch k {
	case FailNone:
		return "none"
	case FailRead:
		return "read"
	case FailDecode:
		return "decode"
	case FailFormat:
		return "format"
	default:
		return "unknown"
	}
}
