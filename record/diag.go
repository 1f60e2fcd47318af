package record

// DiagKind classifies a recoverable decode problem.
type DiagKind uint8

const (
	// DiagMalformedValue marks a value that did not parse as its group
	// code's declared kind; the target field kept its default.
	DiagMalformedValue DiagKind = iota + 1

	// DiagUnknownCode marks a group code absent from the record's field
	// table; the value was discarded.
	DiagUnknownCode

	// DiagUnknownControl marks a 102 control group with an unrecognized
	// bracket marker; the block was skipped.
	DiagUnknownControl

	// DiagSubclassMismatch marks a subclass marker whose text differs from
	// the table's expected marker.
	DiagSubclassMismatch

	// DiagVersionMismatch marks a field or marker used below its minimum
	// format version; the record was accepted but is suspect.
	DiagVersionMismatch
)

func (k DiagKind) String() string {
	switch k {
	case DiagMalformedValue:
		return "MalformedValue"
	case DiagUnknownCode:
		return "UnknownCode"
	case DiagUnknownControl:
		return "UnknownControl"
	case DiagSubclassMismatch:
		return "SubclassMismatch"
	case DiagVersionMismatch:
		return "VersionMismatch"
	default:
		return "Unknown"
	}
}

// Diagnostic is one structured, non-fatal decode finding.
type Diagnostic struct {
	Kind    DiagKind
	Record  string // record type name being decoded
	Code    int    // group code involved
	Line    int    // source line of the group-code line, 0 when unknown
	Message string
}

// Diagnostics is the ordered set of findings accumulated during decoding.
type Diagnostics []Diagnostic

// Has reports whether any finding of the given kind is present.
func (ds Diagnostics) Has(kind DiagKind) bool {
	return ds.Count(kind) > 0
}

// Count returns the number of findings of the given kind.
func (ds Diagnostics) Count(kind DiagKind) int {
	n := 0
	for _, d := range ds {
		if d.Kind == kind {
			n++
		}
	}

	return n
}
