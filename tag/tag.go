// Package tag implements the line-oriented tag stream underlying the drawing
// format: every datum travels as a pair of lines, a numeric group code
// followed by its raw value.
//
// The Reader pulls one (code, value) pair per call and tracks line numbers for
// diagnostics. The Writer emits pairs with the group code right-justified in a
// three-column field, matching the canonical on-disk layout.
package tag

// Tag is one decoded (group code, raw value) pair.
//
// Line is the 1-based line number of the group-code line in the source
// stream, kept for diagnostics; it is zero for tags built in memory.
type Tag struct {
	Code  int
	Value string
	Line  int
}

// Literal bracket markers carried by control (102) groups.
const (
	OpenReactors = "{ACAD_REACTORS"    // opens a reactor block wrapping soft-pointer values
	OpenXDict    = "{ACAD_XDICTIONARY" // opens an extension-dictionary block wrapping a hard-pointer value
	CloseBracket = "}"                 // closes either block
)
