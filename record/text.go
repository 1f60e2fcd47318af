package record

import (
	"github.com/cadwire/dxfio/encoding"
	"github.com/cadwire/dxfio/format"
)

// textDefaultHeight is the substitute for a missing or zero text height.
const textDefaultHeight = 1.0

// Text is a single-line text entity.
type Text struct {
	Base

	Layer    string     // default layer "0"
	Linetype string     // default BYLAYER, suppressed at default
	Insert   [3]float64 // insertion (base) point
	Height   float64    // default 1.0
	Value    string     // the text itself
	Rotation float64    // degrees, default 0, suppressed at default
	Style    string     // default STANDARD, suppressed at default
	HAlign   int16      // horizontal alignment, default 0, suppressed at default
	Align    [3]float64 // alignment point, suppressed while equal to Insert
}

// NewText creates a text entity with the given value and the drawing
// defaults applied.
func NewText(value string, defs Defaults) *Text {
	t := &Text{Value: value}
	TextTable.Init(t, defs)

	return t
}

// textEntityFields builds the shared leading entries of TEXT-like entities:
// the entity marker, layer and linetype. ATTDEF reuses them so the two
// tables cannot drift apart.
func textEntityFields[R Record](layer func(R) *string, linetype func(R) *string) []Field[R] {
	return []Field[R]{
		{
			Code:   format.CodeSubclass,
			Name:   "entity marker",
			Min:    format.R13,
			Marker: "AcDbEntity",
		},
		{
			Code: 8,
			Name: "layer",
			Decode: func(rec R, v encoding.Value) {
				*layer(rec) = v.Str
			},
			Emit: func(rec R) (encoding.Value, bool) {
				return encoding.String(*layer(rec)), true
			},
		},
		{
			Code: 6,
			Name: "linetype",
			Decode: func(rec R, v encoding.Value) {
				*linetype(rec) = v.Str
			},
			Emit: func(rec R) (encoding.Value, bool) {
				// BYLAYER is implied; only an explicit override travels.
				return encoding.String(*linetype(rec)), *linetype(rec) != "BYLAYER"
			},
		},
	}
}

// textBodyFields builds the entries shared by the TEXT and ATTDEF bodies:
// insertion point, height, value, rotation, style, alignment. get extracts
// the embedded text state from the concrete record.
func textBodyFields[R Record](get func(R) *Text) []Field[R] {
	coord := func(axis int) Field[R] {
		return Field[R]{
			Code: 10 + axis*10,
			Name: "insertion point",
			Decode: func(rec R, v encoding.Value) {
				get(rec).Insert[axis] = v.Float
			},
			Emit: func(rec R) (encoding.Value, bool) {
				return encoding.Double(get(rec).Insert[axis]), true
			},
		}
	}
	alignCoord := func(axis int) Field[R] {
		return Field[R]{
			Code: 11 + axis*10,
			Name: "alignment point",
			Decode: func(rec R, v encoding.Value) {
				get(rec).Align[axis] = v.Float
			},
			Emit: func(rec R) (encoding.Value, bool) {
				t := get(rec)
				// Suppressed while the alignment point sits on the base point.
				return encoding.Double(t.Align[axis]), t.Align != t.Insert
			},
		}
	}

	return []Field[R]{
		coord(0), coord(1), coord(2),
		{
			Code: 40,
			Name: "height",
			Decode: func(rec R, v encoding.Value) {
				get(rec).Height = v.Float
			},
			Emit: func(rec R) (encoding.Value, bool) {
				return encoding.Double(get(rec).Height), true
			},
		},
		{
			Code: 1,
			Name: "value",
			Decode: func(rec R, v encoding.Value) {
				get(rec).Value = v.Str
			},
			Emit: func(rec R) (encoding.Value, bool) {
				return encoding.String(get(rec).Value), true
			},
		},
		{
			Code: 50,
			Name: "rotation",
			Decode: func(rec R, v encoding.Value) {
				get(rec).Rotation = v.Float
			},
			Emit: func(rec R) (encoding.Value, bool) {
				return encoding.Double(get(rec).Rotation), get(rec).Rotation != 0
			},
		},
		{
			Code: 7,
			Name: "style",
			Decode: func(rec R, v encoding.Value) {
				get(rec).Style = v.Str
			},
			Emit: func(rec R) (encoding.Value, bool) {
				return encoding.String(get(rec).Style), get(rec).Style != "STANDARD"
			},
		},
		{
			Code: 72,
			Name: "horizontal alignment",
			Decode: func(rec R, v encoding.Value) {
				get(rec).HAlign = int16(v.Int)
			},
			Emit: func(rec R) (encoding.Value, bool) {
				return encoding.Int16(get(rec).HAlign), get(rec).HAlign != 0
			},
		},
		alignCoord(0), alignCoord(1), alignCoord(2),
	}
}

// initText applies the drawing defaults to the shared text state.
func initText(t *Text, defs Defaults) {
	t.Layer = defs.Layer
	t.Linetype = defs.Linetype
	t.Style = defs.TextStyle
	t.Height = textDefaultHeight
}

// normalizeText applies the default-substitution rules after decoding.
func normalizeText(t *Text, defs Defaults) {
	if t.Height == 0 {
		t.Height = textDefaultHeight
	}
	if t.Style == "" {
		t.Style = defs.TextStyle
	}
	if t.Layer == "" {
		t.Layer = defs.Layer
	}
	if t.Linetype == "" {
		t.Linetype = defs.Linetype
	}
}

// TextTable is the field table for TEXT entities.
var TextTable = NewTable[*Text]("TEXT",
	initText,
	normalizeText,
	append(
		textEntityFields[*Text](
			func(t *Text) *string { return &t.Layer },
			func(t *Text) *string { return &t.Linetype },
		),
		append(
			[]Field[*Text]{{
				Code:   format.CodeSubclass,
				Name:   "text marker",
				Min:    format.R13,
				Marker: "AcDbText",
			}},
			textBodyFields[*Text](func(t *Text) *Text { return t })...,
		)...,
	)...,
)
