package record

import (
	"github.com/cadwire/dxfio/encoding"
	"github.com/cadwire/dxfio/format"
)

// AttDef is an attribute definition entity: a text body plus the prompt,
// tag and attribute flags that template an attribute.
//
// The tag is the record's required field: an attribute definition with an
// empty tag cannot be written.
type AttDef struct {
	Text

	Prompt string
	Tag    string
	AFlags int16 // attribute flags (invisible, constant, verify, preset)
}

// NewAttDef creates an attribute definition with the given tag and the
// drawing defaults applied.
func NewAttDef(tagName string, defs Defaults) *AttDef {
	a := &AttDef{Tag: tagName}
	AttDefTable.Init(a, defs)

	return a
}

// AttDefTable is the field table for ATTDEF entities. It shares the entity
// and text body entries with TextTable and appends the attribute sub-schema.
var AttDefTable = NewTable[*AttDef]("ATTDEF",
	func(a *AttDef, defs Defaults) {
		initText(&a.Text, defs)
	},
	func(a *AttDef, defs Defaults) {
		normalizeText(&a.Text, defs)
	},
	append(
		textEntityFields[*AttDef](
			func(a *AttDef) *string { return &a.Layer },
			func(a *AttDef) *string { return &a.Linetype },
		),
		append(
			append(
				[]Field[*AttDef]{{
					Code:   format.CodeSubclass,
					Name:   "text marker",
					Min:    format.R13,
					Marker: "AcDbText",
				}},
				textBodyFields[*AttDef](func(a *AttDef) *Text { return &a.Text })...,
			),
			Field[*AttDef]{
				Code:   format.CodeSubclass,
				Name:   "attribute definition marker",
				Min:    format.R13,
				Marker: "AcDbAttributeDefinition",
			},
			Field[*AttDef]{
				Code: 3,
				Name: "prompt",
				Decode: func(a *AttDef, v encoding.Value) {
					a.Prompt = v.Str
				},
				Emit: func(a *AttDef) (encoding.Value, bool) {
					return encoding.String(a.Prompt), a.Prompt != ""
				},
			},
			Field[*AttDef]{
				Code:     2,
				Name:     "tag",
				Required: true,
				Decode: func(a *AttDef, v encoding.Value) {
					a.Tag = v.Str
				},
				Emit: func(a *AttDef) (encoding.Value, bool) {
					return encoding.String(a.Tag), a.Tag != ""
				},
			},
			Field[*AttDef]{
				Code: 70,
				Name: "attribute flags",
				Decode: func(a *AttDef, v encoding.Value) {
					a.AFlags = int16(v.Int)
				},
				Emit: func(a *AttDef) (encoding.Value, bool) {
					return encoding.Int16(a.AFlags), true
				},
			},
		)...,
	)...,
)
