package record

import (
	"iter"

	"github.com/cadwire/dxfio/encoding"
	"github.com/cadwire/dxfio/format"
)

// Field is one entry of a record type's field table: the binding between a
// group code and a typed field of R, with its decode rule, emit rule and
// version gate. The table is the only per-type knowledge in the codec.
type Field[R Record] struct {
	// Code is the group code this entry binds.
	Code int

	// Name identifies the field in diagnostics.
	Name string

	// Min is the minimum format version the field travels under.
	// format.VersionAny means no gate.
	Min format.Version

	// Repeat marks an append-to-collection field: every occurrence of Code
	// is pushed onto a collection instead of overwriting, and emission walks
	// EmitList instead of Emit.
	Repeat bool

	// Required marks a field that must emit a value; encoding a record whose
	// Emit reports absence fails with errs.ErrRequiredFieldMissing.
	Required bool

	// Marker, when non-empty, turns the entry into a subclass marker
	// (group 100): decoding compares the incoming string against it and
	// encoding emits it verbatim. Decode and Emit are ignored.
	Marker string

	// Decode stores a decoded value into the record.
	Decode func(rec R, v encoding.Value)

	// Emit produces the field's current value. The second return value is
	// the emission predicate: false suppresses the (code, value) pair, e.g.
	// when the value equals the field's declared default.
	Emit func(rec R) (encoding.Value, bool)

	// EmitList produces the values of a Repeat field in collection order.
	EmitList func(rec R) iter.Seq[encoding.Value]
}

// Table is the declarative description of one record type: its type name,
// init and normalize hooks, and its fields in canonical emission order.
// Field order is part of the format's compatibility contract; the encoder
// reproduces it exactly.
type Table[R Record] struct {
	// TypeName is the group 0 name announcing the record, e.g. "TEXT".
	TypeName string

	// Init applies the type's declared defaults to a zeroed record,
	// including computed defaults. May be nil.
	Init func(rec R, defs Defaults)

	// Normalize applies the type's default-substitution rules after
	// decoding, e.g. a zero height becomes 1.0. May be nil.
	Normalize func(rec R, defs Defaults)

	// Fields in canonical emission order.
	Fields []Field[R]

	// byCode maps a group code to the indices of its entries in table
	// order. A code mapped to several entries is disambiguated by
	// occurrence during decoding.
	byCode map[int][]int
}

// NewTable builds a Table and indexes its fields by group code.
func NewTable[R Record](typeName string, init, normalize func(R, Defaults), fields ...Field[R]) *Table[R] {
	t := &Table[R]{
		TypeName:  typeName,
		Init:      init,
		Normalize: normalize,
		Fields:    fields,
		byCode:    make(map[int][]int, len(fields)),
	}

	for i := range fields {
		code := fields[i].Code
		t.byCode[code] = append(t.byCode[code], i)
	}

	return t
}

// fieldFor resolves the table entry for the nth occurrence (zero-based) of a
// group code. Occurrences are routed positionally to the code's entries in
// table order; once the entries are exhausted the final entry receives the
// remainder.
func (t *Table[R]) fieldFor(code, occurrence int) (*Field[R], bool) {
	idxs, ok := t.byCode[code]
	if !ok {
		return nil, false
	}

	if occurrence >= len(idxs) {
		occurrence = len(idxs) - 1
	}

	return &t.Fields[idxs[occurrence]], true
}
