package record

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cadwire/dxfio/encoding"
	"github.com/cadwire/dxfio/errs"
	"github.com/cadwire/dxfio/format"
	"github.com/cadwire/dxfio/internal/options"
	"github.com/cadwire/dxfio/tag"
)

// Encoder walks populated records against their field tables and emits tag
// pairs for a chosen target format version.
//
// Field order is reproduced exactly as the table declares it; emission
// predicates (default suppression, version gates, paired-field suppression)
// decide per entry whether the pair appears at all.
//
// Note: The Encoder is NOT thread-safe.
type Encoder struct {
	w       *tag.Writer
	version format.Version
	logger  zerolog.Logger
}

// EncoderOption represents a functional option for configuring an Encoder.
type EncoderOption = options.Option[*Encoder]

// WithEncoderLogger attaches a logger for encode-time events.
func WithEncoderLogger(logger zerolog.Logger) EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.logger = logger
	})
}

// NewEncoder creates an Encoder over the given tag writer targeting the given
// format version.
//
// Returns:
//   - *Encoder: New encoder instance
//   - error: errs.ErrUnknownVersion when the version is not a known revision,
//     or an option application error
func NewEncoder(w *tag.Writer, version format.Version, opts ...EncoderOption) (*Encoder, error) {
	if !version.Supported() {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownVersion, version)
	}

	e := &Encoder{
		w:       w,
		version: version,
		logger:  zerolog.Nop(),
	}

	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

// Version returns the target format version.
func (e *Encoder) Version() format.Version {
	return e.version
}

// Writer returns the underlying tag writer.
func (e *Encoder) Writer() *tag.Writer {
	return e.w
}

// Encode emits rec as a complete record: the type-name tag, the common groups
// from Base, then every table field that passes its emission predicate, in
// table order.
//
// Required fields are validated before the first byte is written, so a
// missing required field fails the operation without producing partial
// output.
//
// Returns:
//   - error: errs.ErrRequiredFieldMissing (wrapped with the field name) when
//     a required field has no value, errs.ErrRecordReleased for a released
//     record, or the underlying write error
func Encode[R Record](e *Encoder, tbl *Table[R], rec R) error {
	b := rec.base()
	if b.released {
		return fmt.Errorf("%w: %s", errs.ErrRecordReleased, tbl.TypeName)
	}

	for i := range tbl.Fields {
		f := &tbl.Fields[i]
		if !f.Required || !e.gate(f.Min) {
			continue
		}
		if _, ok := f.Emit(rec); !ok {
			return fmt.Errorf("%w: %s.%s", errs.ErrRequiredFieldMissing, tbl.TypeName, f.Name)
		}
	}

	if err := e.w.Write(format.CodeTypeName, tbl.TypeName); err != nil {
		return err
	}

	if err := e.encodeBase(b); err != nil {
		return err
	}

	for i := range tbl.Fields {
		f := &tbl.Fields[i]
		if !e.gate(f.Min) {
			continue
		}

		if err := encodeField(e, rec, f); err != nil {
			return fmt.Errorf("encode %s.%s: %w", tbl.TypeName, f.Name, err)
		}
	}

	return nil
}

// gate reports whether a field with the given minimum version is emitted
// under the encoder's target version.
func (e *Encoder) gate(min format.Version) bool {
	return min == format.VersionAny || e.version.AtLeast(min)
}

// encodeBase emits the common groups: the identifier (suppressed while
// unassigned), the bracketed reactor and extension-dictionary blocks
// (version gated), and the bare owner references.
func (e *Encoder) encodeBase(b *Base) error {
	if b.handle != HandleNone {
		if err := e.writeValue(format.CodeHandle, encoding.Handle(b.handle)); err != nil {
			return err
		}
	}

	if e.gate(format.R13) {
		if b.reactors.Len() > 0 {
			if err := e.w.Write(format.CodeControl, tag.OpenReactors); err != nil {
				return err
			}
			for h := range b.reactors.All() {
				if err := e.writeValue(format.CodeSoftOwner, encoding.Handle(h)); err != nil {
					return err
				}
			}
			if err := e.w.Write(format.CodeControl, tag.CloseBracket); err != nil {
				return err
			}
		}

		if b.xdict != HandleNone {
			if err := e.w.Write(format.CodeControl, tag.OpenXDict); err != nil {
				return err
			}
			if err := e.writeValue(format.CodeHardOwner, encoding.Handle(b.xdict)); err != nil {
				return err
			}
			if err := e.w.Write(format.CodeControl, tag.CloseBracket); err != nil {
				return err
			}
		}
	}

	for h := range b.owners.All() {
		if err := e.writeValue(format.CodeSoftOwner, encoding.Handle(h)); err != nil {
			return err
		}
	}

	for h := range b.hardOwners.All() {
		if err := e.writeValue(format.CodeHardOwner, encoding.Handle(h)); err != nil {
			return err
		}
	}

	return nil
}

// encodeField emits one table entry: a marker verbatim, a Repeat field's
// whole collection, or a scalar that passes its emission predicate.
func encodeField[R Record](e *Encoder, rec R, f *Field[R]) error {
	if f.Marker != "" {
		return e.w.Write(format.CodeSubclass, f.Marker)
	}

	if f.Repeat {
		if f.EmitList == nil {
			return nil
		}
		for v := range f.EmitList(rec) {
			if err := e.writeValue(f.Code, v); err != nil {
				return err
			}
		}

		return nil
	}

	if f.Emit == nil {
		return nil
	}

	v, ok := f.Emit(rec)
	if !ok {
		return nil
	}

	return e.writeValue(f.Code, v)
}

// writeValue encodes a typed value under its group code and emits the pair.
func (e *Encoder) writeValue(code int, v encoding.Value) error {
	raw, err := encoding.Encode(code, v)
	if err != nil {
		return err
	}

	return e.w.Write(code, raw)
}
