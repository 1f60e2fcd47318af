package record

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/cadwire/dxfio/encoding"
	"github.com/cadwire/dxfio/errs"
	"github.com/cadwire/dxfio/format"
	"github.com/cadwire/dxfio/internal/options"
	"github.com/cadwire/dxfio/tag"
)

// Decoder drives a tag.Reader against field tables, producing populated
// records one at a time. It carries the target format version, the
// accumulated diagnostics, and an optional logger that mirrors every
// diagnostic as a warn-level event.
//
// Note: The Decoder is NOT thread-safe. Each stream being decoded must own
// its own Decoder and Reader.
type Decoder struct {
	r       *tag.Reader
	version format.Version
	logger  zerolog.Logger
	diags   Diagnostics
}

// DecoderOption represents a functional option for configuring a Decoder.
type DecoderOption = options.Option[*Decoder]

// WithDecoderLogger mirrors diagnostics to the given logger as they are
// reported. Without this option diagnostics only accumulate on the Decoder.
func WithDecoderLogger(logger zerolog.Logger) DecoderOption {
	return options.NoError(func(d *Decoder) {
		d.logger = logger
	})
}

// WithMaxValueLen caps the accepted value-line length in bytes on the
// decoder's underlying reader. A longer value line fails the read with
// errs.ErrValueTooLong.
func WithMaxValueLen(n int) DecoderOption {
	return options.New(func(d *Decoder) error {
		if n <= 0 {
			return fmt.Errorf("max value length must be positive, got %d", n)
		}
		d.r.SetMaxValueLen(n)

		return nil
	})
}

// NewDecoder creates a Decoder over the given tag reader targeting the given
// format version.
//
// Returns:
//   - *Decoder: New decoder instance
//   - error: errs.ErrUnknownVersion when the version is not a known revision,
//     or an option application error
func NewDecoder(r *tag.Reader, version format.Version, opts ...DecoderOption) (*Decoder, error) {
	if !version.Supported() {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownVersion, version)
	}

	d := &Decoder{
		r:       r,
		version: version,
		logger:  zerolog.Nop(),
	}

	if err := options.Apply(d, opts...); err != nil {
		return nil, err
	}

	return d, nil
}

// Version returns the target format version.
func (d *Decoder) Version() format.Version {
	return d.version
}

// Reader returns the underlying tag reader.
func (d *Decoder) Reader() *tag.Reader {
	return d.r
}

// Diagnostics returns every finding reported since the last reset, in order.
func (d *Decoder) Diagnostics() Diagnostics {
	return d.diags
}

// ResetDiagnostics clears the accumulated findings.
func (d *Decoder) ResetDiagnostics() {
	d.diags = nil
}

// report records one finding and mirrors it to the logger.
func (d *Decoder) report(kind DiagKind, recType string, t tag.Tag, msg string) {
	d.diags = append(d.diags, Diagnostic{
		Kind:    kind,
		Record:  recType,
		Code:    t.Code,
		Line:    t.Line,
		Message: msg,
	})

	d.logger.Warn().
		Str("kind", kind.String()).
		Str("record", recType).
		Int("code", t.Code).
		Int("line", t.Line).
		Msg(msg)
}

// Decode populates rec from the tag stream using the given field table.
//
// The caller must already have consumed the record's own type-name tag; the
// decoder runs until the next group 0 tag and hands that tag back unconsumed,
// since it announces the following record.
//
// Recoverable problems (malformed values, unknown codes, marker mismatches,
// fields below their minimum version) become diagnostics and decoding
// continues; only an I/O failure or a truncated stream aborts the record.
//
// Returns:
//   - tag.Tag: The terminating group 0 tag, already read
//   - error: errs.ErrUnexpectedEOF on a truncated record, or the underlying
//     I/O error with line context
func Decode[R Record](d *Decoder, tbl *Table[R], rec R) (tag.Tag, error) {
	b := rec.base()
	seen := make(map[int]int, len(tbl.Fields))

	for {
		t, err := d.r.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return tag.Tag{}, fmt.Errorf("%w: %s at line %d", errs.ErrUnexpectedEOF, tbl.TypeName, d.r.Line())
			}

			return tag.Tag{}, err
		}

		if t.Code == format.CodeTypeName {
			return t, nil
		}

		if t.Code == format.CodeControl {
			if err := d.decodeControlBlock(tbl.TypeName, t, b); err != nil {
				return tag.Tag{}, err
			}

			continue
		}

		// Schema dispatch comes first: a table may capture codes the core
		// otherwise treats structurally, e.g. a comment record's 999 lines.
		if f, ok := tbl.fieldFor(t.Code, seen[t.Code]); ok {
			seen[t.Code]++
			dispatchField(d, tbl, rec, f, t)

			continue
		}

		switch t.Code {
		case format.CodeHandle:
			v, err := encoding.Decode(t.Code, t.Value)
			if err != nil {
				d.report(DiagMalformedValue, tbl.TypeName, t, err.Error())
				continue
			}
			b.handle = v.Handle

		case format.CodeSubclass:
			// A marker the table does not declare. Harmless; the format is
			// not strict about markers.
			d.report(DiagSubclassMismatch, tbl.TypeName, t,
				fmt.Sprintf("undeclared subclass marker %q", t.Value))

		case format.CodeSoftOwner:
			d.decodeOwner(tbl.TypeName, t, &b.owners)

		case format.CodeHardOwner:
			d.decodeOwner(tbl.TypeName, t, &b.hardOwners)

		case format.CodeComment:
			// Structural comment; carries no data for this record type.

		default:
			d.report(DiagUnknownCode, tbl.TypeName, t,
				fmt.Sprintf("group code %d not in field table, value discarded", t.Code))
		}
	}
}

// dispatchField decodes one tag against its resolved table entry.
func dispatchField[R Record](d *Decoder, tbl *Table[R], rec R, f *Field[R], t tag.Tag) {
	if f.Marker != "" {
		if !d.version.AtLeast(f.Min) {
			d.report(DiagVersionMismatch, tbl.TypeName, t,
				fmt.Sprintf("subclass marker %q requires %s, decoding for %s", t.Value, f.Min, d.version))
		}
		if t.Value != f.Marker {
			d.report(DiagSubclassMismatch, tbl.TypeName, t,
				fmt.Sprintf("subclass marker %q, expected %q", t.Value, f.Marker))
		}

		return
	}

	v, err := encoding.Decode(t.Code, t.Value)
	if err != nil {
		// Field keeps its default.
		d.report(DiagMalformedValue, tbl.TypeName, t, err.Error())
		return
	}

	if f.Min != format.VersionAny && !d.version.AtLeast(f.Min) {
		// Accepted but suspect.
		d.report(DiagVersionMismatch, tbl.TypeName, t,
			fmt.Sprintf("field %s requires %s, decoding for %s", f.Name, f.Min, d.version))
	}

	if f.Decode != nil {
		f.Decode(rec, v)
	}
}

// decodeOwner parses a bare owner-handle tag and appends it to the given
// repeated-reference collection. Every occurrence accumulates; the first one
// doubles as the record's primary owner slot.
func (d *Decoder) decodeOwner(recType string, t tag.Tag, into *List[uint64]) {
	v, err := encoding.Decode(t.Code, t.Value)
	if err != nil {
		d.report(DiagMalformedValue, recType, t, err.Error())
		return
	}

	into.PushBack(v.Handle)
}

// decodeControlBlock consumes a 102-bracketed group: {ACAD_REACTORS} wrapping
// soft-pointer values or {ACAD_XDICTIONARY} wrapping a hard-pointer value.
// An unrecognized marker skips the whole block with a diagnostic.
func (d *Decoder) decodeControlBlock(recType string, open tag.Tag, b *Base) error {
	known := open.Value == tag.OpenReactors || open.Value == tag.OpenXDict

	if !known {
		d.report(DiagUnknownControl, recType, open,
			fmt.Sprintf("unrecognized control group %q", open.Value))
	}

	if known && !d.version.AtLeast(format.R13) {
		d.report(DiagVersionMismatch, recType, open,
			fmt.Sprintf("control group %q requires %s, decoding for %s", open.Value, format.R13, d.version))
	}

	for {
		t, err := d.r.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: unterminated control group %q", errs.ErrUnexpectedEOF, open.Value)
			}

			return err
		}

		if t.Code == format.CodeControl && t.Value == tag.CloseBracket {
			return nil
		}

		if !known {
			continue
		}

		switch {
		case open.Value == tag.OpenReactors && t.Code == format.CodeSoftOwner:
			d.decodeOwner(recType, t, &b.reactors)

		case open.Value == tag.OpenXDict && t.Code == format.CodeHardOwner:
			v, err := encoding.Decode(t.Code, t.Value)
			if err != nil {
				d.report(DiagMalformedValue, recType, t, err.Error())
				continue
			}
			b.xdict = v.Handle

		default:
			d.report(DiagUnknownCode, recType, t,
				fmt.Sprintf("group code %d inside %q, value discarded", t.Code, open.Value))
		}
	}
}
