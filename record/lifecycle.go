package record

import (
	"fmt"
	"time"

	"github.com/cadwire/dxfio/errs"
	"github.com/cadwire/dxfio/internal/options"
	"github.com/cadwire/dxfio/tag"
)

// Defaults carries the drawing-wide default values Init hooks consume: the
// default layer, linetype and text style, and the clock behind computed
// timestamp defaults. It replaces the process-wide constants of older
// implementations; callers build one per drawing and pass it explicitly.
type Defaults struct {
	Layer     string
	Linetype  string
	TextStyle string
	clock     func() time.Time
}

// DefaultsOption represents a functional option for configuring Defaults.
type DefaultsOption = options.Option[*Defaults]

// WithDefaultLayer overrides the default layer name (normally "0").
func WithDefaultLayer(name string) DefaultsOption {
	return options.New(func(d *Defaults) error {
		if name == "" {
			return fmt.Errorf("default layer name must not be empty")
		}
		d.Layer = name

		return nil
	})
}

// WithDefaultLinetype overrides the default linetype name (normally "BYLAYER").
func WithDefaultLinetype(name string) DefaultsOption {
	return options.New(func(d *Defaults) error {
		if name == "" {
			return fmt.Errorf("default linetype name must not be empty")
		}
		d.Linetype = name

		return nil
	})
}

// WithDefaultTextStyle overrides the default text style name (normally "STANDARD").
func WithDefaultTextStyle(name string) DefaultsOption {
	return options.New(func(d *Defaults) error {
		if name == "" {
			return fmt.Errorf("default text style name must not be empty")
		}
		d.TextStyle = name

		return nil
	})
}

// WithClock overrides the clock behind computed timestamp defaults.
// Intended for tests that need deterministic creation stamps.
func WithClock(clock func() time.Time) DefaultsOption {
	return options.New(func(d *Defaults) error {
		if clock == nil {
			return fmt.Errorf("clock must not be nil")
		}
		d.clock = clock

		return nil
	})
}

// NewDefaults builds the drawing defaults, starting from the format's
// declared values: layer "0", linetype "BYLAYER", text style "STANDARD",
// wall clock time.
func NewDefaults(opts ...DefaultsOption) (Defaults, error) {
	d := Defaults{
		Layer:     "0",
		Linetype:  "BYLAYER",
		TextStyle: "STANDARD",
		clock:     time.Now,
	}

	if err := options.Apply(&d, opts...); err != nil {
		return Defaults{}, err
	}

	return d, nil
}

// JulianNow returns the current clock reading as a Julian day number, the
// representation timestamp defaults are stored in.
func (d Defaults) JulianNow() float64 {
	clock := d.clock
	if clock == nil {
		clock = time.Now
	}

	return JulianDay(clock())
}

// julianUnixEpoch is the Julian day number of 1970-01-01 00:00:00 UTC.
const julianUnixEpoch = 2440587.5

// JulianDay converts a calendar time to a fractional Julian day number.
func JulianDay(t time.Time) float64 {
	return julianUnixEpoch + float64(t.UnixNano())/float64(24*time.Hour)
}

// Init promotes a zeroed record: it stamps the creation time and applies the
// table's declared defaults.
func Init[R Record](tbl *Table[R], rec R, defs Defaults) {
	rec.base().created = defs.JulianNow()

	if tbl.Init != nil {
		tbl.Init(rec, defs)
	}
}

// Read composes the lifecycle's decode path: init (defaults applied), decode
// against the table, then the table's default-substitution rules. The record
// never leaves Read with a field in an invalid state: anything the stream did
// not set, or set malformed, holds its declared default.
//
// Returns:
//   - tag.Tag: The terminating group 0 tag, already read
//   - error: Decode failure (I/O or truncated stream)
func Read[R Record](d *Decoder, tbl *Table[R], defs Defaults, rec R) (tag.Tag, error) {
	Init(tbl, rec, defs)

	next, err := Decode(d, tbl, rec)
	if err != nil {
		return tag.Tag{}, err
	}

	if tbl.Normalize != nil {
		tbl.Normalize(rec, defs)
	}

	return next, nil
}

// Write runs the encode path; it is Encode under the lifecycle's name.
func Write[R Record](e *Encoder, tbl *Table[R], rec R) error {
	return Encode(e, tbl, rec)
}

// Link attaches succ as rec's successor in a same-type sequence.
func Link(rec, succ Record) {
	rec.base().next = succ
}

// Detach unlinks and returns rec's successor, nil when rec is the tail.
// A record must be detached from its successor before it can be released.
func Detach(rec Record) Record {
	b := rec.base()
	next := b.next
	b.next = nil

	return next
}

// Release releases a record's owned collections and marks it released.
//
// A record whose next-record link is still attached is NOT released: the
// caller must detach the successor first, otherwise the rest of the chain
// would silently leak. Releasing twice is likewise an error.
//
// Returns:
//   - error: errs.ErrSuccessorAttached when the next link is non-nil,
//     errs.ErrRecordReleased on double release
func Release(rec Record) error {
	b := rec.base()

	if b.released {
		return errs.ErrRecordReleased
	}
	if b.next != nil {
		return errs.ErrSuccessorAttached
	}

	if fr, ok := rec.(FieldReleaser); ok {
		fr.ReleaseFields()
	}

	b.owners.Release()
	b.hardOwners.Release()
	b.reactors.Release()
	b.released = true

	return nil
}

// ReleaseChain releases every record in a linked sequence, walking the next
// links iteratively so arbitrarily long chains cannot grow the stack.
func ReleaseChain(head Record) error {
	for cur := head; cur != nil; {
		next := Detach(cur)
		if err := Release(cur); err != nil {
			return err
		}
		cur = next
	}

	return nil
}
