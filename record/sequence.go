package record

import (
	"fmt"

	"github.com/cadwire/dxfio/errs"
	"github.com/cadwire/dxfio/format"
	"github.com/cadwire/dxfio/tag"
)

// ReadSequence decodes a run of consecutive same-type records into a chain
// linked by next pointers: the one-to-many shape table sections and comment
// runs use on the wire.
//
// The reader must be positioned at a group 0 type-name tag. Records are
// decoded while the name matches the table's type name; the first
// non-matching group 0 tag (e.g. ENDSEC) terminates the run and is returned
// unconsumed in the sequence sense, so the caller dispatches on it directly.
//
// alloc produces each zeroed record; Read applies defaults and decodes it.
//
// Returns:
//   - R: Head of the decoded chain, nil (zero) when the run is empty
//   - int: Number of records decoded
//   - tag.Tag: The terminating group 0 tag
//   - error: errs.ErrTypeNameMismatch when the stream is not positioned at a
//     group 0 tag, or a decode failure
func ReadSequence[R Record](d *Decoder, tbl *Table[R], defs Defaults, alloc func() R) (R, int, tag.Tag, error) {
	var (
		head, prev R
		count      int
	)

	t, err := d.r.Next()
	if err != nil {
		return head, 0, tag.Tag{}, err
	}

	for {
		if t.Code != format.CodeTypeName {
			return head, count, tag.Tag{}, fmt.Errorf("%w: group code %d at line %d, want 0",
				errs.ErrTypeNameMismatch, t.Code, t.Line)
		}

		if t.Value != tbl.TypeName {
			return head, count, t, nil
		}

		rec := alloc()
		t, err = Read(d, tbl, defs, rec)
		if err != nil {
			return head, count, tag.Tag{}, err
		}

		if count == 0 {
			head = rec
		} else {
			Link(prev, rec)
		}
		prev = rec
		count++
	}
}

// WriteSequence encodes a chain of same-type records in link order.
// head must not be nil.
//
// Returns:
//   - int: Number of records written
//   - error: Encode failure
func WriteSequence[R Record](e *Encoder, tbl *Table[R], head R) (int, error) {
	count := 0

	for cur := Record(head); cur != nil; cur = cur.base().next {
		rec, ok := cur.(R)
		if !ok {
			return count, fmt.Errorf("%w: mixed record types in %s chain", errs.ErrTypeNameMismatch, tbl.TypeName)
		}

		if err := Encode(e, tbl, rec); err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}
