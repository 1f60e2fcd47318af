package record

// HandleNone is the sentinel for an unassigned record identifier.
// A record whose handle is HandleNone never emits its group 5 pair.
const HandleNone uint64 = 0

// Record is implemented by every concrete record type. Types gain the
// implementation by embedding Base; the embedded method set carries the
// unexported accessor the engine needs.
type Record interface {
	base() *Base
}

// FieldReleaser is implemented by record types that own collections beyond
// the common ones on Base. Release calls it before marking the record
// released.
type FieldReleaser interface {
	ReleaseFields()
}

// Base holds the state shared by every record: the identifier handle, owner
// references, reactor and extension-dictionary pointers, the next-record
// link, and the creation stamp applied at init time.
//
// Concrete record types embed Base as their first field.
type Base struct {
	handle     uint64
	owners     List[uint64] // bare 330 soft-pointer owner handles, in input order
	hardOwners List[uint64] // bare 360 hard-pointer owner handles, in input order
	reactors   List[uint64] // 330 values inside a {ACAD_REACTORS} block
	xdict      uint64       // 360 value inside a {ACAD_XDICTIONARY} block
	created    float64      // Julian day stamp applied by Read/Init
	next       Record
	released   bool
}

func (b *Base) base() *Base { return b }

// Handle returns the record identifier, HandleNone when unassigned.
func (b *Base) Handle() uint64 {
	return b.handle
}

// SetHandle assigns the record identifier.
func (b *Base) SetHandle(h uint64) {
	b.handle = h
}

// Owner returns the first soft-pointer owner handle.
// The second return value is false when no owner reference is present.
func (b *Base) Owner() (uint64, bool) {
	return b.owners.First()
}

// Owners returns the collection of soft-pointer owner handles in input order.
// A record with N bare 330 tags yields N entries here.
func (b *Base) Owners() *List[uint64] {
	return &b.owners
}

// HardOwners returns the collection of hard-pointer owner handles in input order.
func (b *Base) HardOwners() *List[uint64] {
	return &b.hardOwners
}

// Reactors returns the soft-pointer handles collected from the record's
// reactor block.
func (b *Base) Reactors() *List[uint64] {
	return &b.reactors
}

// XDict returns the extension-dictionary handle.
// The second return value is false when the record has no extension dictionary.
func (b *Base) XDict() (uint64, bool) {
	if b.xdict == HandleNone {
		return HandleNone, false
	}

	return b.xdict, true
}

// SetXDict assigns the extension-dictionary handle.
func (b *Base) SetXDict(h uint64) {
	b.xdict = h
}

// CreatedJulian returns the Julian-day creation stamp applied at init time.
// It is zero for records that were never initialized.
func (b *Base) CreatedJulian() float64 {
	return b.created
}

// Next returns the successor record in a same-type sequence, nil at the tail.
func (b *Base) Next() Record {
	return b.next
}

// Released reports whether the record has been released.
func (b *Base) Released() bool {
	return b.released
}
