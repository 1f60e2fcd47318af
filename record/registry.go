package record

import (
	"fmt"
	"strings"

	"github.com/cadwire/dxfio/internal/hash"
)

// Registry is the drawing-level identifier and symbol-name index: it
// allocates handles for records built in memory, tracks every record by
// handle so soft-pointer references can be resolved after decoding, and
// indexes named records (layers, styles) under case-insensitive name keys.
//
// Note: The Registry is NOT thread-safe; each drawing owns one.
type Registry struct {
	next     uint64
	byHandle map[uint64]Record
	byName   map[uint64]namedRecord
}

// namedRecord keeps the original name next to the record so a hash-key
// collision between two different names is detected instead of silently
// resolving to the wrong record.
type namedRecord struct {
	name string
	rec  Record
}

// NewRegistry creates an empty registry. Handle allocation starts at 1;
// HandleNone is never allocated.
func NewRegistry() *Registry {
	return &Registry{
		next:     1,
		byHandle: make(map[uint64]Record),
		byName:   make(map[uint64]namedRecord),
	}
}

// Assign registers rec and returns its handle, allocating the next free one
// when the record's handle is unassigned. Registering a decoded record whose
// handle is already set bumps the allocator past it, so records built later
// in memory never collide with decoded identifiers.
func (g *Registry) Assign(rec Record) uint64 {
	b := rec.base()

	if b.handle == HandleNone {
		b.handle = g.next
	}
	if b.handle >= g.next {
		g.next = b.handle + 1
	}

	g.byHandle[b.handle] = rec

	return b.handle
}

// Resolve returns the record registered under the given handle.
func (g *Registry) Resolve(handle uint64) (Record, bool) {
	rec, ok := g.byHandle[handle]
	return rec, ok
}

// Index registers rec under a symbol name. Lookup is case-insensitive.
//
// Returns:
//   - error: Key collision error when a different name already occupies the
//     same hash key
func (g *Registry) Index(name string, rec Record) error {
	key := hash.Key(name)

	if existing, ok := g.byName[key]; ok && !strings.EqualFold(existing.name, name) {
		return fmt.Errorf("name key collision: %q vs %q", name, existing.name)
	}

	g.byName[key] = namedRecord{name: name, rec: rec}

	return nil
}

// Lookup returns the record indexed under a symbol name, comparing names
// case-insensitively.
func (g *Registry) Lookup(name string) (Record, bool) {
	entry, ok := g.byName[hash.Key(name)]
	if !ok || !strings.EqualFold(entry.name, name) {
		return nil, false
	}

	return entry.rec, true
}

// Len returns the number of records registered by handle.
func (g *Registry) Len() int {
	return len(g.byHandle)
}
