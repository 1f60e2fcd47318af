// Package record implements the tagged-record codec core: the shared decode
// and encode engine every concrete record type (entity, table entry, object)
// runs on.
//
// A record type is described entirely by its field table, an ordered list of
// (group code, decode rule, emit rule, minimum version) entries. The engine
// drives a tag.Reader against the table until the terminating type-name tag,
// and walks the table in declared order on the way out, applying default
// suppression and version gating. Everything common to all records (the
// identifier handle, owner references, reactor and extension-dictionary
// blocks, the next-record link) lives on Base and is handled by the engine,
// never by individual tables.
//
// # Lifecycle
//
// Records move through new (zeroed) -> init (defaults applied) -> read or
// populate -> write -> release. Release refuses a record whose next-record
// link is still attached; detach the successor first. ReleaseChain walks a
// linked sequence iteratively and releases every record in it.
//
// # Diagnostics
//
// The decoder is maximally tolerant: malformed values, unknown group codes
// and subclass-marker mismatches become Diagnostic entries and decoding
// continues. Only I/O failures abort a record. Diagnostics accumulate on the
// Decoder and can be mirrored to a zerolog logger via WithDecoderLogger.
package record
