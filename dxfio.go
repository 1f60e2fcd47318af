// Package dxfio persists and reconstructs drawing data in a line-oriented,
// tag-delimited text format: every datum travels as a numeric group code line
// followed by its value line, and records decode and re-encode through
// declarative field tables shared by every record type.
//
// # Core Features
//
//   - One generic decode/encode engine driven by per-type field tables
//   - Format-version gating per field and per subclass marker
//   - Maximally tolerant decoding: malformed values, unknown codes and marker
//     mismatches become structured diagnostics, never fatal errors
//   - Repeatable fields and record sequences as append-only collections
//   - Handle and symbol-name registry with xxHash64 name keys
//   - Optional at-rest compression (Zstd, S2, LZ4) for whole drawing streams
//
// # Basic Usage
//
// Decoding a record stream:
//
//	import "github.com/cadwire/dxfio"
//
//	decoder, _ := dxfio.NewDecoder(file, format.R2000)
//	defs, _ := record.NewDefaults()
//	head, n, end, err := record.ReadSequence(decoder, record.TextTable, defs,
//	    func() *record.Text { return &record.Text{} })
//
// Encoding it back:
//
//	encoder, _ := dxfio.NewEncoder(out, format.R2000)
//	_, err = record.WriteSequence(encoder, record.TextTable, head)
//
// Archiving a drawing body at rest:
//
//	packed, _ := dxfio.CompressDrawing(body, format.CompressionZstd)
//	body, _ = dxfio.ExpandDrawing(packed, format.CompressionZstd)
//
// Decoding is single-threaded per stream: every stream owns its own reader
// and decoder, and independent streams decode concurrently without shared
// state.
package dxfio

import (
	"io"

	"github.com/cadwire/dxfio/compress"
	"github.com/cadwire/dxfio/format"
	"github.com/cadwire/dxfio/internal/hash"
	"github.com/cadwire/dxfio/record"
	"github.com/cadwire/dxfio/tag"
)

// NameKey computes the case-insensitive xxHash64 key of a symbol name, the
// key the record registry indexes named records under.
func NameKey(name string) uint64 {
	return hash.Key(name)
}

// NewDecoder creates a record decoder reading tag pairs from r, targeting
// the given format version.
//
// Available options:
//   - record.WithDecoderLogger(logger) mirrors diagnostics to a zerolog logger
//
// Returns an error for an unknown format version.
func NewDecoder(r io.Reader, version format.Version, opts ...record.DecoderOption) (*record.Decoder, error) {
	return record.NewDecoder(tag.NewReader(r), version, opts...)
}

// NewEncoder creates a record encoder writing tag pairs to w, targeting the
// given format version.
//
// Returns an error for an unknown format version.
func NewEncoder(w io.Writer, version format.Version, opts ...record.EncoderOption) (*record.Encoder, error) {
	return record.NewEncoder(tag.NewWriter(w), version, opts...)
}

// CompressDrawing compresses a complete drawing stream body for storage at
// rest using the given compression type.
func CompressDrawing(body []byte, compression format.CompressionType) ([]byte, error) {
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	return codec.Compress(body)
}

// ExpandDrawing restores a drawing stream body previously packed with
// CompressDrawing under the same compression type.
func ExpandDrawing(packed []byte, compression format.CompressionType) ([]byte, error) {
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	return codec.Decompress(packed)
}
