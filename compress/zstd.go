package compress

// ZstdCompressor is the highest-ratio codec in the set, for archival and
// cold storage of drawings.
//
// The Compress and Decompress methods live in zstd_cgo.go and zstd_pure.go;
// the gozstd build tag selects between the cgo-backed and pure-Go backends.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstandard codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
