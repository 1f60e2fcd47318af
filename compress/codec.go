package compress

import (
	"fmt"

	"github.com/cadwire/dxfio/errs"
	"github.com/cadwire/dxfio/format"
)

// Compressor compresses a complete drawing stream body.
type Compressor interface {
	// Compress compresses the input and returns the result.
	//
	// Memory management:
	//   - The returned slice is owned by the caller
	//   - The input slice is not modified
	//   - Internal buffers may be reused between calls
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a drawing stream body from its compressed form.
//
// Implementations validate the input framing and return an error for
// corrupted data or data produced by a different algorithm.
type Decompressor interface {
	// Decompress decompresses the input and returns the original bytes.
	//
	// Memory management:
	//   - The returned slice is owned by the caller
	//   - The input slice is not modified
	//   - Internal buffers may be reused between calls
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. Archive readers and writers hold one Codec
// per drawing.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory that creates a Codec for the given compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of the usage site, for error messages
//
// Returns:
//   - Codec: Codec instance for the given type
//   - error: errs.ErrInvalidCompression for an unrecognized type
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s %s", errs.ErrInvalidCompression, target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the shared built-in Codec for the given compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
}
