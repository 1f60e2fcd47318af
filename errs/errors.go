// Package errs defines the sentinel errors returned by the dxfio codec.
//
// Callers can match these with errors.Is after the codec wraps them with
// positional context.
package errs

import "errors"

var (
	// ErrBareGroupCode indicates the stream ended after a group-code line
	// without the paired value line.
	ErrBareGroupCode = errors.New("group code line has no value line")

	// ErrInvalidGroupCode indicates a group-code line that does not parse as
	// an integer.
	ErrInvalidGroupCode = errors.New("invalid group code line")

	// ErrUnexpectedEOF indicates the stream ended inside a record, before the
	// terminating type-name tag.
	ErrUnexpectedEOF = errors.New("unexpected end of stream inside record")

	// ErrValueTooLong indicates a value line longer than the reader's
	// configured limit.
	ErrValueTooLong = errors.New("value line exceeds configured limit")

	// ErrKindMismatch indicates a value was supplied for emission under a
	// group code whose declared kind differs from the value's kind.
	ErrKindMismatch = errors.New("value kind does not match group code kind")

	// ErrMalformedValue indicates a value line that does not parse as the
	// kind its group code declares.
	ErrMalformedValue = errors.New("malformed value for group code")

	// ErrSuccessorAttached indicates an attempt to release a record whose
	// next-record link is still attached.
	ErrSuccessorAttached = errors.New("record successor still attached")

	// ErrRecordReleased indicates use of a record after it was released.
	ErrRecordReleased = errors.New("record already released")

	// ErrRequiredFieldMissing indicates an attempt to encode a record whose
	// required field holds no value.
	ErrRequiredFieldMissing = errors.New("required field missing")

	// ErrTypeNameMismatch indicates a sequence reader met a type-name tag it
	// was not asked to decode.
	ErrTypeNameMismatch = errors.New("unexpected record type name")

	// ErrUnknownVersion indicates an unrecognized target format version.
	ErrUnknownVersion = errors.New("unknown format version")

	// ErrInvalidCompression indicates an unrecognized archive compression type.
	ErrInvalidCompression = errors.New("invalid compression type")
)
