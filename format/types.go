package format

type (
	// ValueKind classifies the semantic type a group code's value decodes to.
	ValueKind uint8

	// CompressionType selects the at-rest compression applied to a whole
	// drawing stream by the archive layer.
	CompressionType uint8
)

const (
	KindString ValueKind = 0x1 // KindString represents free text values.
	KindDouble ValueKind = 0x2 // KindDouble represents 64-bit floating point values.
	KindFloat  ValueKind = 0x3 // KindFloat represents single-precision floating point values.
	KindInt16  ValueKind = 0x4 // KindInt16 represents 16-bit signed integer values.
	KindInt32  ValueKind = 0x5 // KindInt32 represents 32-bit signed integer values.
	KindInt64  ValueKind = 0x6 // KindInt64 represents 64-bit signed integer values.
	KindHandle ValueKind = 0x7 // KindHandle represents hexadecimal record identifiers.
	KindBool   ValueKind = 0x8 // KindBool represents boolean flag values.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "String"
	case KindDouble:
		return "Double"
	case KindFloat:
		return "Float"
	case KindInt16:
		return "Int16"
	case KindInt32:
		return "Int32"
	case KindInt64:
		return "Int64"
	case KindHandle:
		return "Handle"
	case KindBool:
		return "Bool"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Structural group codes consumed by the codec core rather than by individual
// record schemas.
const (
	CodeTypeName  = 0   // terminates the previous record, announces the next
	CodeHandle    = 5   // record identifier, hexadecimal
	CodeSubclass  = 100 // subclass marker string, version gated
	CodeControl   = 102 // paired open/close bracket for reactor and dictionary groups
	CodeSoftOwner = 330 // soft-pointer owner handle, may repeat
	CodeHardOwner = 360 // hard-pointer owner handle, may repeat
	CodeComment   = 999 // comment, structural noise unless a schema captures it
)

// codeRange maps a contiguous group-code range to the kind its values decode to.
type codeRange struct {
	lo, hi int
	kind   ValueKind
}

// codeRanges is the fixed partition of the group-code space. The partition is
// part of the wire format and is not configurable per record type.
var codeRanges = []codeRange{
	{0, 4, KindString},
	{5, 5, KindHandle},
	{6, 9, KindString},
	{10, 39, KindDouble},
	{40, 59, KindDouble},
	{60, 79, KindInt16},
	{90, 99, KindInt32},
	{100, 102, KindString},
	{105, 105, KindHandle},
	{110, 149, KindDouble},
	{160, 169, KindInt64},
	{170, 179, KindInt16},
	{210, 239, KindDouble},
	{270, 289, KindInt16},
	{290, 299, KindBool},
	{300, 319, KindString},
	{320, 369, KindHandle},
	{370, 389, KindInt16},
	{390, 399, KindHandle},
	{400, 409, KindInt16},
	{410, 419, KindString},
	{420, 429, KindInt32},
	{430, 439, KindString},
	{440, 449, KindInt32},
	{450, 459, KindInt64},
	{460, 469, KindDouble},
	{470, 479, KindString},
	{480, 481, KindHandle},
	{999, 999, KindString},
	{1000, 1009, KindString},
	{1010, 1059, KindDouble},
	{1060, 1070, KindInt16},
	{1071, 1071, KindInt32},
}

// KindForCode returns the value kind implied by a group code.
//
// The second return value is false when the code falls outside every declared
// range; such codes are structurally unknown and their values are carried as
// raw text by the decoder's unknown-code path.
func KindForCode(code int) (ValueKind, bool) {
	for _, r := range codeRanges {
		if code >= r.lo && code <= r.hi {
			return r.kind, true
		}
	}

	return KindString, false
}
