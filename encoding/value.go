// Package encoding converts raw tag values to and from their typed forms.
//
// The conversion is driven entirely by the group code: the code's declared
// range picks the value kind (see format.KindForCode), and the kind picks the
// textual representation. The conversion is the same for every record type;
// per-record knowledge lives in field tables, never here.
package encoding

import (
	"fmt"
	"math"
	"strconv"

	"github.com/cadwire/dxfio/errs"
	"github.com/cadwire/dxfio/format"
)

// Value is one decoded tag value.
//
// Exactly one of the payload fields is meaningful, selected by Kind. The
// integer kinds (Int16, Int32, Int64) all carry their payload in Int; the
// floating kinds (Double, Float) carry theirs in Float.
type Value struct {
	Kind   format.ValueKind
	Str    string
	Int    int64
	Float  float64
	Handle uint64
	Bool   bool
}

// String builds a string value.
func String(s string) Value {
	return Value{Kind: format.KindString, Str: s}
}

// Double builds a 64-bit floating point value.
func Double(f float64) Value {
	return Value{Kind: format.KindDouble, Float: f}
}

// Float builds a single-precision floating point value.
// The payload is truncated to float32 precision.
func Float(f float32) Value {
	return Value{Kind: format.KindFloat, Float: float64(f)}
}

// Int16 builds a 16-bit integer value.
func Int16(i int16) Value {
	return Value{Kind: format.KindInt16, Int: int64(i)}
}

// Int32 builds a 32-bit integer value.
func Int32(i int32) Value {
	return Value{Kind: format.KindInt32, Int: int64(i)}
}

// Int64 builds a 64-bit integer value.
func Int64(i int64) Value {
	return Value{Kind: format.KindInt64, Int: i}
}

// Handle builds a record-identifier value.
func Handle(h uint64) Value {
	return Value{Kind: format.KindHandle, Handle: h}
}

// Bool builds a boolean flag value.
func Bool(b bool) Value {
	return Value{Kind: format.KindBool, Bool: b}
}

// Decode converts the raw value text of a group code into its typed form.
//
// The kind is taken from the code's declared range. Codes outside every range
// decode as plain strings; the caller decides whether that is worth a
// diagnostic.
//
// Returns:
//   - Value: The typed value
//   - error: errs.ErrMalformedValue (wrapped) when the text does not parse as
//     the declared kind
func Decode(code int, raw string) (Value, error) {
	kind, _ := format.KindForCode(code)

	switch kind {
	case format.KindString:
		return String(raw), nil

	case format.KindDouble:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, malformed(code, raw, kind)
		}

		return Double(f), nil

	case format.KindFloat:
		f, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return Value{}, malformed(code, raw, kind)
		}

		return Float(float32(f)), nil

	case format.KindInt16:
		i, err := strconv.ParseInt(trimIntSpace(raw), 10, 16)
		if err != nil {
			return Value{}, malformed(code, raw, kind)
		}

		return Int16(int16(i)), nil

	case format.KindInt32:
		i, err := strconv.ParseInt(trimIntSpace(raw), 10, 32)
		if err != nil {
			return Value{}, malformed(code, raw, kind)
		}

		return Int32(int32(i)), nil

	case format.KindInt64:
		i, err := strconv.ParseInt(trimIntSpace(raw), 10, 64)
		if err != nil {
			return Value{}, malformed(code, raw, kind)
		}

		return Int64(i), nil

	case format.KindHandle:
		h, err := strconv.ParseUint(trimIntSpace(raw), 16, 64)
		if err != nil {
			return Value{}, malformed(code, raw, kind)
		}

		return Handle(h), nil

	case format.KindBool:
		i, err := strconv.ParseInt(trimIntSpace(raw), 10, 16)
		if err != nil {
			return Value{}, malformed(code, raw, kind)
		}

		return Bool(i != 0), nil

	default:
		return Value{}, malformed(code, raw, kind)
	}
}

// Encode converts a typed value back into the raw text emitted under the
// given group code.
//
// The value's kind must match the code's declared kind; a mismatch is a
// programming error in a field table, reported as errs.ErrKindMismatch.
func Encode(code int, v Value) (string, error) {
	kind, _ := format.KindForCode(code)
	if v.Kind != kind {
		return "", fmt.Errorf("%w: code %d declares %s, value holds %s",
			errs.ErrKindMismatch, code, kind, v.Kind)
	}

	switch kind {
	case format.KindString:
		return v.Str, nil

	case format.KindDouble:
		return strconv.FormatFloat(v.Float, 'f', -1, 64), nil

	case format.KindFloat:
		return strconv.FormatFloat(v.Float, 'f', -1, 32), nil

	case format.KindInt16, format.KindInt32, format.KindInt64:
		return strconv.FormatInt(v.Int, 10), nil

	case format.KindHandle:
		return strconv.FormatUint(v.Handle, 16), nil

	case format.KindBool:
		if v.Bool {
			return "1", nil
		}

		return "0", nil

	default:
		return "", fmt.Errorf("%w: code %d has unknown kind", errs.ErrKindMismatch, code)
	}
}

// Equal reports whether two values are equal in kind and payload.
// NaN floating payloads compare equal to each other so round-trip comparisons
// do not trip over NaN != NaN.
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case format.KindDouble, format.KindFloat:
		if math.IsNaN(a.Float) && math.IsNaN(b.Float) {
			return true
		}

		return a.Float == b.Float
	case format.KindString:
		return a.Str == b.Str
	case format.KindHandle:
		return a.Handle == b.Handle
	case format.KindBool:
		return a.Bool == b.Bool
	default:
		return a.Int == b.Int
	}
}

func malformed(code int, raw string, kind format.ValueKind) error {
	return fmt.Errorf("%w: code %d value %q is not a valid %s", errs.ErrMalformedValue, code, raw, kind)
}

// trimIntSpace strips the leading and trailing blanks some writers pad
// integer values with.
func trimIntSpace(raw string) string {
	start := 0
	for start < len(raw) && raw[start] == ' ' {
		start++
	}
	end := len(raw)
	for end > start && raw[end-1] == ' ' {
		end--
	}

	return raw[start:end]
}
