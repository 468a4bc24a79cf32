package types

import "fmt"

// ValueType enumerates the primitive encodings a tag's value may use.
// (The numbers align with the camera metadata type definitions.)
type ValueType uint8

const (
	TYPE_BYTE     ValueType = 0
	TYPE_INT32    ValueType = 1
	TYPE_FLOAT    ValueType = 2
	TYPE_INT64    ValueType = 3
	TYPE_DOUBLE   ValueType = 4
	TYPE_RATIONAL ValueType = 5
	NUM_TYPES     ValueType = 6 // count, not a type
)

// String implements the Stringer interface for ValueType
func (t ValueType) String() string {
	switch t {
	case TYPE_BYTE:
		return "byte"
	case TYPE_INT32:
		return "int32"
	case TYPE_FLOAT:
		return "float"
	case TYPE_INT64:
		return "int64"
	case TYPE_DOUBLE:
		return "double"
	case TYPE_RATIONAL:
		return "rational"
	default:
		return fmt.Sprintf("UNKNOWN_TYPE_%d", uint8(t))
	}
}

// Valid reports whether t is one of the declared value types.
func (t ValueType) Valid() bool {
	return t < NUM_TYPES
}

// Size returns the encoded width in bytes of a single value of type t,
// or 0 for unknown types. Rationals are a numerator/denominator int32 pair.
func (t ValueType) Size() int {
	switch t {
	case TYPE_BYTE:
		return 1
	case TYPE_INT32, TYPE_FLOAT:
		return 4
	case TYPE_INT64, TYPE_DOUBLE, TYPE_RATIONAL:
		return 8
	default:
		return 0
	}
}

// ParseValueType maps a type name as produced by String back to its ValueType.
func ParseValueType(s string) (ValueType, bool) {
	for t := TYPE_BYTE; t < NUM_TYPES; t++ {
		if t.String() == s {
			return t, true
		}
	}
	return 0, false
}
