package types

import (
	"testing"
)

func TestValueType_String(t *testing.T) {
	tests := []struct {
		name      string
		valueType ValueType
		expected  string
	}{
		// Known types
		{
			name:      "TYPE_BYTE",
			valueType: TYPE_BYTE,
			expected:  "byte",
		},
		{
			name:      "TYPE_INT32",
			valueType: TYPE_INT32,
			expected:  "int32",
		},
		{
			name:      "TYPE_FLOAT",
			valueType: TYPE_FLOAT,
			expected:  "float",
		},
		{
			name:      "TYPE_INT64",
			valueType: TYPE_INT64,
			expected:  "int64",
		},
		{
			name:      "TYPE_DOUBLE",
			valueType: TYPE_DOUBLE,
			expected:  "double",
		},
		{
			name:      "TYPE_RATIONAL",
			valueType: TYPE_RATIONAL,
			expected:  "rational",
		},
		// Unknown types
		{
			name:      "NUM_TYPES is not a type",
			valueType: NUM_TYPES,
			expected:  "UNKNOWN_TYPE_6",
		},
		{
			name:      "Unknown type 255",
			valueType: ValueType(255),
			expected:  "UNKNOWN_TYPE_255",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.valueType.String()
			if result != tt.expected {
				t.Errorf("ValueType(%d).String() = %q, want %q", tt.valueType, result, tt.expected)
			}
		})
	}
}

func TestValueType_Valid(t *testing.T) {
	for vt := TYPE_BYTE; vt < NUM_TYPES; vt++ {
		if !vt.Valid() {
			t.Errorf("%s should be valid", vt)
		}
		if vt.Size() == 0 {
			t.Errorf("%s should have a non-zero size", vt)
		}
	}
	if NUM_TYPES.Valid() {
		t.Error("NUM_TYPES should not be valid")
	}
	if ValueType(200).Size() != 0 {
		t.Error("unknown type should have size 0")
	}
}

func TestParseValueType(t *testing.T) {
	for vt := TYPE_BYTE; vt < NUM_TYPES; vt++ {
		got, ok := ParseValueType(vt.String())
		if !ok || got != vt {
			t.Errorf("ParseValueType(%q) = %v, %v; want %v, true", vt.String(), got, ok, vt)
		}
	}
	if _, ok := ParseValueType("UNKNOWN_TYPE_6"); ok {
		t.Error("ParseValueType should reject unknown names")
	}
}
