package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTag_String(t *testing.T) {
	assert.Equal(t, "0x80000000", Tag(0x80000000).String())
	assert.Equal(t, "0x00000001", Tag(1).String())
	assert.Equal(t, "0xffffffff", Tag(0xFFFFFFFF).String())
}

func TestError_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("lookup %s: %w", Tag(7), ErrBeforeVendorSection)

	require.ErrorIs(t, wrapped, ErrBeforeVendorSection)
	require.True(t, IsKind(wrapped, ErrKindOutOfVendorRange))
	require.False(t, IsKind(wrapped, ErrKindOutOfSectionRange))
	require.False(t, IsKind(errors.New("plain"), ErrKindOutOfVendorRange))
	require.False(t, IsKind(nil, ErrKindInvalidArgument))
}

func TestError_Sentinels(t *testing.T) {
	tests := []struct {
		err  *Error
		kind ErrKind
	}{
		{ErrBeforeVendorSection, ErrKindOutOfVendorRange},
		{ErrAfterVendorSections, ErrKindOutOfVendorRange},
		{ErrOutsideSection, ErrKindOutOfSectionRange},
		{ErrReservedSlot, ErrKindOutOfSectionRange},
		{ErrInvalidArgument, ErrKindInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.err.Msg, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.Equal(t, tt.err.Msg, tt.err.Error())
			assert.NoError(t, tt.err.Unwrap())
		})
	}
}

func TestError_Cause(t *testing.T) {
	cause := errors.New("boom")
	err := &Error{Kind: ErrKindInvalidArgument, Msg: "fill tags", Err: cause}

	assert.Equal(t, "fill tags: boom", err.Error())
	assert.ErrorIs(t, err, cause)

	var nilErr *Error
	assert.Equal(t, "<nil>", nilErr.Error())
}

func TestErrKind_String(t *testing.T) {
	assert.Equal(t, "out of vendor range", ErrKindOutOfVendorRange.String())
	assert.Equal(t, "out of section range", ErrKindOutOfSectionRange.String())
	assert.Equal(t, "invalid argument", ErrKindInvalidArgument.String())
	assert.Equal(t, "ErrKind(42)", ErrKind(42).String())
}
