package types

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindOutOfVendorRange  ErrKind = iota // tag below the vendor base or past the last section
	ErrKindOutOfSectionRange                // tag inside a section block but not a declared entry
	ErrKindInvalidArgument                  // caller-supplied buffer missing or too small
)

// String implements the Stringer interface for ErrKind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindOutOfVendorRange:
		return "out of vendor range"
	case ErrKindOutOfSectionRange:
		return "out of section range"
	case ErrKindInvalidArgument:
		return "invalid argument"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels returned by lookups. They are preallocated so that rejecting a
// tag never allocates.
var (
	// ErrBeforeVendorSection indicates the tag precedes the vendor tag space.
	ErrBeforeVendorSection = &Error{Kind: ErrKindOutOfVendorRange, Msg: "tag before vendor section"}
	// ErrAfterVendorSections indicates the tag's section index exceeds the declared sections.
	ErrAfterVendorSections = &Error{Kind: ErrKindOutOfVendorRange, Msg: "tag after vendor sections"}
	// ErrOutsideSection indicates the tag lies in a section's block but past its declared end.
	ErrOutsideSection = &Error{Kind: ErrKindOutOfSectionRange, Msg: "tag outside section"}
	// ErrReservedSlot indicates the tag addresses a slot explicitly reserved as unused.
	ErrReservedSlot = &Error{Kind: ErrKindOutOfSectionRange, Msg: "tag slot reserved"}
	// ErrInvalidArgument indicates a missing or undersized output buffer.
	ErrInvalidArgument = &Error{Kind: ErrKindInvalidArgument, Msg: "invalid tag buffer"}
)

// IsKind reports whether err (or anything it wraps) is an *Error of the given kind.
func IsKind(err error, kind ErrKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// -----------------------------------------------------------------------------
// Core Identifiers
// -----------------------------------------------------------------------------

// Tag is an opaque 32-bit metadata identifier. Vendor tags partition it into
// a section block above the vendor base and an offset within that block.
type Tag uint32

// String renders the tag as fixed-width hex, the form used in HAL logs.
func (t Tag) String() string {
	return fmt.Sprintf("0x%08x", uint32(t))
}
