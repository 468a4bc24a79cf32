// Package types defines the shared vocabulary of the vendor tag registry:
// the raw Tag identifier, the ValueType enumeration describing how a tag's
// value is encoded, and the typed errors every lookup reports.
//
// Design goals:
//   - Small, copyable values (Tag, ValueType) instead of object graphs.
//   - Never panic on unknown or malformed tags; callers may query freely.
//   - Typed errors with stable categories (vendor range/section range/argument).
//
// This package has no dependencies beyond the standard library.
package types
