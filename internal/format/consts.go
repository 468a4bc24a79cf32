// Package format houses the bit-layout convention of vendor tags. The goal is
// to keep the decoding arithmetic in one allocation-free place, independent
// from the public API, so the table and registry agree on it by construction.
//
// Layout of a vendor tag (32 bits):
//
//	tag = VendorSectionStart + (section << SectionShift) + offset
//
// Every section owns a fixed SectionSpan-wide block; offset indexes the
// section's entries.
package format

const (
	// VendorSectionStart is the first tag value reserved for vendor
	// (non-standard) tags. Everything below belongs to the framework.
	VendorSectionStart uint32 = 0x80000000

	// SectionShift is the number of low bits addressing a tag within its
	// section. It is a structural invariant of the namespace, not a tunable.
	SectionShift = 16

	// SectionSpan is the number of tag slots in one section block.
	SectionSpan = 1 << SectionShift

	// OffsetMask selects the intra-section offset bits of a tag.
	OffsetMask = SectionSpan - 1

	// MaxSections is the number of section blocks that fit between
	// VendorSectionStart and the top of the 32-bit space.
	MaxSections = (1<<32 - uint64(VendorSectionStart)) >> SectionShift

	// DWORDSize is the encoded width of a tag in a tag array.
	DWORDSize = 4
)
