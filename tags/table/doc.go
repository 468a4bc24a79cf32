// Package table declares the static vendor tag table: an ordered set of
// sections, each owning a contiguous run of tags and one Entry per tag.
//
// # Layout
//
// Section i always begins at format.VendorSectionStart + i<<16 and owns the
// whole 65536-slot block from there, but only the first Len() slots are
// declared:
//
//	Section  Block                        Declared
//	-------  ---------------------------  -----------------------
//	0        0x80000000 .. 0x8000FFFF     [0x80000000, 0x80000004)
//	1        0x80010000 .. 0x8001FFFF     [0x80010000, 0x80010002)
//	2        0x80020000 .. 0x8002FFFF     [0x80020000, 0x80020002)
//
// # Building
//
// Tables are only produced by Builder, which places each entry at the slot its
// tag implies (declaration order does not matter) and refuses to build while
// any slot in a section's declared range is left undeclared:
//
//	b := table.NewBuilder()
//	b.Section("demo.sorcery", 2).
//	    Entry(start+1, "light", types.TYPE_BYTE).
//	    Entry(start+0, "difficulty", types.TYPE_INT64)
//	t, err := b.Build()
//
// A slot that is intentionally unused must be marked with Reserve. Reserved
// slots count towards the section's size and are enumerated like any other
// tag, but carry no name or type; lookups treat them as not found.
//
// # Thread Safety
//
// Table, Section and Entry are immutable once built and safe for concurrent
// reads. Builder is not safe for concurrent use.
package table
