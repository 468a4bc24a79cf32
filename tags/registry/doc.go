// Package registry answers metadata queries about raw vendor tags.
//
// # Overview
//
// A Registry wraps an immutable table.Table and decodes 32-bit tags against
// it without hashing, pointer chasing or allocation:
//
//	idx   := (tag - VendorSectionStart) >> 16   // section block
//	entry := sections[idx].entries[tag - start] // slot within section
//
// # Queries
//
//	reg := registry.New(catalog.Demo())
//
//	n := reg.TagCount()                  // 8
//	all := reg.AllTags()                 // ascending, section by section
//	name, ok := reg.TagName(tag)         // "fire", true
//	typ, ok := reg.TagType(tag)          // types.TYPE_RATIONAL, true
//	section, ok := reg.SectionName(tag)  // "demo.wizardry", true
//
// The comma-ok forms report "not found" for every rejected tag. The Lookup
// forms return the same answers with a typed error explaining the rejection:
//
//	_, err := reg.LookupEntry(tag)
//	if types.IsKind(err, types.ErrKindOutOfSectionRange) {
//	    // inside a section's block, past its declared end
//	}
//
// # Section and entry ranges
//
// Section-level decoding is bounded only by the number of sections, so every
// tag in a section's 65536-slot block resolves to that section's name.
// Entry-level decoding additionally requires tag < End. A tag between End and
// the next block therefore has a section name but no entry; sections keep
// their whole block reserved for growth.
//
// # Diagnostics
//
// Every rejection emits one error-level log record (op, tag, err) to the
// logger given with WithLogger, or to logger.L otherwise. The record is a
// debugging aid, not a control-flow signal.
//
// # Thread Safety
//
// A Registry holds no mutable state after New; all methods are safe for
// concurrent use without locking.
package registry
