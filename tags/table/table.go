package table

import (
	"github.com/joshuapare/vendortags/pkg/types"
)

// Entry describes one tag slot.
type Entry struct {
	Name     string          // unique within the owning section; "" when Reserved
	Type     types.ValueType // declared encoding of the tag's value
	Reserved bool            // slot deliberately left unused
}

// Section is a named, contiguous run of tags [Start, End).
type Section struct {
	name    string
	index   int
	start   types.Tag
	end     types.Tag
	entries []Entry
}

// Name returns the dotted section name, e.g. "demo.wizardry".
func (s *Section) Name() string { return s.name }

// Index returns the section's position in its table, which is also its
// block number above the vendor base.
func (s *Section) Index() int { return s.index }

// Start returns the first tag of the section.
func (s *Section) Start() types.Tag { return s.start }

// End returns one past the last declared tag of the section. It is 0 for a
// section that fills the last block of the 32-bit space.
func (s *Section) End() types.Tag { return s.end }

// Len returns the number of declared slots, End - Start.
func (s *Section) Len() int { return len(s.entries) }

// Contains reports whether tag lies in [Start, End).
func (s *Section) Contains(tag types.Tag) bool {
	return tag >= s.start && int(tag-s.start) < len(s.entries)
}

// EntryAt returns the entry at offset i from Start.
// It panics if i is outside [0, Len()), like a slice index.
func (s *Section) EntryAt(i int) Entry { return s.entries[i] }

// Entries returns a copy of the section's entries in slot order.
func (s *Section) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Table is an immutable, ordered set of sections.
type Table struct {
	sections []*Section
}

// Len returns the number of sections.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.sections)
}

// Section returns section i. It panics if i is outside [0, Len()).
func (t *Table) Section(i int) *Section { return t.sections[i] }

// Sections returns the sections in index order. The slice is a copy; the
// sections themselves are shared and immutable.
func (t *Table) Sections() []*Section {
	if t == nil {
		return nil
	}
	out := make([]*Section, len(t.sections))
	copy(out, t.sections)
	return out
}
