package table

import (
	"errors"
	"fmt"

	"github.com/joshuapare/vendortags/internal/format"
	"github.com/joshuapare/vendortags/pkg/types"
)

// Builder assembles a Table. Sections are numbered in the order they are
// added; entries may be declared in any order.
type Builder struct {
	sections []*SectionBuilder
}

// SectionBuilder collects the slots of one section.
type SectionBuilder struct {
	name     string
	index    int
	start    uint32
	size     uint32
	slots    []Entry
	declared []bool
	errs     []error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Section starts the next section with the given name and number of slots.
// Its first tag is fixed by its position: VendorSectionStart + index<<16.
func (b *Builder) Section(name string, size uint32) *SectionBuilder {
	index := len(b.sections)
	sb := &SectionBuilder{
		name:  name,
		index: index,
		start: format.SectionStart(uint32(index)),
		size:  size,
	}
	if size <= format.SectionSpan {
		sb.slots = make([]Entry, size)
		sb.declared = make([]bool, size)
	}
	b.sections = append(b.sections, sb)
	return sb
}

// Start returns the first tag of the section.
func (sb *SectionBuilder) Start() types.Tag { return types.Tag(sb.start) }

// Entry declares the slot for tag.
func (sb *SectionBuilder) Entry(tag types.Tag, name string, typ types.ValueType) *SectionBuilder {
	return sb.declare(tag, Entry{Name: name, Type: typ})
}

// Reserve marks the slot for tag as deliberately unused.
func (sb *SectionBuilder) Reserve(tag types.Tag) *SectionBuilder {
	return sb.declare(tag, Entry{Reserved: true})
}

func (sb *SectionBuilder) declare(tag types.Tag, e Entry) *SectionBuilder {
	if sb.slots == nil {
		// size already rejected; Build reports it
		return sb
	}

	off := uint32(tag) - sb.start
	if uint32(tag) < sb.start || off >= sb.size {
		sb.errs = append(sb.errs, fmt.Errorf("section %q: tag %s outside [%s, %s)",
			sb.name, tag, types.Tag(sb.start), types.Tag(sb.start+sb.size)))
		return sb
	}
	if sb.declared[off] {
		sb.errs = append(sb.errs, fmt.Errorf("section %q: tag %s declared twice", sb.name, tag))
		return sb
	}

	sb.slots[off] = e
	sb.declared[off] = true
	return sb
}

// Build validates the declarations and returns the immutable table. All
// problems found are reported together, wrapped in ErrInvalidTable.
func (b *Builder) Build() (*Table, error) {
	var errs []error

	if uint64(len(b.sections)) > format.MaxSections {
		errs = append(errs, fmt.Errorf("%d sections exceed the %d available blocks",
			len(b.sections), format.MaxSections))
	}

	names := make(map[string]bool, len(b.sections))
	sections := make([]*Section, 0, len(b.sections))
	for _, sb := range b.sections {
		switch {
		case sb.name == "":
			errs = append(errs, fmt.Errorf("section %d: empty name", sb.index))
		case names[sb.name]:
			errs = append(errs, fmt.Errorf("section %q: duplicate name", sb.name))
		}
		names[sb.name] = true

		sectionErrs := sb.validate()
		if len(sectionErrs) > 0 {
			errs = append(errs, sectionErrs...)
			continue
		}

		entries := make([]Entry, len(sb.slots))
		copy(entries, sb.slots)
		sections = append(sections, &Section{
			name:    sb.name,
			index:   sb.index,
			start:   types.Tag(sb.start),
			end:     types.Tag(sb.start + sb.size),
			entries: entries,
		})
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTable, errors.Join(errs...))
	}
	return &Table{sections: sections}, nil
}

// MustBuild is like Build but panics if the table is invalid. It simplifies
// safe initialization of catalogues declared in code.
func (b *Builder) MustBuild() *Table {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}

func (sb *SectionBuilder) validate() []error {
	errs := append([]error(nil), sb.errs...)

	switch {
	case sb.size == 0:
		errs = append(errs, fmt.Errorf("section %q: no slots", sb.name))
		return errs
	case sb.size > format.SectionSpan:
		errs = append(errs, fmt.Errorf("section %q: %d slots exceed the %d-slot block",
			sb.name, sb.size, format.SectionSpan))
		return errs
	case uint64(sb.start)+uint64(sb.size) > 1<<32:
		errs = append(errs, fmt.Errorf("section %q: extends past the 32-bit tag space", sb.name))
		return errs
	}

	entryNames := make(map[string]bool, len(sb.slots))
	undeclared := 0
	var firstUndeclared types.Tag
	for off, e := range sb.slots {
		tag := types.Tag(sb.start + uint32(off))
		if !sb.declared[off] {
			if undeclared == 0 {
				firstUndeclared = tag
			}
			undeclared++
			continue
		}
		if e.Reserved {
			continue
		}
		if e.Name == "" {
			errs = append(errs, fmt.Errorf("section %q: tag %s has an empty name", sb.name, tag))
		} else if entryNames[e.Name] {
			errs = append(errs, fmt.Errorf("section %q: duplicate entry name %q", sb.name, e.Name))
		}
		entryNames[e.Name] = true
		if !e.Type.Valid() {
			errs = append(errs, fmt.Errorf("section %q: tag %s has invalid type %s", sb.name, tag, e.Type))
		}
	}
	if undeclared > 0 {
		errs = append(errs, fmt.Errorf("section %q: %d undeclared slot(s), first %s",
			sb.name, undeclared, firstUndeclared))
	}
	return errs
}
