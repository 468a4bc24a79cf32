package registry

import (
	"iter"
	"log/slog"

	"github.com/joshuapare/vendortags/pkg/types"
	"github.com/joshuapare/vendortags/tags/table"
)

// Registry decodes vendor tags against a static table.
type Registry struct {
	table    *table.Table
	tagCount int
	logger   *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger routes rejection diagnostics to l instead of logger.L.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = l
	}
}

// New creates a Registry over t. The tag count is computed once here.
func New(t *table.Table, opts ...Option) *Registry {
	r := &Registry{table: t}
	for _, opt := range opts {
		opt(r)
	}
	for i := range t.Len() {
		r.tagCount += t.Section(i).Len()
	}
	return r
}

// Table returns the table the registry decodes against.
func (r *Registry) Table() *table.Table { return r.table }

// TagCount returns the total number of tags across all sections.
func (r *Registry) TagCount() int { return r.tagCount }

// AllTags returns every tag, section by section, each section's tags in
// ascending order.
func (r *Registry) AllTags() []types.Tag {
	tags := make([]types.Tag, r.tagCount)
	r.fill(tags)
	return tags
}

// FillTags writes every tag into dst, in the same order as AllTags, and
// returns the number written. A nil dst or one shorter than TagCount is
// rejected with types.ErrInvalidArgument and left untouched.
func (r *Registry) FillTags(dst []types.Tag) (int, error) {
	if dst == nil || len(dst) < r.tagCount {
		r.rejectBuffer(len(dst), dst == nil)
		return 0, types.ErrInvalidArgument
	}
	return r.fill(dst), nil
}

func (r *Registry) fill(dst []types.Tag) int {
	n := 0
	for tag := range r.Tags() {
		dst[n] = tag
		n++
	}
	return n
}

// Tags yields every tag in AllTags order without materializing the list.
func (r *Registry) Tags() iter.Seq[types.Tag] {
	return func(yield func(types.Tag) bool) {
		for i := range r.table.Len() {
			s := r.table.Section(i)
			for off := range s.Len() {
				if !yield(s.Start() + types.Tag(off)) {
					return
				}
			}
		}
	}
}

// SectionName returns the name of the section owning tag.
func (r *Registry) SectionName(tag types.Tag) (string, bool) {
	s, err := r.section("SectionName", tag)
	if err != nil {
		return "", false
	}
	return s.Name(), true
}

// TagName returns the declared name of tag.
func (r *Registry) TagName(tag types.Tag) (string, bool) {
	e, err := r.entry("TagName", tag)
	if err != nil {
		return "", false
	}
	return e.Name, true
}

// TagType returns the declared value type of tag.
func (r *Registry) TagType(tag types.Tag) (types.ValueType, bool) {
	e, err := r.entry("TagType", tag)
	if err != nil {
		return 0, false
	}
	return e.Type, true
}

// FindTag returns the tag declared as name in the named section. It scans
// the table and is meant for tooling rather than hot paths.
func (r *Registry) FindTag(section, name string) (types.Tag, bool) {
	if name == "" {
		return 0, false
	}
	for i := range r.table.Len() {
		s := r.table.Section(i)
		if s.Name() != section {
			continue
		}
		for off := range s.Len() {
			if e := s.EntryAt(off); !e.Reserved && e.Name == name {
				return s.Start() + types.Tag(off), true
			}
		}
		return 0, false
	}
	return 0, false
}
