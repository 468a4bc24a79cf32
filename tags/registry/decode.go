package registry

import (
	"context"
	"log/slog"

	"github.com/joshuapare/vendortags/internal/format"
	"github.com/joshuapare/vendortags/internal/logger"
	"github.com/joshuapare/vendortags/pkg/types"
	"github.com/joshuapare/vendortags/tags/table"
)

// LookupSection decodes the section owning tag. Errors are
// types.ErrBeforeVendorSection or types.ErrAfterVendorSections.
func (r *Registry) LookupSection(tag types.Tag) (*table.Section, error) {
	return r.section("LookupSection", tag)
}

// LookupEntry decodes the entry for tag. In addition to the LookupSection
// errors it reports types.ErrOutsideSection for a tag past its section's end
// and types.ErrReservedSlot for a reserved slot.
func (r *Registry) LookupEntry(tag types.Tag) (table.Entry, error) {
	return r.entry("LookupEntry", tag)
}

func (r *Registry) section(op string, tag types.Tag) (*table.Section, error) {
	idx, ok := format.SectionIndex(uint32(tag))
	if !ok {
		r.reject(op, tag, types.ErrBeforeVendorSection)
		return nil, types.ErrBeforeVendorSection
	}
	if uint64(idx) >= uint64(r.table.Len()) {
		r.reject(op, tag, types.ErrAfterVendorSections)
		return nil, types.ErrAfterVendorSections
	}
	return r.table.Section(int(idx)), nil
}

func (r *Registry) entry(op string, tag types.Tag) (table.Entry, error) {
	s, err := r.section(op, tag)
	if err != nil {
		return table.Entry{}, err
	}
	// Compare offsets, not End, which wraps to 0 for a section filling the
	// last block.
	off := int(format.Offset(uint32(tag)))
	if off >= s.Len() {
		r.reject(op, tag, types.ErrOutsideSection)
		return table.Entry{}, types.ErrOutsideSection
	}

	e := s.EntryAt(off)
	if e.Reserved {
		r.reject(op, tag, types.ErrReservedSlot)
		return table.Entry{}, types.ErrReservedSlot
	}
	return e, nil
}

// reject records a refused query. Attributes are only built when the
// logger will keep the record.
func (r *Registry) reject(op string, tag types.Tag, err error) {
	l := r.log()
	ctx := context.Background()
	if !l.Enabled(ctx, slog.LevelError) {
		return
	}
	l.LogAttrs(ctx, slog.LevelError, "vendor tag rejected",
		slog.String("op", op),
		slog.String("tag", tag.String()),
		slog.String("err", err.Error()),
	)
}

func (r *Registry) rejectBuffer(size int, isNil bool) {
	l := r.log()
	ctx := context.Background()
	if !l.Enabled(ctx, slog.LevelError) {
		return
	}
	l.LogAttrs(ctx, slog.LevelError, "vendor tag buffer rejected",
		slog.String("op", "FillTags"),
		slog.Bool("nil", isNil),
		slog.Int("len", size),
		slog.Int("need", r.tagCount),
		slog.String("err", types.ErrInvalidArgument.Error()),
	)
}

func (r *Registry) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return logger.L
}
