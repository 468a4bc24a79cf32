// Package printer renders a tag catalogue, or individual tag lookups, as
// text, JSON or YAML.
package printer

import (
	"fmt"
	"io"
	"slices"

	"github.com/joshuapare/vendortags/pkg/types"
	"github.com/joshuapare/vendortags/tags/registry"
	"github.com/joshuapare/vendortags/tags/table"
)

const (
	DefaultIndentSize = 2
	ReservedSymbol    = "(reserved)"
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable text format.
	FormatText Format = "text"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"

	// FormatYAML outputs YAML format.
	FormatYAML Format = "yaml"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json, yaml).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text and yaml).
	// Default: 2
	IndentSize int

	// ShowEntries lists each section's tags under it.
	// Default: true
	ShowEntries bool

	// ShowTypes includes value type names.
	// Default: true
	ShowTypes bool

	// ShowReserved includes reserved slots in entry listings.
	// Default: false
	ShowReserved bool

	// Types, when non-empty, limits entry listings to tags of these types.
	// Reserved slots have no type and are left out.
	// Default: nil (all types)
	Types []types.ValueType
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:       FormatText,
		IndentSize:   DefaultIndentSize,
		ShowEntries:  true,
		ShowTypes:    true,
		ShowReserved: false,
	}
}

// Printer handles formatted output of a tag registry.
type Printer struct {
	opts   Options
	writer io.Writer
	reg    *registry.Registry
}

// New creates a new Printer.
//
// Example:
//
//	p := printer.New(registry.New(catalog.Demo()), os.Stdout, printer.DefaultOptions())
//	p.PrintCatalog()
func New(reg *registry.Registry, w io.Writer, opts Options) *Printer {
	if opts.IndentSize <= 0 {
		opts.IndentSize = DefaultIndentSize
	}
	return &Printer{
		reg:    reg,
		writer: w,
		opts:   opts,
	}
}

// tagDoc is the serialized form of one tag (or one failed lookup).
type tagDoc struct {
	Tag      string `json:"tag" yaml:"tag"`
	Section  string `json:"section,omitempty" yaml:"section,omitempty"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Type     string `json:"type,omitempty" yaml:"type,omitempty"`
	Size     int    `json:"size,omitempty" yaml:"size,omitempty"`
	Reserved bool   `json:"reserved,omitempty" yaml:"reserved,omitempty"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

// sectionDoc is the serialized form of a section.
type sectionDoc struct {
	Name    string   `json:"name" yaml:"name"`
	Index   int      `json:"index" yaml:"index"`
	Start   string   `json:"start" yaml:"start"`
	End     string   `json:"end" yaml:"end"`
	Count   int      `json:"count" yaml:"count"`
	Entries []tagDoc `json:"entries,omitempty" yaml:"entries,omitempty"`
}

// catalogDoc is the serialized form of the whole table.
type catalogDoc struct {
	TagCount int          `json:"tag_count" yaml:"tag_count"`
	Sections []sectionDoc `json:"sections" yaml:"sections"`
}

// PrintCatalog prints every section and, with ShowEntries, every tag.
func (p *Printer) PrintCatalog() error {
	doc := catalogDoc{TagCount: p.reg.TagCount()}
	for _, s := range p.reg.Table().Sections() {
		doc.Sections = append(doc.Sections, p.buildSection(s))
	}

	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON(doc)
	case FormatYAML:
		return p.printYAML(doc)
	default:
		return p.printCatalogText(doc)
	}
}

// PrintSection prints the section with the given name.
func (p *Printer) PrintSection(name string) error {
	for _, s := range p.reg.Table().Sections() {
		if s.Name() != name {
			continue
		}
		doc := p.buildSection(s)
		switch p.opts.Format {
		case FormatJSON:
			return p.printJSON(doc)
		case FormatYAML:
			return p.printYAML(doc)
		default:
			return p.printSectionText(doc)
		}
	}
	return fmt.Errorf("section %q not found", name)
}

// PrintTags prints the lookup result of each tag and returns how many did
// not resolve. Those are printed with the reason instead of failing the call.
func (p *Printer) PrintTags(tags ...types.Tag) (missing int, err error) {
	docs := make([]tagDoc, 0, len(tags))
	for _, tag := range tags {
		doc := p.buildLookup(tag)
		if doc.Error != "" {
			missing++
		}
		docs = append(docs, doc)
	}

	switch p.opts.Format {
	case FormatJSON:
		err = p.printJSON(docs)
	case FormatYAML:
		err = p.printYAML(docs)
	default:
		err = p.printTagsText(docs)
	}
	return missing, err
}

func (p *Printer) buildSection(s *table.Section) sectionDoc {
	doc := sectionDoc{
		Name:  s.Name(),
		Index: s.Index(),
		Start: s.Start().String(),
		End:   sectionEnd(s),
		Count: s.Len(),
	}
	if !p.opts.ShowEntries {
		return doc
	}
	for off, e := range s.Entries() {
		if !p.listed(e) {
			continue
		}
		doc.Entries = append(doc.Entries, p.buildEntry(s.Start()+types.Tag(off), "", e))
	}
	return doc
}

func (p *Printer) buildEntry(tag types.Tag, section string, e table.Entry) tagDoc {
	doc := tagDoc{Tag: tag.String(), Section: section, Reserved: e.Reserved}
	if e.Reserved {
		return doc
	}
	doc.Name = e.Name
	if p.opts.ShowTypes {
		doc.Type = e.Type.String()
		doc.Size = e.Type.Size()
	}
	return doc
}

// listed reports whether e belongs in an entry listing.
func (p *Printer) listed(e table.Entry) bool {
	if e.Reserved {
		return p.opts.ShowReserved && len(p.opts.Types) == 0
	}
	return len(p.opts.Types) == 0 || slices.Contains(p.opts.Types, e.Type)
}

// sectionEnd renders the exclusive end of s. It is computed in 64 bits
// because End wraps to 0 for a section filling the last block.
func sectionEnd(s *table.Section) string {
	return fmt.Sprintf("0x%08x", uint64(s.Start())+uint64(s.Len()))
}

func (p *Printer) buildLookup(tag types.Tag) tagDoc {
	s, err := p.reg.LookupSection(tag)
	if err != nil {
		return tagDoc{Tag: tag.String(), Error: err.Error()}
	}
	e, err := p.reg.LookupEntry(tag)
	if err != nil {
		return tagDoc{Tag: tag.String(), Section: s.Name(), Error: err.Error()}
	}
	return p.buildEntry(tag, s.Name(), e)
}
