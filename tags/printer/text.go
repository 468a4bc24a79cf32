package printer

import (
	"fmt"
	"strings"
)

// printCatalogText prints the catalogue in human-readable text format.
func (p *Printer) printCatalogText(doc catalogDoc) error {
	for _, s := range doc.Sections {
		if err := p.printSectionText(s); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(p.writer, "%d tags in %d sections\n", doc.TagCount, len(doc.Sections))
	return err
}

// printSectionText prints a section header and its entries.
func (p *Printer) printSectionText(s sectionDoc) error {
	if _, err := fmt.Fprintf(p.writer, "[%s] %s-%s (%d tags)\n", s.Name, s.Start, s.End, s.Count); err != nil {
		return err
	}

	indent := strings.Repeat(" ", p.opts.IndentSize)
	for _, e := range s.Entries {
		if _, err := fmt.Fprintf(p.writer, "%s%s\n", indent, entryText(e)); err != nil {
			return err
		}
	}
	return nil
}

// printTagsText prints one lookup result per line.
func (p *Printer) printTagsText(docs []tagDoc) error {
	for _, d := range docs {
		var line string
		switch {
		case d.Error != "" && d.Section != "":
			line = fmt.Sprintf("%s %s: %s", d.Tag, d.Section, d.Error)
		case d.Error != "":
			line = fmt.Sprintf("%s: %s", d.Tag, d.Error)
		default:
			line = entryText(d)
		}
		if _, err := fmt.Fprintln(p.writer, line); err != nil {
			return err
		}
	}
	return nil
}

// entryText formats "0x80000003 demo.wizardry.fire [rational]".
func entryText(d tagDoc) string {
	var b strings.Builder
	b.WriteString(d.Tag)
	b.WriteByte(' ')
	if d.Section != "" {
		b.WriteString(d.Section)
		b.WriteByte('.')
	}
	if d.Reserved {
		b.WriteString(ReservedSymbol)
		return b.String()
	}
	b.WriteString(d.Name)
	if d.Type != "" {
		fmt.Fprintf(&b, " [%s]", d.Type)
	}
	return b.String()
}
