package printer

import (
	"gopkg.in/yaml.v3"
)

// printYAML encodes v as a single YAML document.
func (p *Printer) printYAML(v any) error {
	enc := yaml.NewEncoder(p.writer)
	enc.SetIndent(p.opts.IndentSize)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
