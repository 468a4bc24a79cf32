package printer

import (
	"encoding/json"
	"fmt"
	"strings"
)

// printJSON marshals v with the configured indent and writes it.
func (p *Printer) printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", strings.Repeat(" ", p.opts.IndentSize))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}
