package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joshuapare/vendortags/pkg/types"
	"github.com/joshuapare/vendortags/tags/printer"
	"github.com/joshuapare/vendortags/tags/registry"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newLookupCmd())
}

func newLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <tag>...",
		Short: "Decode raw tag values",
		Long: `The lookup command decodes each tag into its section, name and value
type. Tags may be given in hex (0x80000003, 0x8000_0003), decimal, or by
qualified name (demo.wizardry.fire). The command fails if any tag does not
resolve.

Example:
  tagctl lookup 0x80000003
  tagctl lookup 0x80020002 2147483648
  tagctl lookup demo.magic.levitation --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(args)
		},
	}
	return cmd
}

func runLookup(args []string) error {
	reg := newRegistry()

	tags := make([]types.Tag, 0, len(args))
	for _, arg := range args {
		tag, err := parseTag(reg, arg)
		if err != nil {
			return err
		}
		tags = append(tags, tag)
	}

	missing, err := printer.New(reg, os.Stdout, printerOptions()).PrintTags(tags...)
	if err != nil {
		return err
	}
	if missing > 0 {
		return fmt.Errorf("%d of %d tag(s) not found", missing, len(tags))
	}
	return nil
}

// parseTag accepts a numeric tag (any Go integer literal base) or a
// qualified "section.name" reference.
func parseTag(reg *registry.Registry, s string) (types.Tag, error) {
	if v, err := strconv.ParseUint(s, 0, 32); err == nil {
		return types.Tag(v), nil
	}

	i := strings.LastIndexByte(s, '.')
	if i > 0 {
		if tag, ok := reg.FindTag(s[:i], s[i+1:]); ok {
			printVerbose("%s = %s\n", s, tag)
			return tag, nil
		}
	}
	return 0, fmt.Errorf("invalid tag %q: not a 32-bit number or known section.name", s)
}
