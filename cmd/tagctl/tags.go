package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joshuapare/vendortags/pkg/types"
	"github.com/joshuapare/vendortags/tags/printer"
	"github.com/spf13/cobra"
)

var (
	tagsShowType     bool
	tagsShowReserved bool
	tagsTypes        []string
)

func init() {
	cmd := newTagsCmd()
	cmd.Flags().BoolVar(&tagsShowType, "show-type", true, "Show value type")
	cmd.Flags().BoolVar(&tagsShowReserved, "show-reserved", false, "Include reserved slots")
	cmd.Flags().StringSliceVar(&tagsTypes, "type", nil, "Only list tags of these value types (e.g. int32,byte)")
	rootCmd.AddCommand(cmd)
}

func newTagsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List every vendor tag",
		Long: `The tags command lists every vendor tag, section by section, in
ascending numeric order.

Example:
  tagctl tags
  tagctl tags --show-type=false
  tagctl tags --type int32 --type rational
  tagctl tags --yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTags()
		},
	}
	return cmd
}

func runTags() error {
	opts := printerOptions()
	opts.ShowTypes = tagsShowType
	opts.ShowReserved = tagsShowReserved

	for _, name := range tagsTypes {
		typ, ok := types.ParseValueType(strings.ToLower(strings.TrimSpace(name)))
		if !ok {
			return fmt.Errorf("unknown value type %q (want one of %s)", name, valueTypeNames())
		}
		opts.Types = append(opts.Types, typ)
	}
	if len(opts.Types) > 0 {
		printVerbose("Filtering by type: %v\n", opts.Types)
	}

	return printer.New(newRegistry(), os.Stdout, opts).PrintCatalog()
}

func valueTypeNames() string {
	names := make([]string, 0, int(types.NUM_TYPES))
	for t := range types.NUM_TYPES {
		names = append(names, t.String())
	}
	return strings.Join(names, ", ")
}
