package main

import (
	"os"

	"github.com/joshuapare/vendortags/tags/printer"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newSectionsCmd())
}

func newSectionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sections [name]",
		Short: "List vendor tag sections",
		Long: `The sections command lists every vendor section with its tag range and
size. Given a section name, it prints that section with its tags.

Example:
  tagctl sections
  tagctl sections demo.wizardry
  tagctl sections --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSections(args)
		},
	}
	return cmd
}

func runSections(args []string) error {
	opts := printerOptions()
	reg := newRegistry()

	if len(args) == 1 {
		printVerbose("Section: %s\n", args[0])
		return printer.New(reg, os.Stdout, opts).PrintSection(args[0])
	}

	opts.ShowEntries = false
	return printer.New(reg, os.Stdout, opts).PrintCatalog()
}
