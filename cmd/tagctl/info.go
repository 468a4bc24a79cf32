package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

var infoLang string

func init() {
	cmd := newInfoCmd()
	cmd.Flags().StringVar(&infoLang, "lang", "en", "BCP 47 language tag used to format numbers")
	rootCmd.AddCommand(cmd)
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Report catalogue totals",
		Long: `The info command reports how many sections and tags the catalogue
declares and the vendor tag range they occupy.

Example:
  tagctl info
  tagctl info --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo()
		},
	}
	return cmd
}

type catalogInfo struct {
	Sections int    `json:"sections" yaml:"sections"`
	Tags     int    `json:"tags" yaml:"tags"`
	First    string `json:"first,omitempty" yaml:"first,omitempty"`
	Last     string `json:"last,omitempty" yaml:"last,omitempty"`
}

func runInfo() error {
	reg := newRegistry()
	tbl := reg.Table()

	info := catalogInfo{Sections: tbl.Len(), Tags: reg.TagCount()}
	if tbl.Len() > 0 {
		info.First = tbl.Section(0).Start().String()
		info.Last = (tbl.Section(tbl.Len()-1).End() - 1).String()
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}
	if yamlOut {
		return yaml.NewEncoder(os.Stdout).Encode(info)
	}

	lang, err := language.Parse(infoLang)
	if err != nil {
		lang = language.English
	}
	p := message.NewPrinter(lang)

	printInfo("Vendor tag catalogue:\n")
	printInfo("  Sections: %s\n", p.Sprintf("%d", info.Sections))
	printInfo("  Tags:     %s\n", p.Sprintf("%d", info.Tags))
	if info.First != "" {
		printInfo("  Range:    %s - %s\n", info.First, info.Last)
	}
	return nil
}
