package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X main.version=... -X main.commit=... -X main.date=...".
// When unset, commit and date fall back to the VCS stamp in the build info.
var (
	version = "dev"
	commit  = ""
	date    = ""
)

func init() {
	rootCmd.AddCommand(newVersionCmd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion()
		},
	}
}

func runVersion() error {
	return writeVersion(os.Stdout, buildStamp())
}

type stamp struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go"`
}

func buildStamp() stamp {
	s := stamp{Version: version, Commit: commit, Date: date, GoVersion: "unknown"}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return s
	}
	s.GoVersion = info.GoVersion
	for _, kv := range info.Settings {
		switch {
		case kv.Key == "vcs.revision" && s.Commit == "":
			s.Commit = kv.Value
		case kv.Key == "vcs.time" && s.Date == "":
			s.Date = kv.Value
		}
	}
	return s
}

func writeVersion(w io.Writer, s stamp) error {
	if s.Commit == "" {
		s.Commit = "none"
	}
	if s.Date == "" {
		s.Date = "unknown"
	}
	if jsonOut {
		return json.NewEncoder(w).Encode(s)
	}
	_, err := fmt.Fprintf(w, "tagctl %s (commit %s, built %s, %s)\n", s.Version, s.Commit, s.Date, s.GoVersion)
	return err
}
