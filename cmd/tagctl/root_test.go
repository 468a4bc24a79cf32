package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joshuapare/vendortags/internal/logger"
	"github.com/stretchr/testify/require"
)

func TestInitLogging_LogFile(t *testing.T) {
	resetFlags(t)
	t.Cleanup(func() { _ = logger.Close() })

	logFile = filepath.Join(t.TempDir(), "tagctl.log")
	if err := initLogging(); err != nil {
		t.Fatalf("initLogging() error = %v", err)
	}

	if _, err := captureOutput(t, func() error {
		return runLookup([]string{"0x80000004", "0x7fffffff"})
	}); err == nil {
		t.Fatal("expected lookup of 0x80000004 to fail")
	}

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	got := string(data)
	for _, want := range []string{"vendor tag rejected", "tag=0x80000004", "outside section", "tag=0x7fffffff"} {
		if !strings.Contains(got, want) {
			t.Errorf("log file missing %q\nGot: %s", want, got)
		}
	}
	// One record per rejected tag: the command decodes each tag once.
	if n := strings.Count(got, "vendor tag rejected"); n != 2 {
		t.Errorf("got %d rejection records, want 2\nGot: %s", n, got)
	}
}

func TestInitLogging_Disabled(t *testing.T) {
	resetFlags(t)
	if err := initLogging(); err != nil {
		t.Fatalf("initLogging() error = %v", err)
	}
	if logger.L.Enabled(t.Context(), slog.LevelError) {
		t.Error("logger should discard when neither --verbose nor --log-file is set")
	}
}

func TestVersionCommand(t *testing.T) {
	resetFlags(t)

	var buf bytes.Buffer
	require.NoError(t, writeVersion(&buf, stamp{Version: "1.2.3", GoVersion: "go1.25.3"}))
	require.Equal(t, "tagctl 1.2.3 (commit none, built unknown, go1.25.3)\n", buf.String())

	jsonOut = true
	output, err := captureOutput(t, runVersion)
	require.NoError(t, err)
	assertJSON(t, output)
	assertContains(t, output, []string{`"version":"dev"`})
}
