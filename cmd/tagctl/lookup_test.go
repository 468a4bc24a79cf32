package main

import (
	"strings"
	"testing"
)

func TestLookupCommand(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		json           bool
		yaml           bool
		wantErr        bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:        "hex tag",
			args:        []string{"0x80000003"},
			wantContain: []string{"0x80000003 demo.wizardry.fire [rational]"},
		},
		{
			name:        "hex tag with underscores",
			args:        []string{"0x8001_0001"},
			wantContain: []string{"0x80010001 demo.sorcery.light [byte]"},
		},
		{
			name:        "decimal tag",
			args:        []string{"2147483648"},
			wantContain: []string{"0x80000000 demo.wizardry.dimensionSize [int32]"},
		},
		{
			name:        "qualified name",
			args:        []string{"demo.magic.levitation"},
			wantContain: []string{"0x80020001 demo.magic.levitation [float]"},
		},
		{
			name:        "past section end",
			args:        []string{"0x80020002"},
			wantErr:     true,
			wantContain: []string{"0x80020002 demo.magic: tag outside section"},
		},
		{
			name:        "below vendor base",
			args:        []string{"0x7fffffff", "0x80000001"},
			wantErr:     true,
			wantContain: []string{"0x7fffffff: tag before vendor section", "demo.wizardry.dimensions"},
		},
		{
			name:           "json",
			args:           []string{"0x80010000"},
			json:           true,
			wantContain:    []string{`"name": "difficulty"`, `"type": "int64"`},
			wantNotContain: []string{"error"},
		},
		{
			name:        "yaml",
			args:        []string{"0x80030000"},
			yaml:        true,
			wantErr:     true,
			wantContain: []string{"error: tag after vendor sections"},
		},
		{
			name:    "garbage",
			args:    []string{"demo.nothing.here"},
			wantErr: true,
		},
		{
			name:    "too large",
			args:    []string{"0x100000000"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			jsonOut = tt.json
			yamlOut = tt.yaml

			output, err := captureOutput(t, func() error {
				return runLookup(tt.args)
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runLookup() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.json {
				assertJSON(t, output)
			}

			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestLookupCommand_MissingCount(t *testing.T) {
	resetFlags(t)

	_, err := captureOutput(t, func() error {
		return runLookup([]string{"0x80000000", "0x80000004", "0x80010002"})
	})
	if err == nil || !strings.Contains(err.Error(), "2 of 3 tag(s) not found") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseTag(t *testing.T) {
	reg := newRegistry()

	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{"0x80000002", 0x80000002, false},
		{"0X80000002", 0x80000002, false},
		{"2147549184", 0x80010000, false},
		{"0b1", 1, false},
		{"demo.sorcery.difficulty", 0x80010000, false},
		{"demo.sorcery", 0, true},
		{"fire", 0, true},
		{"-1", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseTag(reg, tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseTag(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && uint32(got) != tt.want {
				t.Errorf("parseTag(%q) = %s, want 0x%08x", tt.in, got, tt.want)
			}
		})
	}
}
