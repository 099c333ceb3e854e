package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCases(t *testing.T) {
	yamlData := []byte(`
cases:
  - pattern: "x.*$"
    dump: true
    inputs: [x, xyz]
    want: {xyz: true}
`)
	tomlData := []byte(`
[[cases]]
pattern = "x.*$"
dump = true
inputs = ["x", "xyz"]
want = { xyz = true }
`)
	want := &caseFile{Cases: []matchCase{{
		Pattern: "x.*$",
		Dump:    true,
		Inputs:  []string{"x", "xyz"},
		Want:    map[string]bool{"xyz": true},
	}}}

	for format, data := range map[string][]byte{"yaml": yamlData, "yml": yamlData, "TOML": tomlData} {
		got, err := parseCases(data, format)
		require.NoError(t, err, "format %s", format)
		assert.Equal(t, want, got, "format %s", format)
	}
}

func TestParseCases_Errors(t *testing.T) {
	tests := []struct {
		name, format, data, msg string
	}{
		{"unknown format", "json", `{}`, "unsupported case file format"},
		{"bad yaml", "yaml", "cases: [", "failed to parse YAML"},
		{"bad toml", "toml", "[[cases]\n", "failed to parse TOML"},
		{"no cases", "yaml", "cases: []", "no cases"},
		{"stray want", "yaml", "cases:\n  - pattern: a\n    inputs: [a]\n    want: {b: true}\n", "not an input"},
	}
	for _, test := range tests {
		_, err := parseCases([]byte(test.data), test.format)
		if assert.Error(t, err, test.name) {
			assert.Contains(t, err.Error(), test.msg, test.name)
		}
	}
}
