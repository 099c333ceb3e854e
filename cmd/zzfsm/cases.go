package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// caseFile is the format of files accepted by the run command.
type caseFile struct {
	Cases []matchCase `yaml:"cases" toml:"cases"`
}

// matchCase is one pattern and the inputs to match against it.
type matchCase struct {
	Pattern string `yaml:"pattern" toml:"pattern"`

	// Dump writes the transition table before matching.
	Dump bool `yaml:"dump" toml:"dump"`

	Inputs []string `yaml:"inputs" toml:"inputs"`

	// Want optionally holds expected results, by input.
	Want map[string]bool `yaml:"want" toml:"want"`
}

// loadCases reads a case file, choosing the format by extension.
func loadCases(path string) (*caseFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read case file: %w", err)
	}
	return parseCases(data, strings.TrimPrefix(filepath.Ext(path), "."))
}

// parseCases decodes case file contents in the given format (yaml, yml, or
// toml).
func parseCases(data []byte, format string) (*caseFile, error) {
	var cf caseFile
	switch strings.ToLower(format) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &cf); err != nil {
			return nil, fmt.Errorf("failed to parse YAML case file: %w", err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &cf); err != nil {
			return nil, fmt.Errorf("failed to parse TOML case file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported case file format %q", format)
	}

	if len(cf.Cases) == 0 {
		return nil, errors.New("case file contains no cases")
	}
	for i, c := range cf.Cases {
		for input := range c.Want {
			if !slices.Contains(c.Inputs, input) {
				return nil, fmt.Errorf("case %d (%q): want refers to %q, which is not an input", i, c.Pattern, input)
			}
		}
	}
	return &cf, nil
}
