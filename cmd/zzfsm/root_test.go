package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DrJosh9000/zzfsm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the command tree with args, returning stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd := newRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestMatchCmd(t *testing.T) {
	out, err := execute(t, "match", "a*bc", "abc", "bbc", "bc", "abcd")
	require.NoError(t, err)

	assert.Equal(t, []string{
		`"abc" => true`,
		`"bbc" => false`,
		`"bc" => true`,
		`"abcd" => false`,
	}, strings.Split(strings.TrimSpace(out), "\n"))
}

func TestMatchCmd_SymbolOutOfRange(t *testing.T) {
	out, err := execute(t, "match", "a.c", "aéc", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 input(s) could not be matched")
	assert.Contains(t, out, `"abc" => true`)
	assert.Contains(t, out, "symbol out of range")
}

func TestMatchCmd_MalformedPattern(t *testing.T) {
	_, err := execute(t, "match", "**", "x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, zzfsm.ErrMalformedPattern), "error = %v", err)
}

func TestMatchCmd_Args(t *testing.T) {
	_, err := execute(t, "match", "abc")
	assert.Error(t, err)
}

func TestDumpCmd(t *testing.T) {
	out, err := execute(t, "dump", "ab")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, zzfsm.SymbolSpace)
	assert.Equal(t, "097 => (0, 0)(2, 1)(0, 0)", lines['a'])
	assert.Equal(t, "098 => (0, 0)(0, 0)(3, 1)", lines['b'])
}

func TestDotCmd(t *testing.T) {
	out, err := execute(t, "dot", "a*b")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph {"))
	assert.Contains(t, out, `state_1 -> state_1 [label="a", style=solid];`)
	assert.Contains(t, out, `state_2 -> accept [label="b", style=solid];`)
}

func TestDemoCmd(t *testing.T) {
	out, err := execute(t, "demo")
	require.NoError(t, err)

	assert.Contains(t, out, `Pattern is "a*bc"`)
	assert.Contains(t, out, "097 => (0, 0)(1, 1)(0, 0)(0, 0)")
	assert.Contains(t, out, strings.Repeat("_", 23))
	for _, want := range []string{
		`"abc" => true`,
		`"bbc" => false`,
		`"cbc" => false`,
		`"cbd" => false`,
		`"cbt" => false`,
		`"abcd" => false`,
	} {
		assert.Contains(t, out, want)
	}
}

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestRunCmd_YAML(t *testing.T) {
	path := writeFile(t, "cases.yaml", `
cases:
  - pattern: "a*bc"
    inputs: [abc, bbc, aabc]
    want: {abc: true, bbc: false, aabc: true}
  - pattern: "ab$"
    inputs: [ab, "ab "]
    want: {ab: true}
`)

	out, err := execute(t, "run", "--jobs", "2", path)
	require.NoError(t, err)

	assert.Equal(t, []string{
		`Pattern is "a*bc"`,
		`"abc" => true`,
		`"bbc" => false`,
		`"aabc" => true`,
		`Pattern is "ab$"`,
		`"ab" => true`,
		`"ab " => false`,
	}, strings.Split(strings.TrimSpace(out), "\n"))
}

func TestRunCmd_TOMLFailures(t *testing.T) {
	path := writeFile(t, "cases.toml", `
[[cases]]
pattern = "a.c"
inputs = ["abc", "a\tc", "aéc"]

[cases.want]
abc = true
"a\tc" = true
`)

	out, err := execute(t, "run", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 result(s) did not match expectations")
	assert.Contains(t, out, "want true")
}

func TestRunCmd_MissingFile(t *testing.T) {
	_, err := execute(t, "run", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist), "error = %v", err)
}
