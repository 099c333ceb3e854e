package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/DrJosh9000/zzfsm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// compile compiles the pattern, tracing compilation to the global logger.
func compile(pattern string) (*zzfsm.Machine, error) {
	m, err := zzfsm.Compile(pattern, zzfsm.WithCompileLogs(componentLogger("compiler")))
	if err != nil {
		return nil, fmt.Errorf("couldn't compile pattern: %w", err)
	}
	log.Info().Str("pattern", pattern).Int("columns", m.Len()).Msg("Pattern compiled")
	return m, nil
}

// printResult prints one result line in the form "input" => true.
func printResult(w io.Writer, input string, matched bool, err error) {
	if err != nil {
		fmt.Fprintf(w, "%q => %s\n", input, errorStyle.Render(err.Error()))
		return
	}
	fmt.Fprintf(w, "%q => %s\n", input, renderResult(matched))
}

func newMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match PATTERN INPUT...",
		Short: "Match inputs against a pattern",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := compile(args[0])
			if err != nil {
				return err
			}

			failed := 0
			for _, input := range args[1:] {
				matched, err := m.Match(input)
				if err != nil {
					failed++
				}
				printResult(cmd.OutOrStdout(), input, matched, err)
			}
			if failed > 0 {
				return fmt.Errorf("%d input(s) could not be matched", failed)
			}
			return nil
		},
	}
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump PATTERN",
		Short: "Write the transition table of a pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := compile(args[0])
			if err != nil {
				return err
			}
			if err := m.Dump(cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("couldn't write table: %w", err)
			}
			return nil
		},
	}
}

func newDotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dot PATTERN",
		Short: "Write the state machine of a pattern in GraphViz syntax",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := compile(args[0])
			if err != nil {
				return err
			}
			if err := m.WriteDot(cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("couldn't write Dot output: %w", err)
			}
			return nil
		},
	}
}

func newRunCmd() *cobra.Command {
	var jobs int
	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Run the cases in a YAML or TOML case file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cf, err := loadCases(args[0])
			if err != nil {
				return err
			}

			failures := 0
			for _, c := range cf.Cases {
				n, err := runCase(cmd.Context(), cmd.OutOrStdout(), c, jobs)
				if err != nil {
					return err
				}
				failures += n
			}
			if failures > 0 {
				return fmt.Errorf("%d result(s) did not match expectations", failures)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Number of inputs to match in parallel (default GOMAXPROCS)")
	return cmd
}

// runCase compiles and matches one case, printing the results in input
// order. It returns the number of results that differ from the case's
// expectations, or that could not be matched.
func runCase(ctx context.Context, w io.Writer, c matchCase, jobs int) (int, error) {
	m, err := compile(c.Pattern)
	if err != nil {
		return 0, err
	}

	fmt.Fprintf(w, "Pattern is %q\n", c.Pattern)
	if c.Dump {
		if err := m.Dump(w); err != nil {
			return 0, fmt.Errorf("couldn't write table: %w", err)
		}
		fmt.Fprintln(w, mutedStyle.Render(strings.Repeat("_", 23)))
	}

	type result struct {
		matched bool
		err     error
	}
	// Each worker writes only its own element.
	results := make([]result, len(c.Inputs))
	record := func(i int, _ string, matched bool, err error) error {
		results[i] = result{matched, err}
		return nil
	}
	opts := []zzfsm.BatchOption{
		zzfsm.WithTraceLogs(componentLogger("matcher")),
	}
	if jobs > 0 {
		opts = append(opts, zzfsm.WithGoroutineLimit(jobs))
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := zzfsm.MatchAll(ctx, m, c.Inputs, record, opts...); err != nil {
		return 0, fmt.Errorf("couldn't match inputs: %w", err)
	}

	failures := 0
	for i, input := range c.Inputs {
		r := results[i]
		printResult(w, input, r.matched, r.err)
		if r.err != nil {
			failures++
			continue
		}
		if want, ok := c.Want[input]; ok && want != r.matched {
			failures++
			fmt.Fprintf(w, "  %s\n", errorStyle.Render(fmt.Sprintf("want %v", want)))
		}
	}
	return failures, nil
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Dump a sample pattern and match a few inputs against it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			demo := matchCase{
				Pattern: "a*bc",
				Dump:    true,
				Inputs:  []string{"abc", "bbc", "cbc", "cbd", "cbt", "abcd"},
			}
			_, err := runCase(cmd.Context(), cmd.OutOrStdout(), demo, 1)
			return err
		},
	}
}
