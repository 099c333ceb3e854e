package zzfsm

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes the transition table to the writer: one row per symbol code,
// with the action for that symbol in each column, from left to right.
func (m *Machine) Dump(w io.Writer) error {
	var sb strings.Builder
	for sym := 0; sym < SymbolSpace; sym++ {
		sb.Reset()
		fmt.Fprintf(&sb, "%03d => ", sym)
		for _, col := range m.columns {
			sb.WriteString(col.Transition[sym].String())
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// WriteDot writes a digraph representing the machine to the writer
// (in GraphViz syntax). Epsilon transitions are drawn dashed.
func (m *Machine) WriteDot(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "digraph {\n\trankdir=LR;"); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "\tinitial [label=\"\", style=invis];"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "\taccept [label=\"\", shape=doublecircle];"); err != nil {
		return err
	}

	n := len(m.columns)
	if _, err := fmt.Fprintf(w, "\tinitial -> %s;\n", m.dotNode(1)); err != nil {
		return err
	}

	for i := 1; i < n; i++ {
		if _, err := fmt.Fprintf(w, "\tstate_%d [label=\"%d\", shape=circle];\n", i, i); err != nil {
			return err
		}
		for _, g := range groupActions(&m.columns[i]) {
			style := "solid"
			if g.act.Offset == 0 {
				style = "dashed"
			}
			if _, err := fmt.Fprintf(w, "\tstate_%d -> %s [label=%q, style=%s];\n", i, m.dotNode(g.act.Next), g.label(), style); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintln(w, "}"); err != nil {
		return err
	}
	return nil
}

// dotNode names the node for a state.
func (m *Machine) dotNode(state int) string {
	if state >= len(m.columns) {
		return "accept"
	}
	return fmt.Sprintf("state_%d", state)
}

// actionGroup is a set of symbols in one column sharing the same action.
type actionGroup struct {
	act     Action
	symbols []int
}

// groupActions groups the non-reject symbols of the column by action, in
// order of each action's lowest symbol.
func groupActions(col *Column) []*actionGroup {
	var groups []*actionGroup
	byAction := make(map[Action]*actionGroup)
	for sym, a := range col.Transition {
		if a.reject() {
			continue
		}
		g := byAction[a]
		if g == nil {
			g = &actionGroup{act: a}
			byAction[a] = g
			groups = append(groups, g)
		}
		g.symbols = append(g.symbols, sym)
	}
	return groups
}

// label compacts the (sorted) symbols into ranges, e.g. "a", "' '-'~'", "EOI".
func (g *actionGroup) label() string {
	var parts []string
	for i := 0; i < len(g.symbols); {
		j := i
		for j+1 < len(g.symbols) && g.symbols[j+1] == g.symbols[j]+1 {
			j++
		}
		lo, hi := g.symbols[i], g.symbols[j]
		switch {
		case lo == hi:
			parts = append(parts, symbolName(lo))
		default:
			parts = append(parts, symbolName(lo)+"-"+symbolName(hi))
		}
		i = j + 1
	}
	return strings.Join(parts, ",")
}

// symbolName describes a symbol code for humans.
func symbolName(sym int) string {
	switch {
	case sym == EndOfInput:
		return "EOI"
	case sym == ' ':
		return "' '"
	case sym > ' ' && sym <= lastPrintable:
		return string(rune(sym))
	default:
		return fmt.Sprintf("\\x%02x", sym)
	}
}
