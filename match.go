package zzfsm

import "unicode/utf8"

// Match reports whether the whole input matches the machine. It returns a
// *SymbolError if it has to look up a character that isn't ASCII.
func (m *Machine) Match(input string) (bool, error) {
	n := len(m.columns)
	state, head := 1, 0
	for state > 0 && state < n && head < len(input) {
		c := input[head]
		if c >= inputSymbols {
			r, _ := utf8.DecodeRuneInString(input[head:])
			return false, &SymbolError{Input: input, Pos: head, Rune: r}
		}
		a := m.action(state, int(c))
		state, head = a.Next, head+a.Offset
	}

	if state == 0 {
		return false, nil
	}

	// Out of input but not yet accepting: resolve with the end-of-input
	// symbol. Epsilon transitions (skipped repetitions) are followed until a
	// transition consumes the end of input. Epsilons only go forwards, so this
	// takes fewer than n steps.
	for state > 0 && state < n {
		a := m.action(state, EndOfInput)
		state = a.Next
		if a.Offset != 0 {
			break
		}
	}

	// Reaching the accepting state early doesn't count: the input must be
	// used up.
	return state >= n && head == len(input), nil
}
