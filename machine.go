package zzfsm

import "fmt"

const (
	// SymbolSpace is the number of symbol codes each column maps.
	SymbolSpace = 130

	// EndOfInput is the synthetic symbol consulted once ordinary input has
	// run out. It is how $ is resolved.
	EndOfInput = 129

	// Code 128 is reserved. Input symbols are therefore always below it.
	inputSymbols = 128

	// . matches only the printable ASCII range.
	firstPrintable = ' '
	lastPrintable  = '~'
)

// Action is a single transition: which state to go to, and how much input to
// consume on the way (1 to consume a character, 0 for an epsilon transition).
type Action struct {
	// Next is the next state. 0 means there is no transition (reject).
	Next int

	// Offset is the number of input characters consumed.
	Offset int
}

// reject reports whether the action is the default (no transition).
func (a Action) reject() bool { return a.Next == 0 }

func (a Action) String() string { return fmt.Sprintf("(%d, %d)", a.Next, a.Offset) }

// Column is the transition table for one machine state.
type Column struct {
	Transition [SymbolSpace]Action
}

// Machine is a compiled pattern: an ordered sequence of columns. Column 0 is
// a sentinel that matching never enters. Any state value at or beyond the
// number of columns is accepting.
//
// A Machine is never modified after construction, so any number of goroutines
// may call Match on the same Machine.
type Machine struct {
	columns []Column
}

// NewMachine creates a machine from hand-built columns. The columns are
// copied. It returns an error wrapping ErrMalformedMachine if the columns
// don't form a machine that Match can walk safely.
func NewMachine(columns []Column) (*Machine, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: missing sentinel column", ErrMalformedMachine)
	}
	for i := 1; i < len(columns); i++ {
		for sym, a := range columns[i].Transition {
			if a.Next < 0 {
				return nil, fmt.Errorf("%w: column %d symbol %d: negative next state %d", ErrMalformedMachine, i, sym, a.Next)
			}
			if a.Offset != 0 && a.Offset != 1 {
				return nil, fmt.Errorf("%w: column %d symbol %d: offset %d not 0 or 1", ErrMalformedMachine, i, sym, a.Offset)
			}
			// Epsilon transitions must go forwards, otherwise Match could
			// spin forever without consuming anything.
			if a.Offset == 0 && !a.reject() && a.Next <= i {
				return nil, fmt.Errorf("%w: column %d symbol %d: epsilon transition to %d does not advance", ErrMalformedMachine, i, sym, a.Next)
			}
		}
	}
	return &Machine{columns: append([]Column(nil), columns...)}, nil
}

// Len returns the number of columns, including the sentinel. It is also the
// lowest accepting state.
func (m *Machine) Len() int { return len(m.columns) }

// Column returns a copy of column i.
func (m *Machine) Column(i int) Column { return m.columns[i] }

// Columns returns a copy of all the columns.
func (m *Machine) Columns() []Column { return append([]Column(nil), m.columns...) }

// action looks up the transition out of state for symbol.
func (m *Machine) action(state, symbol int) Action {
	return m.columns[state].Transition[symbol]
}
