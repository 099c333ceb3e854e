package zzfsm

// atom is one unit of the pattern, occupying exactly one column.
type atom interface {
	// fill populates the column with act for every symbol the atom accepts.
	fill(col *Column, act Action)
}

// Atoms
type (
	// Matches exactly this ASCII character.
	literalAtom byte

	// . matches any printable ASCII character.
	anyAtom struct{}

	// $ matches only at the end of the input.
	endAtom struct{}
)

func (a literalAtom) fill(col *Column, act Action) { col.Transition[a] = act }

func (anyAtom) fill(col *Column, act Action) {
	for s := firstPrintable; s <= lastPrintable; s++ {
		col.Transition[s] = act
	}
}

func (endAtom) fill(col *Column, act Action) { col.Transition[EndOfInput] = act }
