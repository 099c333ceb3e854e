package zzfsm

import (
	"errors"
	"fmt"
)

// Compile converts a pattern into a machine.
func Compile(pattern string, opts ...CompileOption) (*Machine, error) {
	cfg := defaultCompileConfig
	for _, o := range opts {
		o(&cfg)
	}

	// tokenise classifies each rune as literal or punctuation
	tks := tokenise(pattern, &cfg)

	b := newBuilder(&cfg)
	fail := func(pos int, err error, format string, args ...any) (*Machine, error) {
		return nil, &PatternError{
			Pattern: pattern,
			Pos:     pos,
			Msg:     fmt.Sprintf(format, args...),
			Err:     err,
		}
	}

	for {
		pt, ok := tks.next()
		if !ok {
			break
		}

		switch t := pt.tok.(type) {
		case literal:
			if t < 0 || t >= inputSymbols {
				return fail(pt.pos, ErrSymbolOutOfRange, "literal %q is not ASCII", rune(t))
			}
			b.appendAtom(literalAtom(t))

		case punctuation:
			switch t {
			case '.':
				b.appendAtom(anyAtom{})

			case '$':
				b.appendAtom(endAtom{})

			case '*':
				if err := b.repeatLast(); err != nil {
					return fail(pt.pos, ErrMalformedPattern, "%v", err)
				}

			default:
				return fail(pt.pos, ErrMalformedPattern, "invalid punctuation %c", t)
			}

		default:
			return fail(pt.pos, ErrMalformedPattern, "invalid token type %T", t)
		}
	}

	cfg.logger.Trace().
		Str("pattern", pattern).
		Int("columns", len(b.columns)).
		Msg("compiled")

	return &Machine{columns: b.columns}, nil
}

// MustCompile calls Compile, and panics if unable to compile the pattern.
func MustCompile(pattern string, opts ...CompileOption) *Machine {
	m, err := Compile(pattern, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// builder constructs the columns of a machine in two steps per atom: append
// the atom's column, then optionally repeat it.
type builder struct {
	cfg     *compileConfig
	columns []Column

	// repeated is set once the last column has been rewritten by repeatLast.
	repeated bool
}

func newBuilder(cfg *compileConfig) *builder {
	// Column 0 is the sentinel.
	return &builder{
		cfg:     cfg,
		columns: make([]Column, 1),
	}
}

// appendAtom appends a column for the atom. Every symbol the atom accepts
// consumes one character and advances to the column after it.
func (b *builder) appendAtom(a atom) {
	var col Column
	a.fill(&col, Action{Next: len(b.columns) + 1, Offset: 1})
	b.columns = append(b.columns, col)
	b.repeated = false

	b.cfg.logger.Trace().
		Int("column", len(b.columns)-1).
		Str("atom", fmt.Sprintf("%T", a)).
		Msg("appended atom")
}

// repeatLast rewrites the most recently appended column so that the atom may
// occur zero or more times: transitions that advance past the column loop
// back to it instead, and every rejected symbol becomes an epsilon transition
// to the next column.
func (b *builder) repeatLast() error {
	n := len(b.columns)
	if n < 2 {
		return errors.New("nothing to repeat")
	}
	if b.repeated {
		return fmt.Errorf("column %d is already repeated", n-1)
	}

	col := &b.columns[n-1]

	// Check first, so that a failure doesn't leave a half-rewritten column.
	for sym, a := range col.Transition {
		if a.Next != n && !a.reject() {
			return fmt.Errorf("column %d symbol %d has unexpected transition %v", n-1, sym, a)
		}
	}

	for sym := range col.Transition {
		a := &col.Transition[sym]
		if a.reject() {
			*a = Action{Next: n, Offset: 0}
			continue
		}
		a.Next = n - 1
	}
	b.repeated = true

	b.cfg.logger.Trace().
		Int("column", n-1).
		Msg("repeated column")
	return nil
}
