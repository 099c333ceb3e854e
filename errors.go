package zzfsm

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedPattern is returned (wrapped in a *PatternError) when a
	// pattern contains a construct that can't be compiled, such as a * with
	// nothing to repeat.
	ErrMalformedPattern = errors.New("malformed pattern")

	// ErrSymbolOutOfRange is returned when a character has no symbol code,
	// i.e. it is not ASCII.
	ErrSymbolOutOfRange = errors.New("symbol out of range")

	// ErrMalformedMachine is returned by NewMachine for columns that can't be
	// matched against safely.
	ErrMalformedMachine = errors.New("malformed machine")
)

// PatternError describes a pattern that failed to compile.
type PatternError struct {
	Pattern string
	Pos     int // byte offset into Pattern
	Msg     string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("%v at offset %d in pattern %q: %s", e.Err, e.Pos, e.Pattern, e.Msg)
}

func (e *PatternError) Unwrap() error { return e.Err }

// SymbolError describes an input character that Match could not look up.
type SymbolError struct {
	Input string
	Pos   int // byte offset into Input
	Rune  rune
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("%v: %q (U+%04X) at offset %d", ErrSymbolOutOfRange, e.Rune, e.Rune, e.Pos)
}

func (e *SymbolError) Unwrap() error { return ErrSymbolOutOfRange }
