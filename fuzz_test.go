package zzfsm

import (
	"errors"
	"testing"
)

func FuzzCompileMatch(f *testing.F) {
	f.Add("a*bc", "aabc")
	f.Add("a.c", "a c")
	f.Add("ab$", "ab")
	f.Add(".*", "anything")
	f.Add("", "")
	f.Add("**", "x")
	f.Add("a*$", "é")

	f.Fuzz(func(t *testing.T, pattern, input string) {
		m, err := Compile(pattern)
		if err != nil {
			if !errors.Is(err, ErrMalformedPattern) && !errors.Is(err, ErrSymbolOutOfRange) {
				t.Fatalf("Compile(%q) error = %v, want a known error", pattern, err)
			}
			return // Invalid pattern is acceptable.
		}

		// Compiled machines are always valid hand-built machines too.
		if _, err := NewMachine(m.Columns()); err != nil {
			t.Fatalf("NewMachine(Compile(%q).Columns()) error = %v", pattern, err)
		}

		// Match should not panic, and should be repeatable.
		got1, err1 := m.Match(input)
		got2, err2 := m.Match(input)
		if got1 != got2 || (err1 == nil) != (err2 == nil) {
			t.Fatalf("Compile(%q).Match(%q) not deterministic: %v, %v then %v, %v", pattern, input, got1, err1, got2, err2)
		}
		if err1 != nil && (got1 || !errors.Is(err1, ErrSymbolOutOfRange)) {
			t.Fatalf("Compile(%q).Match(%q) = %v, %v", pattern, input, got1, err1)
		}
	})
}
