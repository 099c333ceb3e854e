// The zzdot command writes the state machine for a pattern in GraphViz syntax.
//
// Example:
//
//	$ zzdot 'a*bc' | dot -Tsvg > abc.svg
package main

import (
	"fmt"
	"os"

	"github.com/DrJosh9000/zzfsm"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s pattern\n", os.Args[0])
		os.Exit(1)
	}

	m, err := zzfsm.Compile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't compile pattern %q: %v\n", os.Args[1], err)
		os.Exit(1)
	}

	if err := m.WriteDot(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't write Dot output: %v\n", err)
		os.Exit(1)
	}
}
