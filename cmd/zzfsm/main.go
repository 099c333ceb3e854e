// The zzfsm command compiles patterns into transition tables and matches
// inputs against them.
//
// Example:
//
//	$ zzfsm match 'a*bc' abc bbc aabc
//	"abc" => true
//	"bbc" => false
//	"aabc" => true
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
