// Package zzfsm compiles a tiny pattern language into a table-driven finite
// state machine, and matches strings against it.
//
// Patterns are made of literal ASCII characters and three operators:
//
//   - . matches any printable ASCII character (space to ~)
//   - $ matches only at the end of the input
//   - * repeats the preceding atom zero or more times
//
// Each atom compiles to one column of a [Machine]: a dense table from symbol
// code to [Action]. * does not add a column; it rewrites the column of the
// atom before it into a self-loop plus an epsilon transition past it.
// Matching walks the columns one character at a time, without backtracking,
// and succeeds only if the whole input is consumed.
//
// The * operator is greedy and never gives characters back, so a*a never
// matches anything.
package zzfsm
