// Package lexergen builds table-based lexical scanners from token
// specifications.
//
// Given a list of (regex, symbol, line, priority type) tuples it parses
// each regex into an annotated syntax tree, computes the nullable,
// firstpos, lastpos and followpos attributes used by the direct
// regex-to-DFA construction, and then performs a subset-style
// construction over distinct character ranges to produce a deterministic
// finite automaton. Each accepting state is assigned exactly one token
// symbol by a priority/line-number tie-break rule.
//
// The package only generates the automaton; it does not scan input
// itself and does not read or write files. See the dsl package for a
// front end that supplies TokenSpec values from a specification file,
// and cmd/lexgen for a command line driver.
package lexergen
