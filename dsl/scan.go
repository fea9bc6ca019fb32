package dsl

import "lexforge/lexergen"

// longestMatch walks states starting from startIndex, following
// transitions over input rune by rune, and returns the symbol and
// length of the longest prefix that lands on an accepting state. It
// reports a nil symbol and zero length if no prefix of input is
// accepted at all, including the empty prefix.
//
// This is the runtime scanning loop the generator itself deliberately
// does not provide: lexergen only produces the table, and this is one
// concrete caller driving it.
func longestMatch(states []lexergen.StateRecord, startIndex int, input []rune) (lexergen.Symbol, int) {
	if startIndex < 0 {
		return nil, 0
	}

	current := findState(states, startIndex)
	if current == nil {
		return nil, 0
	}

	var acceptedSymbol lexergen.Symbol
	acceptedLen := 0
	if current.Symbol != nil {
		acceptedSymbol = current.Symbol
	}

	for i, r := range input {
		target := transitionTarget(current.Transitions, r)
		if target == nil {
			break
		}
		if sym := target.Symbol(); sym != nil {
			acceptedSymbol = sym
			acceptedLen = i + 1
		}
		current = &lexergen.StateRecord{
			Index:       target.Index(),
			Symbol:      target.Symbol(),
			Action:      target.Action(),
			Transitions: target.Transitions(),
		}
	}

	return acceptedSymbol, acceptedLen
}

func findState(states []lexergen.StateRecord, index int) *lexergen.StateRecord {
	for i := range states {
		if states[i].Index == index {
			return &states[i]
		}
	}
	return nil
}

func transitionTarget(transitions []lexergen.Transition, r rune) *lexergen.LexerState {
	for _, tr := range transitions {
		if int32(r) >= tr.Begin && int32(r) < tr.End {
			return tr.Target
		}
	}
	return nil
}
