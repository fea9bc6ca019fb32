package lexergen

// StateRecord is the externally visible shape of one generated
// LexerState: its assigned index, the symbol it accepts (or nil), the
// action tied to that symbol (or nil), and its sorted, non-overlapping
// outgoing transitions.
type StateRecord struct {
	Index       int
	Symbol      Symbol
	Action      *LexerAction
	Transitions []Transition
}

// ActionRecord is the externally visible shape of one interned
// LexerAction.
type ActionRecord struct {
	Index      int
	Identifier string
}

// Table is the generator's complete, read-only output: spec.md §6
// names exactly this shape — states (each with index, symbol-or-null
// and transitions), whitespace states, the start state of each DFA, and
// the action registry. It holds no reference back to the generator, so
// it can safely outlive it.
type Table struct {
	States               []StateRecord
	StartIndex           int
	WhitespaceStates     []StateRecord
	WhitespaceStartIndex int
	Actions              []ActionRecord
}

// Table snapshots the generator's output. Indices of -1 mean "no start
// state" (generation produced none, most likely because parsing
// reported an error).
func (g *LexerGenerator) Table() *Table {
	t := &Table{StartIndex: -1, WhitespaceStartIndex: -1}

	for _, s := range g.states {
		t.States = append(t.States, stateRecord(s))
	}
	if g.startState != nil {
		t.StartIndex = g.startState.Index()
	}

	for _, s := range g.whitespaceStates {
		t.WhitespaceStates = append(t.WhitespaceStates, stateRecord(s))
	}
	if g.whitespaceStartState != nil {
		t.WhitespaceStartIndex = g.whitespaceStartState.Index()
	}

	for _, a := range g.actions.all() {
		t.Actions = append(t.Actions, ActionRecord{Index: a.Index(), Identifier: a.Identifier()})
	}

	return t
}

func stateRecord(s *LexerState) StateRecord {
	return StateRecord{
		Index:       s.Index(),
		Symbol:      s.Symbol(),
		Action:      s.Action(),
		Transitions: append([]Transition(nil), s.Transitions()...),
	}
}
