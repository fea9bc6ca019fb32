package lexergen

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// collectingSink is an ErrorSink test double that records every error
// reported to it so tests can assert on kind, line and content without
// depending on any particular message format.
type collectingSink struct {
	errors []sinkError
	lines  []string
}

type sinkError struct {
	line   int
	kind   ErrorKind
	detail string
}

func (s *collectingSink) Error(line int, kind ErrorKind, detail string) {
	s.errors = append(s.errors, sinkError{line: line, kind: kind, detail: detail})
}

func (s *collectingSink) Printf(format string, args ...any) {
	s.lines = append(s.lines, format)
}

// driveToAcceptance walks state transitions for input one rune at a
// time, remembering the last state at which a symbol was accepted, the
// way a longest-match scanner built from this table would. It exists
// only to exercise the generated DFA in tests; the generator itself
// never runs a scan loop.
func driveToAcceptance(start *LexerState, input string) (Symbol, int) {
	var acceptedSymbol Symbol
	acceptedAt := 0

	state := start
	if state == nil {
		return nil, 0
	}
	if sym := state.Symbol(); sym != nil {
		acceptedSymbol = sym
	}

	for i, r := range input {
		next := transitionFor(state, int32(r))
		if next == nil {
			break
		}
		state = next
		if sym := state.Symbol(); sym != nil {
			acceptedSymbol = sym
			acceptedAt = i + 1
		}
	}
	return acceptedSymbol, acceptedAt
}

func transitionFor(state *LexerState, r int32) *LexerState {
	for _, tr := range state.Transitions() {
		if r >= tr.Begin && r < tr.End {
			return tr.Target
		}
	}
	return nil
}

func TestSingleLiteralToken(t *testing.T) {
	g := NewLexerGenerator([]TokenSpec{
		{Regex: "if", Symbol: "IF", Line: 1, Type: 2},
	}, nil, nil)

	if len(g.States()) != 3 {
		t.Fatalf("got %d states, want 3", len(g.States()))
	}
	sym, n := driveToAcceptance(g.StartState(), "if")
	if sym != "IF" || n != 2 {
		t.Fatalf("driveToAcceptance = (%v, %d), want (IF, 2)", sym, n)
	}
}

func TestTypePriorityWins(t *testing.T) {
	g := NewLexerGenerator([]TokenSpec{
		{Regex: "[a-z]+", Symbol: "IDENT", Line: 1, Type: 1},
		{Regex: "if", Symbol: "IF", Line: 2, Type: 2},
	}, nil, nil)

	sym, n := driveToAcceptance(g.StartState(), "if")
	if sym != "IF" || n != 2 {
		t.Fatalf("driveToAcceptance = (%v, %d), want (IF, 2)", sym, n)
	}

	sym, n = driveToAcceptance(g.StartState(), "ifx")
	if sym != "IDENT" || n != 3 {
		t.Fatalf("driveToAcceptance(ifx) = (%v, %d), want (IDENT, 3)", sym, n)
	}
}

func TestEarlierLineWinsOnEqualType(t *testing.T) {
	g := NewLexerGenerator([]TokenSpec{
		{Regex: "[0-9]", Symbol: "DIGIT", Line: 1, Type: 1},
		{Regex: "[0-5]", Symbol: "LOW", Line: 2, Type: 1},
	}, nil, nil)

	start := g.StartState()
	if len(start.Transitions()) != 2 {
		t.Fatalf("got %d transitions from start, want 2", len(start.Transitions()))
	}

	lowSym, _ := driveToAcceptance(start, "3")
	if lowSym != "DIGIT" {
		t.Fatalf("matching '3' gave symbol %v, want DIGIT (earlier line wins)", lowSym)
	}
	highSym, _ := driveToAcceptance(start, "7")
	if highSym != "DIGIT" {
		t.Fatalf("matching '7' gave symbol %v, want DIGIT", highSym)
	}
}

func TestSymbolConflictReported(t *testing.T) {
	sink := &collectingSink{}
	g := NewLexerGenerator([]TokenSpec{
		{Regex: "a", Symbol: "LET_A", Line: 1, Type: 2},
		{Regex: "a", Symbol: "LET_A2", Line: 1, Type: 2},
	}, nil, sink)

	if len(sink.errors) != 1 || sink.errors[0].kind != ErrSymbolConflict {
		t.Fatalf("errors = %+v, want exactly one ErrSymbolConflict", sink.errors)
	}

	sym, _ := driveToAcceptance(g.StartState(), "a")
	if sym != nil {
		t.Fatalf("conflicted state should have no symbol, got %v", sym)
	}
}

func TestStarClosureAndFollowpos(t *testing.T) {
	g := NewLexerGenerator([]TokenSpec{
		{Regex: "a*b", Symbol: "AB", Line: 1, Type: 1},
	}, nil, nil)

	sym, n := driveToAcceptance(g.StartState(), "b")
	if sym != "AB" || n != 1 {
		t.Fatalf("matching 'b' = (%v,%d), want (AB,1)", sym, n)
	}
	sym, n = driveToAcceptance(g.StartState(), "aaab")
	if sym != "AB" || n != 4 {
		t.Fatalf("matching 'aaab' = (%v,%d), want (AB,4)", sym, n)
	}
}

func TestWhitespacePairSharesIndexSpace(t *testing.T) {
	g := NewLexerGenerator(
		[]TokenSpec{{Regex: "x", Symbol: "X", Line: 1, Type: 1}},
		[]TokenSpec{{Regex: " ", Symbol: "WS", Line: 1, Type: 1}},
		nil,
	)

	mainStates := g.States()
	wsStates := g.WhitespaceStates()
	if len(mainStates) == 0 || len(wsStates) == 0 {
		t.Fatalf("expected both main and whitespace states, got %d and %d", len(mainStates), len(wsStates))
	}

	lastMainIndex := mainStates[len(mainStates)-1].Index()
	firstWsIndex := wsStates[0].Index()
	if firstWsIndex != lastMainIndex+1 {
		t.Fatalf("whitespace indices should continue from main: last main=%d, first ws=%d", lastMainIndex, firstWsIndex)
	}

	sym, n := driveToAcceptance(g.WhitespaceStartState(), " ")
	if sym != "WS" || n != 1 {
		t.Fatalf("whitespace match = (%v,%d), want (WS,1)", sym, n)
	}
}

// stateSummary and transitionSummary flatten a *LexerState into plain,
// pointer-free data so cmp.Diff can compare two generation runs
// structurally instead of walking fields by hand — a transition's
// Target is a live *LexerState, which cmp has no business following.
type stateSummary struct {
	Index       int
	Positions   []Position
	Transitions []transitionSummary
}

type transitionSummary struct {
	Begin, End  int32
	TargetIndex int
}

func summarizeStates(states []*LexerState) []stateSummary {
	out := make([]stateSummary, len(states))
	for i, s := range states {
		trs := make([]transitionSummary, len(s.Transitions()))
		for j, tr := range s.Transitions() {
			trs[j] = transitionSummary{Begin: tr.Begin, End: tr.End, TargetIndex: tr.Target.Index()}
		}
		out[i] = stateSummary{Index: s.Index(), Positions: []Position(s.Positions()), Transitions: trs}
	}
	return out
}

func TestDeterministicAcrossRuns(t *testing.T) {
	specs := []TokenSpec{
		{Regex: "[a-zA-Z_][a-zA-Z0-9_]*", Symbol: "IDENT", Line: 1, Type: 1},
		{Regex: "if", Symbol: "IF", Line: 2, Type: 2},
		{Regex: "[0-9]+", Symbol: "INT", Line: 3, Type: 1},
	}

	g1 := NewLexerGenerator(specs, nil, nil)
	g2 := NewLexerGenerator(specs, nil, nil)

	if d := cmp.Diff(summarizeStates(g1.States()), summarizeStates(g2.States())); d != "" {
		t.Errorf("generated states differ across runs (-first +second):\n%s", d)
	}
}

func TestTransitionsAreDisjointAndSorted(t *testing.T) {
	g := NewLexerGenerator([]TokenSpec{
		{Regex: "[0-9]", Symbol: "DIGIT", Line: 1, Type: 1},
		{Regex: "[0-5]", Symbol: "LOW", Line: 2, Type: 1},
		{Regex: "[a-z]", Symbol: "LOWER", Line: 3, Type: 1},
	}, nil, nil)

	for _, s := range g.States() {
		trs := s.Transitions()
		for i := 1; i < len(trs); i++ {
			if trs[i-1].End > trs[i].Begin {
				t.Fatalf("state %d has overlapping/unsorted transitions: %+v", s.Index(), trs)
			}
			if trs[i-1].Begin >= trs[i-1].End {
				t.Fatalf("state %d has an invalid empty range: %+v", s.Index(), trs[i-1])
			}
		}
	}
}

func TestActionInterning(t *testing.T) {
	g := NewLexerGenerator([]TokenSpec{
		{Regex: "a", Symbol: "A", Line: 1, Type: 1, Action: "scan_a"},
		{Regex: "b", Symbol: "B", Line: 2, Type: 1, Action: "scan_a"},
		{Regex: "c", Symbol: "C", Line: 3, Type: 1},
	}, nil, nil)

	actions := g.Actions()
	if len(actions) != 1 {
		t.Fatalf("got %d actions, want 1 (interned)", len(actions))
	}
	if actions[0].Identifier() != "scan_a" || actions[0].Index() != 0 {
		t.Fatalf("unexpected action %+v", actions[0])
	}
}

func TestRegexSyntaxErrorSkipsGeneration(t *testing.T) {
	sink := &collectingSink{}
	g := NewLexerGenerator([]TokenSpec{
		{Regex: "(a", Symbol: "BAD", Line: 4, Type: 1},
	}, nil, sink)

	if len(sink.errors) == 0 {
		t.Fatalf("expected a reported error for an unclosed group")
	}
	if g.StartState() != nil || len(g.States()) != 0 {
		t.Fatalf("expected no states to be generated after a parse error")
	}
}

func TestEmptyCharacterClassReported(t *testing.T) {
	sink := &collectingSink{}
	NewLexerGenerator([]TokenSpec{
		{Regex: "[]", Symbol: "BAD", Line: 1, Type: 1},
	}, nil, sink)

	if len(sink.errors) != 1 || sink.errors[0].kind != ErrEmptyCharacterClass {
		t.Fatalf("errors = %+v, want exactly one ErrEmptyCharacterClass", sink.errors)
	}
}
