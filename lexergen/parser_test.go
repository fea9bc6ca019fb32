package lexergen

import "testing"

func TestNewRegexParserBuildsLeafArenaAcrossTokens(t *testing.T) {
	p := newRegexParser([]TokenSpec{
		{Regex: "a", Symbol: "A", Line: 1, Type: 1},
		{Regex: "b", Symbol: "B", Line: 2, Type: 1},
	}, nil, newActionRegistry())

	if p.empty() {
		t.Fatalf("parser should not be empty for two valid tokens")
	}
	if p.errorCount() != 0 {
		t.Fatalf("errorCount = %d, want 0", p.errorCount())
	}
	// Each token contributes one literal leaf plus one End leaf.
	if len(p.leaves) != 4 {
		t.Fatalf("got %d leaves, want 4", len(p.leaves))
	}
}

func TestNewRegexParserSkipsFailingTokenButKeepsOthers(t *testing.T) {
	sink := &collectingSink{}
	p := newRegexParser([]TokenSpec{
		{Regex: "(a", Symbol: "BAD", Line: 1, Type: 1},
		{Regex: "b", Symbol: "B", Line: 2, Type: 1},
	}, sink, newActionRegistry())

	if p.empty() {
		t.Fatalf("parser should still produce a tree from the surviving token")
	}
	if p.errorCount() != 1 {
		t.Fatalf("errorCount = %d, want 1", p.errorCount())
	}
	if len(sink.errors) != 1 || sink.errors[0].kind != ErrRegexSyntax {
		t.Fatalf("errors = %+v, want one ErrRegexSyntax", sink.errors)
	}
}

func TestNewRegexParserEmptyTokenListIsEmpty(t *testing.T) {
	p := newRegexParser(nil, nil, newActionRegistry())
	if !p.empty() {
		t.Fatalf("parser built from no tokens should be empty")
	}
	if p.node() != nil {
		t.Fatalf("node() should be nil for an empty parser")
	}
}

func TestNewRegexParserEndLeafCarriesCompiledToken(t *testing.T) {
	actions := newActionRegistry()
	p := newRegexParser([]TokenSpec{
		{Regex: "a", Symbol: "A", Line: 5, Type: 3, Action: "doit"},
	}, nil, actions)

	var end *regexNode
	for _, leaf := range p.leaves {
		if leaf.isEnd() {
			end = leaf
		}
	}
	if end == nil {
		t.Fatalf("expected an End leaf")
	}
	if end.token == nil || end.token.spec.Symbol != "A" || end.token.spec.Line != 5 {
		t.Fatalf("End leaf token = %+v, want spec for A at line 5", end.token)
	}
	if end.token.action == nil || end.token.action.Identifier() != "doit" {
		t.Fatalf("End leaf action = %+v, want action 'doit'", end.token.action)
	}
}
