package dsl

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"

	"lexforge/lexergen"
)

// TableLexer adapts a lexergen.Table into participle's lexer.Definition,
// the consumer-side integration a generated table exists for: build a
// Table once with lexergen, then drive any participle grammar from it.
type TableLexer struct {
	table   *lexergen.Table
	symbols map[string]lexer.TokenType
}

// NewTableLexer wraps table, naming each of its symbols after spec's
// declared clause names so the resulting lexer.Definition.Symbols() map
// reads the same way a participle grammar's struct tags would reference
// them (e.g. `@IDENT`).
func NewTableLexer(table *lexergen.Table, spec *Spec) *TableLexer {
	symbols := map[string]lexer.TokenType{"EOF": lexer.EOF}
	for i := 0; i < spec.symbols.count(); i++ {
		symbols[spec.symbols.Name(Symbol(i))] = symbolRune(Symbol(i))
	}
	return &TableLexer{table: table, symbols: symbols}
}

func symbolRune(s Symbol) lexer.TokenType { return lexer.TokenType(s) + 1 }

func (tl *TableLexer) Symbols() map[string]lexer.TokenType { return tl.symbols }

func (tl *TableLexer) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return &tableScanner{
		table: tl.table,
		input: []rune(string(data)),
		pos:   lexer.Position{Filename: filename, Line: 1, Column: 1},
	}, nil
}

var _ lexer.Definition = &TableLexer{}

type tableScanner struct {
	table *lexergen.Table
	input []rune
	at    int
	pos   lexer.Position
}

var _ lexer.Lexer = &tableScanner{}

// Next implements lexer.Lexer: skip a maximal whitespace match if the
// table declares a whitespace sub-automaton, then take the longest match
// in the main DFA starting at the current position.
func (s *tableScanner) Next() (lexer.Token, error) {
	for s.skipOneWhitespaceRun() {
	}

	if s.at >= len(s.input) {
		return lexer.EOFToken(s.pos), nil
	}

	sym, consumed := longestMatch(s.table.States, s.table.StartIndex, s.input[s.at:])
	if consumed == 0 {
		r := s.input[s.at]
		return lexer.Token{}, &lexer.Error{Msg: fmt.Sprintf("invalid input %q", r), Pos: s.pos}
	}

	startPos := s.pos
	text := string(s.input[s.at : s.at+consumed])
	s.advance(consumed)

	return lexer.Token{
		Type:  symbolRune(sym.(Symbol)),
		Value: text,
		Pos:   startPos,
	}, nil
}

// skipOneWhitespaceRun consumes one maximal whitespace match at the
// current position and reports whether it consumed anything, so the
// caller can loop until whitespace stops matching (several disjoint
// whitespace tokens in a row collapse into one skip).
func (s *tableScanner) skipOneWhitespaceRun() bool {
	if s.table.WhitespaceStartIndex < 0 || s.at >= len(s.input) {
		return false
	}
	_, consumed := longestMatch(s.table.WhitespaceStates, s.table.WhitespaceStartIndex, s.input[s.at:])
	if consumed == 0 {
		return false
	}
	s.advance(consumed)
	return true
}

func (s *tableScanner) advance(n int) {
	for _, r := range s.input[s.at : s.at+n] {
		s.pos.Offset += utf8.RuneLen(r)
		if r == '\n' {
			s.pos.Line++
			s.pos.Column = 1
		} else {
			s.pos.Column++
		}
	}
	s.at += n
}
