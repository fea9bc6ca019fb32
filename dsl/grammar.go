package dsl

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// File is the top-level grammar of a specification file: a sequence of
// priority-type declarations, token clauses and whitespace clauses, any
// number of each, in the style of internal/interpreter/parser.go's
// Program/Statement split. Build resolves type names in file order, so a
// priority type must be declared before a token clause references it.
type File struct {
	Decls []*Decl `parser:"@@*"`
}

type Decl struct {
	Type       *TypeDecl       `parser:"  @@"`
	Token      *TokenDecl      `parser:"| @@"`
	Whitespace *WhitespaceDecl `parser:"| @@"`
}

// TypeDecl binds a priority-type name to its numeric weight:
// `type KEYWORD = 10`.
type TypeDecl struct {
	Pos   lexer.Position
	Name  string `parser:"'type' @Ident"`
	Value int    `parser:"'=' @Int"`
}

// TokenDecl declares one recognized token: a name, a quoted regular
// expression, a reference to a previously declared priority type, and an
// optional semantic action identifier.
type TokenDecl struct {
	Pos      lexer.Position
	Name     string `parser:"'token' @Ident"`
	Pattern  string `parser:"@String"`
	TypeName string `parser:"@Ident"`
	Action   string `parser:"('action' '=' @Ident)?"`
}

// WhitespaceDecl declares one entry of the whitespace sub-automaton:
// `whitespace WS "[ \t\r\n]+"`.
type WhitespaceDecl struct {
	Pos     lexer.Position
	Name    string `parser:"'whitespace' @Ident"`
	Pattern string `parser:"@String"`
}

var fileParser = participle.MustBuild[File](participle.Unquote("String"))

// Parse parses the text of one specification file into its AST. The
// filename is used only for error positions.
func Parse(filename, text string) (*File, error) {
	return fileParser.ParseString(filename, text)
}
