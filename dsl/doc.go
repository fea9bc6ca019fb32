// Package dsl reads a lexer specification file — priority types, token
// clauses and optional whitespace clauses — into the []lexergen.TokenSpec
// shape lexergen.NewLexerGenerator consumes, and wraps a generated
// lexergen.Table back up into participle's lexer.Definition/lexer.Lexer
// interfaces so the table can drive a participle parser directly.
package dsl
