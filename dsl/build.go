package dsl

import (
	"fmt"

	"lexforge/lexergen"
)

// Spec is the result of building a File AST: the token and whitespace
// specifications ready to hand to lexergen.NewLexerGenerator, plus the
// symbol table needed to turn a generated state's Symbol back into the
// declared clause name (TableLexer needs this to answer Symbols()).
type Spec struct {
	Tokens     []lexergen.TokenSpec
	Whitespace []lexergen.TokenSpec
	symbols    *symbolTable
}

// Build walks a parsed File and resolves it into a Spec. A TokenDecl
// naming an undeclared priority type is reported through sink (as
// lexergen.ErrRegexSyntax — structurally it is the same class of
// "this input cannot be turned into a regex tree" problem the generator
// itself reports) and the offending clause is skipped; building
// continues over the remaining declarations.
func Build(file *File, sink lexergen.ErrorSink) *Spec {
	types := make(map[string]int)
	syms := newSymbolTable()
	spec := &Spec{symbols: syms}

	for _, d := range file.Decls {
		switch {
		case d.Type != nil:
			types[d.Type.Name] = d.Type.Value

		case d.Token != nil:
			t := d.Token
			typ, ok := types[t.TypeName]
			if !ok {
				reportf(sink, t.Pos.Line, "token %q references undeclared priority type %q", t.Name, t.TypeName)
				continue
			}
			sym := syms.resolve(t.Name)
			spec.Tokens = append(spec.Tokens, lexergen.TokenSpec{
				Regex:  t.Pattern,
				Symbol: sym,
				Line:   t.Pos.Line,
				Type:   typ,
				Action: t.Action,
			})

		case d.Whitespace != nil:
			w := d.Whitespace
			sym := syms.resolve(w.Name)
			spec.Whitespace = append(spec.Whitespace, lexergen.TokenSpec{
				Regex:  w.Pattern,
				Symbol: sym,
				Line:   w.Pos.Line,
				Type:   0,
			})
		}
	}

	return spec
}

func reportf(sink lexergen.ErrorSink, line int, format string, args ...any) {
	if sink == nil {
		return
	}
	sink.Error(line, lexergen.ErrRegexSyntax, fmt.Sprintf(format, args...))
}

// SymbolName returns the declared clause name a Symbol was assigned
// from, or "" if s was not produced by this Spec's Build call.
func (s *Spec) SymbolName(sym Symbol) string {
	return s.symbols.Name(sym)
}
