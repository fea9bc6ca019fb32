package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"lexforge/dsl"
	"lexforge/internal/dot"
	"lexforge/lexergen"
)

var cli struct {
	Generate GenerateCmd `cmd:"" help:"Parse a specification file and print a summary of the generated table."`
	Dot      DotCmd      `cmd:"" help:"Render the generated DFA as Graphviz dot source."`
}

type GenerateCmd struct {
	Spec   string `arg:"" type:"path" help:"lexer specification file"`
	Output string `short:"o" default:"-" help:"output file for the machine-readable table ('-' for stdout)"`
}

type DotCmd struct {
	Spec   string `arg:"" type:"path" help:"lexer specification file"`
	Output string `short:"o" default:"-" help:"output file for the dot source ('-' for stdout)"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("lexgen"),
		kong.Description("Builds a deterministic lexer table from a token specification file."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("lexgen: %v", err))
		os.Exit(1)
	}
}

// buildTable reads and parses specPath, builds the lexer table, and
// prints a colorized summary (state count, conflict count) to stderr.
// The returned error is nil even when the sink recorded conflicts —
// conflicts are reported through the table's symbols being left unset,
// not through a hard failure, matching the generator's own stance that
// an ErrorSink report never aborts generation.
func buildTable(specPath string) (*lexergen.Table, *dsl.Spec, error) {
	data, err := os.ReadFile(specPath)
	if err != nil {
		return nil, nil, err
	}

	file, err := dsl.Parse(specPath, string(data))
	if err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", specPath, err)
	}

	sink := &countingSink{}
	spec := dsl.Build(file, sink)
	if sink.errors > 0 {
		return nil, nil, fmt.Errorf("%s: %d error(s) while resolving the specification", specPath, sink.errors)
	}

	gen := lexergen.NewLexerGenerator(spec.Tokens, spec.Whitespace, sink)
	table := gen.Table()

	summary := fmt.Sprintf("%s: %d states, %d whitespace states, %d conflict(s)",
		specPath, len(table.States), len(table.WhitespaceStates), sink.conflicts)
	if sink.conflicts > 0 {
		fmt.Fprintln(os.Stderr, color.YellowString(summary))
	} else {
		fmt.Fprintln(os.Stderr, color.GreenString(summary))
	}

	if n := sink.errors - sink.conflicts; n > 0 {
		return table, spec, fmt.Errorf("%s: %d error(s) while generating the table", specPath, n)
	}
	return table, spec, nil
}

type countingSink struct {
	errors    int
	conflicts int
}

func (s *countingSink) Error(line int, kind lexergen.ErrorKind, detail string) {
	s.errors++
	if kind == lexergen.ErrSymbolConflict {
		s.conflicts++
	}
	fmt.Fprintf(os.Stderr, "%s: line %d: %s\n", color.RedString("error"), line, detail)
}

func (s *countingSink) Printf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func (c *GenerateCmd) Run() error {
	table, spec, err := buildTable(c.Spec)
	if err != nil {
		return err
	}

	w := os.Stdout
	if c.Output != "-" {
		f, err := os.Create(c.Output)
		if err != nil {
			return fmt.Errorf("creating %s: %w", c.Output, err)
		}
		defer f.Close()
		w = f
	}

	for _, s := range table.States {
		name := "-"
		if s.Symbol != nil {
			name = spec.SymbolName(s.Symbol.(dsl.Symbol))
		}
		fmt.Fprintf(w, "state %d symbol=%s transitions=%d\n", s.Index, name, len(s.Transitions))
	}
	return nil
}

func (c *DotCmd) Run() error {
	table, _, err := buildTable(c.Spec)
	if err != nil {
		return err
	}

	w := os.Stdout
	if c.Output != "-" {
		f, err := os.Create(c.Output)
		if err != nil {
			return fmt.Errorf("creating %s: %w", c.Output, err)
		}
		defer f.Close()
		w = f
	}

	dot.Export(w, table)
	return nil
}
