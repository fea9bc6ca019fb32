package lexergen

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// LexerGenerator is the orchestrator that builds an initial state from
// the combined regex's firstpos, iterates to closure generating goto
// states over partitioned character ranges, selects an accepting symbol
// per state, and numbers states. It owns the regex tree and every
// LexerItem and LexerState produced while building it.
type LexerGenerator struct {
	sink    ErrorSink
	actions *actionRegistry

	parser           *RegexParser
	states           []*LexerState // sorted by canonical key once generation completes
	whitespaceParser *RegexParser
	whitespaceStates []*LexerState

	startState           *LexerState
	whitespaceStartState *LexerState
}

// NewLexerGenerator builds a LexerGenerator from tokens and, if
// non-empty, a second whitespace token list producing an independent
// DFA that shares the same action namespace but has its own start
// state and index range continuing directly after the main states.
func NewLexerGenerator(tokens []TokenSpec, whitespace []TokenSpec, sink ErrorSink) *LexerGenerator {
	sink = normalizeSink(sink)
	g := &LexerGenerator{sink: sink, actions: newActionRegistry()}

	g.parser = newRegexParser(tokens, sink, g.actions)
	g.states, g.startState = g.generateStates(g.parser)

	g.whitespaceParser = newRegexParser(whitespace, sink, g.actions)
	g.whitespaceStates, g.whitespaceStartState = g.generateStates(g.whitespaceParser)

	g.generateIndicesForStates()
	return g
}

// Actions returns every LexerAction interned while building this
// generator, in first-mention order.
func (g *LexerGenerator) Actions() []*LexerAction { return g.actions.all() }

// States returns the generated main states, ordered by their canonical
// position-set key (and therefore by assigned index).
func (g *LexerGenerator) States() []*LexerState { return g.states }

// WhitespaceStates returns the generated whitespace states, in the same
// canonical order, with indices continuing immediately after the last
// main state's index.
func (g *LexerGenerator) WhitespaceStates() []*LexerState { return g.whitespaceStates }

// StartState is the start state of the main DFA, or nil if parsing
// reported any error or the token list was empty.
func (g *LexerGenerator) StartState() *LexerState { return g.startState }

// WhitespaceStartState is the start state of the whitespace DFA, or nil
// under the same conditions.
func (g *LexerGenerator) WhitespaceStartState() *LexerState { return g.whitespaceStartState }

// generateStates runs the direct-construction algorithm of spec.md
// §4.2 over one RegexParser's combined tree. It produces no states and
// a nil start state if parsing reported any error or the tree is empty,
// matching the original generator's behaviour of staying silent at this
// point — the errors were already reported while parsing.
func (g *LexerGenerator) generateStates(parser *RegexParser) ([]*LexerState, *LexerState) {
	if parser.empty() || parser.errorCount() > 0 {
		return nil, nil
	}

	leaves := parser.leaves
	byKey := make(map[string]*LexerState)
	order := make([]*LexerState, 0, 16)

	start := newLexerState()
	start.addItem(parser.node().first)
	g.generateSymbolForState(start, leaves)
	byKey[canonicalKey(start.key)] = start
	order = append(order, start)

	var rs RangeSet
	for i := 0; i < len(order); i++ {
		state := order[i]
		if state.isProcessed() {
			continue
		}
		state.setProcessed()

		rs.clear()
		for _, item := range state.items {
			for _, r := range item.contributingRanges(leaves) {
				rs.insert(r.begin, r.end)
			}
		}

		for _, dr := range rs.ranges() {
			target := g.goto_(state, leaves, dr.begin, dr.end)
			if target.empty() {
				continue
			}

			key := canonicalKey(target.key)
			actual, exists := byKey[key]
			if !exists {
				byKey[key] = target
				order = append(order, target)
				g.generateSymbolForState(target, leaves)
				actual = target
			}
			state.addTransition(dr.begin, dr.end, actual)
		}
	}

	sort.Slice(order, func(i, j int) bool { return order[i].key.less(order[j].key) })
	return order, start
}

// goto_ generates the state that results from accepting any character
// in the half-open range [begin, end) from state.
func (g *LexerGenerator) goto_(state *LexerState, leaves []*regexNode, begin, end int32) *LexerState {
	invariant(validAlphabetChar(begin) && validAlphabetChar(end), "goto_ called with an out-of-alphabet character")
	invariant(begin <= end, "goto_ called with begin > end")

	target := newLexerState()
	for _, item := range state.items {
		next := item.gotoPositions(leaves, begin, end)
		if len(next) > 0 {
			target.addItem(next)
		}
	}
	return target
}

// generateSymbolForState applies the priority rule of spec.md §4.3 to
// every End position reachable in state, as a pure reduction over the
// candidates: sort by (type descending, line ascending, leaf position
// ascending) so the result never depends on the order items or states
// were visited in, then check whether the winner is uniquely determined
// by (type, line) alone.
func (g *LexerGenerator) generateSymbolForState(state *LexerState, leaves []*regexNode) {
	type candidate struct {
		token *compiledToken
		pos   Position
	}

	var candidates []candidate
	for _, p := range state.key {
		leaf := leaves[p]
		if leaf.isEnd() && leaf.token != nil {
			candidates = append(candidates, candidate{token: leaf.token, pos: p})
		}
	}
	if len(candidates) == 0 {
		return
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.token.spec.Type != b.token.spec.Type {
			return a.token.spec.Type > b.token.spec.Type
		}
		if a.token.spec.Line != b.token.spec.Line {
			return a.token.spec.Line < b.token.spec.Line
		}
		return a.pos < b.pos
	})

	winner := candidates[0].token
	conflicted := false
	for _, c := range candidates[1:] {
		if c.token.spec.Type != winner.spec.Type || c.token.spec.Line != winner.spec.Line {
			break
		}
		conflicted = true
		g.sink.Error(winner.spec.Line, ErrSymbolConflict, fmt.Sprintf(
			"%v and %v conflict but are both defined on line %d",
			winner.spec.Symbol, c.token.spec.Symbol, winner.spec.Line,
		))
	}

	if !conflicted {
		state.token = winner
	}
}

// generateIndicesForStates assigns a contiguous index to every main
// state, then continues the same numbering across every whitespace
// state, in canonical order.
func (g *LexerGenerator) generateIndicesForStates() {
	index := 0
	for _, s := range g.states {
		s.index = index
		index++
	}
	for _, s := range g.whitespaceStates {
		s.index = index
		index++
	}
}

func canonicalKey(positions PosSet) string {
	var b strings.Builder
	for i, p := range positions {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(p)))
	}
	return b.String()
}
