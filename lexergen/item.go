package lexergen

// LexerItem is a DFA-construction item: a set of regex positions plus a
// lazily computed and cached set of positions reachable by following
// followpos from whichever of its own positions overlap a queried
// character range. Items are not compared with one another: a
// LexerState's identity is the union of its items' positions. Items
// never mutate their position set after construction.
type LexerItem struct {
	positions PosSet
	gotoCache map[rangeKey]PosSet
}

type rangeKey struct{ begin, end int32 }

func newLexerItem(positions PosSet) *LexerItem {
	return &LexerItem{positions: positions}
}

// contributingRanges yields the half-open character range of every
// non-End position in this item — the ranges a LexerState built from
// items including this one has outgoing transitions over before they
// are partitioned into the coarsest disjoint intervals.
func (it *LexerItem) contributingRanges(leaves []*regexNode) []distinctRange {
	var out []distinctRange
	for _, p := range it.positions {
		leaf := leaves[p]
		if leaf.isEnd() {
			continue
		}
		out = append(out, distinctRange{begin: leaf.lo, end: leaf.hi})
	}
	return out
}

// gotoPositions returns the union of followpos over every position in
// this item whose own character range overlaps [begin, end), excluding
// End positions, memoizing the result for the queried range.
func (it *LexerItem) gotoPositions(leaves []*regexNode, begin, end int32) PosSet {
	key := rangeKey{begin, end}
	if it.gotoCache != nil {
		if cached, ok := it.gotoCache[key]; ok {
			return cached
		}
	}

	var result PosSet
	for _, p := range it.positions {
		leaf := leaves[p]
		if leaf.isEnd() || !leaf.overlaps(begin, end) {
			continue
		}
		result = result.union(leaf.follow)
	}

	if it.gotoCache == nil {
		it.gotoCache = make(map[rangeKey]PosSet)
	}
	it.gotoCache[key] = result
	return result
}
