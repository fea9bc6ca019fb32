package lexergen

// RegexParser parses a list of token specifications, splices every
// resulting regex tree under a shared Alt root with distinct End
// markers, and computes nullable/firstpos/lastpos/followpos on the
// combined tree. It is the direct counterpart of the original
// RegexParser: it retrieves actions from and reports errors to the
// LexerGenerator that owns it, but otherwise owns the entire tree and
// leaf arena it builds.
type RegexParser struct {
	sink    ErrorSink
	actions *actionRegistry

	root   *regexNode
	leaves []*regexNode
	errors int
}

// newRegexParser parses tokens into a combined, attributed syntax tree.
// Errors are reported through sink as they are found; parsing continues
// best-effort across the remaining tokens so a single malformed spec
// does not hide problems in the others in the same run.
func newRegexParser(tokens []TokenSpec, sink ErrorSink, actions *actionRegistry) *RegexParser {
	sink = normalizeSink(sink)
	p := &RegexParser{sink: sink, actions: actions}

	var branches []*regexNode
	for i := range tokens {
		token := tokens[i]
		action := actions.add(token.Action)
		ct := &compiledToken{spec: token, action: action}

		body := parseOneRegex(token.Regex, token.Line, sink, &p.errors, p.newLeaf)
		if body == nil {
			continue
		}
		end := p.newLeaf(kEnd, 0, 0)
		end.token = ct
		branches = append(branches, &regexNode{kind: kConcat, left: body, right: end, pos: -1})
	}

	if len(branches) == 0 {
		return p
	}

	root := branches[0]
	for _, b := range branches[1:] {
		root = &regexNode{kind: kAlt, left: root, right: b, pos: -1}
	}
	computeAttributes(root, p.leaves)
	p.root = root
	return p
}

func (p *RegexParser) newLeaf(kind nodeKind, lo, hi int32) *regexNode {
	n := &regexNode{kind: kind, lo: lo, hi: hi, pos: Position(len(p.leaves))}
	p.leaves = append(p.leaves, n)
	return n
}

// empty reports whether parsing produced no usable tree at all, either
// because the input token list was empty or because every token failed
// to parse.
func (p *RegexParser) empty() bool { return p.root == nil }

// errorCount is the number of errors reported while parsing.
func (p *RegexParser) errorCount() int { return p.errors }

func (p *RegexParser) node() *regexNode { return p.root }
