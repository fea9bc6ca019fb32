package lexergen

// AlphabetCeiling is one past the highest code point the generator will
// ever place in a transition range: Unicode's range is [0, 0x110000).
const AlphabetCeiling int32 = 0x110000

// InvalidBeginCharacter and InvalidEndCharacter are sentinel values
// outside the valid alphabet that goto_ rejects, so a caller that
// accidentally threads an uninitialized range through to goto_ gets a
// panic instead of a silently-empty transition.
const (
	InvalidBeginCharacter int32 = -1
	InvalidEndCharacter   int32 = -2
)

func validAlphabetChar(c int32) bool {
	return c != InvalidBeginCharacter && c != InvalidEndCharacter && c >= 0 && c <= AlphabetCeiling
}

// posixClass returns the ranges a POSIX bracket-expression class name
// (the "alpha" in "[:alpha:]") expands to, restricted to ASCII since
// spec.md excludes Unicode-class support beyond raw code-point ranges.
func posixClass(name string) ([][2]int32, bool) {
	switch name {
	case "alnum":
		return [][2]int32{{'0', '9' + 1}, {'A', 'Z' + 1}, {'a', 'z' + 1}}, true
	case "alpha":
		return [][2]int32{{'A', 'Z' + 1}, {'a', 'z' + 1}}, true
	case "blank":
		return [][2]int32{{' ', ' ' + 1}, {'\t', '\t' + 1}}, true
	case "cntrl":
		return [][2]int32{{0x00, 0x1F + 1}, {0x7F, 0x7F + 1}}, true
	case "digit":
		return [][2]int32{{'0', '9' + 1}}, true
	case "graph":
		return [][2]int32{{0x21, 0x7E + 1}}, true
	case "lower":
		return [][2]int32{{'a', 'z' + 1}}, true
	case "print":
		return [][2]int32{{0x20, 0x7E + 1}}, true
	case "punct":
		return [][2]int32{{'!', '/' + 1}, {':', '@' + 1}, {'[', '`' + 1}, {'{', '~' + 1}}, true
	case "space":
		return [][2]int32{{'\t', '\t' + 1}, {'\n', '\n' + 1}, {'\v', '\v' + 1}, {'\f', '\f' + 1}, {'\r', '\r' + 1}, {' ', ' ' + 1}}, true
	case "upper":
		return [][2]int32{{'A', 'Z' + 1}}, true
	case "xdigit":
		return [][2]int32{{'0', '9' + 1}, {'A', 'F' + 1}, {'a', 'f' + 1}}, true
	case "word":
		return [][2]int32{{'0', '9' + 1}, {'A', 'Z' + 1}, {'_', '_' + 1}, {'a', 'z' + 1}}, true
	default:
		return nil, false
	}
}

// shorthandClass returns the ranges a bare \w, \d or \s escape (and
// their negations \W, \D, \S) expands to.
func shorthandClass(letter rune) ([][2]int32, bool) {
	switch letter {
	case 'w':
		r, _ := posixClass("word")
		return r, true
	case 'd':
		r, _ := posixClass("digit")
		return r, true
	case 's':
		r, _ := posixClass("space")
		return r, true
	case 'W':
		r, _ := posixClass("word")
		return complementRanges(r), true
	case 'D':
		r, _ := posixClass("digit")
		return complementRanges(r), true
	case 'S':
		r, _ := posixClass("space")
		return complementRanges(r), true
	default:
		return nil, false
	}
}

// complementRanges returns the complement of ranges within
// [0, AlphabetCeiling), merging and sorting its input first.
func complementRanges(ranges [][2]int32) [][2]int32 {
	merged := mergeRanges(ranges)
	var out [][2]int32
	cursor := int32(0)
	for _, r := range merged {
		if cursor < r[0] {
			out = append(out, [2]int32{cursor, r[0]})
		}
		if r[1] > cursor {
			cursor = r[1]
		}
	}
	if cursor < AlphabetCeiling {
		out = append(out, [2]int32{cursor, AlphabetCeiling})
	}
	return out
}

// mergeRanges sorts ranges by lo and merges any that touch or overlap.
func mergeRanges(ranges [][2]int32) [][2]int32 {
	if len(ranges) == 0 {
		return nil
	}
	sorted := append([][2]int32(nil), ranges...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1][0] > sorted[j][0]; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	out := [][2]int32{sorted[0]}
	for _, r := range sorted[1:] {
		last := &out[len(out)-1]
		if r[0] <= last[1] {
			if r[1] > last[1] {
				last[1] = r[1]
			}
		} else {
			out = append(out, r)
		}
	}
	return out
}
