package kindaxml

// tagKind discriminates what try_scan recognized at a '<'.
type tagKind int

const (
	tagCData tagKind = iota
	tagEnd
	tagSelfClose
	tagStart
)

// rawTag is the scanner's structured view of one recognized tag or CDATA
// block: name, attributes, byte range [Start, End) in the input, and a kind
// discriminant. For tagCData, Text holds the body verbatim and Name is unused.
type rawTag struct {
	Kind  tagKind
	Name  string
	Attrs map[string]AttrValue
	Text  string
	Raw   string
	Start int
	End   int
}

const cdataOpen = "<![CDATA["
const cdataClose = "]]>"

// tryScan attempts, at input[i] == '<', to recognize a CDATA block, end tag,
// self-closing tag, or start tag, in that priority order. It returns
// ok=false when input[i] does not begin any of those forms, in which case
// the caller treats '<' as a single literal byte of text.
func tryScan(input string, i int) (rawTag, int, bool) {
	n := len(input)
	if i >= n || input[i] != '<' {
		return rawTag{}, i, false
	}

	// 1. CDATA
	if hasPrefixAt(input, i, cdataOpen) {
		bodyStart := i + len(cdataOpen)
		if rel := indexFrom(input, bodyStart, cdataClose); rel >= 0 {
			end := rel + len(cdataClose)
			return rawTag{
				Kind:  tagCData,
				Text:  input[bodyStart:rel],
				Raw:   input[i:end],
				Start: i,
				End:   end,
			}, end, true
		}
		return rawTag{
			Kind:  tagCData,
			Text:  input[bodyStart:],
			Raw:   input[i:],
			Start: i,
			End:   n,
		}, n, true
	}

	// 2. End tag
	if hasPrefixAt(input, i, "</") {
		p := i + 2
		nameStart := p
		for p < n && isNameCont(input[p]) {
			p++
		}
		if p == nameStart || !isNameStart(input[nameStart]) {
			return rawTag{}, i, false
		}
		name := input[nameStart:p]
		for p < n && isSpaceByte(input[p]) {
			p++
		}
		if p >= n || input[p] != '>' {
			return rawTag{}, i, false
		}
		end := p + 1
		return rawTag{
			Kind:  tagEnd,
			Name:  name,
			Attrs: map[string]AttrValue{},
			Raw:   input[i:end],
			Start: i,
			End:   end,
		}, end, true
	}

	// 3. Start or self-closing
	if i+1 < n && isNameStart(input[i+1]) {
		p := i + 1
		nameStart := p
		for p < n && isNameCont(input[p]) {
			p++
		}
		name := input[nameStart:p]

		attrs, tagEnd, selfClosing, ok := parseAttrs(input, p)
		if !ok {
			return rawTag{}, i, false
		}

		kind := tagStart
		if selfClosing {
			kind = tagSelfClose
		}
		return rawTag{
			Kind:  kind,
			Name:  name,
			Attrs: attrs,
			Raw:   input[i:tagEnd],
			Start: i,
			End:   tagEnd,
		}, tagEnd, true
	}

	return rawTag{}, i, false
}

func hasPrefixAt(s string, i int, prefix string) bool {
	if i+len(prefix) > len(s) {
		return false
	}
	return s[i:i+len(prefix)] == prefix
}

// indexFrom finds the first occurrence of sub in s at or after from,
// returning -1 if absent.
func indexFrom(s string, from int, sub string) int {
	if from > len(s) {
		return -1
	}
	rel := indexString(s[from:], sub)
	if rel < 0 {
		return -1
	}
	return from + rel
}

func indexString(s, sub string) int {
	n, m := len(s), len(sub)
	if m == 0 {
		return 0
	}
	for i := 0; i+m <= n; i++ {
		if s[i:i+m] == sub {
			return i
		}
	}
	return -1
}

func isNameStart(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isNameCont(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9') || c == '_' || c == '-' || c == ':' || c == '.'
}

func isSpaceByte(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}
