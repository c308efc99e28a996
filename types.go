// Package kindaxml implements a tolerant tag-annotation parser for XML-ish
// markup emitted by language models. See Parse for the entry point.
package kindaxml

// AttrValue is an attribute's value: either the boolean true (a value-less
// attribute like <todo urgent>) or a string. An empty string is distinct
// from true.
type AttrValue struct {
	boolTrue bool
	str      string
	isStr    bool
}

// BoolAttr returns the value-less (boolean true) attribute value.
func BoolAttr() AttrValue {
	return AttrValue{boolTrue: true}
}

// StrAttr returns a string attribute value, including the empty string.
func StrAttr(s string) AttrValue {
	return AttrValue{str: s, isStr: true}
}

// IsBool reports whether this value is the value-less boolean form.
func (v AttrValue) IsBool() bool {
	return !v.isStr
}

// String returns the string form of the value. For the boolean form it
// returns "true".
func (v AttrValue) String() string {
	if v.isStr {
		return v.str
	}
	return "true"
}

// Annotation is a (tag, attrs) label attached to a range of emitted text.
type Annotation struct {
	Tag   string
	Attrs map[string]AttrValue
}

// Segment is a contiguous, non-empty run of emitted text sharing an
// identical annotation set. Annotation order reflects binding order.
type Segment struct {
	Text        string
	Annotations []Annotation
}

// Marker is a zero-width annotation at a byte position in the emitted text.
type Marker struct {
	Pos        int
	Annotation Annotation
}

// ParseResult is the output of Parse: the concatenated plain text, the
// segment list partitioning it, and the self-closing-tag markers.
//
// Invariants:
//   - Text == concatenation of every Segments[i].Text.
//   - 0 <= m.Pos <= len(Text) for every marker m.
//   - No segment has an empty Text.
type ParseResult struct {
	Text     string
	Segments []Segment
	Markers  []Marker
}
