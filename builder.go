package kindaxml

import "strings"

// spanRecord is a pending annotation over a byte range of the emit buffer,
// materialized into segments by finish's sweep.
type spanRecord struct {
	start int
	end   int
	ann   Annotation
}

// outputBuilder accumulates the emitted plain-text buffer and the set of
// annotated ranges over it. Spans are recorded rather than applied eagerly;
// finish sweeps the buffer once, splitting at every span boundary. This is
// the (b) alternative from spec.md §9's design notes: simpler than
// eagerly re-splitting a live segment list on every annotate_range call, and
// equivalent because span order never needs to affect the final output.
type outputBuilder struct {
	text  strings.Builder
	spans []spanRecord
	marks []Marker
}

func newOutputBuilder() *outputBuilder {
	return &outputBuilder{}
}

// emitText appends s to the plain-text buffer under no annotation context;
// annotations are attached retroactively via annotateRange.
func (b *outputBuilder) emitText(s string) {
	b.text.WriteString(s)
}

// len returns the current length of the emit buffer in bytes.
func (b *outputBuilder) len() int {
	return b.text.Len()
}

// annotateRange retroactively attaches ann to the byte range [start, end) of
// the emit buffer. A zero-length range is a no-op: producers never emit
// empty segments.
func (b *outputBuilder) annotateRange(start, end int, ann Annotation) {
	if start >= end {
		return
	}
	b.spans = append(b.spans, spanRecord{start: start, end: end, ann: ann})
}

// emitMarker records a zero-width marker at pos.
func (b *outputBuilder) emitMarker(pos int, ann Annotation) {
	b.marks = append(b.marks, Marker{Pos: pos, Annotation: ann})
}

// finish sweeps the recorded spans against the emit buffer, builds the final
// segment list (dropping zero-length segments), and returns the ParseResult.
func (b *outputBuilder) finish() ParseResult {
	text := b.text.String()
	if text == "" {
		return ParseResult{Text: "", Segments: nil, Markers: b.marks}
	}

	bounds := make([]int, 0, len(b.spans)*2+2)
	bounds = append(bounds, 0, len(text))
	for _, s := range b.spans {
		bounds = append(bounds, s.start, s.end)
	}
	bounds = sortUniqueInts(bounds)

	segments := make([]Segment, 0, len(bounds))
	for i := 0; i+1 < len(bounds); i++ {
		start, end := bounds[i], bounds[i+1]
		if start >= end {
			continue
		}
		var anns []Annotation
		for _, s := range b.spans {
			if s.start <= start && s.end >= end {
				anns = append(anns, s.ann)
			}
		}
		segments = append(segments, Segment{Text: text[start:end], Annotations: anns})
	}

	return ParseResult{Text: text, Segments: segments, Markers: b.marks}
}

func sortUniqueInts(vals []int) []int {
	// Simple insertion sort is fine here: bounds lists are small relative to
	// document size (two entries per span).
	for i := 1; i < len(vals); i++ {
		v := vals[i]
		j := i - 1
		for j >= 0 && vals[j] > v {
			vals[j+1] = vals[j]
			j--
		}
		vals[j+1] = v
	}
	out := vals[:0:0]
	for i, v := range vals {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
