// Package kindaxml implements a tolerant tag-annotation parser for XML-ish
// markup emitted by language models: start tags, end tags, self-closing
// tags, and CDATA blocks. Missing end tags, missing closing quotes, stray
// closers, and unknown tags all recover deterministically rather than
// producing a parse error.
//
//	cfg := kindaxml.DefaultLLMFriendlyConfig()
//	result, err := kindaxml.Parse("Evidence suggests <cite id=\"1\">strongly</cite>.", cfg)
//	if err != nil {
//		// only a nil Config reaches this point; Parse itself never
//		// fails on input
//	}
//	for _, seg := range result.Segments {
//		fmt.Println(seg.Text, seg.Annotations)
//	}
package kindaxml

import "fmt"

// Parse walks text under the rules in cfg and returns the resulting flat
// segment/marker stream. Parse is a pure function of (text, cfg): it holds
// no state across calls and is safe to call concurrently from multiple
// goroutines provided none of them mutate cfg while any call is in flight.
//
// Parse never fails on malformed input — every byte sequence produces some
// ParseResult. The error return exists only for a nil Config.
func Parse(text string, cfg *Config) (ParseResult, error) {
	if cfg == nil {
		return ParseResult{}, fmt.Errorf("kindaxml: Parse called with nil Config")
	}
	return runEngine(text, cfg), nil
}
