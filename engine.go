package kindaxml

import "strings"

// openTag tracks a recognized start tag awaiting closure.
type openTag struct {
	name          string
	attrs         map[string]AttrValue
	emitStartByte int
	strategy      Strategy

	// forward_until_newline bookkeeping: the target input byte offset is
	// computed at open time; the corresponding emit-length prefix is
	// resolved lazily as the main loop advances past that input position.
	newlineTarget   int
	newlineEmitEnd  int
	newlineResolved bool
}

func isTrimTrailingChar(c byte) bool {
	switch c {
	case '.', ',', ';', ':', '!', '?', ')', ']', '}', '"', '\'', ' ', '\t':
		return true
	}
	return false
}

// trimSpan trims leading whitespace and trailing ASCII punctuation/whitespace
// from text[l:r], per the retro_line trim rule.
func trimSpan(text string, l, r int) (int, int) {
	for l < r && isSpaceByte(text[l]) {
		l++
	}
	for r > l && isTrimTrailingChar(text[r-1]) {
		r--
	}
	return l, r
}

// closeByStrategy annotates ot's span according to its resolved strategy and
// pops nothing itself; the caller owns stack bookkeeping.
func closeByStrategy(ot *openTag, ob *outputBuilder, cfg *Config) {
	ann := Annotation{Tag: ot.name, Attrs: ot.attrs}

	switch ot.strategy {
	case StrategyRetroLine:
		text := ob.text.String()
		r := ot.emitStartByte
		l := 0
		for k := r - 1; k >= 0; k-- {
			if text[k] == '\n' {
				l = k + 1
				break
			}
		}
		if cfg.trimPunctuation {
			l, r = trimSpan(text, l, r)
		}
		ob.annotateRange(l, r, ann)

	case StrategyForwardUntilTag:
		ob.annotateRange(ot.emitStartByte, ob.len(), ann)

	case StrategyForwardUntilNewline:
		end := ot.newlineEmitEnd
		if !ot.newlineResolved {
			end = ob.len()
		}
		ob.annotateRange(ot.emitStartByte, end, ann)

	case StrategyForwardNextToken:
		text := ob.text.String()
		n := len(text)
		p := ot.emitStartByte
		for p < n && isSpaceByte(text[p]) {
			p++
		}
		tokStart := p
		for p < n && !isSpaceByte(text[p]) {
			p++
		}
		if tokStart == p {
			return
		}
		ob.annotateRange(tokStart, p, ann)

	case StrategyNoop:
	}
}

// dispatchUnknown handles a tag whose name is not in the recognized set. It
// returns the input offset the main loop should resume scanning from.
func dispatchUnknown(cfg *Config, ob *outputBuilder, tag rawTag, advance func(inputStart, inputEnd, emitStart int, linear bool)) int {
	switch cfg.unknownMode {
	case UnknownPassthrough:
		emitStart := ob.len()
		ob.emitText(tag.Raw)
		advance(tag.Start, tag.End, emitStart, true)
		return tag.End
	case UnknownTreatAsText:
		emitStart := ob.len()
		ob.emitText(tag.Raw[:1])
		advance(tag.Start, tag.Start+1, emitStart, true)
		return tag.Start + 1
	default: // UnknownStrip
		advance(tag.Start, tag.End, ob.len(), false)
		return tag.End
	}
}

// runEngine walks input, driving the open-tag stack and dispatching to the
// scanner, attribute parser, and output builder, per the recovery rules.
func runEngine(input string, cfg *Config) ParseResult {
	ob := newOutputBuilder()

	normName := func(s string) string {
		if cfg.caseSensitiveTags {
			return s
		}
		return strings.ToLower(s)
	}

	recognized := make(map[string]struct{}, len(cfg.recognizedTags))
	for t := range cfg.recognizedTags {
		recognized[normName(t)] = struct{}{}
	}
	perTagRecovery := make(map[string]Strategy, len(cfg.perTagRecovery))
	for t, s := range cfg.perTagRecovery {
		perTagRecovery[normName(t)] = s
	}
	resolveStrategy := func(name string) Strategy {
		if s, ok := perTagRecovery[name]; ok {
			return s
		}
		return cfg.defaultRecovery
	}

	var stack []*openTag

	advanceNewlineTargets := func(inputStart, inputEnd, emitStart int, linear bool) {
		for _, ot := range stack {
			if ot.strategy != StrategyForwardUntilNewline || ot.newlineResolved {
				continue
			}
			switch {
			case ot.newlineTarget < inputStart:
				ot.newlineEmitEnd = emitStart
				ot.newlineResolved = true
			case linear && ot.newlineTarget < inputEnd:
				ot.newlineEmitEnd = emitStart + (ot.newlineTarget - inputStart)
				ot.newlineResolved = true
			case !linear && ot.newlineTarget < inputEnd:
				ot.newlineEmitEnd = emitStart
				ot.newlineResolved = true
			}
		}
	}

	closeTop := func() {
		k := len(stack) - 1
		ot := stack[k]
		stack = stack[:k]
		closeByStrategy(ot, ob, cfg)
	}

	n := len(input)
	i := 0

	for i < n {
		j := indexFrom(input, i, "<")
		if j < 0 {
			j = n
		}
		if j > i {
			emitStart := ob.len()
			ob.emitText(input[i:j])
			advanceNewlineTargets(i, j, emitStart, true)
		}
		i = j
		if i >= n {
			break
		}

		tag, next, ok := tryScan(input, i)
		if !ok {
			emitStart := ob.len()
			ob.emitText(input[i : i+1])
			advanceNewlineTargets(i, i+1, emitStart, true)
			i++
			continue
		}

		switch tag.Kind {
		case tagCData:
			openDelimLen := len(cdataOpen)
			contentStart := tag.Start + openDelimLen
			contentEnd := contentStart + len(tag.Text)
			preEmit := ob.len()
			advanceNewlineTargets(tag.Start, contentStart, preEmit, false)
			contentEmitStart := ob.len()
			ob.emitText(tag.Text)
			advanceNewlineTargets(contentStart, contentEnd, contentEmitStart, true)
			advanceNewlineTargets(contentEnd, tag.End, ob.len(), false)
			i = next

		case tagEnd:
			name := normName(tag.Name)
			if _, isRecognized := recognized[name]; isRecognized {
				if len(stack) > 0 && stack[len(stack)-1].name == name {
					k := len(stack) - 1
					ot := stack[k]
					stack = stack[:k]
					ann := Annotation{Tag: ot.name, Attrs: ot.attrs}
					ob.annotateRange(ot.emitStartByte, ob.len(), ann)
				} else {
					switch cfg.strayEndTagPolicy {
					case StrayPassthrough:
						emitStart := ob.len()
						ob.emitText(tag.Raw)
						advanceNewlineTargets(tag.Start, tag.End, emitStart, true)
					default: // StrayDrop
						advanceNewlineTargets(tag.Start, tag.End, ob.len(), false)
					}
				}
				i = next
			} else {
				i = dispatchUnknown(cfg, ob, tag, advanceNewlineTargets)
			}

		case tagSelfClose:
			name := normName(tag.Name)
			if _, isRecognized := recognized[name]; isRecognized {
				ann := Annotation{Tag: name, Attrs: tag.Attrs}
				ob.emitMarker(ob.len(), ann)
				advanceNewlineTargets(tag.Start, tag.End, ob.len(), false)
				i = next
			} else {
				i = dispatchUnknown(cfg, ob, tag, advanceNewlineTargets)
			}

		case tagStart:
			name := normName(tag.Name)
			if _, isRecognized := recognized[name]; isRecognized {
				if cfg.autocloseOnAnyTag {
					if len(stack) > 0 {
						closeTop()
					}
				} else if cfg.autocloseOnSameTag {
					if len(stack) > 0 && stack[len(stack)-1].name == name {
						closeTop()
					}
				}

				ot := &openTag{
					name:          name,
					attrs:         tag.Attrs,
					emitStartByte: ob.len(),
					strategy:      resolveStrategy(name),
				}
				if ot.strategy == StrategyForwardUntilNewline {
					target := indexFrom(input, tag.End, "\n")
					if target < 0 {
						target = n
					}
					ot.newlineTarget = target
				}
				stack = append(stack, ot)
				i = next
			} else {
				i = dispatchUnknown(cfg, ob, tag, advanceNewlineTargets)
			}
		}
	}

	for len(stack) > 0 {
		closeTop()
	}

	return ob.finish()
}
