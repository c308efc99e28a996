package kindaxml

// parseAttrs scans the byte range starting at pos (immediately after a tag
// name) for attribute name=value pairs, stopping at the tag's terminating
// '>' or '/>'. It implements bounded quote recovery: a quoted value whose
// closing quote is never found before an unescaped '>' is implicitly closed
// at that '>', which then also terminates the tag itself.
//
// It returns ok=false only when no terminating '>' or '/>' is found before
// the end of input, meaning the caller should treat the whole thing as not
// a tag.
func parseAttrs(input string, pos int) (attrs map[string]AttrValue, tagEnd int, selfClosing bool, ok bool) {
	attrs = make(map[string]AttrValue)
	n := len(input)

	for pos < n {
		for pos < n && isSpaceByte(input[pos]) {
			pos++
		}
		if pos >= n {
			return attrs, pos, false, false
		}

		if input[pos] == '>' {
			return attrs, pos + 1, false, true
		}
		if input[pos] == '/' {
			if pos+1 < n && input[pos+1] == '>' {
				return attrs, pos + 2, true, true
			}
			// Garbage byte inside the tag body; skip and retry.
			pos++
			continue
		}

		if isAttrNameStart(input[pos]) {
			nameStart := pos
			pos++
			for pos < n && isNameCont(input[pos]) {
				pos++
			}
			name := input[nameStart:pos]

			for pos < n && isSpaceByte(input[pos]) {
				pos++
			}

			if pos < n && input[pos] == '=' {
				pos++
				for pos < n && isSpaceByte(input[pos]) {
					pos++
				}

				if pos < n && (input[pos] == '\'' || input[pos] == '"') {
					quote := input[pos]
					pos++
					valStart := pos
					closed := false
					for pos < n {
						c := input[pos]
						if c == quote {
							closed = true
							break
						}
						if c == '>' {
							break
						}
						pos++
					}
					if closed {
						attrs[name] = StrAttr(input[valStart:pos])
						pos++ // skip the closing quote
						continue
					}
					if pos < n && input[pos] == '>' {
						valEnd := pos
						selfClose := false
						if valEnd > valStart && input[valEnd-1] == '/' {
							valEnd--
							selfClose = true
						}
						attrs[name] = StrAttr(input[valStart:valEnd])
						return attrs, pos + 1, selfClose, true
					}
					attrs[name] = StrAttr(input[valStart:pos])
					return attrs, pos, false, false
				}

				valStart := pos
				for pos < n {
					c := input[pos]
					if isSpaceByte(c) || c == '>' {
						break
					}
					if c == '/' && pos+1 < n && input[pos+1] == '>' {
						break
					}
					pos++
				}
				attrs[name] = StrAttr(input[valStart:pos])
				continue
			}

			attrs[name] = BoolAttr()
			continue
		}

		// Pure garbage: not a valid attribute-name start. Skip one byte.
		pos++
	}

	return attrs, pos, false, false
}

func isAttrNameStart(c byte) bool {
	return isNameStart(c) || c == '_' || c == ':'
}
