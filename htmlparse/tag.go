package htmlparse

import "strings"

type rawAttr struct {
	name  string
	value string
}

// scanTag recognizes a start tag at the beginning of s (s[0] == '<') and
// returns its lowercased name, its attributes, whether it is
// self-closing, and the number of bytes consumed (including the closing
// '>'). ok is false if s does not begin with a well-formed start tag.
func scanTag(s string) (name string, attrs []rawAttr, selfClose bool, consumed int, ok bool) {
	if len(s) < 2 || s[0] != '<' {
		return
	}

	i := 1
	nameStart := i
	for i < len(s) && isNameByte(s[i]) {
		i++
	}
	if i == nameStart {
		return
	}
	name = strings.ToLower(s[nameStart:i])

	for i < len(s) {
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		if i >= len(s) {
			return
		}
		if s[i] == '/' && i+1 < len(s) && s[i+1] == '>' {
			selfClose = true
			i += 2
			consumed = i
			ok = true
			return
		}
		if s[i] == '>' {
			i++
			consumed = i
			ok = true
			return
		}

		attrNameStart := i
		for i < len(s) && isAttrNameByte(s[i]) {
			i++
		}
		if i == attrNameStart {
			// Unrecognizable byte inside the tag; bail out rather than
			// loop forever or misparse.
			return "", nil, false, 0, false
		}
		attrName := strings.ToLower(s[attrNameStart:i])

		for i < len(s) && isSpace(s[i]) {
			i++
		}

		if i < len(s) && s[i] == '=' {
			i++
			for i < len(s) && isSpace(s[i]) {
				i++
			}
			if i < len(s) && (s[i] == '"' || s[i] == '\'') {
				quote := s[i]
				i++
				valStart := i
				for i < len(s) && s[i] != quote {
					i++
				}
				if i >= len(s) {
					return "", nil, false, 0, false
				}
				attrs = append(attrs, rawAttr{attrName, s[valStart:i]})
				i++ // closing quote
			} else {
				valStart := i
				for i < len(s) && !isSpace(s[i]) && s[i] != '>' {
					i++
				}
				attrs = append(attrs, rawAttr{attrName, s[valStart:i]})
			}
		} else {
			attrs = append(attrs, rawAttr{attrName, ""})
		}
	}

	return "", nil, false, 0, false
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isNameByte(b byte) bool {
	return b == '-' || (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isAttrNameByte(b byte) bool {
	return isNameByte(b) || b == ':' || b == '_'
}
