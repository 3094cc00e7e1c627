package mdast

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lowerCaser = cases.Lower(language.Und)

// uriUnreservedByte mirrors the set of bytes JavaScript's encodeURI
// leaves untouched, per §3.2's "encodeURI(plain_text)" definition.
func uriUnreservedByte(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	}
	switch b {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')',
		';', '/', '?', ':', '@', '&', '=', '+', '$', ',', '#':
		return true
	}
	return false
}

const hexDigits = "0123456789ABCDEF"

// encodeURI percent-encodes every byte of s not in the encodeURI
// unreserved set, operating on s's UTF-8 bytes.
func encodeURI(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if uriUnreservedByte(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&0xf])
	}
	return b.String()
}

// replaceFirst mirrors JS's String.prototype.replace(str, str): only the
// first occurrence of old is replaced, everything after is untouched.
func replaceFirst(s, old, new string) string {
	idx := strings.Index(s, old)
	if idx < 0 {
		return s
	}
	return s[:idx] + new + s[idx+len(old):]
}

// GetID computes a heading's stable anchor id from its plain text:
// encodeURI(plainText).replace("%20", "-").toLowerCase() (§3.2). The
// source's replace is JS's String.prototype.replace with a string
// argument, which only touches the first match — headings with more
// than one space keep their remaining "%20" sequences literally, so this
// replaces only the first occurrence rather than every one. Calling it
// twice on the same text yields the same string; duplicate ids across
// headings are permitted and are the renderer's or caller's concern.
func GetID(plainText string) string {
	encoded := encodeURI(plainText)
	encoded = replaceFirst(encoded, "%20", "-")
	return lowerCaser.String(encoded)
}
