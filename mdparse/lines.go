package mdparse

import "strings"

// splitLines splits raw input into logical lines, the unit the block pass
// scans (§4.4.2: "Input is split into logical lines").
func splitLines(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.ReplaceAll(input, "\r", "\n")
	return strings.Split(input, "\n")
}

func isBlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}

func leadingSpaces(line string) int {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	return n
}

// isHRLine reports whether line is a horizontal rule: three or more of
// the same rule char ('-', '*', '_'), optionally interleaved with
// spaces, and nothing else (§4.4.2 recognizer 3).
func isHRLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 3 {
		return false
	}
	var ruleChar byte
	count := 0
	for i := 0; i < len(trimmed); i++ {
		c := trimmed[i]
		if c == ' ' {
			continue
		}
		if c != '-' && c != '*' && c != '_' {
			return false
		}
		if ruleChar == 0 {
			ruleChar = c
		} else if c != ruleChar {
			return false
		}
		count++
	}
	return count >= 3
}

func isFenceLine(line string) (char byte, count int, lang string, ok bool) {
	trimmed := strings.TrimLeft(line, " ")
	if len(trimmed) < 3 {
		return 0, 0, "", false
	}
	c := trimmed[0]
	if c != '`' && c != '~' {
		return 0, 0, "", false
	}
	n := 0
	for n < len(trimmed) && trimmed[n] == c {
		n++
	}
	if n < 3 {
		return 0, 0, "", false
	}
	return c, n, strings.TrimSpace(trimmed[n:]), true
}
