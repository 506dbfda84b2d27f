package classifier

// Lines splits text on every line terminator: \n, \r\n, \r, \v, \f,
// the file/group/record separators, NEL, LS and PS. A trailing
// terminator does not produce an extra empty line.
func Lines(text string) []string {
	lines := []string{}
	start := 0
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		if !isLineBreak(runes[i]) {
			continue
		}
		lines = append(lines, string(runes[start:i]))
		if runes[i] == '\r' && i+1 < len(runes) && runes[i+1] == '\n' {
			i++
		}
		start = i + 1
	}
	if start < len(runes) {
		lines = append(lines, string(runes[start:]))
	}
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
