package domain

import (
	"strings"

	m "gooze.dev/pkg/survivors/internal/model"
)

// lineEndings maps every line boundary (including form feed, vertical tab,
// the ASCII separators and the Unicode line and paragraph separators) to "\n".
var lineEndings = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
	"\v", "\n",
	"\f", "\n",
	"\x1c", "\n",
	"\x1d", "\n",
	"\x1e", "\n",
	"\u0085", "\n",
	"\u2028", "\n",
	"\u2029", "\n",
)

// ExtractSourceLine returns the trimmed text of the 1-based line in source, or
// model.NotAvailable when the line is out of range.
func ExtractSourceLine(source string, line int) string {
	if source == "" || line < 1 {
		return m.NotAvailable
	}

	lines := strings.Split(lineEndings.Replace(source), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	if line > len(lines) {
		return m.NotAvailable
	}

	return strings.TrimSpace(lines[line-1])
}
