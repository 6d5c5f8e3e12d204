package testutil

import "strings"

// unindent removes common leading whitespace from a multi-line string,
// allowing for readable, indented HCL and input snippets in Go tests.
func unindent(s string) string {
	lines := strings.Split(s, "\n")

	// Remove a leading empty line that is common with multi-line literals.
	if len(lines) > 1 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}

	// Find the minimum indentation of non-empty lines.
	minIndent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if minIndent == -1 || indent < minIndent {
			minIndent = indent
		}
	}

	if minIndent <= 0 {
		return strings.Join(lines, "\n")
	}

	// Strip the common indentation from each line.
	for i, line := range lines {
		if len(line) >= minIndent {
			lines[i] = line[minIndent:]
		} else {
			lines[i] = strings.TrimSpace(line)
		}
	}
	return strings.Join(lines, "\n")
}
