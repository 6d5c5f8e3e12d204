package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertAnswer checks the text report within a HarnessResult for the given
// part's value. It ignores the label so tests survive wording changes.
func AssertAnswer(t *testing.T, result *HarnessResult, part int, value any) {
	t.Helper()

	prefix := fmt.Sprintf("  [Part %d] ", part)
	for _, line := range strings.Split(result.Output, "\n") {
		if !strings.HasPrefix(line, prefix) {
			continue
		}
		idx := strings.LastIndex(line, ": ")
		require.True(t, idx >= 0, "malformed report line %q", line)
		require.Equal(t, fmt.Sprint(value), line[idx+2:], "unexpected answer for part %d", part)
		return
	}
	require.Failf(t, "answer not found", "no line for part %d in report:\n%s", part, result.Output)
}

// AssertPuzzleRan confirms through the logs that the given day was solved.
func AssertPuzzleRan(t *testing.T, result *HarnessResult, day string) {
	t.Helper()

	require.True(t,
		strings.Contains(result.LogOutput, "day="+day) && strings.Contains(result.LogOutput, "Puzzle solved."),
		"expected log output for puzzle %s was not found in logs", day,
	)
}
