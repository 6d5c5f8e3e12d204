package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/advent2020/internal/app"
	"github.com/vk/advent2020/internal/dag"
	"github.com/vk/advent2020/internal/parse"
	"github.com/vk/advent2020/internal/registry"
	"github.com/vk/advent2020/internal/testutil"
	"github.com/vk/advent2020/modules/boarding"
)

// TestErrorHandling_PuzzleFailures validates that each failure class
// surfaces as an error and never as a partial report.
func TestErrorHandling_PuzzleFailures(t *testing.T) {
	testCases := []struct {
		name    string
		day     string
		input   string
		wantErr error
	}{
		{name: "malformed password line", day: "02", input: "1-3 a abcde", wantErr: parse.ErrMalformed},
		{name: "ragged grid", day: "03", input: "..#\n.#", wantErr: parse.ErrMalformed},
		{name: "unknown passport field", day: "04", input: "byr:1937 foo:bar", wantErr: parse.ErrMalformed},
		{name: "bad boarding pass", day: "05", input: "FBFBBFFRLX", wantErr: boarding.ErrInvalidPass},
		{name: "no seat gap", day: "05", input: "FFFFFFBLLL\nFFFFFFBLLR", wantErr: boarding.ErrSeatNotFound},
		{name: "cyclic bag rules", day: "07", input: "shiny gold bags contain 1 dark red bag.\ndark red bags contain 1 shiny gold bag.", wantErr: dag.ErrCycle},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			files := map[string]string{"input/day" + tc.day + ".txt": tc.input}

			result := testutil.RunIntegrationTest(t, files, &app.AppConfig{Day: tc.day})

			require.ErrorIs(t, result.Err, tc.wantErr)
			require.Empty(t, result.Output)
		})
	}
}

func TestErrorHandling_UnknownDay(t *testing.T) {
	t.Parallel()

	result := testutil.RunIntegrationTest(t, nil, &app.AppConfig{Day: "08"})

	require.ErrorIs(t, result.Err, registry.ErrUnknownPuzzle)
}

func TestErrorHandling_DuplicateRegistrationPanics(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	first := testutil.EchoModule("01", nil, nil)
	second := testutil.EchoModule("01", nil, nil)

	// --- Act ---
	result := testutil.RunIntegrationTest(t, nil, &app.AppConfig{Day: "01"}, first, second)

	// --- Assert ---
	require.Error(t, result.Err)
	require.Contains(t, result.Err.Error(), "application startup panicked")
	require.Contains(t, result.Err.Error(), "already registered")
}
