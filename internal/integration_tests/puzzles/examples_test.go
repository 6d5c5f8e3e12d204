package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/advent2020/internal/app"
	"github.com/vk/advent2020/internal/testutil"
)

const (
	day01 = `
		1721
		979
		366
		299
		675
		1456
	`
	day02 = `
		1-3 a: abcde
		1-3 b: cdefg
		2-9 c: ccccccccc
	`
	day03 = `
		..##.......
		#...#...#..
		.#....#..#.
		..#.#...#.#
		.#...##..#.
		..#.##.....
		.#.#.#....#
		.#........#
		#.##...#...
		#...##....#
		.#..#...#.#
	`
	day04 = `
		ecl:gry pid:860033327 eyr:2020 hcl:#fffffd
		byr:1937 iyr:2017 cid:147 hgt:183cm

		iyr:2013 ecl:amb cid:350 eyr:2023 pid:028048884
		hcl:#cfa07d byr:1929

		hcl:#ae17e1 iyr:2013
		eyr:2024
		ecl:brn pid:760753108 byr:1931
		hgt:179cm

		hcl:#cfa07d eyr:2025 pid:166559648
		iyr:2011 ecl:brn hgt:59in
	`
	// Seat ids 8, 9, 11 and 12.
	day05 = `
		FFFFFFBLLL
		FFFFFFBLLR
		FFFFFFBLRR
		FFFFFFBRLL
	`
	day06 = `
		abc

		a
		b
		c

		ab
		ac

		a
		a
		a
		a

		b
	`
	day07 = `
		light red bags contain 1 bright white bag, 2 muted yellow bags.
		dark orange bags contain 3 bright white bags, 4 muted yellow bags.
		bright white bags contain 1 shiny gold bag.
		muted yellow bags contain 2 shiny gold bags, 9 faded blue bags.
		shiny gold bags contain 1 dark olive bag, 2 vibrant plum bags.
		dark olive bags contain 3 faded blue bags, 4 dotted black bags.
		vibrant plum bags contain 5 faded blue bags, 6 dotted black bags.
		faded blue bags contain no other bags.
		dotted black bags contain no other bags.
	`
)

// TestPuzzles_Examples runs every built-in puzzle end to end against the
// worked example from its puzzle text.
func TestPuzzles_Examples(t *testing.T) {
	testCases := []struct {
		day   string
		input string
		part1 any
		part2 any
	}{
		{"01", day01, 514579, 241861950},
		{"02", day02, 2, 1},
		{"03", day03, 7, 336},
		{"04", day04, 2, 2},
		{"05", day05, 12, 10},
		{"06", day06, 11, 6},
		{"07", day07, 4, 32},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run("day"+tc.day, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			files := map[string]string{
				"input/day" + tc.day + ".txt": tc.input,
			}

			// --- Act ---
			result := testutil.RunIntegrationTest(t, files, &app.AppConfig{Day: tc.day})

			// --- Assert ---
			require.NoError(t, result.Err)
			testutil.AssertPuzzleRan(t, result, tc.day)
			testutil.AssertAnswer(t, result, 1, tc.part1)
			testutil.AssertAnswer(t, result, 2, tc.part2)
		})
	}
}

// TestPuzzles_NoMatchIsNotAnError checks that a search without a solution
// is reported as an empty answer rather than a failure.
func TestPuzzles_NoMatchIsNotAnError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"input/day01.txt": "1\n2\n3\n",
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, &app.AppConfig{Day: "01"})

	// --- Assert ---
	require.NoError(t, result.Err)
	testutil.AssertAnswer(t, result, 1, "(none)")
	testutil.AssertAnswer(t, result, 2, "(none)")
}
