package expense

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vk/advent2020/internal/fsutil"
	"github.com/vk/advent2020/internal/parse"
)

// ErrInvalidArity is returned when fewer than two entries are requested.
var ErrInvalidArity = errors.New("arity must be at least 2")

// Match is the first combination of entries that hits the target.
type Match struct {
	Indices []int
	Values  []int
	Product int
}

// ParseEntries parses one integer per line.
func ParseEntries(text string) ([]int, error) {
	lines := fsutil.SplitLines(text)
	entries := make([]int, 0, len(lines))
	for i, line := range lines {
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return nil, parse.Wrap(i+1, err, "invalid entry %q", line)
		}
		entries = append(entries, n)
	}
	return entries, nil
}

// FindTuple searches for k entries at distinct indices whose values sum to
// target. Index combinations are visited in lexicographic order and the
// first hit wins. ok is false when no combination matches.
func FindTuple(values []int, target, k int) (m Match, ok bool, err error) {
	if k < 2 {
		return Match{}, false, fmt.Errorf("%w, got %d", ErrInvalidArity, k)
	}
	n := len(values)
	if k > n {
		return Match{}, false, nil
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		sum := 0
		for _, i := range idx {
			sum += values[i]
		}
		if sum == target {
			return newMatch(values, idx), true, nil
		}

		// Advance the odometer: find the rightmost index that can still move.
		pos := k - 1
		for pos >= 0 && idx[pos] == n-k+pos {
			pos--
		}
		if pos < 0 {
			return Match{}, false, nil
		}
		idx[pos]++
		for j := pos + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

func newMatch(values, idx []int) Match {
	m := Match{
		Indices: append([]int(nil), idx...),
		Values:  make([]int, len(idx)),
		Product: 1,
	}
	for j, i := range idx {
		m.Values[j] = values[i]
		m.Product *= values[i]
	}
	return m
}
