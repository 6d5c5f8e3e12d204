package customs

import (
	"math/bits"

	"github.com/vk/advent2020/internal/fsutil"
	"github.com/vk/advent2020/internal/parse"
)

// Answers is the set of questions one person answered "yes" to, one bit
// per letter a..z.
type Answers uint32

// Count returns the number of questions in the set.
func (a Answers) Count() int {
	return bits.OnesCount32(uint32(a))
}

// Group holds the answer sets of the people in one group.
type Group struct {
	Line   int
	People []Answers
}

// Anyone returns the questions at least one person in the group answered.
func (g Group) Anyone() Answers {
	var set Answers
	for _, p := range g.People {
		set |= p
	}
	return set
}

// Everyone returns the questions every person in the group answered.
func (g Group) Everyone() Answers {
	if len(g.People) == 0 {
		return 0
	}
	set := g.People[0]
	for _, p := range g.People[1:] {
		set &= p
	}
	return set
}

// ParseGroups reads blank-line separated groups with one person per line.
func ParseGroups(text string) ([]Group, error) {
	blocks := fsutil.SplitBlocks(text)
	groups := make([]Group, 0, len(blocks))
	for _, b := range blocks {
		g := Group{Line: b.Line, People: make([]Answers, 0, len(b.Lines))}
		for i, line := range b.Lines {
			a, col, ok := parseAnswers(line)
			if !ok {
				return nil, &parse.Error{
					Line:   b.Line + i,
					Column: col,
					Msg:    "expected lowercase letters a-z",
					Err:    parse.ErrMalformed,
				}
			}
			g.People = append(g.People, a)
		}
		groups = append(groups, g)
	}
	return groups, nil
}

func parseAnswers(line string) (Answers, int, bool) {
	var a Answers
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c < 'a' || c > 'z' {
			return 0, i + 1, false
		}
		a |= 1 << (c - 'a')
	}
	return a, 0, true
}

// SumAnyone totals the per-group union sizes.
func SumAnyone(groups []Group) int {
	total := 0
	for _, g := range groups {
		total += g.Anyone().Count()
	}
	return total
}

// SumEveryone totals the per-group intersection sizes.
func SumEveryone(groups []Group) int {
	total := 0
	for _, g := range groups {
		total += g.Everyone().Count()
	}
	return total
}
