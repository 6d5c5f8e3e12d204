package password

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/vk/advent2020/internal/fsutil"
	"github.com/vk/advent2020/internal/parse"
)

// Record is one "lo-hi c: password" line.
type Record struct {
	RangeStart int
	RangeEnd   int
	Char       rune
	Password   string
}

// ParseRecords parses one record per line. Bounds must satisfy
// 1 <= lo <= hi.
func ParseRecords(text string) ([]Record, error) {
	lines := fsutil.SplitLines(text)
	records := make([]Record, 0, len(lines))
	for i, line := range lines {
		r, err := parseRecord(i+1, line)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

func parseRecord(lineNo int, line string) (Record, error) {
	policy, pw, ok := strings.Cut(line, ":")
	if !ok {
		return Record{}, parse.Errorf(lineNo, "missing ':' between policy and password")
	}
	rng, char, ok := strings.Cut(strings.TrimSpace(policy), " ")
	if !ok {
		return Record{}, parse.Errorf(lineNo, "missing rule character in policy %q", policy)
	}
	loStr, hiStr, ok := strings.Cut(rng, "-")
	if !ok {
		return Record{}, parse.Errorf(lineNo, "missing '-' in range %q", rng)
	}
	lo, err := strconv.Atoi(loStr)
	if err != nil {
		return Record{}, parse.Wrap(lineNo, err, "invalid range start %q", loStr)
	}
	hi, err := strconv.Atoi(hiStr)
	if err != nil {
		return Record{}, parse.Wrap(lineNo, err, "invalid range end %q", hiStr)
	}
	if lo < 1 || hi < lo {
		return Record{}, parse.Errorf(lineNo, "invalid range %d-%d", lo, hi)
	}
	char = strings.TrimSpace(char)
	if utf8.RuneCountInString(char) != 1 {
		return Record{}, parse.Errorf(lineNo, "rule must be a single character, got %q", char)
	}
	c, _ := utf8.DecodeRuneInString(char)

	return Record{
		RangeStart: lo,
		RangeEnd:   hi,
		Char:       c,
		Password:   strings.TrimSpace(pw),
	}, nil
}

// ValidCount reports whether the rule character occurs between RangeStart
// and RangeEnd times, inclusive.
func (r Record) ValidCount() bool {
	n := strings.Count(r.Password, string(r.Char))
	return n >= r.RangeStart && n <= r.RangeEnd
}

// ValidPosition reports whether exactly one of the 1-based positions
// RangeStart and RangeEnd holds the rule character. A position past the
// end of the password holds nothing.
func (r Record) ValidPosition() bool {
	runes := []rune(r.Password)
	at := func(pos int) bool {
		return pos <= len(runes) && runes[pos-1] == r.Char
	}
	return at(r.RangeStart) != at(r.RangeEnd)
}
