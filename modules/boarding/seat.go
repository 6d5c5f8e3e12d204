package boarding

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vk/advent2020/internal/fsutil"
	"github.com/vk/advent2020/internal/parse"
)

const (
	passLength = 10
	rowChars   = 7
	numRows    = 128
	numCols    = 8
)

var (
	// ErrInvalidPass marks a directive string that cannot be decoded.
	ErrInvalidPass = errors.New("invalid boarding pass")
	// ErrSeatNotFound is returned when no single-seat gap exists.
	ErrSeatNotFound = errors.New("no missing seat found")
	// ErrAmbiguousSeat is returned when more than one single-seat gap exists.
	ErrAmbiguousSeat = errors.New("more than one missing seat")
)

// Seat is a decoded boarding pass.
type Seat struct {
	Row    int
	Column int
	ID     int
}

// Decode binary-partitions the 128 rows with the first seven characters
// (F lower half, B upper half) and the 8 columns with the last three
// (L lower half, R upper half).
func Decode(pass string) (Seat, error) {
	if len(pass) != passLength {
		return Seat{}, fmt.Errorf("%w %q: length %d, expected %d", ErrInvalidPass, pass, len(pass), passLength)
	}

	rowLo, rowHi, err := partition(pass[:rowChars], numRows, 'F', 'B')
	if err != nil {
		return Seat{}, fmt.Errorf("%w %q: %v", ErrInvalidPass, pass, err)
	}
	colLo, colHi, err := partition(pass[rowChars:], numCols, 'L', 'R')
	if err != nil {
		return Seat{}, fmt.Errorf("%w %q: %v", ErrInvalidPass, pass, err)
	}
	if rowHi-rowLo != 1 || colHi-colLo != 1 {
		return Seat{}, fmt.Errorf("%w %q: ranges did not collapse to a single seat", ErrInvalidPass, pass)
	}

	return Seat{Row: rowLo, Column: colLo, ID: rowLo*numCols + colLo}, nil
}

// partition narrows [0, size) once per directive and returns the final
// half-open range.
func partition(directives string, size int, lower, upper byte) (lo, hi int, err error) {
	lo, hi = 0, size
	for i := 0; i < len(directives); i++ {
		half := (hi - lo) / 2
		switch directives[i] {
		case lower:
			hi -= half
		case upper:
			lo += half
		default:
			return 0, 0, fmt.Errorf("unexpected character %q, expected %q or %q", directives[i], lower, upper)
		}
	}
	return lo, hi, nil
}

// ParseSeats decodes one boarding pass per line.
func ParseSeats(text string) ([]Seat, error) {
	lines := fsutil.SplitLines(text)
	seats := make([]Seat, 0, len(lines))
	for i, line := range lines {
		s, err := Decode(line)
		if err != nil {
			return nil, &parse.Error{Line: i + 1, Msg: "cannot decode boarding pass", Err: err}
		}
		seats = append(seats, s)
	}
	return seats, nil
}

// MaxID returns the highest seat id. ok is false for no seats.
func MaxID(seats []Seat) (highest int, ok bool) {
	for i, s := range seats {
		if i == 0 || s.ID > highest {
			highest = s.ID
		}
	}
	return highest, len(seats) > 0
}

// FindMissingSeat returns the only id absent from the list whose two
// neighbours are both present.
func FindMissingSeat(seats []Seat) (int, error) {
	ids := make([]int, len(seats))
	for i, s := range seats {
		ids[i] = s.ID
	}
	sort.Ints(ids)

	var gaps []int
	for i := 1; i < len(ids); i++ {
		if ids[i]-ids[i-1] == 2 {
			gaps = append(gaps, ids[i-1]+1)
		}
	}

	switch len(gaps) {
	case 0:
		return 0, ErrSeatNotFound
	case 1:
		return gaps[0], nil
	default:
		return 0, fmt.Errorf("%w: candidates %v", ErrAmbiguousSeat, gaps)
	}
}
