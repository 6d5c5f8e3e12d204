package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/vk/advent2020/internal/report"
)

// ErrUnknownPuzzle is returned by Lookup for an unregistered day.
var ErrUnknownPuzzle = errors.New("unknown puzzle")

// SolveFunc parses the puzzle input and computes its answers. params is the
// value returned by NewParams after the manifest has been decoded into it.
type SolveFunc func(ctx context.Context, input string, params any) ([]report.Answer, error)

// RegisteredPuzzle holds the Go parts of one puzzle.
type RegisteredPuzzle struct {
	// Title is used when the manifest does not provide one.
	Title string
	// NewParams returns a pointer to a params struct pre-filled with
	// defaults, or nil when the puzzle takes no parameters.
	NewParams func() any
	Fn        SolveFunc
}

// Module is the interface that all puzzle packages implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds all the registered puzzles for a single application instance.
type Registry struct {
	puzzles map[string]*RegisteredPuzzle
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		puzzles: make(map[string]*RegisteredPuzzle),
	}
}

// RegisterPuzzle registers the solver for a day. Registering the same day
// twice is a programming error and panics.
func (r *Registry) RegisterPuzzle(day string, p *RegisteredPuzzle) {
	if _, exists := r.puzzles[day]; exists {
		panic(fmt.Sprintf("puzzle for day '%s' already registered", day))
	}
	if p == nil || p.Fn == nil {
		panic(fmt.Sprintf("puzzle for day '%s' has no solve function", day))
	}
	slog.Debug("Registering puzzle.", "day", day, "title", p.Title)
	r.puzzles[day] = p
}

// Lookup returns the puzzle registered for day.
func (r *Registry) Lookup(day string) (*RegisteredPuzzle, error) {
	p, ok := r.puzzles[day]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPuzzle, day)
	}
	return p, nil
}

// Days returns all registered days in ascending order.
func (r *Registry) Days() []string {
	days := make([]string, 0, len(r.puzzles))
	for d := range r.puzzles {
		days = append(days, d)
	}
	sort.Strings(days)
	return days
}
