// Package boarding decodes binary-partitioned boarding passes and finds the
// one empty seat.
package boarding

import (
	"context"
	"errors"

	"github.com/vk/advent2020/internal/ctxlog"
	"github.com/vk/advent2020/internal/registry"
	"github.com/vk/advent2020/internal/report"
)

// Day is the identifier this puzzle registers under.
const Day = "05"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(Day, &registry.RegisteredPuzzle{
		Title: "Binary Boarding",
		Fn:    Solve,
	})
}

// Solve reports the highest seat id and the missing seat id.
func Solve(ctx context.Context, input string, _ any) ([]report.Answer, error) {
	seats, err := ParseSeats(input)
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("Decoded boarding passes.", "count", len(seats))

	highest, ok := MaxID(seats)
	if !ok {
		return nil, errors.New("no boarding passes in input")
	}
	missing, err := FindMissingSeat(seats)
	if err != nil {
		return nil, err
	}

	return []report.Answer{
		{Part: 1, Label: "highest seat id", Value: highest},
		{Part: 2, Label: "missing seat id", Value: missing},
	}, nil
}
