// Package customs aggregates customs declaration answers per group.
package customs

import (
	"context"

	"github.com/vk/advent2020/internal/ctxlog"
	"github.com/vk/advent2020/internal/registry"
	"github.com/vk/advent2020/internal/report"
)

// Day is the identifier this puzzle registers under.
const Day = "06"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(Day, &registry.RegisteredPuzzle{
		Title: "Custom Customs",
		Fn:    Solve,
	})
}

// Solve reports the union and intersection totals over all groups.
func Solve(ctx context.Context, input string, _ any) ([]report.Answer, error) {
	groups, err := ParseGroups(input)
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("Parsed answer groups.", "count", len(groups))

	return []report.Answer{
		{Part: 1, Label: "questions anyone answered", Value: SumAnyone(groups)},
		{Part: 2, Label: "questions everyone answered", Value: SumEveryone(groups)},
	}, nil
}
