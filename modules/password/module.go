// Package password checks password records against two policy
// interpretations.
package password

import (
	"context"

	"github.com/vk/advent2020/internal/ctxlog"
	"github.com/vk/advent2020/internal/registry"
	"github.com/vk/advent2020/internal/report"
)

// Day is the identifier this puzzle registers under.
const Day = "02"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(Day, &registry.RegisteredPuzzle{
		Title: "Password Philosophy",
		Fn:    Solve,
	})
}

// Solve counts the records valid under each policy.
func Solve(ctx context.Context, input string, _ any) ([]report.Answer, error) {
	records, err := ParseRecords(input)
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("Parsed password records.", "count", len(records))

	byCount, byPosition := 0, 0
	for _, r := range records {
		if r.ValidCount() {
			byCount++
		}
		if r.ValidPosition() {
			byPosition++
		}
	}

	return []report.Answer{
		{Part: 1, Label: "valid passwords (count policy)", Value: byCount},
		{Part: 2, Label: "valid passwords (position policy)", Value: byPosition},
	}, nil
}
