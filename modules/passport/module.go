// Package passport validates passport records, first for field presence and
// then for field content.
package passport

import (
	"context"

	"github.com/vk/advent2020/internal/ctxlog"
	"github.com/vk/advent2020/internal/registry"
	"github.com/vk/advent2020/internal/report"
)

// Day is the identifier this puzzle registers under.
const Day = "04"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(Day, &registry.RegisteredPuzzle{
		Title: "Passport Processing",
		Fn:    Solve,
	})
}

// Solve counts passports passing each validator.
func Solve(ctx context.Context, input string, _ any) ([]report.Answer, error) {
	passports, err := ParsePassports(input)
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("Parsed passports.", "count", len(passports))

	present, valid := 0, 0
	for _, p := range passports {
		if p.HasRequiredFields() {
			present++
		}
		if p.IsValid() {
			valid++
		}
	}

	return []report.Answer{
		{Part: 1, Label: "passports with required fields", Value: present},
		{Part: 2, Label: "valid passports", Value: valid},
	}, nil
}
