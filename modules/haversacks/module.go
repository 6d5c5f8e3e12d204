// Package haversacks answers containment questions about nested luggage
// rules.
package haversacks

import (
	"context"
	"fmt"

	"github.com/vk/advent2020/internal/ctxlog"
	"github.com/vk/advent2020/internal/registry"
	"github.com/vk/advent2020/internal/report"
)

// Day is the identifier this puzzle registers under.
const Day = "07"

// Params are the manifest tunables for the puzzle.
type Params struct {
	Bag string `hcl:"bag,optional"`
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(Day, &registry.RegisteredPuzzle{
		Title: "Handy Haversacks",
		NewParams: func() any {
			return &Params{Bag: "shiny gold"}
		},
		Fn: Solve,
	})
}

// Solve reports how many bag types can hold the configured bag and how many
// bags it must hold.
func Solve(ctx context.Context, input string, params any) ([]report.Answer, error) {
	p := params.(*Params)

	rules, err := ParseRules(input)
	if err != nil {
		return nil, err
	}
	g, err := BuildGraph(rules)
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("Built bag graph.", "rules", len(rules), "bags", g.Len())

	outer, err := Containers(g, p.Bag)
	if err != nil {
		return nil, err
	}
	inner, err := ContainedCount(g, p.Bag)
	if err != nil {
		return nil, err
	}

	return []report.Answer{
		{Part: 1, Label: fmt.Sprintf("bag colors that can contain %s", p.Bag), Value: outer},
		{Part: 2, Label: fmt.Sprintf("bags inside one %s", p.Bag), Value: inner},
	}, nil
}
