// Package toboggan counts trees along straight slopes through a wrapping
// grid.
package toboggan

import (
	"context"
	"fmt"

	"github.com/vk/advent2020/internal/ctxlog"
	"github.com/vk/advent2020/internal/registry"
	"github.com/vk/advent2020/internal/report"
)

// Day is the identifier this puzzle registers under.
const Day = "03"

// Params are the manifest tunables for the puzzle. Each slope is [dx, dy].
type Params struct {
	Slope  []int   `hcl:"slope,optional"`
	Slopes [][]int `hcl:"slopes,optional"`
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(Day, &registry.RegisteredPuzzle{
		Title: "Toboggan Trajectory",
		NewParams: func() any {
			return &Params{
				Slope:  []int{3, 1},
				Slopes: [][]int{{1, 1}, {3, 1}, {5, 1}, {7, 1}, {1, 2}},
			}
		},
		Fn: Solve,
	})
}

// Solve counts trees on the single slope, then multiplies the counts of
// every slope in the list.
func Solve(ctx context.Context, input string, params any) ([]report.Answer, error) {
	p := params.(*Params)
	logger := ctxlog.FromContext(ctx)

	g, err := ParseGrid(input)
	if err != nil {
		return nil, err
	}
	logger.Debug("Parsed grid.", "rows", g.Rows, "cols", g.Cols)

	single, err := countAlong(g, p.Slope)
	if err != nil {
		return nil, err
	}

	product := 1
	for _, s := range p.Slopes {
		n, err := countAlong(g, s)
		if err != nil {
			return nil, err
		}
		logger.Debug("Counted trees along slope.", "slope", s, "trees", n)
		product *= n
	}

	return []report.Answer{
		{Part: 1, Label: fmt.Sprintf("trees along slope %v", p.Slope), Value: single},
		{Part: 2, Label: fmt.Sprintf("product of trees along %d slopes", len(p.Slopes)), Value: product},
	}, nil
}

func countAlong(g *Grid, slope []int) (int, error) {
	if len(slope) != 2 {
		return 0, fmt.Errorf("%w: slope must be [dx, dy], got %v", ErrInvalidSlope, slope)
	}
	return g.CountTrees(slope[0], slope[1])
}
