// Package expense solves the expense report puzzle: find entries that sum
// to a target and multiply them.
package expense

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/vk/advent2020/internal/ctxlog"
	"github.com/vk/advent2020/internal/registry"
	"github.com/vk/advent2020/internal/report"
)

// Day is the identifier this puzzle registers under.
const Day = "01"

// Params are the manifest tunables for the puzzle.
type Params struct {
	Target  int   `hcl:"target,optional"`
	Arities []int `hcl:"arities,optional"`
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(Day, &registry.RegisteredPuzzle{
		Title:     "Report Repair",
		NewParams: func() any { return &Params{Target: 2020, Arities: []int{2, 3}} },
		Fn:        Solve,
	})
}

// Solve runs one search per configured arity.
func Solve(ctx context.Context, input string, params any) ([]report.Answer, error) {
	p := params.(*Params)
	logger := ctxlog.FromContext(ctx)

	entries, err := ParseEntries(input)
	if err != nil {
		return nil, err
	}
	logger.Debug("Parsed expense entries.", "count", len(entries))

	answers := make([]report.Answer, 0, len(p.Arities))
	for i, k := range p.Arities {
		m, ok, err := FindTuple(entries, p.Target, k)
		if err != nil {
			return nil, err
		}
		a := report.Answer{
			Part:  i + 1,
			Label: fmt.Sprintf("product of %d entries summing to %d", k, p.Target),
		}
		if ok {
			a.Value = m.Product
			logger.Info("Found matching entries.", "arity", k, "sum", formatSum(m.Values), "indices", m.Indices)
		} else {
			logger.Info("No entries sum to target.", "arity", k, "target", p.Target)
		}
		answers = append(answers, a)
	}
	return answers, nil
}

func formatSum(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " + ")
}
