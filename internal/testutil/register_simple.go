package testutil

import (
	"context"

	"github.com/vk/advent2020/internal/registry"
	"github.com/vk/advent2020/internal/report"
)

// SimpleModule is a test helper for easily creating a mock module that
// registers a single puzzle.
type SimpleModule struct {
	Day    string
	Puzzle *registry.RegisteredPuzzle
}

// Register implements the registry.Module interface.
func (m *SimpleModule) Register(r *registry.Registry) {
	r.RegisterPuzzle(m.Day, m.Puzzle)
}

// EchoModule registers a puzzle that reports the input length in bytes and
// stores the decoded params in seen. Useful for manifest tests.
func EchoModule(day string, newParams func() any, seen *any) *SimpleModule {
	return &SimpleModule{
		Day: day,
		Puzzle: &registry.RegisteredPuzzle{
			Title:     "Echo",
			NewParams: newParams,
			Fn: func(_ context.Context, input string, params any) ([]report.Answer, error) {
				if seen != nil {
					*seen = params
				}
				return []report.Answer{{Part: 1, Label: "bytes", Value: len(input)}}, nil
			},
		},
	}
}
