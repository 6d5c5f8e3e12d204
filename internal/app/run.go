package app

import (
	"context"
	"fmt"

	"github.com/vk/advent2020/internal/config"
	"github.com/vk/advent2020/internal/ctxlog"
	"github.com/vk/advent2020/internal/fsutil"
	"github.com/vk/advent2020/internal/registry"
	"github.com/vk/advent2020/internal/report"
)

// Run solves the configured puzzle, or lists the puzzles when List is set.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.cfg.List {
		return a.list()
	}

	ctx = ctxlog.With(ctx, "day", a.cfg.Day)
	logger := ctxlog.FromContext(ctx)

	puzzle, err := a.registry.Lookup(a.cfg.Day)
	if err != nil {
		return err
	}
	def, ok := a.manifest.Puzzles[a.cfg.Day]
	if !ok {
		return fmt.Errorf("puzzle %s has no manifest entry", a.cfg.Day)
	}

	params, err := a.decodeParams(ctx, puzzle, def)
	if err != nil {
		return err
	}

	logger.Debug("Reading puzzle input.", "path", def.InputPath)
	input, err := fsutil.ReadText(def.InputPath)
	if err != nil {
		return err
	}

	logger.Info("Solving puzzle.", "title", title(puzzle, def))
	answers, err := puzzle.Fn(ctx, input, params)
	if err != nil {
		return fmt.Errorf("puzzle %s failed: %w", a.cfg.Day, err)
	}
	logger.Debug("Puzzle solved.", "answers", len(answers))

	return report.Write(a.outW, a.cfg.OutputFormat, &report.Result{
		Day:     a.cfg.Day,
		Title:   title(puzzle, def),
		Answers: answers,
	})
}

// decodeParams builds the puzzle's default params and overlays whatever the
// manifest sets.
func (a *App) decodeParams(ctx context.Context, puzzle *registry.RegisteredPuzzle, def *config.Puzzle) (any, error) {
	var params any
	if puzzle.NewParams != nil {
		params = puzzle.NewParams()
	}
	if err := a.converter.DecodeParams(ctx, def, params); err != nil {
		return nil, err
	}
	return params, nil
}

func (a *App) list() error {
	for _, day := range a.registry.Days() {
		puzzle, err := a.registry.Lookup(day)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(a.outW, "%s  %s\n", day, title(puzzle, a.manifest.Puzzles[day])); err != nil {
			return err
		}
	}
	return nil
}

// title prefers the manifest title over the one compiled into the module.
func title(p *registry.RegisteredPuzzle, def *config.Puzzle) string {
	if def != nil && def.Title != "" {
		return def.Title
	}
	return p.Title
}
