// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import (
	"sort"

	"github.com/hashicorp/hcl/v2"
)

// Manifest is the merged set of puzzle definitions from every loaded source.
type Manifest struct {
	Puzzles map[string]*Puzzle
}

// NewManifest returns an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{Puzzles: make(map[string]*Puzzle)}
}

// Days returns the identifiers of all defined puzzles in ascending order.
func (m *Manifest) Days() []string {
	days := make([]string, 0, len(m.Puzzles))
	for d := range m.Puzzles {
		days = append(days, d)
	}
	sort.Strings(days)
	return days
}

// Puzzle is the format-agnostic representation of a `puzzle` block.
type Puzzle struct {
	// Day is the two-digit identifier, e.g. "07".
	Day   string
	Title string
	// InputPath is the resolved location of the puzzle's input file.
	InputPath string
	// Params holds the remaining, puzzle-specific attributes. They are
	// decoded lazily by the Converter into the puzzle's own params type.
	Params hcl.Body
	// Source is the file the definition came from.
	Source string
}

// Vars are the values exposed to manifest expressions.
type Vars struct {
	InputDir string
}
