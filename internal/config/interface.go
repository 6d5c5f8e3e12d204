// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import "context"

// Loader is the interface for a format-specific manifest loader.
type Loader interface {
	// Load reads the built-in defaults plus every manifest found under the
	// given paths, merges them, and returns a matching Converter.
	Load(ctx context.Context, vars Vars, paths ...string) (*Manifest, Converter, error)
}

// Converter binds a puzzle's raw parameters to a Go struct.
type Converter interface {
	// DecodeParams decodes p.Params into target, which must be a non-nil
	// pointer to a struct. Fields missing from the manifest keep the values
	// target already holds. A nil target only checks that no parameters
	// were given.
	DecodeParams(ctx context.Context, p *Puzzle, target any) error
}
