package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// fileRoot is the top-level structure of a manifest file. Unknown blocks or
// attributes are rejected by the decoder.
type fileRoot struct {
	Puzzles []*puzzleBlock `hcl:"puzzle,block"`
}

// puzzleBlock is a single `puzzle "NN" { ... }` block.
type puzzleBlock struct {
	Day   string         `hcl:"day,label"`
	Title string         `hcl:"title,optional"`
	Input hcl.Expression `hcl:"input,optional"`
	// Params captures every other attribute for the puzzle to decode.
	Params hcl.Body `hcl:",remain"`
}
