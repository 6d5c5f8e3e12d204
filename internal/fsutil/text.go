package fsutil

import (
	"fmt"
	"os"
	"strings"
)

// ReadText reads the whole file into memory. Line endings are normalized to
// "\n" and trailing newlines are removed, so the result never ends with an
// empty line.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file %s: %w", path, err)
	}
	return NormalizeText(string(data)), nil
}

// NormalizeText applies the same normalization as ReadText to in-memory text.
func NormalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.TrimRight(text, "\n")
}

// SplitLines splits normalized text into lines. Empty text has no lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// Block is a run of consecutive non-blank lines.
type Block struct {
	// Line is the 1-based line number of the first line in the block.
	Line  int
	Lines []string
}

// SplitBlocks groups lines into blocks separated by one or more blank
// lines. Lines holding only whitespace count as blank.
func SplitBlocks(text string) []Block {
	var blocks []Block
	var current *Block
	for i, line := range SplitLines(text) {
		if strings.TrimSpace(line) == "" {
			current = nil
			continue
		}
		if current == nil {
			blocks = append(blocks, Block{Line: i + 1})
			current = &blocks[len(blocks)-1]
		}
		current.Lines = append(current.Lines, line)
	}
	return blocks
}
