// Package report renders puzzle answers for humans (text) or machines
// (json, yaml).
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Answer is a single computed result. A nil Value means the puzzle found no
// solution, which is a valid outcome rather than an error.
type Answer struct {
	Part  int    `json:"part" yaml:"part"`
	Label string `json:"label" yaml:"label"`
	Value any    `json:"value" yaml:"value"`
}

// Result groups the answers of one puzzle run.
type Result struct {
	Day     string   `json:"day" yaml:"day"`
	Title   string   `json:"title" yaml:"title"`
	Answers []Answer `json:"answers" yaml:"answers"`
}

// Write renders the result in the requested format.
func Write(w io.Writer, format string, res *Result) error {
	switch format {
	case FormatText, "":
		return writeText(w, res)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported report format %q", format)
	}
}

func writeText(w io.Writer, res *Result) error {
	if _, err := fmt.Fprintf(w, "Day %s: %s\n", res.Day, res.Title); err != nil {
		return err
	}
	for _, a := range res.Answers {
		value := "(none)"
		if a.Value != nil {
			value = fmt.Sprint(a.Value)
		}
		if _, err := fmt.Fprintf(w, "  [Part %d] %s: %s\n", a.Part, a.Label, value); err != nil {
			return err
		}
	}
	return nil
}

// Valid reports whether format names a supported output format.
func Valid(format string) bool {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return true
	}
	return false
}
