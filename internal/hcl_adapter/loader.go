// Package hcl_adapter implements config.Loader and config.Converter on top
// of HashiCorp HCL.
package hcl_adapter

import (
	"context"
	_ "embed"
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/advent2020/internal/config"
	"github.com/vk/advent2020/internal/ctxlog"
	"github.com/vk/advent2020/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
)

//go:embed defaults.hcl
var defaultManifest []byte

// defaultsName is the pseudo file name used in diagnostics for the built-in manifest.
const defaultsName = "<builtin>/defaults.hcl"

var dayLabel = regexp.MustCompile(`^\d{2}$`)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	// skipDefaults disables the embedded manifest. Used by tests.
	skipDefaults bool
}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the built-in manifest and then every .hcl file under paths.
// A block from a user file replaces the built-in block with the same day;
// two user blocks for the same day are an error.
func (l *Loader) Load(ctx context.Context, vars config.Vars, paths ...string) (*config.Manifest, config.Converter, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	manifest := config.NewManifest()
	parser := hclparse.NewParser()

	if !l.skipDefaults {
		file, diags := parser.ParseHCL(defaultManifest, defaultsName)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to parse built-in manifest: %w", diags)
		}
		if err := l.merge(manifest, file, defaultsName, vars, nil); err != nil {
			return nil, nil, err
		}
	}

	var files []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, nil, fmt.Errorf("failed to find manifest files in %s: %w", path, err)
		}
		files = append(files, found...)
	}
	logger.Debug("Discovered manifest files.", "count", len(files))

	userDefined := make(map[string]string)
	for _, path := range files {
		file, diags := parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
		}
		if err := l.merge(manifest, file, path, vars, userDefined); err != nil {
			return nil, nil, err
		}
	}

	logger.Debug("HCL loading complete.", "puzzles", len(manifest.Puzzles), "overrides", len(userDefined))
	return manifest, NewConverter(vars), nil
}

// merge decodes one file into the manifest. userDefined tracks which days
// were already set by a user file; it is nil for the built-in manifest.
func (l *Loader) merge(m *config.Manifest, file *hcl.File, source string, vars config.Vars, userDefined map[string]string) error {
	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", source, diags)
	}

	for _, block := range root.Puzzles {
		if !dayLabel.MatchString(block.Day) {
			return fmt.Errorf("%s: puzzle label %q must be a two-digit day", source, block.Day)
		}
		if userDefined != nil {
			if prev, dup := userDefined[block.Day]; dup {
				return fmt.Errorf("%s: puzzle %q already defined in %s", source, block.Day, prev)
			}
			userDefined[block.Day] = source
		}

		inputPath, err := resolveInput(block, vars)
		if err != nil {
			return fmt.Errorf("%s: puzzle %q: %w", source, block.Day, err)
		}

		m.Puzzles[block.Day] = &config.Puzzle{
			Day:       block.Day,
			Title:     block.Title,
			InputPath: inputPath,
			Params:    block.Params,
			Source:    source,
		}
	}
	return nil
}

// resolveInput evaluates the block's input expression, falling back to
// <input_dir>/day<NN>.txt when the attribute is absent.
func resolveInput(block *puzzleBlock, vars config.Vars) (string, error) {
	fallback := filepath.Join(vars.InputDir, fmt.Sprintf("day%s.txt", block.Day))
	if block.Input == nil {
		return fallback, nil
	}

	val, diags := block.Input.Value(evalContext(vars, block.Day))
	if diags.HasErrors() {
		return "", fmt.Errorf("invalid input expression: %w", diags)
	}
	if val.IsNull() {
		return fallback, nil
	}
	if !val.Type().Equals(cty.String) || !val.IsKnown() {
		return "", fmt.Errorf("input must be a string, got %s", val.Type().FriendlyName())
	}
	return val.AsString(), nil
}
