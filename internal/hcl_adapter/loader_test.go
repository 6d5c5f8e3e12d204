package hcl_adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/advent2020/internal/config"
	"github.com/vk/advent2020/internal/ctxlog"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoader_Defaults(t *testing.T) {
	// --- Arrange ---
	ctx := ctxlog.Discard(context.Background())
	vars := config.Vars{InputDir: "input"}

	// --- Act ---
	manifest, converter, err := NewLoader().Load(ctx, vars)

	// --- Assert ---
	require.NoError(t, err)
	require.NotNil(t, converter)
	assert.Equal(t, []string{"01", "02", "03", "04", "05", "06", "07"}, manifest.Days())

	p := manifest.Puzzles["07"]
	assert.Equal(t, "Handy Haversacks", p.Title)
	assert.Equal(t, "input/day07.txt", p.InputPath)
	assert.Equal(t, defaultsName, p.Source)

	var params struct {
		Bag string `hcl:"bag,optional"`
	}
	require.NoError(t, converter.DecodeParams(ctx, p, &params))
	assert.Equal(t, "shiny gold", params.Bag)
}

func TestLoader_UserManifestOverridesDefaults(t *testing.T) {
	// --- Arrange ---
	ctx := ctxlog.Discard(context.Background())
	dir := t.TempDir()
	writeFile(t, dir, "custom.hcl", `
		puzzle "01" {
			title  = "Custom Target"
			input  = format("%s/expenses-%s.txt", input_dir, day)
			target = 99
		}
	`)

	// --- Act ---
	manifest, converter, err := NewLoader().Load(ctx, config.Vars{InputDir: "/data"}, dir)

	// --- Assert ---
	require.NoError(t, err)
	p := manifest.Puzzles["01"]
	assert.Equal(t, "Custom Target", p.Title)
	assert.Equal(t, "/data/expenses-01.txt", p.InputPath)

	params := struct {
		Target  int   `hcl:"target,optional"`
		Arities []int `hcl:"arities,optional"`
	}{Target: 2020, Arities: []int{2, 3}}
	require.NoError(t, converter.DecodeParams(ctx, p, &params))
	assert.Equal(t, 99, params.Target)
	assert.Equal(t, []int{2, 3}, params.Arities, "attributes missing from the block keep their defaults")

	// Untouched puzzles still come from the built-in manifest.
	assert.Equal(t, defaultsName, manifest.Puzzles["02"].Source)
}

func TestLoader_MissingInputFallsBackToConvention(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())
	dir := t.TempDir()
	writeFile(t, dir, "p.hcl", `puzzle "05" {}`)

	manifest, _, err := NewLoader().Load(ctx, config.Vars{InputDir: "in"}, dir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join("in", "day05.txt"), manifest.Puzzles["05"].InputPath)
}

func TestLoader_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		files   map[string]string
		wantErr string
	}{
		{
			name:    "syntax error",
			files:   map[string]string{"bad.hcl": `puzzle "01" {`},
			wantErr: "failed to parse HCL file",
		},
		{
			name:    "unknown top-level block",
			files:   map[string]string{"bad.hcl": `step "print" "A" {}`},
			wantErr: "failed to decode HCL file",
		},
		{
			name:    "label is not a two-digit day",
			files:   map[string]string{"bad.hcl": `puzzle "seven" {}`},
			wantErr: `puzzle label "seven" must be a two-digit day`,
		},
		{
			name: "duplicate user definition",
			files: map[string]string{
				"a.hcl":        `puzzle "03" {}`,
				"nested/b.hcl": `puzzle "03" {}`,
			},
			wantErr: `puzzle "03" already defined in`,
		},
		{
			name:    "input is not a string",
			files:   map[string]string{"bad.hcl": `puzzle "02" { input = [1] }`},
			wantErr: "input must be a string",
		},
		{
			name:    "input references an unknown variable",
			files:   map[string]string{"bad.hcl": `puzzle "02" { input = nope }`},
			wantErr: "invalid input expression",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			ctx := ctxlog.Discard(context.Background())
			dir := t.TempDir()
			for name, content := range tc.files {
				writeFile(t, dir, name, content)
			}

			// --- Act ---
			_, _, err := NewLoader().Load(ctx, config.Vars{InputDir: "input"}, dir)

			// --- Assert ---
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestLoader_MissingPath(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())

	_, _, err := NewLoader().Load(ctx, config.Vars{}, filepath.Join(t.TempDir(), "missing"))

	assert.ErrorContains(t, err, "failed to find manifest files")
}

func TestLoader_SkipDefaults(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())
	loader := &Loader{skipDefaults: true}

	manifest, _, err := loader.Load(ctx, config.Vars{})

	require.NoError(t, err)
	assert.Empty(t, manifest.Puzzles)
}
