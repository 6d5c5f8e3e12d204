package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/advent2020/internal/app"
	"github.com/vk/advent2020/internal/hcl_adapter"
	"github.com/vk/advent2020/internal/registry"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// RunIntegrationTest provides a standardized harness for running integration
// tests using a default background context.
func RunIntegrationTest(t *testing.T, files map[string]string, appConfig *app.AppConfig, modules ...registry.Module) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, appConfig, modules...)
}

// RunIntegrationTestWithContext writes files into a fresh workspace and runs
// the app there. Paths in files are relative to the workspace root; puzzle
// inputs belong under "input/" and manifests under "manifests/". When the
// config names no manifest and the workspace has a manifests directory, it
// is used.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, appConfig *app.AppConfig, modules ...registry.Module) *HarnessResult {
	t.Helper()

	// 1. Create a temporary root directory for the test.
	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "input"), 0755))

	// 2. Write all files to the temporary directory.
	hasManifests := false
	for name, content := range files {
		filePath := filepath.Join(tmpDir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(unindent(content)), 0644))
		if strings.HasPrefix(name, "manifests/") {
			hasManifests = true
		}
	}

	// 3. Point a copy of the config at the workspace.
	cfg := *appConfig
	if cfg.InputDir == "" {
		cfg.InputDir = "input"
	}
	if !filepath.IsAbs(cfg.InputDir) {
		cfg.InputDir = filepath.Join(tmpDir, cfg.InputDir)
	}
	if cfg.ManifestPath == "" && hasManifests {
		cfg.ManifestPath = "manifests"
	}
	if cfg.ManifestPath != "" && !filepath.IsAbs(cfg.ManifestPath) {
		cfg.ManifestPath = filepath.Join(tmpDir, cfg.ManifestPath)
	}
	cfg.LogLevel = "debug"
	cfg.LogFormat = "text"

	outBuffer := &app.SafeBuffer{}
	logBuffer := &app.SafeBuffer{}
	defer func() {
		if os.Getenv("ADVENT_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	}()

	var testApp *app.App
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("application startup panicked | %v", r)
			}
		}()
		testApp, err = app.NewApp(outBuffer, logBuffer, &cfg, hcl_adapter.NewLoader(), modules...)
	}()
	if err != nil {
		return &HarnessResult{LogOutput: logBuffer.String(), Err: err}
	}

	runErr := testApp.Run(ctx)

	return &HarnessResult{
		Output:    outBuffer.String(),
		LogOutput: logBuffer.String(),
		Err:       runErr,
		App:       testApp,
	}
}
