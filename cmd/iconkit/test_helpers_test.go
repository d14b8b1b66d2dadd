package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"iconkit/internal/testsupport"
)

type cliTestEnv struct {
	kitDir     string
	outputDir  string
	configPath string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)

	env := &cliTestEnv{
		kitDir:     filepath.Join(base, "kit"),
		outputDir:  filepath.Join(base, "out"),
		configPath: filepath.Join(base, "iconkit.toml"),
	}
	seedTestKit(t, env.kitDir)
	writeTestConfig(t, env.configPath, env.kitDir, env.outputDir,
		filepath.Join(base, "staging"), filepath.Join(base, "logs"))
	return env
}

func seedTestKit(t *testing.T, root string) {
	t.Helper()

	testsupport.WriteKitSkeleton(t, root)
	testsupport.WriteSVG(t, root, "solid", "anchor",
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 576 512"><path d="M0 0h576v512H0z"/></svg>`)
	testsupport.WriteSVG(t, root, "solid", "bolt",
		`<svg viewBox="0 0 448 512" width="448" height="512"><path d="M0 0h448v512H0z"/></svg>`)
	testsupport.WriteStyleDir(t, root, "brands")
	testsupport.WriteMetadata(t, root, map[string]any{
		"anchor": map[string]any{
			"unicode": "f13d",
			"label":   "Anchor",
			"search":  map[string]any{"terms": []any{"ship", "boat"}},
			"styles":  []string{"solid"},
		},
		"bolt": map[string]any{
			"unicode": "f0e7",
			"label":   "Bolt",
			"search":  map[string]any{"terms": []any{"lightning", "zap"}},
			"styles":  []string{"solid"},
		},
		"github": map[string]any{
			"unicode": "f09b",
			"label":   "GitHub",
			"styles":  []string{"brands"},
			"svg": map[string]any{
				"brands": map[string]any{
					"path":    "M165.9 397.4c0 2-2.3 3.6-5.2 3.6z",
					"viewBox": []any{0, 0, 496, 512},
					"width":   496,
					"height":  512,
				},
			},
		},
	})
}

func writeTestConfig(t *testing.T, path, kitDir, outputDir, stagingDir, logDir string) {
	t.Helper()

	content := fmt.Sprintf(`[paths]
kit_dir = %q
output_dir = %q
staging_dir = %q
log_dir = %q

[iconset]
prefix = "fa"
version = "6.4.0"
styles = ["solid", "brands"]

[convert]
jobs = 2

[logging]
format = "console"
level = "error"
`, kitDir, outputDir, stagingDir, logDir)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
