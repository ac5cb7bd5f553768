package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[output]
color = "off"

[diff]
only_diff = true

[filter]
comment_prefix = "// "
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output.Color != "off" || !cfg.Diff.OnlyDiff || cfg.Filter.CommentPrefix != "// " {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Output.MaxDiagnostics != 100 || cfg.Filter.DebugSectionPrefix != ".debug" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
	if cfg.Path != path {
		t.Fatalf("Path = %q, want %q", cfg.Path, path)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name, body, want string
	}{
		{"unknown key", "[diff]\nonly_dif = true\n", "unknown keys: diff.only_dif"},
		{"bad color", "[output]\ncolor = \"sometimes\"\n", "output.color"},
		{"negative max", "[output]\nmax_diagnostics = -1\n", "max_diagnostics"},
		{"syntax", "[output\n", "failed to parse TOML"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tc.body)
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("Load error = %v, want it to mention %q", err, tc.want)
			}
		})
	}
}

func TestResolveWalksUp(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "[diff]\nexit_code = true\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	cfg, err := Resolve("", nested)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !cfg.Diff.ExitCode || cfg.Path != path {
		t.Fatalf("expected config from %s, got %+v", path, cfg)
	}
}

func TestResolveExplicitMissing(t *testing.T) {
	_, err := Resolve(filepath.Join(t.TempDir(), "nope.toml"), "")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
