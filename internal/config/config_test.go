package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load(\"\") = %+v, want Default() = %+v", cfg, Default())
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hwlower.toml")
	contents := `
[emit]
color = false

[pass]
keep_unreferenced_ltl = false
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) returned error: %v", path, err)
	}
	if cfg.Emit.Color {
		t.Errorf("expected emit.color=false to override the default")
	}
	if cfg.Pass.KeepUnreferencedLTL {
		t.Errorf("expected pass.keep_unreferenced_ltl=false to override the default")
	}
	if cfg.Emit.LineWidth != Default().Emit.LineWidth {
		t.Errorf("expected line_width to keep its default when the file omits it, got %d", cfg.Emit.LineWidth)
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err == nil {
		t.Fatal("expected an error loading a nonexistent config file")
	}
}
