package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/iconforge/pkg/errors"
	"github.com/matzehuels/iconforge/pkg/icongen"
)

// writeConfig writes a TOML config into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "iconforge.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Source != "icons/icon.svg" {
		t.Errorf("Source = %q, want icons/icon.svg", cfg.Source)
	}
	if cfg.Output != "icons" {
		t.Errorf("Output = %q, want icons", cfg.Output)
	}
	if len(cfg.Targets) != 6 {
		t.Errorf("Targets length = %d, want 6", len(cfg.Targets))
	}
}

func TestLoadFull(t *testing.T) {
	path := writeConfig(t, `
source = "branding/logo.svg"
output = "extension/icons"

[[targets]]
size = 16
filename = "small.png"

[[targets]]
size = 512
filename = "large.png"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Source != "branding/logo.svg" {
		t.Errorf("Source = %q, want branding/logo.svg", cfg.Source)
	}
	if cfg.Output != "extension/icons" {
		t.Errorf("Output = %q, want extension/icons", cfg.Output)
	}

	want := []icongen.Target{
		{Size: 16, Filename: "small.png"},
		{Size: 512, Filename: "large.png"},
	}
	if len(cfg.Targets) != len(want) {
		t.Fatalf("Targets length = %d, want %d", len(cfg.Targets), len(want))
	}
	for i, tgt := range cfg.Targets {
		if tgt != want[i] {
			t.Errorf("Targets[%d] = %v, want %v", i, tgt, want[i])
		}
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `source = "art/icon.svg"`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Source != "art/icon.svg" {
		t.Errorf("Source = %q, want art/icon.svg", cfg.Source)
	}
	if cfg.Output != DefaultOutput {
		t.Errorf("Output = %q, want default %q", cfg.Output, DefaultOutput)
	}
	if len(cfg.Targets) != 6 {
		t.Errorf("Targets length = %d, want default table of 6", len(cfg.Targets))
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.Code
	}{
		{"malformed toml", `source = [broken`, errors.ErrCodeInvalidConfig},
		{"invalid target size", "[[targets]]\nsize = 0\nfilename = \"a.png\"\n", errors.ErrCodeInvalidConfig},
		{"target with path separator", "[[targets]]\nsize = 16\nfilename = \"../a.png\"\n", errors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault(\"\") error: %v", err)
	}
	if cfg.Source != DefaultSource {
		t.Errorf("Source = %q, want %q", cfg.Source, DefaultSource)
	}
}
