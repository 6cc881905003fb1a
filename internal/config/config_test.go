package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/refile/refile/internal/extract"
	"github.com/refile/refile/internal/journal"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(dir, journal.Dir), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(Path(dir), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMissingFileIsDefaults(t *testing.T) {
	f, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.FallbackYear != 0 || f.YearStrategy != "" {
		t.Errorf("got %+v, want zero Folder", f)
	}

	cfg := f.EngineConfig()
	def := extract.DefaultConfig()
	if cfg.AuthorWindow != def.AuthorWindow || cfg.Strategy != def.Strategy {
		t.Errorf("EngineConfig diverged from defaults: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
fallback_year: 2023
year_strategy: scored
extra_denylist:
  - "(?i)wet lab internal copy"
extra_year_cues:
  - recibido
author_window: 25
max_title_len: 80
`)

	f, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.FallbackYear != 2023 {
		t.Errorf("fallback_year = %d", f.FallbackYear)
	}

	cfg := f.EngineConfig()
	if cfg.Strategy != extract.ScoredYear {
		t.Errorf("strategy = %q, want scored", cfg.Strategy)
	}
	if cfg.AuthorWindow != 25 || cfg.MaxTitleLen != 80 {
		t.Errorf("window/len = %d/%d, want 25/80", cfg.AuthorWindow, cfg.MaxTitleLen)
	}

	if _, err := extract.NewEngine(cfg); err != nil {
		t.Errorf("overridden config does not compile: %v", err)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown strategy", "year_strategy: psychic"},
		{"year out of range", "fallback_year: 1234"},
		{"malformed yaml", "fallback_year: [nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)
			if _, err := Load(dir); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := &Folder{FallbackYear: 2026, YearStrategy: "topmost"}
	if err := in.Save(dir); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.FallbackYear != 2026 || out.YearStrategy != "topmost" {
		t.Errorf("round trip got %+v", out)
	}
}

func TestEffectiveFallbackYear(t *testing.T) {
	f := &Folder{FallbackYear: 2024}
	if y := f.EffectiveFallbackYear(); y != 2024 {
		t.Errorf("got %d, want 2024", y)
	}

	zero := &Folder{}
	if y := zero.EffectiveFallbackYear(); y < 2025 {
		t.Errorf("got %d, want current year", y)
	}
}
