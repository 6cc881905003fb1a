// Package config loads per-folder heuristic overrides from
// .refile/config.yaml. A missing file means stock defaults; the engine's
// built-in configuration stays the single source of truth and the file only
// layers deltas on top of it.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/refile/refile/internal/extract"
	"github.com/refile/refile/internal/journal"
)

// File is the config filename inside the .refile directory.
const File = "config.yaml"

// Folder is the on-disk configuration for one folder of PDFs.
type Folder struct {
	// FallbackYear substitutes for the year when extraction finds none.
	// Zero means "use the current year".
	FallbackYear int `yaml:"fallback_year"`

	// YearStrategy selects the tie-break for multiple plausible years:
	// "topmost" (default) or "scored".
	YearStrategy string `yaml:"year_strategy"`

	// ExtraDenylist appends boilerplate patterns to the built-in list,
	// e.g. a lab's local watermark.
	ExtraDenylist []string `yaml:"extra_denylist"`

	// ExtraYearCues appends cue words for the year generator, e.g.
	// non-English "recibido".
	ExtraYearCues []string `yaml:"extra_year_cues"`

	// AuthorWindow overrides how many top lines are scanned for a byline.
	AuthorWindow int `yaml:"author_window"`

	// MaxTitleLen overrides the title truncation length in filenames.
	MaxTitleLen int `yaml:"max_title_len"`
}

// Path returns the config file path for a folder.
func Path(dir string) string {
	return filepath.Join(dir, journal.Dir, File)
}

// Load reads a folder's configuration. A missing file yields a zero Folder
// with no error; a present but malformed file is an error.
func Load(dir string) (*Folder, error) {
	data, err := os.ReadFile(Path(dir))
	if os.IsNotExist(err) {
		return &Folder{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", Path(dir), err)
	}

	var f Folder
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", Path(dir), err)
	}

	if f.YearStrategy != "" &&
		f.YearStrategy != string(extract.TopmostYear) &&
		f.YearStrategy != string(extract.ScoredYear) {
		return nil, fmt.Errorf("%s: unknown year_strategy %q", Path(dir), f.YearStrategy)
	}
	if f.FallbackYear != 0 && (f.FallbackYear < 1900 || f.FallbackYear > 2099) {
		return nil, fmt.Errorf("%s: fallback_year %d out of range", Path(dir), f.FallbackYear)
	}

	return &f, nil
}

// Save writes the configuration to the folder, creating the .refile
// directory if needed.
func (f *Folder) Save(dir string) error {
	if err := os.MkdirAll(filepath.Join(dir, journal.Dir), 0755); err != nil {
		return fmt.Errorf("creating %s directory: %w", journal.Dir, err)
	}

	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// EngineConfig layers the folder's overrides onto the stock heuristic
// configuration.
func (f *Folder) EngineConfig() extract.Config {
	cfg := extract.DefaultConfig()

	if f.YearStrategy != "" {
		cfg.Strategy = extract.YearStrategy(f.YearStrategy)
	}
	cfg.Denylist = append(cfg.Denylist, f.ExtraDenylist...)
	cfg.YearCues = append(cfg.YearCues, f.ExtraYearCues...)
	if f.AuthorWindow > 0 {
		cfg.AuthorWindow = f.AuthorWindow
	}
	if f.MaxTitleLen > 0 {
		cfg.MaxTitleLen = f.MaxTitleLen
	}

	return cfg
}

// EffectiveFallbackYear resolves the year substituted when extraction finds
// none: the configured value, or the current year.
func (f *Folder) EffectiveFallbackYear() int {
	if f.FallbackYear > 0 {
		return f.FallbackYear
	}
	return time.Now().Year()
}
