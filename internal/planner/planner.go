// Package planner turns extraction results into a per-folder rename plan
// and applies it. The extraction engine never touches the filesystem; this
// package is where filenames meet files.
package planner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/refile/refile/internal/extract"
	"github.com/refile/refile/internal/pdfio"
)

// Proposal is one file's row in the plan.
type Proposal struct {
	Original string         `json:"original"`
	Proposed string         `json:"proposed"`
	Result   extract.Result `json:"result"`

	// Reasons lists the fields that fell back to substitutes ("author",
	// "year", "title"), mirroring the per-row review column.
	Reasons []string `json:"fallback_reasons,omitempty"`

	// NoChange marks a file whose proposed name equals its current one.
	NoChange bool `json:"no_change,omitempty"`

	// Skip marks a file the apply step must leave alone, with Note saying
	// why (unreadable PDF, already renamed by an earlier batch).
	Skip bool   `json:"skip,omitempty"`
	Note string `json:"note,omitempty"`
}

// Planner builds rename plans for folders of PDFs.
type Planner struct {
	engine       *extract.Engine
	fallbackYear int

	// ReadPage supplies first-page lines for a file. Tests substitute it;
	// production uses the PDF reader.
	ReadPage func(path string) ([]extract.SourceLine, error)
}

// New returns a planner using the given engine and fallback year.
func New(engine *extract.Engine, fallbackYear int) *Planner {
	return &Planner{
		engine:       engine,
		fallbackYear: fallbackYear,
		ReadPage:     pdfio.FirstPage,
	}
}

// PlanDir proposes a new name for every *.pdf directly inside dir, in
// name order. Unreadable PDFs yield skipped rows rather than errors; only
// failing to list the directory fails the plan.
func (p *Planner) PlanDir(dir string) ([]Proposal, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	taken := make(map[string]bool)
	var pdfs []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		taken[e.Name()] = true
		if strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			pdfs = append(pdfs, e.Name())
		}
	}
	sort.Strings(pdfs)

	var proposals []Proposal
	for _, name := range pdfs {
		prop := p.planFile(dir, name)

		if !prop.Skip && !prop.NoChange {
			// Resolve collisions against the directory and earlier rows.
			prop.Proposed = avoidCollision(prop.Proposed, prop.Original, taken)
			taken[prop.Proposed] = true
		}
		proposals = append(proposals, prop)
	}
	return proposals, nil
}

// planFile extracts one file and composes its proposal, substituting the
// fallback year and the original stem for unresolved fields the way the
// review table expects.
func (p *Planner) planFile(dir, name string) Proposal {
	prop := Proposal{Original: name}

	lines, err := p.ReadPage(filepath.Join(dir, name))
	if err != nil {
		prop.Skip = true
		prop.Note = fmt.Sprintf("unreadable: %v", err)
		prop.Proposed = name
		return prop
	}

	res := p.engine.ExtractLines(lines)
	prop.Result = res

	author, year, title := res.Author, res.Year, res.Title
	if !author.Resolved() {
		prop.Reasons = append(prop.Reasons, "author")
	}
	if !year.Resolved() {
		year.Value = strconv.Itoa(p.fallbackYear)
		prop.Reasons = append(prop.Reasons, "year")
	}
	if !title.Resolved() {
		title.Value = strings.TrimSuffix(name, filepath.Ext(name))
		prop.Reasons = append(prop.Reasons, "title")
	}

	prop.Proposed = p.engine.Compose(author, year, title, res.MultiAuthor)
	prop.NoChange = prop.Proposed == name
	return prop
}

// avoidCollision appends " (1)", " (2)", ... before the extension until the
// name is free. A file may keep its own current name.
func avoidCollision(proposed, original string, taken map[string]bool) string {
	if proposed == original || !taken[proposed] {
		return proposed
	}
	stem := strings.TrimSuffix(proposed, ".pdf")
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s (%d).pdf", stem, i)
		if candidate == original || !taken[candidate] {
			return candidate
		}
	}
}

// Apply renames the plan's files inside dir, skipping no-change and skipped
// rows. It returns the renames performed (old name to new name) for
// journaling, and the per-file errors encountered; one failed rename does
// not stop the rest.
func Apply(dir string, proposals []Proposal, dryRun bool) (map[string]string, []error) {
	applied := make(map[string]string)
	var errs []error

	for _, prop := range proposals {
		if prop.Skip || prop.NoChange {
			continue
		}
		if dryRun {
			applied[prop.Original] = prop.Proposed
			continue
		}
		oldPath := filepath.Join(dir, prop.Original)
		newPath := filepath.Join(dir, prop.Proposed)
		if err := os.Rename(oldPath, newPath); err != nil {
			errs = append(errs, fmt.Errorf("renaming %s: %w", prop.Original, err))
			continue
		}
		applied[prop.Original] = prop.Proposed
	}
	return applied, errs
}
