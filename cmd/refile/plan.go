package main

import (
	"os"

	"github.com/refile/refile/internal/config"
	"github.com/refile/refile/internal/extract"
	"github.com/refile/refile/internal/journal"
	"github.com/refile/refile/internal/planner"
)

// buildPlanner loads the folder's configuration and assembles the planner
// used by scan and apply. Exits on configuration errors.
func buildPlanner(dir string) *planner.Planner {
	folder, err := config.Load(dir)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	engine, err := extract.NewEngine(folder.EngineConfig())
	if err != nil {
		exitWithError(ExitConfigError, "invalid heuristic configuration: %v", err)
	}

	fallbackYear := fallbackYearFlag
	if fallbackYear == 0 {
		fallbackYear = folder.EffectiveFallbackYear()
	}

	return planner.New(engine, fallbackYear)
}

// planDir builds the proposals for a directory and marks files an earlier
// batch already renamed, so re-running scan or apply is idempotent.
func planDir(dir string) []planner.Proposal {
	p := buildPlanner(dir)
	proposals, err := p.PlanDir(dir)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	markAlreadyRenamed(dir, proposals)
	return proposals
}

// markAlreadyRenamed consults the folder journal, if one exists, and skips
// files that are products of recorded renames. Scanning must not create the
// state directory, so a folder without one is left untouched.
func markAlreadyRenamed(dir string, proposals []planner.Proposal) {
	if _, err := os.Stat(journal.Path(dir)); err != nil {
		return
	}

	j, err := journal.Open(dir)
	if err != nil {
		return
	}
	defer j.Close()

	for i := range proposals {
		if proposals[i].Skip || proposals[i].NoChange {
			continue
		}
		renamed, err := j.WasRenamed(proposals[i].Original)
		if err == nil && renamed {
			proposals[i].Skip = true
			proposals[i].Note = "already renamed by an earlier batch"
			proposals[i].Proposed = proposals[i].Original
		}
	}
}
