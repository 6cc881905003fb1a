package extract

import (
	"fmt"
	"regexp"
	"time"
)

// YearStrategy selects how the year generator orders multiple plausible
// years. Real layouts disagree about whether the publication year appears
// above or below boilerplate dates, so this is configuration, not a rule.
type YearStrategy string

const (
	// TopmostYear keeps candidates in page order, preferring the year
	// nearest the top of the page.
	TopmostYear YearStrategy = "topmost"
	// ScoredYear ranks candidates by cue context: publication cues boost,
	// received/revised/accepted and copyright lines penalize, recent years
	// break ties.
	ScoredYear YearStrategy = "scored"
)

// Config holds the heuristic knobs for one engine. It is read-only after
// NewEngine compiles it; share one engine across goroutines freely.
type Config struct {
	// Denylist patterns remove boilerplate lines (running headers, DOI and
	// ISSN lines, journal watermarks) before any generator sees the page.
	Denylist []string

	// YearCues are lowercase substrings that promote an adjacent 4-digit
	// token to a Strong year candidate.
	YearCues []string

	// PenaltyCues demote a year's context under the scored strategy.
	PenaltyCues []string

	// YearMin and YearMax bound plausible publication years. A zero YearMax
	// means current year + 1.
	YearMin int
	YearMax int

	Strategy YearStrategy

	// AuthorWindow is how many lines from the top are scanned for a byline.
	AuthorWindow int

	// MaxAuthorTokens bounds the token count of an accepted byline, guarding
	// against affiliation lines masquerading as author lists.
	MaxAuthorTokens int

	// TitleMinWords is the minimum word count for a text-only title guess.
	TitleMinWords int

	// TitleMaxLines caps how many merged lines a title may span before the
	// candidate is discarded as an over-match (usually the abstract).
	TitleMaxLines int

	// MaxTitleLen truncates the title segment of the composed filename.
	MaxTitleLen int

	// Placeholders used when a field resolves to nothing.
	AuthorPlaceholder string
	YearPlaceholder   string
	TitlePlaceholder  string
}

// DefaultConfig returns the stock heuristic configuration.
func DefaultConfig() Config {
	return Config{
		Denylist: []string{
			`(?i)\bdoi:?\s*10\.`,
			`(?i)\bissn\b`,
			`(?i)^https?://`,
			`(?i)\bwww\.`,
			`(?i)downloaded from`,
			`(?i)this content is subject to`,
			`(?i)all rights reserved`,
			`(?i)^\s*page \d+`,
			`^\s*\d+\s*$`,
		},
		YearCues: []string{
			"received", "accepted", "revised", "published", "online",
			"©", "copyright", "doi", "vol.", "volume", "issue",
		},
		PenaltyCues:       []string{"received", "revised", "accepted"},
		YearMin:           1900,
		Strategy:          TopmostYear,
		AuthorWindow:      15,
		MaxAuthorTokens:   20,
		TitleMinWords:     3,
		TitleMaxLines:     3,
		MaxTitleLen:       120,
		AuthorPlaceholder: "Unknown",
		YearPlaceholder:   "n.d.",
		TitlePlaceholder:  "Untitled",
	}
}

// compiled is the Config after pattern compilation and default filling.
type compiled struct {
	Config
	denylist []*regexp.Regexp
}

func (c Config) compile() (*compiled, error) {
	out := &compiled{Config: c}

	if out.YearMax == 0 {
		out.YearMax = time.Now().Year() + 1
	}
	if out.Strategy == "" {
		out.Strategy = TopmostYear
	}
	if out.Strategy != TopmostYear && out.Strategy != ScoredYear {
		return nil, fmt.Errorf("unknown year strategy %q", out.Strategy)
	}

	for _, pat := range c.Denylist {
		re, err := regexp.Compile(pat)
		if err != nil {
			return nil, fmt.Errorf("compiling denylist pattern %q: %w", pat, err)
		}
		out.denylist = append(out.denylist, re)
	}

	return out, nil
}
