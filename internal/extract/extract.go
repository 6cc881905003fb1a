package extract

// Engine runs the full first-page pipeline: normalize, generate candidates
// per field, score, compose. One engine is immutable and safe for
// concurrent use; batch callers share a single instance across documents.
type Engine struct {
	cfg *compiled
}

// NewEngine builds an engine from a heuristic configuration. It fails only
// on invalid configuration (bad denylist pattern, unknown year strategy);
// extraction itself can never fail.
func NewEngine(cfg Config) (*Engine, error) {
	c, err := cfg.compile()
	if err != nil {
		return nil, err
	}
	return &Engine{cfg: c}, nil
}

// NewDefaultEngine builds an engine with the stock configuration.
func NewDefaultEngine() *Engine {
	e, err := NewEngine(DefaultConfig())
	if err != nil {
		// DefaultConfig always compiles.
		panic(err)
	}
	return e
}

// Extract runs the pipeline on plain first-page text with no layout hints.
// It is total: any input, including empty or binary garbage, produces a
// Result, degrading to placeholder fields with Fallback confidence.
func (e *Engine) Extract(raw string) Result {
	return e.ExtractLines(splitRaw(raw))
}

// ExtractLines runs the pipeline on first-page lines with optional per-line
// font-size hints. The three generators are independent of one another, so
// their order here is immaterial to the output.
func (e *Engine) ExtractLines(lines []SourceLine) Result {
	page := e.Normalize(lines)

	authors := e.authorCandidates(page)
	years := e.yearCandidates(page)
	titles := e.titleCandidates(page)

	author, year, title, multi := e.score(authors, years, titles)

	overall := Fallback
	if author.Confidence == High && year.Confidence == High && title.Confidence == High {
		overall = High
	}

	return Result{
		Author:      author,
		Year:        year,
		Title:       title,
		MultiAuthor: multi,
		Overall:     overall,
		Filename:    e.Compose(author, year, title, multi),
	}
}
