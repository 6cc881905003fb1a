// Package extract infers author, year, and title from the first page of a
// scientific PDF and composes a standardized filename from them.
//
// The engine is a total function over text: it never returns an error and
// never panics. Fields that cannot be resolved come back as placeholder
// values tagged with Fallback confidence, so a batch caller can flag them
// for manual review instead of aborting.
package extract

// Strength is the tier a generator assigns to a candidate at match time.
type Strength int

const (
	// Weak marks a loose heuristic match (bare year token, capitalized-words
	// byline, text-only title guess).
	Weak Strength = iota
	// Strong marks a strict pattern match (cued year, "Surname, Initials"
	// byline, largest-font title line).
	Strong
)

func (s Strength) String() string {
	if s == Strong {
		return "strong"
	}
	return "weak"
}

// Candidate is one heuristically proposed value for a field. Candidates are
// immutable once produced; generators emit them in priority order.
type Candidate struct {
	Value    string   // proposed field value
	Strength Strength // Strong or Weak
	Rule     string   // identifier of the heuristic that produced it
	Line     string   // normalized line the value was taken from

	// MultiAuthor is set by the author generator when the byline contained
	// more than one person. Other generators leave it false.
	MultiAuthor bool
}

// Confidence is the normalized tier of a resolved field.
type Confidence string

const (
	// High means a Strong candidate backed the value.
	High Confidence = "high"
	// Fallback means the value came from a Weak candidate or is a placeholder.
	Fallback Confidence = "fallback"
)

// Field is the resolved value for author, year, or title.
type Field struct {
	Value      string     `json:"value"`
	Confidence Confidence `json:"confidence"`
	Rule       string     `json:"rule,omitempty"`
}

// Resolved reports whether the field holds a real extracted value rather
// than a placeholder.
func (f Field) Resolved() bool {
	return f.Rule != ""
}

// Result is the complete outcome of one extraction run. It holds no
// reference back to the source document.
type Result struct {
	Author      Field      `json:"author"`
	Year        Field      `json:"year"`
	Title       Field      `json:"title"`
	MultiAuthor bool       `json:"multi_author"`
	Overall     Confidence `json:"overall_confidence"`
	Filename    string     `json:"filename"`
}

// SourceLine is one raw line handed to the engine by the PDF reader.
// FontSize is 0 when the upstream extractor supplies no layout metadata.
type SourceLine struct {
	Text     string
	FontSize float64
}

// Line is one cleaned line of the first page.
type Line struct {
	Text     string
	FontSize float64
}

// PageText is the normalized first page: an ordered line sequence, owned by
// a single extraction run and never mutated after the normalizer builds it.
type PageText struct {
	Lines []Line
}

// HasLayout reports whether any line carries a font-size hint. The title
// generator uses this to pick between its layout and text-only heuristics.
func (p PageText) HasLayout() bool {
	for _, ln := range p.Lines {
		if ln.FontSize > 0 {
			return true
		}
	}
	return false
}
