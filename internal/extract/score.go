package extract

import "strings"

// resolve picks a field from a candidate list: first Strong if any, else
// first Weak tagged Fallback, else the placeholder. Lists arrive with Strong
// candidates ordered first, so the head of the list is always the pick.
func resolve(cands []Candidate, placeholder string) (Field, *Candidate) {
	if len(cands) == 0 {
		return Field{Value: placeholder, Confidence: Fallback}, nil
	}
	c := cands[0]
	conf := Fallback
	if c.Strength == Strong {
		conf = High
	}
	return Field{Value: c.Value, Confidence: conf, Rule: c.Rule}, &c
}

// score resolves the three candidate lists into fields and applies the
// cross-field overlap guard: when the chosen title is really the author
// line (or vice versa), one heuristic has leaked into the other's field.
// The weaker of the two is demoted to Fallback and its next-best
// non-overlapping candidate substituted, so the pair is never reported
// High/High on the same text.
func (e *Engine) score(authors, years, titles []Candidate) (author, year, title Field, multi bool) {
	author, authorCand := resolve(authors, e.cfg.AuthorPlaceholder)
	year, _ = resolve(years, e.cfg.YearPlaceholder)
	title, titleCand := resolve(titles, e.cfg.TitlePlaceholder)

	if authorCand != nil {
		multi = authorCand.MultiAuthor
	}

	if authorCand == nil || titleCand == nil || !overlap(titleCand, authorCand) {
		return author, year, title, multi
	}

	// Title cut from the byline is the common failure mode, so on equal
	// strength the title is the one demoted.
	if authorCand.Strength < titleCand.Strength {
		next := firstAuthorDisjoint(authors, titleCand)
		if next != nil {
			author = Field{Value: next.Value, Confidence: Fallback, Rule: next.Rule}
			multi = next.MultiAuthor
		} else {
			author.Confidence = Fallback
		}
	} else {
		next := firstTitleDisjoint(titles, authorCand)
		if next != nil {
			title = Field{Value: next.Value, Confidence: Fallback, Rule: next.Rule}
		} else {
			title.Confidence = Fallback
		}
	}
	return author, year, title, multi
}

// overlap reports whether the title candidate was cut from the same text as
// the author candidate: equal values, same source line, or the title text
// contained in the author's line.
func overlap(title, author *Candidate) bool {
	if strings.EqualFold(title.Value, author.Value) {
		return true
	}
	if title.Line == author.Line {
		return true
	}
	return strings.Contains(
		strings.ToLower(author.Line),
		strings.ToLower(title.Value),
	)
}

// firstTitleDisjoint returns the first backup title that does not collide
// with the chosen author candidate, or nil.
func firstTitleDisjoint(titles []Candidate, author *Candidate) *Candidate {
	for i := 1; i < len(titles); i++ {
		if !overlap(&titles[i], author) {
			return &titles[i]
		}
	}
	return nil
}

// firstAuthorDisjoint returns the first backup byline that does not collide
// with the chosen title candidate, or nil.
func firstAuthorDisjoint(authors []Candidate, title *Candidate) *Candidate {
	for i := 1; i < len(authors); i++ {
		if !overlap(title, &authors[i]) {
			return &authors[i]
		}
	}
	return nil
}
