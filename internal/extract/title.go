package extract

import (
	"regexp"
	"strings"
)

// Rule identifiers attached to title candidates.
const (
	RuleTitleLayout = "title-largest-font"
	RuleTitleByline = "title-above-byline"
	RuleTitleText   = "title-first-prose"
)

// titleJunkRe rejects lines that are prominent on the page but are journal
// furniture rather than a title.
var titleJunkRe = regexp.MustCompile(`(?i)\b(journal|doi|issn|www\.|https?:|volume|issue|vol\.|no\.|pp\.|proceedings|elsevier|springer|wiley|preprint|manuscript)\b`)

// headingRe rejects article-type banners like "RESEARCH ARTICLE".
var headingRe = regexp.MustCompile(`(?i)^(research|original|review|short|brief|rapid)\s+(research\s+)?(article|paper|report|communication)s?\b`)

// titleCandidates proposes title lines. With layout hints the largest-font
// block near the top wins (Strong); without them the first prose-like line
// that is neither a byline nor a heading is a Weak guess. Both paths emit
// backup candidates so the scorer can retry after an author/title collision.
func (e *Engine) titleCandidates(p PageText) []Candidate {
	var cands []Candidate
	if p.HasLayout() {
		cands = e.layoutTitles(p)
	}
	cands = append(cands, e.textTitles(p)...)
	return stableByStrength(cands)
}

// layoutTitles walks distinct font sizes from largest down, proposing the
// topmost acceptable block of each size. Adjacent lines sharing the block's
// size are merged; a block spanning more than TitleMaxLines is discarded as
// an over-match (usually the abstract set large).
func (e *Engine) layoutTitles(p PageText) []Candidate {
	var sizes []float64
	for _, ln := range p.Lines {
		if ln.FontSize > 0 && !containsSize(sizes, ln.FontSize) {
			sizes = append(sizes, ln.FontSize)
		}
	}
	// Largest first.
	for i := 0; i < len(sizes); i++ {
		for j := i + 1; j < len(sizes); j++ {
			if sizes[j] > sizes[i] {
				sizes[i], sizes[j] = sizes[j], sizes[i]
			}
		}
	}

	var cands []Candidate
	for _, size := range sizes {
		if len(cands) == 2 {
			break
		}
		for i, ln := range p.Lines {
			if !sameSize(ln.FontSize, size) {
				continue
			}

			merged := ln.Text
			span := 1
			for j := i + 1; j < len(p.Lines) && sameSize(p.Lines[j].FontSize, size); j++ {
				merged += " " + p.Lines[j].Text
				span++
			}
			if span <= e.cfg.TitleMaxLines && e.acceptableTitle(merged) {
				cands = append(cands, Candidate{
					Value:    merged,
					Strength: Strong,
					Rule:     RuleTitleLayout,
					Line:     ln.Text,
				})
			}
			break // only the topmost block of each size
		}
	}
	return cands
}

// textTitles is the degraded path when no layout metadata exists: the first
// few lines that read like prose rather than a byline or banner. A prose
// line sitting directly above a rigorous byline is corroborated by the page
// structure and counts as Strong.
func (e *Engine) textTitles(p PageText) []Candidate {
	var cands []Candidate
	for i, ln := range p.Lines {
		if len(cands) == 3 {
			break
		}
		if !e.acceptableTitle(ln.Text) {
			continue
		}

		c := Candidate{Value: ln.Text, Strength: Weak, Rule: RuleTitleText, Line: ln.Text}
		if i+1 < len(p.Lines) && strictByline(p.Lines[i+1].Text) {
			c.Strength = Strong
			c.Rule = RuleTitleByline
		}
		cands = append(cands, c)
	}
	return cands
}

// acceptableTitle filters out furniture, banners, running headers, bylines,
// and fragments too short to be a title.
func (e *Engine) acceptableTitle(s string) bool {
	if titleJunkRe.MatchString(s) || headingRe.MatchString(s) {
		return false
	}
	if affiliationRe.MatchString(s) || sectionRe.MatchString(s) {
		return false
	}
	if _, _, isByline := parseByline(s); isByline {
		return false
	}
	words := strings.Fields(s)
	if len(words) < e.cfg.TitleMinWords {
		return false
	}
	// Short all-caps lines are running headers, not titles.
	if len(words) <= 4 && s == strings.ToUpper(s) {
		return false
	}
	return true
}

func containsSize(sizes []float64, s float64) bool {
	for _, v := range sizes {
		if sameSize(v, s) {
			return true
		}
	}
	return false
}

// sameSize compares font sizes with a half-point tolerance, absorbing the
// rounding jitter PDF extractors introduce.
func sameSize(a, b float64) bool {
	d := a - b
	return d < 0.5 && d > -0.5
}
