package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Rule identifiers attached to year candidates.
const (
	RuleYearCued   = "year-cued"
	RuleYearByline = "year-after-byline"
	RuleYearBare   = "year-bare"
)

var (
	yearTokenRe = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)
	parenYearRe = regexp.MustCompile(`\((19\d{2}|20\d{2})\)`)
	copyrightRe = regexp.MustCompile(`(?i)©|copyright|the author\(s\)`)
	pubCueRe    = regexp.MustCompile(`(?i)\b(published|vol\.?|volume|issue|journal)\b`)
)

// yearCandidates scans the whole page for plausible publication years.
//
// Strong: a year next to a cue word ("Received 2019", "© 2020", "Vol. 12,
// 2021") or a parenthesized year on the line right after a byline. Weak: any
// other in-range 4-digit token. Candidate order encodes the tie-break
// strategy; the scorer just takes the first of the best tier.
func (e *Engine) yearCandidates(p PageText) []Candidate {
	type scored struct {
		cand  Candidate
		score int
		year  int
	}
	var found []scored

	prevByline := false
	for _, ln := range p.Lines {
		line := ln.Text
		lower := strings.ToLower(line)

		for _, m := range yearTokenRe.FindAllString(line, -1) {
			y, _ := strconv.Atoi(m)
			if y < e.cfg.YearMin || y > e.cfg.YearMax {
				continue
			}

			cand := Candidate{Value: m, Strength: Weak, Rule: RuleYearBare, Line: line}
			if e.cfg.hasYearCue(lower) {
				cand.Strength = Strong
				cand.Rule = RuleYearCued
			} else if prevByline && parenYearRe.MatchString(line) {
				cand.Strength = Strong
				cand.Rule = RuleYearByline
			}

			found = append(found, scored{cand: cand, score: e.cfg.contextScore(lower, y), year: y})
		}

		_, _, isByline := parseByline(line)
		prevByline = isByline
	}

	if e.cfg.Strategy == ScoredYear {
		// Rank by cue context, recent year breaking ties. The sort is stable
		// so equally scored years keep page order.
		sort.SliceStable(found, func(i, j int) bool {
			if found[i].score != found[j].score {
				return found[i].score > found[j].score
			}
			return found[i].year > found[j].year
		})
	}

	cands := make([]Candidate, 0, len(found))
	for _, s := range found {
		cands = append(cands, s.cand)
	}
	return stableByStrength(cands)
}

func (c *compiled) hasYearCue(lower string) bool {
	for _, cue := range c.YearCues {
		if strings.Contains(lower, cue) {
			return true
		}
	}
	return false
}

// contextScore rates a year's surrounding line for the scored strategy:
// publication signals boost, submission-history and copyright lines drag,
// and a mild recency bonus separates otherwise equal candidates.
func (c *compiled) contextScore(lower string, year int) int {
	s := 0
	if pubCueRe.MatchString(lower) {
		s += 5
	}
	if strings.Contains(lower, "doi") || strings.Contains(lower, "online") {
		s += 2
	}
	for _, cue := range c.PenaltyCues {
		if strings.Contains(lower, cue) {
			s -= 2
			break
		}
	}
	if copyrightRe.MatchString(lower) {
		s--
	}
	return s + (year-1900)/10
}
