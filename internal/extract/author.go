package extract

import (
	"regexp"
	"strings"
	"unicode"
)

// Rule identifiers attached to author candidates.
const (
	RuleBylineStrict = "byline-strict"
	RuleBylineLoose  = "byline-loose"
)

var (
	// affiliationRe rejects institution lines that otherwise look name-like.
	affiliationRe = regexp.MustCompile(`(?i)\b(university|department|institute|institution|faculty|school|laboratory|college|hospital|academy|center|centre|address)\b`)

	// sectionRe rejects section headings near the top of the page.
	sectionRe = regexp.MustCompile(`(?i)\b(abstract|keywords?|introduction|correspondence|e-?mail|highlights)\b`)

	// markerRe strips superscript affiliation markers and footnote symbols
	// that journals attach to author names.
	markerRe = regexp.MustCompile(`[\d*†‡§¶#⁰¹²³⁴⁵⁶⁷⁸⁹ᵃᵇᶜᵈᵉ]+`)

	// nameSurnameFirst matches one "Surname, I." unit.
	nameSurnameFirst = `\p{Lu}[\p{L}'’-]+\s*,\s*(?:\p{Lu}\.\s*)+`

	// nameGivenFirst matches one "First M. Surname" unit with up to three
	// leading given names or initials.
	nameGivenFirst = `(?:\p{Lu}[\p{L}'’-]*\.?\s+){1,3}\p{Lu}[\p{L}'’-]+`

	// strictSurnameFirstRe matches a whole byline like "Smith, J., Doe, A."
	strictSurnameFirstRe = regexp.MustCompile(
		`^(?:` + nameSurnameFirst + `)(?:,?\s*(?:(?:and|&)\s+)?` + nameSurnameFirst + `)*,?\s*(?:et al\.?)?$`)

	// strictGivenFirstRe matches a whole byline like "J. Smith, A. Doe and B. Roe".
	strictGivenFirstRe = regexp.MustCompile(
		`^(?:` + nameGivenFirst + `)(?:\s*,\s*(?:(?:and|&)\s+)?` + nameGivenFirst + `|\s+(?:and|&)\s+` + nameGivenFirst + `)*,?\s*(?:et al\.?)?$`)

	// capitalizedWordRe finds full capitalized words (not bare initials),
	// the loose signal that a line is a list of names.
	capitalizedWordRe = regexp.MustCompile(`\p{Lu}[\p{L}'’-]{2,}`)

	// authorSepRe splits a byline into per-person fragments.
	authorSepRe = regexp.MustCompile(`\s*(?:,|;|·|•|\band\b|&)\s*`)

	etAlRe = regexp.MustCompile(`(?i)\bet al\b`)

	// initialRe finds abbreviated given names like the "J." in "J. Smith".
	initialRe = regexp.MustCompile(`\b\p{Lu}\.`)
)

// particles are lowercase words allowed inside a name ("Vincent van Gogh").
var particles = map[string]bool{
	"van": true, "von": true, "de": true, "der": true, "den": true,
	"del": true, "della": true, "da": true, "di": true, "la": true,
	"le": true, "al": true, "bin": true, "ter": true,
}

// authorCandidates scans the top of the page for a byline. Bylines sit just
// below the title, so only the first AuthorWindow lines are considered, and
// the very first line is never a Strong match (something has to be above it
// to be the title).
func (e *Engine) authorCandidates(p PageText) []Candidate {
	window := e.cfg.AuthorWindow
	if window > len(p.Lines) {
		window = len(p.Lines)
	}

	var cands []Candidate
	for i := 0; i < window; i++ {
		line := p.Lines[i].Text
		if affiliationRe.MatchString(line) || sectionRe.MatchString(line) {
			continue
		}
		// Submission-history and copyright lines carry years; bylines don't.
		if yearTokenRe.MatchString(line) {
			continue
		}

		stripped := collapseSpace(markerRe.ReplaceAllString(line, ""))
		stripped = strings.Trim(stripped, " ,")
		if stripped == "" || len(strings.Fields(stripped)) > e.cfg.MaxAuthorTokens {
			continue
		}

		surname, multi, ok := parseByline(stripped)
		if !ok {
			continue
		}

		rule := RuleBylineLoose
		strength := Weak
		if i > 0 && (strictSurnameFirstRe.MatchString(stripped) || strictGivenFirstRe.MatchString(stripped)) {
			rule = RuleBylineStrict
			strength = Strong
		}

		cands = append(cands, Candidate{
			Value:       surname,
			Strength:    strength,
			Rule:        rule,
			Line:        line,
			MultiAuthor: multi,
		})
	}

	// Strong candidates first; within a tier, page order is kept.
	return stableByStrength(cands)
}

// parseByline extracts the first author's surname from a byline and reports
// whether more than one person was named. ok is false when the line does not
// look like a list of names: it needs a separator, an "et al.", an initial,
// or the shape of one bare capitalized name.
func parseByline(line string) (surname string, multi bool, ok bool) {
	if capitalizedWordRe.FindString(line) == "" {
		return "", false, false
	}

	etAl := etAlRe.MatchString(line)
	body := strings.TrimSpace(etAlRe.ReplaceAllString(line, ""))

	if !etAl && !authorSepRe.MatchString(body) && !initialRe.MatchString(body) && !bareNameShape(body) {
		return "", false, false
	}

	frags := authorSepRe.Split(body, -1)

	// Count fragments carrying a full name word: "Smith, J., Doe, A." splits
	// into [Smith J. Doe A.] of which Smith and Doe count as persons.
	persons := 0
	for _, f := range frags {
		if capitalizedWordRe.MatchString(f) {
			persons++
		}
	}
	if persons == 0 {
		return "", false, false
	}

	first := strings.TrimSpace(frags[0])
	surname = surnameOf(first)
	if surname == "" {
		return "", false, false
	}

	// A lone capitalized word is only a plausible byline when an explicit
	// multi-author signal accompanies it.
	if persons == 1 && !etAl && first == body && len(strings.Fields(first)) == 1 {
		return "", false, false
	}

	return surname, etAl || persons > 1, true
}

// bareNameShape matches a separator-free byline of one person: two to four
// words, each capitalized or a name particle ("Jane Doe", "Vincent van
// Gogh"). Prose fails this because of its articles and prepositions.
func bareNameShape(body string) bool {
	words := strings.Fields(body)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		if particles[strings.ToLower(w)] {
			continue
		}
		if capitalizedWordRe.MatchString(w) {
			continue
		}
		return false
	}
	return true
}

// strictByline reports whether a whole line, affiliation markers stripped,
// matches one of the rigorous byline templates.
func strictByline(line string) bool {
	s := strings.Trim(collapseSpace(markerRe.ReplaceAllString(line, "")), " ,")
	return strictSurnameFirstRe.MatchString(s) || strictGivenFirstRe.MatchString(s)
}

// surnameOf reduces one person fragment to a surname: the whole fragment if
// it is a single word ("Smith" from "Smith, J."), otherwise the last full
// word ("Smith" from "J. Smith"). Only letters, hyphens, and apostrophes are
// kept, so markers and punctuation cannot leak into the filename.
func surnameOf(fragment string) string {
	fields := strings.Fields(fragment)
	for i := len(fields) - 1; i >= 0; i-- {
		w := keepLetters(fields[i])
		// Skip trailing initials like the "J." in "Smith J." orderings.
		if len([]rune(w)) >= 2 {
			return w
		}
	}
	if len(fields) == 0 {
		return ""
	}
	return keepLetters(fields[0])
}

// keepLetters keeps Unicode letters plus in-name hyphens and apostrophes.
func keepLetters(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || r == '-' || r == '\'' || r == '’' {
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "-'’")
}

// stableByStrength orders Strong candidates before Weak ones while keeping
// each tier in its original order.
func stableByStrength(cands []Candidate) []Candidate {
	if len(cands) < 2 {
		return cands
	}
	out := make([]Candidate, 0, len(cands))
	for _, c := range cands {
		if c.Strength == Strong {
			out = append(out, c)
		}
	}
	for _, c := range cands {
		if c.Strength != Strong {
			out = append(out, c)
		}
	}
	return out
}
