package extract

import (
	"strings"
	"unicode"
)

// ligatures maps typographic ligatures emitted by PDF text extraction back
// to their letter sequences.
var ligatures = strings.NewReplacer(
	"ﬁ", "fi",
	"ﬂ", "fl",
	"ﬀ", "ff",
	"ﬃ", "ffi",
	"ﬄ", "ffl",
	"­", "", // soft hyphen
)

// Normalize cleans raw first-page lines into a PageText: whitespace is
// collapsed, ligatures repaired, boilerplate dropped, hyphenated line breaks
// rejoined, and wrapped continuations merged. A nil or empty input yields an
// empty PageText; Normalize never fails.
func (e *Engine) Normalize(lines []SourceLine) PageText {
	var cleaned []Line
	for _, src := range lines {
		text := collapseSpace(ligatures.Replace(src.Text))
		if text == "" {
			continue
		}
		if e.cfg.isBoilerplate(text) {
			continue
		}
		cleaned = append(cleaned, Line{Text: text, FontSize: src.FontSize})
	}

	return PageText{Lines: mergeContinuations(cleaned)}
}

// splitRaw turns a plain text blob into source lines with no layout hints.
func splitRaw(raw string) []SourceLine {
	var lines []SourceLine
	for _, s := range strings.Split(raw, "\n") {
		lines = append(lines, SourceLine{Text: s})
	}
	return lines
}

// collapseSpace trims a line and collapses internal whitespace runs.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func (c *compiled) isBoilerplate(line string) bool {
	for _, re := range c.denylist {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// mergeContinuations rejoins lines the typesetter broke. Two cases:
//
//   - a line ending in "-" followed by a line starting lowercase is a word
//     split by hyphenation; the halves are joined with the hyphen removed
//   - a line without terminal punctuation followed by a line starting
//     lowercase is a wrapped continuation of the same logical line
//
// Lines starting with an uppercase letter are never absorbed, which keeps
// a byline from being glued onto the title above it. The merged line keeps
// the larger font size of its parts.
func mergeContinuations(lines []Line) []Line {
	var out []Line
	for _, ln := range lines {
		if n := len(out); n > 0 && startsLower(ln.Text) {
			prev := &out[n-1]
			if strings.HasSuffix(prev.Text, "-") {
				prev.Text = strings.TrimSuffix(prev.Text, "-") + ln.Text
				prev.FontSize = maxSize(prev.FontSize, ln.FontSize)
				continue
			}
			if !endsTerminal(prev.Text) {
				prev.Text += " " + ln.Text
				prev.FontSize = maxSize(prev.FontSize, ln.FontSize)
				continue
			}
		}
		out = append(out, ln)
	}
	return out
}

func startsLower(s string) bool {
	for _, r := range s {
		return unicode.IsLower(r)
	}
	return false
}

// endsTerminal reports whether a line ends a logical sentence or block.
func endsTerminal(s string) bool {
	return strings.ContainsAny(s[len(s)-1:], ".!?:;")
}

func maxSize(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
