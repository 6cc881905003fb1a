package extract

import "strings"

// illegal replaces characters rejected by common filesystems. Underscore
// keeps segment boundaries visible, matching how reference managers export.
var illegal = strings.NewReplacer(
	`\`, "_", "/", "_", ":", "_", "*", "_",
	"?", "_", `"`, "_", "<", "_", ">", "_", "|", "_",
)

// Compose assembles the proposed filename from resolved fields:
//
//	<Surname> et al. (<Year>). <Title>.pdf   more than one author
//	<Surname> (<Year>). <Title>.pdf          single author
//
// Output is sanitized for filesystem legality and deterministic: identical
// fields always compose to the identical byte string.
func (e *Engine) Compose(author, year, title Field, multi bool) string {
	a := sanitizeSegment(author.Value)
	y := sanitizeSegment(year.Value)
	t := truncateRunes(sanitizeSegment(title.Value), e.cfg.MaxTitleLen)

	var b strings.Builder
	b.WriteString(a)
	if multi {
		b.WriteString(" et al.")
	}
	b.WriteString(" (")
	b.WriteString(y)
	b.WriteString("). ")
	b.WriteString(t)

	// Windows rejects path components ending in dots or spaces; trim before
	// the extension goes on.
	stem := strings.TrimRight(b.String(), " .")
	return stem + ".pdf"
}

// sanitizeSegment strips illegal filename characters and collapses the
// whitespace runs the replacement can leave behind.
func sanitizeSegment(s string) string {
	return collapseSpace(illegal.Replace(s))
}

// truncateRunes caps a string at n runes, cutting at a rune boundary so a
// multibyte character is never split.
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimRight(string(runes[:n]), " ")
}
