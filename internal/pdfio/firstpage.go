// Package pdfio reads the first page of a PDF into the line form the
// extraction engine consumes. It is the only package that touches PDF
// internals; the engine itself never sees a file.
package pdfio

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/refile/refile/internal/extract"
)

// FirstPage returns the lines of a PDF's first page in reading order,
// carrying per-line font-size hints when the page exposes them. A PDF whose
// text layer resists row extraction degrades to plain text with no hints;
// a PDF with no pages returns no lines. Only failing to open or parse the
// file is an error.
func FirstPage(path string) ([]extract.SourceLine, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	if r.NumPage() < 1 {
		return nil, nil
	}
	page := r.Page(1)
	if page.V.IsNull() {
		return nil, nil
	}

	if lines, err := rowLines(page); err == nil && len(lines) > 0 {
		return lines, nil
	}

	// No row structure; hand back plain text and let the engine fall to its
	// text-only heuristics.
	text, err := page.GetPlainText(nil)
	if err != nil {
		return nil, fmt.Errorf("extracting text from %s: %w", path, err)
	}
	var lines []extract.SourceLine
	for _, s := range strings.Split(text, "\n") {
		lines = append(lines, extract.SourceLine{Text: s})
	}
	return lines, nil
}

// rowLines assembles page rows top-down, taking each row's text and the
// largest font size among its runs.
func rowLines(page pdf.Page) (lines []extract.SourceLine, err error) {
	// The pdf library panics on some malformed content streams; treat that
	// as "no rows" and let the caller degrade.
	defer func() {
		if r := recover(); r != nil {
			lines, err = nil, fmt.Errorf("reading rows: %v", r)
		}
	}()

	rows, err := page.GetTextByRow()
	if err != nil {
		return nil, err
	}

	// Page coordinates grow upward; larger positions are nearer the top.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Position > rows[j].Position
	})

	for _, row := range rows {
		var b strings.Builder
		var size float64
		for _, run := range row.Content {
			b.WriteString(run.S)
			if run.FontSize > size {
				size = run.FontSize
			}
		}
		lines = append(lines, extract.SourceLine{Text: b.String(), FontSize: size})
	}
	return lines, nil
}
