package pdfio

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"

	"github.com/refile/refile/internal/extract"
)

// writeArticlePDF generates a synthetic one-page article with the layout of
// a typical journal first page: big title, smaller byline, small date line.
func writeArticlePDF(t *testing.T, path string) {
	t.Helper()

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.SetFont("Helvetica", "B", 20)
	doc.CellFormat(0, 12, "Thermal Tolerance of Alpine Beetles", "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 12)
	doc.CellFormat(0, 8, "Jane Roe and John Doe", "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 9)
	doc.CellFormat(0, 6, "Received 2017", "", 1, "C", false, 0, "")

	if err := doc.OutputFileAndClose(path); err != nil {
		t.Fatalf("writing fixture PDF: %v", err)
	}
}

func TestFirstPage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "article.pdf")
	writeArticlePDF(t, path)

	lines, err := FirstPage(path)
	if err != nil {
		t.Fatalf("FirstPage() error: %v", err)
	}
	if len(lines) == 0 {
		t.Fatal("FirstPage() returned no lines")
	}

	var title, byline *extract.SourceLine
	for i := range lines {
		switch {
		case strings.Contains(lines[i].Text, "Thermal Tolerance"):
			title = &lines[i]
		case strings.Contains(lines[i].Text, "Jane Roe"):
			byline = &lines[i]
		}
	}
	if title == nil || byline == nil {
		t.Fatalf("missing expected lines in %+v", lines)
	}
	if title.FontSize <= byline.FontSize {
		t.Errorf("title font %v not larger than byline font %v", title.FontSize, byline.FontSize)
	}
}

func TestFirstPageFeedsEngine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "article.pdf")
	writeArticlePDF(t, path)

	lines, err := FirstPage(path)
	if err != nil {
		t.Fatal(err)
	}

	res := extract.NewDefaultEngine().ExtractLines(lines)
	if res.Author.Value != "Roe" {
		t.Errorf("author = %q, want Roe", res.Author.Value)
	}
	if res.Year.Value != "2017" {
		t.Errorf("year = %q, want 2017", res.Year.Value)
	}
	if !strings.Contains(res.Title.Value, "Thermal Tolerance of Alpine Beetles") {
		t.Errorf("title = %q", res.Title.Value)
	}
	if !strings.Contains(res.Filename, "Roe et al. (2017)") {
		t.Errorf("filename = %q", res.Filename)
	}
}

func TestFirstPageMissingFile(t *testing.T) {
	if _, err := FirstPage(filepath.Join(t.TempDir(), "nope.pdf")); err == nil {
		t.Error("expected error for missing file")
	}
}
