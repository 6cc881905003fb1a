package extract

import (
	"reflect"
	"testing"
)

func linesOf(texts ...string) []SourceLine {
	var out []SourceLine
	for _, t := range texts {
		out = append(out, SourceLine{Text: t})
	}
	return out
}

func pageTexts(p PageText) []string {
	var out []string
	for _, ln := range p.Lines {
		out = append(out, ln.Text)
	}
	return out
}

func TestNormalize(t *testing.T) {
	e := NewDefaultEngine()

	tests := []struct {
		name  string
		input []SourceLine
		want  []string
	}{
		{
			name:  "collapses whitespace",
			input: linesOf("Deep   learning \t for   proteins"),
			want:  []string{"Deep learning for proteins"},
		},
		{
			name:  "drops empty lines",
			input: linesOf("", "  ", "A real line here."),
			want:  []string{"A real line here."},
		},
		{
			name:  "repairs ligatures",
			input: linesOf("Artiﬁcial ﬂuid ﬀects"),
			want:  []string{"Artificial fluid ffects"},
		},
		{
			name:  "rejoins hyphenated break",
			input: linesOf("The quantum entangle-", "ment of photon pairs."),
			want:  []string{"The quantum entanglement of photon pairs."},
		},
		{
			name:  "merges wrapped continuation",
			input: linesOf("A longitudinal study of memory", "in aging adults"),
			want:  []string{"A longitudinal study of memory in aging adults"},
		},
		{
			name:  "terminal punctuation blocks merging",
			input: linesOf("A study of memory.", "in press"),
			want:  []string{"A study of memory.", "in press"},
		},
		{
			name:  "uppercase start blocks merging",
			input: linesOf("On the Nature of Things", "J. Smith, A. Doe"),
			want:  []string{"On the Nature of Things", "J. Smith, A. Doe"},
		},
		{
			name: "drops boilerplate lines",
			input: linesOf(
				"doi:10.1038/s41586-020-1234-5",
				"ISSN 0028-0836",
				"www.nature.com/articles",
				"42",
				"Downloaded from jamanetwork.com on 01/02/2021",
				"The actual title of the paper",
			),
			want: []string{"The actual title of the paper"},
		},
		{
			name:  "empty input yields empty page",
			input: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pageTexts(e.Normalize(tt.input))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize() lines = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeKeepsLargestFontAcrossMerge(t *testing.T) {
	e := NewDefaultEngine()
	p := e.Normalize([]SourceLine{
		{Text: "Spatial reasoning under", FontSize: 18},
		{Text: "uncertainty and noise", FontSize: 17.8},
	})
	if len(p.Lines) != 1 {
		t.Fatalf("expected merged single line, got %d lines", len(p.Lines))
	}
	if p.Lines[0].FontSize != 18 {
		t.Errorf("merged font size = %v, want 18", p.Lines[0].FontSize)
	}
}

func TestHasLayout(t *testing.T) {
	e := NewDefaultEngine()

	with := e.Normalize([]SourceLine{{Text: "A Title of Note", FontSize: 20}})
	if !with.HasLayout() {
		t.Error("expected HasLayout() = true with font sizes")
	}

	without := e.Normalize(linesOf("A Title of Note"))
	if without.HasLayout() {
		t.Error("expected HasLayout() = false without font sizes")
	}
}
