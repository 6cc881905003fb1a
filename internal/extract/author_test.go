package extract

import "testing"

func TestParseByline(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		surname string
		multi   bool
		ok      bool
	}{
		{
			name:    "surname-first list",
			line:    "Smith, J., Doe, A.",
			surname: "Smith",
			multi:   true,
			ok:      true,
		},
		{
			name:    "surname-first single",
			line:    "Smith, J.",
			surname: "Smith",
			multi:   false,
			ok:      true,
		},
		{
			name:    "given-first list",
			line:    "J. Smith, A. Doe",
			surname: "Smith",
			multi:   true,
			ok:      true,
		},
		{
			name:    "given-first single",
			line:    "J. Smith",
			surname: "Smith",
			multi:   false,
			ok:      true,
		},
		{
			name:    "full names joined by and",
			line:    "John Smith and Jane Doe",
			surname: "Smith",
			multi:   true,
			ok:      true,
		},
		{
			name:    "et al marks multiple authors",
			line:    "Maria García-López et al.",
			surname: "García-López",
			multi:   true,
			ok:      true,
		},
		{
			name:    "bare two-word name",
			line:    "Jane Doe",
			surname: "Doe",
			multi:   false,
			ok:      true,
		},
		{
			name:    "name with particle",
			line:    "Vincent van Gogh",
			surname: "Gogh",
			multi:   false,
			ok:      true,
		},
		{
			name: "prose line rejected",
			line: "On the Nature of Things",
			ok:   false,
		},
		{
			name: "date line rejected",
			line: "Received 2020",
			ok:   false,
		},
		{
			name: "lone word rejected",
			line: "Smith",
			ok:   false,
		},
		{
			name: "no capitalized words rejected",
			line: "keywords: memory, attention",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surname, multi, ok := parseByline(tt.line)
			if ok != tt.ok {
				t.Fatalf("parseByline(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			}
			if !ok {
				return
			}
			if surname != tt.surname {
				t.Errorf("parseByline(%q) surname = %q, want %q", tt.line, surname, tt.surname)
			}
			if multi != tt.multi {
				t.Errorf("parseByline(%q) multi = %v, want %v", tt.line, multi, tt.multi)
			}
		})
	}
}

func TestAuthorCandidates(t *testing.T) {
	e := NewDefaultEngine()

	t.Run("strict byline below title is strong", func(t *testing.T) {
		p := e.Normalize(linesOf(
			"Spatial Memory in Desert Ants",
			"Smith, J., Doe, A.",
		))
		cands := e.authorCandidates(p)
		if len(cands) == 0 {
			t.Fatal("expected at least one candidate")
		}
		c := cands[0]
		if c.Strength != Strong || c.Rule != RuleBylineStrict {
			t.Errorf("got %v/%q, want strong %q", c.Strength, c.Rule, RuleBylineStrict)
		}
		if c.Value != "Smith" || !c.MultiAuthor {
			t.Errorf("got value %q multi %v, want Smith/true", c.Value, c.MultiAuthor)
		}
	})

	t.Run("affiliation markers are stripped", func(t *testing.T) {
		p := e.Normalize(linesOf(
			"Adaptive Optics for Retinal Imaging",
			"John Smith1,2* and Jane Doe3",
		))
		cands := e.authorCandidates(p)
		if len(cands) == 0 {
			t.Fatal("expected at least one candidate")
		}
		if cands[0].Value != "Smith" || !cands[0].MultiAuthor {
			t.Errorf("got %q multi %v, want Smith/true", cands[0].Value, cands[0].MultiAuthor)
		}
	})

	t.Run("affiliation lines are skipped", func(t *testing.T) {
		p := e.Normalize(linesOf(
			"A Model of Semantic Drift",
			"Department of Linguistics, University of Somewhere",
		))
		for _, c := range e.authorCandidates(p) {
			if c.Value == "Department" || c.Value == "University" {
				t.Errorf("affiliation line produced candidate %q", c.Value)
			}
		}
	})

	t.Run("byline outside window is ignored", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.AuthorWindow = 2
		eng, err := NewEngine(cfg)
		if err != nil {
			t.Fatal(err)
		}
		p := eng.Normalize(linesOf(
			"Title Line About a Topic",
			"Some Other Prose Entirely Here",
			"Smith, J., Doe, A.",
		))
		for _, c := range eng.authorCandidates(p) {
			if c.Value == "Smith" {
				t.Error("candidate found outside the author window")
			}
		}
	})

	t.Run("candidate values never contain digits", func(t *testing.T) {
		p := e.Normalize(linesOf(
			"Some Paper Title Goes Here",
			"Alice Jones12 and Bob Brown34",
		))
		for _, c := range e.authorCandidates(p) {
			for _, r := range c.Value {
				if r >= '0' && r <= '9' {
					t.Errorf("candidate %q contains a digit", c.Value)
				}
			}
		}
	})
}
