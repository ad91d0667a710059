package scan

import (
	"testing"

	"github.com/pdiddy/newspipe/pkg/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		filename  string
		wantLevel types.Level
		wantSlug  string
		wantOK    bool
	}{
		{
			name:      "plain leveled file",
			filename:  "Lvl 3 Storm Hits City.docx",
			wantLevel: 3,
			wantSlug:  "storm-hits-city",
			wantOK:    true,
		},
		{
			name:      "attribution suffix stripped",
			filename:  "Lvl 6 Storm Hits City _ Breaking News English.docx",
			wantLevel: 6,
			wantSlug:  "storm-hits-city",
			wantOK:    true,
		},
		{
			name:      "suffix match is case-insensitive",
			filename:  "Lvl 1 Storm Hits City _ BREAKING NEWS ENGLISH lesson.docx",
			wantLevel: 1,
			wantSlug:  "storm-hits-city",
			wantOK:    true,
		},
		{
			name:      "multi-digit level",
			filename:  "Lvl 12 Something.docx",
			wantLevel: 12,
			wantSlug:  "something",
			wantOK:    true,
		},
		{
			name:      "punctuation dropped from slug",
			filename:  "Lvl 3 Mayor's \"bold\" plan, explained!.docx",
			wantLevel: 3,
			wantSlug:  "mayors-bold-plan-explained",
			wantOK:    true,
		},
		{
			name:      "hyphens survive slugification",
			filename:  "Lvl 1 Co-op stores re-open.docx",
			wantLevel: 1,
			wantSlug:  "co-op-stores-re-open",
			wantOK:    true,
		},
		{
			name:     "no level token",
			filename: "Storm Hits City.docx",
			wantOK:   false,
		},
		{
			name:     "level token not at start",
			filename: "Final Lvl 3 Storm Hits City.docx",
			wantOK:   false,
		},
		{
			name:     "lowercase token does not match",
			filename: "lvl 3 Storm Hits City.docx",
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.filename)
			if ok != tt.wantOK {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.filename, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.Level != tt.wantLevel {
				t.Errorf("level = %d, want %d", got.Level, tt.wantLevel)
			}
			if got.Slug != tt.wantSlug {
				t.Errorf("slug = %q, want %q", got.Slug, tt.wantSlug)
			}
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"Storm Hits City",
		"already-a-slug",
		"  Mixed CASE  with   runs ",
		"symbols!@# removed?",
		"",
		"---",
	}
	for _, in := range inputs {
		once := Slugify(in)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestSlugifyEqualTitlesEqualSlugs(t *testing.T) {
	a := Slugify("Storm Hits  City")
	b := Slugify("storm hits city")
	if a != b {
		t.Errorf("equivalent titles produced different slugs: %q vs %q", a, b)
	}
}
