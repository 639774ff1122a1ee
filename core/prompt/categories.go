package prompt

import (
	"strings"

	"github.com/gobwas/glob"
)

// fileCategory maps filename patterns to a truncation limit. Categories are
// checked in order; the first match wins.
type fileCategory struct {
	name     string
	limit    int
	patterns []glob.Glob
}

// Truncation limits by file category, in characters.
const (
	documentLimit    = 3000
	spreadsheetLimit = 2000
	jsonLimit        = 1500
	otherLimit       = 1000
)

func defaultCategories() []fileCategory {
	return []fileCategory{
		{
			name:     "document",
			limit:    documentLimit,
			patterns: compilePatterns("*.pdf", "*.docx", "*.doc", "*.txt", "*.md"),
		},
		{
			name:     "spreadsheet",
			limit:    spreadsheetLimit,
			patterns: compilePatterns("*.xlsx", "*.xls", "*.csv"),
		},
		{
			name:     "json",
			limit:    jsonLimit,
			patterns: compilePatterns("*.json"),
		},
	}
}

func compilePatterns(patterns ...string) []glob.Glob {
	out := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, glob.MustCompile(p))
	}
	return out
}

// limitFor returns the truncation limit for a filename. Unmatched files get
// the conservative default.
func (b *Builder) limitFor(filename string) int {
	lower := strings.ToLower(filename)
	for _, cat := range b.categories {
		for _, pattern := range cat.patterns {
			if pattern.Match(lower) {
				return cat.limit
			}
		}
	}
	return otherLimit
}
