// Package scan derives a reading level and a grouping slug from input
// filenames. Files follow the convention
// "Lvl {N} {Title}[ _ <attribution suffix>]{ext}"; anything without the
// leading level token is skipped by the caller.
package scan

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/newspipe/pkg/types"
)

var (
	// levelToken matches the leading "Lvl N" marker and any whitespace
	// separating it from the title.
	levelToken = regexp.MustCompile(`^Lvl (\d+)\s*`)

	// attributionSuffix matches the site boilerplate some downloads append
	// after an underscore separator. It carries no semantic information.
	attributionSuffix = regexp.MustCompile(`(?i)\s*_\s*Breaking News English.*$`)

	slugDisallowed = regexp.MustCompile(`[^a-zA-Z0-9\s-]`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
)

// Name is the normalized identity of one input file.
type Name struct {
	// Level is the reading tier from the filename's level token.
	Level types.Level

	// Slug is the normalized title, shared by all levels of one article.
	Slug string
}

// Parse extracts the level and slug from a raw filename. The second return
// is false when the filename carries no leading level token; that is a skip
// signal, not an error, and the caller continues with the next file.
func Parse(filename string) (Name, bool) {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))

	m := levelToken.FindStringSubmatch(base)
	if m == nil {
		return Name{}, false
	}
	level, err := strconv.Atoi(m[1])
	if err != nil {
		// Unreachable with the digits-only capture, but fail closed.
		return Name{}, false
	}

	title := base[len(m[0]):]
	title = attributionSuffix.ReplaceAllString(title, "")

	return Name{Level: types.Level(level), Slug: Slugify(title)}, true
}

// Slugify normalizes an article title into its grouping key: every rune
// that is not a letter, digit, space, or hyphen is dropped, the remainder
// is lowercased and trimmed, and whitespace runs collapse to single
// hyphens. Slugify is idempotent.
func Slugify(title string) string {
	s := slugDisallowed.ReplaceAllString(title, "")
	s = strings.TrimSpace(strings.ToLower(s))
	return whitespaceRun.ReplaceAllString(s, "-")
}
