// Package slug builds URL slugs and search keys from Vietnamese titles.
package slug

import (
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonSlug matches everything except lowercase ascii letters, digits and hyphens
	nonSlug = regexp.MustCompile(`[^a-z0-9-]+`)
	hyphens = regexp.MustCompile(`-{2,}`)
	spaces  = regexp.MustCompile(`[\s_]+`)
)

// Make converts s into a URL slug: "Tiếng Việt" becomes "tieng-viet".
func Make(s string) string {
	// composed input keeps unidecode from emitting stray combining marks
	result := unidecode.Unidecode(norm.NFC.String(s))
	result = strings.ToLower(strings.TrimSpace(result))
	result = spaces.ReplaceAllString(result, "-")
	result = nonSlug.ReplaceAllString(result, "")
	result = hyphens.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// Normalize returns the search key stored in normalized_slug columns.
// Hyphens are dropped so that partial input matches across word boundaries.
func Normalize(s string) string {
	return strings.ReplaceAll(Make(s), "-", "")
}

// Pattern returns a LIKE pattern matching rows whose search key contains input.
func Pattern(input string) string {
	return "%" + Normalize(input) + "%"
}
