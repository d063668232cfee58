package recipe

import (
	"regexp"
	"strings"
)

var (
	// name, whitespace, '#', description
	describedRe = regexp.MustCompile(`^([\w-]+)\s+#\s*(.+)$`)
	bareRe      = regexp.MustCompile(`^([\w-]+)`)
)

// ParseLine turns one listing line into a Recipe. Lines that do not start
// with a name token yield ok == false.
func ParseLine(line string) (Recipe, bool) {
	if m := describedRe.FindStringSubmatch(line); m != nil {
		return Recipe{
			Name:        strings.TrimSpace(m[1]),
			Description: strings.TrimSpace(m[2]),
		}, true
	}
	if m := bareRe.FindStringSubmatch(line); m != nil {
		return Recipe{Name: strings.TrimSpace(m[1])}, true
	}
	return Recipe{}, false
}

// ParseListing parses the output of `just --list` in order, skipping blank
// and unparseable lines.
func ParseListing(out string) []Recipe {
	var recipes []Recipe
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if r, ok := ParseLine(line); ok {
			recipes = append(recipes, r)
		}
	}
	return recipes
}
