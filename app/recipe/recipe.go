// Package recipe discovers just recipes by asking the just binary to list
// them. Recipe files are never read directly.
package recipe

import (
	"fmt"
	"strings"
)

// Separator joins an auxiliary file's base name and a recipe name.
const Separator = "::"

// Recipe is one entry of a just listing.
type Recipe struct {
	Name        string
	Description string
	// SourceFile is the auxiliary recipe file the recipe came from,
	// empty for the primary justfile.
	SourceFile string
}

// Detail returns the "(file.just)" marker shown next to auxiliary recipes.
func (r Recipe) Detail() string {
	if r.SourceFile == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", r.SourceFile)
}

// Namespace prefixes name with the base name of its recipe file.
func Namespace(base, name string) string {
	return base + Separator + name
}

// SplitName splits a namespaced name into file base and bare recipe name.
// ok is false for names from the primary justfile.
func SplitName(name string) (fileBase, bare string, ok bool) {
	return strings.Cut(name, Separator)
}
