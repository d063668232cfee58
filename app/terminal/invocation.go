package terminal

import (
	"strings"

	"github.com/Guerrilla-Interactive/justrun/app/recipe"
)

// KeyPrefix starts every terminal key.
const KeyPrefix = "just-"

// Invocation returns the shell command that runs r and the key of the
// terminal it runs in. Namespaced recipes name their recipe file explicitly.
func Invocation(r recipe.Recipe, binary, ext string) (command, key string) {
	if base, bare, ok := recipe.SplitName(r.Name); ok {
		command = strings.Join([]string{binary, "--justfile", shellQuote(base + ext), shellQuote(bare)}, " ")
		return command, KeyPrefix + base + "-" + bare
	}
	return binary + " " + shellQuote(r.Name), KeyPrefix + r.Name
}

// shellQuote single-quotes s when it holds anything a shell would interpret.
func shellQuote(s string) string {
	if s != "" && strings.IndexFunc(s, unsafeRune) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func unsafeRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	case strings.ContainsRune("-_./:=@%+,", r):
		return false
	}
	return true
}
