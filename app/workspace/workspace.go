// Package workspace locates the directory recipes are discovered in.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoWorkspace means there is no usable workspace directory.
var ErrNoWorkspace = errors.New("no workspace folder open")

// Resolve returns dir as an absolute path after checking it is a directory.
func Resolve(dir string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		return "", ErrNoWorkspace
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoWorkspace, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoWorkspace, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrNoWorkspace, abs)
	}
	return abs, nil
}

// Detect walks up from start looking for a justfile, then a .git
// directory, and returns the first directory holding one. Without either
// marker start itself is the workspace.
func Detect(start string) (string, error) {
	start, err := Resolve(start)
	if err != nil {
		return "", err
	}
	current := start
	for {
		if hasJustfile(current) || hasGit(current) {
			return current, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return start, nil
		}
		current = parent
	}
}

// hasJustfile matches just's own lookup: "justfile" in any case, optionally
// with a leading dot.
func hasJustfile(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := strings.ToLower(e.Name())
		if name == "justfile" || name == ".justfile" {
			return true
		}
	}
	return false
}

func hasGit(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil && info.IsDir()
}
