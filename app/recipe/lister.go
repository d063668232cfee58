package recipe

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// Exec runs name with args in dir and returns its standard output.
type Exec func(ctx context.Context, dir, name string, args ...string) ([]byte, error)

// ExecCommand is the Exec backed by os/exec. Standard error is discarded.
func ExecCommand(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stderr = io.Discard
	return cmd.Output()
}

// Lister shells out to the just binary.
type Lister struct {
	Binary string
	Exec   Exec
	Log    *log.Logger
}

// NewLister returns a Lister for binary using os/exec.
func NewLister(binary string, logger *log.Logger) *Lister {
	return &Lister{Binary: binary, Exec: ExecCommand, Log: logger}
}

// ListArgs builds the arguments for an undecorated, unsorted listing.
// An empty justfile selects the default recipe file.
func ListArgs(justfile string) []string {
	var args []string
	if justfile != "" {
		args = append(args, "--justfile", justfile)
	}
	return append(args, "--list", "--unsorted", "--list-heading", "", "--list-prefix", "")
}

// List returns the raw listing for justfile (or the default recipe file).
// Failures are logged and produce an empty listing.
func (l *Lister) List(ctx context.Context, dir, justfile string) string {
	args := ListArgs(justfile)
	l.Log.Debug("listing recipes", "dir", dir, "cmd", l.Binary, "args", strings.Join(args, " "))
	out, err := l.Exec(ctx, dir, l.Binary, args...)
	if err != nil {
		l.Log.Warn("could not list recipes", "justfile", justfile, "err", err)
		return ""
	}
	return string(out)
}

// Version runs `just --version`. An error means the tool is unusable.
func (l *Lister) Version(ctx context.Context, dir string) (string, error) {
	out, err := l.Exec(ctx, dir, l.Binary, "--version")
	if err != nil {
		return "", fmt.Errorf("%s --version: %w", l.Binary, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Show returns the source of r as printed by `just --show`.
// Namespaced recipes are looked up in their own file.
func (l *Lister) Show(ctx context.Context, dir, ext string, r Recipe) (string, error) {
	var args []string
	name := r.Name
	if base, bare, ok := SplitName(r.Name); ok {
		file := r.SourceFile
		if file == "" {
			file = base + ext
		}
		args = append(args, "--justfile", file)
		name = bare
	}
	args = append(args, "--show", name)
	out, err := l.Exec(ctx, dir, l.Binary, args...)
	if err != nil {
		return "", fmt.Errorf("could not show recipe %s: %w", r.Name, err)
	}
	return string(out), nil
}
