package recipe

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Aggregator merges the primary justfile's recipes with those of every
// auxiliary recipe file in the workspace root.
type Aggregator struct {
	Lister    *Lister
	Extension string
	Log       *log.Logger
	// ReadDir defaults to os.ReadDir.
	ReadDir func(string) ([]os.DirEntry, error)
}

// Collect lists the primary file first, then each auxiliary file in
// directory order. Auxiliary recipes are renamed base::name.
func (a *Aggregator) Collect(ctx context.Context, root string) []Recipe {
	all := ParseListing(a.Lister.List(ctx, root, ""))

	readDir := a.ReadDir
	if readDir == nil {
		readDir = os.ReadDir
	}
	entries, err := readDir(root)
	if err != nil {
		a.Log.Warn("could not read workspace for recipe files", "dir", root, "err", err)
		return all
	}

	for _, e := range entries {
		file := e.Name()
		if e.IsDir() || !strings.HasSuffix(file, a.Extension) {
			continue
		}
		base := strings.TrimSuffix(file, a.Extension)
		for _, r := range ParseListing(a.Lister.List(ctx, root, filepath.Join(root, file))) {
			r.Name = Namespace(base, r.Name)
			r.SourceFile = file
			all = append(all, r)
		}
	}
	return all
}
