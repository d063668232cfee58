package recipe

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guerrilla-Interactive/justrun/internal/logging"
)

// fakeJust answers listings keyed by the --justfile argument ("" for default).
type fakeJust struct {
	listings map[string]string
	failing  map[string]bool
	calls    [][]string
}

func (f *fakeJust) exec(_ context.Context, _ string, _ string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, args)
	file := ""
	if len(args) > 1 && args[0] == "--justfile" {
		file = filepath.Base(args[1])
	}
	if f.failing[file] {
		return nil, errors.New("exit status 1")
	}
	return []byte(f.listings[file]), nil
}

func newTestAggregator(fake *fakeJust) *Aggregator {
	l := &Lister{Binary: "just", Exec: fake.exec, Log: logging.NewNop()}
	return &Aggregator{Lister: l, Extension: ".just", Log: logging.NewNop()}
}

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), nil, 0o600))
	}
}

func TestListArgs(t *testing.T) {
	assert.Equal(t,
		[]string{"--list", "--unsorted", "--list-heading", "", "--list-prefix", ""},
		ListArgs(""))
	assert.Equal(t,
		[]string{"--justfile", "/w/ci.just", "--list", "--unsorted", "--list-heading", "", "--list-prefix", ""},
		ListArgs("/w/ci.just"))
}

func TestListFailureIsEmpty(t *testing.T) {
	fake := &fakeJust{failing: map[string]bool{"": true}}
	agg := newTestAggregator(fake)
	assert.Equal(t, "", agg.Lister.List(context.Background(), t.TempDir(), ""))
}

func TestCollectEndToEnd(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "justfile", "ci.just")
	fake := &fakeJust{listings: map[string]string{
		"":        "test  # run tests\n",
		"ci.just": "lint\n",
	}}

	got := newTestAggregator(fake).Collect(context.Background(), root)
	assert.Equal(t, []Recipe{
		{Name: "test", Description: "run tests"},
		{Name: "ci::lint", SourceFile: "ci.just"},
	}, got)
	require.Len(t, fake.calls, 2)
	assert.Equal(t, filepath.Join(root, "ci.just"), fake.calls[1][1])
}

func TestCollectOrderAndNamespacing(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "b.just", "a.just", "notes.txt", "deploy.just")
	require.NoError(t, os.Mkdir(filepath.Join(root, "dir.just"), 0o750))
	fake := &fakeJust{listings: map[string]string{
		"":            "fmt\n",
		"a.just":      "one # first\ntwo\n",
		"b.just":      "three\n",
		"deploy.just": "build\n",
	}}

	got := newTestAggregator(fake).Collect(context.Background(), root)
	names := make([]string, len(got))
	for i, r := range got {
		names[i] = r.Name
		if i > 0 {
			assert.Contains(t, r.Name, Separator)
			assert.True(t, strings.HasSuffix(r.SourceFile, ".just"))
		}
	}
	assert.Equal(t, []string{"fmt", "a::one", "a::two", "b::three", "deploy::build"}, names)
	assert.Equal(t, Recipe{Name: "deploy::build", SourceFile: "deploy.just"}, got[4])
	assert.Empty(t, got[0].SourceFile)
}

func TestCollectSkipsFailingFile(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "bad.just", "good.just")
	fake := &fakeJust{
		listings: map[string]string{"good.just": "ok\n"},
		failing:  map[string]bool{"": true, "bad.just": true},
	}

	got := newTestAggregator(fake).Collect(context.Background(), root)
	assert.Equal(t, []Recipe{{Name: "good::ok", SourceFile: "good.just"}}, got)
}

func TestCollectReadDirFailureKeepsPrimary(t *testing.T) {
	fake := &fakeJust{listings: map[string]string{"": "test\n"}}
	agg := newTestAggregator(fake)
	agg.ReadDir = func(string) ([]os.DirEntry, error) { return nil, errors.New("permission denied") }

	got := agg.Collect(context.Background(), "/nowhere")
	assert.Equal(t, []Recipe{{Name: "test"}}, got)
}

func TestVersionAndShow(t *testing.T) {
	var gotArgs []string
	l := &Lister{Binary: "just", Log: logging.NewNop(), Exec: func(_ context.Context, _, _ string, args ...string) ([]byte, error) {
		gotArgs = args
		if args[0] == "--version" {
			return []byte("just 1.36.0\n"), nil
		}
		return []byte("build:\n    go build ./...\n"), nil
	}}

	v, err := l.Version(context.Background(), "/w")
	require.NoError(t, err)
	assert.Equal(t, "just 1.36.0", v)

	_, err = l.Show(context.Background(), "/w", ".just", Recipe{Name: "deploy::build", SourceFile: "deploy.just"})
	require.NoError(t, err)
	assert.Equal(t, []string{"--justfile", "deploy.just", "--show", "build"}, gotArgs)

	_, err = l.Show(context.Background(), "/w", ".just", Recipe{Name: "build"})
	require.NoError(t, err)
	assert.Equal(t, []string{"--show", "build"}, gotArgs)
}
