package terminal

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guerrilla-Interactive/justrun/app/recipe"
	"github.com/Guerrilla-Interactive/justrun/internal/logging"
)

type tmuxRecorder struct {
	calls   []string
	replies map[string]string
	fail    map[string]bool
}

func (r *tmuxRecorder) run(_ context.Context, args ...string) ([]byte, error) {
	r.calls = append(r.calls, strings.Join(args, " "))
	out := r.replies[args[0]]
	if r.fail[args[0]] {
		return []byte(out), errors.New("exit status 1")
	}
	return []byte(out), nil
}

func newTestTmux(rec *tmuxRecorder, attached bool) *Tmux {
	return &Tmux{Binary: "tmux", Run: rec.run, Log: logging.NewNop(), Attached: attached}
}

func TestTmuxOpenAndSend(t *testing.T) {
	rec := &tmuxRecorder{fail: map[string]bool{"has-session": true}}
	host := newTestTmux(rec, false)

	term, err := host.Open(context.Background(), "just-ci-lint", "/work")
	require.NoError(t, err)
	require.NoError(t, term.Show())
	require.NoError(t, term.SendText("just --justfile ci.just lint"))
	require.NoError(t, term.Interrupt())

	assert.Equal(t, []string{
		"has-session -t =just-ci-lint",
		"new-session -d -s just-ci-lint -c /work",
		"send-keys -l -t =just-ci-lint: -- just --justfile ci.just lint",
		"send-keys -t =just-ci-lint: Enter",
		"send-keys -t =just-ci-lint: C-c",
	}, rec.calls)
}

func TestTmuxAdoptsExistingSession(t *testing.T) {
	rec := &tmuxRecorder{}
	host := newTestTmux(rec, true)

	term, err := host.Open(context.Background(), "just-build", "/work")
	require.NoError(t, err)
	require.NoError(t, term.Show())
	assert.Equal(t, []string{
		"has-session -t =just-build",
		"switch-client -t =just-build",
	}, rec.calls)
}

func TestTmuxSessionName(t *testing.T) {
	assert.Equal(t, "just-my_tools-lint", SessionName("just-my.tools-lint"))
	assert.Equal(t, "just-a_b", SessionName("just-a:b"))
}

func TestTmuxLive(t *testing.T) {
	rec := &tmuxRecorder{replies: map[string]string{"list-sessions": "just-build\nwork\n"}}
	live, err := newTestTmux(rec, false).Live(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"just-build": true, "work": true}, live)

	rec = &tmuxRecorder{
		replies: map[string]string{"list-sessions": "no server running on /tmp/tmux-1000/default"},
		fail:    map[string]bool{"list-sessions": true},
	}
	live, err = newTestTmux(rec, false).Live(context.Background())
	require.NoError(t, err)
	assert.Empty(t, live)
}

func TestTmuxAvailable(t *testing.T) {
	rec := &tmuxRecorder{fail: map[string]bool{"-V": true}}
	err := newTestTmux(rec, false).Available(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestManagerReusesAdoptedSession(t *testing.T) {
	rec := &tmuxRecorder{}
	host := newTestTmux(rec, false)
	m := NewManager(host, "just", ".just", 0, logging.NewNop())
	m.After = func(_ time.Duration, f func()) { f() }

	res, err := m.Run(context.Background(), recipe.Recipe{Name: "build"}, "/work")
	require.NoError(t, err)
	m.Wait()
	assert.True(t, res.Reused)
	assert.Equal(t, []string{
		"has-session -t =just-build",
		"send-keys -t =just-build: C-c",
		"send-keys -l -t =just-build: -- clear && just build",
		"send-keys -t =just-build: Enter",
	}, rec.calls)
}
