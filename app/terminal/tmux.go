package terminal

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// Runner executes a tmux subcommand and returns its combined output.
type Runner func(ctx context.Context, args ...string) ([]byte, error)

// Tmux hosts every terminal as a detached tmux session.
type Tmux struct {
	Binary string
	Run    Runner
	Log    *log.Logger
	// Attached reports whether we run inside a tmux client, in which case
	// Show switches that client to the session.
	Attached bool
}

// NewTmux returns a Tmux host using the given tmux binary.
func NewTmux(binary string, logger *log.Logger) *Tmux {
	t := &Tmux{Binary: binary, Log: logger, Attached: os.Getenv("TMUX") != ""}
	t.Run = func(ctx context.Context, args ...string) ([]byte, error) {
		cmd := exec.CommandContext(ctx, t.Binary, args...)
		var out bytes.Buffer
		cmd.Stdout = &out
		cmd.Stderr = &out
		err := cmd.Run()
		if err != nil {
			return out.Bytes(), fmt.Errorf("tmux %s: %w (output: %s)", args[0], err, strings.TrimSpace(out.String()))
		}
		return out.Bytes(), nil
	}
	return t
}

// Available checks that tmux is installed and working.
func (t *Tmux) Available(ctx context.Context) error {
	if _, err := t.Run(ctx, "-V"); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// SessionName maps a terminal key onto a valid tmux target name.
func SessionName(key string) string {
	return strings.NewReplacer(".", "_", ":", "_").Replace(key)
}

// Open creates a detached session in dir. A session that already exists
// under the same name, left over from an earlier run, is adopted.
func (t *Tmux) Open(ctx context.Context, name, dir string) (Terminal, error) {
	s := &tmuxSession{host: t, name: SessionName(name)}
	if _, err := t.Run(ctx, "has-session", "-t", "="+s.name); err == nil {
		t.Log.Debug("adopting existing tmux session", "session", s.name)
		s.existing = true
		return s, nil
	}
	if _, err := t.Run(ctx, "new-session", "-d", "-s", s.name, "-c", dir); err != nil {
		return nil, fmt.Errorf("failed to create tmux session: %w", err)
	}
	return s, nil
}

// Live lists the names of all open tmux sessions. No running server means
// no sessions.
func (t *Tmux) Live(ctx context.Context) (map[string]bool, error) {
	out, err := t.Run(ctx, "list-sessions", "-F", "#{session_name}")
	live := make(map[string]bool)
	if err != nil {
		if strings.Contains(string(out), "no server running") || strings.Contains(string(out), "error connecting") {
			return live, nil
		}
		return nil, err
	}
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			live[line] = true
		}
	}
	return live, nil
}

type tmuxSession struct {
	host     *Tmux
	name     string
	existing bool
}

func (s *tmuxSession) Name() string { return s.name }

// Existing reports whether the session was already running when opened.
func (s *tmuxSession) Existing() bool { return s.existing }

func (s *tmuxSession) Show() error {
	if !s.host.Attached {
		s.host.Log.Info("recipe running in background session", "attach", "tmux attach -t "+s.name)
		return nil
	}
	_, err := s.host.Run(context.Background(), "switch-client", "-t", "="+s.name)
	return err
}

// SendText types text literally, then presses Enter.
func (s *tmuxSession) SendText(text string) error {
	ctx := context.Background()
	if _, err := s.host.Run(ctx, "send-keys", "-l", "-t", "="+s.name+":", "--", text); err != nil {
		return err
	}
	_, err := s.host.Run(ctx, "send-keys", "-t", "="+s.name+":", "Enter")
	return err
}

func (s *tmuxSession) Interrupt() error {
	_, err := s.host.Run(context.Background(), "send-keys", "-t", "="+s.name+":", "C-c")
	return err
}
