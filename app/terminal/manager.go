package terminal

import (
	"context"
	"fmt"
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Guerrilla-Interactive/justrun/app/recipe"
)

// ClearPrefix precedes the command sent to a reused terminal.
const ClearPrefix = "clear && "

// Result describes what Run did.
type Result struct {
	Key     string
	Command string
	Reused  bool
}

// Message is the notice shown to the user after a run.
func (r Result) Message() string {
	if r.Reused {
		return fmt.Sprintf("Reusing terminal '%s'", r.Key)
	}
	return fmt.Sprintf("Created new terminal '%s'", r.Key)
}

// Manager maps terminal keys to live sessions. It is owned by whoever drives
// the picker and is safe for concurrent use.
type Manager struct {
	Host      Host
	Binary    string
	Extension string
	// Delay between the interrupt and the clear+run text on reuse.
	Delay time.Duration
	// After schedules f once after d; defaults to time.AfterFunc.
	After func(d time.Duration, f func())
	Log   *log.Logger

	mu        sync.Mutex
	terminals map[string]Terminal
	pending   sync.WaitGroup
}

// NewManager returns an empty Manager.
func NewManager(host Host, binary, ext string, delay time.Duration, logger *log.Logger) *Manager {
	return &Manager{
		Host:      host,
		Binary:    binary,
		Extension: ext,
		Delay:     delay,
		Log:       logger,
		terminals: make(map[string]Terminal),
	}
}

// Run executes r in the terminal for its key, creating the terminal on first
// use. A reused terminal is interrupted first and the new command is sent
// after Delay; there is no acknowledgement that the interrupt landed.
// A terminal the host reports as already running is treated as reused.
func (m *Manager) Run(ctx context.Context, r recipe.Recipe, dir string) (Result, error) {
	command, key := Invocation(r, m.Binary, m.Extension)
	res := Result{Key: key, Command: command}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.terminals == nil {
		m.terminals = make(map[string]Terminal)
	}

	if t, ok := m.terminals[key]; ok {
		res.Reused = true
		return res, m.reuse(t, key, command)
	}

	t, err := m.Host.Open(ctx, key, dir)
	if err != nil {
		return res, fmt.Errorf("create terminal %s: %w", key, err)
	}
	m.terminals[key] = t
	if e, ok := t.(interface{ Existing() bool }); ok && e.Existing() {
		res.Reused = true
		return res, m.reuse(t, key, command)
	}

	if err := t.Show(); err != nil {
		m.Log.Warn("could not focus terminal", "key", key, "err", err)
	}
	if err := t.SendText(command); err != nil {
		return res, fmt.Errorf("send command to %s: %w", key, err)
	}
	m.Log.Debug("created terminal", "key", key, "cmd", command)
	return res, nil
}

func (m *Manager) reuse(t Terminal, key, command string) error {
	if err := t.Show(); err != nil {
		m.Log.Warn("could not focus terminal", "key", key, "err", err)
	}
	if err := t.Interrupt(); err != nil {
		return fmt.Errorf("interrupt terminal %s: %w", key, err)
	}
	m.pending.Add(1)
	m.after(m.Delay, func() {
		defer m.pending.Done()
		if err := t.SendText(ClearPrefix + command); err != nil {
			m.Log.Error("could not send command to reused terminal", "key", key, "err", err)
		}
	})
	m.Log.Debug("reused terminal", "key", key, "cmd", command)
	return nil
}

func (m *Manager) after(d time.Duration, f func()) {
	if m.After != nil {
		m.After(d, f)
		return
	}
	time.AfterFunc(d, f)
}

// Wait blocks until every deferred send has been delivered.
func (m *Manager) Wait() {
	m.pending.Wait()
}

// Get returns the terminal registered under key.
func (m *Manager) Get(key string) (Terminal, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.terminals[key]
	return t, ok
}

// Len reports how many terminals are registered.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.terminals)
}

// Forget drops the entry holding t, if any. Called when a session closes.
func (m *Manager) Forget(t Terminal) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, term := range m.terminals {
		if term == t {
			delete(m.terminals, key)
			return true
		}
	}
	return false
}

// Sweep forgets every terminal the host no longer reports as open and
// returns the removed keys. Only terminals registered before the host was
// asked are candidates, so a terminal opened meanwhile survives.
func (m *Manager) Sweep(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	known := maps.Clone(m.terminals)
	m.mu.Unlock()

	live, err := m.Host.Live(ctx)
	if err != nil {
		return nil, fmt.Errorf("list live terminals: %w", err)
	}

	var removed []string
	for key, t := range known {
		if !live[t.Name()] && m.Forget(t) {
			removed = append(removed, key)
		}
	}
	sort.Strings(removed)
	return removed, nil
}

// Clear forgets every terminal without closing any of them.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.terminals = make(map[string]Terminal)
}
