// Package terminal runs recipes in long-lived terminal sessions, one per
// recipe, reusing a session when the same recipe runs again.
package terminal

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when no terminal backend can be used.
var ErrUnavailable = errors.New("terminal backend unavailable")

// Terminal is a live interactive session that executes the text it is sent.
type Terminal interface {
	Name() string
	// Show brings the session to the foreground.
	Show() error
	// SendText types text into the session followed by Enter.
	SendText(text string) error
	// Interrupt sends Ctrl+C.
	Interrupt() error
}

// Host creates terminals and reports which ones are still open.
type Host interface {
	Open(ctx context.Context, name, dir string) (Terminal, error)
	Live(ctx context.Context) (map[string]bool, error)
}
