package embed

import (
	"errors"
	"fmt"
	"log/slog"
)

// Widget creates player instances on a mount point.
type Widget interface {
	Mount(mountPoint, id string, vars PlayerVars) (Instance, error)
}

// Instance is one mounted player.
type Instance interface {
	State() WidgetState
	Stop()
	Destroy()
}

// Session owns at most one widget instance. Every Open tears down the
// previous instance and mounts on a fresh mount point so nothing from an
// earlier video leaks into the next one.
type Session struct {
	widget Widget
	vars   PlayerVars
	inst   Instance
	id     string
	mounts int
}

// NewSession creates a session that mounts through w with vars.
func NewSession(w Widget, vars PlayerVars) *Session {
	return &Session{widget: w, vars: vars}
}

// Open resolves raw and mounts a new instance for it. Unresolvable input
// returns ErrUnknownID and leaves any current instance alone. Widget
// failures are returned as is and never retried.
func (s *Session) Open(raw string) error {
	id, ok := ExtractID(raw)
	if !ok {
		slog.Debug("embed: no content id", "input", raw)
		return ErrUnknownID
	}

	s.teardown()
	s.mounts++
	inst, err := s.widget.Mount(s.MountPoint(), id, s.vars)
	if err != nil {
		slog.Warn("embed: mount failed", "id", id, "error", err)
		var we *WidgetError
		if errors.As(err, &we) {
			return err
		}
		return fmt.Errorf("mount %s: %w", id, err)
	}
	s.inst = inst
	s.id = id
	return nil
}

// Close stops and destroys the current instance.
func (s *Session) Close() {
	s.teardown()
}

// Active reports whether an instance is mounted.
func (s *Session) Active() bool { return s.inst != nil }

// VideoID returns the identifier of the mounted instance.
func (s *Session) VideoID() string { return s.id }

// State returns the mounted instance's state, or StateUnstarted.
func (s *Session) State() WidgetState {
	if s.inst == nil {
		return StateUnstarted
	}
	return s.inst.State()
}

// Vars returns the player parameters every mount uses.
func (s *Session) Vars() PlayerVars { return s.vars }

// MountPoint names the current mount point. It changes on every Open.
func (s *Session) MountPoint() string {
	return fmt.Sprintf("player-%d", s.mounts)
}

func (s *Session) teardown() {
	if s.inst == nil {
		return
	}
	s.inst.Stop()
	s.inst.Destroy()
	s.inst = nil
	s.id = ""
}
