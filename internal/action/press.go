// Package action implements the guarded press cycle shared by pressable
// controls: an activation runs its handler exactly once, and a control that
// shows a pending indicator ignores further activations until the handler
// settles.
package action

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// State is the press state of a single control.
type State int

const (
	// Idle accepts activations.
	Idle State = iota
	// Pending ignores activations until the in-flight handler settles.
	Pending
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Handler is the work bound to a press. A nil Handler is valid and does nothing.
type Handler func(ctx context.Context) error

// ErrHandlerPanic wraps a panic recovered from a Handler.
var ErrHandlerPanic = errors.New("press handler panicked")

// Press holds the pending state of one control instance.
type Press struct {
	mu             sync.Mutex
	state          State
	showsIndicator bool
}

// NewPress returns an Idle press. When showsPendingIndicator is false the
// press never enters Pending.
func NewPress(showsPendingIndicator bool) *Press {
	return &Press{showsIndicator: showsPendingIndicator}
}

// ShowsIndicator reports whether activations move the press to Pending.
func (p *Press) ShowsIndicator() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.showsIndicator
}

// SetShowsIndicator changes the indicator flag for later activations.
func (p *Press) SetShowsIndicator(show bool) {
	p.mu.Lock()
	p.showsIndicator = show
	p.mu.Unlock()
}

// State returns the current state.
func (p *Press) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// IsPending reports whether a handler is in flight behind the indicator.
func (p *Press) IsPending() bool {
	return p.State() == Pending
}

// Reset returns the press to Idle, as on mount.
func (p *Press) Reset() {
	p.mu.Lock()
	p.state = Idle
	p.mu.Unlock()
}

// Begin starts an activation cycle. The event is suppressed whatever the
// outcome. It returns false when the press is Pending and the activation
// must be ignored.
func (p *Press) Begin(ev *Event) bool {
	ev.Suppress()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == Pending {
		return false
	}
	if p.showsIndicator {
		p.state = Pending
	}
	return true
}

// Settle ends the current activation cycle.
func (p *Press) Settle() {
	p.mu.Lock()
	p.state = Idle
	p.mu.Unlock()
}

// Activate runs a full cycle: Begin synchronously, then h on its own
// goroutine, then Settle. The returned Completion resolves with h's error
// once the press is back to Idle.
func (p *Press) Activate(ctx context.Context, ev *Event, h Handler) *Completion {
	c := newCompletion()
	if !p.Begin(ev) {
		c.ignored = true
		close(c.done)
		return c
	}

	go func() {
		err := Run(ctx, h)
		p.Settle()
		c.resolve(err)
	}()
	return c
}

// Run invokes h, converting a panic into an error wrapping ErrHandlerPanic.
func Run(ctx context.Context, h Handler) (err error) {
	if h == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrHandlerPanic, r)
		}
	}()
	return h(ctx)
}
