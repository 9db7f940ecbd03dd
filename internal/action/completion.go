package action

import "context"

// Completion is the outcome of one Activate call.
type Completion struct {
	done    chan struct{}
	err     error
	ignored bool
}

func newCompletion() *Completion {
	return &Completion{done: make(chan struct{})}
}

func (c *Completion) resolve(err error) {
	c.err = err
	close(c.done)
}

// Done is closed once the handler has settled, or immediately for an
// ignored activation.
func (c *Completion) Done() <-chan struct{} {
	return c.done
}

// Err returns the handler's error. Only meaningful after Done is closed.
func (c *Completion) Err() error {
	select {
	case <-c.done:
		return c.err
	default:
		return nil
	}
}

// Ignored reports whether the activation arrived while the press was Pending.
func (c *Completion) Ignored() bool {
	return c.ignored
}

// Wait blocks until the handler settles or ctx is done.
func (c *Completion) Wait(ctx context.Context) error {
	select {
	case <-c.done:
		return c.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
