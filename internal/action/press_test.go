package action

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// deferred is a handler whose completion the test controls.
type deferred struct {
	calls   atomic.Int32
	started chan struct{}
	release chan error
}

func newDeferred() *deferred {
	return &deferred{
		started: make(chan struct{}, 8),
		release: make(chan error, 1),
	}
}

func (d *deferred) handle(ctx context.Context) error {
	d.calls.Add(1)
	d.started <- struct{}{}
	return <-d.release
}

func waitCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestNewPressStartsIdle(t *testing.T) {
	p := NewPress(true)
	assert.Equal(t, Idle, p.State())
	assert.False(t, p.IsPending())
	assert.True(t, p.ShowsIndicator())
}

func TestActivateWithIndicatorTransitionsSynchronously(t *testing.T) {
	p := NewPress(true)
	d := newDeferred()

	c := p.Activate(context.Background(), NewEvent(), d.handle)
	assert.True(t, p.IsPending(), "press must be pending before the handler settles")

	<-d.started
	select {
	case <-c.Done():
		t.Fatal("completion resolved before the handler settled")
	default:
	}
	assert.True(t, p.IsPending())

	d.release <- nil
	require.NoError(t, c.Wait(waitCtx(t)))
	assert.False(t, p.IsPending())
	assert.Equal(t, int32(1), d.calls.Load())
}

func TestActivateWhilePendingIsIgnored(t *testing.T) {
	p := NewPress(true)
	d := newDeferred()

	first := p.Activate(context.Background(), NewEvent(), d.handle)
	<-d.started

	ev := NewEvent()
	second := p.Activate(context.Background(), ev, d.handle)
	assert.True(t, second.Ignored())
	assert.NoError(t, second.Wait(waitCtx(t)))
	assert.True(t, ev.DefaultPrevented(), "ignored activations are still suppressed")
	assert.True(t, ev.PropagationStopped())

	d.release <- nil
	require.NoError(t, first.Wait(waitCtx(t)))
	assert.Equal(t, int32(1), d.calls.Load())

	// Back to Idle, a new activation runs again.
	third := p.Activate(context.Background(), NewEvent(), d.handle)
	<-d.started
	d.release <- nil
	require.NoError(t, third.Wait(waitCtx(t)))
	assert.Equal(t, int32(2), d.calls.Load())
}

func TestActivateWithoutIndicatorStaysIdleButAwaitsHandler(t *testing.T) {
	p := NewPress(false)
	d := newDeferred()
	var finished atomic.Bool

	c := p.Activate(context.Background(), NewEvent(), func(ctx context.Context) error {
		err := d.handle(ctx)
		finished.Store(true)
		return err
	})
	assert.False(t, p.IsPending())

	<-d.started
	assert.False(t, p.IsPending())
	select {
	case <-c.Done():
		t.Fatal("completion resolved before the handler settled")
	default:
	}

	d.release <- nil
	require.NoError(t, c.Wait(waitCtx(t)))
	assert.True(t, finished.Load())
	assert.False(t, c.Ignored())
}

func TestActivateFailureReturnsToIdle(t *testing.T) {
	p := NewPress(true)
	d := newDeferred()
	boom := errors.New("boom")

	c := p.Activate(context.Background(), NewEvent(), d.handle)
	<-d.started
	d.release <- boom

	err := c.Wait(waitCtx(t))
	require.ErrorIs(t, err, boom)
	assert.ErrorIs(t, c.Err(), boom)
	assert.False(t, p.IsPending(), "a failed handler must not leave the control disabled")
}

func TestActivateRecoversHandlerPanic(t *testing.T) {
	p := NewPress(true)

	c := p.Activate(context.Background(), NewEvent(), func(context.Context) error {
		panic("kaboom")
	})

	err := c.Wait(waitCtx(t))
	require.ErrorIs(t, err, ErrHandlerPanic)
	assert.Contains(t, err.Error(), "kaboom")
	assert.False(t, p.IsPending())
}

func TestActivateWithNilHandlerSuppressesEvent(t *testing.T) {
	for _, indicator := range []bool{true, false} {
		p := NewPress(indicator)
		ev := NewEvent()

		c := p.Activate(context.Background(), ev, nil)
		require.NoError(t, c.Wait(waitCtx(t)))
		assert.True(t, ev.DefaultPrevented())
		assert.True(t, ev.PropagationStopped())
		assert.False(t, p.IsPending())
	}
}

func TestBeginAndSettle(t *testing.T) {
	p := NewPress(true)

	assert.True(t, p.Begin(nil), "a nil event is accepted")
	assert.Equal(t, Pending, p.State())
	assert.False(t, p.Begin(NewEvent()))

	p.Settle()
	assert.Equal(t, Idle, p.State())

	assert.True(t, p.Begin(NewEvent()))
	p.Reset()
	assert.Equal(t, Idle, p.State())
}

func TestSetShowsIndicator(t *testing.T) {
	p := NewPress(false)
	assert.True(t, p.Begin(NewEvent()))
	assert.Equal(t, Idle, p.State())

	p.SetShowsIndicator(true)
	assert.True(t, p.Begin(NewEvent()))
	assert.Equal(t, Pending, p.State())
}

func TestWaitHonoursContext(t *testing.T) {
	p := NewPress(true)
	d := newDeferred()

	c := p.Activate(context.Background(), NewEvent(), d.handle)
	<-d.started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, c.Wait(ctx), context.Canceled)
	assert.NoError(t, c.Err(), "Err is empty until the handler settles")

	d.release <- nil
	require.NoError(t, c.Wait(waitCtx(t)))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "pending", Pending.String())
	assert.Equal(t, "state(7)", State(7).String())
}
