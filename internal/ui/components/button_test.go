package components

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/threadkit/internal/action"
)

var enterKey = tea.KeyMsg{Type: tea.KeyEnter}

// gate is a handler that blocks until released and counts its calls.
type gate struct {
	calls   atomic.Int32
	release chan struct{}
	err     error
}

func newGate() *gate {
	return &gate{release: make(chan struct{})}
}

func (g *gate) handle(ctx context.Context) error {
	g.calls.Add(1)
	select {
	case <-g.release:
		return g.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func waitCompletion(t *testing.T, c *action.Completion) error {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	err := c.Wait(ctx)
	require.NotErrorIs(t, err, context.DeadlineExceeded, "completion did not resolve")
	return err
}

func TestNewButtonDefaults(t *testing.T) {
	b := NewButton("Save")

	assert.Equal(t, ButtonPrimary, b.Type())
	assert.Equal(t, "Save", b.Label())
	assert.Equal(t, action.Idle, b.State())
	assert.False(t, b.Focused())
	assert.NotEmpty(t, b.ID())
	assert.NotEqual(t, b.ID(), NewButton("Save").ID())
}

func TestButtonViewWithIcons(t *testing.T) {
	b := NewButton("Save").
		WithStartIcon(NewText("+")).
		WithEndIcon(NewText(">"))

	assert.Contains(t, b.View(), "+ Save >")
}

func TestButtonViewChildrenVerbatim(t *testing.T) {
	b := NewButtonWithChildren(NewText("["), NewText("ok"), NewText("]"))

	assert.Contains(t, b.View(), "[ok]")
}

func TestButtonViewOutlineHasBorder(t *testing.T) {
	view := NewButton("Follow").WithType(ButtonPrimaryOutline).View()

	assert.Contains(t, view, "╭")
	assert.Contains(t, view, "Follow")
}

func TestButtonPressPendingRendering(t *testing.T) {
	g := newGate()
	b := NewButton("Save").
		WithStartIcon(NewText("+")).
		WithEndIcon(NewText(">")).
		WithHandler(g.handle).
		WithPendingIndicator(true)

	c := b.Press(context.Background(), action.NewEvent())
	require.True(t, b.IsPending(), "press must be pending before Press returns")

	view := b.View()
	assert.Contains(t, view, "⠋ Save")
	assert.NotContains(t, view, "+")
	assert.NotContains(t, view, ">")

	close(g.release)
	require.NoError(t, waitCompletion(t, c))

	assert.False(t, b.IsPending())
	assert.Contains(t, b.View(), "+ Save >")
	assert.Equal(t, int32(1), g.calls.Load())
}

func TestButtonPressIgnoredWhilePending(t *testing.T) {
	g := newGate()
	b := NewButton("Save").WithHandler(g.handle).WithPendingIndicator(true)

	first := b.Press(context.Background(), nil)
	ev := action.NewEvent()
	second := b.Press(context.Background(), ev)

	assert.True(t, second.Ignored())
	assert.True(t, ev.PropagationStopped(), "ignored activation is still suppressed")

	close(g.release)
	require.NoError(t, waitCompletion(t, first))
	assert.Equal(t, int32(1), g.calls.Load())
}

func TestButtonPressWithoutIndicatorStaysIdle(t *testing.T) {
	g := newGate()
	g.err = errors.New("boom")
	b := NewButton("Save").WithHandler(g.handle)

	c := b.Press(context.Background(), nil)
	assert.Equal(t, action.Idle, b.State())
	assert.NotContains(t, b.View(), "⠋")

	close(g.release)
	assert.EqualError(t, waitCompletion(t, c), "boom")
	assert.Equal(t, action.Idle, b.State())
}

func TestButtonUpdateIgnoresKeysWhenBlurred(t *testing.T) {
	g := newGate()
	b := NewButton("Save").WithHandler(g.handle).WithPendingIndicator(true)

	assert.Nil(t, b.Update(enterKey))
	assert.False(t, b.IsPending())
}

func TestButtonUpdateCycle(t *testing.T) {
	var calls atomic.Int32
	b := NewButton("Reload").
		WithPendingIndicator(true).
		WithHandler(func(context.Context) error {
			calls.Add(1)
			return nil
		})
	b.Focus()

	cmd := b.Update(enterKey)
	require.NotNil(t, cmd)
	assert.True(t, b.IsPending(), "update must enter pending synchronously")
	assert.Equal(t, int32(0), calls.Load(), "handler runs in the command, not in Update")

	assert.Nil(t, b.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}), "activation while pending is ignored")

	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)

	var settled *ButtonSettledMsg
	var tick *spinner.TickMsg
	for _, c := range batch {
		switch msg := c().(type) {
		case ButtonSettledMsg:
			settled = &msg
		case spinner.TickMsg:
			tick = &msg
		}
	}
	require.NotNil(t, settled)
	require.NotNil(t, tick)
	assert.Equal(t, b.ID(), settled.ID)
	assert.NoError(t, settled.Err)
	assert.Equal(t, int32(1), calls.Load())

	assert.NotNil(t, b.Update(*tick), "spinner keeps ticking while pending")

	b.Update(ButtonSettledMsg{ID: "other"})
	assert.True(t, b.IsPending(), "settle for another button is ignored")

	b.Update(*settled)
	assert.False(t, b.IsPending())
	assert.Nil(t, b.Update(*tick), "spinner stops once idle")
}

func TestButtonTriggerWithoutIndicator(t *testing.T) {
	b := NewButton("Like").WithHandler(func(context.Context) error {
		return errors.New("offline")
	})

	cmd := b.Trigger(context.Background(), nil)
	require.NotNil(t, cmd)
	assert.False(t, b.IsPending())

	msg, ok := cmd().(ButtonSettledMsg)
	require.True(t, ok)
	assert.EqualError(t, msg.Err, "offline")
}

func TestButtonTriggerRecoversPanic(t *testing.T) {
	b := NewButton("Crash").
		WithPendingIndicator(true).
		WithHandler(func(context.Context) error { panic("bad handler") })

	cmd := b.Trigger(context.Background(), nil)
	require.NotNil(t, cmd)

	for _, c := range cmd().(tea.BatchMsg) {
		if msg, ok := c().(ButtonSettledMsg); ok {
			assert.ErrorIs(t, msg.Err, action.ErrHandlerPanic)
			b.Update(msg)
		}
	}
	assert.False(t, b.IsPending())
}

func TestButtonReset(t *testing.T) {
	g := newGate()
	b := NewButton("Save").WithHandler(g.handle).WithPendingIndicator(true)

	b.Press(context.Background(), nil)
	require.True(t, b.IsPending())

	b.Reset()
	assert.False(t, b.IsPending())
	close(g.release)
}
