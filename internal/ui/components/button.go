package components

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/threadkit/internal/action"
	"github.com/alexisbeaulieu97/threadkit/internal/logger"
	"github.com/alexisbeaulieu97/threadkit/internal/ui"
)

// ButtonSettledMsg is delivered when the handler started by Trigger returns.
type ButtonSettledMsg struct {
	ID      string
	PressID string
	Err     error
}

// ButtonKeyMap holds the bindings a focused button reacts to.
type ButtonKeyMap struct {
	Press key.Binding
}

// DefaultButtonKeyMap presses on enter or space.
func DefaultButtonKeyMap() ButtonKeyMap {
	return ButtonKeyMap{
		Press: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "press"),
		),
	}
}

// Button is a themed, pressable control. Its handler runs once per
// accepted activation; with the pending indicator enabled the button shows
// a spinner and ignores activations until the handler returns.
type Button struct {
	BaseComponent
	id         string
	buttonType ButtonType
	label      string
	start      ui.Renderable
	end        ui.Renderable
	children   []ui.Renderable
	labelStyle lipgloss.Style
	handler    action.Handler
	press      *action.Press
	focused    bool
	spinner    spinner.Model
	keys       ButtonKeyMap
	log        *logger.Logger
}

// NewButton creates a primary button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		id:            uuid.NewString(),
		buttonType:    ButtonPrimary,
		label:         label,
		labelStyle:    lipgloss.NewStyle(),
		press:         action.NewPress(false),
		spinner:       spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		keys:          DefaultButtonKeyMap(),
	}
}

// NewButtonWithChildren creates an unlabelled button that renders children
// verbatim inside its container.
func NewButtonWithChildren(children ...ui.Renderable) *Button {
	b := NewButton("")
	b.children = children
	return b
}

// WithType sets the colour treatment.
func (b *Button) WithType(t ButtonType) *Button {
	b.buttonType = t
	return b
}

// WithStartIcon sets the decoration before the label.
func (b *Button) WithStartIcon(icon ui.Renderable) *Button {
	b.start = icon
	return b
}

// WithEndIcon sets the decoration after the label.
func (b *Button) WithEndIcon(icon ui.Renderable) *Button {
	b.end = icon
	return b
}

// WithHandler sets the work run on each accepted activation.
func (b *Button) WithHandler(h action.Handler) *Button {
	b.handler = h
	return b
}

// WithPendingIndicator enables the spinner and the pending guard.
func (b *Button) WithPendingIndicator(show bool) *Button {
	b.press.SetShowsIndicator(show)
	return b
}

// WithStyle overrides container style properties.
func (b *Button) WithStyle(style lipgloss.Style) *Button {
	b.SetStyle(style)
	return b
}

// WithLabelStyle overrides label style properties.
func (b *Button) WithLabelStyle(style lipgloss.Style) *Button {
	b.labelStyle = style
	return b
}

// WithKeyMap replaces the key bindings.
func (b *Button) WithKeyMap(keys ButtonKeyMap) *Button {
	b.keys = keys
	return b
}

// WithLogger attaches a logger for press lifecycle entries.
func (b *Button) WithLogger(log *logger.Logger) *Button {
	b.log = log.WithFields(map[string]any{"component": "button", "button_id": b.id})
	return b
}

// ID identifies the button in ButtonSettledMsg.
func (b *Button) ID() string { return b.id }

// Type returns the colour treatment.
func (b *Button) Type() ButtonType { return b.buttonType }

// Label returns the button label.
func (b *Button) Label() string { return b.label }

// IsPending reports whether a handler is in flight behind the indicator.
func (b *Button) IsPending() bool { return b.press.IsPending() }

// State returns the press state.
func (b *Button) State() action.State { return b.press.State() }

// Focus makes the button react to its key bindings.
func (b *Button) Focus() { b.focused = true }

// Blur stops the button reacting to its key bindings.
func (b *Button) Blur() { b.focused = false }

// Focused reports whether the button has focus.
func (b *Button) Focused() bool { return b.focused }

// Reset returns the button to Idle, as on mount.
func (b *Button) Reset() { b.press.Reset() }

// Press runs one activation outside a Bubble Tea program. The returned
// completion resolves after the handler returns and the button is Idle.
func (b *Button) Press(ctx context.Context, ev *action.Event) *action.Completion {
	pressID := uuid.NewString()
	c := b.press.Activate(ctx, ev, b.instrumented(pressID))
	if c.Ignored() {
		b.log.With("press_id", pressID).Debug("button press ignored while pending")
	} else {
		b.log.With("press_id", pressID).Debug("button press started")
	}
	return c
}

// Trigger begins an activation inside a Bubble Tea program. The press moves
// to Pending before Trigger returns; the returned command runs the handler
// and yields a ButtonSettledMsg, which Update uses to return to Idle. An
// ignored activation returns nil.
func (b *Button) Trigger(ctx context.Context, ev *action.Event) tea.Cmd {
	pressID := uuid.NewString()
	if !b.press.Begin(ev) {
		b.log.With("press_id", pressID).Debug("button press ignored while pending")
		return nil
	}
	b.log.With("press_id", pressID).Debug("button press started")

	id := b.id
	h := b.instrumented(pressID)
	run := func() tea.Msg {
		return ButtonSettledMsg{ID: id, PressID: pressID, Err: action.Run(ctx, h)}
	}
	if b.press.IsPending() {
		return tea.Batch(run, b.spinner.Tick)
	}
	return run
}

func (b *Button) instrumented(pressID string) action.Handler {
	h := b.handler
	log := b.log.With("press_id", pressID)
	return func(ctx context.Context) error {
		err := action.Run(ctx, h)
		if err != nil {
			log.Error(err, "button handler failed")
		} else {
			log.Debug("button handler settled")
		}
		return err
	}
}

// Update handles key presses while focused, the settle message of this
// button's own presses, and spinner ticks while pending.
func (b *Button) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !b.focused || !key.Matches(msg, b.keys.Press) {
			return nil
		}
		return b.Trigger(context.Background(), action.NewEvent())

	case ButtonSettledMsg:
		if msg.ID == b.id {
			b.press.Settle()
		}
		return nil

	case spinner.TickMsg:
		if !b.press.IsPending() {
			return nil
		}
		var cmd tea.Cmd
		b.spinner, cmd = b.spinner.Update(msg)
		return cmd
	}
	return nil
}

// View renders the button with the default context.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button. Styles are resolved from ctx.Theme on
// every call.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	outer := OuterStyle(b.buttonType, ctx.Theme)
	container := overlay(outer.Apply(buttonBaseStyle(), ctx.Theme), b.ComputeStyle(ctx.Theme))
	pending := b.press.IsPending()
	if pending {
		container = container.Faint(true)
	}
	if b.focused {
		container = container.Underline(true)
	}

	if b.label == "" {
		parts := make([]string, 0, len(b.children))
		for _, child := range b.children {
			if view := renderChild(child, ctx); view != "" {
				parts = append(parts, view)
			}
		}
		return container.Render(lipgloss.JoinHorizontal(lipgloss.Center, parts...))
	}

	label := LabelStyle(b.buttonType, ctx.Theme)
	labelStyle := b.labelStyle.Inherit(label.Apply(lipgloss.NewStyle().Background(outer.Background)))

	parts := make([]string, 0, 4)
	if b.start != nil && !pending {
		parts = append(parts, renderChild(b.start, ctx))
	}
	if pending && b.press.ShowsIndicator() {
		spin := b.spinner
		spin.Style = lipgloss.NewStyle().Foreground(label.Color).Background(outer.Background)
		parts = append(parts, spin.View())
	}
	parts = append(parts, labelStyle.Render(b.label))
	if b.end != nil && !pending {
		parts = append(parts, renderChild(b.end, ctx))
	}

	return container.Render(strings.Join(parts, " "))
}

func buttonBaseStyle() lipgloss.Style {
	return lipgloss.NewStyle().Padding(0, 2)
}

// overlay lays the explicitly set properties of override over base.
// lipgloss does not inherit padding, so base padding is carried over unless
// override sets its own.
func overlay(base, override lipgloss.Style) lipgloss.Style {
	merged := override.Inherit(base)
	if top, right, bottom, left := override.GetPadding(); top+right+bottom+left == 0 {
		merged = merged.Padding(base.GetPadding())
	}
	return merged
}
