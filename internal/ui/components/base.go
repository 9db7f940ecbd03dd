package components

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/threadkit/internal/format"
	"github.com/alexisbeaulieu97/threadkit/internal/ui"
)

// BaseComponent provides common functionality for all components.
// Embed this in your component structs to get standard behavior.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// StyleStrategy defines how styling should be applied to a component.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc is a function that applies styling transformations to a lipgloss.Style
// using data from a Theme.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// Apply lets a single StyleFunc act as a StyleStrategy.
func (fn StyleFunc) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	return fn(base, theme)
}

// CompositeStrategy applies multiple StyleFunc in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// NewBaseComponent creates a new base component with default styling.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle returns the style for this component under theme. Strategies
// run on every call so a theme change is picked up on the next render.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetAppliers sets the style strategy from style functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// Constraints defines sizing constraints for layout calculations.
type Constraints struct {
	MinWidth int
	MaxWidth int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{MinWidth: 0, MaxWidth: -1}
}

// WithMaxWidth creates constraints with a maximum width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MinWidth: 0, MaxWidth: maxWidth}
}

// RenderContext carries everything a component reads while rendering: the
// theme, layout constraints, the clock used for relative timestamps and the
// text formatter. Components never cache anything derived from it.
type RenderContext struct {
	Theme       Theme
	Constraints Constraints
	Now         time.Time
	Clock       func() time.Time
	Format      format.Formatter
}

// DefaultContext returns a render context with the default theme, no
// constraints, the wall clock and the default formatter.
func DefaultContext() RenderContext {
	return RenderContext{
		Theme:       DefaultTheme(),
		Constraints: Unconstrained(),
		Format:      format.DefaultFormatter(),
	}
}

// WithTheme returns a new context with the specified theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithConstraints returns a new context with the given constraints.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// WithNow pins the clock used for relative timestamps.
func (r RenderContext) WithNow(now time.Time) RenderContext {
	r.Now = now
	return r
}

// WithClock sets the clock read on every render when Now is not pinned.
func (r RenderContext) WithClock(clock func() time.Time) RenderContext {
	r.Clock = clock
	return r
}

// WithFormat returns a new context with the given formatter.
func (r RenderContext) WithFormat(f format.Formatter) RenderContext {
	r.Format = f
	return r
}

func (r RenderContext) now() time.Time {
	switch {
	case !r.Now.IsZero():
		return r.Now
	case r.Clock != nil:
		return r.Clock()
	default:
		return time.Now()
	}
}

// ContextualRenderable is a component that can receive layout context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

func renderChild(child ui.Renderable, ctx RenderContext) string {
	if child == nil {
		return ""
	}
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}

// staticView adapts an already rendered string to ui.Renderable.
type staticView string

func (s staticView) View() string { return string(s) }
