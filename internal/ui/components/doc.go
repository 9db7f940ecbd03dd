// Package components provides the theme-aware terminal components used to
// render a thread: the post item, the action button and the small layout
// primitives they are built from.
//
// # Theme System
//
// Themes are immutable values passed explicitly through RenderContext, so
// there is no global state:
//
//	ctx := components.DefaultContext().WithTheme(components.DarkTheme())
//	output := item.ViewWithContext(ctx)
//
// For simple cases, View() uses the default theme automatically:
//
//	output := item.View()
//
// Every style a component uses is derived from the context on each render.
// Swapping the theme in the context is enough to restyle a whole tree.
//
// # Button Types
//
// A Button's colour treatment is one of nine ButtonType values. OuterStyle
// and LabelStyle resolve a type against a theme palette through tables
// indexed by ButtonType; adding a type without extending both tables does
// not compile.
//
// # Pending Indicator
//
// Buttons created with WithPendingIndicator(true) enter a pending state
// when pressed. While pending they render a spinner in place of their icons
// and ignore further presses until their handler settles. Inside a Bubble
// Tea program use Update or Trigger; elsewhere use Press.
//
// # Composition
//
// Components compose through the ui.Renderable interface:
//
//	content := VStack(
//		NewPostItem(focal, nav),
//		NewButton("Load more").WithPendingIndicator(true),
//	).WithGap(1)
//
// # Deterministic Rendering
//
// Relative timestamps are measured from RenderContext.Now when it is set,
// so the same component with the same context always produces the same
// output.
package components
