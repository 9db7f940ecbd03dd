// Package thread is an interactive Bubble Tea browser for a single thread:
// it lists post items, opens the selected post and reloads the thread
// behind a pending-indicator button.
package thread

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/threadkit/internal/logger"
	"github.com/alexisbeaulieu97/threadkit/internal/post"
	"github.com/alexisbeaulieu97/threadkit/internal/ui/components"
)

// Options configures a Model.
type Options struct {
	Title   string
	Posts   []post.Post
	Reload  ReloadFunc
	Context components.RenderContext
	Logger  *logger.Logger
	// Navigate is called for every NavigateMsg the browser handles.
	Navigate components.Navigator
}

// Model is the thread browser model
type Model struct {
	// Core data
	title string
	posts []post.Post

	// UI state
	cursor       int
	scrollOffset int
	focus        Focus
	lastNav      *NavigateMsg

	// Components
	reload   *components.Button
	reloaded *reloadBuffer
	keys     KeyMap
	help     help.Model
	styles   styles

	// Error state
	showError bool
	errorMsg  string

	// Dimensions
	width  int
	height int

	// Collaborators
	render   components.RenderContext
	navigate components.Navigator
	log      *logger.Logger
}

// New creates a browser for opts.Posts.
func New(opts Options) Model {
	render := opts.Context
	if render.Theme.Name == "" {
		render = render.WithTheme(components.DefaultTheme())
	}
	if render.Format.Plurals == nil && render.Format.Times == nil {
		render.Format = components.DefaultContext().Format
	}

	title := opts.Title
	if title == "" {
		title = "Thread"
	}

	m := Model{
		title:    title,
		posts:    opts.Posts,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		styles:   newStyles(render.Theme),
		render:   render,
		navigate: opts.Navigate,
		log:      opts.Logger.WithFields(map[string]any{"component": "thread_browser"}),
		width:    80,
		height:   24,
	}

	if opts.Reload != nil {
		m.reloaded = &reloadBuffer{}
		m.reload = components.NewButton("Reload").
			WithType(components.ButtonPrimaryOutline).
			WithPendingIndicator(true).
			WithHandler(reloadHandler(opts.Reload, m.reloaded)).
			WithLogger(opts.Logger)
	}

	m.cursor = m.focalIndex()
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Helper Methods

// focalIndex returns the index of the focal post, or 0.
func (m *Model) focalIndex() int {
	for i, p := range m.posts {
		if p.IsFocal {
			return i
		}
	}
	return 0
}

// Posts returns the posts being browsed.
func (m *Model) Posts() []post.Post {
	return m.posts
}

// Cursor returns the index of the selected post.
func (m *Model) Cursor() int {
	return m.cursor
}

// Focus returns the pane receiving keys.
func (m *Model) Focus() Focus {
	return m.focus
}

// LastNavigation returns the most recent navigation, if any.
func (m *Model) LastNavigation() (NavigateMsg, bool) {
	if m.lastNav == nil {
		return NavigateMsg{}, false
	}
	return *m.lastNav, true
}

// ReloadButton returns the reload button, or nil without a reload func.
func (m *Model) ReloadButton() *components.Button {
	return m.reload
}

// GetSelectedPost returns the post under the cursor.
func (m *Model) GetSelectedPost() (post.Post, bool) {
	if m.cursor < 0 || m.cursor >= len(m.posts) {
		return post.Post{}, false
	}
	return m.posts[m.cursor], true
}

// MoveCursorUp moves cursor up with wrapping
func (m *Model) MoveCursorUp() {
	if len(m.posts) == 0 {
		return
	}
	m.cursor--
	if m.cursor < 0 {
		m.cursor = len(m.posts) - 1
	}
	m.ensureCursorVisible()
}

// MoveCursorDown moves cursor down with wrapping
func (m *Model) MoveCursorDown() {
	if len(m.posts) == 0 {
		return
	}
	m.cursor++
	if m.cursor >= len(m.posts) {
		m.cursor = 0
	}
	m.ensureCursorVisible()
}

// setPosts replaces the thread, keeping the cursor in range.
func (m *Model) setPosts(posts []post.Post) {
	m.posts = posts
	if m.cursor >= len(m.posts) {
		m.cursor = m.focalIndex()
	}
	m.scrollOffset = 0
	m.ensureCursorVisible()
}

// toggleFocus moves keyboard focus between the list and the reload button.
func (m *Model) toggleFocus() {
	if m.reload == nil {
		return
	}
	if m.focus == FocusList {
		m.focus = FocusReload
		m.reload.Focus()
		return
	}
	m.focus = FocusList
	m.reload.Blur()
}

// listHeight is the number of rows available to post items.
func (m *Model) listHeight() int {
	const chrome = 9 // header, button, status line and footer
	if h := m.height - chrome; h > 0 {
		return h
	}
	return 1
}

// ensureCursorVisible scrolls so that the selected item fits on screen.
func (m *Model) ensureCursorVisible() {
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
		return
	}
	for m.scrollOffset < m.cursor {
		used := 0
		for i := m.scrollOffset; i <= m.cursor; i++ {
			used += lipgloss.Height(m.renderItem(i))
		}
		if used <= m.listHeight() {
			return
		}
		m.scrollOffset++
	}
}
