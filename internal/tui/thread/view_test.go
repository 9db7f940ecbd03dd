package thread

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/threadkit/internal/post"
	"github.com/alexisbeaulieu97/threadkit/internal/ui/components"
)

func sized(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 60})
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func TestView_Initializing(t *testing.T) {
	m := New(testOptions())
	m.width = 0

	assert.Equal(t, "Initializing...", m.View())
}

func TestView_ListsPosts(t *testing.T) {
	m := sized(t, New(testOptions()))
	view := m.View()

	assert.Contains(t, view, "Test thread")
	assert.Contains(t, view, "3 posts")
	assert.Contains(t, view, "root post")
	assert.Contains(t, view, "focal post")
	assert.Contains(t, view, "a reply")
	assert.Contains(t, view, "1 repost")
	assert.Contains(t, view, "2 likes")
	assert.Contains(t, view, "quit")
}

func TestView_EmptyThread(t *testing.T) {
	m := sized(t, New(Options{}))

	assert.Contains(t, m.View(), "No posts in this thread.")
	assert.Contains(t, m.View(), "0 posts")
}

func TestView_ShowsReloadButtonAndNavigation(t *testing.T) {
	opts := testOptions()
	opts.Reload = func(_ context.Context) ([]post.Post, error) { return nil, nil }
	m := sized(t, New(opts))

	m.lastNav = &NavigateMsg{
		Route:  components.RoutePostThread,
		Params: components.NavParams{Name: "bob.com", RecordKey: "focal1"},
	}
	view := m.View()

	assert.Contains(t, view, "Reload")
	assert.Contains(t, view, "→ PostThread bob.com/focal1")
}

func TestView_ErrorBanner(t *testing.T) {
	m := sized(t, New(testOptions()))
	m.showError = true
	m.errorMsg = "Reload failed: boom"

	assert.Contains(t, m.View(), "✗ Reload failed: boom")
}

func TestView_RelativeTimesFollowClock(t *testing.T) {
	now := testNow
	opts := testOptions()
	opts.Context = components.DefaultContext().WithClock(func() time.Time { return now })
	m := sized(t, New(opts))

	assert.Contains(t, m.View(), "@carol.com · 10m")

	now = now.Add(2 * time.Hour)
	view := m.View()
	assert.Contains(t, view, "@carol.com · 2h")
	assert.NotContains(t, view, "@carol.com · 10m")
}
