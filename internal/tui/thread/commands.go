package thread

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/threadkit/internal/post"
)

// ReloadFunc fetches a fresh copy of the thread. It runs off the UI loop.
type ReloadFunc func(ctx context.Context) ([]post.Post, error)

// reloadBuffer hands the posts fetched by the reload button's handler to the
// model once the button reports that it settled.
type reloadBuffer struct {
	mu    sync.Mutex
	posts []post.Post
	ready bool
}

func (b *reloadBuffer) put(posts []post.Post) {
	b.mu.Lock()
	b.posts = posts
	b.ready = true
	b.mu.Unlock()
}

func (b *reloadBuffer) take() ([]post.Post, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	posts, ready := b.posts, b.ready
	b.posts, b.ready = nil, false
	return posts, ready
}

// reloadHandler adapts fn to a button handler that parks its result in buf.
func reloadHandler(fn ReloadFunc, buf *reloadBuffer) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		posts, err := fn(ctx)
		if err != nil {
			return err
		}
		buf.put(posts)
		return nil
	}
}

// navigateCmd delivers a navigation request to the update loop.
func navigateCmd(msg NavigateMsg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}

// errorCmd shows an error banner.
func errorCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Message: message}
	}
}
