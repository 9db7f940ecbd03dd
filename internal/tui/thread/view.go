package thread

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/threadkit/internal/ui/components"
)

// View renders the current model state
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	var content strings.Builder

	content.WriteString(m.renderHeader())
	content.WriteString("\n")

	if m.showError {
		content.WriteString(m.styles.errorBanner.Render("✗ " + m.errorMsg))
		content.WriteString("\n")
	}

	content.WriteString(m.renderPostList())
	content.WriteString("\n")

	if m.reload != nil {
		content.WriteString(m.reload.ViewWithContext(m.render))
		content.WriteString("\n")
	}

	if status := m.renderStatus(); status != "" {
		content.WriteString(status)
		content.WriteString("\n")
	}

	content.WriteString(m.renderFooter())

	return content.String()
}

// renderHeader renders the title and post count.
func (m Model) renderHeader() string {
	count := fmt.Sprintf("%d %s", len(m.posts), m.render.Format.Plural(len(m.posts), "post"))
	return m.styles.header.Render(lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.styles.title.Render(m.title),
		m.styles.status.Render(count),
	))
}

// renderPostList renders the visible window of post items.
func (m Model) renderPostList() string {
	if len(m.posts) == 0 {
		return m.styles.empty.Render("No posts in this thread.")
	}

	var items []string
	budget := m.listHeight()
	end := m.scrollOffset
	for i := m.scrollOffset; i < len(m.posts); i++ {
		item := m.renderItem(i)
		height := lipgloss.Height(item)
		if len(items) > 0 && height > budget {
			break
		}
		items = append(items, item)
		budget -= height
		end = i + 1
	}

	if m.scrollOffset > 0 {
		items = append([]string{m.styles.scrollHint.Render("▲ More above")}, items...)
	}
	if end < len(m.posts) {
		items = append(items, m.styles.scrollHint.Render("▼ More below"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

// renderItem renders the post at index i.
func (m Model) renderItem(i int) string {
	selected := i == m.cursor && m.focus == FocusList
	return components.NewPostItem(m.posts[i], nil).
		WithSelected(selected).
		ViewWithContext(m.render)
}

// renderStatus reports the last navigation.
func (m Model) renderStatus() string {
	if m.lastNav == nil {
		return ""
	}
	return m.styles.status.Render(fmt.Sprintf("→ %s %s/%s",
		m.lastNav.Route,
		m.lastNav.Params.Name,
		m.lastNav.Params.RecordKey,
	))
}

// renderFooter renders the key help.
func (m Model) renderFooter() string {
	return m.styles.footer.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}
