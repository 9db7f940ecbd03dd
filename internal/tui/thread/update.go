package thread

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/threadkit/internal/action"
	"github.com/alexisbeaulieu97/threadkit/internal/ui/components"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// System messages
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.render = m.render.WithConstraints(components.WithMaxWidth(msg.Width))
		m.help.Width = msg.Width
		m.ensureCursorVisible()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	// Reload button lifecycle
	case spinner.TickMsg:
		if m.reload == nil {
			return m, nil
		}
		return m, m.reload.Update(msg)

	case components.ButtonSettledMsg:
		if m.reload == nil || msg.ID != m.reload.ID() {
			return m, nil
		}
		cmd := m.reload.Update(msg)
		if msg.Err != nil {
			m.log.Error(msg.Err, "thread reload failed")
			m.showError = true
			m.errorMsg = fmt.Sprintf("Reload failed: %s", msg.Err.Error())
			return m, cmd
		}
		if posts, ok := m.reloaded.take(); ok {
			m.setPosts(posts)
			m.log.With("posts", len(posts)).Info("thread reloaded")
		}
		return m, cmd

	// Navigation messages
	case NavigateMsg:
		m.lastNav = &msg
		if m.navigate != nil {
			m.navigate(msg.Route, msg.Params)
		}
		return m, nil

	// Error messages
	case ErrorMsg:
		m.showError = true
		m.errorMsg = msg.Message
		return m, nil

	case ClearErrorMsg:
		m.showError = false
		m.errorMsg = ""
		return m, nil
	}

	return m, nil
}

// handleKeyPress routes keys to the focused pane.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.SwitchPane):
		m.toggleFocus()
		return m, nil

	case key.Matches(msg, m.keys.ClearError):
		if m.showError {
			m.showError = false
			m.errorMsg = ""
		}
		return m, nil
	}

	if m.focus == FocusReload {
		return m, m.reload.Update(msg)
	}
	return m.handleListKeys(msg)
}

// handleListKeys handles keys while the post list has focus.
func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.MoveCursorUp()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.MoveCursorDown()
		return m, nil

	case key.Matches(msg, m.keys.Open):
		return m, m.openSelected()
	}

	return m, nil
}

// openSelected activates the selected post item. Navigation is delivered
// as a NavigateMsg; a malformed post URI becomes an error banner.
func (m *Model) openSelected() tea.Cmd {
	selected, ok := m.GetSelectedPost()
	if !ok {
		return nil
	}

	var nav *NavigateMsg
	item := components.NewPostItem(selected, func(route string, params components.NavParams) {
		nav = &NavigateMsg{Route: route, Params: params}
	}).WithLogger(m.log)

	if err := item.Activate(action.NewEvent()); err != nil {
		return errorCmd(fmt.Sprintf("Cannot open post: %v", err))
	}
	if nav == nil {
		return nil
	}
	return navigateCmd(*nav)
}
