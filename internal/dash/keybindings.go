package dash

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Key bindings for the dashboard
const (
	keyQuit      = "q"
	keyUp        = "up"
	keyDown      = "down"
	keyUpVim     = "k"
	keyDownVim   = "j"
	keyHistory   = "h"
	keyLatency   = "l"
	keySLA       = "s"
	keyHeatmap   = "m"
	keyEdit      = "e"
	keyRefresh   = "r"
	keySubmit    = "enter"
	keyCancel    = "esc"
	keyNextField = "tab"
	keyPrevField = "shift+tab"
	keyForceQuit = "ctrl+c"
)

// HandleKeyMsg processes a key press. It returns whether the key was handled
// and any command to run. While an edit session is open it owns the keyboard:
// every key either drives the form or is swallowed.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.String() == keyForceQuit {
		m.quitting = true
		return true, tea.Quit
	}

	if m.edit != nil {
		return true, m.handleEditKey(msg)
	}

	switch msg.String() {
	case keyQuit:
		m.quitting = true
		return true, tea.Quit

	case keyUp, keyUpVim:
		if m.selected > 0 {
			m.selected--
		}
		return true, nil

	case keyDown, keyDownVim:
		if m.selected < m.registry.Len()-1 {
			m.selected++
		}
		return true, nil

	case keyHistory:
		return true, m.toggleWidget(WidgetHistory)

	case keyLatency:
		return true, m.toggleWidget(WidgetLatencyChart)

	case keySLA:
		return true, m.toggleWidget(WidgetSLAChart)

	case keyHeatmap:
		return true, m.toggleWidget(WidgetHeatmap)

	case keyEdit:
		m.openEdit()
		return true, nil

	case keyRefresh:
		return true, tea.Batch(m.listCmd(), m.alertsCmd())
	}

	return false, nil
}

// handleEditKey drives the open edit session.
func (m *Model) handleEditKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case keyCancel:
		m.edit = nil
		return nil

	case keySubmit:
		return m.submitEdit()

	case keyNextField:
		m.edit.CycleFocus(false)
		return nil

	case keyPrevField:
		m.edit.CycleFocus(true)
		return nil
	}

	return m.edit.Update(msg)
}
