package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case articleLoadedMsg:
		return m.handleArticleLoaded(msg)
	case errorMsg:
		return m.handleError(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

// dispatch forwards an input event to document-level listeners and reports
// whether one of them closed the panel.
func (m *model) dispatch(msg tea.Msg) bool {
	wasOpen := m.panel.IsOpen()
	m.doc.Dispatch(msg)
	if wasOpen && !m.panel.IsOpen() {
		m.layout()
		return true
	}
	return false
}

// Handle key messages
func (m *model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.dispatch(msg) {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.panel.Unmount()
		return m, tea.Quit
	case key.Matches(msg, m.keys.TogglePanel):
		return m.handleTogglePanel()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		m.copyCSS()
		return m, nil
	}

	if m.panel.IsOpen() {
		return m.handlePanelKey(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handlePanelKey routes keys while the panel is open. Keys the form uses
// never reach the article viewport.
func (m *model) handlePanelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.submit()
		return m, nil
	case key.Matches(msg, m.keys.Reset):
		m.reset()
		return m, nil
	case key.Matches(msg, m.keys.Next):
		m.focus = m.form().Move(1)
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.focus = m.form().Move(-1)
		return m, nil
	case key.Matches(msg, m.keys.Scroll):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	m.form().HandleKey(msg)
	return m, nil
}

func (m *model) handleTogglePanel() (tea.Model, tea.Cmd) {
	m.panel.Toggle()
	m.status = ""
	m.layout()
	return m, nil
}

func (m *model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.dispatch(msg) {
		return m, nil
	}

	ev := tea.MouseEvent(msg)
	if ev.Action == tea.MouseActionPress && ev.Button == tea.MouseButtonLeft {
		if m.arrowRect().Contains(ev.X, ev.Y) {
			return m.handleTogglePanel()
		}
		if m.panel.IsOpen() {
			return m.handlePanelClick(ev.X, ev.Y)
		}
	}
	if ev.IsWheel() {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handlePanelClick hands a press inside the panel to the form control under
// it. The control also takes keyboard focus.
func (m *model) handlePanelClick(x, y int) (tea.Model, tea.Cmd) {
	ox, oy := m.panelOrigin()
	if focus, ok := m.form().Click(x-ox, y-oy); ok {
		m.focus = focus
	}
	return m, nil
}

// Message handlers
func (m *model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.layout()
	return m, nil
}

func (m *model) handleArticleLoaded(msg articleLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	m.loadErr = nil
	m.article = msg.article
	m.logger.Info("article loaded", "source", msg.article.Source, "title", msg.article.Title)
	m.refreshArticle()
	if m.ready {
		m.viewport.GotoTop()
	}
	return m, nil
}

func (m *model) handleError(msg errorMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	m.loadErr = msg.err
	m.logger.Error("article load failed", "source", msg.source, "error", msg.err)
	m.refreshArticle()
	return m, nil
}
