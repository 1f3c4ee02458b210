package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/vocab/internal/tui/components"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle state-specific keys
	switch m.State {
	case StateHelp:
		if key.Matches(msg, Keys.Escape, Keys.Help, Keys.Quit) {
			m.State = StateBrowsing
		}
		return m, nil

	case StateAlert:
		// Any key dismisses the alert
		m.Alert = ""
		m.State = StateBrowsing
		return m, nil
	}

	// A pending delete takes every key
	if word := m.Words.Confirming(); word != "" {
		switch {
		case key.Matches(msg, Keys.Confirm):
			m.Words.CancelDelete()
			return m, DeleteWordCmd(m.Svc, word)
		case key.Matches(msg, Keys.Deny):
			m.Words.CancelDelete()
		}
		return m, nil
	}

	// Text entry gets keys before the global bindings
	if m.Page == PageAdd && m.Upload.Focused() {
		switch {
		case msg.String() == "ctrl+c":
			return m.quit()
		case key.Matches(msg, Keys.Submit):
			cmd := m.submitUpload()
			return m, cmd
		case m.Upload.IsUploading() && key.Matches(msg, Keys.Escape):
			m.cancelUpload()
			return m, nil
		}
		return m, m.Upload.Update(msg)
	}
	if m.filterTyping() {
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		return m, m.routeToPage(msg)
	}

	// Global keys
	switch {
	case key.Matches(msg, Keys.Quit):
		return m.quit()

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.NextPage):
		cmd := m.switchPage((m.Page + 1) % pageCount)
		return m, cmd

	case key.Matches(msg, Keys.PrevPage):
		cmd := m.switchPage((m.Page + pageCount - 1) % pageCount)
		return m, cmd

	case key.Matches(msg, Keys.WordsPage):
		cmd := m.switchPage(PageWords)
		return m, cmd
	case key.Matches(msg, Keys.GroupPage):
		cmd := m.switchPage(PageGroups)
		return m, cmd
	case key.Matches(msg, Keys.RandPage):
		cmd := m.switchPage(PageRandom)
		return m, cmd
	case key.Matches(msg, Keys.TonesPage):
		cmd := m.switchPage(PageTones)
		return m, cmd
	case key.Matches(msg, Keys.AddPage):
		cmd := m.switchPage(PageAdd)
		return m, cmd
	}

	switch m.Page {
	case PageGroups:
		return m.handleGroupKey(msg)
	case PageAdd:
		switch {
		case key.Matches(msg, Keys.Submit):
			cmd := m.submitUpload()
			return m, cmd
		case m.Upload.IsUploading() && key.Matches(msg, Keys.Escape):
			m.cancelUpload()
			return m, nil
		}
		return m, m.Upload.Update(msg)
	}
	return m.handleListKey(msg)
}

// handleListKey handles keys on the Words, Random and Tones pages
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	list := m.activeList()
	if list == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, Keys.Speak):
		if e, ok := list.Selected(); ok {
			cmd := m.speak(e.Word)
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, Keys.Details):
		list.ToggleDetails()
		return m, nil

	case key.Matches(msg, Keys.LoadMore):
		if !list.CanLoadMore() || list.IsLoading() {
			return m, nil
		}
		list.SetLoadingMore(true)
		return m, LoadWordsCmd(m.Svc, list.Collection().NextPage(), m.opts.PageSize)

	case key.Matches(msg, Keys.Delete):
		list.AskDelete()
		return m, nil

	case key.Matches(msg, Keys.Refresh):
		if list.Kind() != components.WordListRandom || list.IsLoading() {
			return m, nil
		}
		list.SetLoading(true)
		return m, LoadRandomCmd(m.Svc)
	}

	return m, list.Update(msg)
}

// handleGroupKey handles keys on the Groups page
func (m Model) handleGroupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, Keys.Speak) {
		if e, ok := m.Groups.Selected(); ok {
			cmd := m.speak(e.Word)
			return m, cmd
		}
		return m, nil
	}
	return m, m.Groups.Update(msg)
}

// routeToPage forwards a key to the current page's component
func (m Model) routeToPage(msg tea.KeyMsg) tea.Cmd {
	if m.Page == PageGroups {
		return m.Groups.Update(msg)
	}
	if list := m.activeList(); list != nil {
		return list.Update(msg)
	}
	return nil
}

// filterTyping reports whether the current page's filter input has focus
func (m Model) filterTyping() bool {
	if m.Page == PageGroups {
		return m.Groups.IsFilterTyping()
	}
	if list := m.activeList(); list != nil {
		return list.IsFilterTyping()
	}
	return false
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.cancelUpload()
	if m.Narrator != nil {
		m.Narrator.Stop()
	}
	return m, tea.Quit
}
