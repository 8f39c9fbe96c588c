// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tabwin/tabwin/internal/cli/styles"
	"github.com/tabwin/tabwin/internal/domain/entity"
	"github.com/tabwin/tabwin/internal/domain/repository"
	"github.com/tabwin/tabwin/internal/logging"
)

// SessionsModel is the Bubble Tea model for the interactive session browser.
type SessionsModel struct {
	help    help.Model
	keys    sessionsKeyMap
	confirm *styles.ConfirmModel

	sessions      []*entity.SessionState
	selectedIdx   int
	expandedIdx   int // -1 means none expanded
	width         int
	height        int
	err           error
	statusMessage string

	maxListed int

	ctx   context.Context
	repo  repository.SessionStateRepository
	spawn func(entity.SessionID) error
	theme *styles.Theme
}

type sessionsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Expand  key.Binding
	Restore key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k sessionsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Expand, k.Restore, k.Delete, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k sessionsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Expand},
		{k.Restore, k.Delete, k.Refresh},
		{k.Help, k.Quit},
	}
}

func defaultSessionsKeyMap() sessionsKeyMap {
	return sessionsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Expand: key.NewBinding(
			key.WithKeys("enter", "tab"),
			key.WithHelp("enter", "expand/collapse"),
		),
		Restore: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restore"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "d"),
			key.WithHelp("x", "delete"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SessionsModelConfig holds configuration for the sessions model.
type SessionsModelConfig struct {
	Repo      repository.SessionStateRepository
	Spawn     func(entity.SessionID) error
	MaxListed int
}

// NewSessionsModel creates a new sessions browser model.
func NewSessionsModel(ctx context.Context, theme *styles.Theme, cfg SessionsModelConfig) SessionsModel {
	maxListed := cfg.MaxListed
	if maxListed <= 0 {
		maxListed = 50
	}

	return SessionsModel{
		help:        help.New(),
		keys:        defaultSessionsKeyMap(),
		expandedIdx: -1,
		width:       80,
		height:      24,
		maxListed:   maxListed,
		ctx:         ctx,
		repo:        cfg.Repo,
		spawn:       cfg.Spawn,
		theme:       theme,
	}
}

// Init implements tea.Model.
func (m SessionsModel) Init() tea.Cmd {
	return m.loadSessions
}

type sessionsLoadedMsg struct {
	sessions []*entity.SessionState
	err      error
}

type sessionDeletedMsg struct {
	sessionID entity.SessionID
	err       error
}

type sessionRestoredMsg struct {
	sessionID entity.SessionID
	err       error
}

func (m SessionsModel) loadSessions() tea.Msg {
	log := logging.FromContext(m.ctx)
	log.Debug().Msg("loading sessions")

	if m.repo == nil {
		return sessionsLoadedMsg{err: fmt.Errorf("session storage not available")}
	}

	sessions, err := m.repo.ListSnapshots(m.ctx, m.maxListed)
	if err != nil {
		log.Error().Err(err).Msg("failed to load sessions")
		return sessionsLoadedMsg{err: err}
	}

	log.Debug().Int("count", len(sessions)).Msg("loaded sessions")
	return sessionsLoadedMsg{sessions: sessions}
}

// Update implements tea.Model.
func (m SessionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		return m.handleConfirmModal(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case sessionsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.sessions = msg.sessions
			m.err = nil
			if m.selectedIdx >= len(m.sessions) && len(m.sessions) > 0 {
				m.selectedIdx = len(m.sessions) - 1
			}
		}
		return m, nil

	case sessionDeletedMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.statusMessage = fmt.Sprintf("Session %s deleted", msg.sessionID)
		}
		return m, m.loadSessions

	case sessionRestoredMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}
		m.statusMessage = fmt.Sprintf("Restoring session %s...", msg.sessionID)
		return m, tea.Quit
	}

	return m, nil
}

func (m SessionsModel) handleConfirmModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	confirm, cmd := m.confirm.Update(msg)
	m.confirm = &confirm
	if m.confirm.Done() {
		if m.confirm.Result() && m.selectedIdx >= 0 && m.selectedIdx < len(m.sessions) {
			cmd = m.deleteSession(m.sessions[m.selectedIdx].SessionID)
		}
		m.confirm = nil
		return m, cmd
	}
	return m, cmd
}

func (m SessionsModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.selectedIdx > 0 {
			m.selectedIdx--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selectedIdx < len(m.sessions)-1 {
			m.selectedIdx++
		}
		return m, nil

	case key.Matches(msg, m.keys.Expand):
		if m.expandedIdx == m.selectedIdx {
			m.expandedIdx = -1
		} else {
			m.expandedIdx = m.selectedIdx
		}
		return m, nil

	case key.Matches(msg, m.keys.Restore):
		if m.selectedIdx >= 0 && m.selectedIdx < len(m.sessions) {
			return m, m.restoreSession(m.sessions[m.selectedIdx].SessionID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if m.selectedIdx >= 0 && m.selectedIdx < len(m.sessions) {
			confirm := styles.NewConfirm(m.theme,
				fmt.Sprintf("Delete session %s?", m.sessions[m.selectedIdx].SessionID))
			m.confirm = &confirm
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadSessions

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

func (m SessionsModel) deleteSession(sessionID entity.SessionID) tea.Cmd {
	return func() tea.Msg {
		log := logging.FromContext(m.ctx)
		log.Info().Str("session_id", string(sessionID)).Msg("deleting session")

		if m.repo == nil {
			return sessionDeletedMsg{sessionID: sessionID, err: fmt.Errorf("session storage not available")}
		}

		err := m.repo.DeleteSnapshot(m.ctx, sessionID)
		return sessionDeletedMsg{sessionID: sessionID, err: err}
	}
}

func (m SessionsModel) restoreSession(sessionID entity.SessionID) tea.Cmd {
	return func() tea.Msg {
		log := logging.FromContext(m.ctx)
		log.Info().Str("session_id", string(sessionID)).Msg("restoring session")

		if m.spawn == nil {
			return sessionRestoredMsg{sessionID: sessionID, err: fmt.Errorf("session restoration not available")}
		}

		if err := m.spawn(sessionID); err != nil {
			return sessionRestoredMsg{sessionID: sessionID, err: err}
		}

		return sessionRestoredMsg{sessionID: sessionID}
	}
}

// View implements tea.Model.
func (m SessionsModel) View() string {
	if m.confirm != nil {
		return m.confirm.View()
	}

	t := m.theme
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(t.ErrorStyle.Render(fmt.Sprintf("%s Error: %v", styles.IconX, m.err)))
		b.WriteString("\n\n")
	}

	if m.statusMessage != "" {
		b.WriteString(t.Subtle.Render(m.statusMessage))
		b.WriteString("\n\n")
	}

	if len(m.sessions) == 0 {
		b.WriteString(t.Subtle.Render("  No saved sessions found."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderSessionsList())
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m SessionsModel) renderHeader() string {
	t := m.theme

	icon := lipgloss.NewStyle().Foreground(t.Accent).Render(styles.IconSession)
	title := t.Title.MarginLeft(1).Render("Sessions")
	stats := t.Subtle.Render(fmt.Sprintf("  %d saved", len(m.sessions)))

	return icon + title + stats
}

func (m SessionsModel) renderSessionsList() string {
	var b strings.Builder

	for i, state := range m.sessions {
		b.WriteString(m.renderSessionRow(state, i == m.selectedIdx, i == m.expandedIdx))
		b.WriteString("\n")

		if i == m.expandedIdx {
			b.WriteString(m.renderSessionDetails(state))
		}
	}

	return b.String()
}

func (m SessionsModel) renderSessionRow(state *entity.SessionState, isSelected, isExpanded bool) string {
	t := m.theme

	cursor := "  "
	if isSelected {
		cursor = t.Highlight.Render(styles.IconCursor + " ")
	}

	idStyle := t.Normal
	if isSelected {
		idStyle = t.Highlight
	}

	expandIcon := styles.IconExpand
	if isExpanded {
		expandIcon = styles.IconCollapse
	}

	counts := t.Subtle.Render(fmt.Sprintf("%s %d", styles.IconTab, state.TabCount()))
	timeStr := t.Subtle.Render(fmt.Sprintf("%s %s", styles.IconClock, relativeTime(state.SavedAt)))

	return fmt.Sprintf("%s%s  %s  %s  %s",
		cursor,
		idStyle.Render(string(state.SessionID)),
		t.Subtle.Render(expandIcon),
		counts,
		timeStr,
	)
}

func (m SessionsModel) renderSessionDetails(state *entity.SessionState) string {
	t := m.theme
	var b strings.Builder

	treeStyle := lipgloss.NewStyle().Foreground(t.Border)
	const maxTitleLen = 50

	for i, tab := range state.Tabs {
		branch := "├── "
		if i == len(state.Tabs)-1 {
			branch = "└── "
		}

		title := tab.Title
		if title == "" {
			title = tab.URL
		}
		if len(title) > maxTitleLen {
			title = title[:maxTitleLen-3] + "..."
		}

		marker := ""
		if tab.ID == state.ActiveTabID {
			marker = " " + t.Badge.Render("active")
		}

		b.WriteString(fmt.Sprintf("      %s%s%s\n",
			treeStyle.Render(branch),
			t.Subtle.Render(title),
			marker,
		))
	}

	b.WriteString("\n")
	return b.String()
}

// Ensure interface compliance at compile time.
var _ tea.Model = (*SessionsModel)(nil)
