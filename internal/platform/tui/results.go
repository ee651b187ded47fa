package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/npc-quest/internal/storage"
)

// Max sessions loaded into the results table.
const maxResults = 100

// ResultsKeyMap defines the key bindings for the results screen.
type ResultsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ResultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ResultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

// DefaultResultsKeyMap returns default key bindings.
func DefaultResultsKeyMap() ResultsKeyMap {
	return ResultsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ResultsModel is the Bubble Tea model for browsing recorded sessions.
type ResultsModel struct {
	store    *storage.Store
	stats    []storage.CompletionStats
	table    table.Model
	help     help.Model
	keys     ResultsKeyMap
	loadErr  error
	quitting bool
}

// NewResultsModel creates a results browser for the given participant
// filter (empty shows everyone).
func NewResultsModel(store *storage.Store, participantID string) ResultsModel {
	m := ResultsModel{
		store: store,
		help:  help.New(),
		keys:  DefaultResultsKeyMap(),
	}

	sessions, err := store.RecentSessions(participantID, maxResults)
	if err != nil {
		m.loadErr = err
		return m
	}
	m.stats, _ = store.StatsByCondition()

	columns := []table.Column{
		{Title: "When", Width: 16},
		{Title: "Participant", Width: 12},
		{Title: "Condition", Width: 10},
		{Title: "Res", Width: 4},
		{Title: "Kills", Width: 5},
		{Title: "Done", Width: 5},
		{Title: "Reason", Width: 10},
		{Title: "Code", Width: 7},
	}

	rows := make([]table.Row, 0, len(sessions))
	for _, s := range sessions {
		done := "no"
		if s.Completed {
			done = "yes"
		}
		rows = append(rows, table.Row{
			s.CreatedAt.Format("2006-01-02 15:04"),
			s.ParticipantID,
			s.Condition,
			fmt.Sprintf("%d", s.Resources),
			fmt.Sprintf("%d", s.Kills),
			done,
			s.EndReason,
			s.VerificationCode,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("12")).Bold(true)
	t.SetStyles(styles)

	m.table = t
	return m
}

// Init implements tea.Model.
func (m ResultsModel) Init() tea.Cmd { return nil }

// Update handles key events for the results table.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the results table with per-condition completion stats.
func (m ResultsModel) View() string {
	if m.quitting {
		return ""
	}
	if m.loadErr != nil {
		return fmt.Sprintf("could not load sessions: %v\n", m.loadErr)
	}

	out := titleStyle.Render("Recorded sessions") + "\n\n"
	out += m.table.View() + "\n\n"

	for _, st := range m.stats {
		out += dimStyle.Render(fmt.Sprintf("%-8s %d/%d completed", st.Condition, st.Completed, st.Sessions)) + "\n"
	}

	return out + "\n" + m.help.View(m.keys)
}

// RunResults shows the results browser.
func RunResults(store *storage.Store, participantID string) error {
	p := tea.NewProgram(NewResultsModel(store, participantID), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
