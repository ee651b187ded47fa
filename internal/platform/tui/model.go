package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/npc-quest/internal/config"
	"github.com/vovakirdan/npc-quest/internal/core"
	"github.com/vovakirdan/npc-quest/internal/emotion"
	"github.com/vovakirdan/npc-quest/internal/sim"
	"github.com/vovakirdan/npc-quest/internal/storage"
)

// Session phases.
type phase int

const (
	phaseIntro phase = iota
	phasePlaying
	phaseDone
)

// Options bundles the study-specific parameters of a session.
type Options struct {
	ParticipantID string
	Version       string
	QuestConfig   config.QuestConfig
	Strategy      emotion.Strategy
	Store         *storage.Store // nil disables persistence
	Logger        *log.Logger
}

// Model is the Bubble Tea model that runs one study session:
// intro screen, the simulation itself, and the completion screen with
// the verification code.
type Model struct {
	world  *sim.World
	screen *core.Screen
	opts   Options
	config core.RuntimeConfig
	logger *log.Logger

	keymap     *KeyMapper
	keys       SessionKeyMap
	help       help.Model
	inputFrame core.InputFrame
	frame      sim.Frame

	phase    phase
	debug    bool
	saved    bool
	quitting bool
	code     string
}

// NewModel creates a session model. A zero seed is replaced with the
// current time so every session differs unless pinned for replay.
func NewModel(opts Options, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		world:      sim.New(opts.Strategy, opts.QuestConfig, logger),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		logger:     logger,
		keymap:     NewKeyMapper(),
		keys:       DefaultSessionKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keymap.MapKey(msg)
	if isQuit {
		if m.phase == phasePlaying {
			m.world.Quit()
			m.finishSession()
		}
		m.quitting = true
		return m, tea.Quit
	}

	switch m.phase {
	case phaseIntro:
		if action == core.ActionConfirm {
			m.world.Reset(m.config)
			m.frame = m.world.Frame()
			m.phase = phasePlaying
		}

	case phasePlaying:
		if action == core.ActionDebug {
			m.debug = !m.debug
		} else if action != core.ActionNone {
			m.inputFrame.Set(action)
		}

	case phaseDone:
		if action == core.ActionConfirm {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.phase != phasePlaying {
		return m, tickCmd(m.config.TickRate)
	}

	m.world.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.frame = m.world.Frame()

	if m.world.Done() {
		m.finishSession()
		m.phase = phaseDone
	}

	return m, tickCmd(m.config.TickRate)
}

// finishSession persists the result once and derives the verification
// code the participant reports back in the survey.
func (m *Model) finishSession() {
	if m.saved {
		return
	}
	m.saved = true

	res := m.world.Result()
	m.code = storage.VerificationCode(m.opts.ParticipantID, m.opts.Version, res.Strategy)

	m.logger.Info("session finished",
		"participant", m.opts.ParticipantID,
		"condition", res.Strategy,
		"completed", res.Completed,
		"reason", res.EndReason,
		"kills", res.EnemiesKilled,
		"resources", res.ResourcesCollected,
	)

	if m.opts.Store == nil {
		return
	}
	_, err := m.opts.Store.SaveSession(storage.SessionResult{
		ParticipantID:    m.opts.ParticipantID,
		Condition:        res.Strategy,
		Resources:        res.ResourcesCollected,
		Kills:            res.EnemiesKilled,
		Deaths:           res.Deaths,
		Health:           res.Health,
		Completed:        res.Completed,
		EndReason:        res.EndReason,
		DurationSecs:     res.ElapsedSeconds,
		VerificationCode: m.code,
	})
	if err != nil {
		m.logger.Error("could not save session", "err", err)
	}
}

// View renders the current phase.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.phase {
	case phaseIntro:
		return m.introView()
	case phaseDone:
		return m.doneView()
	default:
		drawWorld(m.screen, m.frame, m.debug)
		return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
	}
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	codeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

func (m Model) introView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("NPC Quest") + "\n\n")
	b.WriteString("Guide @ through both rooms with your companion &.\n")
	b.WriteString("Collect ◆ to open the door, clear the ♦ enemies,\n")
	b.WriteString("then reach the exit before the time runs out.\n\n")
	if m.opts.ParticipantID != "" {
		b.WriteString(dimStyle.Render("participant: "+m.opts.ParticipantID) + "\n\n")
	}
	b.WriteString("Press enter to begin.\n")
	return b.String()
}

func (m Model) doneView() string {
	res := m.world.Result()

	var b strings.Builder
	if res.Completed {
		b.WriteString(titleStyle.Render("Session complete!") + "\n\n")
	} else {
		b.WriteString(titleStyle.Render("Session over") + "\n\n")
		b.WriteString(dimStyle.Render("reason: "+res.EndReason) + "\n\n")
	}

	fmt.Fprintf(&b, "resources  %d\n", res.ResourcesCollected)
	fmt.Fprintf(&b, "kills      %d\n", res.EnemiesKilled)
	fmt.Fprintf(&b, "deaths     %d\n", res.Deaths)
	fmt.Fprintf(&b, "duration   %.0fs\n\n", res.ElapsedSeconds)

	if m.opts.ParticipantID != "" {
		b.WriteString("Your verification code:\n")
		b.WriteString("  " + codeStyle.Render(m.code) + "\n\n")
	}
	b.WriteString(dimStyle.Render("press enter or q to exit") + "\n")
	return b.String()
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(opts, cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
