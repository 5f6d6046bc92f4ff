package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/core"
	"github.com/vovakirdan/skyfall/internal/game"
	"github.com/vovakirdan/skyfall/internal/highscore"
	"github.com/vovakirdan/skyfall/internal/storage"
)

// RunLog stores the history of finished games.
type RunLog interface {
	SaveRun(r storage.Run) (string, error)
}

// Options configures a game Model.
type Options struct {
	Game    config.SkyfallConfig
	Runtime core.RuntimeConfig
	Scores  *highscore.Store // nil disables the high score table
	Runs    RunLog           // nil disables run history
	Sounds  game.Sounds      // nil plays nothing
	Logger  *log.Logger
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	alertStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(1, 3)
)

// Model is the Bubble Tea model driving one Skyfall session:
// character select -> play -> initials -> results -> character select.
type Model struct {
	session *game.Session
	scores  *highscore.Store
	runs    RunLog
	logger  *log.Logger
	config  core.RuntimeConfig

	screen *core.Screen
	canvas *ScreenCanvas
	keys   *KeyMapper
	help   help.Model
	input  textinput.Model
	board  table.Model

	cursor   int    // Selected character
	notice   string // Feedback for rejected initials
	ticking  bool
	quitting bool
}

// NewModel creates a new Bubble Tea model in character selection.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	sessOpts := game.Options{
		Config: opts.Game,
		Seed:   cfg.Seed,
		Sounds: opts.Sounds,
		Logger: logger,
	}
	if opts.Scores != nil {
		sessOpts.Scores = opts.Scores
	}
	session := game.NewSession(sessOpts)

	input := textinput.New()
	input.Placeholder = "AAA"
	input.CharLimit = highscore.InitialsLen
	input.Width = highscore.InitialsLen + 1
	input.Prompt = "> "

	screen := core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH))
	fieldW, fieldH := session.Playfield()

	m := Model{
		session: session,
		scores:  opts.Scores,
		runs:    opts.Runs,
		logger:  logger,
		config:  cfg,
		screen:  screen,
		canvas:  NewScreenCanvas(screen, fieldW, fieldH),
		keys:    NewKeyMapper(),
		help:    help.New(),
		input:   input,
		board: newStyledTable([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Initials", Width: 10},
			{Title: "Score", Width: 10},
		}, highscore.MaxEntries+1),
	}
	m.help.Width = cfg.ScreenW
	m.refreshBoard()
	return m
}

// playHeight leaves the bottom row of the terminal for the help bar.
func playHeight(h int) int {
	return core.Max(h-1, 0)
}

// Init sets the window title; ticking starts with the first game.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Skyfall")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	if m.session.Phase() == game.PhaseAwaitingInitials {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey dispatches keyboard input by phase.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.session.Phase() == game.PhaseAwaitingInitials {
		return m.handleInitialsKey(msg)
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.session.Phase() {
	case game.PhaseIdle:
		return m.handleSelectKey(action)

	case game.PhaseRunning:
		switch action {
		case core.ActionLeft:
			m.session.Move(game.DirLeft)
		case core.ActionRight:
			m.session.Move(game.DirRight)
		case core.ActionPause:
			m.session.TogglePause()
		}

	case game.PhaseGameOver:
		if action == core.ActionRestart || action == core.ActionConfirm {
			if err := m.session.Restart(); err != nil {
				m.logger.Error("restart failed", "error", err)
			}
		}
	}

	return m, nil
}

// handleSelectKey moves the character cursor or starts a game.
func (m Model) handleSelectKey(action core.Action) (tea.Model, tea.Cmd) {
	n := len(game.Sprites())
	switch action {
	case core.ActionUp, core.ActionLeft:
		m.cursor = (m.cursor - 1 + n) % n
	case core.ActionDown, core.ActionRight:
		m.cursor = (m.cursor + 1) % n
	case core.ActionConfirm:
		sprite := game.Sprites()[m.cursor].ID
		if err := m.session.Start(sprite); err != nil {
			m.logger.Error("cannot start game", "error", err)
			return m, nil
		}
		m.notice = ""
		if !m.ticking {
			m.ticking = true
			return m, tickCmd(m.config.TickRate)
		}
	}
	return m, nil
}

// handleInitialsKey feeds the initials prompt. Only ctrl+c quits here so
// that every letter can be typed.
func (m Model) handleInitialsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEnter:
		return m.submitInitials()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitInitials records the finished game or asks again.
func (m Model) submitInitials() (tea.Model, tea.Cmd) {
	entry, err := m.session.SubmitInitials(m.input.Value())
	if errors.Is(err, highscore.ErrInvalidInitials) {
		m.notice = fmt.Sprintf("Initials must be exactly %d characters", highscore.InitialsLen)
		m.input.Reset()
		return m, nil
	}
	if err != nil {
		m.logger.Error("cannot submit initials", "error", err)
		return m, nil
	}

	m.notice = ""
	m.input.Blur()
	m.input.Reset()

	st := m.session.State()
	if m.runs != nil {
		run := storage.Run{
			Initials: entry.Initials,
			Sprite:   m.session.Player().Sprite.String(),
			Score:    entry.Score,
			Frames:   st.ElapsedFrames,
		}
		if _, err := m.runs.SaveRun(run); err != nil {
			m.logger.Warn("could not save run", "error", err)
		}
	}

	m.refreshBoard()
	m.highlight(entry)
	return m, nil
}

// handleTick advances the running game and keeps the timer alive while
// there is a game to drive.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.session.Phase() != game.PhaseRunning {
		m.ticking = false
		return m, nil
	}

	res := m.session.Tick()
	if res.Phase == game.PhaseAwaitingInitials {
		m.ticking = false
		m.notice = ""
		m.input.Reset()
		return m, m.input.Focus()
	}

	return m, tickCmd(m.config.TickRate)
}

// refreshBoard reloads the high score table.
func (m *Model) refreshBoard() {
	var entries []highscore.Entry
	if m.scores != nil {
		entries = m.scores.Entries()
	}
	m.board.SetRows(highScoreRows(entries))
	m.board.GotoTop()
}

// highlight moves the table cursor onto e, if it made the table.
func (m *Model) highlight(e highscore.Entry) {
	if m.scores == nil {
		return
	}
	for i, got := range m.scores.Entries() {
		if got == e {
			m.board.SetCursor(i)
			return
		}
	}
}

// View renders the current phase.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.session.Phase() {
	case game.PhaseRunning:
		return m.viewPlaying()
	case game.PhaseAwaitingInitials:
		return m.viewInitials()
	case game.PhaseGameOver:
		return m.viewResults()
	default:
		return m.viewSelect()
	}
}

func (m Model) viewPlaying() string {
	m.session.Draw(m.canvas)
	m.canvas.DrawHUD(m.session.State(), m.session.Player().Sprite, m.session.Paused())
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Keys())
}

func (m Model) viewSelect() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("S K Y F A L L"))
	b.WriteString("\n\n")
	b.WriteString("Catch the good items, dodge the bad ones.\n\n")
	b.WriteString("Choose your character:\n\n")

	for i, s := range game.Sprites() {
		line := fmt.Sprintf(" %c  %-8s ", s.Glyph, s.Title)
		if i == m.cursor {
			b.WriteString("> " + selectedStyle.Render(line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.boardView())
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("↑/↓ choose • enter start • q quit"))
	return m.center(panelStyle.Render(b.String()))
}

func (m Model) viewInitials() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("GAME OVER"))
	b.WriteString("\n\n")
	score := m.session.State().Score
	fmt.Fprintf(&b, "Score: %d\n\n", score)
	if m.scores != nil && m.scores.Qualifies(score) {
		b.WriteString(titleStyle.Render("New high score!"))
		b.WriteString("\n\n")
	}
	b.WriteString("Enter your initials:\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(alertStyle.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("enter submit • ctrl+c quit"))
	return m.center(panelStyle.Render(b.String()))
}

func (m Model) viewResults() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("GAME OVER"))
	b.WriteString("\n\n")
	if e, ok := m.session.LastEntry(); ok {
		fmt.Fprintf(&b, "%s scored %d\n\n", e.Initials, e.Score)
	}
	b.WriteString(m.boardView())
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("r play again • q quit"))
	return m.center(panelStyle.Render(b.String()))
}

// boardView renders the high score table or a placeholder.
func (m Model) boardView() string {
	if len(m.board.Rows()) == 0 {
		return dimStyle.Render("No high scores yet.") + "\n"
	}
	return "HIGH SCORES\n" + m.board.View() + "\n"
}

// center places content in the middle of the terminal.
func (m Model) center(content string) string {
	if m.config.ScreenW <= 0 || m.config.ScreenH <= 0 {
		return content
	}
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, content)
}

// Phase returns the session phase, for callers driving the model.
func (m Model) Phase() game.Phase {
	return m.session.Phase()
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
