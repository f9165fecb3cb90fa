package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/azure-skies/internal/audio"
	"github.com/vovakirdan/azure-skies/internal/core"
)

// Game is what the platform needs from a game. Games contain pure logic and
// never touch the terminal, the clock or the audio device.
type Game interface {
	// ID returns a unique identifier for this game.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.Frame) core.StepResult

	// Render draws the current state into dst. fps is the measured frame rate.
	Render(dst *core.Screen, fps float64)

	// Status returns the current score and game-over flag.
	Status() core.Status
}

// Options configures a Model.
type Options struct {
	Runtime core.RuntimeConfig
	Hold    time.Duration    // Key hold window; 0 uses DefaultHoldWindow
	Sink    audio.Sink       // nil plays nothing
	Logger  *log.Logger      // nil discards
	Now     func() time.Time // nil uses time.Now
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game     Game
	screen   *core.Screen
	renderer *Renderer
	config   core.RuntimeConfig
	keys     KeyMap
	hold     *HoldTracker
	fps      *FPSMeter
	sink     audio.Sink
	logger   *log.Logger
	pending  core.Frame
	status   core.Status
	overSeen bool // Whether game over has been logged
	quitting bool
}

// NewModel creates a Bubble Tea model for game and resets it.
func NewModel(game Game, opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	sink := opts.Sink
	if sink == nil {
		sink = audio.Nop{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer: NewRenderer(),
		config:   cfg,
		keys:     DefaultKeyMap(),
		hold:     NewHoldTracker(opts.Hold, opts.Now),
		fps:      NewFPSMeter(),
		sink:     sink,
		logger:   logger,
		status:   game.Status(),
	}
}

// Init starts the music and the tick loop.
func (m Model) Init() tea.Cmd {
	m.sink.PlayMusic()
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the events a key press causes. They are applied on the
// next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k, quit := m.keys.Resolve(msg)
	if quit {
		m.pending.Push(core.QuitEvent())
		return m, nil
	}
	m.pending.Push(m.hold.Press(k)...)
	return m, nil
}

// handleResize processes window resize events. The world is scaled, so the
// game keeps running unchanged.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one input, update, draw cycle.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.pending.Push(m.hold.Expire()...)
	m.fps.Tick(now)

	result := m.game.Step(m.pending)
	m.pending.Clear()
	m.status = result.Status

	for _, s := range result.Sounds {
		m.sink.Play(s)
	}

	// Nothing moves after game over; drop held keys so none stays down.
	if m.status.GameOver && !m.overSeen {
		m.logger.Info("game over", "score", m.status.Score, "ticks", m.status.Ticks)
		m.pending.Push(m.hold.ReleaseAll()...)
		m.overSeen = true
	}

	if result.Quit {
		m.logger.Info("quit", "score", m.status.Score, "ticks", m.status.Ticks)
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// Status returns the status after the last tick.
func (m Model) Status() core.Status {
	return m.status
}

// Quitting reports whether the model has asked the program to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// View renders the current state to a string for display. The frame of the
// quit tick is still drawn; leaving the alt screen clears it.
func (m Model) View() string {
	m.game.Render(m.screen, m.fps.FPS())
	return m.renderer.Render(m.screen)
}

// Run starts the Bubble Tea program with the given game and returns the
// final status.
func Run(game Game, opts Options) (core.Status, error) {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		return m.Status(), err
	}
	return model.Status(), err
}
