// Package game implements Skyfall: the player moves a catcher along the
// bottom of the playfield, catching good items and dodging bad ones that
// fall from the top at an ever increasing rate.
//
// Session owns all mutable game state and is driven by the platform layer:
// key events call Move, the frame timer calls Tick, and the game-over flow
// calls SubmitInitials and Restart. It is not safe for concurrent use.
package game

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/core"
	"github.com/vovakirdan/skyfall/internal/highscore"
)

// Phase is the state of the game loop driver.
type Phase int

const (
	PhaseIdle             Phase = iota // Character selection
	PhaseRunning                       // Ticking
	PhaseAwaitingInitials              // Game ended, waiting for the player's initials
	PhaseGameOver                      // Score recorded, waiting for restart
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseAwaitingInitials:
		return "awaiting-initials"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Sounds plays sound effects. Implementations must not block or panic.
type Sounds interface {
	Play(s core.Sound)
	Pause(s core.Sound)
	Rewind(s core.Sound)
}

// Recorder stores a finished game's high score entry.
type Recorder interface {
	Record(e highscore.Entry) error
}

// Options configures a new Session.
type Options struct {
	Config config.SkyfallConfig
	Seed   int64
	Sounds Sounds      // nil disables audio
	Scores Recorder    // nil disables high score recording
	Logger *log.Logger // nil uses the default logger
}

// Session is the game loop driver.
type Session struct {
	cfg    config.SkyfallConfig
	curve  Curve
	rng    *rand.Rand
	sounds Sounds
	scores Recorder
	logger *log.Logger

	phase  Phase
	paused bool
	player Player
	pool   ItemPool
	run    RunState
	last   *highscore.Entry // Entry recorded for the last finished game
}

// NewSession creates a session in the idle phase.
func NewSession(opts Options) *Session {
	s := &Session{
		cfg:    opts.Config,
		curve:  NewCurve(opts.Config.Difficulty),
		rng:    rand.New(rand.NewSource(opts.Seed)),
		sounds: opts.Sounds,
		scores: opts.Scores,
		logger: opts.Logger,
	}
	if s.sounds == nil {
		s.sounds = silent{}
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	s.reset(SpriteRobot)
	return s
}

// reset restores the run state, player position and item pool.
func (s *Session) reset(sprite SpriteID) {
	s.player = newPlayer(s.cfg.Player, sprite)
	s.pool.Reset()
	s.run = RunState{Lives: s.cfg.Lives}
	s.paused = false
}

// Start selects a character and begins a new game. Only valid when idle.
func (s *Session) Start(sprite SpriteID) error {
	if s.phase != PhaseIdle {
		return fmt.Errorf("%w: start while %s", ErrWrongState, s.phase)
	}
	if !sprite.Valid() {
		return fmt.Errorf("%w: id %d", ErrUnknownSprite, sprite)
	}

	s.reset(sprite)
	s.run.Running = true
	s.last = nil
	s.phase = PhaseRunning

	s.sounds.Rewind(core.SoundMusic)
	s.sounds.Play(core.SoundMusic)

	s.logger.Debug("game started", "sprite", sprite, "lives", s.run.Lives)
	return nil
}

// Tick advances the game by one frame. Outside the running phase, or while
// paused, it changes nothing and returns the current state.
func (s *Session) Tick() StepResult {
	if s.phase != PhaseRunning || s.paused {
		return s.result(nil)
	}

	s.run.Flash = false
	s.run.ElapsedFrames++

	s.spawn()

	outcome := resolveCollisions(&s.pool, s.player.Rect(), &s.run)

	if s.cfg.Items.PruneOffscreen {
		pruneOffscreen(&s.pool, s.cfg.Playfield.Height)
	}

	events := s.dispatch(outcome)
	if outcome.GameOver {
		s.phase = PhaseAwaitingInitials
		s.logger.Debug("game over", "score", s.run.Score, "frames", s.run.ElapsedFrames)
	}

	return s.result(events)
}

// spawn runs the difficulty curve's spawn step for the current frame.
func (s *Session) spawn() {
	frame := s.run.ElapsedFrames
	if s.rng.Float64() >= s.curve.SpawnProbability(frame) {
		return
	}

	bad := s.rng.Float64() < s.curve.BadProbability(frame)
	w, h := s.cfg.Items.Width, s.cfg.Items.Height
	s.pool.Add(Item{
		X:         s.rng.Float64() * (s.cfg.Playfield.Width - w),
		Y:         -h,
		Width:     w,
		Height:    h,
		FallSpeed: s.curve.FallSpeed(frame),
		Bad:       bad,
	})
}

// dispatch turns a collision outcome into events and sounds.
func (s *Session) dispatch(o Outcome) []Event {
	var events []Event
	emit := func(kind EventKind) {
		events = append(events, Event{Kind: kind, Score: s.run.Score, Lives: s.run.Lives})
	}

	for i := 0; i < o.Catches; i++ {
		emit(EventCatch)
		s.sounds.Play(core.SoundCatch)
	}
	for i := 0; i < o.Hits; i++ {
		emit(EventHit)
		s.sounds.Play(core.SoundHit)
	}
	if o.GameOver {
		emit(EventGameOver)
		s.sounds.Play(core.SoundGameOver)
		s.sounds.Pause(core.SoundMusic)
		s.sounds.Rewind(core.SoundMusic)
	}
	return events
}

func (s *Session) result(events []Event) StepResult {
	return StepResult{Phase: s.phase, State: s.run, Events: events}
}

// Move applies a left/right input event. Ignored unless running and unpaused.
func (s *Session) Move(dir Direction) {
	if s.phase != PhaseRunning || s.paused {
		return
	}
	s.player.Move(dir, s.cfg.Playfield.Width)
}

// TogglePause pauses or resumes a running game.
func (s *Session) TogglePause() {
	if s.phase != PhaseRunning {
		return
	}
	s.paused = !s.paused
	if s.paused {
		s.sounds.Pause(core.SoundMusic)
	} else {
		s.sounds.Play(core.SoundMusic)
	}
}

// SubmitInitials records the finished game's score under the given
// initials. Invalid initials leave the session waiting for another try.
func (s *Session) SubmitInitials(raw string) (highscore.Entry, error) {
	if s.phase != PhaseAwaitingInitials {
		return highscore.Entry{}, fmt.Errorf("%w: initials while %s", ErrWrongState, s.phase)
	}

	initials, err := highscore.ValidateInitials(raw)
	if err != nil {
		return highscore.Entry{}, err
	}

	entry := highscore.Entry{Initials: initials, Score: s.run.Score}
	if s.scores != nil {
		if err := s.scores.Record(entry); err != nil {
			// The in-memory table is already updated; only persistence failed
			s.logger.Warn("could not persist high score", "error", err)
		}
	}

	s.last = &entry
	s.phase = PhaseGameOver
	return entry, nil
}

// Restart returns a finished game to character selection.
func (s *Session) Restart() error {
	if s.phase != PhaseGameOver {
		return fmt.Errorf("%w: restart while %s", ErrWrongState, s.phase)
	}
	s.reset(s.player.Sprite)
	s.phase = PhaseIdle
	return nil
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Paused reports whether a running game is paused.
func (s *Session) Paused() bool {
	return s.paused
}

// State returns a copy of the run state.
func (s *Session) State() RunState {
	return s.run
}

// Player returns a copy of the player.
func (s *Session) Player() Player {
	return s.player
}

// Items returns a copy of the falling items.
func (s *Session) Items() []Item {
	return s.pool.Items()
}

// LastEntry returns the high score entry of the last finished game, if any.
func (s *Session) LastEntry() (highscore.Entry, bool) {
	if s.last == nil {
		return highscore.Entry{}, false
	}
	return *s.last, true
}

// Playfield returns the logical playfield size.
func (s *Session) Playfield() (width, height float64) {
	return s.cfg.Playfield.Width, s.cfg.Playfield.Height
}

// silent discards all sounds.
type silent struct{}

func (silent) Play(core.Sound)   {}
func (silent) Pause(core.Sound)  {}
func (silent) Rewind(core.Sound) {}
