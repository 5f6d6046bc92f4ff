// Package audio plays Skyfall's sound effects and background music.
// Sounds are synthesised from generator streamers and mixed through a
// single beep.Mixer; nothing is loaded from disk.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/skyfall/internal/core"
)

const (
	sampleRate = beep.SampleRate(48000)

	// catchRate is the playback speed of the catch chime.
	catchRate = 2.0
)

// Player plays game sounds through the system speaker. All methods are
// safe to call before Initialize, after Close, or when the speaker failed
// to open: they do nothing.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	music  *MusicGenerator
	ctrl   *beep.Ctrl
	active bool
	logger *log.Logger

	// lock/unlock guard streamers shared with the output goroutine
	lock   func()
	unlock func()
}

// NewPlayer creates a player. A nil logger uses the default logger.
func NewPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	music := NewMusicGenerator(sampleRate)
	return &Player{
		mixer:  &beep.Mixer{},
		music:  music,
		ctrl:   &beep.Ctrl{Streamer: music, Paused: true},
		logger: logger,
		lock:   func() {},
		unlock: func() {},
	}
}

// Initialize opens the speaker and starts mixing.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.active {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)

	p.lock = speaker.Lock
	p.unlock = speaker.Unlock
	p.attach()
	return nil
}

// attach puts the music control into the mixer and enables playback.
func (p *Player) attach() {
	p.lock()
	p.mixer.Add(p.ctrl)
	p.unlock()
	p.active = true
}

// Close stops all sounds.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.active {
		return
	}

	p.lock()
	p.ctrl.Paused = true
	p.mixer.Clear()
	p.unlock()
	p.active = false
}

// Play starts a sound. Effects are one-shot and may overlap; music resumes
// from its current position.
func (p *Player) Play(s core.Sound) {
	p.do("play", s, func() {
		switch s {
		case core.SoundMusic:
			p.ctrl.Paused = false
		case core.SoundCatch:
			chime := beep.Take(sampleRate.N(120*time.Millisecond), NewChimeGenerator(sampleRate, 880))
			p.mixer.Add(beep.ResampleRatio(4, catchRate, chime))
		case core.SoundHit:
			p.mixer.Add(beep.Take(sampleRate.N(150*time.Millisecond), NewBuzzGenerator(sampleRate, 120)))
		case core.SoundGameOver:
			p.mixer.Add(beep.Take(sampleRate.N(900*time.Millisecond), NewFallGenerator(sampleRate, 440, 110, 900*time.Millisecond)))
		}
	})
}

// Pause pauses the music. Effects are too short to pause.
func (p *Player) Pause(s core.Sound) {
	if s != core.SoundMusic {
		return
	}
	p.do("pause", s, func() {
		p.ctrl.Paused = true
	})
}

// Rewind moves the music back to its start.
func (p *Player) Rewind(s core.Sound) {
	if s != core.SoundMusic {
		return
	}
	p.do("rewind", s, func() {
		p.music.Reset()
	})
}

// do runs fn under the output lock. A panic from the audio stack is logged
// and swallowed.
func (p *Player) do(op string, s core.Sound, fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.active {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			p.logger.Warn("audio failure", "op", op, "sound", s, "panic", r)
		}
	}()

	p.lock()
	defer p.unlock()
	fn()
}

// Nop discards all sounds. Used for SSH sessions and --mute.
type Nop struct{}

func (Nop) Play(core.Sound)   {}
func (Nop) Pause(core.Sound)  {}
func (Nop) Rewind(core.Sound) {}
