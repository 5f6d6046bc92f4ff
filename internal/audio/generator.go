package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ChimeGenerator generates a bright bell-like ping
type ChimeGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewChimeGenerator creates a chime generator at the given base frequency
func NewChimeGenerator(sr beep.SampleRate, freq float64) *ChimeGenerator {
	return &ChimeGenerator{sr: sr, freq: freq}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fundamental plus a fifth, fast exponential decay
		envelope := math.Exp(-t * 18)
		sample := 0.25 * envelope * (math.Sin(2*math.Pi*g.freq*t) + 0.5*math.Sin(2*math.Pi*g.freq*1.5*t))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{sr: sr, freq: freq}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Harmonics for a harsh edge
		sample := 0.3*math.Sin(2*math.Pi*g.freq*t) +
			0.15*math.Sin(2*math.Pi*g.freq*2*t) +
			0.075*math.Sin(2*math.Pi*g.freq*3*t)

		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// FallGenerator sweeps a tone down from one frequency to another
type FallGenerator struct {
	sr       beep.SampleRate
	from, to float64
	length   int
	pos      int
	phase    float64
}

// NewFallGenerator creates a descending tone over the given duration
func NewFallGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *FallGenerator {
	length := sr.N(d)
	if length < 1 {
		length = 1
	}
	return &FallGenerator{sr: sr, from: from, to: to, length: length}
}

func (g *FallGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.length), 1.0)
		freq := g.from + (g.to-g.from)*progress

		// Accumulate phase so the sweep stays continuous
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		sample := 0.2 * (1 - progress) * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *FallGenerator) Err() error {
	return nil
}

// MusicGenerator generates an endless bass-and-arpeggio loop
type MusicGenerator struct {
	sr   beep.SampleRate
	pos  int
	beat int
}

// A minor arpeggio, one note per beat
var musicNotes = []float64{220, 261.63, 329.63, 261.63}

// NewMusicGenerator creates a music generator at 120 BPM
func NewMusicGenerator(sr beep.SampleRate) *MusicGenerator {
	return &MusicGenerator{sr: sr, beat: sr.N(500 * time.Millisecond)}
}

func (g *MusicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beatIdx := (g.pos / g.beat) % len(musicNotes)
		beatPos := g.pos % g.beat
		t := float64(g.pos) / float64(g.sr)
		bt := float64(beatPos) / float64(g.sr)

		bass := 0.08 * math.Sin(2*math.Pi*55*t)
		lead := 0.06 * math.Exp(-bt*6) * math.Sin(2*math.Pi*musicNotes[beatIdx]*t)
		sample := bass + lead

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *MusicGenerator) Err() error {
	return nil
}

// Position returns the number of samples generated since the last reset.
func (g *MusicGenerator) Position() int {
	return g.pos
}

// Reset moves the loop back to its first sample.
func (g *MusicGenerator) Reset() {
	g.pos = 0
}
