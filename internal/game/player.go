package game

import (
	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/core"
)

// Direction is a horizontal movement request from the input handler.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// Player is the catcher at the bottom of the playfield. Y never changes.
type Player struct {
	X, Y          float64
	Width, Height float64
	MoveSpeed     float64
	Sprite        SpriteID
}

// newPlayer places the player at its configured start position.
func newPlayer(cfg config.PlayerConfig, sprite SpriteID) Player {
	return Player{
		X:         cfg.X,
		Y:         cfg.Y,
		Width:     cfg.Width,
		Height:    cfg.Height,
		MoveSpeed: cfg.MoveSpeed,
		Sprite:    sprite,
	}
}

// Rect returns the player's collision box.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Move shifts the player by one step, keeping the whole sprite inside
// [0, fieldWidth].
func (p *Player) Move(dir Direction, fieldWidth float64) {
	dx := p.MoveSpeed
	if dir == DirLeft {
		dx = -dx
	}
	maxX := fieldWidth - p.Width
	if maxX < 0 {
		maxX = 0
	}
	p.X = core.ClampF(p.X+dx, 0, maxX)
}
