package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/skyfall/internal/core"
	"github.com/vovakirdan/skyfall/internal/game"
)

// Rows taken by the HUD above the playfield box.
const hudHeight = 1

// ScreenCanvas draws a session onto a terminal Screen, scaling playfield
// coordinates to character cells inside a bordered box.
type ScreenCanvas struct {
	screen         *core.Screen
	fieldW, fieldH float64
}

// NewScreenCanvas creates a canvas mapping a fieldW x fieldH playfield
// onto screen.
func NewScreenCanvas(screen *core.Screen, fieldW, fieldH float64) *ScreenCanvas {
	return &ScreenCanvas{screen: screen, fieldW: fieldW, fieldH: fieldH}
}

// area returns the inner cell rectangle the playfield occupies.
func (c *ScreenCanvas) area() (x, y, w, h int) {
	w = c.screen.Width() - 2
	h = c.screen.Height() - hudHeight - 2
	return 1, hudHeight + 1, core.Max(w, 0), core.Max(h, 0)
}

// Clear implements game.Canvas.
func (c *ScreenCanvas) Clear(flash bool) {
	c.screen.Clear()
	c.screen.DrawBox(0, hudHeight, c.screen.Width(), c.screen.Height()-hudHeight, core.ColorGray)
	if flash {
		x, y, w, h := c.area()
		c.screen.FillRect(x, y, w, h, '▓', core.ColorRed)
	}
}

// DrawSprite implements game.Canvas.
func (c *ScreenCanvas) DrawSprite(img game.Image, r core.Rect) {
	x, y, w, h := c.cells(r)
	if w == 0 || h == 0 {
		return
	}
	glyph, color := imageCell(img)
	c.screen.FillRect(x, y, w, h, glyph, color)
}

// cells converts a playfield rectangle into a clipped cell rectangle.
// Anything that overlaps the playfield covers at least one cell.
func (c *ScreenCanvas) cells(r core.Rect) (x, y, w, h int) {
	ax, ay, aw, ah := c.area()
	if aw == 0 || ah == 0 || c.fieldW <= 0 || c.fieldH <= 0 {
		return 0, 0, 0, 0
	}
	sx := float64(aw) / c.fieldW
	sy := float64(ah) / c.fieldH

	x0 := core.Clamp(int(math.Floor(r.X*sx)), 0, aw)
	y0 := core.Clamp(int(math.Floor(r.Y*sy)), 0, ah)
	x1 := core.Clamp(int(math.Ceil(r.Right()*sx)), 0, aw)
	y1 := core.Clamp(int(math.Ceil(r.Bottom()*sy)), 0, ah)
	if x1 <= x0 || y1 <= y0 {
		return 0, 0, 0, 0
	}
	return ax + x0, ay + y0, x1 - x0, y1 - y0
}

// DrawHUD writes score, lives and status on the row above the playfield.
func (c *ScreenCanvas) DrawHUD(st game.RunState, sprite game.SpriteID, paused bool) {
	c.screen.DrawText(1, 0, fmt.Sprintf("SCORE %d", st.Score), core.ColorBrightYellow)

	lives := fmt.Sprintf("LIVES %d", st.Lives)
	color := core.ColorBrightGreen
	if st.Lives <= 1 {
		color = core.ColorBrightRed
	}
	c.screen.DrawText(c.screen.Width()-len(lives)-1, 0, lives, color)

	status := sprite.Info().Title
	if paused {
		status = "PAUSED"
	}
	c.screen.DrawTextCentered(0, status, core.ColorWhite)
}

// imageCell returns the glyph and color an image is drawn with.
func imageCell(img game.Image) (rune, core.Color) {
	switch img {
	case game.ImageGoodItem:
		return '◆', core.ColorBrightGreen
	case game.ImageBadItem:
		return '✖', core.ColorBrightRed
	case game.ImagePlayerRobot:
		return spriteCell(game.SpriteRobot)
	case game.ImagePlayerWizard:
		return spriteCell(game.SpriteWizard)
	case game.ImagePlayerGhost:
		return spriteCell(game.SpriteGhost)
	default:
		return '?', core.ColorDefault
	}
}

func spriteCell(id game.SpriteID) (rune, core.Color) {
	info := id.Info()
	return info.Glyph, info.Color
}
