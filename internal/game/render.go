package game

import "github.com/vovakirdan/skyfall/internal/core"

// Canvas is the drawing surface the session renders onto.
// Coordinates are in playfield units.
type Canvas interface {
	// Clear wipes the surface; flash paints it in the warning color.
	Clear(flash bool)
	// DrawSprite draws an image covering r.
	DrawSprite(img Image, r core.Rect)
}

// Draw renders the background, the player and every item.
func (s *Session) Draw(c Canvas) {
	c.Clear(s.run.Flash)
	c.DrawSprite(s.player.Sprite.Image(), s.player.Rect())
	for _, it := range s.pool.items {
		c.DrawSprite(it.Image(), it.Rect())
	}
}
