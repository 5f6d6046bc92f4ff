package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/skyfall/internal/core"
)

// SpriteID selects the character the player controls.
type SpriteID int

const (
	SpriteRobot SpriteID = iota
	SpriteWizard
	SpriteGhost
)

// Sprite describes a selectable character.
type Sprite struct {
	ID    SpriteID
	Name  string // CLI and storage identifier
	Title string // Display name
	Glyph rune
	Color core.Color
}

var sprites = []Sprite{
	{ID: SpriteRobot, Name: "robot", Title: "Robot", Glyph: '█', Color: core.ColorCyan},
	{ID: SpriteWizard, Name: "wizard", Title: "Wizard", Glyph: '▲', Color: core.ColorMagenta},
	{ID: SpriteGhost, Name: "ghost", Title: "Ghost", Glyph: '▒', Color: core.ColorWhite},
}

// Sprites returns all selectable characters in menu order.
func Sprites() []Sprite {
	out := make([]Sprite, len(sprites))
	copy(out, sprites)
	return out
}

// Info returns the description of this sprite.
// Unknown IDs fall back to the first character.
func (id SpriteID) Info() Sprite {
	for _, s := range sprites {
		if s.ID == id {
			return s
		}
	}
	return sprites[0]
}

// String returns the sprite name.
func (id SpriteID) String() string {
	return id.Info().Name
}

// Valid reports whether id names a known character.
func (id SpriteID) Valid() bool {
	return id >= SpriteRobot && id <= SpriteGhost
}

// ParseSprite resolves a character name (case-insensitive).
func ParseSprite(name string) (SpriteID, error) {
	for _, s := range sprites {
		if strings.EqualFold(s.Name, name) {
			return s.ID, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSprite, name)
}

// Image identifies what a Canvas draws for a sprite.
type Image int

const (
	ImageGoodItem Image = iota
	ImageBadItem
	ImagePlayerRobot
	ImagePlayerWizard
	ImagePlayerGhost
)

// Image returns the canvas image of the player character.
func (id SpriteID) Image() Image {
	switch id {
	case SpriteWizard:
		return ImagePlayerWizard
	case SpriteGhost:
		return ImagePlayerGhost
	default:
		return ImagePlayerRobot
	}
}
