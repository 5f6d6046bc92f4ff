package game

import "github.com/vovakirdan/skyfall/internal/core"

// Item is a falling object. Bad items cost a life, good items score a point.
type Item struct {
	X, Y          float64
	Width, Height float64
	FallSpeed     float64
	Bad           bool
}

// Rect returns the item's collision box.
func (it Item) Rect() core.Rect {
	return core.NewRect(it.X, it.Y, it.Width, it.Height)
}

// Image returns the canvas image for this item.
func (it Item) Image() Image {
	if it.Bad {
		return ImageBadItem
	}
	return ImageGoodItem
}

// ItemPool holds the falling items in spawn order.
type ItemPool struct {
	items []Item
}

// Len returns the number of items in the pool.
func (p *ItemPool) Len() int {
	return len(p.items)
}

// Add appends a freshly spawned item.
func (p *ItemPool) Add(it Item) {
	p.items = append(p.items, it)
}

// Items returns a copy of the pool contents.
func (p *ItemPool) Items() []Item {
	out := make([]Item, len(p.items))
	copy(out, p.items)
	return out
}

// Reset empties the pool.
func (p *ItemPool) Reset() {
	p.items = p.items[:0]
}

// Compact keeps only the items for which keep returns true, preserving order.
// keep may modify the item; the modified value is what stays in the pool.
// Each item is visited exactly once.
func (p *ItemPool) Compact(keep func(it *Item) bool) {
	kept := 0
	for i := range p.items {
		it := p.items[i]
		if keep(&it) {
			p.items[kept] = it
			kept++
		}
	}
	// Zero the tail so dropped items don't linger in the backing array
	clear(p.items[kept:])
	p.items = p.items[:kept]
}
