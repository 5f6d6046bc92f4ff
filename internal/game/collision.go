package game

import "github.com/vovakirdan/skyfall/internal/core"

// RunState is the score and lives of the current game.
type RunState struct {
	Score         int
	Lives         int
	ElapsedFrames int
	Running       bool
	Flash         bool // A life was lost this tick
}

// Outcome summarizes one collision pass.
type Outcome struct {
	Catches  int  // Good items caught
	Hits     int  // Bad items that cost a life
	GameOver bool // Lives reached zero during this pass
}

// resolveCollisions advances every item by its fall speed and consumes the
// ones that overlap the player. Consumed items are removed exactly once;
// the remaining items keep their order.
//
// Once lives reach zero, further overlapping items in the same pass are
// still consumed but no longer change the run state.
func resolveCollisions(pool *ItemPool, player core.Rect, run *RunState) Outcome {
	var out Outcome

	pool.Compact(func(it *Item) bool {
		it.Y += it.FallSpeed

		if !it.Rect().Intersects(player) {
			return true
		}

		if !run.Running {
			return false
		}

		if it.Bad {
			run.Lives--
			run.Flash = true
			out.Hits++
			if run.Lives <= 0 {
				run.Lives = 0
				run.Running = false
				out.GameOver = true
			}
		} else {
			run.Score++
			out.Catches++
		}
		return false
	})

	return out
}

// pruneOffscreen drops items whose top edge is below the playfield.
func pruneOffscreen(pool *ItemPool, fieldHeight float64) int {
	before := pool.Len()
	pool.Compact(func(it *Item) bool {
		return it.Y < fieldHeight
	})
	return before - pool.Len()
}
