package game

import (
	"time"

	"github.com/lguibr/brickbreaker/input"
)

// Tick asks the loop actor to advance and draw one frame. DT is the wall time
// since the previous tick; At is when the tick fired.
type Tick struct {
	DT time.Duration
	At time.Time
}

// KeyPressed forwards one terminal key event to the loop actor.
type KeyPressed struct {
	Key input.Key
	At  time.Time
}
