// Package input turns terminal key events into the per-frame key state the
// simulation polls.
package input

// Key is a game action, independent of the physical key bound to it.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyConfirm
	KeyPause
	KeyQuit
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyConfirm:
		return "confirm"
	case KeyPause:
		return "pause"
	case KeyQuit:
		return "quit"
	}
	return "none"
}

// State is the input snapshot polled once per frame. Left and Right are held
// flags; Confirm and Pause are latched presses that stay set until consumed.
type State struct {
	Left  bool
	Right bool

	confirm bool
	pause   bool
}

func (s *State) PressConfirm() { s.confirm = true }
func (s *State) PressPause()   { s.pause = true }

// ConsumeConfirm reports a pending confirm press and clears it.
func (s *State) ConsumeConfirm() bool {
	pressed := s.confirm
	s.confirm = false
	return pressed
}

// ConsumePause reports a pending pause press and clears it.
func (s *State) ConsumePause() bool {
	pressed := s.pause
	s.pause = false
	return pressed
}
