package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Keyboard tracks key presses reported by the terminal. Terminals send no
// key-up events, so a movement key counts as held for holdWindow after its
// most recent press or auto-repeat.
type Keyboard struct {
	holdWindow time.Duration
	lastSeen   map[Key]time.Time
	confirm    bool
	pause      bool
}

func NewKeyboard(holdWindow time.Duration) *Keyboard {
	return &Keyboard{
		holdWindow: holdWindow,
		lastSeen:   make(map[Key]time.Time),
	}
}

// Press records a key event observed at the given time.
func (k *Keyboard) Press(key Key, at time.Time) {
	switch key {
	case KeyLeft:
		// Reversing direction releases the opposite key immediately.
		delete(k.lastSeen, KeyRight)
		k.lastSeen[key] = at
	case KeyRight:
		delete(k.lastSeen, KeyLeft)
		k.lastSeen[key] = at
	case KeyConfirm:
		k.confirm = true
	case KeyPause:
		k.pause = true
	}
}

// IsKeyDown reports whether a movement key is held at now.
func (k *Keyboard) IsKeyDown(key Key, now time.Time) bool {
	seen, ok := k.lastSeen[key]
	if !ok {
		return false
	}
	return now.Sub(seen) <= k.holdWindow
}

// Apply copies the keyboard into the frame snapshot and hands over any
// latched presses.
func (k *Keyboard) Apply(state *State, now time.Time) {
	state.Left = k.IsKeyDown(KeyLeft, now)
	state.Right = k.IsKeyDown(KeyRight, now)
	if k.confirm {
		state.PressConfirm()
		k.confirm = false
	}
	if k.pause {
		state.PressPause()
		k.pause = false
	}
}

// Translate maps a tcell key event onto a game key.
func Translate(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyEnter:
		return KeyConfirm
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return KeyQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A', 'h':
			return KeyLeft
		case 'd', 'D', 'l':
			return KeyRight
		case ' ':
			return KeyConfirm
		case 'p', 'P':
			return KeyPause
		case 'q', 'Q':
			return KeyQuit
		}
	}
	return KeyNone
}
