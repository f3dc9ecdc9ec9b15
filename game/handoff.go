package game

import (
	"errors"
	"fmt"
	"slices"
)

type StateName string

const (
	StateServe    StateName = "serve"
	StatePlay     StateName = "play"
	StateVictory  StateName = "victory"
	StateGameOver StateName = "game-over"
)

// SessionHandoff carries the session from one state to the next. The set of
// variants is closed: ServeHandoff, PlayHandoff, VictoryHandoff and
// GameOverHandoff.
type SessionHandoff interface {
	Destination() StateName
	check() error
}

type ServeHandoff struct {
	Paddle *Paddle
	Balls  []*Ball
	Bricks []*Brick
	Health int
	Score  int
	Level  int
	Keys   int
	UI     *UserInterface
}

type PlayHandoff struct {
	Paddle *Paddle
	Balls  []*Ball
	Bricks []*Brick
	Health int
	Score  int
	Level  int
	Keys   int
	UI     *UserInterface
}

type VictoryHandoff struct {
	Level  int
	Paddle *Paddle
	Health int
	Score  int
	Keys   int
	Balls  []*Ball
	UI     *UserInterface
}

type GameOverHandoff struct {
	Score int
}

func (ServeHandoff) Destination() StateName    { return StateServe }
func (PlayHandoff) Destination() StateName     { return StatePlay }
func (VictoryHandoff) Destination() StateName  { return StateVictory }
func (GameOverHandoff) Destination() StateName { return StateGameOver }

func (h ServeHandoff) check() error {
	return errors.Join(
		checkSession(h.Paddle, h.Balls, h.UI, h.Health, h.Score, h.Keys),
		checkBricks(h.Bricks),
		checkLevel(h.Level),
	)
}

func (h PlayHandoff) check() error {
	return errors.Join(
		checkSession(h.Paddle, h.Balls, h.UI, h.Health, h.Score, h.Keys),
		checkBricks(h.Bricks),
		checkLevel(h.Level),
	)
}

func (h VictoryHandoff) check() error {
	return errors.Join(
		checkSession(h.Paddle, h.Balls, h.UI, h.Health, h.Score, h.Keys),
		checkLevel(h.Level),
	)
}

func (h GameOverHandoff) check() error {
	if h.Score < 0 {
		return fmt.Errorf("negative score %d", h.Score)
	}
	return nil
}

func checkSession(paddle *Paddle, balls []*Ball, ui *UserInterface, health, score, keys int) error {
	var errs []error
	if paddle == nil {
		errs = append(errs, errors.New("missing paddle"))
	}
	if len(balls) == 0 {
		errs = append(errs, errors.New("missing balls"))
	} else if slices.Contains(balls, nil) {
		errs = append(errs, errors.New("nil ball"))
	}
	if ui == nil {
		errs = append(errs, errors.New("missing user interface"))
	}
	if health < 1 {
		errs = append(errs, fmt.Errorf("health %d below 1", health))
	}
	if score < 0 || keys < 0 {
		errs = append(errs, fmt.Errorf("negative score %d or keys %d", score, keys))
	}
	return errors.Join(errs...)
}

func checkBricks(bricks []*Brick) error {
	if len(bricks) == 0 {
		return errors.New("missing bricks")
	}
	if slices.Contains(bricks, nil) {
		return errors.New("nil brick")
	}
	return nil
}

func checkLevel(level int) error {
	if level < 1 {
		return fmt.Errorf("level %d below 1", level)
	}
	return nil
}

// expectHandoff unwraps the variant a state accepts. Any other variant, or
// one with missing session data, is a programming error and panics.
func expectHandoff[T SessionHandoff](state StateName, handoff SessionHandoff) T {
	h, ok := handoff.(T)
	if !ok {
		panic(fmt.Sprintf("%s: entered with %T", state, handoff))
	}
	if err := h.check(); err != nil {
		panic(fmt.Sprintf("%s: invalid handoff: %v", state, err))
	}
	return h
}
