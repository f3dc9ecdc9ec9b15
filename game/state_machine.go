// File: game/state_machine.go
package game

import (
	"fmt"
	"io"
	"log"

	"github.com/lguibr/brickbreaker/input"
	"github.com/lguibr/brickbreaker/utils"
)

// State is one screen of the game. Enter receives the session, Exit releases
// it.
type State interface {
	Enter(handoff SessionHandoff)
	Exit()
	Update(dt float64)
	Render(r Renderer)
}

// Context holds the collaborators shared by every state.
type Context struct {
	Config utils.Config
	Input  *input.State
	Audio  Audio
	Levels LevelMaker
	Random utils.RandomSource
	Logger *log.Logger
}

type StateMachine struct {
	ctx         *Context
	states      map[StateName]State
	current     State
	currentName StateName
	finished    bool
	finalScore  int
}

// NewStateMachine registers the four game states. Missing collaborators in
// ctx are filled with silent or default implementations.
func NewStateMachine(ctx *Context) *StateMachine {
	if ctx.Input == nil {
		ctx.Input = &input.State{}
	}
	if ctx.Audio == nil {
		ctx.Audio = NopAudio{}
	}
	if ctx.Logger == nil {
		ctx.Logger = log.New(io.Discard, "", 0)
	}
	if ctx.Random == nil {
		ctx.Random = utils.NewRandomSource(ctx.Config.Seed)
	}
	if ctx.Levels == nil {
		ctx.Levels = NewProceduralLevels(ctx.Config, ctx.Random)
	}

	m := &StateMachine{ctx: ctx}
	m.states = map[StateName]State{
		StateServe:    &ServeState{machine: m},
		StatePlay:     &PlayState{machine: m},
		StateVictory:  &VictoryState{machine: m},
		StateGameOver: &GameOverState{machine: m},
	}
	return m
}

// NewSession builds the opening handoff: fresh paddle, one ball, the
// starting level's bricks and full health.
func (m *StateMachine) NewSession() ServeHandoff {
	cfg := m.ctx.Config
	level := cfg.StartingLevel
	return ServeHandoff{
		Paddle: NewPaddle(cfg),
		Balls:  []*Ball{NewBall(cfg)},
		Bricks: m.ctx.Levels.CreateMap(level),
		Health: cfg.StartingHealth,
		Level:  level,
		UI:     NewUserInterface(cfg, cfg.StartingHealth, 0, level, 0),
	}
}

// Start enters Serve with a new session.
func (m *StateMachine) Start() {
	m.finished = false
	m.finalScore = 0
	m.Change(m.NewSession())
}

// Change exits the current state and enters the one named by the handoff.
func (m *StateMachine) Change(handoff SessionHandoff) {
	if handoff == nil {
		panic("state machine: nil handoff")
	}
	name := handoff.Destination()
	next, ok := m.states[name]
	if !ok {
		panic(fmt.Sprintf("state machine: unknown state %q", name))
	}

	if m.current != nil {
		m.current.Exit()
	}
	m.ctx.Logger.Printf("state %s -> %s", m.currentName, name)
	m.current = next
	m.currentName = name
	next.Enter(handoff)
}

func (m *StateMachine) Update(dt float64) {
	if m.current == nil || m.finished {
		return
	}
	m.current.Update(dt)
}

func (m *StateMachine) Render(r Renderer) {
	r.Clear()
	if m.current != nil {
		m.current.Render(r)
	}
	r.Present()
}

// Finish ends the session; Update becomes a no-op.
func (m *StateMachine) Finish(score int) {
	m.finished = true
	m.finalScore = score
	m.ctx.Logger.Printf("session finished, final score %d", score)
}

func (m *StateMachine) Finished() bool             { return m.finished }
func (m *StateMachine) FinalScore() int            { return m.finalScore }
func (m *StateMachine) Current() StateName         { return m.currentName }
func (m *StateMachine) Context() *Context          { return m.ctx }
func (m *StateMachine) State(name StateName) State { return m.states[name] }
