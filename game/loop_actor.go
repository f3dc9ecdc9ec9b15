// File: game/loop_actor.go
package game

import (
	"runtime/debug"
	"time"

	"github.com/lguibr/brickbreaker/bollywood"
	"github.com/lguibr/brickbreaker/input"
)

// LoopActor owns the state machine and drives it from its mailbox, so every
// entity list is mutated from a single goroutine.
type LoopActor struct {
	machine  *StateMachine
	keyboard *input.Keyboard
	renderer Renderer
	onFinish func(score int)

	selfPID  *bollywood.PID
	frames   uint64
	reported bool
}

// NewLoopActorProducer creates a producer for the LoopActor. onFinish is
// called once, from the actor goroutine, when the session ends.
func NewLoopActorProducer(machine *StateMachine, keyboard *input.Keyboard, renderer Renderer, onFinish func(score int)) bollywood.Producer {
	return func() bollywood.Actor {
		return &LoopActor{
			machine:  machine,
			keyboard: keyboard,
			renderer: renderer,
			onFinish: onFinish,
		}
	}
}

func (a *LoopActor) Receive(ctx bollywood.Context) {
	logger := a.machine.ctx.Logger
	defer func() {
		if r := recover(); r != nil {
			logger.Printf("PANIC recovered in LoopActor %s Receive: %v\nStack trace:\n%s", a.selfPID, r, string(debug.Stack()))
		}
	}()

	switch m := ctx.Message().(type) {
	case bollywood.Started:
		a.selfPID = ctx.Self()
		logger.Printf("LoopActor %s: started", a.selfPID)
		a.machine.Start()
		a.machine.Render(a.renderer)

	case KeyPressed:
		a.keyboard.Press(m.Key, m.At)

	case Tick:
		a.tick(m)

	case bollywood.Stopping:
		logger.Printf("LoopActor %s: stopping after %d frames", a.selfPID, a.frames)

	case bollywood.Stopped:
		logger.Printf("LoopActor %s: stopped", a.selfPID)

	default:
		logger.Printf("WARN: LoopActor %s: unexpected message %T", a.selfPID, m)
	}
}

func (a *LoopActor) tick(m Tick) {
	a.keyboard.Apply(a.machine.ctx.Input, m.At)
	a.machine.Update(FrameDelta(m.DT, a.machine.ctx.Config.MaxFrameDelta))
	a.machine.Render(a.renderer)
	a.frames++

	if a.machine.Finished() && !a.reported {
		a.reported = true
		if a.onFinish != nil {
			a.onFinish(a.machine.FinalScore())
		}
	}
}

// FrameDelta clamps a raw frame duration to the configured maximum, in
// seconds.
func FrameDelta(raw, maxDelta time.Duration) float64 {
	return min(max(raw, 0), maxDelta).Seconds()
}
