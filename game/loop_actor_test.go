package game

import (
	"testing"
	"time"

	"github.com/lguibr/brickbreaker/bollywood"
	"github.com/lguibr/brickbreaker/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContext struct {
	self    *bollywood.PID
	message interface{}
}

func (c *fakeContext) Engine() *bollywood.Engine { return nil }
func (c *fakeContext) Self() *bollywood.PID      { return c.self }
func (c *fakeContext) Sender() *bollywood.PID    { return nil }
func (c *fakeContext) Message() interface{}      { return c.message }

func deliver(a bollywood.Actor, msg interface{}) {
	a.Receive(&fakeContext{self: &bollywood.PID{ID: "loop-test"}, message: msg})
}

func TestLoopActor_DrivesMachine(t *testing.T) {
	h := newHarness(t, fixedRandom(0.5))
	renderer := &recordingRenderer{}
	var finished []int
	actor := NewLoopActorProducer(h.machine, input.NewKeyboard(time.Second), renderer, func(score int) {
		finished = append(finished, score)
	})()

	deliver(actor, bollywood.Started{})
	require.Equal(t, StateServe, h.machine.Current())
	assert.Equal(t, 1, renderer.presentCount(), "first frame drawn on start")

	now := time.Now()
	deliver(actor, KeyPressed{Key: input.KeyConfirm, At: now})
	assert.Equal(t, StateServe, h.machine.Current(), "keys only take effect on the next tick")

	deliver(actor, Tick{DT: 16 * time.Millisecond, At: now})
	require.Equal(t, StatePlay, h.machine.Current())
	assert.Equal(t, 2, renderer.presentCount())

	h.machine.Change(GameOverHandoff{Score: 42})
	deliver(actor, KeyPressed{Key: input.KeyConfirm, At: now})
	deliver(actor, Tick{DT: 16 * time.Millisecond, At: now})
	deliver(actor, Tick{DT: 16 * time.Millisecond, At: now})

	assert.Equal(t, []int{42}, finished, "finish is reported once")
}

func TestLoopActor_HeldKeyMovesPaddle(t *testing.T) {
	h := newHarness(t, fixedRandom(0.5))
	actor := NewLoopActorProducer(h.machine, input.NewKeyboard(100*time.Millisecond), &recordingRenderer{}, nil)()
	deliver(actor, bollywood.Started{})

	paddle := h.machine.State(StateServe).(*ServeState).paddle
	startX := paddle.Position.X
	now := time.Now()

	deliver(actor, KeyPressed{Key: input.KeyRight, At: now})
	deliver(actor, Tick{DT: 10 * time.Millisecond, At: now.Add(10 * time.Millisecond)})
	assert.InDelta(t, startX+h.cfg.PaddleSpeed*0.01, paddle.Position.X, 1e-9)

	moved := paddle.Position.X
	deliver(actor, Tick{DT: 10 * time.Millisecond, At: now.Add(500 * time.Millisecond)})
	assert.Equal(t, moved, paddle.Position.X, "key released after the hold window")
}

func TestLoopActor_UnknownMessageIsIgnored(t *testing.T) {
	h := newHarness(t, fixedRandom(0.5))
	actor := NewLoopActorProducer(h.machine, input.NewKeyboard(time.Second), &recordingRenderer{}, nil)()

	assert.NotPanics(t, func() { deliver(actor, "hello") })
	assert.Contains(t, h.logs.String(), "unexpected message string")
}

func TestLoopActor_RunsOnEngine(t *testing.T) {
	h := newHarness(t, fixedRandom(0.5))
	renderer := &recordingRenderer{}
	engine := bollywood.NewEngine(nil)
	pid := engine.Spawn(bollywood.NewProps(NewLoopActorProducer(h.machine, input.NewKeyboard(time.Second), renderer, nil)))
	require.NotNil(t, pid)

	for i := 0; i < 3; i++ {
		engine.Send(pid, Tick{DT: 16 * time.Millisecond, At: time.Now()}, nil)
	}
	assert.Eventually(t, func() bool { return renderer.presentCount() == 4 }, time.Second, 5*time.Millisecond)
	engine.Shutdown(time.Second)
}

func TestFrameDelta(t *testing.T) {
	maxDelta := 50 * time.Millisecond
	assert.InDelta(t, 0.016, FrameDelta(16*time.Millisecond, maxDelta), 1e-9)
	assert.InDelta(t, 0.05, FrameDelta(time.Second, maxDelta), 1e-9)
	assert.Zero(t, FrameDelta(-time.Millisecond, maxDelta))
}
