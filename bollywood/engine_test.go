package bollywood

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingActor struct {
	mu       sync.Mutex
	received []interface{}
	panicOn  string
}

func (a *recordingActor) Receive(ctx Context) {
	if s, ok := ctx.Message().(string); ok && s == a.panicOn {
		panic("boom")
	}
	a.mu.Lock()
	a.received = append(a.received, ctx.Message())
	a.mu.Unlock()
}

func (a *recordingActor) messages() []interface{} {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]interface{}, len(a.received))
	copy(out, a.received)
	return out
}

func waitDone(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("actor did not stop in time")
	}
}

func TestEngine_SpawnDeliversInOrder(t *testing.T) {
	engine := NewEngine(nil)
	actor := &recordingActor{}
	pid := engine.Spawn(NewProps(func() Actor { return actor }))
	require.NotNil(t, pid)

	for i := 0; i < 5; i++ {
		engine.Send(pid, i, nil)
	}
	require.Eventually(t, func() bool { return len(actor.messages()) == 6 }, time.Second, 5*time.Millisecond)
	done := engine.Done(pid)
	engine.Stop(pid)
	waitDone(t, done)

	msgs := actor.messages()
	require.GreaterOrEqual(t, len(msgs), 2)
	assert.Equal(t, Started{}, msgs[0])
	assert.Equal(t, Stopped{}, msgs[len(msgs)-1])

	ints := []int{}
	for _, m := range msgs {
		if i, ok := m.(int); ok {
			ints = append(ints, i)
		}
	}
	for i := 1; i < len(ints); i++ {
		assert.Less(t, ints[i-1], ints[i], "messages must arrive in send order")
	}
}

func TestEngine_ReceivePanicDoesNotKillActor(t *testing.T) {
	engine := NewEngine(nil)
	actor := &recordingActor{panicOn: "explode"}
	pid := engine.Spawn(NewProps(func() Actor { return actor }))

	engine.Send(pid, "explode", nil)
	engine.Send(pid, "after", nil)

	assert.Eventually(t, func() bool {
		for _, m := range actor.messages() {
			if m == "after" {
				return true
			}
		}
		return false
	}, time.Second, 5*time.Millisecond)

	engine.Shutdown(time.Second)
	assert.Equal(t, 0, engine.count())
}

func TestEngine_SpawnAfterShutdown(t *testing.T) {
	engine := NewEngine(nil)
	engine.Shutdown(10 * time.Millisecond)
	assert.Nil(t, engine.Spawn(NewProps(func() Actor { return &recordingActor{} })))
}

func TestEngine_SendToUnknownPID(t *testing.T) {
	engine := NewEngine(nil)
	assert.NotPanics(t, func() {
		engine.Send(&PID{ID: "missing"}, "hello", nil)
		engine.Send(nil, "hello", nil)
		engine.Stop(&PID{ID: "missing"})
	})
	assert.Nil(t, engine.Done(&PID{ID: "missing"}))
}

func TestNewProps_NilProducer(t *testing.T) {
	assert.Panics(t, func() { NewProps(nil) })
}
