package bollywood

import (
	"runtime/debug"
	"sync"
	"sync/atomic"
)

const defaultMailboxSize = 1024

// process is the running instance of an actor: its mailbox and run loop.
type process struct {
	engine   *Engine
	pid      *PID
	actor    Actor
	props    *Props
	mailbox  chan *messageEnvelope
	stopCh   chan struct{}
	stopOnce sync.Once
	doneCh   chan struct{}
	stopped  atomic.Bool
}

func newProcess(engine *Engine, pid *PID, props *Props) *process {
	return &process{
		engine:  engine,
		pid:     pid,
		props:   props,
		mailbox: make(chan *messageEnvelope, defaultMailboxSize),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

func (p *process) closeStop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
}

// sendMessage never blocks; a full mailbox drops the message.
func (p *process) sendMessage(message interface{}, sender *PID) {
	if p.stopped.Load() && !isSystemMessage(message) {
		return
	}

	select {
	case p.mailbox <- &messageEnvelope{Sender: sender, Message: message}:
	default:
		p.engine.logger.Printf("WARN: actor %s mailbox full, dropping %T", p.pid.ID, message)
	}
}

func (p *process) run() {
	defer close(p.doneCh)
	defer func() {
		p.stopped.Store(true)
		if p.actor != nil {
			p.invokeReceive(Stopped{}, nil)
		}
		p.engine.remove(p.pid)
	}()
	defer func() {
		if r := recover(); r != nil {
			p.engine.logger.Printf("WARN: actor %s panicked: %v\n%s", p.pid.ID, r, debug.Stack())
			p.stopped.Store(true)
			p.closeStop()
		}
	}()

	p.actor = p.props.Produce()
	if p.actor == nil {
		panic("bollywood: producer returned nil actor for " + p.pid.ID)
	}

	for {
		select {
		case <-p.stopCh:
			if p.stopped.CompareAndSwap(false, true) {
				p.invokeReceive(Stopping{}, nil)
			}
			return

		case envelope := <-p.mailbox:
			switch msg := envelope.Message.(type) {
			case Stopping:
				if p.stopped.CompareAndSwap(false, true) {
					p.invokeReceive(msg, envelope.Sender)
				}
				p.closeStop()
			case Stopped:
				// delivered by the deferred cleanup only
			default:
				if p.stopped.Load() {
					continue
				}
				p.invokeReceive(msg, envelope.Sender)
			}
		}
	}
}

// invokeReceive shields the loop from panics inside a single Receive call.
func (p *process) invokeReceive(msg interface{}, sender *PID) {
	ctx := &context{
		engine:  p.engine,
		self:    p.pid,
		sender:  sender,
		message: msg,
	}

	defer func() {
		if r := recover(); r != nil {
			p.engine.logger.Printf("WARN: actor %s panicked during Receive(%T): %v\n%s", p.pid.ID, msg, r, debug.Stack())
		}
	}()
	p.actor.Receive(ctx)
}
