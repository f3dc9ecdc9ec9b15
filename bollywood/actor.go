package bollywood

// Actor processes the messages delivered to its mailbox, one at a time.
type Actor interface {
	Receive(ctx Context)
}

// Producer creates a fresh Actor instance for a spawned process.
type Producer func() Actor

// Props describes how to build an actor.
type Props struct {
	producer Producer
}

// NewProps panics on a nil producer.
func NewProps(producer Producer) *Props {
	if producer == nil {
		panic("bollywood: producer cannot be nil")
	}
	return &Props{producer: producer}
}

// Produce builds a new actor instance.
func (p *Props) Produce() Actor {
	return p.producer()
}

// PID identifies a running actor process.
type PID struct {
	ID string
}

func (pid *PID) String() string {
	if pid == nil {
		return "<nil>"
	}
	return pid.ID
}
