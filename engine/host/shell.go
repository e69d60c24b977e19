package host

// Event names a lifecycle event of the shell.
type Event string

const (
	// EventGLInit is emitted once after the GL context is ready.
	EventGLInit Event = "gl-init"
	// EventGLRender is emitted once per frame.
	EventGLRender Event = "gl-render"
	// EventTick is emitted once per simulation step.
	EventTick Event = "tick"
)

// Subscription is returned by Shell.On and is the only way to remove that listener again.
type Subscription struct {
	event  Event
	handle Handle
}

func (s Subscription) Event() Event {
	return s.event
}

// Valid is false for the zero Subscription.
func (s Subscription) Valid() bool {
	return s.handle != 0
}

// Shell dispatches named events. Every handler receives the elapsed seconds since the previous
// event of the same kind, zero for gl-init.
type Shell struct {
	signals map[Event]*Signal[float64]
}

func NewShell() *Shell {
	return &Shell{signals: make(map[Event]*Signal[float64])}
}

func (s *Shell) signal(event Event) *Signal[float64] {
	sig, ok := s.signals[event]
	if !ok {
		sig = &Signal[float64]{}
		s.signals[event] = sig
	}
	return sig
}

func (s *Shell) On(event Event, fn func(dt float64)) Subscription {
	return Subscription{event: event, handle: s.signal(event).Connect(fn)}
}

// RemoveListener reports false if the subscription was not active.
func (s *Shell) RemoveListener(sub Subscription) bool {
	sig, ok := s.signals[sub.event]
	if !ok {
		return false
	}
	return sig.Disconnect(sub.handle)
}

func (s *Shell) Emit(event Event, dt float64) {
	if sig, ok := s.signals[event]; ok {
		sig.Emit(dt)
	}
}

func (s *Shell) ListenerCount(event Event) int {
	if sig, ok := s.signals[event]; ok {
		return sig.Len()
	}
	return 0
}
