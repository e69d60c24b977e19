// Package host is the plugin host: a registry of named plugins, an event shell that dispatches the
// lifecycle events, and the Game that ties a voxel world and a camera to both.
package host

// Handle identifies one connected handler. The zero Handle is never issued.
type Handle uint64

type slot[T any] struct {
	handle Handle
	fn     func(T)
}

// Signal is a synchronous, single-threaded event source. Handlers run in connection order.
type Signal[T any] struct {
	next  Handle
	slots []slot[T]
}

// Connect registers fn and returns the handle needed to disconnect it. Connecting the same
// function twice registers it twice.
func (s *Signal[T]) Connect(fn func(T)) Handle {
	s.next++
	s.slots = append(s.slots, slot[T]{handle: s.next, fn: fn})
	return s.next
}

// Disconnect removes the handler. It reports false for unknown or already removed handles.
func (s *Signal[T]) Disconnect(h Handle) bool {
	for i, sl := range s.slots {
		if sl.handle == h {
			s.slots = append(s.slots[:i:i], s.slots[i+1:]...)
			return true
		}
	}
	return false
}

// Emit calls every handler connected at the time of the call. Handlers may connect or disconnect
// during Emit; that takes effect from the next Emit on.
func (s *Signal[T]) Emit(value T) {
	slots := s.slots
	for _, sl := range slots {
		sl.fn(value)
	}
}

func (s *Signal[T]) Len() int {
	return len(s.slots)
}
