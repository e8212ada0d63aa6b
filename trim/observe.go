package trim

import "slices"

// subscribers is a small observer list used by the state holders in this
// package. Subscribers are called in registration order. All calls happen on
// the host's event loop.
type subscribers[T any] struct {
	next    int
	entries []subscriber[T]
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

func (s *subscribers[T]) add(fn func(T)) func() {
	id := s.next
	s.next++
	s.entries = append(s.entries, subscriber[T]{id: id, fn: fn})
	return func() {
		// Copy so a notify in progress keeps iterating the old list.
		s.entries = slices.DeleteFunc(slices.Clone(s.entries), func(e subscriber[T]) bool { return e.id == id })
	}
}

func (s *subscribers[T]) notify(v T) {
	for _, e := range s.entries {
		e.fn(v)
	}
}
