package store

import "sync"

// Signal is the side channel handlers publish completion values on. It is
// deliberately not a Store: it has no current value and no replay, only
// fan-out of publishes to live subscribers.
type Signal[T any] struct {
	mu   sync.Mutex
	subs []chan T
}

func NewSignal[T any]() *Signal[T] {
	return &Signal[T]{}
}

func (s *Signal[T]) Publish(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sub := range s.subs {
		sub <- v
	}
}

func (s *Signal[T]) Subscribe() <-chan T {
	ch := make(chan T, subscriberBuffer)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

// Merge republishes every value from the given signals onto one channel.
// Ordering across sources is arrival order, which is all the reload trigger
// needs.
func Merge[T any](signals ...*Signal[T]) <-chan T {
	out := make(chan T, subscriberBuffer)
	for _, sig := range signals {
		in := sig.Subscribe()
		go func(in <-chan T) {
			for v := range in {
				out <- v
			}
		}(in)
	}
	return out
}
