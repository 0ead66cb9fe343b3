// Package store provides a small reactive container: one current value,
// mutated only by registered handlers, observed through subscriptions.
//
// Every handler invocation for a store runs on that store's single run
// goroutine, so the n-th invocation always sees the value produced by the
// (n-1)-th even when events arrive concurrently from independent sources.
// Different stores are independent; nothing orders handlers across them.
package store

import (
	"sync"
)

// subscriber channels are buffered so a briefly slow reader does not stall
// the run loop; a reader that stops draining eventually backpressures the
// whole store, which is the intended failure mode.
const subscriberBuffer = 64

type state[T any] struct {
	value T
	subs  []chan T
}

type Store[T any] struct {
	ops  chan func(*state[T])
	done chan struct{}
	once sync.Once
}

// New builds a store owning initial and starts its run goroutine. Close
// releases the goroutine and closes all subscriber channels.
func New[T any](initial T) *Store[T] {
	s := &Store[T]{
		ops:  make(chan func(*state[T]), subscriberBuffer),
		done: make(chan struct{}),
	}
	go s.run(initial)
	return s
}

func (s *Store[T]) run(initial T) {
	st := &state[T]{value: initial}
	for {
		select {
		case <-s.done:
			for _, sub := range st.subs {
				close(sub)
			}
			return
		case op := <-s.ops:
			op(st)
		}
	}
}

func (s *Store[T]) enqueue(op func(*state[T])) bool {
	select {
	case s.ops <- op:
		return true
	case <-s.done:
		return false
	}
}

func broadcast[T any](st *state[T]) {
	for _, sub := range st.subs {
		sub <- st.value
	}
}

// Handle registers a transform and returns the event sink that feeds it.
// Each event runs transform against the store's current value on the run
// goroutine and publishes the result to all subscribers.
func Handle[T, E any](s *Store[T], transform func(current T, event E) T) func(E) {
	return func(event E) {
		s.enqueue(func(st *state[T]) {
			st.value = transform(st.value, event)
			broadcast(st)
		})
	}
}

// HandleWithOffer is Handle with a side channel: the transform receives an
// offer callback publishing on the returned signal. Offers are the only way
// a handler's completion triggers work elsewhere; they never share the
// store's value stream.
func HandleWithOffer[T, E, O any](s *Store[T], transform func(current T, event E, offer func(O)) T) (func(E), *Signal[O]) {
	sig := NewSignal[O]()
	sink := func(event E) {
		s.enqueue(func(st *state[T]) {
			st.value = transform(st.value, event, sig.Publish)
			broadcast(st)
		})
	}
	return sink, sig
}

// Subscribe returns a channel delivering the store's current value first,
// then every subsequent published value in publish order. The channel is
// closed when the store closes.
func (s *Store[T]) Subscribe() <-chan T {
	ch := make(chan T, subscriberBuffer)
	ok := s.enqueue(func(st *state[T]) {
		st.subs = append(st.subs, ch)
		ch <- st.value
	})
	if !ok {
		close(ch)
	}
	return ch
}

// Value snapshots the current value by queueing behind any in-flight
// handlers. A closed store yields the zero value.
func (s *Store[T]) Value() T {
	res := make(chan T, 1)
	if !s.enqueue(func(st *state[T]) { res <- st.value }) {
		var zero T
		return zero
	}
	return <-res
}

func (s *Store[T]) Close() {
	s.once.Do(func() { close(s.done) })
}
