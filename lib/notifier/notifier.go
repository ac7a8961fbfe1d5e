// Package notifier is a small in-process broadcast topic. The client uses a
// single named topic to fan out session expiry to whoever mounted the global
// prompt, no matter which in-flight request detected it.
package notifier

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Listener receives topic messages.
type Listener[T any] interface {
	ID() string
	Listen() <-chan T
}

// Topic fans a message out to every live subscription. Subscribers that are
// not draining their channel miss messages instead of blocking the
// broadcaster.
type Topic[T any] struct {
	mu     sync.Mutex
	subs   map[string]*Subscription[T]
	buffer int
}

func NewTopic[T any](buffer int) *Topic[T] {
	if buffer <= 0 {
		buffer = 1
	}
	return &Topic[T]{
		subs:   make(map[string]*Subscription[T]),
		buffer: buffer,
	}
}

func (t *Topic[T]) Subscribe() *Subscription[T] {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := &Subscription[T]{
		id:    uuid.NewString(),
		ch:    make(chan T, t.buffer),
		topic: t,
	}
	t.subs[s.id] = s
	return s
}

func (t *Topic[T]) Remove(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.subs[id]
	if !ok {
		return
	}
	delete(t.subs, id)
	close(s.ch)
}

func (t *Topic[T]) Broadcast(message T) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for id, s := range t.subs {
		select {
		case s.ch <- message:
		default:
			log.Debug().Msgf("notifier: subscription %v not draining, message dropped", id)
		}
	}
}

var _ Listener[any] = &Subscription[any]{}

type Subscription[T any] struct {
	id    string
	ch    chan T
	topic *Topic[T]
}

func (s *Subscription[T]) ID() string {
	return s.id
}

// Listen yields broadcast messages. The channel closes when the
// subscription is removed from its topic.
func (s *Subscription[T]) Listen() <-chan T {
	return s.ch
}

// Close detaches from the topic.
func (s *Subscription[T]) Close() {
	s.topic.Remove(s.id)
}
