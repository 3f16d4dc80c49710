// Package pubsub is a typed in-process publish/subscribe broker.
package pubsub

import "sync"

const defaultBuffer = 64

// Broker fans out values of type T to the subscribers of a topic.
// Publish never blocks: a subscriber whose buffer is full misses the value.
type Broker[T any] struct {
	mu     sync.RWMutex
	topics map[string]map[*subscription[T]]struct{}
	buffer int
}

type subscription[T any] struct {
	ch     chan T
	closed bool
}

func NewBroker[T any](buffer int) *Broker[T] {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Broker[T]{
		topics: map[string]map[*subscription[T]]struct{}{},
		buffer: buffer,
	}
}

// Subscribe returns a channel of values published to topic and a function
// that cancels the subscription. Cancel is idempotent.
func (b *Broker[T]) Subscribe(topic string) (<-chan T, func()) {
	sub := &subscription[T]{ch: make(chan T, b.buffer)}

	b.mu.Lock()
	if b.topics[topic] == nil {
		b.topics[topic] = map[*subscription[T]]struct{}{}
	}
	b.topics[topic][sub] = struct{}{}
	b.mu.Unlock()

	return sub.ch, func() { b.unsubscribe(topic, sub) }
}

func (b *Broker[T]) unsubscribe(topic string, sub *subscription[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if subs, ok := b.topics[topic]; ok {
		delete(subs, sub)
		if len(subs) == 0 {
			delete(b.topics, topic)
		}
	}
	if !sub.closed {
		sub.closed = true
		close(sub.ch)
	}
}

// Publish delivers v to every current subscriber of topic.
func (b *Broker[T]) Publish(topic string, v T) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for sub := range b.topics[topic] {
		select {
		case sub.ch <- v:
		default:
		}
	}
}

// Close ends every subscription of topic.
func (b *Broker[T]) Close(topic string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for sub := range b.topics[topic] {
		if !sub.closed {
			sub.closed = true
			close(sub.ch)
		}
	}
	delete(b.topics, topic)
}

// Subscribers returns the number of live subscriptions of topic.
func (b *Broker[T]) Subscribers(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.topics[topic])
}
