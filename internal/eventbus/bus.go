// Package eventbus provides the process-wide publish/subscribe bus used to
// notify mounted views about data mutations.
package eventbus

import "sync"

// TopicLogbookReload is published after any entry or logbook mutation.
// The payload is the affected logbook id (int64).
const TopicLogbookReload = "logbook.reload"

// Event is a published notification.
type Event struct {
	Topic   string
	Payload any
}

// Bus fans events out to subscribers. Publish is fire-and-forget: there is
// no acknowledgment and no ordering guarantee across subscribers.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[string]map[int]func(Event)
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{subs: make(map[string]map[int]func(Event))}
}

// Subscribe registers fn for a topic and returns a cancel function.
// Views subscribe when they mount and must cancel when they unmount.
func (b *Bus) Subscribe(topic string, fn func(Event)) (cancel func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]func(Event))
	}
	id := b.nextID
	b.nextID++
	b.subs[topic][id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[topic], id)
	}
}

// Publish delivers the event to all current subscribers of the topic.
// Each subscriber is invoked on its own goroutine.
func (b *Bus) Publish(topic string, payload any) {
	b.mu.RLock()
	fns := make([]func(Event), 0, len(b.subs[topic]))
	for _, fn := range b.subs[topic] {
		fns = append(fns, fn)
	}
	b.mu.RUnlock()

	ev := Event{Topic: topic, Payload: payload}
	for _, fn := range fns {
		go fn(ev)
	}
}
