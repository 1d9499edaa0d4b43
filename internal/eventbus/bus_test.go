package eventbus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	bus := New()

	var wg sync.WaitGroup
	wg.Add(2)

	var mu sync.Mutex
	var got []any

	for i := 0; i < 2; i++ {
		bus.Subscribe(TopicLogbookReload, func(ev Event) {
			mu.Lock()
			got = append(got, ev.Payload)
			mu.Unlock()
			wg.Done()
		})
	}

	bus.Publish(TopicLogbookReload, int64(7))
	wg.Wait()

	assert.Equal(t, []any{int64(7), int64(7)}, got)
}

func TestCancelStopsDelivery(t *testing.T) {
	bus := New()

	delivered := make(chan struct{}, 1)
	cancel := bus.Subscribe(TopicLogbookReload, func(Event) {
		delivered <- struct{}{}
	})
	cancel()

	bus.Publish(TopicLogbookReload, int64(1))

	select {
	case <-delivered:
		t.Fatal("subscriber invoked after cancel")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPublishWithoutSubscribersIsNoop(t *testing.T) {
	bus := New()
	assert.NotPanics(t, func() {
		bus.Publish("no.such.topic", nil)
	})
}
