// Package bus fans mutation events out to the per-screen event streams
// players hold open. Delivery is at-most-once and best-effort: a listener
// that is not subscribed at publish time never sees the event, and
// listener-side refetch logic is expected to be idempotent under duplicate
// delivery.
package bus

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ScreenChannel is the channel key for one screen's event stream.
func ScreenChannel(screenID int) string {
	return fmt.Sprintf("screen:%d", screenID)
}

// Bus is the fan-out contract. Construct once at process start, Close at
// shutdown; horizontal scaling swaps the implementation (see RedisBus)
// without touching this interface.
type Bus interface {
	// Subscribe registers a listener on a channel and returns its id and
	// delivery channel. Subscribing is idempotent per returned id.
	Subscribe(channel string) (id string, events <-chan []byte)
	// Unsubscribe removes a listener; unknown ids are a no-op.
	Unsubscribe(channel, id string)
	// Publish delivers payload to every listener currently on the channel.
	// No queueing, no persistence, no dedup.
	Publish(channel string, payload []byte)
	Close()
}

// subscriberBuffer is small: events are invalidation pings, and a player
// that is too slow to drain them converges anyway on its next full refetch.
const subscriberBuffer = 8

func newSubscriberID() string {
	return uuid.NewString()
}

// MemoryBus is the single-process implementation: a mutex-guarded map of
// channel key to listener set.
type MemoryBus struct {
	mu        sync.RWMutex
	listeners map[string]map[string]chan []byte
	closed    bool
}

var _ Bus = (*MemoryBus)(nil)

func NewMemoryBus() *MemoryBus {
	return &MemoryBus{listeners: make(map[string]map[string]chan []byte)}
}

func (b *MemoryBus) Subscribe(channel string) (string, <-chan []byte) {
	id := newSubscriberID()
	ch := make(chan []byte, subscriberBuffer)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return id, ch
	}
	if b.listeners[channel] == nil {
		b.listeners[channel] = make(map[string]chan []byte)
	}
	b.listeners[channel][id] = ch
	return id, ch
}

func (b *MemoryBus) Unsubscribe(channel, id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.listeners[channel]
	ch, ok := subs[id]
	if !ok {
		return
	}
	delete(subs, id)
	if len(subs) == 0 {
		delete(b.listeners, channel)
	}
	close(ch)
}

func (b *MemoryBus) Publish(channel string, payload []byte) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, ch := range b.listeners[channel] {
		select {
		case ch <- payload:
		default:
			// Saturated listener: drop rather than block the publisher.
			log.Warn().Str("channel", channel).Str("subscriber", id).Msg("dropping event for slow subscriber")
		}
	}
}

func (b *MemoryBus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for channel, subs := range b.listeners {
		for _, ch := range subs {
			close(ch)
		}
		delete(b.listeners, channel)
	}
}
