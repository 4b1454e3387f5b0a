package bus

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RedisBus carries events over Redis pub/sub so multiple server instances
// can fan out to their own connected players. Same interface and the same
// at-most-once semantics: Redis pub/sub does not queue for absent
// subscribers either.
type RedisBus struct {
	client *redis.Client
	ctx    context.Context
	cancel context.CancelFunc

	mu        sync.Mutex
	listeners map[string]map[string]chan []byte
	pubsubs   map[string]*redis.PubSub
	closed    bool
}

var _ Bus = (*RedisBus)(nil)

func NewRedisBus(address, username, password string) *RedisBus {
	ctx, cancel := context.WithCancel(context.Background())
	return &RedisBus{
		client: redis.NewClient(&redis.Options{
			Addr:     address,
			Username: username,
			Password: password,
			DB:       0,
		}),
		ctx:       ctx,
		cancel:    cancel,
		listeners: make(map[string]map[string]chan []byte),
		pubsubs:   make(map[string]*redis.PubSub),
	}
}

func (b *RedisBus) Subscribe(channel string) (string, <-chan []byte) {
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

		ps := b.client.Subscribe(b.ctx, channel)
		b.pubsubs[channel] = ps
		go b.pump(channel, ps)
	}
	b.listeners[channel][id] = ch
	return id, ch
}

// pump bridges one Redis subscription onto the local listener set.
func (b *RedisBus) pump(channel string, ps *redis.PubSub) {
	for msg := range ps.Channel() {
		payload := []byte(msg.Payload)

		b.mu.Lock()
		for id, ch := range b.listeners[channel] {
			select {
			case ch <- payload:
			default:
				log.Warn().Str("channel", channel).Str("subscriber", id).Msg("dropping event for slow subscriber")
			}
		}
		b.mu.Unlock()
	}
}

func (b *RedisBus) Unsubscribe(channel, id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.listeners[channel]
	ch, ok := subs[id]
	if !ok {
		return
	}
	delete(subs, id)
	close(ch)

	if len(subs) == 0 {
		delete(b.listeners, channel)
		if ps := b.pubsubs[channel]; ps != nil {
			if err := ps.Close(); err != nil {
				log.Error().Err(err).Str("channel", channel).Msg("failed to close redis subscription")
			}
			delete(b.pubsubs, channel)
		}
	}
}

func (b *RedisBus) Publish(channel string, payload []byte) {
	if err := b.client.Publish(b.ctx, channel, payload).Err(); err != nil {
		log.Error().Err(err).Str("channel", channel).Msg("failed to publish event to redis")
	}
}

func (b *RedisBus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	b.cancel()

	for channel, ps := range b.pubsubs {
		if err := ps.Close(); err != nil {
			log.Error().Err(err).Str("channel", channel).Msg("failed to close redis subscription")
		}
		delete(b.pubsubs, channel)
	}
	for channel, subs := range b.listeners {
		for _, ch := range subs {
			close(ch)
		}
		delete(b.listeners, channel)
	}
	if err := b.client.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close redis client")
	}
}
