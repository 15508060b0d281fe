package subscribe

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/cuemby/eventstore/pkg/eventcodec"
	"github.com/cuemby/eventstore/pkg/log"
	"github.com/cuemby/eventstore/pkg/topic"
)

// ErrAlreadySubscribed is returned by Subscribe when (topic, peer) already
// has an active subscription.
var ErrAlreadySubscribed = errors.New("subscribe: already subscribed")

// DefaultBlockMS is the recommended tuning point between unsubscribe
// latency and idle CPU (spec.md §4.D).
const DefaultBlockMS = 1000

// Notification is what the follow loop emits to the client stream for one
// delivered entry.
type Notification struct {
	EventID string
	EventTS float64
	Action  string
	Data    []byte
}

type subKey struct {
	Topic string
	Peer  string
}

// subState is the flag cell spec.md §4.D describes: a single boolean
// readable from the follow loop and writable by the unsubscribe handler.
// The multiplexer's map holds only this cell, never the stream call itself,
// so there is no cycle between "stream call holds map entry holds stream
// call" (spec.md §9).
type subState struct {
	active atomic.Bool
}

// Multiplexer holds the concurrent (topic, peer) → active-flag mapping and
// runs the follow loop for each subscription.
type Multiplexer struct {
	engine  *topic.Engine
	blockMS int

	mu   sync.Mutex
	subs map[subKey]*subState
}

// NewMultiplexer builds a Multiplexer over engine, blocking for blockMS
// milliseconds per follow iteration.
func NewMultiplexer(engine *topic.Engine, blockMS int) *Multiplexer {
	if blockMS <= 0 {
		blockMS = DefaultBlockMS
	}
	return &Multiplexer{
		engine:  engine,
		blockMS: blockMS,
		subs:    make(map[subKey]*subState),
	}
}

// Subscribe runs the follow loop for (topicName, peer) until the
// subscription is cancelled, and calls emit once per delivered entry in
// strict entry-ID order. It blocks for the lifetime of the subscription;
// callers (the RPC Surface's streaming handler) are expected to call it
// from the goroutine already dedicated to that streaming call.
//
// If group is non-nil, delivery is load-balanced across the named consumer
// group instead of being a private tail of topicName.
func (m *Multiplexer) Subscribe(ctx context.Context, topicName, peer string, group *string, emit func(Notification) error) error {
	key := subKey{Topic: topicName, Peer: peer}

	m.mu.Lock()
	if existing, ok := m.subs[key]; ok && existing.active.Load() {
		m.mu.Unlock()
		return ErrAlreadySubscribed
	}
	state := &subState{}
	state.active.Store(true)
	m.subs[key] = state
	m.mu.Unlock()

	logger := log.WithTopic(topicName).With().Str("peer", peer).Logger()
	if group != nil {
		logger = logger.With().Str("group", *group).Logger()
	}
	logger.Debug().Msg("subscription opened")

	defer func() {
		m.mu.Lock()
		delete(m.subs, key)
		m.mu.Unlock()
		logger.Debug().Msg("subscription closed")
	}()

	// Subscriptions see only entries appended at-or-after the subscription
	// point; prior history is obtained via Get (spec.md §4.D step 3).
	cursor := eventcodec.Latest

	for state.active.Load() && ctx.Err() == nil {
		var entries []eventcodec.Entry
		var err error

		if group != nil {
			entries, err = m.engine.GroupFollow(ctx, topicName, *group, peer, m.blockMS)
		} else {
			entries, cursor, err = m.engine.Follow(ctx, topicName, cursor, m.blockMS)
		}
		if err != nil {
			if ctx.Err() != nil {
				// Peer disconnected or the call was cancelled mid-block;
				// clean up silently (spec.md §7 PeerGone).
				return nil
			}
			return err
		}

		for _, entry := range entries {
			notif := Notification{
				EventID: entry.EventID,
				EventTS: entry.ID.Seconds(),
				Action:  entry.Action,
				Data:    entry.Data,
			}
			if err := emit(notif); err != nil {
				return nil
			}
			if group == nil {
				cursor = entry.ID.String()
			}
		}
		// An empty batch just loops back to the blocking read — that block
		// is what sleeps, so this loop never busy-spins (spec.md §4.D).
	}

	return nil
}

// Unsubscribe flips the active flag for (topicName, peer) to false and
// returns immediately. It does not wait for the follow loop to notice and
// exit — the next block-timeout window will do that (spec.md §4.D, and the
// Open Question in §9: stricter join semantics are left to callers that
// need them). Unsubscribing an absent subscription is a no-op success.
func (m *Multiplexer) Unsubscribe(topicName, peer string) {
	key := subKey{Topic: topicName, Peer: peer}
	m.mu.Lock()
	defer m.mu.Unlock()
	if state, ok := m.subs[key]; ok {
		state.active.Store(false)
	}
}

// ActiveCount returns the number of subscriptions currently marked active,
// for the eventstore_active_subscriptions metric.
func (m *Multiplexer) ActiveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, state := range m.subs {
		if state.active.Load() {
			n++
		}
	}
	return n
}
