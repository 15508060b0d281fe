package topic

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cuemby/eventstore/pkg/eventcodec"
	"github.com/cuemby/eventstore/pkg/log"
	"github.com/cuemby/eventstore/pkg/streamstore"
)

// Engine is the Topic Engine: per-topic append and read operations built on
// a streamstore.Adapter. A single Engine is safe for concurrent use by
// many callers — it holds no per-topic state of its own.
type Engine struct {
	adapter streamstore.Adapter
}

// NewEngine builds an Engine over adapter.
func NewEngine(adapter streamstore.Adapter) *Engine {
	return &Engine{adapter: adapter}
}

// Publish generates a fresh opaque event ID, times the append with the
// current wall clock, and appends the entry. It returns only after the
// entry is durably visible to subsequent reads, per spec.md §4.C.
func (e *Engine) Publish(ctx context.Context, topicName, action string, data []byte) (eventcodec.EntryID, error) {
	eventID := uuid.New().String()
	fields := eventcodec.Fields(eventID, action, data)

	// Render the current time as the ID hint's microsecond component and
	// let the backend assign the sequence, per spec.md §4.B.
	idHint := fmt.Sprintf("%d-*", time.Now().UnixMicro())

	id, err := e.adapter.Append(ctx, topicName, fields, idHint)
	if err != nil {
		return eventcodec.EntryID{}, err
	}

	log.WithTopic(topicName).Debug().
		Str("event_id", eventID).
		Str("entry_id", id.String()).
		Str("action", action).
		Msg("published entry")

	return id, nil
}

// Get reads the full topic, oldest first. If actionFilter is non-nil, only
// entries whose Action equals *actionFilter are returned. The result is
// always a non-nil slice, possibly empty — never nil, per spec.md §9.
func (e *Engine) Get(ctx context.Context, topicName string, actionFilter *string) ([]eventcodec.Entry, error) {
	entries, err := e.adapter.Range(ctx, topicName)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []eventcodec.Entry{}
	}
	if actionFilter == nil {
		return entries, nil
	}

	filtered := make([]eventcodec.Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.Action == *actionFilter {
			filtered = append(filtered, entry)
		}
	}
	return filtered, nil
}

// Follow wraps the adapter's blocking tail read. The returned cursor is the
// entry ID of the last element delivered, or the input cursor unchanged if
// the batch came back empty (timeout or no new entries).
func (e *Engine) Follow(ctx context.Context, topicName, cursor string, blockMS int) ([]eventcodec.Entry, string, error) {
	entries, err := e.adapter.Tail(ctx, topicName, cursor, blockMS)
	if err != nil {
		return nil, cursor, err
	}
	if len(entries) == 0 {
		return entries, cursor, nil
	}
	return entries, entries[len(entries)-1].ID.String(), nil
}

// GroupFollow wraps GroupEnsure (idempotent) then a no-ack GroupRead: per
// spec.md §4.C this server never tracks acks itself, so every delivery is
// immediately acknowledged to the backend on the caller's behalf.
func (e *Engine) GroupFollow(ctx context.Context, topicName, group, consumer string, blockMS int) ([]eventcodec.Entry, error) {
	if err := e.adapter.GroupEnsure(ctx, topicName, group); err != nil {
		return nil, err
	}
	return e.adapter.GroupRead(ctx, topicName, group, consumer, blockMS, true)
}

// Ping reports whether the backing stream store is reachable.
func (e *Engine) Ping(ctx context.Context) error {
	return e.adapter.Ping(ctx)
}
