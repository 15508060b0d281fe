package streamstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cuemby/eventstore/pkg/eventcodec"
	"github.com/cuemby/eventstore/pkg/log"
)

// RedisAdapter implements Adapter over Redis Streams, grounded on the
// consumer-group lifecycle (XGroupCreateMkStream + BUSYGROUP idempotency,
// XReadGroup with Block/Count, XAck) the pack's Redis-stream readers use.
type RedisAdapter struct {
	client *redis.Client
}

// NewRedisAdapter dials addr (host:port) and verifies connectivity.
func NewRedisAdapter(addr string) (*RedisAdapter, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("streamstore: %w: %v", ErrBackendUnavailable, err)
	}

	log.WithComponent("streamstore").Info().Str("addr", addr).Msg("connected to redis")
	return &RedisAdapter{client: client}, nil
}

// NewRedisAdapterFromClient wraps an already-configured client, used by
// tests to point the adapter at a miniredis instance.
func NewRedisAdapterFromClient(client *redis.Client) *RedisAdapter {
	return &RedisAdapter{client: client}
}

func (a *RedisAdapter) Close() error {
	return a.client.Close()
}

func (a *RedisAdapter) Ping(ctx context.Context) error {
	if err := a.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("streamstore: %w: %v", ErrBackendUnavailable, err)
	}
	return nil
}

func (a *RedisAdapter) Append(ctx context.Context, topic string, fields map[string]interface{}, idHint string) (eventcodec.EntryID, error) {
	key := Key(topic)

	id := idHint
	if id == "" {
		id = "*"
	}

	rawID, err := a.client.XAdd(ctx, &redis.XAddArgs{
		Stream: key,
		ID:     id,
		Values: fields,
	}).Result()
	if err != nil && id != "*" && strings.Contains(err.Error(), "equal or smaller") {
		// The hinted ID wasn't strictly greater than the stream's current
		// maximum; let the backend auto-assign instead, per spec.md §4.A.
		rawID, err = a.client.XAdd(ctx, &redis.XAddArgs{
			Stream: key,
			ID:     "*",
			Values: fields,
		}).Result()
	}
	if err != nil {
		return eventcodec.EntryID{}, fmt.Errorf("streamstore: append %s: %w: %v", topic, ErrBackendUnavailable, err)
	}

	return eventcodec.ParseEntryID(rawID)
}

func (a *RedisAdapter) Range(ctx context.Context, topic string) ([]eventcodec.Entry, error) {
	msgs, err := a.client.XRange(ctx, Key(topic), "-", "+").Result()
	if err != nil {
		return nil, fmt.Errorf("streamstore: range %s: %w: %v", topic, ErrBackendUnavailable, err)
	}
	return decodeMessages(msgs)
}

func (a *RedisAdapter) Tail(ctx context.Context, topic string, afterID string, blockMS int) ([]eventcodec.Entry, error) {
	start := afterID
	if start == "" {
		start = eventcodec.Latest
	}

	res, err := a.client.XRead(ctx, &redis.XReadArgs{
		Streams: []string{Key(topic), start},
		Block:   time.Duration(blockMS) * time.Millisecond,
	}).Result()
	if err != nil {
		if err == redis.Nil || isTimeout(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("streamstore: tail %s: %w: %v", topic, ErrBackendUnavailable, err)
	}

	var entries []eventcodec.Entry
	for _, stream := range res {
		decoded, err := decodeMessages(stream.Messages)
		if err != nil {
			return nil, err
		}
		entries = append(entries, decoded...)
	}
	return entries, nil
}

func (a *RedisAdapter) GroupEnsure(ctx context.Context, topic, group string) error {
	err := a.client.XGroupCreateMkStream(ctx, Key(topic), group, eventcodec.Latest).Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("streamstore: group ensure %s/%s: %w: %v", topic, group, ErrBackendUnavailable, err)
	}
	return nil
}

func (a *RedisAdapter) GroupRead(ctx context.Context, topic, group, consumer string, blockMS int, noAck bool) ([]eventcodec.Entry, error) {
	res, err := a.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    group,
		Consumer: consumer,
		Streams:  []string{Key(topic), ">"},
		Block:    time.Duration(blockMS) * time.Millisecond,
	}).Result()
	if err != nil {
		if err == redis.Nil || isTimeout(err) {
			return nil, nil
		}
		if strings.Contains(err.Error(), "NOGROUP") {
			return nil, fmt.Errorf("streamstore: group read %s/%s: %w: %v", topic, group, ErrNotFound, err)
		}
		return nil, fmt.Errorf("streamstore: group read %s/%s: %w: %v", topic, group, ErrBackendUnavailable, err)
	}

	var entries []eventcodec.Entry
	var ids []string
	for _, stream := range res {
		decoded, err := decodeMessages(stream.Messages)
		if err != nil {
			return nil, err
		}
		entries = append(entries, decoded...)
		for _, m := range stream.Messages {
			ids = append(ids, m.ID)
		}
	}

	if noAck && len(ids) > 0 {
		if err := a.client.XAck(ctx, Key(topic), group, ids...).Err(); err != nil {
			return nil, fmt.Errorf("streamstore: auto-ack %s/%s: %w: %v", topic, group, ErrBackendUnavailable, err)
		}
	}

	return entries, nil
}

func (a *RedisAdapter) GroupAck(ctx context.Context, topic, group string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := a.client.XAck(ctx, Key(topic), group, ids...).Err(); err != nil {
		return fmt.Errorf("streamstore: ack %s/%s: %w: %v", topic, group, ErrBackendUnavailable, err)
	}
	return nil
}

func decodeMessages(msgs []redis.XMessage) ([]eventcodec.Entry, error) {
	entries := make([]eventcodec.Entry, 0, len(msgs))
	for _, m := range msgs {
		e, err := eventcodec.DecodeEntry(m.ID, m.Values)
		if err != nil {
			return nil, fmt.Errorf("streamstore: decode entry %s: %w", m.ID, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func isTimeout(err error) bool {
	return strings.Contains(err.Error(), "i/o timeout") || strings.Contains(err.Error(), "context deadline exceeded")
}
