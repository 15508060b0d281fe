package streamstore

import (
	"context"
	"errors"

	"github.com/cuemby/eventstore/pkg/eventcodec"
)

// Error kinds the adapter surfaces. Timeout is deliberately absent here: per
// spec.md §4.A/§7 a blocking-read timeout is not an error, it yields an
// empty result.
var (
	// ErrNotFound is returned for operations against an unknown topic that
	// have no empty-result fallback (group operations only; reads on an
	// unknown topic return an empty list instead, per spec.md §7).
	ErrNotFound = errors.New("streamstore: not found")

	// ErrBackendUnavailable wraps a Redis connectivity failure.
	ErrBackendUnavailable = errors.New("streamstore: backend unavailable")

	// ErrConflict names a group operation colliding with concurrent state
	// the backend will not resolve on its own. RedisAdapter never returns
	// it.
	ErrConflict = errors.New("streamstore: conflict")
)

// Adapter is the narrow interface spec.md §4.A defines over any backend
// supporting ordered append-only streams keyed by name.
type Adapter interface {
	// Append appends one entry to topic. idHint, if non-empty, is passed to
	// the backend as the preferred entry ID; if the backend refuses it (not
	// strictly greater than the stream's current maximum), Append retries
	// with auto-assignment and returns whatever ID the backend picked.
	Append(ctx context.Context, topic string, fields map[string]interface{}, idHint string) (eventcodec.EntryID, error)

	// Range reads the full history of topic, oldest first. An unknown or
	// empty topic returns an empty slice, not an error.
	Range(ctx context.Context, topic string) ([]eventcodec.Entry, error)

	// Tail blocks for up to blockMS milliseconds for entries with ID
	// strictly greater than afterID (or, if afterID == eventcodec.Latest,
	// strictly after the highest ID present at call time). Returns an
	// empty slice on timeout.
	Tail(ctx context.Context, topic string, afterID string, blockMS int) ([]eventcodec.Entry, error)

	// GroupEnsure idempotently creates group on topic if it doesn't already
	// exist.
	GroupEnsure(ctx context.Context, topic, group string) error

	// GroupRead delivers entries in group not yet delivered to any consumer
	// of group, claimed by consumer. If noAck is true, delivered entries are
	// acknowledged automatically; if false, they remain pending until
	// GroupAck is called.
	GroupRead(ctx context.Context, topic, group, consumer string, blockMS int, noAck bool) ([]eventcodec.Entry, error)

	// GroupAck marks ids (entry ID strings) acknowledged for group on topic.
	GroupAck(ctx context.Context, topic, group string, ids []string) error

	// Ping reports whether the backend is reachable, for health checks.
	Ping(ctx context.Context) error
}

// Key is the Redis key backing topic's stream, per spec.md §6.
func Key(topic string) string {
	return "events:" + topic
}
