package client

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/cuemby/eventstore/api/eventstorepb"
	"github.com/cuemby/eventstore/pkg/log"
)

// Event is one decoded entry as returned by Get/GetAction.
type Event struct {
	EventID string `json:"event_id"`
	Action  string `json:"event_action"`
	Data    string `json:"event_data"`
}

// Notification is one entry delivered to a Handler via Subscribe.
type Notification struct {
	EventID string
	EventTS float64
	Action  string
	Data    []byte
}

// Handler receives notifications for a subscribed topic. A Handler that
// panics is recovered and logged as a fault; it never brings down the
// receive loop or other handlers on the same topic.
type Handler func(Notification)

// HandlerID identifies one registered Handler for Unsubscribe.
type HandlerID int64

type namedHandler struct {
	id HandlerID
	fn Handler
}

// upstream holds one Subscribe RPC shared by every handler registered for a
// topic. handlers is kept in registration order (not map order) so delivery
// honors "handlers in the same list are invoked in registration order."
type upstream struct {
	cancel   context.CancelFunc
	mu       sync.Mutex
	handlers []namedHandler
}

func (u *upstream) add(id HandlerID, fn Handler) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.handlers = append(u.handlers, namedHandler{id: id, fn: fn})
}

// remove drops the handler with the given id and reports whether the list
// is now empty.
func (u *upstream) remove(id HandlerID) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	for i, h := range u.handlers {
		if h.id == id {
			u.handlers = append(u.handlers[:i], u.handlers[i+1:]...)
			break
		}
	}
	return len(u.handlers) == 0
}

// snapshot returns a copy of the handler list in registration order, safe
// to range over without holding the lock during dispatch.
func (u *upstream) snapshot() []namedHandler {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]namedHandler, len(u.handlers))
	copy(out, u.handlers)
	return out
}

// Client is a single connection shared across every topic the caller has
// subscribed to.
type Client struct {
	conn *grpc.ClientConn
	rpc  eventstorepb.EventStoreClient

	mu        sync.Mutex
	upstreams map[string]*upstream
	nextID    HandlerID
}

// NewClient dials addr and returns a Client ready to publish, fetch and
// subscribe.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("client: dial %s: %w", addr, err)
	}
	return &Client{
		conn:      conn,
		rpc:       eventstorepb.NewEventStoreClient(conn),
		upstreams: make(map[string]*upstream),
	}, nil
}

// Close tears down the underlying connection. Any active subscriptions stop
// receiving once their upstream RPCs fail.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Publish appends an event to topic and returns the assigned entry ID.
func (c *Client) Publish(ctx context.Context, topic, action string, data []byte) (string, error) {
	resp, err := c.rpc.Publish(ctx, &eventstorepb.PublishRequest{Topic: topic, Action: action, Data: data})
	if err != nil {
		return "", err
	}
	return resp.EntryId, nil
}

// Get returns every event stored for topic, oldest first.
func (c *Client) Get(ctx context.Context, topic string) ([]Event, error) {
	resp, err := c.rpc.Get(ctx, &eventstorepb.GetRequest{Topic: topic})
	if err != nil {
		return nil, err
	}
	return decodeEvents(resp.Events)
}

// GetAction returns every event stored for topic whose action matches.
func (c *Client) GetAction(ctx context.Context, topic, action string) ([]Event, error) {
	resp, err := c.rpc.GetAction(ctx, &eventstorepb.GetActionRequest{Topic: topic, Action: action})
	if err != nil {
		return nil, err
	}
	return decodeEvents(resp.Events)
}

// Subscribe registers handler for topic, opening a new upstream Subscribe
// RPC the first time topic is subscribed to and reusing it for every
// handler added afterward. The returned HandlerID is passed to Unsubscribe
// to remove just this handler.
func (c *Client) Subscribe(ctx context.Context, topic string, group *string, handler Handler) (HandlerID, error) {
	c.mu.Lock()
	up, exists := c.upstreams[topic]
	if !exists {
		up = &upstream{}
		c.upstreams[topic] = up
	}
	c.nextID++
	id := c.nextID
	c.mu.Unlock()

	up.add(id, handler)

	if exists {
		return id, nil
	}

	streamCtx, cancel := context.WithCancel(ctx)
	up.cancel = cancel

	req := &eventstorepb.SubscribeRequest{Topic: topic}
	if group != nil {
		g := *group
		req.Group = &g
	}

	stream, err := c.rpc.Subscribe(streamCtx, req)
	if err != nil {
		cancel()
		c.mu.Lock()
		delete(c.upstreams, topic)
		c.mu.Unlock()
		return 0, err
	}

	go c.recvLoop(topic, up, stream)
	return id, nil
}

// Unsubscribe removes handler id from topic's handler list. Once the list
// is empty it cancels the upstream Subscribe RPC and tells the server to
// drop its side of the subscription too.
func (c *Client) Unsubscribe(topic string, id HandlerID) {
	c.mu.Lock()
	up, ok := c.upstreams[topic]
	c.mu.Unlock()
	if !ok {
		return
	}

	if up.remove(id) {
		c.teardown(topic, up)
	}
}

func (c *Client) teardown(topic string, up *upstream) {
	c.mu.Lock()
	if c.upstreams[topic] == up {
		delete(c.upstreams, topic)
	}
	c.mu.Unlock()

	if up.cancel != nil {
		up.cancel()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, _ = c.rpc.Unsubscribe(ctx, &eventstorepb.UnsubscribeRequest{Topic: topic})
}

func (c *Client) recvLoop(topic string, up *upstream, stream eventstorepb.EventStore_SubscribeClient) {
	logger := log.WithTopic(topic)
	for {
		msg, err := stream.Recv()
		if err != nil {
			logger.Debug().Err(err).Msg("subscribe stream closed")
			return
		}

		notif := Notification{
			EventID: msg.EventId,
			EventTS: msg.EventTs,
			Action:  msg.EventAction,
			Data:    msg.EventData,
		}

		for _, h := range up.snapshot() {
			dispatch(logger, h.fn, notif)
		}
	}
}

func dispatch(logger zerolog.Logger, h Handler, n Notification) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("handler fault")
		}
	}()
	h(n)
}

func decodeEvents(raw string) ([]Event, error) {
	if raw == "" || raw == "null" {
		return []Event{}, nil
	}
	var events []Event
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		return nil, fmt.Errorf("client: decode events: %w", err)
	}
	if events == nil {
		events = []Event{}
	}
	return events, nil
}
