package rpcserver

import (
	"context"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/cuemby/eventstore/api/eventstorepb"
	"github.com/cuemby/eventstore/pkg/streamstore"
	"github.com/cuemby/eventstore/pkg/subscribe"
	"github.com/cuemby/eventstore/pkg/topic"
)

// dialer returns a bufconn-backed grpc.DialOption, grounding the in-memory
// client/server pairing pattern used for gRPC handler tests without a real
// network listener.
func dialer(lis *bufconn.Listener) grpc.DialOption {
	return grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	})
}

func newTestServer(t *testing.T) (eventstorepb.EventStoreClient, func()) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	adapter := streamstore.NewRedisAdapterFromClient(client)
	engine := topic.NewEngine(adapter)
	mux := subscribe.NewMultiplexer(engine, 50)

	srv := NewServer(engine, mux, nil, 0)
	gs := grpc.NewServer()
	eventstorepb.RegisterEventStoreServer(gs, srv)

	lis := bufconn.Listen(1024 * 1024)
	go func() { _ = gs.Serve(lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet", dialer(lis), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	cleanup := func() {
		_ = conn.Close()
		gs.Stop()
	}
	return eventstorepb.NewEventStoreClient(conn), cleanup
}

func TestPublishAndGet(t *testing.T) {
	c, cleanup := newTestServer(t)
	defer cleanup()
	ctx := context.Background()

	resp, err := c.Publish(ctx, &eventstorepb.PublishRequest{Topic: "orders", Action: "created", Data: []byte(`{"id":1}`)})
	require.NoError(t, err)
	require.NotEmpty(t, resp.EntryId)

	got, err := c.Get(ctx, &eventstorepb.GetRequest{Topic: "orders"})
	require.NoError(t, err)

	var events []map[string]string
	require.NoError(t, json.Unmarshal([]byte(got.Events), &events))
	require.Len(t, events, 1)
	require.Equal(t, "created", events[0]["event_action"])
}

func TestGetEmptyTopicReturnsEmptyArray(t *testing.T) {
	c, cleanup := newTestServer(t)
	defer cleanup()

	got, err := c.Get(context.Background(), &eventstorepb.GetRequest{Topic: "missing"})
	require.NoError(t, err)
	require.Equal(t, "[]", got.Events)
}

func TestPublishRejectsEmptyTopic(t *testing.T) {
	c, cleanup := newTestServer(t)
	defer cleanup()

	_, err := c.Publish(context.Background(), &eventstorepb.PublishRequest{Topic: ""})
	require.Error(t, err)
}

func TestSubscribeReceivesPublishedEvent(t *testing.T) {
	c, cleanup := newTestServer(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := c.Subscribe(ctx, &eventstorepb.SubscribeRequest{Topic: "orders"})
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)
	_, err = c.Publish(context.Background(), &eventstorepb.PublishRequest{Topic: "orders", Action: "shipped", Data: []byte("x")})
	require.NoError(t, err)

	notif, err := stream.Recv()
	require.NoError(t, err)
	require.Equal(t, "shipped", notif.EventAction)
}

func TestGetActionFiltersByAction(t *testing.T) {
	c, cleanup := newTestServer(t)
	defer cleanup()
	ctx := context.Background()

	_, err := c.Publish(ctx, &eventstorepb.PublishRequest{Topic: "t", Action: "a", Data: []byte("1")})
	require.NoError(t, err)
	_, err = c.Publish(ctx, &eventstorepb.PublishRequest{Topic: "t", Action: "b", Data: []byte("2")})
	require.NoError(t, err)

	got, err := c.GetAction(ctx, &eventstorepb.GetActionRequest{Topic: "t", Action: "a"})
	require.NoError(t, err)

	var events []map[string]string
	require.NoError(t, json.Unmarshal([]byte(got.Events), &events))
	require.Len(t, events, 1)
}
