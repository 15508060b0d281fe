package client

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/cuemby/eventstore/api/eventstorepb"
	"github.com/cuemby/eventstore/pkg/rpcserver"
	"github.com/cuemby/eventstore/pkg/streamstore"
	"github.com/cuemby/eventstore/pkg/subscribe"
	"github.com/cuemby/eventstore/pkg/topic"
)

func newTestClient(t *testing.T) (*Client, func()) {
	t.Helper()
	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	adapter := streamstore.NewRedisAdapterFromClient(redisClient)
	engine := topic.NewEngine(adapter)
	mux := subscribe.NewMultiplexer(engine, 50)

	srv := rpcserver.NewServer(engine, mux, nil, 0)
	gs := grpc.NewServer()
	eventstorepb.RegisterEventStoreServer(gs, srv)

	lis := bufconn.Listen(1024 * 1024)
	go func() { _ = gs.Serve(lis) }()

	dialOpt := grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	})
	conn, err := grpc.NewClient("passthrough:///bufnet", dialOpt, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	c := &Client{conn: conn, rpc: eventstorepb.NewEventStoreClient(conn), upstreams: make(map[string]*upstream)}
	return c, func() { _ = conn.Close(); gs.Stop() }
}

func TestClientPublishAndGet(t *testing.T) {
	c, cleanup := newTestClient(t)
	defer cleanup()
	ctx := context.Background()

	id, err := c.Publish(ctx, "orders", "created", []byte("x"))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	events, err := c.Get(ctx, "orders")
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "created", events[0].Action)
}

func TestClientFanOutSharesOneUpstream(t *testing.T) {
	c, cleanup := newTestClient(t)
	defer cleanup()
	ctx := context.Background()

	var mu sync.Mutex
	count1, count2 := 0, 0

	id1, err := c.Subscribe(ctx, "t", nil, func(Notification) {
		mu.Lock()
		count1++
		mu.Unlock()
	})
	require.NoError(t, err)

	id2, err := c.Subscribe(ctx, "t", nil, func(Notification) {
		mu.Lock()
		count2++
		mu.Unlock()
	})
	require.NoError(t, err)

	c.mu.Lock()
	upstreamCount := len(c.upstreams)
	c.mu.Unlock()
	require.Equal(t, 1, upstreamCount, "both handlers should share one upstream RPC")

	time.Sleep(20 * time.Millisecond)
	_, err = c.Publish(context.Background(), "t", "a", []byte("1"))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return count1 == 1 && count2 == 1
	}, time.Second, 5*time.Millisecond)

	c.Unsubscribe("t", id1)
	c.Unsubscribe("t", id2)

	require.Eventually(t, func() bool {
		c.mu.Lock()
		defer c.mu.Unlock()
		_, ok := c.upstreams["t"]
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestClientFanOutDispatchesInRegistrationOrder(t *testing.T) {
	c, cleanup := newTestClient(t)
	defer cleanup()
	ctx := context.Background()

	var mu sync.Mutex
	var order []int

	for i := 1; i <= 5; i++ {
		i := i
		_, err := c.Subscribe(ctx, "t", nil, func(Notification) {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		})
		require.NoError(t, err)
	}

	time.Sleep(20 * time.Millisecond)
	_, err := c.Publish(context.Background(), "t", "a", []byte("1"))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(order) == 5
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []int{1, 2, 3, 4, 5}, order, "handlers must fire in registration order")
}

func TestClientHandlerPanicDoesNotStopOthers(t *testing.T) {
	c, cleanup := newTestClient(t)
	defer cleanup()
	ctx := context.Background()

	var mu sync.Mutex
	survived := false

	_, err := c.Subscribe(ctx, "t", nil, func(Notification) {
		panic("boom")
	})
	require.NoError(t, err)

	_, err = c.Subscribe(ctx, "t", nil, func(Notification) {
		mu.Lock()
		survived = true
		mu.Unlock()
	})
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)
	_, err = c.Publish(context.Background(), "t", "a", []byte("1"))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return survived
	}, time.Second, 5*time.Millisecond)
}
