package rpcserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/cuemby/eventstore/api/eventstorepb"
	"github.com/cuemby/eventstore/pkg/eventcodec"
	"github.com/cuemby/eventstore/pkg/log"
	"github.com/cuemby/eventstore/pkg/streamstore"
	"github.com/cuemby/eventstore/pkg/subscribe"
	"github.com/cuemby/eventstore/pkg/topic"
)

// Recorder receives metric observations from the RPC surface. Server works
// with a nil Recorder so tests that don't care about metrics can omit one.
type Recorder interface {
	ObservePublish(topic string, d time.Duration)
	SetActiveSubscriptions(n int)
	ObserveFollowBatch(n int)
	IncHandlerFault()
}

// Server implements the EventStore gRPC service over a topic.Engine and a
// subscribe.Multiplexer.
type Server struct {
	eventstorepb.UnimplementedEventStoreServer

	engine     *topic.Engine
	mux        *subscribe.Multiplexer
	rec        Recorder
	maxWorkers int

	grpc *grpc.Server
	http *httpHealthServer
}

// NewServer wires engine and mux into a Server. rec may be nil. maxWorkers
// bounds the pool of goroutines grpc-go pre-spawns for unary calls
// (EVENT_STORE_MAX_WORKERS, spec.md §6); 0 leaves grpc-go's own default.
func NewServer(engine *topic.Engine, mux *subscribe.Multiplexer, rec Recorder, maxWorkers int) *Server {
	return &Server{engine: engine, mux: mux, rec: rec, maxWorkers: maxWorkers}
}

// Serve starts the gRPC listener on grpcAddr and, if httpAddr is non-empty,
// an HTTP health listener on httpAddr. It blocks until the gRPC server
// stops.
func (s *Server) Serve(grpcAddr, httpAddr string) error {
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		return fmt.Errorf("rpcserver: listen %s: %w", grpcAddr, err)
	}

	var opts []grpc.ServerOption
	if s.maxWorkers > 0 {
		opts = append(opts, grpc.NumStreamWorkers(uint32(s.maxWorkers)))
	}
	s.grpc = grpc.NewServer(opts...)
	eventstorepb.RegisterEventStoreServer(s.grpc, s)

	if httpAddr != "" {
		s.http = newHTTPHealthServer(httpAddr, s.engine)
		go s.http.serve()
	}

	log.WithComponent("rpcserver").Info().Str("addr", grpcAddr).Msg("grpc server listening")
	return s.grpc.Serve(lis)
}

// Stop stops the gRPC server immediately, without waiting for in-flight
// streaming calls to drain (spec.md §6: shutdown has no grace period).
func (s *Server) Stop() {
	if s.grpc != nil {
		s.grpc.Stop()
	}
	if s.http != nil {
		s.http.stop()
	}
}

func (s *Server) Publish(ctx context.Context, req *eventstorepb.PublishRequest) (*eventstorepb.PublishResponse, error) {
	if req.GetTopic() == "" {
		return nil, status.Error(codes.InvalidArgument, "topic is required")
	}
	start := time.Now()
	id, err := s.engine.Publish(ctx, req.GetTopic(), req.GetAction(), req.GetData())
	if err != nil {
		return nil, mapError(err)
	}
	if s.rec != nil {
		s.rec.ObservePublish(req.GetTopic(), time.Since(start))
	}
	return &eventstorepb.PublishResponse{EntryId: id.String()}, nil
}

func (s *Server) Get(ctx context.Context, req *eventstorepb.GetRequest) (*eventstorepb.GetResponse, error) {
	if req.GetTopic() == "" {
		return nil, status.Error(codes.InvalidArgument, "topic is required")
	}
	entries, err := s.engine.Get(ctx, req.GetTopic(), nil)
	if err != nil {
		return nil, mapError(err)
	}
	return &eventstorepb.GetResponse{Events: encodeEvents(entries)}, nil
}

func (s *Server) GetAction(ctx context.Context, req *eventstorepb.GetActionRequest) (*eventstorepb.GetResponse, error) {
	if req.GetTopic() == "" {
		return nil, status.Error(codes.InvalidArgument, "topic is required")
	}
	action := req.GetAction()
	entries, err := s.engine.Get(ctx, req.GetTopic(), &action)
	if err != nil {
		return nil, mapError(err)
	}
	return &eventstorepb.GetResponse{Events: encodeEvents(entries)}, nil
}

func (s *Server) Unsubscribe(ctx context.Context, req *eventstorepb.UnsubscribeRequest) (*eventstorepb.UnsubscribeResponse, error) {
	if req.GetTopic() == "" {
		return nil, status.Error(codes.InvalidArgument, "topic is required")
	}
	s.mux.Unsubscribe(req.GetTopic(), peerIdentity(ctx))
	return &eventstorepb.UnsubscribeResponse{Success: true}, nil
}

func (s *Server) Subscribe(req *eventstorepb.SubscribeRequest, stream eventstorepb.EventStore_SubscribeServer) error {
	if req.GetTopic() == "" {
		return status.Error(codes.InvalidArgument, "topic is required")
	}
	peerID := peerIdentity(stream.Context())

	var group *string
	if req.Group != nil {
		g := req.GetGroup()
		group = &g
	}

	emit := func(n subscribe.Notification) error {
		if s.rec != nil {
			s.rec.ObserveFollowBatch(1)
		}
		return stream.Send(&eventstorepb.Notification{
			EventId:     n.EventID,
			EventTs:     n.EventTS,
			EventAction: n.Action,
			EventData:   n.Data,
		})
	}

	err := s.mux.Subscribe(stream.Context(), req.GetTopic(), peerID, group, func(n subscribe.Notification) (emitErr error) {
		defer func() {
			if r := recover(); r != nil {
				if s.rec != nil {
					s.rec.IncHandlerFault()
				}
				log.WithComponent("rpcserver").Error().Interface("panic", r).Msg("subscribe handler panicked")
				emitErr = fmt.Errorf("rpcserver: handler panic: %v", r)
			}
		}()
		return emit(n)
	})
	if s.rec != nil {
		s.rec.SetActiveSubscriptions(s.mux.ActiveCount())
	}
	if err != nil {
		return mapError(err)
	}
	return nil
}

// peerIdentity derives a stable consumer identity for a call: the dialed
// peer address when available, otherwise a random one (spec.md
// supplemental: consumer-name defaulting).
func peerIdentity(ctx context.Context) string {
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		return p.Addr.String()
	}
	return uuid.New().String()
}

func encodeEvents(entries []eventcodec.Entry) string {
	type wireEvent struct {
		EventID string `json:"event_id"`
		Action  string `json:"event_action"`
		Data    string `json:"event_data"`
	}
	out := make([]wireEvent, 0, len(entries))
	for _, e := range entries {
		out = append(out, wireEvent{EventID: e.EventID, Action: e.Action, Data: string(e.Data)})
	}
	b, err := json.Marshal(out)
	if err != nil {
		// out is a slice of plain strings; Marshal cannot fail on it.
		return "[]"
	}
	return string(b)
}

func mapError(err error) error {
	switch {
	case errors.Is(err, streamstore.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, streamstore.ErrConflict):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, streamstore.ErrBackendUnavailable):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, subscribe.ErrAlreadySubscribed):
		return status.Error(codes.AlreadyExists, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
