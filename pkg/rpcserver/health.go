package rpcserver

import (
	"context"
	"net/http"
	"time"

	"github.com/cuemby/eventstore/pkg/log"
	"github.com/cuemby/eventstore/pkg/topic"
)

// httpHealthServer answers /health (process is up) and /ready (the backend
// behind engine is reachable) for orchestrators that probe over plain HTTP
// rather than gRPC (spec.md supplemental: healthcheck concern).
type httpHealthServer struct {
	engine *topic.Engine
	srv    *http.Server
}

func newHTTPHealthServer(addr string, engine *topic.Engine) *httpHealthServer {
	h := &httpHealthServer{engine: engine}
	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.handleHealth)
	mux.HandleFunc("/ready", h.handleReady)
	h.srv = &http.Server{Addr: addr, Handler: mux}
	return h
}

func (h *httpHealthServer) serve() {
	if err := h.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithComponent("rpcserver").Error().Err(err).Msg("health server stopped unexpectedly")
	}
}

func (h *httpHealthServer) stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = h.srv.Shutdown(ctx)
}

func (h *httpHealthServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *httpHealthServer) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), time.Second)
	defer cancel()
	if err := h.engine.Ping(ctx); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(err.Error()))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
