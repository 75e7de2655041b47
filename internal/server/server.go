// Package server is the transport adapter: it normalizes Dialogflow
// fulfillment calls and direct chat calls into dispatcher invocations and
// serializes the payload back into each caller's response shape.
package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Parker2127/Amigo/internal/config"
	"github.com/Parker2127/Amigo/internal/feed"
	"github.com/Parker2127/Amigo/internal/handler"
)

const (
	// Fixed caller-visible texts. Internal detail never reaches the caller.
	missingBodyText      = "I'm sorry, I didn't receive your message properly. Could you please try again?"
	techDifficultiesText = "I'm experiencing some technical difficulties right now. Please bear with me, and let's try again in a moment."
	emptyMessageText     = "I didn't receive your message. Could you please try again?"

	shutdownTimeout = 5 * time.Second
)

type Server struct {
	logPrefix  string
	dispatcher *handler.Dispatcher
	feed       *feed.Poller // nil when no feed is configured
	upgrader   websocket.Upgrader
}

func New(cfg config.Config) *Server {
	s := &Server{
		logPrefix:  "[amigo]",
		dispatcher: handler.NewDispatcher(cfg.Project),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
	if cfg.FeedURL != "" {
		s.feed = feed.NewPoller(cfg.FeedURL, cfg.FeedInterval, nil)
	}
	return s
}

// Handler builds the route table. Request logging wraps every route; panic
// recovery lives in the POST handlers so each endpoint can answer in its own
// caller's error shape.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /webhook", s.handleWebhook)
	mux.HandleFunc("POST /chat", s.handleChat)
	mux.HandleFunc("GET /gateway", s.handleGateway)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /resources", s.handleResources)
	mux.HandleFunc("GET /webhook-info", s.handleWebhookInfo)
	mux.HandleFunc("GET /{$}", s.handleHome)
	return s.logRequests(mux)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s (%s)", s.logPrefix, r.Method, r.URL.Path, time.Since(start).Round(time.Millisecond))
	})
}

// Run serves until ctx is done, then shuts down gracefully. The feed poller,
// when configured, runs for the same lifetime.
func (s *Server) Run(ctx context.Context, addr string) error {
	if s.feed != nil {
		go s.feed.Run(ctx)
	}

	srv := &http.Server{Addr: addr, Handler: s.Handler()}

	errc := make(chan error, 1)
	go func() {
		log.Printf("%s listening on %s", s.logPrefix, addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Printf("%s shutting down...", s.logPrefix)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		return err
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
