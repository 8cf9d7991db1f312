package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"AirFM/config"
	"AirFM/core/catalog"
	"AirFM/core/meta"
	"AirFM/core/stream"
	"AirFM/logger"
	"AirFM/store"

	"github.com/gorilla/mux"
)

// Server wires the file store, range stream engine and catalog builder into
// the HTTP surface. All configuration comes in through the constructor.
type Server struct {
	cfg     *config.Config
	handler http.Handler
	watcher *store.Watcher
}

// New builds a Server from configuration.
func New(cfg *config.Config) (*Server, error) {
	fileStore, err := store.NewFileStore(cfg.AudioDir)
	if err != nil {
		return nil, err
	}

	extractor := meta.NewFileExtractor()
	builder := catalog.NewBuilder(fileStore, extractor)
	engine := stream.NewEngine(fileStore)

	streamHandler := NewStreamHandler(engine, fileStore)
	trackHandler := NewTrackHandler(builder, extractor, fileStore)

	router := mux.NewRouter()
	router.Handle("/api/stream/{filename}", streamHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/metadata/{filename}", trackHandler.Metadata).Methods(http.MethodGet)
	router.HandleFunc("/api/tracks", trackHandler.ListTracks).Methods(http.MethodGet)
	router.HandleFunc("/api/info/{filename}", trackHandler.Info).Methods(http.MethodGet)

	// Raw library exposure alongside the range-aware stream endpoint.
	router.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir(fileStore.Root()))))

	router.HandleFunc("/", rootHandler).Methods(http.MethodGet)
	router.NotFoundHandler = http.HandlerFunc(notFoundHandler)

	// Middleware wraps the whole router so preflight requests and unmatched
	// routes get CORS headers and a log line too.
	s := &Server{cfg: cfg, handler: corsMiddleware(loggingMiddleware(router))}

	if cfg.WatchLibrary {
		watcher, err := store.NewWatcher(fileStore)
		if err != nil {
			logger.Warn("Library watcher unavailable", logger.ErrorField(err))
		} else {
			s.watcher = watcher
		}
	}

	return s, nil
}

// Router exposes the handler tree, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.handler
}

// newHTTPServer builds the listening server. No WriteTimeout: a full-file
// stream of a long track over a slow link outlives any fixed write deadline,
// so only the request-read side is bounded.
func (s *Server) newHTTPServer() *http.Server {
	return &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.handler,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

// Run serves HTTP until the context is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := s.newHTTPServer()

	if s.watcher != nil {
		go s.watcher.Run(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server started",
			logger.String("port", s.cfg.Port),
			logger.String("audioDir", s.cfg.AudioDir))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
		logger.Info("Server stopped")
		return nil
	}
}
