package server

import (
	"errors"
	"net/http"

	"AirFM/core/stream"
	"AirFM/logger"
	"AirFM/store"

	"github.com/gorilla/mux"
)

// StreamHandler serves audio bytes with seek support.
type StreamHandler struct {
	engine *stream.Engine
	store  *store.FileStore
}

// NewStreamHandler creates a StreamHandler.
func NewStreamHandler(engine *stream.Engine, fs *store.FileStore) *StreamHandler {
	return &StreamHandler{engine: engine, store: fs}
}

// ServeHTTP handles GET /api/stream/{filename}. The engine answers 200 for
// full requests, 206 for ranges and 416 for unsatisfiable ones; unknown
// filenames yield 404 and pre-stream I/O failures 500.
func (h *StreamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	filename := mux.Vars(r)["filename"]

	if !h.store.Exists(filename) {
		writeFileError(w, http.StatusNotFound, "File not found", filename)
		return
	}

	rangeHeader := r.Header.Get("Range")
	logger.Debug("Stream request",
		logger.String("filename", filename),
		logger.Bool("ranged", rangeHeader != ""))

	err := h.engine.Stream(w, filename, rangeHeader)
	if err == nil {
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		writeFileError(w, http.StatusNotFound, "File not found", filename)
		return
	}

	logger.Error("Streaming error",
		logger.String("filename", filename),
		logger.ErrorField(err))
	writeError(w, http.StatusInternalServerError, "Server error during streaming")
}
