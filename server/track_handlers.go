package server

import (
	"net/http"

	"AirFM/core/catalog"
	"AirFM/core/meta"
	"AirFM/logger"
	"AirFM/model"
	"AirFM/store"

	"github.com/gorilla/mux"
)

// TrackHandler serves catalog and per-file metadata requests.
type TrackHandler struct {
	builder   *catalog.Builder
	extractor meta.Extractor
	store     *store.FileStore
}

// NewTrackHandler creates a TrackHandler.
func NewTrackHandler(builder *catalog.Builder, extractor meta.Extractor, fs *store.FileStore) *TrackHandler {
	return &TrackHandler{builder: builder, extractor: extractor, store: fs}
}

// ListTracks handles GET /api/tracks. Files whose tags cannot be parsed
// still appear with fallback fields; only a directory scan failure is a
// request failure.
func (h *TrackHandler) ListTracks(w http.ResponseWriter, r *http.Request) {
	tracks, err := h.builder.BuildCatalog()
	if err != nil {
		logger.Error("Failed to build catalog", logger.ErrorField(err))
		writeError(w, http.StatusInternalServerError, "Error getting tracks list")
		return
	}

	summaries := make([]model.TrackSummary, 0, len(tracks))
	for _, track := range tracks {
		summaries = append(summaries, track.Summary())
	}
	writeJSON(w, http.StatusOK, model.TrackList{Count: len(summaries), Tracks: summaries})
}

// Metadata handles GET /api/metadata/{filename}, returning the full Track.
func (h *TrackHandler) Metadata(w http.ResponseWriter, r *http.Request) {
	filename := mux.Vars(r)["filename"]

	audioFile, err := h.store.Resolve(filename)
	if err != nil {
		writeFileError(w, http.StatusNotFound, "File not found", filename)
		return
	}

	track, err := h.extractor.Extract(audioFile.Path, filename)
	if err != nil {
		logger.Error("Metadata extraction error",
			logger.String("filename", filename),
			logger.ErrorField(err))
		writeError(w, http.StatusInternalServerError, "Error extracting metadata")
		return
	}
	writeJSON(w, http.StatusOK, track)
}

// Info handles GET /api/info/{filename}: size, timestamps and content type
// without touching the tag block.
func (h *TrackHandler) Info(w http.ResponseWriter, r *http.Request) {
	filename := mux.Vars(r)["filename"]

	info, err := h.store.Info(filename)
	if err != nil {
		writeFileError(w, http.StatusNotFound, "File not found", filename)
		return
	}
	writeJSON(w, http.StatusOK, info)
}
