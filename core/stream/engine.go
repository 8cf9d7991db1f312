package stream

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"

	"AirFM/logger"
	"AirFM/store"
)

// Engine implements the partial-content delivery protocol consumed by
// standard media elements. Each call is independent and stateless: the file
// is opened per request and closed when the response completes, so any
// number of range requests may run concurrently against the same file.
type Engine struct {
	store *store.FileStore
}

// NewEngine creates an Engine backed by the given file store.
func NewEngine(fs *store.FileStore) *Engine {
	return &Engine{store: fs}
}

// Stream writes a full or partial response for filename to w. With no Range
// header it streams the entire file with status 200. With a Range header it
// streams exactly the requested interval with status 206, or 416 when the
// range is malformed or unsatisfiable.
//
// An error is returned only when nothing has been written yet (unknown file,
// open failure), so the caller can still emit a clean error response. Once
// headers are out, a mid-stream failure can only terminate the connection;
// it is logged and swallowed.
func (e *Engine) Stream(w http.ResponseWriter, filename, rangeHeader string) error {
	audioFile, err := e.store.Resolve(filename)
	if err != nil {
		return err
	}

	f, err := os.Open(audioFile.Path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer f.Close()

	if rangeHeader == "" {
		return e.streamFull(w, f, audioFile, filename)
	}
	return e.streamRange(w, f, audioFile, filename, rangeHeader)
}

func (e *Engine) streamFull(w http.ResponseWriter, f *os.File, af *store.AudioFile, filename string) error {
	w.Header().Set("Content-Length", strconv.FormatInt(af.Size, 10))
	w.Header().Set("Content-Type", af.ContentType)
	w.Header().Set("Accept-Ranges", "bytes")
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, f); err != nil {
		// Headers are already sent; the connection just drops.
		logger.Warn("Stream aborted mid-transfer",
			logger.String("filename", filename),
			logger.ErrorField(err))
	}
	return nil
}

func (e *Engine) streamRange(w http.ResponseWriter, f *os.File, af *store.AudioFile, filename, rangeHeader string) error {
	byteRange, err := ParseRange(rangeHeader, af.Size)
	if err != nil {
		w.Header().Set("Content-Range", fmt.Sprintf("bytes */%d", af.Size))
		http.Error(w, "Requested range not satisfiable", http.StatusRequestedRangeNotSatisfiable)
		return nil
	}

	if _, err := f.Seek(byteRange.Start, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek to %d in %s: %w", byteRange.Start, filename, err)
	}

	w.Header().Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", byteRange.Start, byteRange.End, af.Size))
	w.Header().Set("Accept-Ranges", "bytes")
	w.Header().Set("Content-Length", strconv.FormatInt(byteRange.Length(), 10))
	w.Header().Set("Content-Type", af.ContentType)
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusPartialContent)

	if _, err := io.CopyN(w, f, byteRange.Length()); err != nil {
		logger.Warn("Range stream aborted mid-transfer",
			logger.String("filename", filename),
			logger.Int64("start", byteRange.Start),
			logger.Int64("end", byteRange.End),
			logger.ErrorField(err))
	}
	return nil
}
