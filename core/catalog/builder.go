package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"AirFM/core/meta"
	"AirFM/logger"
	"AirFM/model"
	"AirFM/store"
)

// Builder assembles the ordered track list from the audio root. Every call
// re-scans the directory and re-parses tags; nothing is cached, so concurrent
// builds are independent and a directory change is picked up by the next
// request that happens to scan after it.
type Builder struct {
	store     *store.FileStore
	extractor meta.Extractor
}

// NewBuilder creates a Builder over the given store and extractor.
func NewBuilder(fs *store.FileStore, extractor meta.Extractor) *Builder {
	return &Builder{store: fs, extractor: extractor}
}

// ListCandidateFiles enumerates the audio root's direct entries carrying a
// supported audio extension. Subdirectories are not descended into. The
// order is the directory enumeration order, stable across repeated calls on
// an unchanged directory.
func (b *Builder) ListCandidateFiles() ([]string, error) {
	entries, err := os.ReadDir(b.store.Root())
	if err != nil {
		return nil, fmt.Errorf("failed to read audio directory %s: %w", b.store.Root(), err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if store.IsAudioFile(entry.Name()) {
			files = append(files, entry.Name())
		}
	}
	return files, nil
}

// BuildTrack extracts metadata for one file. It never drops the track: when
// tag extraction fails the returned Track carries filename-derived fallback
// fields and the extraction error as a note.
func (b *Builder) BuildTrack(filename string) *model.Track {
	track, err := b.extractor.Extract(filepath.Join(b.store.Root(), filename), filename)
	if err != nil {
		logger.Warn("Failed to extract metadata, using fallback track",
			logger.String("filename", filename),
			logger.ErrorField(err))
		track = meta.FallbackTrack(filename)
		track.Error = err.Error()
	}
	return track
}

// BuildCatalog maps every candidate file through BuildTrack, preserving
// enumeration order.
func (b *Builder) BuildCatalog() ([]*model.Track, error) {
	files, err := b.ListCandidateFiles()
	if err != nil {
		return nil, err
	}

	tracks := make([]*model.Track, 0, len(files))
	for _, filename := range files {
		tracks = append(tracks, b.BuildTrack(filename))
	}
	return tracks, nil
}
