package meta

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"AirFM/model"

	"github.com/dhowden/tag"
)

// Extractor derives structured metadata from an audio file on disk.
type Extractor interface {
	// Extract parses tags and technical parameters for the file at path.
	// filename is the library-relative name used as the track key.
	Extract(path, filename string) (*model.Track, error)
}

// FileExtractor reads embedded tags with dhowden/tag and probes technical
// parameters (duration, sample rate, channels) by decoding the audio headers.
type FileExtractor struct{}

// NewFileExtractor creates a FileExtractor.
func NewFileExtractor() *FileExtractor {
	return &FileExtractor{}
}

// FallbackTrack builds the minimal track used when extraction fails: the
// filename stem as title, unknown artist and album, zero duration.
func FallbackTrack(filename string) *model.Track {
	return &model.Track{
		Filename: filename,
		Title:    stem(filename),
		Artist:   "Unknown artist",
		Album:    "Unknown album",
		Genre:    []string{},
	}
}

// Extract implements Extractor.
func (e *FileExtractor) Extract(path, filename string) (*model.Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", filename, err)
	}

	track := FallbackTrack(filename)

	m, err := tag.ReadFrom(f)
	if err != nil {
		// WAV carries no tag block; absent tags are not an extraction
		// failure, the track just keeps its fallback fields.
		if strings.ToLower(filepath.Ext(filename)) != ".wav" {
			return nil, fmt.Errorf("failed to read tags from %s: %w", filename, err)
		}
	} else {
		applyTags(track, m)
		if pic := m.Picture(); pic != nil && track.AlbumArt == nil {
			track.AlbumArt = dataURI(pic.MIMEType, pic.Data)
		}
		applyFormat(track, m.FileType())
	}

	// MP3s may embed several pictures; prefer the front cover over whatever
	// dhowden/tag happened to surface.
	if strings.ToLower(filepath.Ext(filename)) == ".mp3" {
		if art := mp3FrontCover(path); art != nil {
			track.AlbumArt = art
		}
	}

	probe(path, stat.Size(), track)
	return track, nil
}

// applyTags copies the common tag fields, keeping fallbacks for absent ones.
func applyTags(t *model.Track, m tag.Metadata) {
	if title := strings.TrimSpace(m.Title()); title != "" {
		t.Title = title
	}
	if artist := strings.TrimSpace(m.Artist()); artist != "" {
		t.Artist = artist
	}
	if album := strings.TrimSpace(m.Album()); album != "" {
		t.Album = album
	}
	t.Year = m.Year()
	if genre := strings.TrimSpace(m.Genre()); genre != "" {
		t.Genre = []string{genre}
	}
}

// applyFormat fills codec, container and losslessness from the detected
// file type.
func applyFormat(t *model.Track, ft tag.FileType) {
	switch ft {
	case tag.MP3:
		t.Codec, t.Container = "MPEG 1 Layer 3", "MPEG"
	case tag.FLAC:
		t.Codec, t.Container, t.Lossless = "FLAC", "FLAC", true
	case tag.OGG:
		t.Codec, t.Container = "Vorbis", "Ogg"
	case tag.M4A, tag.M4B, tag.M4P:
		t.Codec, t.Container = "AAC", "MPEG-4"
	case tag.ALAC:
		t.Codec, t.Container, t.Lossless = "ALAC", "MPEG-4", true
	}
}

// dataURI encodes an embedded picture as a self-describing inline image.
func dataURI(mimeType string, data []byte) *string {
	if len(data) == 0 {
		return nil
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	uri := "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
	return &uri
}

func stem(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}
