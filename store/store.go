package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"AirFM/model"
)

// ErrNotFound is returned when a filename does not resolve to a file inside
// the audio root.
var ErrNotFound = errors.New("file not found")

// contentTypes maps audio file extensions to their MIME types. Unknown
// extensions fall back to application/octet-stream, never an error.
var contentTypes = map[string]string{
	".mp3":  "audio/mpeg",
	".flac": "audio/flac",
	".wav":  "audio/wav",
	".aac":  "audio/aac",
	".ogg":  "audio/ogg",
	".m4a":  "audio/mp4",
}

// AudioFile is a resolved file inside the audio root.
type AudioFile struct {
	Path        string
	Size        int64
	ContentType string
}

// FileStore resolves track filenames to files under a single audio root
// directory. It holds no mutable state and is safe for concurrent use.
type FileStore struct {
	root string
}

// NewFileStore creates a FileStore rooted at audioDir.
func NewFileStore(audioDir string) (*FileStore, error) {
	root, err := filepath.Abs(audioDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve audio root %s: %w", audioDir, err)
	}
	return &FileStore{root: root}, nil
}

// Root returns the absolute path of the audio root directory.
func (s *FileStore) Root() string {
	return s.root
}

// resolvePath maps a client-supplied filename to an absolute path, rejecting
// anything that would escape the audio root. Only direct children of the root
// are served; filenames carrying path separators or traversal sequences fail.
func (s *FileStore) resolvePath(filename string) (string, error) {
	if filename == "" {
		return "", ErrNotFound
	}
	cleaned := filepath.Clean(filename)
	if cleaned != filepath.Base(cleaned) || cleaned == "." || cleaned == ".." {
		return "", ErrNotFound
	}
	path := filepath.Join(s.root, cleaned)
	if !strings.HasPrefix(path, s.root+string(filepath.Separator)) {
		return "", ErrNotFound
	}
	return path, nil
}

// Resolve resolves a filename to its path, size and content type.
// Returns ErrNotFound for unknown filenames and for any path that escapes
// the audio root.
func (s *FileStore) Resolve(filename string) (*AudioFile, error) {
	path, err := s.resolvePath(filename)
	if err != nil {
		return nil, err
	}
	stat, err := os.Stat(path)
	if err != nil || stat.IsDir() {
		return nil, ErrNotFound
	}
	return &AudioFile{
		Path:        path,
		Size:        stat.Size(),
		ContentType: ContentTypeFor(filename),
	}, nil
}

// Exists reports whether a filename resolves to a file inside the audio root.
// It never fails, whatever the input string contains.
func (s *FileStore) Exists(filename string) bool {
	_, err := s.Resolve(filename)
	return err == nil
}

// Info returns size, timestamps and content type for a resolved file.
// Creation time is best-effort: where the platform does not expose a birth
// time it equals the modification time.
func (s *FileStore) Info(filename string) (*model.FileInfo, error) {
	path, err := s.resolvePath(filename)
	if err != nil {
		return nil, err
	}
	stat, err := os.Stat(path)
	if err != nil || stat.IsDir() {
		return nil, ErrNotFound
	}
	return &model.FileInfo{
		Filename:    filename,
		Size:        stat.Size(),
		Created:     creationTime(stat),
		Modified:    stat.ModTime(),
		ContentType: ContentTypeFor(filename),
	}, nil
}

// ContentTypeFor derives the MIME type from a filename extension.
func ContentTypeFor(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	return "application/octet-stream"
}

// IsAudioFile reports whether a filename carries one of the supported audio
// extensions.
func IsAudioFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	_, ok := contentTypes[ext]
	return ok
}
