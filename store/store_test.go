package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	require.NoError(t, err)
	return fs, dir
}

func TestResolveKnownFile(t *testing.T) {
	fs, dir := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "song.mp3"), []byte("0123456789"), 0644))

	af, err := fs.Resolve("song.mp3")
	require.NoError(t, err)
	assert.Equal(t, int64(10), af.Size)
	assert.Equal(t, "audio/mpeg", af.ContentType)
	assert.Equal(t, filepath.Join(dir, "song.mp3"), af.Path)
}

func TestResolveRejectsEscapes(t *testing.T) {
	fs, dir := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "song.mp3"), []byte("x"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "nested.mp3"), []byte("x"), 0644))

	tests := []struct {
		name     string
		filename string
	}{
		{"parent traversal", "../../etc/passwd"},
		{"single parent", ".."},
		{"current dir", "."},
		{"empty", ""},
		{"absolute path", "/etc/passwd"},
		{"nested file", "sub/nested.mp3"},
		{"sneaky traversal", "sub/../../outside.mp3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fs.Resolve(tt.filename)
			assert.ErrorIs(t, err, ErrNotFound)
			assert.False(t, fs.Exists(tt.filename))
		})
	}
}

func TestExists(t *testing.T) {
	fs, dir := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "song.flac"), []byte("x"), 0644))

	assert.True(t, fs.Exists("song.flac"))
	assert.False(t, fs.Exists("missing.flac"))
}

func TestInfo(t *testing.T) {
	fs, dir := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "song.wav"), make([]byte, 44), 0644))

	info, err := fs.Info("song.wav")
	require.NoError(t, err)
	assert.Equal(t, "song.wav", info.Filename)
	assert.Equal(t, int64(44), info.Size)
	assert.Equal(t, "audio/wav", info.ContentType)
	assert.False(t, info.Modified.IsZero())
	assert.False(t, info.Created.IsZero())
	assert.False(t, info.Created.After(info.Modified))

	_, err = fs.Info("missing.wav")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContentTypeFor(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"a.mp3", "audio/mpeg"},
		{"a.MP3", "audio/mpeg"},
		{"a.flac", "audio/flac"},
		{"a.wav", "audio/wav"},
		{"a.aac", "audio/aac"},
		{"a.ogg", "audio/ogg"},
		{"a.m4a", "audio/mp4"},
		{"a.txt", "application/octet-stream"},
		{"noext", "application/octet-stream"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ContentTypeFor(tt.filename), tt.filename)
	}
}

func TestIsAudioFile(t *testing.T) {
	assert.True(t, IsAudioFile("track.ogg"))
	assert.True(t, IsAudioFile("Track.M4A"))
	assert.False(t, IsAudioFile("cover.jpg"))
	assert.False(t, IsAudioFile("mp3"))
}
