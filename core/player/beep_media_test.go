package player

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySourceIsSeekable(t *testing.T) {
	src := newMemorySource([]byte("frame data"))

	// The decoders only learn the total length of the stream when their
	// source seeks, so the fetched body must surface bytes.Reader's Seeker.
	_, ok := io.ReadCloser(src).(io.Seeker)
	require.True(t, ok)

	end, err := src.Seek(0, io.SeekEnd)
	require.NoError(t, err)
	assert.Equal(t, int64(10), end)

	_, err = src.Seek(0, io.SeekStart)
	require.NoError(t, err)
	data, err := io.ReadAll(src)
	require.NoError(t, err)
	assert.Equal(t, "frame data", string(data))
	assert.NoError(t, src.Close())
}

func TestSourceExt(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"http://localhost:9339/api/stream/track.mp3", ".mp3"},
		{"http://localhost:9339/api/stream/Track.FLAC", ".flac"},
		{"http://localhost:9339/api/stream/my%20song.ogg", ".ogg"},
		{"http://localhost:9339/api/stream/take.wav?t=1", ".wav"},
		{"http://localhost:9339/api/stream/noext", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sourceExt(tt.url), tt.url)
	}
}

func TestVolumeExponent(t *testing.T) {
	assert.Equal(t, 0.0, volumeExponent(1.0))
	assert.Equal(t, -1.0, volumeExponent(0.5))
	assert.Equal(t, 0.0, volumeExponent(0))
	assert.Equal(t, 0.0, volumeExponent(-0.3))
}
