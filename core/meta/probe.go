package meta

import (
	"os"
	"path/filepath"
	"strings"

	"AirFM/model"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// probe decodes the audio headers to fill duration, sample rate and channel
// count. Formats without a decoder (AAC, M4A) are left at their zero values.
// Probe failures are deliberately non-fatal: the tags already parsed stand,
// only the technical parameters stay unknown.
func probe(path string, size int64, t *model.Track) {
	f, err := os.Open(path)
	if err != nil {
		return
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	default:
		f.Close()
		return
	}
	if err != nil {
		f.Close()
		return
	}
	defer streamer.Close()

	t.SampleRate = int(format.SampleRate)
	t.NumberOfChannels = format.NumChannels

	if n := streamer.Len(); n > 0 {
		t.Duration = format.SampleRate.D(n).Seconds()
	}
	if t.Duration > 0 && t.Bitrate == 0 {
		t.Bitrate = int(float64(size*8) / t.Duration)
	}
	// Uncompressed PCM never loses anything, whatever the tag block says.
	if strings.ToLower(filepath.Ext(path)) == ".wav" {
		t.Lossless = true
		t.Codec, t.Container = "PCM", "WAVE"
	}
}
