package player

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// ErrNoSource is returned by playback controls before a source is loaded.
var ErrNoSource = errors.New("no source loaded")

// tickInterval paces the time-advanced events while a source is loaded.
const tickInterval = 500 * time.Millisecond

// memorySource is a fetched stream body. It must expose bytes.Reader's
// Seeker: the mp3 decoder only computes the total length when its source
// seeks, and without a length Duration() and seeking are dead.
type memorySource struct {
	*bytes.Reader
}

func newMemorySource(data []byte) memorySource {
	return memorySource{bytes.NewReader(data)}
}

func (memorySource) Close() error { return nil }

// BeepMedia implements Media on top of the beep speaker. The source is
// fetched over HTTP into memory and decoded by extension; loading a new
// source clears the speaker and invalidates callbacks from the old one.
type BeepMedia struct {
	mu sync.Mutex

	initialized bool
	sampleRate  beep.SampleRate

	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volumeFx *effects.Volume

	volume float64

	// loadID is bumped per Load; callbacks compare against it so a replaced
	// source cannot emit events.
	loadID   uint64
	stopTick chan struct{}
}

// NewBeepMedia creates an unloaded media resource.
func NewBeepMedia() *BeepMedia {
	return &BeepMedia{
		sampleRate: beep.SampleRate(44100),
		volume:     1.0,
	}
}

// Load fetches and decodes the source at streamURL. The new source starts
// paused; EventMetadataLoaded is emitted once its duration is known.
func (m *BeepMedia) Load(streamURL string, onEvent func(Event)) error {
	data, err := fetch(streamURL)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.dropCurrentLocked()

	source := newMemorySource(data)
	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch sourceExt(streamURL) {
	case ".mp3":
		streamer, format, err = mp3.Decode(source)
	case ".flac":
		streamer, format, err = flac.Decode(source)
	case ".wav":
		streamer, format, err = wav.Decode(source)
	case ".ogg":
		streamer, format, err = vorbis.Decode(source)
	default:
		return fmt.Errorf("unsupported stream format: %s", streamURL)
	}
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", streamURL, err)
	}

	if !m.initialized {
		if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/10)); err != nil {
			streamer.Close()
			return fmt.Errorf("failed to initialize speaker: %w", err)
		}
		m.initialized = true
	}

	m.loadID++
	id := m.loadID
	m.streamer = streamer
	m.format = format

	resampled := beep.Resample(4, format.SampleRate, m.sampleRate, streamer)
	m.ctrl = &beep.Ctrl{Streamer: resampled, Paused: true}
	m.volumeFx = &effects.Volume{
		Streamer: m.ctrl,
		Base:     2,
		Volume:   volumeExponent(m.volume),
		Silent:   m.volume == 0,
	}

	speaker.Play(beep.Seq(m.volumeFx, beep.Callback(func() {
		// Run outside the speaker goroutine so the handler may start the
		// next track.
		go m.emit(id, onEvent, Event{Kind: EventEnded})
	})))

	m.stopTick = make(chan struct{})
	go m.tick(id, m.stopTick, onEvent)
	go m.emit(id, onEvent, Event{Kind: EventMetadataLoaded})

	return nil
}

// Play resumes the loaded source.
func (m *BeepMedia) Play() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ctrl == nil {
		return ErrNoSource
	}
	speaker.Lock()
	m.ctrl.Paused = false
	speaker.Unlock()
	return nil
}

// Pause halts the loaded source, keeping its position.
func (m *BeepMedia) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ctrl == nil {
		return
	}
	speaker.Lock()
	m.ctrl.Paused = true
	speaker.Unlock()
}

// Seek moves the playback clock to the given second offset.
func (m *BeepMedia) Seek(seconds float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.streamer == nil {
		return ErrNoSource
	}
	sample := int(seconds * float64(m.format.SampleRate))
	if sample < 0 {
		sample = 0
	}
	if n := m.streamer.Len(); sample >= n {
		sample = n - 1
	}

	speaker.Lock()
	err := m.streamer.Seek(sample)
	speaker.Unlock()
	if err != nil {
		return fmt.Errorf("failed to seek: %w", err)
	}
	return nil
}

// SetVolume sets the linear volume in [0,1]; 0 is silence.
func (m *BeepMedia) SetVolume(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.volume = v
	if m.volumeFx == nil {
		return
	}
	speaker.Lock()
	m.volumeFx.Silent = v == 0
	m.volumeFx.Volume = volumeExponent(v)
	speaker.Unlock()
}

// Position returns the playback clock of the loaded source in seconds.
func (m *BeepMedia) Position() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := m.streamer.Position()
	speaker.Unlock()
	return m.format.SampleRate.D(pos).Seconds()
}

// Duration returns the total length of the loaded source in seconds.
func (m *BeepMedia) Duration() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.streamer == nil {
		return 0
	}
	return m.format.SampleRate.D(m.streamer.Len()).Seconds()
}

// Close drops the loaded source and silences the speaker.
func (m *BeepMedia) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.dropCurrentLocked()
	return nil
}

// dropCurrentLocked discards the loaded source. Caller holds m.mu.
func (m *BeepMedia) dropCurrentLocked() {
	m.loadID++
	if m.stopTick != nil {
		close(m.stopTick)
		m.stopTick = nil
	}
	if m.initialized {
		speaker.Clear()
	}
	if m.streamer != nil {
		m.streamer.Close()
		m.streamer = nil
	}
	m.ctrl = nil
	m.volumeFx = nil
}

// emit delivers an event unless the source it belongs to has been replaced.
func (m *BeepMedia) emit(id uint64, onEvent func(Event), ev Event) {
	m.mu.Lock()
	stale := id != m.loadID
	m.mu.Unlock()
	if stale {
		return
	}
	onEvent(ev)
}

// tick emits time-advanced events while the source is loaded and playing.
func (m *BeepMedia) tick(id uint64, stop <-chan struct{}, onEvent func(Event)) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			m.mu.Lock()
			stale := id != m.loadID
			playing := m.ctrl != nil && !m.ctrl.Paused
			m.mu.Unlock()
			if stale {
				return
			}
			if playing {
				onEvent(Event{Kind: EventTimeAdvanced})
			}
		}
	}
}

// fetch downloads the full source body.
func fetch(streamURL string) ([]byte, error) {
	resp, err := http.Get(streamURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", streamURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		return nil, fmt.Errorf("stream request for %s returned status %d", streamURL, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read stream body: %w", err)
	}
	return data, nil
}

// sourceExt extracts the lowercase file extension from a stream URL.
func sourceExt(streamURL string) string {
	u, err := url.Parse(streamURL)
	if err != nil {
		return strings.ToLower(path.Ext(streamURL))
	}
	unescaped, err := url.PathUnescape(u.Path)
	if err != nil {
		unescaped = u.Path
	}
	return strings.ToLower(path.Ext(unescaped))
}

// volumeExponent maps a linear volume to the base-2 exponent beep expects.
func volumeExponent(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Log2(v)
}
