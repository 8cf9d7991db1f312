package player

import (
	"context"
	"errors"
	"testing"

	"AirFM/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMedia struct {
	loads    []string
	onEvent  func(Event)
	playErr  error
	playing  bool
	volume   float64
	position float64
	duration float64
	seeked   float64
}

func (m *fakeMedia) Load(url string, onEvent func(Event)) error {
	m.loads = append(m.loads, url)
	m.onEvent = onEvent
	m.playing = false
	return nil
}

func (m *fakeMedia) Play() error {
	if m.playErr != nil {
		return m.playErr
	}
	m.playing = true
	return nil
}

func (m *fakeMedia) Pause()               { m.playing = false }
func (m *fakeMedia) Seek(s float64) error { m.seeked = s; return nil }
func (m *fakeMedia) SetVolume(v float64)  { m.volume = v }
func (m *fakeMedia) Position() float64    { return m.position }
func (m *fakeMedia) Duration() float64    { return m.duration }
func (m *fakeMedia) Close() error         { return nil }

type fakeTransport struct {
	tracks []model.TrackSummary
	err    error
}

func (t *fakeTransport) FetchCatalog(ctx context.Context) ([]model.TrackSummary, error) {
	return t.tracks, t.err
}

func (t *fakeTransport) StreamURL(filename string) string {
	return "http://test/api/stream/" + filename
}

type fakeSurface struct {
	last    View
	renders int
}

func (s *fakeSurface) Render(view View) {
	s.last = view
	s.renders++
}

func summaries(names ...string) []model.TrackSummary {
	out := make([]model.TrackSummary, 0, len(names))
	for _, n := range names {
		out = append(out, model.TrackSummary{Name: n, Artist: "Artist", Filename: n})
	}
	return out
}

func newTestPlayer(t *testing.T, names ...string) (*Player, *fakeMedia, *fakeSurface) {
	t.Helper()
	media := &fakeMedia{}
	surface := &fakeSurface{}
	p := New(media, &fakeTransport{tracks: summaries(names...)}, surface)
	require.NoError(t, p.LoadCatalog(context.Background()))
	return p, media, surface
}

func TestLoadCatalogEmpty(t *testing.T) {
	p, media, surface := newTestPlayer(t)

	_, ok := p.CurrentTrack()
	assert.False(t, ok)
	assert.True(t, surface.last.Empty)
	assert.Empty(t, media.loads)

	// Navigation on an empty player is a no-op.
	assert.NoError(t, p.NextTrack())
	assert.NoError(t, p.PrevTrack())
	assert.ErrorIs(t, p.TogglePlay(), ErrNoTracks)
}

func TestLoadCatalogSelectsFirstTrackPaused(t *testing.T) {
	p, media, surface := newTestPlayer(t, "a.mp3", "b.mp3")

	current, ok := p.CurrentTrack()
	require.True(t, ok)
	assert.Equal(t, "a.mp3", current.Filename)
	assert.Equal(t, []string{"http://test/api/stream/a.mp3"}, media.loads)
	assert.True(t, surface.last.Paused)
	assert.True(t, surface.last.AtStart)
	assert.False(t, surface.last.AtEnd)
}

func TestLoadCatalogFetchFailure(t *testing.T) {
	p := New(&fakeMedia{}, &fakeTransport{err: errors.New("connection refused")}, &fakeSurface{})
	err := p.LoadCatalog(context.Background())
	require.Error(t, err)

	_, ok := p.CurrentTrack()
	assert.False(t, ok)
}

func TestTogglePlay(t *testing.T) {
	p, media, surface := newTestPlayer(t, "a.mp3")

	require.NoError(t, p.TogglePlay())
	assert.True(t, media.playing)
	assert.False(t, surface.last.Paused)

	require.NoError(t, p.TogglePlay())
	assert.False(t, media.playing)
	assert.True(t, surface.last.Paused)
}

func TestTogglePlayFailureRevertsToPaused(t *testing.T) {
	p, media, surface := newTestPlayer(t, "a.mp3")
	media.playErr = errors.New("resource unavailable")

	err := p.TogglePlay()
	require.Error(t, err)
	assert.True(t, surface.last.Paused)
	assert.False(t, media.playing)
}

func TestNavigationBoundariesAreNoOps(t *testing.T) {
	p, media, _ := newTestPlayer(t, "a.mp3", "b.mp3")

	require.NoError(t, p.PrevTrack())
	current, _ := p.CurrentTrack()
	assert.Equal(t, "a.mp3", current.Filename)
	assert.Len(t, media.loads, 1) // no reload happened

	require.NoError(t, p.NextTrack())
	require.NoError(t, p.NextTrack()) // already at the end
	current, _ = p.CurrentTrack()
	assert.Equal(t, "b.mp3", current.Filename)
	assert.Len(t, media.loads, 2)
}

func TestManualNavigationForcesPause(t *testing.T) {
	p, media, surface := newTestPlayer(t, "a.mp3", "b.mp3")

	require.NoError(t, p.TogglePlay())
	require.NoError(t, p.NextTrack())

	assert.True(t, surface.last.Paused)
	assert.False(t, media.playing)

	require.NoError(t, p.TogglePlay())
	require.NoError(t, p.PrevTrack())
	assert.True(t, surface.last.Paused)
}

func TestTrackEndedPreservesPlayState(t *testing.T) {
	p, media, surface := newTestPlayer(t, "a.mp3", "b.mp3")

	require.NoError(t, p.TogglePlay())
	media.onEvent(Event{Kind: EventEnded})

	current, _ := p.CurrentTrack()
	assert.Equal(t, "b.mp3", current.Filename)
	assert.False(t, surface.last.Paused)
	assert.True(t, media.playing)
}

func TestTrackEndedWhilePausedStaysPaused(t *testing.T) {
	p, media, surface := newTestPlayer(t, "a.mp3", "b.mp3")

	media.onEvent(Event{Kind: EventEnded})

	current, _ := p.CurrentTrack()
	assert.Equal(t, "b.mp3", current.Filename)
	assert.True(t, surface.last.Paused)
	assert.False(t, media.playing)
}

func TestTrackEndedAtLastTrackStops(t *testing.T) {
	p, media, surface := newTestPlayer(t, "only.mp3")

	require.NoError(t, p.TogglePlay())
	media.onEvent(Event{Kind: EventEnded})

	current, _ := p.CurrentTrack()
	assert.Equal(t, "only.mp3", current.Filename)
	assert.True(t, surface.last.Paused)
	assert.Zero(t, surface.last.Position)
}

func TestStaleSourceEventsAreIgnored(t *testing.T) {
	p, media, _ := newTestPlayer(t, "a.mp3", "b.mp3", "c.mp3")

	require.NoError(t, p.NextTrack())
	staleEmit := media.onEvent // belongs to b.mp3's load
	require.NoError(t, p.NextTrack())

	// Events from the replaced source must not touch the new track.
	staleEmit(Event{Kind: EventEnded})
	staleEmit(Event{Kind: EventError, Err: errors.New("stale failure")})

	current, _ := p.CurrentTrack()
	assert.Equal(t, "c.mp3", current.Filename)
}

func TestVolumeAndMute(t *testing.T) {
	p, media, surface := newTestPlayer(t, "a.mp3")

	p.SetVolume(0.3)
	assert.Equal(t, 0.3, media.volume)

	p.SetVolume(0)
	assert.Equal(t, 0.0, media.volume)

	// Un-mute restores the last non-zero volume.
	p.ToggleMute()
	assert.Equal(t, 0.3, media.volume)
	assert.Equal(t, 0.3, surface.last.Volume)

	// Mute remembers the prior value.
	p.ToggleMute()
	assert.Equal(t, 0.0, media.volume)
	p.ToggleMute()
	assert.Equal(t, 0.3, media.volume)
}

func TestToggleMuteDefaultRestore(t *testing.T) {
	p, media, _ := newTestPlayer(t, "a.mp3")

	p.SetVolume(0)
	p.ToggleMute()
	assert.Equal(t, 0.5, media.volume)
}

func TestSetVolumeClamps(t *testing.T) {
	p, media, _ := newTestPlayer(t, "a.mp3")

	p.SetVolume(1.7)
	assert.Equal(t, 1.0, media.volume)
	p.SetVolume(-0.2)
	assert.Equal(t, 0.0, media.volume)
}

func TestVolumeChangesDoNotTouchPlayState(t *testing.T) {
	p, media, surface := newTestPlayer(t, "a.mp3")

	require.NoError(t, p.TogglePlay())
	p.SetVolume(0.4)
	p.ToggleMute()
	assert.False(t, surface.last.Paused)
	assert.True(t, media.playing)
}

func TestSeekTo(t *testing.T) {
	p, media, surface := newTestPlayer(t, "a.mp3")

	media.duration = 200
	media.onEvent(Event{Kind: EventMetadataLoaded})
	assert.Equal(t, 200.0, surface.last.Duration)

	require.NoError(t, p.SeekTo(50))
	assert.Equal(t, 100.0, media.seeked)
	assert.Equal(t, 100.0, surface.last.Position)
	assert.True(t, surface.last.Paused) // seek never changes play state
}

func TestTimeAdvancedUpdatesPosition(t *testing.T) {
	_, media, surface := newTestPlayer(t, "a.mp3")

	media.position = 12.5
	media.onEvent(Event{Kind: EventTimeAdvanced})
	assert.Equal(t, 12.5, surface.last.Position)
}

func TestNextThenPlayTargetsNewTrack(t *testing.T) {
	p, media, surface := newTestPlayer(t, "a.mp3", "b.mp3")

	require.NoError(t, p.NextTrack())
	current, _ := p.CurrentTrack()
	assert.Equal(t, "b.mp3", current.Filename)
	assert.True(t, surface.last.Paused)

	require.NoError(t, p.TogglePlay())
	assert.False(t, surface.last.Paused)
	assert.Equal(t, "http://test/api/stream/b.mp3", media.loads[len(media.loads)-1])
	assert.True(t, media.playing)
}
