package player

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"AirFM/logger"
	"AirFM/model"
)

// ErrNoTracks is returned by transport-driven operations before a catalog
// has been loaded.
var ErrNoTracks = errors.New("no tracks loaded")

// defaultUnmuteVolume is restored by ToggleMute when no non-zero volume was
// ever set.
const defaultUnmuteVolume = 0.5

// View is the pure projection of the player state handed to the surface
// after every transition.
type View struct {
	Empty     bool
	TrackName string
	Artist    string
	Art       *string
	Paused    bool
	AtStart   bool
	AtEnd     bool
	Volume    float64
	Position  float64
	Duration  float64
}

// Surface renders a View. Implementations must not call back into the
// player from Render.
type Surface interface {
	Render(view View)
}

// Player owns the playback session state: track list, current index,
// pause/play flag, volume and transport position. All mutation goes through
// its methods; each transition runs to completion under the lock before the
// next event is processed, and ends by projecting the new state onto the
// surface.
type Player struct {
	mu sync.Mutex

	media     Media
	transport Transport
	surface   Surface

	tracks  []model.TrackSummary
	current int
	paused  bool

	volume         float64
	previousVolume float64

	position float64
	duration float64

	// generation is bumped on every source switch; events carrying a stale
	// generation belong to a previously loaded source and are dropped.
	generation uint64
}

// New creates a Player bound to one media resource, one transport and one
// surface.
func New(media Media, transport Transport, surface Surface) *Player {
	return &Player{
		media:     media,
		transport: transport,
		surface:   surface,
		paused:    true,
		volume:    1.0,
	}
}

// LoadCatalog fetches the track list and loads the first track, paused.
// An empty catalog leaves the player empty.
func (p *Player) LoadCatalog(ctx context.Context) error {
	tracks, err := p.transport.FetchCatalog(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if len(tracks) == 0 {
		p.render()
		return nil
	}

	p.tracks = tracks
	p.current = 0
	p.paused = true
	if err := p.loadCurrent(); err != nil {
		p.render()
		return err
	}
	p.render()
	return nil
}

// TogglePlay flips between paused and playing. A failed play attempt leaves
// the player paused and surfaces the failure.
func (p *Player) TogglePlay() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.tracks) == 0 {
		return ErrNoTracks
	}

	if p.paused {
		if err := p.media.Play(); err != nil {
			p.render()
			return fmt.Errorf("failed to start playback of %s: %w", p.tracks[p.current].Filename, err)
		}
		p.paused = false
	} else {
		p.media.Pause()
		p.paused = true
	}
	p.render()
	return nil
}

// NextTrack advances to the next track, paused. No-op at the last track.
func (p *Player) NextTrack() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.tracks) == 0 || p.current == len(p.tracks)-1 {
		return nil
	}
	return p.switchTrack(p.current+1, true)
}

// PrevTrack moves to the previous track, paused. No-op at the first track.
func (p *Player) PrevTrack() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.tracks) == 0 || p.current == 0 {
		return nil
	}
	return p.switchTrack(p.current-1, true)
}

// SetVolume sets the volume, clamped to [0,1]. Any non-zero value is
// remembered for un-muting. Play state is untouched.
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	if v > 0 {
		p.previousVolume = v
	}
	p.volume = v
	p.media.SetVolume(v)
	p.render()
}

// ToggleMute drops the volume to zero remembering the prior value, or
// restores the remembered volume (0.5 when none was ever set).
func (p *Player) ToggleMute() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.volume > 0 {
		p.previousVolume = p.volume
		p.volume = 0
	} else {
		restored := p.previousVolume
		if restored == 0 {
			restored = defaultUnmuteVolume
		}
		p.volume = restored
	}
	p.media.SetVolume(p.volume)
	p.render()
}

// SeekTo moves the playback position to a percentage of the duration.
// Play state is untouched.
func (p *Player) SeekTo(percent float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.tracks) == 0 || p.duration <= 0 {
		return nil
	}
	if percent < 0 {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}

	target := p.duration * percent / 100
	if err := p.media.Seek(target); err != nil {
		return fmt.Errorf("failed to seek: %w", err)
	}
	p.position = target
	p.render()
	return nil
}

// CurrentTrack returns the summary of the selected track, or false when the
// player is empty.
func (p *Player) CurrentTrack() (model.TrackSummary, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.tracks) == 0 {
		return model.TrackSummary{}, false
	}
	return p.tracks[p.current], true
}

// Close releases the bound media resource.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.media.Close()
}

// switchTrack loads the track at index. Manual navigation forces pause;
// auto-advance keeps the previous play state flowing. Caller holds the lock.
func (p *Player) switchTrack(index int, forcePause bool) error {
	wasPlaying := !p.paused

	p.current = index
	if forcePause {
		p.paused = true
	}

	if err := p.loadCurrent(); err != nil {
		p.paused = true
		p.render()
		return err
	}

	if !forcePause && wasPlaying {
		if err := p.media.Play(); err != nil {
			p.paused = true
			p.render()
			return fmt.Errorf("failed to continue playback on %s: %w", p.tracks[p.current].Filename, err)
		}
		p.paused = false
	}

	p.render()
	return nil
}

// loadCurrent points the media resource at the selected track. Loading a new
// source invalidates all events from the previous one. Caller holds the lock.
func (p *Player) loadCurrent() error {
	p.generation++
	gen := p.generation
	p.position = 0
	p.duration = 0

	url := p.transport.StreamURL(p.tracks[p.current].Filename)
	if err := p.media.Load(url, func(ev Event) {
		p.onMediaEvent(gen, ev)
	}); err != nil {
		return fmt.Errorf("failed to load %s: %w", p.tracks[p.current].Filename, err)
	}
	return nil
}

// onMediaEvent handles lifecycle events from the media resource. Events from
// a source that has since been replaced are dropped, including errors.
func (p *Player) onMediaEvent(gen uint64, ev Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.generation {
		return
	}

	switch ev.Kind {
	case EventMetadataLoaded:
		p.duration = p.media.Duration()
		p.render()
	case EventTimeAdvanced:
		p.position = p.media.Position()
		p.render()
	case EventEnded:
		p.handleTrackEnded()
	case EventError:
		logger.Warn("Media resource reported an error",
			logger.String("filename", p.tracks[p.current].Filename),
			logger.ErrorField(ev.Err))
		p.paused = true
		p.render()
	}
}

// handleTrackEnded auto-advances to the next track, preserving the play
// state that was in effect when the track ended. At the end of the list
// playback simply stops. Caller holds the lock.
func (p *Player) handleTrackEnded() {
	if p.current == len(p.tracks)-1 {
		p.paused = true
		p.position = 0
		p.render()
		return
	}

	if err := p.switchTrack(p.current+1, false); err != nil {
		logger.Warn("Failed to auto-advance to next track", logger.ErrorField(err))
	}
}

// render projects the current state onto the surface. Caller holds the lock.
func (p *Player) render() {
	if p.surface == nil {
		return
	}

	if len(p.tracks) == 0 {
		p.surface.Render(View{Empty: true, Paused: true, Volume: p.volume})
		return
	}

	track := p.tracks[p.current]
	p.surface.Render(View{
		TrackName: track.Name,
		Artist:    track.Artist,
		Art:       track.Art,
		Paused:    p.paused,
		AtStart:   p.current == 0,
		AtEnd:     p.current == len(p.tracks)-1,
		Volume:    p.volume,
		Position:  p.position,
		Duration:  p.duration,
	})
}
