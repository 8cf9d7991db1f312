package player

// EventKind identifies a media-resource lifecycle event.
type EventKind int

const (
	// EventMetadataLoaded fires once the loaded source's duration is known.
	EventMetadataLoaded EventKind = iota
	// EventTimeAdvanced fires as the playback clock moves.
	EventTimeAdvanced
	// EventEnded fires when the loaded source plays to completion.
	EventEnded
	// EventError fires when the loaded source fails mid-playback.
	EventError
)

// Event is a lifecycle notification from the bound media resource.
type Event struct {
	Kind EventKind
	Err  error
}

// Media is the playback resource the state machine drives. Load replaces the
// current source and discards interest in the previous one; the new source
// starts paused. Events are delivered through the callback passed to Load, in
// the order the resource emits them.
type Media interface {
	Load(url string, onEvent func(Event)) error
	Play() error
	Pause()
	Seek(seconds float64) error
	SetVolume(v float64)
	Position() float64
	Duration() float64
	Close() error
}
