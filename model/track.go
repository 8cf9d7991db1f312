package model

import "time"

// Track represents the full metadata of one audio file in the library.
// It is rebuilt from disk on every request; there is no persisted copy.
type Track struct {
	Filename         string   `json:"filename"` // Unique key, name of the file under the audio root
	Title            string   `json:"title"`
	Artist           string   `json:"artist"`
	Album            string   `json:"album"`
	Year             int      `json:"year,omitempty"`
	Genre            []string `json:"genre"`
	Duration         float64  `json:"duration"` // Seconds, 0 when unknown
	Bitrate          int      `json:"bitrate"`  // Bits per second, 0 when unknown
	SampleRate       int      `json:"sampleRate"`
	NumberOfChannels int      `json:"numberOfChannels"`
	Codec            string   `json:"codec,omitempty"`
	Lossless         bool     `json:"lossless"`
	Container        string   `json:"container,omitempty"`
	AlbumArt         *string  `json:"albumArt"` // data: URI, nil when no embedded picture
	Error            string   `json:"error,omitempty"`
}

// TrackSummary is the reduced projection returned by the track listing.
type TrackSummary struct {
	Name     string  `json:"name"`
	Artist   string  `json:"artist"`
	Art      *string `json:"art"`
	Filename string  `json:"filename"`
}

// Summary reduces a Track to its listing projection.
func (t *Track) Summary() TrackSummary {
	name := t.Title
	if name == "" {
		name = t.Filename
	}
	artist := t.Artist
	if artist == "" {
		artist = "Unknown artist"
	}
	return TrackSummary{
		Name:     name,
		Artist:   artist,
		Art:      t.AlbumArt,
		Filename: t.Filename,
	}
}

// TrackList is the response body of the track listing endpoint.
type TrackList struct {
	Count  int            `json:"count"`
	Tracks []TrackSummary `json:"tracks"`
}

// FileInfo describes a file in the library without parsing its tags.
type FileInfo struct {
	Filename    string    `json:"filename"`
	Size        int64     `json:"size"`
	Created     time.Time `json:"created"`
	Modified    time.Time `json:"modified"`
	ContentType string    `json:"contentType"`
}
