package db

import "time"

// Video represents a row in the videos table.
type Video struct {
	ID        int64
	Path      string
	Filename  string
	Extension string
	Duration  time.Duration
}

// Trim represents a row in the trims table: a saved selection of a video.
type Trim struct {
	ID        int64
	VideoID   int64
	VideoPath string
	Name      string
	Note      string
	Start     time.Duration
	End       time.Duration
	CreatedAt time.Time
}

// Length returns the selected duration.
func (t Trim) Length() time.Duration {
	return t.End - t.Start
}
