package domain

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a requested playlist or record does not exist
var ErrNotFound = errors.New("not found")

// Playlist is a playlist record as supplied by a content source
type Playlist struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ItemCount    int       `json:"video_count"`
	PublishedAt  time.Time `json:"published_at,omitzero"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Author       string    `json:"author,omitempty"`
	Source       string    `json:"source,omitempty"`
	SyncedAt     time.Time `json:"synced_at,omitzero"`
}

// CategorizedPlaylist is a playlist with its assigned category
type CategorizedPlaylist struct {
	Playlist
	Category   Category `json:"category"`
	Confidence float64  `json:"category_confidence"`
}

// CategoryStats holds aggregated data for a single category
type CategoryStats struct {
	Count      int                   `json:"playlist_count"`
	TotalItems int                   `json:"total_videos"`
	Members    []CategorizedPlaylist `json:"playlists"`
}

// Summary maps every vocabulary category to its stats
type Summary map[Category]CategoryStats

// Video is a single entry of a playlist, used for display only
type Video struct {
	ID           string        `json:"video_id"`
	Title        string        `json:"title"`
	Description  string        `json:"description,omitempty"`
	Position     int           `json:"position"`
	PublishedAt  time.Time     `json:"published_at,omitzero"`
	ThumbnailURL string        `json:"thumbnail_url,omitempty"`
	Author       string        `json:"author,omitempty"`
	Duration     time.Duration `json:"duration,omitempty"`
}

// SyncStatus is the outcome of a playlist sync run
type SyncStatus string

// sync statuses
const (
	SyncRunning SyncStatus = "running"
	SyncOK      SyncStatus = "ok"
	SyncPartial SyncStatus = "partial"
	SyncFailed  SyncStatus = "failed"
)

// SyncRun describes one pass of fetching playlists from the source
type SyncRun struct {
	ID         string     `json:"id"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	Playlists  int        `json:"playlists"`
	Failures   int        `json:"failures"`
	Status     SyncStatus `json:"status"`
	Error      string     `json:"error,omitempty"`
}
