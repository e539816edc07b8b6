// Package scheduler keeps the playlist cache fresh. It fetches configured playlists
// from the source on start, on every update interval and on demand, stores them
// and records each sync run.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/time/rate"

	"github.com/umputun/playsort/pkg/domain"
)

//go:generate moq -out mocks/playlist_store.go -pkg mocks -skip-ensure -fmt goimports . PlaylistStore
//go:generate moq -out mocks/run_recorder.go -pkg mocks -skip-ensure -fmt goimports . RunRecorder
//go:generate moq -out mocks/source.go -pkg mocks -skip-ensure -fmt goimports . Source
//go:generate moq -out mocks/categorizer.go -pkg mocks -skip-ensure -fmt goimports . Categorizer

// PlaylistStore persists fetched playlists
type PlaylistStore interface {
	GetPlaylist(ctx context.Context, id string) (domain.Playlist, error)
	UpsertPlaylists(ctx context.Context, playlists []domain.Playlist) error
	DeletePlaylistsExcept(ctx context.Context, keep []string) (int64, error)
}

// RunRecorder records sync runs
type RunRecorder interface {
	StartRun(ctx context.Context) (domain.SyncRun, error)
	FinishRun(ctx context.Context, run *domain.SyncRun) error
}

// Source fetches a single playlist record
type Source interface {
	Playlist(ctx context.Context, ref string) (domain.Playlist, error)
}

// Categorizer assigns categories to fetched playlists
type Categorizer interface {
	CategorizeAll(playlists []domain.Playlist) []domain.CategorizedPlaylist
}

// Scheduler runs playlist sync passes in the background
type Scheduler struct {
	store       PlaylistStore
	runs        RunRecorder
	source      Source
	categorizer Categorizer

	playlists      []string
	updateInterval time.Duration
	maxWorkers     int
	limiter        *rate.Limiter

	syncMu  sync.Mutex // one sync pass at a time
	trigger chan struct{}
	wg      sync.WaitGroup
	cancel  context.CancelFunc
}

// Params contains all dependencies and settings for the scheduler
type Params struct {
	PlaylistStore PlaylistStore
	RunRecorder   RunRecorder
	Source        Source
	Categorizer   Categorizer

	Playlists      []string      // playlist ids or urls, in display order
	UpdateInterval time.Duration // time between sync passes
	MaxWorkers     int           // concurrent source requests
	RateLimit      time.Duration // minimal delay between source requests, 0 disables limiting
}

// NewScheduler creates a new scheduler instance
func NewScheduler(params Params) *Scheduler {
	limit := rate.Inf
	if params.RateLimit > 0 {
		limit = rate.Every(params.RateLimit)
	}
	maxWorkers := params.MaxWorkers
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	interval := params.UpdateInterval
	if interval <= 0 {
		interval = 30 * time.Minute
	}
	return &Scheduler{
		store:          params.PlaylistStore,
		runs:           params.RunRecorder,
		source:         params.Source,
		categorizer:    params.Categorizer,
		playlists:      params.Playlists,
		updateInterval: interval,
		maxWorkers:     maxWorkers,
		limiter:        rate.NewLimiter(limit, 1),
		trigger:        make(chan struct{}, 1),
	}
}

// Start runs the first sync immediately and then repeats it on every update interval
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.syncWorker(ctx)

	lgr.Printf("[INFO] scheduler started with update interval %v, %d playlists, %d workers",
		s.updateInterval, len(s.playlists), s.maxWorkers)
}

// Stop gracefully stops the scheduler and waits for the running sync to finish
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// TriggerSync asks the background worker for an extra sync pass.
// Requests made while one is already pending are merged.
func (s *Scheduler) TriggerSync() {
	select {
	case s.trigger <- struct{}{}:
		lgr.Printf("[DEBUG] sync triggered")
	default:
		lgr.Printf("[DEBUG] sync already pending")
	}
}

func (s *Scheduler) syncWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	s.syncOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.syncOnce(ctx)
		case <-s.trigger:
			s.syncOnce(ctx)
		}
	}
}

func (s *Scheduler) syncOnce(ctx context.Context) {
	if _, err := s.SyncNow(ctx); err != nil {
		lgr.Printf("[WARN] playlist sync failed: %v", err)
	}
}
