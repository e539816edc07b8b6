package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/playsort/pkg/domain"
	"github.com/umputun/playsort/pkg/metrics"
	"github.com/umputun/playsort/pkg/source"
)

// ErrSyncFailed is returned when no configured playlist could be fetched
var ErrSyncFailed = errors.New("sync failed")

// maxErrorText limits the error summary stored with a sync run
const maxErrorText = 1024

// fetchResult is the outcome of fetching one configured playlist
type fetchResult struct {
	ref      string
	id       string
	playlist domain.Playlist
	err      error
}

// SyncNow runs a single sync pass and returns its record.
// Playlists which failed to fetch keep their previously stored record. Playlists removed from
// the configuration are deleted only when every configured playlist was fetched.
func (s *Scheduler) SyncNow(ctx context.Context) (domain.SyncRun, error) {
	s.syncMu.Lock()
	defer s.syncMu.Unlock()

	run, err := s.runs.StartRun(ctx)
	if err != nil {
		return domain.SyncRun{}, fmt.Errorf("start sync run: %w", err)
	}
	lgr.Printf("[INFO] sync %s started for %d playlists", run.ID, len(s.playlists))

	results := s.fetchAll(ctx, s.playlists)

	ordered := make([]domain.Playlist, 0, len(results))
	fresh := make([]domain.Playlist, 0, len(results))
	var failures []string
	for _, r := range results {
		if r.err == nil {
			ordered = append(ordered, r.playlist)
			fresh = append(fresh, r.playlist)
			continue
		}
		failures = append(failures, fmt.Sprintf("%s: %v", r.ref, r.err))
		lgr.Printf("[WARN] failed to fetch playlist %s: %v", r.ref, r.err)
		if r.id == "" {
			continue
		}
		// keep the last known record in its configured position
		if prev, err := s.store.GetPlaylist(ctx, r.id); err == nil {
			ordered = append(ordered, prev)
		}
	}

	run.Playlists = len(results)
	run.Failures = len(failures)
	run.Error = joinErrors(failures)

	storeErr := s.store.UpsertPlaylists(ctx, ordered)
	if storeErr != nil {
		run.Failures = len(results)
		run.Error = joinErrors(append([]string{"store: " + storeErr.Error()}, failures...))
	}

	if storeErr == nil && len(failures) == 0 {
		keep := make([]string, 0, len(results))
		for _, r := range results {
			keep = append(keep, r.id)
		}
		removed, err := s.store.DeletePlaylistsExcept(ctx, keep)
		if err != nil {
			lgr.Printf("[WARN] failed to remove unconfigured playlists: %v", err)
		} else if removed > 0 {
			lgr.Printf("[INFO] removed %d playlists no longer configured", removed)
		}
	}

	if s.categorizer != nil {
		for _, cp := range s.categorizer.CategorizeAll(fresh) {
			metrics.PlaylistsCategorized.WithLabelValues(cp.Category.String()).Inc()
		}
	}

	run.Status = runStatus(run.Playlists, run.Failures)
	// the pass result is recorded even when the caller's context is already canceled
	if err := s.runs.FinishRun(context.WithoutCancel(ctx), &run); err != nil {
		lgr.Printf("[WARN] failed to record sync run %s: %v", run.ID, err)
	}
	metrics.SyncRuns.WithLabelValues(string(run.Status)).Inc()

	lgr.Printf("[INFO] sync %s finished, status %s, %d playlists, %d failures",
		run.ID, run.Status, run.Playlists, run.Failures)

	switch {
	case storeErr != nil:
		return run, fmt.Errorf("store playlists: %w", storeErr)
	case run.Status == domain.SyncFailed:
		return run, fmt.Errorf("%w: %s", ErrSyncFailed, run.Error)
	}
	return run, nil
}

// fetchAll fetches playlists concurrently, results keep the order of refs
func (s *Scheduler) fetchAll(ctx context.Context, refs []string) []fetchResult {
	refs = uniqueRefs(refs)
	results := make([]fetchResult, len(refs))

	var g errgroup.Group
	g.SetLimit(s.maxWorkers)
	for i, ref := range refs {
		results[i].ref = ref
		id, err := source.ExtractPlaylistID(ref)
		if err != nil {
			results[i].err = err
			continue
		}
		results[i].id = id
		g.Go(func() error {
			results[i].playlist, results[i].err = s.fetch(ctx, id)
			return nil
		})
	}
	_ = g.Wait() // fetch errors are kept per playlist

	return results
}

func (s *Scheduler) fetch(ctx context.Context, id string) (domain.Playlist, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return domain.Playlist{}, fmt.Errorf("rate limit: %w", err)
	}

	start := time.Now()
	p, err := s.source.Playlist(ctx, id)
	metrics.ObserveFetch(start)
	if err != nil {
		return domain.Playlist{}, err
	}
	if p.ID != id {
		lgr.Printf("[DEBUG] playlist %s reported as %q, keeping configured id", id, p.ID)
		p.ID = id
	}
	if p.SyncedAt.IsZero() {
		p.SyncedAt = time.Now().UTC()
	}
	return p, nil
}

// uniqueRefs drops repeated playlist references, the first occurrence keeps its position
func uniqueRefs(refs []string) []string {
	seen := make(map[string]bool, len(refs))
	res := make([]string, 0, len(refs))
	for _, ref := range refs {
		key := ref
		if id, err := source.ExtractPlaylistID(ref); err == nil {
			key = id
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		res = append(res, ref)
	}
	return res
}

func runStatus(total, failures int) domain.SyncStatus {
	switch {
	case failures == 0:
		return domain.SyncOK
	case failures >= total:
		return domain.SyncFailed
	default:
		return domain.SyncPartial
	}
}

func joinErrors(msgs []string) string {
	res := strings.Join(msgs, "; ")
	if len(res) > maxErrorText {
		res = res[:maxErrorText] + "..."
	}
	return res
}
