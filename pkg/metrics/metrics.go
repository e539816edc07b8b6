// Package metrics defines prometheus collectors exposed on /metrics
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// override results
const (
	OverrideAccepted = "accepted"
	OverrideRejected = "rejected"
)

var (
	// PlaylistsCategorized counts playlists categorized by sync runs, by assigned category
	PlaylistsCategorized = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "playsort_playlists_categorized_total",
		Help: "Total number of playlists categorized by sync runs.",
	}, []string{"category"})

	// Overrides counts manual category overrides, result is accepted or rejected
	Overrides = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "playsort_overrides_total",
		Help: "Total number of manual category overrides.",
	}, []string{"result"})

	// SyncRuns counts finished sync runs by status
	SyncRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "playsort_sync_runs_total",
		Help: "Total number of playlist sync runs.",
	}, []string{"status"})

	// SourceFetch measures single playlist fetch time
	SourceFetch = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "playsort_source_fetch_seconds",
		Help:    "Duration of playlist fetches from the source in seconds.",
		Buckets: prometheus.DefBuckets,
	})
)

// ObserveFetch records the time since start as a source fetch
func ObserveFetch(start time.Time) {
	SourceFetch.Observe(time.Since(start).Seconds())
}
