package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(Overrides.WithLabelValues(OverrideAccepted))
	Overrides.WithLabelValues(OverrideAccepted).Inc()
	assert.InDelta(t, before+1, testutil.ToFloat64(Overrides.WithLabelValues(OverrideAccepted)), 1e-9)

	before = testutil.ToFloat64(PlaylistsCategorized.WithLabelValues("Food"))
	PlaylistsCategorized.WithLabelValues("Food").Add(2)
	assert.InDelta(t, before+2, testutil.ToFloat64(PlaylistsCategorized.WithLabelValues("Food")), 1e-9)
}

func TestObserveFetch(t *testing.T) {
	before := testutil.CollectAndCount(SourceFetch)
	ObserveFetch(time.Now().Add(-time.Second))
	assert.Equal(t, before, testutil.CollectAndCount(SourceFetch), "histogram is a single series")
	assert.Equal(t, 1, testutil.CollectAndCount(SyncRuns.WithLabelValues("ok")))
}
