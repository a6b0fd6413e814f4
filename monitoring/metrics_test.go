package monitoring

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRegisterIsIdempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Register()
		Register()
	})
}

func TestCacheAndFollowCounters(t *testing.T) {
	hits := testutil.ToFloat64(PageCacheLookups.WithLabelValues("hit"))
	CacheHit()
	assert.Equal(t, hits+1, testutil.ToFloat64(PageCacheLookups.WithLabelValues("hit")))

	misses := testutil.ToFloat64(PageCacheLookups.WithLabelValues("miss"))
	CacheMiss()
	CacheMiss()
	assert.Equal(t, misses+2, testutil.ToFloat64(PageCacheLookups.WithLabelValues("miss")))

	created := testutil.ToFloat64(FollowEdges.WithLabelValues("created"))
	FollowCreated()
	assert.Equal(t, created+1, testutil.ToFloat64(FollowEdges.WithLabelValues("created")))

	deleted := testutil.ToFloat64(FollowEdges.WithLabelValues("deleted"))
	FollowDeleted()
	assert.Equal(t, deleted+1, testutil.ToFloat64(FollowEdges.WithLabelValues("deleted")))
}

func TestSentryIsOptional(t *testing.T) {
	assert.NoError(t, InitSentry("", "test"))
	assert.NotPanics(t, func() {
		ReportError(assert.AnError)
		ReportPanic("boom")
		FlushSentry()
	})
}
