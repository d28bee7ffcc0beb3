package service

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCacheOperationConcurrent(t *testing.T) {
	svc := NewMetricsService()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		hit := i%2 == 0
		wg.Add(1)
		go func(hit bool) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				svc.RecordCacheOperation(hit)
			}
		}(hit)
	}
	wg.Wait()

	assert.Equal(t, uint64(400), svc.hitCount)
	assert.Equal(t, uint64(400), svc.missCount)
}

func TestMetricsScrapeExposesCollectors(t *testing.T) {
	svc := NewMetricsService()
	svc.ObserveHTTPRequest(http.MethodGet, "/api/events", http.StatusOK, 10*time.Millisecond)
	svc.RecordCacheOperation(true)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	svc.Handler().ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	body := resp.Body.String()
	assert.Contains(t, body, "http_requests_total")
	assert.Contains(t, body, "cache_hits_total")
	assert.Contains(t, body, "cache_hit_ratio")
}
