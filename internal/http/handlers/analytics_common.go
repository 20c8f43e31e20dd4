package handlers

import (
	"strings"
	"time"

	"resto-analytics-service/internal/analytics"
)

func analyticsEnvelope(data any, generatedAt time.Time, filter analytics.StatusFilter) map[string]any {
	return map[string]any{
		"success": true,
		"data":    data,
		"meta": map[string]any{
			"generatedAt": generatedAt.UTC().Format(time.RFC3339),
			"statuses":    filter.Statuses(),
		},
	}
}

func (h *Handler) cacheTTL() time.Duration {
	if h.Config.AnalyticsCacheTTL > 0 {
		return h.Config.AnalyticsCacheTTL
	}
	return 5 * time.Minute
}

// cacheBucket pins a report to a TTL-aligned window so every request inside
// the window shares one cache entry.
func (h *Handler) cacheBucket(now time.Time) string {
	return now.UTC().Truncate(h.cacheTTL()).Format(time.RFC3339)
}

func filterCacheKey(filter analytics.StatusFilter) string {
	return strings.Join(filter.Statuses(), ",")
}
