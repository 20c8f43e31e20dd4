package handlers

import (
	"net/http"
	"time"

	"resto-analytics-service/internal/analytics"
	"resto-analytics-service/pkg/response"
)

func (h *Handler) SatisfactionDashboard(w http.ResponseWriter, r *http.Request) {
	merchantID, err := readPathInt64(r, "merchantId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "INVALID_MERCHANT", "merchant id must be numeric")
		return
	}

	now := time.Now()
	key := analyticsCacheKey("satisfaction", merchantID, h.cacheBucket(now))
	if cached, ok := getAnalyticsCache(key); ok {
		response.JSON(w, http.StatusOK, cached)
		return
	}

	snap, err := h.loadSnapshot(r.Context(), merchantID)
	if err != nil {
		h.Logger.Error("loading analytics snapshot failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "ANALYTICS_FAILED", "could not load analytics data")
		return
	}

	report := analytics.AnalyzeSatisfaction(snap.Reviews, now)
	payload := map[string]any{
		"success": true,
		"data":    report,
		"meta": map[string]any{
			"generatedAt": now.UTC().Format(time.RFC3339),
		},
	}
	setAnalyticsCache(key, payload, h.cacheTTL())
	response.JSON(w, http.StatusOK, payload)
}
