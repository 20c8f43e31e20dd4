package handlers

import (
	"net/http"
	"time"

	"resto-analytics-service/internal/analytics"
	"resto-analytics-service/pkg/response"
)

func (h *Handler) CustomersDashboard(w http.ResponseWriter, r *http.Request) {
	merchantID, err := readPathInt64(r, "merchantId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "INVALID_MERCHANT", "merchant id must be numeric")
		return
	}
	filter, err := statusFilterFromRequest(r, h.Config.CustomerStatuses)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "INVALID_STATUS", err.Error())
		return
	}

	now := time.Now()
	key := analyticsCacheKey("customers", merchantID, filterCacheKey(filter), h.cacheBucket(now))
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

	aggregates := analytics.BuildCustomerAggregates(snap.Orders, filter)
	report := analytics.AnalyzeCustomers(aggregates, snap.Orders, now, filter, h.segmentThresholds())
	payload := analyticsEnvelope(report, now, filter)
	setAnalyticsCache(key, payload, h.cacheTTL())
	response.JSON(w, http.StatusOK, payload)
}
