package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"resto-analytics-service/internal/analytics"
	"resto-analytics-service/internal/export"
	"resto-analytics-service/pkg/response"

	"go.uber.org/zap"
)

// buildExportDocument assembles the combined dashboard document using each
// dashboard's configured status defaults.
func (h *Handler) buildExportDocument(ctx context.Context, merchantID int64, now time.Time) (analytics.ExportData, error) {
	revenueFilter, err := parseStatusFilter(h.Config.RevenueStatuses)
	if err != nil {
		return analytics.ExportData{}, err
	}
	orderFilter, err := parseStatusFilter(h.Config.OrderStatuses)
	if err != nil {
		return analytics.ExportData{}, err
	}
	customerFilter, err := parseStatusFilter(h.Config.CustomerStatuses)
	if err != nil {
		return analytics.ExportData{}, err
	}

	snap, err := h.loadSnapshot(ctx, merchantID)
	if err != nil {
		return analytics.ExportData{}, err
	}

	revenue := analytics.AnalyzeRevenue(snap.Orders, now, snap.Catalogue, revenueFilter)
	orders := analytics.AnalyzeOrders(snap.Orders, now, orderFilter)
	aggregates := analytics.BuildCustomerAggregates(snap.Orders, customerFilter)
	customers := analytics.AnalyzeCustomers(aggregates, snap.Orders, now, customerFilter, h.segmentThresholds())
	satisfaction := analytics.AnalyzeSatisfaction(snap.Reviews, now)

	return analytics.AssembleExport(revenue, orders, customers, satisfaction), nil
}

func (h *Handler) ExportDocument(w http.ResponseWriter, r *http.Request) {
	merchantID, err := readPathInt64(r, "merchantId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "INVALID_MERCHANT", "merchant id must be numeric")
		return
	}

	now := time.Now()
	key := analyticsCacheKey("export", merchantID, h.cacheBucket(now))
	if cached, ok := getAnalyticsCache(key); ok {
		response.JSON(w, http.StatusOK, cached)
		return
	}

	doc, err := h.buildExportDocument(r.Context(), merchantID, now)
	if err != nil {
		h.Logger.Error("building analytics export failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "EXPORT_FAILED", "could not build analytics export")
		return
	}

	payload := map[string]any{
		"success": true,
		"data":    doc,
		"meta": map[string]any{
			"generatedAt": now.UTC().Format(time.RFC3339),
		},
	}
	setAnalyticsCache(key, payload, h.cacheTTL())
	response.JSON(w, http.StatusOK, payload)
}

func (h *Handler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	merchantID, err := readPathInt64(r, "merchantId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "INVALID_MERCHANT", "merchant id must be numeric")
		return
	}

	now := time.Now()
	doc, err := h.buildExportDocument(r.Context(), merchantID, now)
	if err != nil {
		h.Logger.Error("building analytics export failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "EXPORT_FAILED", "could not build analytics export")
		return
	}

	pdf, err := export.RenderPDF(doc, merchantID, now)
	if err != nil {
		h.Logger.Error("rendering analytics pdf failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "EXPORT_FAILED", "could not render analytics pdf")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=analytics-%d-%s.pdf", merchantID, now.UTC().Format("20060102")))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func (h *Handler) ExportArchive(w http.ResponseWriter, r *http.Request) {
	merchantID, err := readPathInt64(r, "merchantId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "INVALID_MERCHANT", "merchant id must be numeric")
		return
	}
	if h.Archive == nil {
		response.Error(w, http.StatusServiceUnavailable, "ARCHIVE_DISABLED", "report archiving is not configured")
		return
	}

	now := time.Now()
	doc, err := h.buildExportDocument(r.Context(), merchantID, now)
	if err != nil {
		h.Logger.Error("building analytics export failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "EXPORT_FAILED", "could not build analytics export")
		return
	}

	pdf, err := export.RenderPDF(doc, merchantID, now)
	if err != nil {
		h.Logger.Error("rendering analytics pdf failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "EXPORT_FAILED", "could not render analytics pdf")
		return
	}

	key := fmt.Sprintf("reports/%d/analytics-%s.pdf", merchantID, now.UTC().Format("20060102-150405"))
	url, err := h.Archive.PutObject(r.Context(), key, pdf, "application/pdf", "private, max-age=0")
	if err != nil {
		h.Logger.Error("archiving analytics pdf failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "ARCHIVE_FAILED", "could not archive analytics pdf")
		return
	}

	h.Logger.Info("analytics report archived",
		zap.Int64("merchantId", merchantID),
		zap.String("key", key),
	)
	response.Success(w, map[string]any{
		"url": url,
		"key": key,
	})
}
