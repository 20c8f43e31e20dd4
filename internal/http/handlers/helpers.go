package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"resto-analytics-service/internal/analytics"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"
)

func zapError(err error) zap.Field {
	return zap.Error(err)
}

func readPathInt64(r *http.Request, key string) (int64, error) {
	value := chi.URLParam(r, key)
	if value == "" {
		return 0, errMissingParam
	}
	var out int64
	_, err := fmt.Sscan(value, &out)
	return out, err
}

var errMissingParam = errors.New("missing param")

func textOrDefault(v pgtype.Text, fallback string) string {
	if v.Valid && v.String != "" {
		return v.String
	}
	return fallback
}

func int64ToString(value int64) string {
	return fmt.Sprint(value)
}

var knownStatuses = map[string]analytics.OrderStatus{
	"PENDING":   analytics.StatusPending,
	"CONFIRMED": analytics.StatusConfirmed,
	"PREPARING": analytics.StatusPreparing,
	"READY":     analytics.StatusReady,
	"DELIVERED": analytics.StatusDelivered,
	"CANCELLED": analytics.StatusCancelled,
}

// parseStatusFilter builds the engine filter from a comma-separated status
// list, rejecting anything outside the known set.
func parseStatusFilter(values []string) (analytics.StatusFilter, error) {
	statuses := make([]analytics.OrderStatus, 0, len(values))
	for _, value := range values {
		status, ok := knownStatuses[strings.ToUpper(strings.TrimSpace(value))]
		if !ok {
			return nil, fmt.Errorf("unknown order status %q", value)
		}
		statuses = append(statuses, status)
	}
	if len(statuses) == 0 {
		return nil, errors.New("status filter must not be empty")
	}
	return analytics.NewStatusFilter(statuses...), nil
}

// statusFilterFromRequest reads an explicit ?status= override, falling back
// to the endpoint's configured default.
func statusFilterFromRequest(r *http.Request, defaults []string) (analytics.StatusFilter, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("status"))
	if raw == "" {
		return parseStatusFilter(defaults)
	}
	return parseStatusFilter(strings.Split(raw, ","))
}

func (h *Handler) segmentThresholds() analytics.SegmentThresholds {
	return analytics.SegmentThresholds{
		VIPMinOrders:     h.Config.VIPMinOrders,
		RegularMinOrders: h.Config.RegularMinOrders,
	}
}
