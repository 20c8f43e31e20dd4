package handlers

import (
	"net/http/httptest"
	"testing"
	"time"

	"resto-analytics-service/internal/analytics"
)

func TestParseStatusFilter(t *testing.T) {
	cases := []struct {
		name    string
		input   []string
		wantErr bool
		want    []string
	}{
		{
			name:  "single status",
			input: []string{"DELIVERED"},
			want:  []string{"DELIVERED"},
		},
		{
			name:  "mixed case and spacing",
			input: []string{" delivered ", "Ready"},
			want:  []string{"DELIVERED", "READY"},
		},
		{
			name:    "unknown status",
			input:   []string{"DELIVERED", "SHIPPED"},
			wantErr: true,
		},
		{
			name:    "empty list",
			input:   nil,
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			filter, err := parseStatusFilter(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %v", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := filter.Statuses()
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("expected %v, got %v", tc.want, got)
				}
			}
		})
	}
}

func TestStatusFilterFromRequest(t *testing.T) {
	defaults := []string{"DELIVERED"}

	r := httptest.NewRequest("GET", "/api/merchant/1/analytics/revenue", nil)
	filter, err := statusFilterFromRequest(r, defaults)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !filter.Includes(analytics.StatusDelivered) || filter.Includes(analytics.StatusPending) {
		t.Fatalf("defaults must apply without a query override")
	}

	r = httptest.NewRequest("GET", "/api/merchant/1/analytics/revenue?status=PENDING,CONFIRMED", nil)
	filter, err = statusFilterFromRequest(r, defaults)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !filter.Includes(analytics.StatusPending) || filter.Includes(analytics.StatusDelivered) {
		t.Fatalf("query override must replace the defaults")
	}

	r = httptest.NewRequest("GET", "/api/merchant/1/analytics/revenue?status=bogus", nil)
	if _, err := statusFilterFromRequest(r, defaults); err == nil {
		t.Fatalf("unknown status in override must fail")
	}
}

func TestAnalyticsCache(t *testing.T) {
	key := analyticsCacheKey("test", 42, "DELIVERED", "bucket")

	if _, ok := getAnalyticsCache(key); ok {
		t.Fatalf("cache must miss before set")
	}

	setAnalyticsCache(key, "payload", time.Minute)
	value, ok := getAnalyticsCache(key)
	if !ok || value != "payload" {
		t.Fatalf("expected cached payload, got %v (%v)", value, ok)
	}

	setAnalyticsCache(key, "stale", -time.Second)
	if _, ok := getAnalyticsCache(key); ok {
		t.Fatalf("expired entries must not be served")
	}
}
