package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.HTTPAddr != ":8087" {
		t.Fatalf("unexpected default addr %q", cfg.HTTPAddr)
	}
	if cfg.AnalyticsCacheTTL != 5*time.Minute {
		t.Fatalf("unexpected default cache ttl %v", cfg.AnalyticsCacheTTL)
	}
	if cfg.VIPMinOrders != 10 || cfg.RegularMinOrders != 3 {
		t.Fatalf("unexpected segment thresholds %d/%d", cfg.VIPMinOrders, cfg.RegularMinOrders)
	}

	if len(cfg.RevenueStatuses) != 1 || cfg.RevenueStatuses[0] != "DELIVERED" {
		t.Fatalf("unexpected revenue defaults %v", cfg.RevenueStatuses)
	}
	if len(cfg.CustomerStatuses) != 4 {
		t.Fatalf("unexpected customer defaults %v", cfg.CustomerStatuses)
	}
	if len(cfg.OrderStatuses) != 6 {
		t.Fatalf("unexpected order defaults %v", cfg.OrderStatuses)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ANALYTICS_CACHE_TTL", "30s")
	t.Setenv("ANALYTICS_REVENUE_STATUSES", "DELIVERED, READY")
	t.Setenv("ANALYTICS_VIP_MIN_ORDERS", "20")
	t.Setenv("ANALYTICS_REGULAR_MIN_ORDERS", "5")

	cfg := Load()

	if cfg.AnalyticsCacheTTL != 30*time.Second {
		t.Fatalf("ttl override ignored: %v", cfg.AnalyticsCacheTTL)
	}
	if len(cfg.RevenueStatuses) != 2 || cfg.RevenueStatuses[1] != "READY" {
		t.Fatalf("status override ignored: %v", cfg.RevenueStatuses)
	}
	if cfg.VIPMinOrders != 20 || cfg.RegularMinOrders != 5 {
		t.Fatalf("threshold overrides ignored: %d/%d", cfg.VIPMinOrders, cfg.RegularMinOrders)
	}
}

func TestLoadResetsInvertedThresholds(t *testing.T) {
	t.Setenv("ANALYTICS_VIP_MIN_ORDERS", "2")
	t.Setenv("ANALYTICS_REGULAR_MIN_ORDERS", "8")

	cfg := Load()
	if cfg.VIPMinOrders != 10 || cfg.RegularMinOrders != 3 {
		t.Fatalf("inverted thresholds must reset to defaults, got %d/%d", cfg.VIPMinOrders, cfg.RegularMinOrders)
	}
}
