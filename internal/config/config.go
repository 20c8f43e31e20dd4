package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Env                string
	HTTPAddr           string
	DatabaseURL        string
	CorsAllowedOrigins []string

	AnalyticsCacheTTL time.Duration

	// Segmentation thresholds for the customer analyzer.
	VIPMinOrders     int
	RegularMinOrders int

	// Default status filters per dashboard. Each endpoint accepts an
	// explicit ?status= override; these only decide what an unqualified
	// request means.
	RevenueStatuses  []string
	CustomerStatuses []string
	OrderStatuses    []string

	ObjectStoreEndpoint        string
	ObjectStoreRegion          string
	ObjectStoreAccessKeyID     string
	ObjectStoreSecretAccessKey string
	ObjectStoreBucket          string
	ObjectStorePublicBaseURL   string
}

func Load() Config {
	cfg := Config{
		Env:                getEnv("APP_ENV", "development"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8087"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		CorsAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "")),

		AnalyticsCacheTTL: getEnvDuration("ANALYTICS_CACHE_TTL", 5*time.Minute),

		VIPMinOrders:     getEnvInt("ANALYTICS_VIP_MIN_ORDERS", 10),
		RegularMinOrders: getEnvInt("ANALYTICS_REGULAR_MIN_ORDERS", 3),

		RevenueStatuses:  splitCSV(getEnv("ANALYTICS_REVENUE_STATUSES", "DELIVERED")),
		CustomerStatuses: splitCSV(getEnv("ANALYTICS_CUSTOMER_STATUSES", "DELIVERED,READY,PREPARING,CONFIRMED")),
		OrderStatuses:    splitCSV(getEnv("ANALYTICS_ORDER_STATUSES", "PENDING,CONFIRMED,PREPARING,READY,DELIVERED,CANCELLED")),

		ObjectStoreEndpoint:        getEnv("OBJECT_STORE_ENDPOINT", ""),
		ObjectStoreRegion:          getEnv("OBJECT_STORE_REGION", "auto"),
		ObjectStoreAccessKeyID:     getEnv("OBJECT_STORE_ACCESS_KEY_ID", ""),
		ObjectStoreSecretAccessKey: getEnv("OBJECT_STORE_SECRET_ACCESS_KEY", ""),
		ObjectStoreBucket:          getEnv("OBJECT_STORE_BUCKET", ""),
		ObjectStorePublicBaseURL:   getEnv("OBJECT_STORE_PUBLIC_BASE_URL", ""),
	}

	if cfg.VIPMinOrders <= cfg.RegularMinOrders {
		cfg.VIPMinOrders = 10
		cfg.RegularMinOrders = 3
	}

	return cfg
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}

func splitCSV(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
