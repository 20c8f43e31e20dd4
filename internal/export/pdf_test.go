package export

import (
	"bytes"
	"testing"
	"time"

	"resto-analytics-service/internal/analytics"
)

func TestRenderPDF(t *testing.T) {
	now := time.Date(2025, time.March, 20, 18, 0, 0, 0, time.UTC)
	ts := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	orders := []analytics.Order{
		{
			ID:          "1",
			Timestamp:   ts,
			Status:      analytics.StatusDelivered,
			TotalAmount: 30,
			CustomerKey: "+628111",
			Items: []analytics.OrderItem{
				{ProductID: "p-1", Name: "Margherita", Category: "Pizza", UnitPrice: 15, Quantity: 2},
			},
		},
	}
	reviews := []analytics.Review{
		{ID: "r1", Rating: 5, Timestamp: ts},
	}

	filter := analytics.DeliveredStatuses()
	doc := analytics.AssembleExport(
		analytics.AnalyzeRevenue(orders, now, nil, filter),
		analytics.AnalyzeOrders(orders, now, filter),
		analytics.AnalyzeCustomers(analytics.BuildCustomerAggregates(orders, filter), orders, now, filter, analytics.DefaultSegmentThresholds()),
		analytics.AnalyzeSatisfaction(reviews, now),
	)

	pdf, err := RenderPDF(doc, 42, now)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a pdf document")
	}
}

func TestRenderPDFEmptyDocument(t *testing.T) {
	now := time.Date(2025, time.March, 20, 18, 0, 0, 0, time.UTC)
	doc := analytics.AssembleExport(
		analytics.AnalyzeRevenue(nil, now, nil, analytics.DeliveredStatuses()),
		analytics.AnalyzeOrders(nil, now, analytics.AllStatuses()),
		analytics.AnalyzeCustomers(nil, nil, now, analytics.DeliveredStatuses(), analytics.DefaultSegmentThresholds()),
		analytics.AnalyzeSatisfaction(nil, now),
	)

	pdf, err := RenderPDF(doc, 1, now)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("expected non-empty output")
	}
}
