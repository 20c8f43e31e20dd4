// Package analytics turns a snapshot of order and review records into the
// derived metrics behind the merchant dashboards. Every function here is pure:
// the caller supplies the records and the reference instant, and identical
// inputs always produce identical output.
package analytics

import (
	"sort"
	"strings"
	"time"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusConfirmed OrderStatus = "CONFIRMED"
	StatusPreparing OrderStatus = "PREPARING"
	StatusReady     OrderStatus = "READY"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

type Order struct {
	ID          string      `json:"id"`
	Timestamp   time.Time   `json:"timestamp"`
	Status      OrderStatus `json:"status"`
	TotalAmount float64     `json:"totalAmount"`
	Items       []OrderItem `json:"items"`
	CustomerKey string      `json:"customerKey,omitempty"`
}

type OrderItem struct {
	ProductID string  `json:"productId,omitempty"`
	Name      string  `json:"name"`
	Category  string  `json:"category,omitempty"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

type Review struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"orderId,omitempty"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	CustomerKey string    `json:"customerKey,omitempty"`
}

// StatusFilter selects which order statuses an analyzer considers. A nil or
// empty filter matches nothing; callers always state what they want counted.
type StatusFilter map[OrderStatus]bool

func NewStatusFilter(statuses ...OrderStatus) StatusFilter {
	filter := make(StatusFilter, len(statuses))
	for _, status := range statuses {
		filter[status] = true
	}
	return filter
}

func (f StatusFilter) Includes(status OrderStatus) bool {
	return f[status]
}

// Statuses returns the filter's members sorted for stable display.
func (f StatusFilter) Statuses() []string {
	out := make([]string, 0, len(f))
	for status, ok := range f {
		if ok {
			out = append(out, string(status))
		}
	}
	sort.Strings(out)
	return out
}

func DeliveredStatuses() StatusFilter {
	return NewStatusFilter(StatusDelivered)
}

// FulfilmentStatuses covers orders that were at least accepted by the kitchen.
func FulfilmentStatuses() StatusFilter {
	return NewStatusFilter(StatusDelivered, StatusReady, StatusPreparing, StatusConfirmed)
}

func AllStatuses() StatusFilter {
	return NewStatusFilter(StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled)
}

type CatalogueProduct struct {
	ProductID string
	Name      string
	Category  string
}

// CatalogueIndex resolves a line item to its menu category when the item does
// not carry one inline.
type CatalogueIndex struct {
	byProductID map[string]string
	byName      map[string]string
}

func NewCatalogueIndex(products []CatalogueProduct) *CatalogueIndex {
	idx := &CatalogueIndex{
		byProductID: make(map[string]string),
		byName:      make(map[string]string),
	}
	for _, product := range products {
		category := strings.TrimSpace(product.Category)
		if category == "" {
			continue
		}
		if product.ProductID != "" {
			idx.byProductID[product.ProductID] = category
		}
		if name := normalizeName(product.Name); name != "" {
			idx.byName[name] = category
		}
	}
	return idx
}

// ResolveCategory prefers the item's inline category, then the catalogue by
// product id, then by name. A false result means the item's revenue is
// unattributed and stays out of every category bucket.
func ResolveCategory(item OrderItem, catalogue *CatalogueIndex) (string, bool) {
	if category := strings.TrimSpace(item.Category); category != "" {
		return category, true
	}
	if catalogue == nil {
		return "", false
	}
	if item.ProductID != "" {
		if category, ok := catalogue.byProductID[item.ProductID]; ok {
			return category, true
		}
	}
	if name := normalizeName(item.Name); name != "" {
		if category, ok := catalogue.byName[name]; ok {
			return category, true
		}
	}
	return "", false
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
