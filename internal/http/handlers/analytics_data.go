package handlers

import (
	"context"

	"resto-analytics-service/internal/analytics"
	"resto-analytics-service/internal/utils"

	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"
)

// snapshot is one merchant's full order/review history, already mapped into
// engine inputs. The engine itself never touches the database; everything it
// sees comes through here.
type snapshot struct {
	Orders    []analytics.Order
	Reviews   []analytics.Review
	Catalogue *analytics.CatalogueIndex
}

func (h *Handler) loadSnapshot(ctx context.Context, merchantID int64) (snapshot, error) {
	orders, err := h.loadOrders(ctx, merchantID)
	if err != nil {
		return snapshot{}, err
	}
	reviews, err := h.loadReviews(ctx, merchantID)
	if err != nil {
		return snapshot{}, err
	}
	catalogue, err := h.loadCatalogue(ctx, merchantID)
	if err != nil {
		return snapshot{}, err
	}
	return snapshot{Orders: orders, Reviews: reviews, Catalogue: catalogue}, nil
}

func (h *Handler) loadOrders(ctx context.Context, merchantID int64) ([]analytics.Order, error) {
	rows, err := h.DB.Query(ctx, `
		select o.id, o.status, o.total_amount, o.placed_at, c.phone
		from orders o
		left join customers c on c.id = o.customer_id
		where o.merchant_id = $1
	`, merchantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]analytics.Order, 0)
	index := make(map[int64]int)
	for rows.Next() {
		var (
			id       int64
			status   string
			total    pgtype.Numeric
			placedAt pgtype.Timestamptz
			phone    pgtype.Text
		)
		if err := rows.Scan(&id, &status, &total, &placedAt, &phone); err != nil {
			continue
		}
		if !placedAt.Valid || placedAt.Time.IsZero() {
			// The engine drops these wholesale; logging belongs here, not there.
			h.Logger.Warn("order without usable timestamp excluded from analytics", zap.Int64("orderId", id))
			continue
		}
		index[id] = len(orders)
		orders = append(orders, analytics.Order{
			ID:          int64ToString(id),
			Timestamp:   placedAt.Time,
			Status:      analytics.OrderStatus(status),
			TotalAmount: utils.NumericToFloat64(total),
			CustomerKey: textOrDefault(phone, ""),
		})
	}

	if err := h.attachOrderItems(ctx, merchantID, orders, index); err != nil {
		return nil, err
	}
	return orders, nil
}

func (h *Handler) attachOrderItems(ctx context.Context, merchantID int64, orders []analytics.Order, index map[int64]int) error {
	rows, err := h.DB.Query(ctx, `
		select oi.order_id, oi.menu_id, oi.menu_name, oi.unit_price, oi.quantity, mc.name
		from order_items oi
		join orders o on o.id = oi.order_id
		left join menus m on m.id = oi.menu_id
		left join menu_categories mc on mc.id = m.category_id
		where o.merchant_id = $1
	`, merchantID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID   int64
			menuID    pgtype.Int8
			menuName  string
			unitPrice pgtype.Numeric
			quantity  int32
			category  pgtype.Text
		)
		if err := rows.Scan(&orderID, &menuID, &menuName, &unitPrice, &quantity, &category); err != nil {
			continue
		}
		pos, ok := index[orderID]
		if !ok {
			continue
		}
		item := analytics.OrderItem{
			Name:      menuName,
			Category:  textOrDefault(category, ""),
			UnitPrice: utils.NumericToFloat64(unitPrice),
			Quantity:  int(quantity),
		}
		if menuID.Valid {
			item.ProductID = int64ToString(menuID.Int64)
		}
		orders[pos].Items = append(orders[pos].Items, item)
	}
	return nil
}

func (h *Handler) loadReviews(ctx context.Context, merchantID int64) ([]analytics.Review, error) {
	rows, err := h.DB.Query(ctx, `
		select f.id, f.order_id, f.rating, f.comment, f.created_at, c.phone
		from order_feedback f
		left join orders o on o.id = f.order_id
		left join customers c on c.id = o.customer_id
		where f.merchant_id = $1
	`, merchantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]analytics.Review, 0)
	for rows.Next() {
		var (
			id        int64
			orderID   pgtype.Int8
			rating    int32
			comment   pgtype.Text
			createdAt pgtype.Timestamptz
			phone     pgtype.Text
		)
		if err := rows.Scan(&id, &orderID, &rating, &comment, &createdAt, &phone); err != nil {
			continue
		}
		if !createdAt.Valid || createdAt.Time.IsZero() {
			h.Logger.Warn("review without usable timestamp excluded from analytics", zap.Int64("reviewId", id))
			continue
		}
		review := analytics.Review{
			ID:          int64ToString(id),
			Rating:      int(rating),
			Comment:     textOrDefault(comment, ""),
			Timestamp:   createdAt.Time,
			CustomerKey: textOrDefault(phone, ""),
		}
		if orderID.Valid {
			review.OrderID = int64ToString(orderID.Int64)
		}
		reviews = append(reviews, review)
	}
	return reviews, nil
}

func (h *Handler) loadCatalogue(ctx context.Context, merchantID int64) (*analytics.CatalogueIndex, error) {
	rows, err := h.DB.Query(ctx, `
		select m.id, m.name, mc.name
		from menus m
		left join menu_categories mc on mc.id = m.category_id
		where m.merchant_id = $1
	`, merchantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]analytics.CatalogueProduct, 0)
	for rows.Next() {
		var (
			id       int64
			name     string
			category pgtype.Text
		)
		if err := rows.Scan(&id, &name, &category); err != nil {
			continue
		}
		products = append(products, analytics.CatalogueProduct{
			ProductID: int64ToString(id),
			Name:      name,
			Category:  textOrDefault(category, ""),
		})
	}
	return analytics.NewCatalogueIndex(products), nil
}
