package repository

import (
	"context"

	"app/internal/domain/model"
)

// 詳細表示用。product_nameは現在の商品名（スナップショットではない）。
type OrderItemWithProduct struct {
	ID          int64
	ProductID   int64
	ProductName string
	Quantity    int64
	UnitPrice   float64
}

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	ListWithProduct(ctx context.Context, orderID int64) ([]OrderItemWithProduct, error)
}
