package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
)

// 一覧・詳細で顧客名も一緒に返す（現在の顧客名をJOINで引く）
type OrderWithCustomer struct {
	ID           int64
	OrderDate    time.Time
	TotalAmount  float64
	Status       model.OrderStatus
	CustomerName string
}

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	FindWithCustomer(ctx context.Context, orderID int64) (OrderWithCustomer, error)
	ListWithCustomer(ctx context.Context) ([]OrderWithCustomer, error)
	Create(ctx context.Context, order model.Order) (int64, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
}
