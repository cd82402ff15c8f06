package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

// 顧客が消えていてもヘッダは返す（LEFT JOIN、customer_nameは空になる）
func (r *OrderGormRepository) FindWithCustomer(ctx context.Context, orderID int64) (repo.OrderWithCustomer, error) {
	var row repo.OrderWithCustomer
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Select("orders.id, orders.order_date, orders.total_amount, orders.status, customers.name AS customer_name").
		Joins("LEFT JOIN customers ON customers.id = orders.customer_id").
		Where("orders.id = ?", orderID).
		Scan(&row)

	if res.Error != nil {
		return repo.OrderWithCustomer{}, res.Error
	}
	if res.RowsAffected == 0 {
		return repo.OrderWithCustomer{}, repo.ErrNotFound
	}
	return row, nil
}

func (r *OrderGormRepository) ListWithCustomer(ctx context.Context) ([]repo.OrderWithCustomer, error) {
	var rows []repo.OrderWithCustomer
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select("orders.id, orders.order_date, orders.total_amount, orders.status, customers.name AS customer_name").
		Joins("LEFT JOIN customers ON customers.id = orders.customer_id").
		Order("orders.id asc").
		Scan(&rows).Error
	if err != nil {
		return []repo.OrderWithCustomer{}, err
	}
	return rows, nil
}

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&order).Error; err != nil {
		return 0, err
	}
	return order.ID, nil
}

func (r *OrderGormRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Update("status", status)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
