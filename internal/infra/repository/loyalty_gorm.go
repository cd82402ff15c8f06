package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoyaltyGormRepository struct {
	db *gorm.DB
}

func NewLoyaltyGormRepository(db *gorm.DB) *LoyaltyGormRepository {
	return &LoyaltyGormRepository{db: db}
}

func (r *LoyaltyGormRepository) FindByCustomerID(ctx context.Context, customerID int64) (model.Loyalty, error) {
	var l model.Loyalty
	err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Loyalty{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Loyalty{}, err
	}
	return l, nil
}

// ON CONFLICT (customer_id) DO UPDATE SET points = excluded.points
func (r *LoyaltyGormRepository) Upsert(ctx context.Context, customerID int64, points int64) error {
	l := model.Loyalty{CustomerID: customerID, Points: points}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "customer_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"points"}),
		}).
		Create(&l).Error
}
