package repository

import (
	"context"

	"app/internal/domain/model"

	"gorm.io/gorm"
)

type PromotionGormRepository struct {
	db *gorm.DB
}

func NewPromotionGormRepository(db *gorm.DB) *PromotionGormRepository {
	return &PromotionGormRepository{db: db}
}

func (r *PromotionGormRepository) List(ctx context.Context) ([]model.Promotion, error) {
	var items []model.Promotion
	if err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return []model.Promotion{}, err
	}
	return items, nil
}

func (r *PromotionGormRepository) Create(ctx context.Context, p model.Promotion) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return 0, err
	}
	return p.ID, nil
}
