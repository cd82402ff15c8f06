package repository

import (
	"context"

	"app/internal/domain/model"
)

type PromotionRepository interface {
	List(ctx context.Context) ([]model.Promotion, error)
	Create(ctx context.Context, p model.Promotion) (int64, error)
}
