package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type PromotionUsecase struct {
	promotionRepo repo.PromotionRepository
}

func NewPromotionUsecase(promotionRepo repo.PromotionRepository) *PromotionUsecase {
	return &PromotionUsecase{promotionRepo: promotionRepo}
}

type CreatePromotionInput struct {
	Name          string
	DiscountType  string
	DiscountValue float64
	StartDate     string
	EndDate       string
	MinOrderValue *float64
	Priority      int
}

type CreatePromotionOutput struct {
	ID int64 `json:"id"`
}

func (u *PromotionUsecase) List(ctx context.Context) ([]model.Promotion, error) {
	items, err := u.promotionRepo.List(ctx)
	if err != nil {
		return []model.Promotion{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *PromotionUsecase) Create(ctx context.Context, in CreatePromotionInput) (CreatePromotionOutput, error) {
	discountType := strings.TrimSpace(in.DiscountType)
	if discountType == "" {
		discountType = "percent"
	}
	priority := in.Priority
	if priority == 0 {
		priority = 1
	}

	id, err := u.promotionRepo.Create(ctx, model.Promotion{
		Name:          in.Name,
		DiscountType:  discountType,
		DiscountValue: in.DiscountValue,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		MinOrderValue: in.MinOrderValue,
		Priority:      priority,
	})
	if err != nil {
		return CreatePromotionOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return CreatePromotionOutput{ID: id}, nil
}
