package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type LoyaltyUsecase struct {
	loyaltyRepo repo.LoyaltyRepository
}

func NewLoyaltyUsecase(loyaltyRepo repo.LoyaltyRepository) *LoyaltyUsecase {
	return &LoyaltyUsecase{loyaltyRepo: loyaltyRepo}
}

// 行が無い顧客は0ポイント扱い（404にはしない）
func (u *LoyaltyUsecase) Get(ctx context.Context, customerID int64) (model.Loyalty, error) {
	if customerID <= 0 {
		return model.Loyalty{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	l, err := u.loyaltyRepo.FindByCustomerID(ctx, customerID)
	if err == repo.ErrNotFound {
		return model.Loyalty{CustomerID: customerID, Points: 0}, nil
	}
	if err != nil {
		return model.Loyalty{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return l, nil
}

// ポイント残高を作成または置き換える
func (u *LoyaltyUsecase) Set(ctx context.Context, customerID int64, points int64) error {
	if customerID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if points < 0 {
		return NewHTTPError(http.StatusBadRequest, "points must be >= 0")
	}

	if err := u.loyaltyRepo.Upsert(ctx, customerID, points); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
