package repository

import (
	"context"

	"app/internal/domain/model"
)

type LoyaltyRepository interface {
	FindByCustomerID(ctx context.Context, customerID int64) (model.Loyalty, error)

	// customer_idごとに1行。あれば置き換え、なければ作成。
	Upsert(ctx context.Context, customerID int64, points int64) error
}
