package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type PromotionRepoMock struct{ mock.Mock }

func (m *PromotionRepoMock) List(ctx context.Context) ([]model.Promotion, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Promotion)
	return items, args.Error(1)
}

func (m *PromotionRepoMock) Create(ctx context.Context, p model.Promotion) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

// discount_typeとpriorityは省略時にデフォルトが入る
func TestPromotionUsecase_Create_Defaults(t *testing.T) {
	promotionRepo := new(PromotionRepoMock)

	var created model.Promotion
	promotionRepo.On("Create", mock.Anything, mock.AnythingOfType("model.Promotion")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(model.Promotion)
		}).
		Return(int64(3), nil)

	uc := usecase.NewPromotionUsecase(promotionRepo)

	out, err := uc.Create(context.Background(), usecase.CreatePromotionInput{
		Name:          "Summer Sale",
		DiscountValue: 10,
		StartDate:     "2024-06-01",
		EndDate:       "2024-08-31",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), out.ID)
	assert.Equal(t, "percent", created.DiscountType)
	assert.Equal(t, 1, created.Priority)
}

func TestPromotionUsecase_Create_KeepsGivenValues(t *testing.T) {
	promotionRepo := new(PromotionRepoMock)

	var created model.Promotion
	promotionRepo.On("Create", mock.Anything, mock.AnythingOfType("model.Promotion")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(model.Promotion)
		}).
		Return(int64(4), nil)

	uc := usecase.NewPromotionUsecase(promotionRepo)

	minOrder := 20.0
	_, err := uc.Create(context.Background(), usecase.CreatePromotionInput{
		Name:          "Bulk Discount",
		DiscountType:  "fixed",
		DiscountValue: 5,
		StartDate:     "2024-06-01",
		EndDate:       "2024-08-31",
		MinOrderValue: &minOrder,
		Priority:      3,
	})
	assert.NoError(t, err)
	assert.Equal(t, "fixed", created.DiscountType)
	assert.Equal(t, 3, created.Priority)
	if assert.NotNil(t, created.MinOrderValue) {
		assert.Equal(t, 20.0, *created.MinOrderValue)
	}
}

func TestPromotionUsecase_List(t *testing.T) {
	promotionRepo := new(PromotionRepoMock)
	promotionRepo.On("List", mock.Anything).Return([]model.Promotion{
		{ID: 1, Name: "Summer Sale", DiscountType: "percent", DiscountValue: 10, Priority: 1},
	}, nil)

	uc := usecase.NewPromotionUsecase(promotionRepo)

	items, err := uc.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, items, 1)
}
