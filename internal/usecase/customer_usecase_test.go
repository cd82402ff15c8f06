package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCustomerUsecase_Create_NameRequired(t *testing.T) {
	customerRepo := new(CustomerRepoMock)
	uc := usecase.NewCustomerUsecase(customerRepo, &fixedIDGen{id: "gen-1"})

	_, err := uc.Create(context.Background(), usecase.CreateCustomerInput{Name: "   "})
	assertErrContains(t, err, "name is required")

	customerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCustomerUsecase_Create_GeneratesCode(t *testing.T) {
	customerRepo := new(CustomerRepoMock)

	var created model.Customer
	customerRepo.On("Create", mock.Anything, mock.AnythingOfType("model.Customer")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(model.Customer)
		}).
		Return(model.Customer{ID: 1, CustomerCode: "gen-1", Name: "Ann"}, nil)

	uc := usecase.NewCustomerUsecase(customerRepo, &fixedIDGen{id: "gen-1"})

	out, err := uc.Create(context.Background(), usecase.CreateCustomerInput{Name: "Ann", Age: 30})
	assert.NoError(t, err)
	assert.Equal(t, "gen-1", created.CustomerCode)
	assert.Equal(t, int64(1), out.ID)
}

func TestCustomerUsecase_Get_NotFound(t *testing.T) {
	customerRepo := new(CustomerRepoMock)
	customerRepo.On("FindByID", mock.Anything, int64(9)).Return(model.Customer{}, repo.ErrNotFound)

	uc := usecase.NewCustomerUsecase(customerRepo, &fixedIDGen{id: "gen-1"})

	_, err := uc.Get(context.Background(), 9)
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, he.Status)
}

func TestCustomerUsecase_Update_NothingToUpdate(t *testing.T) {
	customerRepo := new(CustomerRepoMock)
	uc := usecase.NewCustomerUsecase(customerRepo, &fixedIDGen{id: "gen-1"})

	_, err := uc.Update(context.Background(), 1, usecase.UpdateCustomerInput{})
	assertErrContains(t, err, "nothing to update")
}

func TestCustomerUsecase_Update_Sparse(t *testing.T) {
	customerRepo := new(CustomerRepoMock)

	current := model.Customer{
		ID: 1, CustomerCode: "C-1", Name: "Ann", Gender: "F", Age: 30,
		LoyaltyStatus: "Gold", TotalSpent: 120.5, ChurnStatus: "Active",
	}
	customerRepo.On("FindByID", mock.Anything, int64(1)).Return(current, nil)

	var updated model.Customer
	customerRepo.On("Update", mock.Anything, mock.AnythingOfType("model.Customer")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(model.Customer)
		}).
		Return(nil)

	uc := usecase.NewCustomerUsecase(customerRepo, &fixedIDGen{id: "gen-1"})

	age := 31
	_, err := uc.Update(context.Background(), 1, usecase.UpdateCustomerInput{
		Age:           &age,
		LoyaltyStatus: ptrS("Platinum"),
	})
	assert.NoError(t, err)

	assert.Equal(t, 31, updated.Age)
	assert.Equal(t, "Platinum", updated.LoyaltyStatus)
	//触っていない項目はそのまま
	assert.Equal(t, "Ann", updated.Name)
	assert.Equal(t, 120.5, updated.TotalSpent)
}
