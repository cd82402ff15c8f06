package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CustomerUsecase struct {
	customerRepo repo.CustomerRepository
	idGen        IDGenerator
}

func NewCustomerUsecase(customerRepo repo.CustomerRepository, idGen IDGenerator) *CustomerUsecase {
	return &CustomerUsecase{customerRepo: customerRepo, idGen: idGen}
}

type CreateCustomerInput struct {
	CustomerCode  string
	Name          string
	Gender        string
	Age           int
	LoyaltyStatus string
	TotalSpent    float64
	ChurnStatus   string
}

// 部分更新。nilの項目は触らない。
type UpdateCustomerInput struct {
	CustomerCode  *string
	Name          *string
	Gender        *string
	Age           *int
	LoyaltyStatus *string
	TotalSpent    *float64
	ChurnStatus   *string
}

func (in UpdateCustomerInput) empty() bool {
	return in.CustomerCode == nil && in.Name == nil && in.Gender == nil &&
		in.Age == nil && in.LoyaltyStatus == nil && in.TotalSpent == nil &&
		in.ChurnStatus == nil
}

func (u *CustomerUsecase) List(ctx context.Context) ([]model.Customer, error) {
	items, err := u.customerRepo.List(ctx)
	if err != nil {
		return []model.Customer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *CustomerUsecase) Get(ctx context.Context, customerID int64) (model.Customer, error) {
	if customerID <= 0 {
		return model.Customer{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	c, err := u.customerRepo.FindByID(ctx, customerID)
	if err == repo.ErrNotFound {
		return model.Customer{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Customer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *CustomerUsecase) Create(ctx context.Context, in CreateCustomerInput) (model.Customer, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Customer{}, NewHTTPError(http.StatusBadRequest, "name is required")
	}

	code := strings.TrimSpace(in.CustomerCode)
	if code == "" {
		code = u.idGen.NewID()
	}

	c, err := u.customerRepo.Create(ctx, model.Customer{
		CustomerCode:  code,
		Name:          name,
		Gender:        in.Gender,
		Age:           in.Age,
		LoyaltyStatus: in.LoyaltyStatus,
		TotalSpent:    in.TotalSpent,
		ChurnStatus:   in.ChurnStatus,
	})
	if err != nil {
		return model.Customer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *CustomerUsecase) Update(ctx context.Context, customerID int64, in UpdateCustomerInput) (model.Customer, error) {
	if customerID <= 0 {
		return model.Customer{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if in.empty() {
		return model.Customer{}, NewHTTPError(http.StatusBadRequest, "nothing to update")
	}

	c, err := u.customerRepo.FindByID(ctx, customerID)
	if err == repo.ErrNotFound {
		return model.Customer{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Customer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if in.CustomerCode != nil {
		c.CustomerCode = strings.TrimSpace(*in.CustomerCode)
	}
	if in.Name != nil {
		c.Name = strings.TrimSpace(*in.Name)
	}
	if in.Gender != nil {
		c.Gender = *in.Gender
	}
	if in.Age != nil {
		c.Age = *in.Age
	}
	if in.LoyaltyStatus != nil {
		c.LoyaltyStatus = *in.LoyaltyStatus
	}
	if in.TotalSpent != nil {
		c.TotalSpent = *in.TotalSpent
	}
	if in.ChurnStatus != nil {
		c.ChurnStatus = *in.ChurnStatus
	}

	if err := u.customerRepo.Update(ctx, c); err != nil {
		if err == repo.ErrNotFound {
			return model.Customer{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.Customer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}
