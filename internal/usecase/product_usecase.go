package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// UUID 等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

type ProductUsecase struct {
	productRepo repo.ProductRepository
	tx          repo.TransactionManager
	idGen       IDGenerator
}

// DI
func NewProductUsecase(
	productRepo repo.ProductRepository,
	tx repo.TransactionManager,
	idGen IDGenerator,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		tx:          tx,
		idGen:       idGen,
	}
}

type CreateProductInput struct {
	ProductCode    string
	Name           string
	Category       string
	Description    string
	Price          float64
	Cost           float64
	Seasonal       bool
	Active         bool
	IntroducedDate string
	Stock          int64
}

// 部分更新。nilの項目は触らない。
type UpdateProductInput struct {
	Name           *string
	Category       *string
	Description    *string
	Price          *float64
	Cost           *float64
	Seasonal       *bool
	Active         *bool
	IntroducedDate *string
	Stock          *int64
}

func (in UpdateProductInput) empty() bool {
	return in.Name == nil && in.Category == nil && in.Description == nil &&
		in.Price == nil && in.Cost == nil && in.Seasonal == nil &&
		in.Active == nil && in.IntroducedDate == nil && in.Stock == nil
}

func (u *ProductUsecase) List(ctx context.Context) ([]model.Product, error) {
	items, err := u.productRepo.List(ctx)
	if err != nil {
		return []model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *ProductUsecase) Get(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *ProductUsecase) Create(ctx context.Context, in CreateProductInput) (model.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || len(name) > 100 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "ProductName is required and must be <= 100 chars")
	}
	if strings.TrimSpace(in.Category) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "Category is required")
	}
	if in.Price <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "Price must be positive")
	}
	if in.Cost <= 0 || in.Cost >= in.Price {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "Cost must be positive and less than Price")
	}
	if strings.TrimSpace(in.IntroducedDate) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "IntroducedDate is required")
	}
	if in.Stock < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}

	code := strings.TrimSpace(in.ProductCode)
	if code == "" {
		code = u.idGen.NewID()
	}

	p, err := u.productRepo.Create(ctx, model.Product{
		ProductCode:    code,
		Name:           name,
		Category:       strings.TrimSpace(in.Category),
		Description:    strings.TrimSpace(in.Description),
		Price:          in.Price,
		Cost:           in.Cost,
		Seasonal:       in.Seasonal,
		Active:         in.Active,
		IntroducedDate: strings.TrimSpace(in.IntroducedDate),
		Stock:          in.Stock,
	})
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

// 部分更新。在庫変更と調整履歴が揃って残るよう全体を1トランザクションで行う。
func (u *ProductUsecase) Update(ctx context.Context, productID int64, in UpdateProductInput) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if in.empty() {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "nothing to update")
	}
	if in.Stock != nil && *in.Stock < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}

	var out model.Product

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		p, err := r.Products().FindByID(ctx, productID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		oldStock := p.Stock

		if in.Name != nil {
			p.Name = strings.TrimSpace(*in.Name)
		}
		if in.Category != nil {
			p.Category = strings.TrimSpace(*in.Category)
		}
		if in.Description != nil {
			p.Description = strings.TrimSpace(*in.Description)
		}
		if in.Price != nil {
			p.Price = *in.Price
		}
		if in.Cost != nil {
			p.Cost = *in.Cost
		}
		if in.Seasonal != nil {
			p.Seasonal = *in.Seasonal
		}
		if in.Active != nil {
			p.Active = *in.Active
		}
		if in.IntroducedDate != nil {
			p.IntroducedDate = strings.TrimSpace(*in.IntroducedDate)
		}

		//stockカラムはSetStockだけが書く
		p.Stock = oldStock
		if err := r.Products().Update(ctx, p); err != nil {
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, "not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//手動の在庫変更は履歴とセットで残す
		if in.Stock != nil && *in.Stock != oldStock {
			if err := r.Inventory().SetStock(ctx, productID, *in.Stock); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if err := r.Inventory().CreateAdjustment(ctx, model.InventoryAdjustment{
				ProductID: productID,
				OldStock:  oldStock,
				NewStock:  *in.Stock,
				Reason:    "manual update",
				CreatedAt: time.Now(),
			}); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			p.Stock = *in.Stock
		}

		out = p
		return nil
	})

	if err != nil {
		return model.Product{}, err
	}
	return out, nil
}

func (u *ProductUsecase) Delete(ctx context.Context, productID int64) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.productRepo.Delete(ctx, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
