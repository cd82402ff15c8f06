package handler

import (
	"net/http"
	"strconv"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// パスの:idをint64で取り出す
func paramID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// /api/products のスタッフAPI
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

type ProductCreateRequest struct {
	ProductCode    string  `json:"product_id"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	Cost           float64 `json:"cost"`
	Seasonal       bool    `json:"seasonal"`
	Active         *bool   `json:"active"`
	IntroducedDate string  `json:"introduced_date"`
	Stock          *int64  `json:"stock"`
}

// 部分更新用。bodyに入っていた項目だけ更新する。
type ProductUpdateRequest struct {
	Name           *string  `json:"name"`
	Category       *string  `json:"category"`
	Description    *string  `json:"description"`
	Price          *float64 `json:"price"`
	Cost           *float64 `json:"cost"`
	Seasonal       *bool    `json:"seasonal"`
	Active         *bool    `json:"active"`
	IntroducedDate *string  `json:"introduced_date"`
	Stock          *int64   `json:"stock"`
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/api/products")
	g.Use(middleware.BasicAuth(cfg))

	g.GET("", h.list)
	g.GET("/:id", h.detail)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

func (h *ProductHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) detail(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) create(c echo.Context) error {
	var req ProductCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	//未指定の既定値: active=true, stock=50
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	var stock int64 = 50
	if req.Stock != nil {
		stock = *req.Stock
	}

	out, err := h.uc.Create(c.Request().Context(), usecase.CreateProductInput{
		ProductCode:    req.ProductCode,
		Name:           req.Name,
		Category:       req.Category,
		Description:    req.Description,
		Price:          req.Price,
		Cost:           req.Cost,
		Seasonal:       req.Seasonal,
		Active:         active,
		IntroducedDate: req.IntroducedDate,
		Stock:          stock,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *ProductHandler) update(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req ProductUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Update(c.Request().Context(), id, usecase.UpdateProductInput{
		Name:           req.Name,
		Category:       req.Category,
		Description:    req.Description,
		Price:          req.Price,
		Cost:           req.Cost,
		Seasonal:       req.Seasonal,
		Active:         req.Active,
		IntroducedDate: req.IntroducedDate,
		Stock:          req.Stock,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) remove(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, StatusResponse{Status: "deleted"})
}
