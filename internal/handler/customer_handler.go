package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type CustomerHandler struct {
	uc *usecase.CustomerUsecase
}

func NewCustomerHandler(uc *usecase.CustomerUsecase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

type CustomerCreateRequest struct {
	CustomerCode  string  `json:"customer_id"`
	Name          string  `json:"name"`
	Gender        string  `json:"gender"`
	Age           int     `json:"age"`
	LoyaltyStatus string  `json:"loyalty_status"`
	TotalSpent    float64 `json:"total_spent"`
	ChurnStatus   string  `json:"churn_status"`
}

// 部分更新用。bodyに入っていた項目だけ更新する。
type CustomerUpdateRequest struct {
	CustomerCode  *string  `json:"customer_id"`
	Name          *string  `json:"name"`
	Gender        *string  `json:"gender"`
	Age           *int     `json:"age"`
	LoyaltyStatus *string  `json:"loyalty_status"`
	TotalSpent    *float64 `json:"total_spent"`
	ChurnStatus   *string  `json:"churn_status"`
}

func (h *CustomerHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/api/customers")
	g.Use(middleware.BasicAuth(cfg))

	g.GET("", h.list)
	g.GET("/:id", h.detail)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
}

func (h *CustomerHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CustomerHandler) detail(c echo.Context) error {
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

func (h *CustomerHandler) create(c echo.Context) error {
	var req CustomerCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Create(c.Request().Context(), usecase.CreateCustomerInput{
		CustomerCode:  req.CustomerCode,
		Name:          req.Name,
		Gender:        req.Gender,
		Age:           req.Age,
		LoyaltyStatus: req.LoyaltyStatus,
		TotalSpent:    req.TotalSpent,
		ChurnStatus:   req.ChurnStatus,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *CustomerHandler) update(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req CustomerUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	_, err := h.uc.Update(c.Request().Context(), id, usecase.UpdateCustomerInput{
		CustomerCode:  req.CustomerCode,
		Name:          req.Name,
		Gender:        req.Gender,
		Age:           req.Age,
		LoyaltyStatus: req.LoyaltyStatus,
		TotalSpent:    req.TotalSpent,
		ChurnStatus:   req.ChurnStatus,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}
