package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type PromotionHandler struct {
	uc *usecase.PromotionUsecase
}

func NewPromotionHandler(uc *usecase.PromotionUsecase) *PromotionHandler {
	return &PromotionHandler{uc: uc}
}

type PromotionCreateRequest struct {
	Name          string   `json:"name"`
	DiscountType  string   `json:"discount_type"`
	DiscountValue float64  `json:"discount_value"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	MinOrderValue *float64 `json:"min_order_value"`
	Priority      int      `json:"priority"`
}

func (h *PromotionHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/api/promotions")
	g.Use(middleware.BasicAuth(cfg))

	g.GET("", h.list)
	g.POST("", h.create)
}

func (h *PromotionHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PromotionHandler) create(c echo.Context) error {
	var req PromotionCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Create(c.Request().Context(), usecase.CreatePromotionInput{
		Name:          req.Name,
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		MinOrderValue: req.MinOrderValue,
		Priority:      req.Priority,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}
