package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type LoyaltyHandler struct {
	uc *usecase.LoyaltyUsecase
}

func NewLoyaltyHandler(uc *usecase.LoyaltyUsecase) *LoyaltyHandler {
	return &LoyaltyHandler{uc: uc}
}

type LoyaltySetRequest struct {
	Points int64 `json:"points"`
}

func (h *LoyaltyHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/api/loyalty")
	g.Use(middleware.BasicAuth(cfg))

	g.GET("/:customer_id", h.get)
	g.PUT("/:customer_id", h.set)
}

func (h *LoyaltyHandler) get(c echo.Context) error {
	customerID, ok := paramID(c, "customer_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid customer_id"})
	}

	out, err := h.uc.Get(c.Request().Context(), customerID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoyaltyHandler) set(c echo.Context) error {
	customerID, ok := paramID(c, "customer_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid customer_id"})
	}

	var req LoyaltySetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.Set(c.Request().Context(), customerID, req.Points); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}
