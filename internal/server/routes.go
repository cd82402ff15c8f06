package server

import (
	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

// Handlersはルート登録に必要なhandler一式
type Handlers struct {
	Auth       *handler.AuthHandler
	Products   *handler.ProductHandler
	Customers  *handler.CustomerHandler
	Orders     *handler.OrderHandler
	Promotions *handler.PromotionHandler
	Loyalty    *handler.LoyaltyHandler
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	h.Auth.RegisterRoutes(e, cfg)
	h.Products.RegisterRoutes(e, cfg)
	h.Customers.RegisterRoutes(e, cfg)
	h.Orders.RegisterRoutes(e, cfg)
	h.Promotions.RegisterRoutes(e, cfg)
	h.Loyalty.RegisterRoutes(e, cfg)
}
