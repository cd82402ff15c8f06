package server

import (
	"app/internal/config"

	"github.com/labstack/echo/v4"
)

func New(cfg config.Config, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	RegisterRoutes(e, cfg, h)
	return e
}

func Start(addr string, cfg config.Config, h Handlers) error {
	return New(cfg, h).Start(addr)
}
