package router

import (
	"sombateka/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupHealthRouter(e *echo.Echo) {
	e.GET("/health", handler.GetHealthHandler().Check)
}
