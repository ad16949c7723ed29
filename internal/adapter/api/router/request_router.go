package router

import (
	"sombateka/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

// SetupRequestRouter exposes the public submission endpoint. Only
// POST is routed; Echo answers other methods with 405.
func SetupRequestRouter(e *echo.Echo) {
	requestHandler := handler.GetRequestHandler()

	e.POST("/v1/requests", requestHandler.Submit)
}
