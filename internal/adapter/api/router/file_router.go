package router

import (
	"sombateka/internal/adapter/api/handler"
	"sombateka/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupFileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	fileHandler := handler.GetFileHandler()

	files := e.Group("/v1/files")
	files.Use(authMiddleware.Authenticate)
	files.POST("", fileHandler.UploadImage)
}
