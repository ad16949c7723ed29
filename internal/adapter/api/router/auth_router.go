package router

import (
	"sombateka/internal/adapter/api/handler"
	"sombateka/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/v1/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.POST("/reset-password", authHandler.ResetPassword)

	authenticated := e.Group("/v1/auth")
	authenticated.Use(authMiddleware.Authenticate)
	authenticated.GET("/me", authHandler.Me)
	authenticated.PUT("/password", authHandler.UpdatePassword)
}
