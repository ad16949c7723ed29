package router

import (
	"sombateka/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupHealthRouter(e)
	SetupAuthRouter(e, authMiddleware)
	SetupCatalogRouter(e)
	SetupSellerRouter(e, authMiddleware)
	SetupRequestRouter(e)
	SetupFileRouter(e, authMiddleware)
	SetupAdminRouter(e, authMiddleware, adminMiddleware)
}
