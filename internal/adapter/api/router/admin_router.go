package router

import (
	"sombateka/internal/adapter/api/handler"
	"sombateka/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("/stats", adminHandler.GetDashboardStats)

	admin.GET("/requests", adminHandler.ListRequests)
	admin.POST("/requests/:id/approve", adminHandler.ApproveRequest)
	admin.DELETE("/requests/:id", adminHandler.RejectRequest)

	admin.GET("/products", adminHandler.ListProducts)
	admin.DELETE("/products/:id", adminHandler.DeleteProduct)
	admin.POST("/products/:id/confirm-boost", adminHandler.ConfirmBoostPayment)

	admin.GET("/sellers", adminHandler.ListSellers)
	admin.DELETE("/sellers/:id", adminHandler.DeleteSeller)
	admin.POST("/sellers/:id/verify-payment", adminHandler.VerifySellerPayment)
}
