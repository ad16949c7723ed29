package router

import (
	"sombateka/internal/adapter/api/handler"
	"sombateka/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupSellerRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	sellerHandler := handler.GetSellerHandler()
	productHandler := handler.GetProductHandler()
	boostHandler := handler.GetBoostHandler()

	seller := e.Group("/v1/seller")
	seller.Use(authMiddleware.Authenticate)
	seller.GET("/profile", sellerHandler.GetProfile)
	seller.PUT("/profile", sellerHandler.UpdateProfile)
	seller.POST("/activation/confirm", sellerHandler.ConfirmActivationPayment)

	myProducts := e.Group("/v1/my-products")
	myProducts.Use(authMiddleware.Authenticate)
	myProducts.GET("", productHandler.ListMyProducts)
	myProducts.POST("", productHandler.SubmitProduct)
	myProducts.DELETE("/:id", productHandler.DeleteMyProduct)
	myProducts.POST("/:id/boost", boostHandler.SelectOption)
	myProducts.POST("/:id/boost/confirm", boostHandler.ConfirmPayment)

	e.GET("/v1/boost-options", boostHandler.ListOptions)
}
