package router

import (
	"sombateka/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupCatalogRouter(e *echo.Echo) {
	catalogHandler := handler.GetCatalogHandler()
	contactHandler := handler.GetContactHandler()

	products := e.Group("/v1/products")
	products.GET("", catalogHandler.ListProducts)
	products.GET("/search", catalogHandler.SearchProducts)
	products.GET("/:id", catalogHandler.GetProduct)

	e.GET("/v1/contact", contactHandler.GetContactInfo)
}
