package handler

import (
	"sombateka/internal/usecase"
)

var (
	authHandler    *AuthHandler
	sellerHandler  *SellerHandler
	catalogHandler *CatalogHandler
	productHandler *ProductHandler
	requestHandler *RequestHandler
	boostHandler   *BoostHandler
	adminHandler   *AdminHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	sellerUseCase *usecase.SellerUseCase,
	catalogUseCase *usecase.CatalogUseCase,
	productUseCase *usecase.ProductUseCase,
	requestUseCase *usecase.RequestUseCase,
	boostUseCase *usecase.BoostUseCase,
	adminUseCase *usecase.AdminUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	sellerHandler = NewSellerHandler(sellerUseCase)
	catalogHandler = NewCatalogHandler(catalogUseCase)
	productHandler = NewProductHandler(productUseCase, requestUseCase)
	requestHandler = NewRequestHandler(requestUseCase)
	boostHandler = NewBoostHandler(boostUseCase)
	adminHandler = NewAdminHandler(adminUseCase, boostUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetSellerHandler() *SellerHandler {
	return sellerHandler
}

func GetCatalogHandler() *CatalogHandler {
	return catalogHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetRequestHandler() *RequestHandler {
	return requestHandler
}

func GetBoostHandler() *BoostHandler {
	return boostHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}
