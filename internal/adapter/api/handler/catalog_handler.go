package handler

import (
	"sombateka/internal/usecase"
	"sombateka/pkg/response"
	"sombateka/pkg/utils"

	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	catalogUseCase *usecase.CatalogUseCase
}

func NewCatalogHandler(catalogUseCase *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
	}
}

func (h *CatalogHandler) ListProducts(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	filter := usecase.CatalogFilter{
		Category: c.QueryParam("category"),
		City:     c.QueryParam("city"),
	}

	products, total, err := h.catalogUseCase.ListProducts(c.Request().Context(), filter, pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, total, pagination.Page, pagination.PageSize)
}

func (h *CatalogHandler) SearchProducts(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)
	query := c.QueryParam("q")

	products, total, err := h.catalogUseCase.SearchProducts(c.Request().Context(), query, pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, total, pagination.Page, pagination.PageSize)
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id := c.Param("id")

	product, err := h.catalogUseCase.GetProductByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}
