package handler

import (
	"sombateka/internal/usecase"
	"sombateka/pkg/errors"
	"sombateka/pkg/response"

	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
	requestUseCase *usecase.RequestUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase, requestUseCase *usecase.RequestUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
		requestUseCase: requestUseCase,
	}
}

type submitProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	City        string   `json:"city" validate:"required"`
	Price       int64    `json:"price" validate:"required,gt=0"`
	Description string   `json:"description" validate:"required"`
	Images      []string `json:"images" validate:"max=3,dive,url"`
}

// SubmitProduct queues a new listing for moderation; sellers never
// write to the catalog directly.
func (h *ProductHandler) SubmitProduct(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req submitProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	request, err := h.requestUseCase.SubmitAsSeller(c.Request().Context(), uid, usecase.SubmitRequestInput{
		Name:        req.Name,
		Category:    req.Category,
		City:        req.City,
		Price:       req.Price,
		Description: req.Description,
		Images:      req.Images,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, request)
}

func (h *ProductHandler) ListMyProducts(c echo.Context) error {
	uid := c.Get("uid").(string)

	products, err := h.productUseCase.ListMyProducts(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}

func (h *ProductHandler) DeleteMyProduct(c echo.Context) error {
	uid := c.Get("uid").(string)
	id := c.Param("id")

	if err := h.productUseCase.DeleteMyProduct(c.Request().Context(), uid, id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Product deleted"})
}
