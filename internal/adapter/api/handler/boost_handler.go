package handler

import (
	"sombateka/internal/usecase"
	"sombateka/pkg/errors"
	"sombateka/pkg/response"

	"github.com/labstack/echo/v4"
)

type BoostHandler struct {
	boostUseCase *usecase.BoostUseCase
}

func NewBoostHandler(boostUseCase *usecase.BoostUseCase) *BoostHandler {
	return &BoostHandler{
		boostUseCase: boostUseCase,
	}
}

type selectBoostRequest struct {
	Option string `json:"option" validate:"required"`
}

type confirmBoostRequest struct {
	PaymentPhone string `json:"payment_phone" validate:"required"`
}

func (h *BoostHandler) ListOptions(c echo.Context) error {
	return response.Success(c, usecase.BoostOptions())
}

func (h *BoostHandler) SelectOption(c echo.Context) error {
	uid := c.Get("uid").(string)
	productID := c.Param("id")

	var req selectBoostRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	quote, err := h.boostUseCase.SelectOption(c.Request().Context(), uid, productID, req.Option)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, quote)
}

func (h *BoostHandler) ConfirmPayment(c echo.Context) error {
	uid := c.Get("uid").(string)
	productID := c.Param("id")

	var req confirmBoostRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.boostUseCase.ConfirmPayment(c.Request().Context(), uid, productID, req.PaymentPhone)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}
