package handler

import (
	"time"

	"sombateka/internal/usecase"
	"sombateka/pkg/errors"
	"sombateka/pkg/response"

	"github.com/labstack/echo/v4"
)

type SellerHandler struct {
	sellerUseCase *usecase.SellerUseCase
}

func NewSellerHandler(sellerUseCase *usecase.SellerUseCase) *SellerHandler {
	return &SellerHandler{
		sellerUseCase: sellerUseCase,
	}
}

type updateProfileRequest struct {
	ShopName    string `json:"shop_name" validate:"required"`
	ContactName string `json:"contact_name" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	WhatsApp    string `json:"whatsapp"`
	City        string `json:"city" validate:"required"`
	BirthDate   string `json:"birth_date"`
}

type confirmPaymentRequest struct {
	PaymentPhone string `json:"payment_phone" validate:"required"`
}

func (h *SellerHandler) GetProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	seller, err := h.sellerUseCase.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, seller)
}

func (h *SellerHandler) UpdateProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	var birthDate time.Time
	if req.BirthDate != "" {
		parsed, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			return response.Error(c, errors.BadRequest("birth_date must be formatted YYYY-MM-DD", err))
		}
		birthDate = parsed
	}

	seller, err := h.sellerUseCase.UpdateProfile(c.Request().Context(), uid, usecase.UpdateProfileInput{
		ShopName:    req.ShopName,
		ContactName: req.ContactName,
		Phone:       req.Phone,
		WhatsApp:    req.WhatsApp,
		City:        req.City,
		BirthDate:   birthDate,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, seller)
}

// ConfirmActivationPayment records "payment effectué" for the
// subscription fee; activation itself waits for staff verification.
func (h *SellerHandler) ConfirmActivationPayment(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req confirmPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	seller, err := h.sellerUseCase.ConfirmActivationPayment(c.Request().Context(), uid, req.PaymentPhone)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, seller)
}
