package handler

import (
	"time"

	"sombateka/internal/usecase"
	"sombateka/pkg/errors"
	"sombateka/pkg/response"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type registerRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	ShopName    string `json:"shop_name" validate:"required"`
	ContactName string `json:"contact_name" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	WhatsApp    string `json:"whatsapp"`
	City        string `json:"city" validate:"required"`
	BirthDate   string `json:"birth_date"`
	Plan        string `json:"plan" validate:"required,oneof=standard premium boutique"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type resetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type updatePasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
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

	result, err := h.authUseCase.Register(c.Request().Context(), usecase.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		ShopName:    req.ShopName,
		ContactName: req.ContactName,
		Phone:       req.Phone,
		WhatsApp:    req.WhatsApp,
		City:        req.City,
		BirthDate:   birthDate,
		Plan:        req.Plan,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]interface{}{
		"seller": result.Seller,
		"token":  result.Token,
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"seller": result.Seller,
		"token":  result.Token,
	})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authUseCase.Logout(c.Request().Context(), ""); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Logged out"})
}

func (h *AuthHandler) Me(c echo.Context) error {
	uid := c.Get("uid").(string)

	seller, err := h.authUseCase.GetSellerByID(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, seller)
}

func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.authUseCase.SendPasswordReset(c.Request().Context(), req.Email); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "If the address is registered, a reset email has been sent",
	})
}

func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req updatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.authUseCase.UpdatePassword(c.Request().Context(), uid, req.NewPassword); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Password updated"})
}
