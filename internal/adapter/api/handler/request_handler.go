package handler

import (
	"mime"

	"sombateka/internal/usecase"
	"sombateka/pkg/errors"
	"sombateka/pkg/response"

	"github.com/labstack/echo/v4"
)

type RequestHandler struct {
	requestUseCase *usecase.RequestUseCase
}

func NewRequestHandler(requestUseCase *usecase.RequestUseCase) *RequestHandler {
	return &RequestHandler{
		requestUseCase: requestUseCase,
	}
}

type publicSubmissionRequest struct {
	Name        string   `json:"name" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	City        string   `json:"city" validate:"required"`
	Price       int64    `json:"price" validate:"required,gt=0"`
	Description string   `json:"description" validate:"required"`
	Images      []string `json:"images" validate:"max=3,dive,url"`

	SubmitterName     string `json:"submitter_name" validate:"required"`
	SubmitterPhone    string `json:"submitter_phone" validate:"required"`
	SubmitterWhatsApp string `json:"submitter_whatsapp"`
}

// Submit accepts a public product submission. Only JSON bodies are
// accepted; anything else is refused before the store is touched.
func (h *RequestHandler) Submit(c echo.Context) error {
	mediaType, _, err := mime.ParseMediaType(c.Request().Header.Get(echo.HeaderContentType))
	if err != nil || mediaType != echo.MIMEApplicationJSON {
		return response.Error(c, errors.UnsupportedMediaType("Content-Type must be application/json"))
	}

	var req publicSubmissionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	request, err := h.requestUseCase.Submit(c.Request().Context(), usecase.SubmitRequestInput{
		Name:              req.Name,
		Category:          req.Category,
		City:              req.City,
		Price:             req.Price,
		Description:       req.Description,
		Images:            req.Images,
		SubmitterName:     req.SubmitterName,
		SubmitterPhone:    req.SubmitterPhone,
		SubmitterWhatsApp: req.SubmitterWhatsApp,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, request)
}
