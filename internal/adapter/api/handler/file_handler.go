package handler

import (
	"fmt"

	"sombateka/internal/domain/service"
	"sombateka/pkg/errors"
	"sombateka/pkg/logger"
	"sombateka/pkg/response"

	"github.com/labstack/echo/v4"
)

type FileHandler struct {
	mediaService service.MediaUploadService
	maxFileSize  int64
}

var fileHandler *FileHandler

func NewFileHandler(mediaService service.MediaUploadService) *FileHandler {
	return &FileHandler{
		mediaService: mediaService,
		maxFileSize:  5 * 1024 * 1024,
	}
}

func SetupFileHandler(mediaService service.MediaUploadService) {
	fileHandler = NewFileHandler(mediaService)
}

func GetFileHandler() *FileHandler {
	return fileHandler
}

func (h *FileHandler) UploadImage(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid file", err))
	}

	if file.Size > h.maxFileSize {
		return response.Error(c, errors.BadRequest(fmt.Sprintf("File size exceeds maximum allowed (%dMB)", h.maxFileSize/(1024*1024)), nil))
	}

	contentType := file.Header.Get("Content-Type")
	if !isAllowedImageType(contentType) {
		return response.Error(c, errors.BadRequest("File type not supported", nil))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Unable to read file", err))
	}
	defer src.Close()

	url, err := h.mediaService.UploadImage(c.Request().Context(), src, contentType, file.Filename)
	if err != nil {
		logger.Error("Image upload failed: %v", err)
		return response.Error(c, errors.Internal("Failed to upload image", err))
	}

	return response.Created(c, map[string]string{"url": url})
}

func isAllowedImageType(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp":
		return true
	}
	return false
}
