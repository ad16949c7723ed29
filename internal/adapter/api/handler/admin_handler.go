package handler

import (
	"sombateka/internal/usecase"
	"sombateka/pkg/response"
	"sombateka/pkg/utils"

	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	adminUseCase *usecase.AdminUseCase
	boostUseCase *usecase.BoostUseCase
}

func NewAdminHandler(adminUseCase *usecase.AdminUseCase, boostUseCase *usecase.BoostUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
		boostUseCase: boostUseCase,
	}
}

func (h *AdminHandler) GetDashboardStats(c echo.Context) error {
	stats, err := h.adminUseCase.GetDashboardStats(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}

func (h *AdminHandler) ListRequests(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	requests, total, err := h.adminUseCase.ListRequests(c.Request().Context(), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, requests, total, pagination.Page, pagination.PageSize)
}

func (h *AdminHandler) ApproveRequest(c echo.Context) error {
	id := c.Param("id")

	product, err := h.adminUseCase.ApproveRequest(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *AdminHandler) RejectRequest(c echo.Context) error {
	id := c.Param("id")

	if err := h.adminUseCase.RejectRequest(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Request rejected"})
}

func (h *AdminHandler) ListProducts(c echo.Context) error {
	products, err := h.adminUseCase.ListProducts(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}

func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	id := c.Param("id")

	if err := h.adminUseCase.DeleteProduct(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Product deleted"})
}

func (h *AdminHandler) ListSellers(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	sellers, total, err := h.adminUseCase.ListSellers(c.Request().Context(), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, sellers, total, pagination.Page, pagination.PageSize)
}

func (h *AdminHandler) DeleteSeller(c echo.Context) error {
	id := c.Param("id")

	if err := h.adminUseCase.DeleteSeller(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Seller deleted"})
}

// VerifySellerPayment flips a submitted subscription payment to
// verified after staff reconcile the transfer.
func (h *AdminHandler) VerifySellerPayment(c echo.Context) error {
	id := c.Param("id")

	seller, err := h.adminUseCase.VerifySellerPayment(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, seller)
}

// ConfirmBoostPayment activates a product boost once the transfer is
// reconciled.
func (h *AdminHandler) ConfirmBoostPayment(c echo.Context) error {
	id := c.Param("id")

	product, err := h.boostUseCase.Activate(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}
