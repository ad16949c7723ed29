package handler

import (
	"sombateka/internal/usecase"
	"sombateka/pkg/config"
	"sombateka/pkg/response"
	"sombateka/pkg/utils"

	"github.com/labstack/echo/v4"
)

// ContactHandler serves the payment instructions and contact links
// the storefront interpolates into its "how to pay" screens.
type ContactHandler struct {
	cfg *config.Config
}

var contactHandler *ContactHandler

func NewContactHandler(cfg *config.Config) *ContactHandler {
	return &ContactHandler{cfg: cfg}
}

func SetupContactHandler(cfg *config.Config) {
	contactHandler = NewContactHandler(cfg)
}

func GetContactHandler() *ContactHandler {
	return contactHandler
}

func (h *ContactHandler) GetContactInfo(c echo.Context) error {
	return response.Success(c, map[string]interface{}{
		"mobile_money": map[string]string{
			"mtn":    h.cfg.MTNMoneyNumber,
			"airtel": h.cfg.AirtelMoneyNumber,
		},
		"whatsapp_link": utils.WhatsAppLink(h.cfg.WhatsAppNumber, ""),
		"phone_link":    utils.TelLink(h.cfg.WhatsAppNumber),
		"support_email": utils.MailtoLink(h.cfg.SupportEmail, ""),
		"plans":         usecase.SubscriptionPlans(),
		"boost_options": usecase.BoostOptions(),
	})
}
