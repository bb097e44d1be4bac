package routers

import (
	"doctrack-service/internal/app/config"
	"doctrack-service/internal/app/delivery/http/controllers"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

func attachPaymentRoutes(router chi.Router, internalConfig *config.InternalConfig, ctrl *controllers.PaymentController, webhookCtrl *controllers.WebhookController) {
	router.Post("/initiate", ctrl.Initiate)
	router.Post("/verify", ctrl.Verify)

	window := time.Duration(internalConfig.Webhook.MaxTimeRequestsPerSeconds) * time.Second
	router.With(httprate.LimitByIP(internalConfig.Webhook.MaxRequests, window)).
		Post("/webhook/jenga", webhookCtrl.HandleJenga)
}
