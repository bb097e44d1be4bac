package routers

import (
	"doctrack-service/internal/app/config"
	"doctrack-service/internal/app/delivery/http/controllers"
	"doctrack-service/internal/app/delivery/http/middlewares"
	"fmt"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

type Controllers struct {
	Health      *controllers.HealthController
	Doctor      *controllers.DoctorController
	Appointment *controllers.AppointmentController
	Payment     *controllers.PaymentController
	Webhook     *controllers.WebhookController
	Receipt     *controllers.ReceiptController
}

// RootPath is the mount point of the versioned API, e.g. /api/v1.
func RootPath(internalConfig *config.InternalConfig) string {
	endpointPrefix := "/" + strings.Trim(internalConfig.App.EndpointPrefix, "/")
	return fmt.Sprintf("%s/%s", endpointPrefix, strings.Trim(internalConfig.App.Version, "/"))
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	ctrls Controllers,
) {
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "X-Webhook-Token"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	window := time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, window))
	router.Use(middlewares.BodyLimit)

	rootPath := RootPath(internalConfig)
	router.Route(rootPath, func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Use(middlewares.Authorize(rootPath))

		r.Get("/health", ctrls.Health.Check)

		r.Route("/doctors", func(r chi.Router) {
			attachDoctorRoutes(r, ctrls.Doctor)
		})
		r.Route("/appointments", func(r chi.Router) {
			attachAppointmentRoutes(r, ctrls.Appointment, ctrls.Receipt)
		})
		r.Route("/doctor", func(r chi.Router) {
			attachDoctorPanelRoutes(r, ctrls.Appointment)
		})
		r.Route("/admin", func(r chi.Router) {
			attachAdminRoutes(r, ctrls.Appointment, ctrls.Doctor)
		})
		r.Route("/payments", func(r chi.Router) {
			attachPaymentRoutes(r, internalConfig, ctrls.Payment, ctrls.Webhook)
		})
	})
}
