package routers

import (
	"doctrack-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(router chi.Router, ctrl *controllers.AppointmentController, doctorCtrl *controllers.DoctorController) {
	router.Get("/appointments", ctrl.ListAll)
	router.Post("/appointments/{appointmentId}/cancel", ctrl.Cancel)
	router.Post("/doctors/{doctorId}/availability", doctorCtrl.ChangeAvailability)
	router.Get("/dashboard", ctrl.AdminDashboard)
}
