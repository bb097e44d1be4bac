package routers

import (
	"doctrack-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, ctrl *controllers.DoctorController) {
	router.Get("/{doctorId}/slots", ctrl.GetSlots)
}

func attachDoctorPanelRoutes(router chi.Router, ctrl *controllers.AppointmentController) {
	router.Get("/appointments", ctrl.ListForDoctor)
	router.Post("/appointments/{appointmentId}/complete", ctrl.Complete)
	router.Post("/appointments/{appointmentId}/cancel", ctrl.Cancel)
	router.Get("/dashboard", ctrl.DoctorDashboard)
}
