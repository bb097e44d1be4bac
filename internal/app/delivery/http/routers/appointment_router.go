package routers

import (
	"doctrack-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, ctrl *controllers.AppointmentController, receiptCtrl *controllers.ReceiptController) {
	router.Post("/", ctrl.Book)
	router.Get("/", ctrl.ListForPatient)
	router.Post("/{appointmentId}/cancel", ctrl.Cancel)
	router.Get("/{appointmentId}/receipt", receiptCtrl.GetReceipt)
}
