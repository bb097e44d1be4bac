package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	HealthCheckSuccess = "Doctor Appointment API is working!"

	AppointmentBookedSuccess    = "Appointment booked successfully!"
	AppointmentCancelledSuccess = "Appointment cancelled successfully"
	AppointmentCompletedSuccess = "Appointment completed"
	AppointmentListSuccess      = "Appointments fetched successfully"
	DoctorSlotsSuccess          = "Doctor slots fetched successfully"
	DoctorAvailabilityChanged   = "Availability changed"
	DashboardSuccess            = "Dashboard fetched successfully"
	PaymentInitiatedSuccess     = "Payment initiated successfully"
	PaymentVerifiedSuccess      = "Payment verified successfully"
	PaymentPendingMessage       = "Payment not completed yet"
	WebhookProcessedSuccess     = "Webhook processed successfully"
	ReceiptGeneratedSuccess     = "Receipt generated successfully"
)
