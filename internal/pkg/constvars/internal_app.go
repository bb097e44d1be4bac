package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_PRINCIPAL_KEY            ContextKey = "principal"
)

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

const (
	MongoCollectionDoctors      = "doctors"
	MongoCollectionPatients     = "users"
	MongoCollectionAppointments = "appointments"
)

const (
	URLParamAppointmentID = "appointmentId"
	URLParamDoctorID      = "doctorId"
)

const (
	DashboardLatestAppointmentsLimit = 5
)

const (
	EventAppointmentBooked    = "appointment.booked"
	EventAppointmentCancelled = "appointment.cancelled"
	EventAppointmentCompleted = "appointment.completed"
	EventPaymentInitiated     = "payment.initiated"
	EventPaymentPaid          = "payment.paid"
	EventPaymentFailed        = "payment.failed"
)

const (
	LockKeyPaymentInitiateFormat = "payment:initiate:%s"
	TaskKeyMockCompletionFormat  = "mock-completion:%s"
	ReceiptObjectNameFormat      = "receipts/%s.pdf"
)
