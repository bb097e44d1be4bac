package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"min":       "must be at least %s characters long",
	"max":       "maximum at %s characters long",
	"oneof":     "must be one of [%s]",
	"slot_date": "must use the day_month_year format, e.g. 10_5_2025",
	"slot_time": "must be a time label such as 10:00AM",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error kinds, the taxonomy surfaced to callers
const (
	ErrKindValidation        = "VALIDATION_ERROR"
	ErrKindNotFound          = "NOT_FOUND"
	ErrKindConflict          = "CONFLICT"
	ErrKindUnauthorized      = "UNAUTHORIZED"
	ErrKindGatewayAuth       = "GATEWAY_AUTH_ERROR"
	ErrKindPaymentInitiation = "PAYMENT_INITIATION_ERROR"
	ErrKindInternal          = "INTERNAL"
)

// Error codes, the specific reason inside a kind
const (
	ErrCodeInvalidInput         = "INVALID_INPUT"
	ErrCodeSlotTaken            = "SLOT_TAKEN"
	ErrCodeDoctorUnavailable    = "DOCTOR_UNAVAILABLE"
	ErrCodeDoctorNotFound       = "DOCTOR_NOT_FOUND"
	ErrCodePatientNotFound      = "PATIENT_NOT_FOUND"
	ErrCodeAppointmentNotFound  = "APPOINTMENT_NOT_FOUND"
	ErrCodeAlreadyCancelled     = "ALREADY_CANCELLED"
	ErrCodeAlreadyPaid          = "ALREADY_PAID"
	ErrCodeAlreadyCompleted     = "ALREADY_COMPLETED"
	ErrCodeAppointmentCancelled = "APPOINTMENT_CANCELLED"
	ErrCodePaymentNotSettled    = "PAYMENT_NOT_SETTLED"
	ErrCodePaymentInProgress    = "PAYMENT_IN_PROGRESS"
	ErrCodeReferenceMismatch    = "REFERENCE_MISMATCH"
	ErrCodeNotOwner             = "NOT_OWNER"
	ErrCodeMissingPrincipal     = "MISSING_PRINCIPAL"
	ErrCodeForbiddenRole        = "FORBIDDEN_ROLE"
	ErrCodeInvalidWebhookToken  = "INVALID_WEBHOOK_TOKEN"
	ErrCodeGatewayAuth          = "GATEWAY_AUTH_FAILED"
	ErrCodeGatewaySubmit        = "GATEWAY_SUBMIT_FAILED"
	ErrCodeGatewayStatus        = "GATEWAY_STATUS_FAILED"
	ErrCodeMissingRequestID     = "MISSING_REQUEST_ID"
	ErrCodeServer               = "SERVER_ERROR"
)

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientUnauthorizedAction            = "Unauthorized action"
	ErrClientSlotNotAvailable              = "Slot not available!"
	ErrClientDoctorNotAvailable            = "Doctor not available!"
	ErrClientDoctorNotFound                = "Doctor not found"
	ErrClientPatientNotFound               = "Patient not found"
	ErrClientAppointmentNotFound           = "Appointment not found"
	ErrClientAppointmentAlreadyCancelled   = "Appointment already cancelled"
	ErrClientAppointmentCancelled          = "Appointment is cancelled"
	ErrClientAppointmentAlreadyCompleted   = "Appointment already completed"
	ErrClientPaymentAlreadyCompleted       = "Payment already completed"
	ErrClientPaymentNotCompleted           = "Payment not completed yet"
	ErrClientPaymentInProgress             = "Payment initiation already in progress"
	ErrClientPaymentReferenceMismatch      = "Payment reference does not belong to this appointment"
	ErrClientPaymentInitiationFailed       = "Payment initiation failed"
	ErrClientPaymentGatewayAuthFailed      = "Failed to authenticate with payment provider"
	ErrClientInvalidWebhookToken           = "invalid webhook token"
)

// Error messages for developers
const (
	ErrDevInvalidInput              = "invalid input"
	ErrDevValidationFailed          = "validation failed"
	ErrDevCannotParseJSON           = "cannot parse JSON"
	ErrDevCannotMarshalJSON         = "cannot marshal JSON"
	ErrDevMissingRequestID          = "request ID missing from context"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded"
	ErrDevServerProcess             = "server failed to process the request"
	ErrDevAuthTokenMissing          = "authorization bearer token missing"
	ErrDevAuthTokenInvalid          = "authorization token invalid or expired"
	ErrDevAuthSigningMethod         = "unexpected token signing method"
	ErrDevPrincipalMissing          = "principal missing from context"
	ErrDevRoleForbidden             = "role %s is not allowed to %s %s"
	ErrDevNotOwner                  = "principal %s does not own appointment %s"
	ErrDevSlotTaken                 = "slot %s %s already booked for doctor %s"
	ErrDevDoctorUnavailable         = "doctor %s is marked unavailable"
	ErrDevDoctorNotFound            = "doctor %s not found"
	ErrDevPatientNotFound           = "patient %s not found"
	ErrDevAppointmentNotFound       = "appointment %s not found"
	ErrDevAlreadyCancelled          = "appointment %s already cancelled"
	ErrDevAppointmentCancelled      = "appointment %s is cancelled"
	ErrDevAlreadyCompleted          = "appointment %s already completed"
	ErrDevAlreadyPaid               = "appointment %s already paid"
	ErrDevPaymentNotSettled         = "appointment %s payment not settled"
	ErrDevPaymentInProgress         = "payment initiation lock held for appointment %s"
	ErrDevReferenceMismatch         = "reference %s not minted for appointment %s"
	ErrDevInvalidWebhookToken       = "webhook token mismatch"
	ErrDevGatewayAuth               = "payment gateway token request failed"
	ErrDevGatewaySubmit             = "payment gateway %s submission failed"
	ErrDevGatewayStatus             = "payment gateway status query failed"
	ErrDevGatewayUnexpectedStatus   = "payment gateway answered with HTTP %d"
	ErrDevCreateHTTPRequest         = "failed to create HTTP request"
	ErrDevSendHTTPRequest           = "failed to send HTTP request"
	ErrDevDBFailedToFindDocument    = "failed to find document"
	ErrDevDBFailedToUpdateDocument  = "failed to update document"
	ErrDevDBFailedToInsertDocument  = "failed to insert document"
	ErrDevDBFailedToCountDocuments  = "failed to count documents"
	ErrDevDBFailedToIterateDocument = "failed to iterate documents"
	ErrDevRedisGetData              = "failed to get data from redis"
	ErrDevRedisSetData              = "failed to set data to redis"
	ErrDevRedisDeleteData           = "failed to delete data from redis"
	ErrDevRedisUnlock               = "failed to release redis lock"
	ErrDevRabbitMQPublishMessage    = "failed to publish message to queue %s"
	ErrDevMinioFailedToCreateObject = "failed to create object in bucket %s"
	ErrDevMinioFailedToPresign      = "failed to presign object in bucket %s"
	ErrDevReceiptRender             = "failed to render receipt PDF"
)
