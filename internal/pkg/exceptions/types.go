package exceptions

import (
	"doctrack-service/internal/pkg/constvars"
	"fmt"
)

var (
	// Validation
	ErrInputValidation = func(err error) *CustomError {
		return newKindError(err, constvars.StatusBadRequest, constvars.ErrKindValidation, constvars.ErrCodeInvalidInput, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrInvalidInput = func(clientMessage string) *CustomError {
		return newKindError(nil, constvars.StatusBadRequest, constvars.ErrKindValidation, constvars.ErrCodeInvalidInput, clientMessage, constvars.ErrDevInvalidInput)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return newKindError(err, constvars.StatusBadRequest, constvars.ErrKindValidation, constvars.ErrCodeInvalidInput, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return newKindError(err, constvars.StatusInternalServerError, constvars.ErrKindInternal, constvars.ErrCodeServer, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}

	// Not found
	ErrDoctorNotFound = func(doctorID string) *CustomError {
		return newKindError(nil, constvars.StatusNotFound, constvars.ErrKindNotFound, constvars.ErrCodeDoctorNotFound, constvars.ErrClientDoctorNotFound, fmt.Sprintf(constvars.ErrDevDoctorNotFound, doctorID))
	}
	ErrPatientNotFound = func(patientID string) *CustomError {
		return newKindError(nil, constvars.StatusNotFound, constvars.ErrKindNotFound, constvars.ErrCodePatientNotFound, constvars.ErrClientPatientNotFound, fmt.Sprintf(constvars.ErrDevPatientNotFound, patientID))
	}
	ErrAppointmentNotFound = func(appointmentID string) *CustomError {
		return newKindError(nil, constvars.StatusNotFound, constvars.ErrKindNotFound, constvars.ErrCodeAppointmentNotFound, constvars.ErrClientAppointmentNotFound, fmt.Sprintf(constvars.ErrDevAppointmentNotFound, appointmentID))
	}

	// Conflict
	ErrSlotTaken = func(doctorID, slotDate, slotTime string) *CustomError {
		return newKindError(nil, constvars.StatusConflict, constvars.ErrKindConflict, constvars.ErrCodeSlotTaken, constvars.ErrClientSlotNotAvailable, fmt.Sprintf(constvars.ErrDevSlotTaken, slotDate, slotTime, doctorID))
	}
	ErrDoctorUnavailable = func(doctorID string) *CustomError {
		return newKindError(nil, constvars.StatusConflict, constvars.ErrKindConflict, constvars.ErrCodeDoctorUnavailable, constvars.ErrClientDoctorNotAvailable, fmt.Sprintf(constvars.ErrDevDoctorUnavailable, doctorID))
	}
	ErrAlreadyCancelled = func(appointmentID string) *CustomError {
		return newKindError(nil, constvars.StatusConflict, constvars.ErrKindConflict, constvars.ErrCodeAlreadyCancelled, constvars.ErrClientAppointmentAlreadyCancelled, fmt.Sprintf(constvars.ErrDevAlreadyCancelled, appointmentID))
	}
	ErrAppointmentCancelled = func(appointmentID string) *CustomError {
		return newKindError(nil, constvars.StatusConflict, constvars.ErrKindConflict, constvars.ErrCodeAppointmentCancelled, constvars.ErrClientAppointmentCancelled, fmt.Sprintf(constvars.ErrDevAppointmentCancelled, appointmentID))
	}
	ErrAlreadyCompleted = func(appointmentID string) *CustomError {
		return newKindError(nil, constvars.StatusConflict, constvars.ErrKindConflict, constvars.ErrCodeAlreadyCompleted, constvars.ErrClientAppointmentAlreadyCompleted, fmt.Sprintf(constvars.ErrDevAlreadyCompleted, appointmentID))
	}
	ErrAlreadyPaid = func(appointmentID string) *CustomError {
		return newKindError(nil, constvars.StatusConflict, constvars.ErrKindConflict, constvars.ErrCodeAlreadyPaid, constvars.ErrClientPaymentAlreadyCompleted, fmt.Sprintf(constvars.ErrDevAlreadyPaid, appointmentID))
	}
	ErrPaymentNotSettled = func(appointmentID string) *CustomError {
		return newKindError(nil, constvars.StatusConflict, constvars.ErrKindConflict, constvars.ErrCodePaymentNotSettled, constvars.ErrClientPaymentNotCompleted, fmt.Sprintf(constvars.ErrDevPaymentNotSettled, appointmentID))
	}
	ErrPaymentInProgress = func(appointmentID string) *CustomError {
		return newKindError(nil, constvars.StatusConflict, constvars.ErrKindConflict, constvars.ErrCodePaymentInProgress, constvars.ErrClientPaymentInProgress, fmt.Sprintf(constvars.ErrDevPaymentInProgress, appointmentID))
	}
	ErrReferenceMismatch = func(reference, appointmentID string) *CustomError {
		return newKindError(nil, constvars.StatusConflict, constvars.ErrKindConflict, constvars.ErrCodeReferenceMismatch, constvars.ErrClientPaymentReferenceMismatch, fmt.Sprintf(constvars.ErrDevReferenceMismatch, reference, appointmentID))
	}

	// Unauthorized
	ErrNotOwner = func(principalID, appointmentID string) *CustomError {
		return newKindError(nil, constvars.StatusForbidden, constvars.ErrKindUnauthorized, constvars.ErrCodeNotOwner, constvars.ErrClientUnauthorizedAction, fmt.Sprintf(constvars.ErrDevNotOwner, principalID, appointmentID))
	}
	ErrPrincipalMissing = func() *CustomError {
		return newKindError(nil, constvars.StatusUnauthorized, constvars.ErrKindUnauthorized, constvars.ErrCodeMissingPrincipal, constvars.ErrClientNotLoggedIn, constvars.ErrDevPrincipalMissing)
	}
	ErrTokenMissing = func() *CustomError {
		return newKindError(nil, constvars.StatusUnauthorized, constvars.ErrKindUnauthorized, constvars.ErrCodeMissingPrincipal, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalid = func(err error) *CustomError {
		return newKindError(err, constvars.StatusUnauthorized, constvars.ErrKindUnauthorized, constvars.ErrCodeMissingPrincipal, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalid)
	}
	ErrRoleForbidden = func(role, method, path string) *CustomError {
		return newKindError(nil, constvars.StatusForbidden, constvars.ErrKindUnauthorized, constvars.ErrCodeForbiddenRole, constvars.ErrClientNotAuthorized, fmt.Sprintf(constvars.ErrDevRoleForbidden, role, method, path))
	}
	ErrInvalidWebhookToken = func() *CustomError {
		return newKindError(nil, constvars.StatusUnauthorized, constvars.ErrKindUnauthorized, constvars.ErrCodeInvalidWebhookToken, constvars.ErrClientInvalidWebhookToken, constvars.ErrDevInvalidWebhookToken)
	}

	// Payment gateway
	ErrGatewayAuth = func(err error) *CustomError {
		return newKindError(err, constvars.StatusBadGateway, constvars.ErrKindGatewayAuth, constvars.ErrCodeGatewayAuth, constvars.ErrClientPaymentGatewayAuthFailed, constvars.ErrDevGatewayAuth)
	}
	ErrPaymentInitiation = func(err error, channel string) *CustomError {
		return newKindError(err, constvars.StatusBadGateway, constvars.ErrKindPaymentInitiation, constvars.ErrCodeGatewaySubmit, constvars.ErrClientPaymentInitiationFailed, fmt.Sprintf(constvars.ErrDevGatewaySubmit, channel))
	}
	ErrGatewayStatus = func(err error) *CustomError {
		return newKindError(err, constvars.StatusBadGateway, constvars.ErrKindPaymentInitiation, constvars.ErrCodeGatewayStatus, constvars.ErrClientCannotProcessRequest, constvars.ErrDevGatewayStatus)
	}

	// Server
	ErrMissingRequestID = func() *CustomError {
		return newKindError(nil, constvars.StatusBadRequest, constvars.ErrKindValidation, constvars.ErrCodeMissingRequestID, constvars.ErrClientCannotProcessRequest, constvars.ErrDevMissingRequestID)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return newKindError(err, constvars.StatusGatewayTimeout, constvars.ErrKindInternal, constvars.ErrCodeServer, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrServerProcess = func(err error) *CustomError {
		return newKindError(err, constvars.StatusInternalServerError, constvars.ErrKindInternal, constvars.ErrCodeServer, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return newKindError(err, constvars.StatusInternalServerError, constvars.ErrKindInternal, constvars.ErrCodeServer, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return newKindError(err, constvars.StatusBadGateway, constvars.ErrKindInternal, constvars.ErrCodeServer, constvars.ErrClientCannotProcessRequest, constvars.ErrDevSendHTTPRequest)
	}
	ErrReceiptRender = func(err error) *CustomError {
		return newKindError(err, constvars.StatusInternalServerError, constvars.ErrKindInternal, constvars.ErrCodeServer, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevReceiptRender)
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return newKindError(err, constvars.StatusInternalServerError, constvars.ErrKindInternal, constvars.ErrCodeServer, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return newKindError(err, constvars.StatusInternalServerError, constvars.ErrKindInternal, constvars.ErrCodeServer, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateDocument)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return newKindError(err, constvars.StatusInternalServerError, constvars.ErrKindInternal, constvars.ErrCodeServer, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBCountDocuments = func(err error) *CustomError {
		return newKindError(err, constvars.StatusInternalServerError, constvars.ErrKindInternal, constvars.ErrCodeServer, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToCountDocuments)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return newKindError(err, constvars.StatusInternalServerError, constvars.ErrKindInternal, constvars.ErrCodeServer, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToIterateDocument)
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return newKindError(err, constvars.StatusInternalServerError, constvars.ErrKindInternal, constvars.ErrCodeServer, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return newKindError(err, constvars.StatusInternalServerError, constvars.ErrKindInternal, constvars.ErrCodeServer, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return newKindError(err, constvars.StatusInternalServerError, constvars.ErrKindInternal, constvars.ErrCodeServer, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return newKindError(err, constvars.StatusInternalServerError, constvars.ErrKindInternal, constvars.ErrCodeServer, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return newKindError(err, constvars.StatusInternalServerError, constvars.ErrKindInternal, constvars.ErrCodeServer, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queueName))
	}

	// Minio
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return newKindError(err, constvars.StatusInternalServerError, constvars.ErrKindInternal, constvars.ErrCodeServer, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToCreateObject, bucketName))
	}
	ErrMinioPresignObject = func(err error, bucketName string) *CustomError {
		return newKindError(err, constvars.StatusInternalServerError, constvars.ErrKindInternal, constvars.ErrCodeServer, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToPresign, bucketName))
	}
)

var ErrPaymentInitiationAuth = func(err error) *CustomError {
	return newKindError(err, constvars.StatusBadGateway, constvars.ErrKindPaymentInitiation, constvars.ErrCodeGatewayAuth, constvars.ErrClientPaymentGatewayAuthFailed, constvars.ErrDevGatewayAuth)
}
