package constvars

const (
	LoggingRequestIDKey        = "request_id"
	LoggingRequestKey          = "request"
	LoggingResponseKey         = "response"
	LoggingEndpointKey         = "endpoint"
	LoggingMethodKey           = "method"
	LoggingRemoteAddrKey       = "remote_addr"
	LoggingUserAgentKey        = "user_agent"
	LoggingQueryKey            = "query"
	LoggingStatusCodeKey       = "status_code"
	LoggingDurationKey         = "duration"
	LoggingSuccessKey          = "success"
	LoggingOperationKey        = "operation"
	LoggingErrorTypeKey        = "error_type"
	LoggingErrorCodeKey        = "error_code"
	LoggingErrorMessageKey     = "error_message"
	LoggingPrincipalIDKey      = "principal_id"
	LoggingPrincipalRoleKey    = "principal_role"
	LoggingDoctorIDKey         = "doctor_id"
	LoggingPatientIDKey        = "patient_id"
	LoggingAppointmentIDKey    = "appointment_id"
	LoggingSlotDateKey         = "slot_date"
	LoggingSlotTimeKey         = "slot_time"
	LoggingPaymentReferenceKey = "payment_reference"
	LoggingPaymentMethodKey    = "payment_method"
	LoggingPaymentStatusKey    = "payment_status"
	LoggingTransactionIDKey    = "transaction_id"
	LoggingTransactionStatus   = "transaction_status"
	LoggingReconcileOutcomeKey = "reconcile_outcome"
	LoggingMockModeKey         = "mock_mode"
	LoggingRedisKey            = "redis_key"
	LoggingLockValueKey        = "lock_value"
	LoggingLockExpirationKey   = "lock_expiration"
	LoggingQueueNameKey        = "queue_name"
	LoggingEventTypeKey        = "event_type"
	LoggingBucketNameKey       = "bucket_name"
	LoggingObjectNameKey       = "object_name"
	LoggingTaskKey             = "task_key"
	LoggingDelayKey            = "delay"
)
