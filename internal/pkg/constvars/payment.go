package constvars

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

const (
	PaymentMethodMerchant = "merchant"
	PaymentMethodAirline  = "airline"
)

const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
)

// Statuses reported by the processor, compared case-insensitively.
const (
	JengaStatusSuccess   = "SUCCESS"
	JengaStatusCompleted = "COMPLETED"
	JengaStatusPaid      = "PAID"
	JengaStatusPending   = "PENDING"
	JengaStatusFailed    = "FAILED"
	JengaStatusDeclined  = "DECLINED"
	JengaStatusReversed  = "REVERSED"
)

const (
	JengaCountryCode        = "KE"
	JengaCurrencyCode       = "KES"
	JengaTransferMerchant   = "MerchantPay"
	JengaTransferAirline    = "AirlinePay"
	JengaDestinationTypeMer = "merchant"
	JengaDestinationTypeAir = "airline"
	JengaDateLayout         = "2006-01-02"
)

const (
	JengaPathToken      = "/identity/v2/token"
	JengaPathRemittance = "/transaction/v2/remittance"
	JengaPathBalance    = "/account/v2/accounts/balances"
)

const (
	PaymentReferencePrefix = "APT"
	MockTransactionPrefix  = "MOCK-"
)

const (
	ReconcileOutcomeApplied          = "applied"
	ReconcileOutcomeAlreadyPaid      = "already_paid"
	ReconcileOutcomeUnknownReference = "unknown_reference"
	ReconcileOutcomeIgnoredStatus    = "ignored_status"
	ReconcileOutcomeMarkedFailed     = "marked_failed"
	ReconcileOutcomePending          = "pending"
	ReconcileOutcomeSkippedCancelled = "skipped_cancelled"
)

const (
	PaymentNextStepsMock = "Mock payment - will auto-complete in %d seconds"
	PaymentNextStepsLive = "Complete payment through your Equity Bank account or M-Pesa"
)
