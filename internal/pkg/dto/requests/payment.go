package requests

type InitiatePayment struct {
	AppointmentID string `json:"appointmentId" validate:"required"`
	PaymentMethod string `json:"paymentMethod" validate:"omitempty,oneof=merchant airline"`
}

type VerifyPayment struct {
	AppointmentID    string `json:"appointmentId" validate:"required"`
	PaymentReference string `json:"paymentReference" validate:"required"`
}

// JengaWebhook is the processor callback. Fields are optional on purpose,
// malformed notifications are acknowledged and ignored.
type JengaWebhook struct {
	Reference         string `json:"reference"`
	TransactionStatus string `json:"transactionStatus"`
	TransactionID     string `json:"transactionId"`
}

// GatewayPayment is the adapter input for one initiation attempt.
type GatewayPayment struct {
	Channel       string
	PatientName   string
	PatientPhone  string
	Amount        float64
	Reference     string
	AppointmentID string
}

type JengaParty struct {
	Type          string `json:"type,omitempty"`
	CountryCode   string `json:"countryCode"`
	Name          string `json:"name"`
	AccountNumber string `json:"accountNumber,omitempty"`
	MobileNumber  string `json:"mobileNumber,omitempty"`
	MerchantCode  string `json:"merchantCode,omitempty"`
}

type JengaTransfer struct {
	Type         string  `json:"type"`
	Amount       float64 `json:"amount"`
	CurrencyCode string  `json:"currencyCode"`
	Reference    string  `json:"reference"`
	Date         string  `json:"date"`
	Description  string  `json:"description"`
}

type JengaRemittance struct {
	Source      JengaParty    `json:"source"`
	Destination JengaParty    `json:"destination"`
	Transfer    JengaTransfer `json:"transfer"`
}
