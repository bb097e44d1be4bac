package responses

import "time"

type InitiatePayment struct {
	AppointmentID    string `json:"appointmentId"`
	PaymentReference string `json:"paymentReference"`
	TransactionID    string `json:"transactionId"`
	Status           string `json:"status"`
	Message          string `json:"message"`
	IsMockMode       bool   `json:"isMockMode"`
	NextSteps        string `json:"nextSteps"`
}

type VerifyPayment struct {
	AppointmentID     string     `json:"appointmentId"`
	PaymentReference  string     `json:"paymentReference"`
	Paid              bool       `json:"paid"`
	PaymentStatus     string     `json:"paymentStatus"`
	TransactionStatus string     `json:"transactionStatus,omitempty"`
	GatewayStatus     string     `json:"gatewayStatus,omitempty"`
	PaymentDate       *time.Time `json:"paymentDate,omitempty"`
	IsMockMode        bool       `json:"isMockMode"`
}

type WebhookAcknowledgement struct {
	Status string `json:"status"`
}

type GatewayAcknowledgement struct {
	TransactionID string `json:"transactionId"`
	Reference     string `json:"reference"`
	Status        string `json:"status"`
	Message       string `json:"message"`
}

// GatewayTransactionStatus is the processor's view of one reference. Either
// field may carry the settlement status.
type GatewayTransactionStatus struct {
	Reference         string `json:"reference"`
	TransactionID     string `json:"transactionId"`
	Status            string `json:"status"`
	TransactionStatus string `json:"transactionStatus"`
}

type JengaToken struct {
	AccessToken string `json:"accessToken"`
}

type JengaError struct {
	Status  bool   `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}
