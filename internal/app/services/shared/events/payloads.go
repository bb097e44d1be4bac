package events

// AppointmentEvent is the data of every appointment.* event.
type AppointmentEvent struct {
	AppointmentID string  `json:"appointmentId"`
	PatientID     string  `json:"patientId"`
	DoctorID      string  `json:"doctorId"`
	SlotDate      string  `json:"slotDate"`
	SlotTime      string  `json:"slotTime"`
	Amount        float64 `json:"amount"`
	ActorID       string  `json:"actorId,omitempty"`
	ActorRole     string  `json:"actorRole,omitempty"`
}

// PaymentEvent is the data of every payment.* event.
type PaymentEvent struct {
	AppointmentID    string `json:"appointmentId,omitempty"`
	PaymentReference string `json:"paymentReference"`
	TransactionID    string `json:"transactionId,omitempty"`
	Status           string `json:"status"`
	Source           string `json:"source,omitempty"`
	IsMockMode       bool   `json:"isMockMode"`
}
