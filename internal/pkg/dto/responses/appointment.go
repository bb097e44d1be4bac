package responses

import "time"

type Appointment struct {
	ID                string          `json:"_id"`
	PatientID         string          `json:"userId"`
	DoctorID          string          `json:"docId"`
	SlotDate          string          `json:"slotDate"`
	SlotTime          string          `json:"slotTime"`
	Amount            float64         `json:"amount"`
	Date              int64           `json:"date"`
	State             string          `json:"state"`
	Cancelled         bool            `json:"cancelled"`
	Payment           bool            `json:"payment"`
	IsCompleted       bool            `json:"isCompleted"`
	PaymentStatus     string          `json:"paymentStatus"`
	PaymentMethod     string          `json:"paymentMethod,omitempty"`
	PaymentReference  string          `json:"paymentReference,omitempty"`
	TransactionID     string          `json:"transactionId,omitempty"`
	TransactionStatus string          `json:"transactionStatus,omitempty"`
	PaymentDate       *time.Time      `json:"paymentDate,omitempty"`
	Patient           AppointmentUser `json:"userData"`
	Doctor            AppointmentUser `json:"docData"`
}

type AppointmentUser struct {
	ID         string  `json:"_id"`
	Name       string  `json:"name"`
	Image      string  `json:"image,omitempty"`
	Phone      string  `json:"phone,omitempty"`
	Speciality string  `json:"speciality,omitempty"`
	Fees       float64 `json:"fees,omitempty"`
}

type DoctorDashboard struct {
	Earnings           float64       `json:"earnings"`
	Appointments       int           `json:"appointments"`
	Patients           int           `json:"patients"`
	LatestAppointments []Appointment `json:"latestAppointments"`
}

type AdminDashboard struct {
	Doctors            int64         `json:"doctors"`
	Patients           int64         `json:"patients"`
	Appointments       int64         `json:"appointments"`
	LatestAppointments []Appointment `json:"latestAppointments"`
}

type DoctorSlots struct {
	DoctorID    string              `json:"docId"`
	Available   bool                `json:"available"`
	Fees        float64             `json:"fees"`
	SlotsBooked map[string][]string `json:"slots_booked"`
}

type DoctorAvailability struct {
	DoctorID  string `json:"docId"`
	Available bool   `json:"available"`
}

type Receipt struct {
	AppointmentID string    `json:"appointmentId"`
	URL           string    `json:"url"`
	ExpiresAt     time.Time `json:"expiresAt"`
}
