package models

import (
	"doctrack-service/internal/pkg/constvars"
	"time"
)

type AppointmentState string

const (
	AppointmentStateBooked         AppointmentState = "booked"
	AppointmentStatePaymentPending AppointmentState = "payment_pending"
	AppointmentStatePaid           AppointmentState = "paid"
	AppointmentStateCompleted      AppointmentState = "completed"
	AppointmentStateCancelled      AppointmentState = "cancelled"
)

// Appointment is one booking attempt. Booking fields (Cancelled, IsCompleted)
// are written by the orchestrator, payment fields only by the payment flows.
type Appointment struct {
	ID                string          `bson:"_id" json:"_id"`
	PatientID         string          `bson:"userId" json:"userId"`
	DoctorID          string          `bson:"docId" json:"docId"`
	SlotDate          string          `bson:"slotDate" json:"slotDate"`
	SlotTime          string          `bson:"slotTime" json:"slotTime"`
	PatientData       PatientSnapshot `bson:"userData" json:"userData"`
	DoctorData        DoctorSnapshot  `bson:"docData" json:"docData"`
	Amount            float64         `bson:"amount" json:"amount"`
	Date              int64           `bson:"date" json:"date"`
	Cancelled         bool            `bson:"cancelled" json:"cancelled"`
	CancelledBy       string          `bson:"cancelledBy,omitempty" json:"cancelledBy,omitempty"`
	CancelledAt       *time.Time      `bson:"cancelledAt,omitempty" json:"cancelledAt,omitempty"`
	Payment           bool            `bson:"payment" json:"payment"`
	IsCompleted       bool            `bson:"isCompleted" json:"isCompleted"`
	CompletedAt       *time.Time      `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	PaymentStatus     string          `bson:"paymentStatus" json:"paymentStatus"`
	PaymentMethod     string          `bson:"paymentMethod,omitempty" json:"paymentMethod,omitempty"`
	PaymentReference  string          `bson:"paymentReference,omitempty" json:"paymentReference,omitempty"`
	PaymentReferences []string        `bson:"paymentReferences,omitempty" json:"paymentReferences,omitempty"`
	TransactionID     string          `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	TransactionStatus string          `bson:"transactionStatus,omitempty" json:"transactionStatus,omitempty"`
	PaymentDate       *time.Time      `bson:"paymentDate,omitempty" json:"paymentDate,omitempty"`
	CreatedAt         time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// State derives the lifecycle state from the stored flags. A failed attempt
// falls back to booked so the patient can initiate again.
func (a *Appointment) State() AppointmentState {
	switch {
	case a.Cancelled:
		return AppointmentStateCancelled
	case a.IsCompleted:
		return AppointmentStateCompleted
	case a.Payment:
		return AppointmentStatePaid
	case a.PaymentReference != "" && a.PaymentStatus == constvars.PaymentStatusPending:
		return AppointmentStatePaymentPending
	default:
		return AppointmentStateBooked
	}
}

func (a *Appointment) IsOwnedByPatient(patientID string) bool {
	return a.PatientID == patientID
}

func (a *Appointment) IsOwnedByDoctor(doctorID string) bool {
	return a.DoctorID == doctorID
}

// HasPaymentReference reports whether reference was minted for this record,
// by the latest or any earlier initiation attempt.
func (a *Appointment) HasPaymentReference(reference string) bool {
	if reference == "" {
		return false
	}
	if a.PaymentReference == reference {
		return true
	}
	for _, minted := range a.PaymentReferences {
		if minted == reference {
			return true
		}
	}
	return false
}

// PaymentAttempt is what a successful gateway initiation writes onto the record.
type PaymentAttempt struct {
	Reference     string
	Method        string
	TransactionID string
}
