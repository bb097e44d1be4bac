package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentState(t *testing.T) {
	tests := []struct {
		name        string
		appointment Appointment
		expected    AppointmentState
	}{
		{"Fresh booking", Appointment{PaymentStatus: "pending"}, AppointmentStateBooked},
		{"Reference minted", Appointment{PaymentStatus: "pending", PaymentReference: "APT1"}, AppointmentStatePaymentPending},
		{"Failed attempt can be retried", Appointment{PaymentStatus: "failed", PaymentReference: "APT1"}, AppointmentStateBooked},
		{"Settled", Appointment{Payment: true, PaymentStatus: "paid", PaymentReference: "APT1"}, AppointmentStatePaid},
		{"Service rendered", Appointment{Payment: true, PaymentStatus: "paid", IsCompleted: true}, AppointmentStateCompleted},
		{"Cancelled wins over everything", Appointment{Cancelled: true, Payment: true, PaymentStatus: "paid"}, AppointmentStateCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appointment.State())
		})
	}
}

func TestAppointmentHasPaymentReference(t *testing.T) {
	appointment := Appointment{
		PaymentReference:  "APT2",
		PaymentReferences: []string{"APT1", "APT2"},
	}

	assert.True(t, appointment.HasPaymentReference("APT2"))
	assert.True(t, appointment.HasPaymentReference("APT1"), "earlier attempts stay valid")
	assert.False(t, appointment.HasPaymentReference("APT3"))
	assert.False(t, appointment.HasPaymentReference(""))
}

func TestDoctorIsSlotBooked(t *testing.T) {
	doctor := Doctor{SlotsBooked: map[string][]string{"10_5_2025": {"10:00AM", "11:00AM"}}}

	assert.True(t, doctor.IsSlotBooked("10_5_2025", "11:00AM"))
	assert.False(t, doctor.IsSlotBooked("10_5_2025", "12:00PM"))
	assert.False(t, doctor.IsSlotBooked("11_5_2025", "10:00AM"))
}
