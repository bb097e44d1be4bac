package appointments

import (
	"doctrack-service/internal/app/models"
	"doctrack-service/internal/pkg/dto/responses"
)

func ToAppointmentResponse(appointment *models.Appointment) responses.Appointment {
	return responses.Appointment{
		ID:                appointment.ID,
		PatientID:         appointment.PatientID,
		DoctorID:          appointment.DoctorID,
		SlotDate:          appointment.SlotDate,
		SlotTime:          appointment.SlotTime,
		Amount:            appointment.Amount,
		Date:              appointment.Date,
		State:             string(appointment.State()),
		Cancelled:         appointment.Cancelled,
		Payment:           appointment.Payment,
		IsCompleted:       appointment.IsCompleted,
		PaymentStatus:     appointment.PaymentStatus,
		PaymentMethod:     appointment.PaymentMethod,
		PaymentReference:  appointment.PaymentReference,
		TransactionID:     appointment.TransactionID,
		TransactionStatus: appointment.TransactionStatus,
		PaymentDate:       appointment.PaymentDate,
		Patient: responses.AppointmentUser{
			ID:    appointment.PatientData.ID,
			Name:  appointment.PatientData.Name,
			Image: appointment.PatientData.Image,
			Phone: appointment.PatientData.Phone,
		},
		Doctor: responses.AppointmentUser{
			ID:         appointment.DoctorData.ID,
			Name:       appointment.DoctorData.Name,
			Image:      appointment.DoctorData.Image,
			Speciality: appointment.DoctorData.Speciality,
			Fees:       appointment.DoctorData.Fees,
		},
	}
}

func ToAppointmentResponses(appointments []models.Appointment) []responses.Appointment {
	result := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		result = append(result, ToAppointmentResponse(&appointments[i]))
	}
	return result
}
