package requests

type BookAppointment struct {
	DoctorID string `json:"docId" validate:"required"`
	SlotDate string `json:"slotDate" validate:"required,slot_date"`
	SlotTime string `json:"slotTime" validate:"required,slot_time"`
}
