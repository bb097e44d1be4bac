package contracts

import (
	"context"
	"doctrack-service/internal/app/models"
	"doctrack-service/internal/pkg/dto/requests"
	"doctrack-service/internal/pkg/dto/responses"
	"time"
)

type AppointmentFilter struct {
	PatientID string
	DoctorID  string
	Limit     int64
}

// AppointmentRepository stores appointment records. Every Mark*/Attach* method is
// one conditional update and reports whether it changed the record; a false
// result means the guard did not hold and nothing was written.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByPaymentReference(ctx context.Context, reference string) (*models.Appointment, error)
	FindAll(ctx context.Context, filter AppointmentFilter) ([]models.Appointment, error)
	Count(ctx context.Context) (int64, error)
	MarkCancelled(ctx context.Context, appointmentID, cancelledBy string, at time.Time) (bool, error)
	MarkCompleted(ctx context.Context, appointmentID, doctorID string, at time.Time) (bool, error)
	AttachPaymentAttempt(ctx context.Context, appointmentID string, attempt models.PaymentAttempt, at time.Time) (bool, error)
	MarkPaid(ctx context.Context, reference, transactionID string, at time.Time) (bool, error)
	MarkPaymentFailed(ctx context.Context, reference, transactionID string, at time.Time) (bool, error)
}

type AppointmentUsecase interface {
	Book(ctx context.Context, principal models.Principal, request *requests.BookAppointment) (*responses.Appointment, error)
	Cancel(ctx context.Context, principal models.Principal, appointmentID string) error
	Complete(ctx context.Context, principal models.Principal, appointmentID string) (*responses.Appointment, error)
	ListForPatient(ctx context.Context, patientID string) ([]responses.Appointment, error)
	ListForDoctor(ctx context.Context, doctorID string) ([]responses.Appointment, error)
	ListAll(ctx context.Context) ([]responses.Appointment, error)
	DoctorDashboard(ctx context.Context, doctorID string) (*responses.DoctorDashboard, error)
	AdminDashboard(ctx context.Context) (*responses.AdminDashboard, error)
}
