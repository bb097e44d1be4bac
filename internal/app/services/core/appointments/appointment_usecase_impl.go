package appointments

import (
	"context"
	"doctrack-service/internal/app/contracts"
	"doctrack-service/internal/app/models"
	"doctrack-service/internal/app/services/shared/events"
	"doctrack-service/internal/pkg/constvars"
	"doctrack-service/internal/pkg/dto/requests"
	"doctrack-service/internal/pkg/dto/responses"
	"doctrack-service/internal/pkg/exceptions"
	"doctrack-service/internal/pkg/utils"
	"fmt"
	"sync"

	"github.com/benbjohnson/clock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	DoctorRepository      contracts.DoctorRepository
	PatientRepository     contracts.PatientRepository
	SlotUsecase           contracts.SlotUsecase
	EventPublisher        contracts.EventPublisher
	Scheduler             contracts.Scheduler
	Clock                 clock.Clock
	Log                   *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	doctorRepository contracts.DoctorRepository,
	patientRepository contracts.PatientRepository,
	slotUsecase contracts.SlotUsecase,
	eventPublisher contracts.EventPublisher,
	scheduler contracts.Scheduler,
	clk clock.Clock,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository: appointmentRepository,
			DoctorRepository:      doctorRepository,
			PatientRepository:     patientRepository,
			SlotUsecase:           slotUsecase,
			EventPublisher:        eventPublisher,
			Scheduler:             scheduler,
			Clock:                 clk,
			Log:                   logger,
		}
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) Book(ctx context.Context, principal models.Principal, request *requests.BookAppointment) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.Book called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, principal.ID),
		zap.Any(constvars.LoggingRequestKey, request),
	)

	if principal.ID == "" {
		return nil, exceptions.ErrPrincipalMissing()
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	request.SlotDate = utils.CanonicalSlotDate(request.SlotDate)
	request.SlotTime = utils.CanonicalSlotTime(request.SlotTime)

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Book error calling DoctorRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(request.DoctorID)
	}
	if !doctor.Available {
		return nil, exceptions.ErrDoctorUnavailable(request.DoctorID)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, principal.ID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Book error calling PatientRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(principal.ID)
	}

	err = uc.SlotUsecase.Reserve(ctx, doctor.ID, request.SlotDate, request.SlotTime)
	if err != nil {
		uc.Log.Info("appointmentUsecase.Book slot not reserved",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorCodeKey, exceptions.Code(err)),
		)
		return nil, err
	}

	now := uc.Clock.Now().UTC()
	appointment := &models.Appointment{
		ID:            primitive.NewObjectID().Hex(),
		PatientID:     patient.ID,
		DoctorID:      doctor.ID,
		SlotDate:      request.SlotDate,
		SlotTime:      request.SlotTime,
		PatientData:   patient.Snapshot(),
		DoctorData:    doctor.Snapshot(),
		Amount:        doctor.Fees,
		Date:          now.UnixMilli(),
		PaymentStatus: constvars.PaymentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.AppointmentRepository.Create(ctx, appointment); err != nil {
		uc.Log.Error("appointmentUsecase.Book error calling AppointmentRepository.Create, releasing slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if releaseErr := uc.SlotUsecase.Release(ctx, doctor.ID, request.SlotDate, request.SlotTime); releaseErr != nil {
			uc.Log.Error("appointmentUsecase.Book error releasing slot after failed create",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(releaseErr),
			)
		}
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "appointment_booked", requestID,
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
		zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
	)
	uc.publish(ctx, constvars.EventAppointmentBooked, appointment, principal)

	response := ToAppointmentResponse(appointment)
	return &response, nil
}

func (uc *appointmentUsecase) Cancel(ctx context.Context, principal models.Principal, appointmentID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.Cancel called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingPrincipalIDKey, principal.ID),
		zap.String(constvars.LoggingPrincipalRoleKey, principal.Role),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Cancel error calling AppointmentRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotFound(appointmentID)
	}
	if !canCancel(principal, appointment) {
		utils.LogSecurityEvent(uc.Log, "appointment_cancel_not_owner", requestID, "medium",
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.String(constvars.LoggingPrincipalIDKey, principal.ID),
		)
		return exceptions.ErrNotOwner(principal.ID, appointmentID)
	}
	if appointment.Cancelled {
		return exceptions.ErrAlreadyCancelled(appointmentID)
	}
	if appointment.IsCompleted {
		return exceptions.ErrAlreadyCompleted(appointmentID)
	}

	cancelled, err := uc.AppointmentRepository.MarkCancelled(ctx, appointmentID, principal.Role, uc.Clock.Now().UTC())
	if err != nil {
		uc.Log.Error("appointmentUsecase.Cancel error calling AppointmentRepository.MarkCancelled",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if !cancelled {
		// Lost a race with another cancel or a completion.
		current, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
		if err == nil && current != nil && current.IsCompleted && !current.Cancelled {
			return exceptions.ErrAlreadyCompleted(appointmentID)
		}
		return exceptions.ErrAlreadyCancelled(appointmentID)
	}

	// A pending mock settlement has no money behind it once the record is cancelled.
	taskKey := fmt.Sprintf(constvars.TaskKeyMockCompletionFormat, appointmentID)
	if uc.Scheduler.Cancel(taskKey) {
		uc.Log.Info("appointmentUsecase.Cancel dropped pending mock completion",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTaskKey, taskKey),
		)
	}

	err = uc.SlotUsecase.Release(ctx, appointment.DoctorID, appointment.SlotDate, appointment.SlotTime)
	if err != nil {
		uc.Log.Warn("appointmentUsecase.Cancel slot release failed, cancellation kept",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, appointment.DoctorID),
			zap.String(constvars.LoggingSlotDateKey, appointment.SlotDate),
			zap.String(constvars.LoggingSlotTimeKey, appointment.SlotTime),
			zap.Error(err),
		)
	}

	utils.LogBusinessEvent(uc.Log, "appointment_cancelled", requestID,
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingPrincipalRoleKey, principal.Role),
	)
	uc.publish(ctx, constvars.EventAppointmentCancelled, appointment, principal)
	return nil
}

func canCancel(principal models.Principal, appointment *models.Appointment) bool {
	switch {
	case principal.IsAdmin():
		return true
	case principal.IsPatient():
		return appointment.IsOwnedByPatient(principal.ID)
	case principal.IsDoctor():
		return appointment.IsOwnedByDoctor(principal.ID)
	default:
		return false
	}
}

func (uc *appointmentUsecase) Complete(ctx context.Context, principal models.Principal, appointmentID string) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.Complete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingDoctorIDKey, principal.ID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Complete error calling AppointmentRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if err := checkCompletable(principal, appointmentID, appointment); err != nil {
		return nil, err
	}

	completed, err := uc.AppointmentRepository.MarkCompleted(ctx, appointmentID, principal.ID, uc.Clock.Now().UTC())
	if err != nil {
		uc.Log.Error("appointmentUsecase.Complete error calling AppointmentRepository.MarkCompleted",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	appointment, err = uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if !completed {
		if err := checkCompletable(principal, appointmentID, appointment); err != nil {
			return nil, err
		}
		return nil, exceptions.ErrAlreadyCompleted(appointmentID)
	}

	utils.LogBusinessEvent(uc.Log, "appointment_completed", requestID,
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	uc.publish(ctx, constvars.EventAppointmentCompleted, appointment, principal)

	response := ToAppointmentResponse(appointment)
	return &response, nil
}

func checkCompletable(principal models.Principal, appointmentID string, appointment *models.Appointment) error {
	switch {
	case appointment == nil:
		return exceptions.ErrAppointmentNotFound(appointmentID)
	case !appointment.IsOwnedByDoctor(principal.ID):
		return exceptions.ErrNotOwner(principal.ID, appointmentID)
	case appointment.Cancelled:
		return exceptions.ErrAppointmentCancelled(appointmentID)
	case appointment.IsCompleted:
		return exceptions.ErrAlreadyCompleted(appointmentID)
	case !appointment.Payment:
		return exceptions.ErrPaymentNotSettled(appointmentID)
	}
	return nil
}

func (uc *appointmentUsecase) list(ctx context.Context, filter contracts.AppointmentFilter) ([]responses.Appointment, error) {
	appointments, err := uc.AppointmentRepository.FindAll(ctx, filter)
	if err != nil {
		uc.Log.Error("appointmentUsecase.list error calling AppointmentRepository.FindAll",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}
	return ToAppointmentResponses(appointments), nil
}

func (uc *appointmentUsecase) ListForPatient(ctx context.Context, patientID string) ([]responses.Appointment, error) {
	return uc.list(ctx, contracts.AppointmentFilter{PatientID: patientID})
}

func (uc *appointmentUsecase) ListForDoctor(ctx context.Context, doctorID string) ([]responses.Appointment, error) {
	return uc.list(ctx, contracts.AppointmentFilter{DoctorID: doctorID})
}

func (uc *appointmentUsecase) ListAll(ctx context.Context) ([]responses.Appointment, error) {
	return uc.list(ctx, contracts.AppointmentFilter{})
}

func (uc *appointmentUsecase) DoctorDashboard(ctx context.Context, doctorID string) (*responses.DoctorDashboard, error) {
	uc.Log.Info("appointmentUsecase.DoctorDashboard called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	appointments, err := uc.AppointmentRepository.FindAll(ctx, contracts.AppointmentFilter{DoctorID: doctorID})
	if err != nil {
		return nil, err
	}

	dashboard := &responses.DoctorDashboard{
		Appointments: len(appointments),
	}
	patients := make(map[string]struct{})
	for i := range appointments {
		if appointments[i].Payment || appointments[i].IsCompleted {
			dashboard.Earnings += appointments[i].Amount
		}
		patients[appointments[i].PatientID] = struct{}{}
	}
	dashboard.Patients = len(patients)

	latest := appointments
	if len(latest) > constvars.DashboardLatestAppointmentsLimit {
		latest = latest[:constvars.DashboardLatestAppointmentsLimit]
	}
	dashboard.LatestAppointments = ToAppointmentResponses(latest)
	return dashboard, nil
}

func (uc *appointmentUsecase) AdminDashboard(ctx context.Context) (*responses.AdminDashboard, error) {
	uc.Log.Info("appointmentUsecase.AdminDashboard called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)

	doctors, err := uc.DoctorRepository.Count(ctx)
	if err != nil {
		return nil, err
	}
	patients, err := uc.PatientRepository.Count(ctx)
	if err != nil {
		return nil, err
	}
	total, err := uc.AppointmentRepository.Count(ctx)
	if err != nil {
		return nil, err
	}
	latest, err := uc.AppointmentRepository.FindAll(ctx, contracts.AppointmentFilter{Limit: constvars.DashboardLatestAppointmentsLimit})
	if err != nil {
		return nil, err
	}

	return &responses.AdminDashboard{
		Doctors:            doctors,
		Patients:           patients,
		Appointments:       total,
		LatestAppointments: ToAppointmentResponses(latest),
	}, nil
}

// publish is best effort, a broker outage never fails the booking flow.
func (uc *appointmentUsecase) publish(ctx context.Context, eventType string, appointment *models.Appointment, principal models.Principal) {
	err := uc.EventPublisher.Publish(ctx, eventType, events.AppointmentEvent{
		AppointmentID: appointment.ID,
		PatientID:     appointment.PatientID,
		DoctorID:      appointment.DoctorID,
		SlotDate:      appointment.SlotDate,
		SlotTime:      appointment.SlotTime,
		Amount:        appointment.Amount,
		ActorID:       principal.ID,
		ActorRole:     principal.Role,
	})
	if err != nil {
		uc.Log.Warn("appointmentUsecase.publish error publishing event",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingEventTypeKey, eventType),
			zap.Error(err),
		)
	}
}
