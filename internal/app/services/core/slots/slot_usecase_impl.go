package slots

import (
	"context"
	"doctrack-service/internal/app/contracts"
	"doctrack-service/internal/app/models"
	"doctrack-service/internal/pkg/constvars"
	"doctrack-service/internal/pkg/exceptions"
	"doctrack-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type slotUsecase struct {
	DoctorRepository contracts.DoctorRepository
	Log              *zap.Logger
}

func NewSlotUsecase(doctorRepository contracts.DoctorRepository, logger *zap.Logger) contracts.SlotUsecase {
	return &slotUsecase{
		DoctorRepository: doctorRepository,
		Log:              logger,
	}
}

func validateSlot(doctorID, slotDate, slotTime string) error {
	switch {
	case doctorID == "":
		return exceptions.ErrInvalidInput("doctor id is required")
	case !utils.IsValidSlotDate(slotDate):
		return exceptions.ErrInvalidInput("slot date must look like day_month_year")
	case !utils.IsValidSlotTime(slotTime):
		return exceptions.ErrInvalidInput("slot time must look like 10:00 AM")
	}
	return nil
}

// Reserve appends the slot through a single conditional update. Labels are
// stored in canonical form so every spelling of a slot hits the same entry.
// When the update matches nothing the doctor is re-read only to pick the right error.
func (uc *slotUsecase) Reserve(ctx context.Context, doctorID, slotDate, slotTime string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("slotUsecase.Reserve called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingSlotDateKey, slotDate),
		zap.String(constvars.LoggingSlotTimeKey, slotTime),
	)

	if err := validateSlot(doctorID, slotDate, slotTime); err != nil {
		return err
	}
	slotDate, slotTime = utils.CanonicalSlotDate(slotDate), utils.CanonicalSlotTime(slotTime)

	reserved, err := uc.DoctorRepository.PushBookedSlot(ctx, doctorID, slotDate, slotTime)
	if err != nil {
		uc.Log.Error("slotUsecase.Reserve error calling DoctorRepository.PushBookedSlot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if reserved {
		uc.Log.Info("slotUsecase.Reserve slot reserved",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
		)
		return nil
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return err
	}
	switch {
	case doctor == nil:
		return exceptions.ErrDoctorNotFound(doctorID)
	case !doctor.Available:
		return exceptions.ErrDoctorUnavailable(doctorID)
	default:
		uc.Log.Info("slotUsecase.Reserve slot already taken",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
		)
		return exceptions.ErrSlotTaken(doctorID, slotDate, slotTime)
	}
}

// Release never fails because the slot was already gone.
func (uc *slotUsecase) Release(ctx context.Context, doctorID, slotDate, slotTime string) error {
	slotDate, slotTime = utils.CanonicalSlotDate(slotDate), utils.CanonicalSlotTime(slotTime)
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("slotUsecase.Release called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingSlotDateKey, slotDate),
		zap.String(constvars.LoggingSlotTimeKey, slotTime),
	)

	released, err := uc.DoctorRepository.PullBookedSlot(ctx, doctorID, slotDate, slotTime)
	if err != nil {
		uc.Log.Error("slotUsecase.Release error calling DoctorRepository.PullBookedSlot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if !released {
		uc.Log.Info("slotUsecase.Release slot was not booked",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
	}
	return nil
}

func (uc *slotUsecase) GetDoctorSlots(ctx context.Context, doctorID string) (*models.Doctor, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(doctorID)
	}
	if doctor.SlotsBooked == nil {
		doctor.SlotsBooked = map[string][]string{}
	}
	return doctor, nil
}

// ChangeAvailability flips the available flag and leaves the ledger alone.
func (uc *slotUsecase) ChangeAvailability(ctx context.Context, doctorID string) (*models.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("slotUsecase.ChangeAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctor, err := uc.DoctorRepository.ToggleAvailability(ctx, doctorID)
	if err != nil {
		uc.Log.Error("slotUsecase.ChangeAvailability error calling DoctorRepository.ToggleAvailability",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(doctorID)
	}
	return doctor, nil
}
