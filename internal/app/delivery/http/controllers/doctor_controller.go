package controllers

import (
	"context"
	"doctrack-service/internal/app/config"
	"doctrack-service/internal/app/contracts"
	"doctrack-service/internal/pkg/constvars"
	"doctrack-service/internal/pkg/dto/responses"
	"doctrack-service/internal/pkg/utils"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DoctorController struct {
	Log            *zap.Logger
	SlotUsecase    contracts.SlotUsecase
	InternalConfig *config.InternalConfig
}

var (
	doctorControllerInstance *DoctorController
	onceDoctorController     sync.Once
)

func NewDoctorController(logger *zap.Logger, slotUsecase contracts.SlotUsecase, internalConfig *config.InternalConfig) *DoctorController {
	onceDoctorController.Do(func() {
		doctorControllerInstance = &DoctorController{
			Log:            logger,
			SlotUsecase:    slotUsecase,
			InternalConfig: internalConfig,
		}
	})
	return doctorControllerInstance
}

func (ctrl *DoctorController) GetSlots(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireRequestID(ctrl.Log, w, r); !ok {
		return
	}
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig.App.RequestTimeoutInSeconds))
	defer cancel()

	doctor, err := ctrl.SlotUsecase.GetDoctorSlots(ctx, doctorID)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorSlotsSuccess, responses.DoctorSlots{
		DoctorID:    doctor.ID,
		Available:   doctor.Available,
		Fees:        doctor.Fees,
		SlotsBooked: doctor.SlotsBooked,
	})
}

func (ctrl *DoctorController) ChangeAvailability(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requireRequestID(ctrl.Log, w, r)
	if !ok {
		return
	}
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig.App.RequestTimeoutInSeconds))
	defer cancel()

	doctor, err := ctrl.SlotUsecase.ChangeAvailability(ctx, doctorID)
	if err != nil {
		ctrl.Log.Error("Failed to change doctor availability",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorAvailabilityChanged, responses.DoctorAvailability{
		DoctorID:  doctor.ID,
		Available: doctor.Available,
	})
}
