package controllers

import (
	"context"
	"doctrack-service/internal/app/config"
	"doctrack-service/internal/app/contracts"
	"doctrack-service/internal/pkg/constvars"
	"doctrack-service/internal/pkg/dto/requests"
	"doctrack-service/internal/pkg/dto/responses"
	"doctrack-service/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
	InternalConfig     *config.InternalConfig
}

var (
	appointmentControllerInstance *AppointmentController
	onceAppointmentController     sync.Once
)

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase, internalConfig *config.InternalConfig) *AppointmentController {
	onceAppointmentController.Do(func() {
		appointmentControllerInstance = &AppointmentController{
			Log:                logger,
			AppointmentUsecase: appointmentUsecase,
			InternalConfig:     internalConfig,
		}
	})
	return appointmentControllerInstance
}

func (ctrl *AppointmentController) timeout() time.Duration {
	return requestTimeout(ctrl.InternalConfig.App.RequestTimeoutInSeconds)
}

func (ctrl *AppointmentController) Book(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, ok := requireRequestID(ctrl.Log, w, r)
	if !ok {
		return
	}
	principal, ok := requirePrincipal(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.BookAppointment)
	if err := utils.ParseJSONBody(r, request); err != nil {
		ctrl.Log.Error("Failed to parse book appointment request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, "JSON parsing"),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.timeout())
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.Book(ctx, principal, request)
	if err != nil {
		ctrl.Log.Error("Failed to book appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("Appointment booked",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AppointmentBookedSuccess, appointment)
}

// Cancel serves the patient, doctor and admin cancel routes. Ownership rules
// per role live in the usecase.
func (ctrl *AppointmentController) Cancel(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requireRequestID(ctrl.Log, w, r)
	if !ok {
		return
	}
	principal, ok := requirePrincipal(ctrl.Log, w, r)
	if !ok {
		return
	}
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.timeout())
	defer cancel()

	if err := ctrl.AppointmentUsecase.Cancel(ctx, principal, appointmentID); err != nil {
		ctrl.Log.Error("Failed to cancel appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentCancelledSuccess, nil)
}

func (ctrl *AppointmentController) Complete(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requireRequestID(ctrl.Log, w, r)
	if !ok {
		return
	}
	principal, ok := requirePrincipal(ctrl.Log, w, r)
	if !ok {
		return
	}
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.timeout())
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.Complete(ctx, principal, appointmentID)
	if err != nil {
		ctrl.Log.Error("Failed to complete appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentCompletedSuccess, appointment)
}

func (ctrl *AppointmentController) list(w http.ResponseWriter, r *http.Request, fetch func(ctx context.Context) ([]responses.Appointment, error)) {
	if _, ok := requireRequestID(ctrl.Log, w, r); !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.timeout())
	defer cancel()

	appointments, err := fetch(ctx)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentListSuccess, appointments)
}

func (ctrl *AppointmentController) ListForPatient(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(ctrl.Log, w, r)
	if !ok {
		return
	}
	ctrl.list(w, r, func(ctx context.Context) ([]responses.Appointment, error) {
		return ctrl.AppointmentUsecase.ListForPatient(ctx, principal.ID)
	})
}

func (ctrl *AppointmentController) ListForDoctor(w http.ResponseWriter, r *http.Request) {
	principal, ok := requirePrincipal(ctrl.Log, w, r)
	if !ok {
		return
	}
	ctrl.list(w, r, func(ctx context.Context) ([]responses.Appointment, error) {
		return ctrl.AppointmentUsecase.ListForDoctor(ctx, principal.ID)
	})
}

func (ctrl *AppointmentController) ListAll(w http.ResponseWriter, r *http.Request) {
	ctrl.list(w, r, ctrl.AppointmentUsecase.ListAll)
}

func (ctrl *AppointmentController) DoctorDashboard(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireRequestID(ctrl.Log, w, r); !ok {
		return
	}
	principal, ok := requirePrincipal(ctrl.Log, w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.timeout())
	defer cancel()

	dashboard, err := ctrl.AppointmentUsecase.DoctorDashboard(ctx, principal.ID)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DashboardSuccess, dashboard)
}

func (ctrl *AppointmentController) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireRequestID(ctrl.Log, w, r); !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.timeout())
	defer cancel()

	dashboard, err := ctrl.AppointmentUsecase.AdminDashboard(ctx)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DashboardSuccess, dashboard)
}
