package controllers

import (
	"context"
	"doctrack-service/internal/app/config"
	"doctrack-service/internal/app/contracts"
	"doctrack-service/internal/pkg/constvars"
	"doctrack-service/internal/pkg/dto/requests"
	"doctrack-service/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

type PaymentController struct {
	Log            *zap.Logger
	PaymentUsecase contracts.PaymentUsecase
	InternalConfig *config.InternalConfig
}

var (
	paymentControllerInstance *PaymentController
	oncePaymentController     sync.Once
)

func NewPaymentController(logger *zap.Logger, paymentUsecase contracts.PaymentUsecase, internalConfig *config.InternalConfig) *PaymentController {
	oncePaymentController.Do(func() {
		paymentControllerInstance = &PaymentController{
			Log:            logger,
			PaymentUsecase: paymentUsecase,
			InternalConfig: internalConfig,
		}
	})
	return paymentControllerInstance
}

func (ctrl *PaymentController) Initiate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, ok := requireRequestID(ctrl.Log, w, r)
	if !ok {
		return
	}
	principal, ok := requirePrincipal(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.InitiatePayment)
	if err := utils.ParseJSONBody(r, request); err != nil {
		ctrl.Log.Error("Failed to parse initiate payment request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, "JSON parsing"),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig.App.RequestTimeoutInSeconds))
	defer cancel()

	result, err := ctrl.PaymentUsecase.Initiate(ctx, principal, request)
	if err != nil {
		ctrl.Log.Error("Failed to initiate payment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("Payment initiated",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, result.AppointmentID),
		zap.String(constvars.LoggingPaymentReferenceKey, result.PaymentReference),
		zap.Bool(constvars.LoggingMockModeKey, result.IsMockMode),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PaymentInitiatedSuccess, result)
}

// Verify answers 200 once the appointment is paid and 202 while the
// processor has not settled the reference yet.
func (ctrl *PaymentController) Verify(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requireRequestID(ctrl.Log, w, r)
	if !ok {
		return
	}
	principal, ok := requirePrincipal(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.VerifyPayment)
	if err := utils.ParseJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig.App.RequestTimeoutInSeconds))
	defer cancel()

	result, err := ctrl.PaymentUsecase.Verify(ctx, principal, request)
	if err != nil {
		ctrl.Log.Error("Failed to verify payment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPaymentReferenceKey, request.PaymentReference),
			zap.Error(err),
		)
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	if !result.Paid {
		utils.BuildSuccessResponse(w, constvars.StatusAccepted, constvars.PaymentPendingMessage, result)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PaymentVerifiedSuccess, result)
}
