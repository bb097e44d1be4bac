package controllers

import (
	"context"
	"doctrack-service/internal/app/config"
	"doctrack-service/internal/app/contracts"
	"doctrack-service/internal/pkg/constvars"
	"doctrack-service/internal/pkg/utils"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReceiptController struct {
	Log            *zap.Logger
	ReceiptUsecase contracts.ReceiptUsecase
	InternalConfig *config.InternalConfig
}

var (
	receiptControllerInstance *ReceiptController
	onceReceiptController     sync.Once
)

func NewReceiptController(logger *zap.Logger, receiptUsecase contracts.ReceiptUsecase, internalConfig *config.InternalConfig) *ReceiptController {
	onceReceiptController.Do(func() {
		receiptControllerInstance = &ReceiptController{
			Log:            logger,
			ReceiptUsecase: receiptUsecase,
			InternalConfig: internalConfig,
		}
	})
	return receiptControllerInstance
}

func (ctrl *ReceiptController) GetReceipt(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requireRequestID(ctrl.Log, w, r)
	if !ok {
		return
	}
	principal, ok := requirePrincipal(ctrl.Log, w, r)
	if !ok {
		return
	}
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig.App.RequestTimeoutInSeconds))
	defer cancel()

	receipt, err := ctrl.ReceiptUsecase.GetReceipt(ctx, principal, appointmentID)
	if err != nil {
		ctrl.Log.Error("Failed to generate receipt",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		respondUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReceiptGeneratedSuccess, receipt)
}
