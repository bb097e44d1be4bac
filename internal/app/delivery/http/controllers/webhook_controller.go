package controllers

import (
	"context"
	"doctrack-service/internal/app/config"
	"doctrack-service/internal/app/contracts"
	"doctrack-service/internal/pkg/constvars"
	"doctrack-service/internal/pkg/dto/requests"
	"doctrack-service/internal/pkg/dto/responses"
	"doctrack-service/internal/pkg/exceptions"
	"doctrack-service/internal/pkg/utils"
	"net/http"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type WebhookController struct {
	Log            *zap.Logger
	PaymentUsecase contracts.PaymentUsecase
	InternalConfig *config.InternalConfig
}

var (
	webhookControllerInstance *WebhookController
	onceWebhookController     sync.Once
)

func NewWebhookController(logger *zap.Logger, paymentUsecase contracts.PaymentUsecase, internalConfig *config.InternalConfig) *WebhookController {
	onceWebhookController.Do(func() {
		webhookControllerInstance = &WebhookController{
			Log:            logger,
			PaymentUsecase: paymentUsecase,
			InternalConfig: internalConfig,
		}
	})
	return webhookControllerInstance
}

// HandleJenga acknowledges every notification it can make sense of with 200 so
// the processor stops retrying. Only a failure to persist the outcome is
// surfaced, which lets the processor redeliver.
func (ctrl *WebhookController) HandleJenga(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requireRequestID(ctrl.Log, w, r)
	if !ok {
		return
	}

	if token := ctrl.InternalConfig.Webhook.JengaToken; token != "" {
		if !utils.SecureCompare(r.Header.Get(constvars.HeaderWebhookToken), token) {
			utils.LogSecurityEvent(ctrl.Log, "webhook_token_mismatch", requestID, "medium",
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			)
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidWebhookToken())
			return
		}
	}

	acknowledgement := responses.WebhookAcknowledgement{Status: constvars.WebhookProcessedSuccess}

	request := new(requests.JengaWebhook)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Warn("Ignoring malformed webhook payload",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildRawJSONResponse(w, constvars.StatusOK, acknowledgement)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig.App.RequestTimeoutInSeconds))
	defer cancel()

	outcome, err := ctrl.PaymentUsecase.HandleJengaWebhook(ctx, request)
	if err != nil {
		ctrl.Log.Error("Failed to process webhook",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPaymentReferenceKey, request.Reference),
			zap.Error(err),
		)
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("Webhook processed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentReferenceKey, request.Reference),
		zap.String(constvars.LoggingReconcileOutcomeKey, outcome),
	)
	utils.BuildRawJSONResponse(w, constvars.StatusOK, acknowledgement)
}
