package payments

import (
	"context"
	"doctrack-service/internal/app/config"
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
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
)

type paymentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	PaymentGateway        contracts.PaymentGatewayService
	LockerService         contracts.LockerService
	Scheduler             contracts.Scheduler
	EventPublisher        contracts.EventPublisher
	Clock                 clock.Clock
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

func NewPaymentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	paymentGateway contracts.PaymentGatewayService,
	lockerService contracts.LockerService,
	scheduler contracts.Scheduler,
	eventPublisher contracts.EventPublisher,
	clk clock.Clock,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		paymentUsecaseInstance = &paymentUsecase{
			AppointmentRepository: appointmentRepository,
			PaymentGateway:        paymentGateway,
			LockerService:         lockerService,
			Scheduler:             scheduler,
			EventPublisher:        eventPublisher,
			Clock:                 clk,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return paymentUsecaseInstance
}

func (uc *paymentUsecase) mockCompletionDelay() time.Duration {
	return time.Duration(uc.InternalConfig.Payment.MockCompletionDelayInSeconds) * time.Second
}

func (uc *paymentUsecase) findOwned(ctx context.Context, principal models.Principal, appointmentID string) (*models.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(appointmentID)
	}
	if !principal.IsAdmin() && !appointment.IsOwnedByPatient(principal.ID) {
		utils.LogSecurityEvent(uc.Log, "payment_not_owner", utils.GetRequestID(ctx), "medium",
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.String(constvars.LoggingPrincipalIDKey, principal.ID),
		)
		return nil, exceptions.ErrNotOwner(principal.ID, appointmentID)
	}
	return appointment, nil
}

func checkPayable(appointment *models.Appointment) error {
	switch {
	case appointment.Cancelled:
		return exceptions.ErrAppointmentCancelled(appointment.ID)
	case appointment.Payment:
		return exceptions.ErrAlreadyPaid(appointment.ID)
	}
	return nil
}

// Initiate submits one payment attempt. The record's payment fields are only
// written after the gateway accepted the request.
func (uc *paymentUsecase) Initiate(ctx context.Context, principal models.Principal, request *requests.InitiatePayment) (*responses.InitiatePayment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("paymentUsecase.Initiate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingRequestKey, request),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	appointment, err := uc.findOwned(ctx, principal, request.AppointmentID)
	if err != nil {
		return nil, err
	}
	if err := checkPayable(appointment); err != nil {
		return nil, err
	}

	lockKey := fmt.Sprintf(constvars.LockKeyPaymentInitiateFormat, appointment.ID)
	lockTTL := time.Duration(uc.InternalConfig.Payment.InitiateLockTTLInSeconds) * time.Second
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		uc.Log.Error("paymentUsecase.Initiate error calling LockerService.TryLock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrPaymentInProgress(appointment.ID)
	}
	defer func() {
		if err := uc.LockerService.Unlock(context.WithoutCancel(ctx), lockKey, lockValue); err != nil {
			uc.Log.Warn("paymentUsecase.Initiate error releasing initiation lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err),
			)
		}
	}()

	// Another initiation or a webhook may have landed while we waited.
	appointment, err = uc.AppointmentRepository.FindByID(ctx, appointment.ID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(request.AppointmentID)
	}
	if err := checkPayable(appointment); err != nil {
		return nil, err
	}

	method := request.PaymentMethod
	if method == "" {
		method = constvars.PaymentMethodMerchant
	}
	reference := utils.GeneratePaymentReference(appointment.ID, uc.Clock.Now())

	acknowledgement, err := uc.PaymentGateway.Initiate(ctx, &requests.GatewayPayment{
		Channel:       method,
		PatientName:   appointment.PatientData.Name,
		PatientPhone:  appointment.PatientData.Phone,
		Amount:        appointment.Amount,
		Reference:     reference,
		AppointmentID: appointment.ID,
	})
	if err != nil {
		uc.Log.Error("paymentUsecase.Initiate error calling PaymentGateway.Initiate",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPaymentReferenceKey, reference),
			zap.Error(err),
		)
		return nil, err
	}

	attached, err := uc.AppointmentRepository.AttachPaymentAttempt(ctx, appointment.ID, models.PaymentAttempt{
		Reference:     reference,
		Method:        method,
		TransactionID: acknowledgement.TransactionID,
	}, uc.Clock.Now().UTC())
	if err != nil {
		uc.Log.Error("paymentUsecase.Initiate error calling AppointmentRepository.AttachPaymentAttempt",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !attached {
		current, err := uc.AppointmentRepository.FindByID(ctx, appointment.ID)
		if err == nil && current != nil {
			if err := checkPayable(current); err != nil {
				return nil, err
			}
		}
		return nil, exceptions.ErrServerProcess(fmt.Errorf("payment attempt %s not attached to appointment %s", reference, appointment.ID))
	}

	isMockMode := uc.PaymentGateway.IsMockMode()
	nextSteps := constvars.PaymentNextStepsLive
	if isMockMode {
		delay := uc.mockCompletionDelay()
		nextSteps = fmt.Sprintf(constvars.PaymentNextStepsMock, int(delay.Seconds()))
		uc.scheduleMockCompletion(requestID, appointment.ID, reference, acknowledgement.TransactionID, delay)
	}

	utils.LogBusinessEvent(uc.Log, "payment_initiated", requestID,
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
		zap.String(constvars.LoggingPaymentReferenceKey, reference),
		zap.String(constvars.LoggingPaymentMethodKey, method),
		zap.Bool(constvars.LoggingMockModeKey, isMockMode),
	)
	uc.publish(ctx, constvars.EventPaymentInitiated, events.PaymentEvent{
		AppointmentID:    appointment.ID,
		PaymentReference: reference,
		TransactionID:    acknowledgement.TransactionID,
		Status:           constvars.PaymentStatusPending,
		IsMockMode:       isMockMode,
	})

	message := acknowledgement.Message
	if message == "" {
		message = constvars.PaymentInitiatedSuccess
	}
	return &responses.InitiatePayment{
		AppointmentID:    appointment.ID,
		PaymentReference: reference,
		TransactionID:    acknowledgement.TransactionID,
		Status:           acknowledgement.Status,
		Message:          message,
		IsMockMode:       isMockMode,
		NextSteps:        nextSteps,
	}, nil
}

func (uc *paymentUsecase) scheduleMockCompletion(requestID, appointmentID, reference, transactionID string, delay time.Duration) {
	taskKey := fmt.Sprintf(constvars.TaskKeyMockCompletionFormat, appointmentID)
	uc.Scheduler.Schedule(taskKey, delay, func(ctx context.Context) {
		ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID)
		outcome, err := uc.completeMockPayment(ctx, reference, transactionID, "mock")
		if err != nil {
			uc.Log.Error("paymentUsecase.scheduleMockCompletion error completing mock payment",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingTaskKey, taskKey),
				zap.Error(err),
			)
			return
		}
		uc.Log.Info("paymentUsecase.scheduleMockCompletion mock payment completed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPaymentReferenceKey, reference),
			zap.String(constvars.LoggingReconcileOutcomeKey, outcome),
		)
	})
}

// completeMockPayment settles like any other path, except that a record
// cancelled meanwhile is left unpaid.
func (uc *paymentUsecase) completeMockPayment(ctx context.Context, reference, transactionID, source string) (string, error) {
	appointment, err := uc.AppointmentRepository.FindByPaymentReference(ctx, reference)
	if err != nil {
		return "", err
	}
	if appointment != nil && appointment.Cancelled && !appointment.Payment {
		return constvars.ReconcileOutcomeSkippedCancelled, nil
	}
	return uc.reconcile(ctx, reference, transactionID, source)
}

// Verify is the polling path. A gateway that is unreachable or not settled
// yet is reported as pending, never as an error.
func (uc *paymentUsecase) Verify(ctx context.Context, principal models.Principal, request *requests.VerifyPayment) (*responses.VerifyPayment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("paymentUsecase.Verify called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingRequestKey, request),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	appointment, err := uc.findOwned(ctx, principal, request.AppointmentID)
	if err != nil {
		return nil, err
	}
	if !appointment.HasPaymentReference(request.PaymentReference) {
		return nil, exceptions.ErrReferenceMismatch(request.PaymentReference, appointment.ID)
	}
	if appointment.Payment {
		return uc.buildVerifyResponse(appointment, request.PaymentReference, ""), nil
	}

	status, err := uc.PaymentGateway.CheckStatus(ctx, request.PaymentReference)
	if err != nil {
		uc.Log.Warn("paymentUsecase.Verify gateway status unavailable, reporting pending",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPaymentReferenceKey, request.PaymentReference),
			zap.Error(err),
		)
		return uc.buildVerifyResponse(appointment, request.PaymentReference, ""), nil
	}

	gatewayStatus := status.TransactionStatus
	if gatewayStatus == "" {
		gatewayStatus = status.Status
	}

	switch {
	case utils.IsSettledPaymentStatus(status.Status, status.TransactionStatus):
		settle := uc.reconcile
		if uc.PaymentGateway.IsMockMode() {
			settle = uc.completeMockPayment
		}
		if _, err := settle(ctx, request.PaymentReference, status.TransactionID, "poll"); err != nil {
			return nil, err
		}
	case utils.IsFailedPaymentStatus(status.Status, status.TransactionStatus):
		if _, err := uc.markFailed(ctx, request.PaymentReference, status.TransactionID, "poll"); err != nil {
			return nil, err
		}
	default:
		return uc.buildVerifyResponse(appointment, request.PaymentReference, gatewayStatus), nil
	}

	appointment, err = uc.AppointmentRepository.FindByID(ctx, appointment.ID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(request.AppointmentID)
	}
	return uc.buildVerifyResponse(appointment, request.PaymentReference, gatewayStatus), nil
}

func (uc *paymentUsecase) buildVerifyResponse(appointment *models.Appointment, reference, gatewayStatus string) *responses.VerifyPayment {
	return &responses.VerifyPayment{
		AppointmentID:     appointment.ID,
		PaymentReference:  reference,
		Paid:              appointment.Payment,
		PaymentStatus:     appointment.PaymentStatus,
		TransactionStatus: appointment.TransactionStatus,
		GatewayStatus:     gatewayStatus,
		PaymentDate:       appointment.PaymentDate,
		IsMockMode:        uc.PaymentGateway.IsMockMode(),
	}
}

// HandleJengaWebhook is the webhook path. Every notification that reaches the
// store gets an outcome; only a store failure is an error.
func (uc *paymentUsecase) HandleJengaWebhook(ctx context.Context, request *requests.JengaWebhook) (string, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("paymentUsecase.HandleJengaWebhook called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentReferenceKey, request.Reference),
		zap.String(constvars.LoggingTransactionStatus, request.TransactionStatus),
	)

	var (
		outcome string
		err     error
	)
	switch {
	case request.Reference == "":
		outcome = constvars.ReconcileOutcomeUnknownReference
	case utils.IsSettledPaymentStatus(request.TransactionStatus):
		outcome, err = uc.reconcile(ctx, request.Reference, request.TransactionID, "webhook")
	case utils.IsFailedPaymentStatus(request.TransactionStatus):
		outcome, err = uc.markFailed(ctx, request.Reference, request.TransactionID, "webhook")
	case utils.IsPendingPaymentStatus(request.TransactionStatus):
		outcome = constvars.ReconcileOutcomePending
	default:
		outcome = constvars.ReconcileOutcomeIgnoredStatus
	}
	if err != nil {
		uc.Log.Error("paymentUsecase.HandleJengaWebhook error reconciling notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}

	uc.Log.Info("paymentUsecase.HandleJengaWebhook processed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentReferenceKey, request.Reference),
		zap.String(constvars.LoggingReconcileOutcomeKey, outcome),
	)
	return outcome, nil
}

// reconcile applies the single settle transition shared by the webhook, the
// poll and the mock completion. Whichever arrives first wins.
func (uc *paymentUsecase) reconcile(ctx context.Context, reference, transactionID, source string) (string, error) {
	requestID := utils.GetRequestID(ctx)

	applied, err := uc.AppointmentRepository.MarkPaid(ctx, reference, transactionID, uc.Clock.Now().UTC())
	if err != nil {
		return "", err
	}
	if !applied {
		appointment, err := uc.AppointmentRepository.FindByPaymentReference(ctx, reference)
		if err != nil {
			return "", err
		}
		if appointment == nil {
			utils.LogSecurityEvent(uc.Log, "payment_unknown_reference", requestID, "low",
				zap.String(constvars.LoggingPaymentReferenceKey, reference),
			)
			return constvars.ReconcileOutcomeUnknownReference, nil
		}
		return constvars.ReconcileOutcomeAlreadyPaid, nil
	}

	utils.LogBusinessEvent(uc.Log, "payment_reconciled", requestID,
		zap.String(constvars.LoggingPaymentReferenceKey, reference),
		zap.String(constvars.LoggingTransactionIDKey, transactionID),
		zap.String("source", source),
	)
	uc.publish(ctx, constvars.EventPaymentPaid, events.PaymentEvent{
		PaymentReference: reference,
		TransactionID:    transactionID,
		Status:           constvars.PaymentStatusPaid,
		Source:           source,
		IsMockMode:       uc.PaymentGateway.IsMockMode(),
	})
	return constvars.ReconcileOutcomeApplied, nil
}

// markFailed never overrides a settled record.
func (uc *paymentUsecase) markFailed(ctx context.Context, reference, transactionID, source string) (string, error) {
	appointment, err := uc.AppointmentRepository.FindByPaymentReference(ctx, reference)
	if err != nil {
		return "", err
	}
	if appointment == nil {
		return constvars.ReconcileOutcomeUnknownReference, nil
	}
	if appointment.Payment {
		return constvars.ReconcileOutcomeAlreadyPaid, nil
	}

	marked, err := uc.AppointmentRepository.MarkPaymentFailed(ctx, reference, transactionID, uc.Clock.Now().UTC())
	if err != nil {
		return "", err
	}
	if !marked {
		return constvars.ReconcileOutcomeIgnoredStatus, nil
	}

	uc.publish(ctx, constvars.EventPaymentFailed, events.PaymentEvent{
		AppointmentID:    appointment.ID,
		PaymentReference: reference,
		TransactionID:    transactionID,
		Status:           constvars.PaymentStatusFailed,
		Source:           source,
		IsMockMode:       uc.PaymentGateway.IsMockMode(),
	})
	return constvars.ReconcileOutcomeMarkedFailed, nil
}

func (uc *paymentUsecase) publish(ctx context.Context, eventType string, payload events.PaymentEvent) {
	if err := uc.EventPublisher.Publish(ctx, eventType, payload); err != nil {
		uc.Log.Warn("paymentUsecase.publish error publishing event",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingEventTypeKey, eventType),
			zap.Error(err),
		)
	}
}
