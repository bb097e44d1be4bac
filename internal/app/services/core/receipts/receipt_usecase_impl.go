package receipts

import (
	"context"
	"doctrack-service/internal/app/config"
	"doctrack-service/internal/app/contracts"
	"doctrack-service/internal/app/models"
	"doctrack-service/internal/pkg/constvars"
	"doctrack-service/internal/pkg/dto/responses"
	"doctrack-service/internal/pkg/exceptions"
	"doctrack-service/internal/pkg/utils"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
)

type receiptUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	Storage               contracts.Storage
	Clock                 clock.Clock
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	receiptUsecaseInstance contracts.ReceiptUsecase
	onceReceiptUsecase     sync.Once
)

func NewReceiptUsecase(
	appointmentRepository contracts.AppointmentRepository,
	storage contracts.Storage,
	clk clock.Clock,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ReceiptUsecase {
	onceReceiptUsecase.Do(func() {
		receiptUsecaseInstance = &receiptUsecase{
			AppointmentRepository: appointmentRepository,
			Storage:               storage,
			Clock:                 clk,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return receiptUsecaseInstance
}

// GetReceipt renders the receipt of a settled appointment, stores it and
// hands back a presigned download link.
func (uc *receiptUsecase) GetReceipt(ctx context.Context, principal models.Principal, appointmentID string) (*responses.Receipt, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("receiptUsecase.GetReceipt called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		uc.Log.Error("receiptUsecase.GetReceipt error calling AppointmentRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(appointmentID)
	}
	if !principal.IsAdmin() && !appointment.IsOwnedByPatient(principal.ID) {
		return nil, exceptions.ErrNotOwner(principal.ID, appointmentID)
	}
	if !appointment.Payment {
		return nil, exceptions.ErrPaymentNotSettled(appointmentID)
	}

	now := uc.Clock.Now().UTC()
	content, err := renderReceipt(appointment, now)
	if err != nil {
		uc.Log.Error("receiptUsecase.GetReceipt error rendering pdf",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrReceiptRender(err)
	}

	bucket := uc.InternalConfig.Minio.ReceiptBucketName
	objectName := fmt.Sprintf(constvars.ReceiptObjectNameFormat, appointment.ID)
	err = uc.Storage.PutObject(ctx, bucket, objectName, content, constvars.MIMEApplicationPDF)
	if err != nil {
		uc.Log.Error("receiptUsecase.GetReceipt error calling Storage.PutObject",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketNameKey, bucket),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.Minio.MinioPreSignedUrlObjectExpiryTimeInHours) * time.Hour
	url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, bucket, objectName, expiry)
	if err != nil {
		uc.Log.Error("receiptUsecase.GetReceipt error calling Storage.GetObjectUrlWithExpiryTime",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return &responses.Receipt{
		AppointmentID: appointment.ID,
		URL:           url,
		ExpiresAt:     now.Add(expiry),
	}, nil
}
