package contracts

import (
	"context"
	"doctrack-service/internal/app/models"
	"doctrack-service/internal/pkg/dto/responses"
)

type ReceiptUsecase interface {
	GetReceipt(ctx context.Context, principal models.Principal, appointmentID string) (*responses.Receipt, error)
}
