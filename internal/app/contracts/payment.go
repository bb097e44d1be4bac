package contracts

import (
	"context"
	"doctrack-service/internal/app/models"
	"doctrack-service/internal/pkg/dto/requests"
	"doctrack-service/internal/pkg/dto/responses"
)

type PaymentUsecase interface {
	Initiate(ctx context.Context, principal models.Principal, request *requests.InitiatePayment) (*responses.InitiatePayment, error)
	Verify(ctx context.Context, principal models.Principal, request *requests.VerifyPayment) (*responses.VerifyPayment, error)
	HandleJengaWebhook(ctx context.Context, request *requests.JengaWebhook) (string, error)
}

type PaymentGatewayService interface {
	IsMockMode() bool
	Authenticate(ctx context.Context) (string, error)
	Initiate(ctx context.Context, request *requests.GatewayPayment) (*responses.GatewayAcknowledgement, error)
	CheckStatus(ctx context.Context, reference string) (*responses.GatewayTransactionStatus, error)
	GetAccountBalance(ctx context.Context) (map[string]interface{}, error)
}
