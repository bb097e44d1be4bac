package payment_gateway

import (
	"context"
	"doctrack-service/internal/app/contracts"
	"doctrack-service/internal/pkg/constvars"
	"doctrack-service/internal/pkg/dto/requests"
	"doctrack-service/internal/pkg/dto/responses"
	"doctrack-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
)

// Settled mock transactions are forgotten once they are this old.
const mockTransactionRetention = time.Hour

type mockTransaction struct {
	transactionID string
	settleAt      time.Time
}

// mockService simulates the processor without network calls. A reference
// reports PENDING until Delay has elapsed on Clock since its initiation.
type mockService struct {
	Clock        clock.Clock
	Delay        time.Duration
	Log          *zap.Logger
	mu           sync.Mutex
	transactions map[string]mockTransaction
}

func NewMockService(clk clock.Clock, delay time.Duration, logger *zap.Logger) contracts.PaymentGatewayService {
	return &mockService{
		Clock:        clk,
		Delay:        delay,
		Log:          logger,
		transactions: make(map[string]mockTransaction),
	}
}

func (s *mockService) IsMockMode() bool {
	return true
}

func (s *mockService) Authenticate(ctx context.Context) (string, error) {
	return "mock-access-token", nil
}

func (s *mockService) Initiate(ctx context.Context, request *requests.GatewayPayment) (*responses.GatewayAcknowledgement, error) {
	transaction := mockTransaction{
		transactionID: utils.GenerateMockTransactionID(),
		settleAt:      s.Clock.Now().Add(s.Delay),
	}

	s.mu.Lock()
	s.pruneLocked()
	s.transactions[request.Reference] = transaction
	s.mu.Unlock()

	s.Log.Info("mockService.Initiate simulated remittance",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingPaymentReferenceKey, request.Reference),
		zap.String(constvars.LoggingTransactionIDKey, transaction.transactionID),
		zap.Bool(constvars.LoggingMockModeKey, true),
	)

	return &responses.GatewayAcknowledgement{
		TransactionID: transaction.transactionID,
		Reference:     request.Reference,
		Status:        constvars.JengaStatusPending,
		Message:       constvars.PaymentInitiatedSuccess,
	}, nil
}

func (s *mockService) CheckStatus(ctx context.Context, reference string) (*responses.GatewayTransactionStatus, error) {
	s.mu.Lock()
	s.pruneLocked()
	transaction, ok := s.transactions[reference]
	s.mu.Unlock()

	status := &responses.GatewayTransactionStatus{
		Reference:         reference,
		Status:            constvars.JengaStatusPending,
		TransactionStatus: constvars.JengaStatusPending,
	}
	if !ok {
		return status, nil
	}

	status.TransactionID = transaction.transactionID
	if !s.Clock.Now().Before(transaction.settleAt) {
		status.Status = constvars.JengaStatusSuccess
		status.TransactionStatus = constvars.JengaStatusSuccess
	}
	return status, nil
}

func (s *mockService) pruneLocked() {
	cutoff := s.Clock.Now().Add(-mockTransactionRetention)
	for reference, transaction := range s.transactions {
		if transaction.settleAt.Before(cutoff) {
			delete(s.transactions, reference)
		}
	}
}

func (s *mockService) GetAccountBalance(ctx context.Context) (map[string]interface{}, error) {
	return map[string]interface{}{
		"currency": constvars.JengaCurrencyCode,
		"balances": []map[string]interface{}{
			{"amount": "0.00", "type": "Available"},
		},
		"mock": true,
	}, nil
}
