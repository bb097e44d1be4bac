package payment_gateway

import (
	"context"
	"doctrack-service/internal/app/config"
	"doctrack-service/internal/pkg/constvars"
	"doctrack-service/internal/pkg/dto/requests"
	"doctrack-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeJenga struct {
	server        *httptest.Server
	tokenCalls    int32
	rejectAuth    bool
	rejectSubmit  bool
	lastSignature string
	lastBody      requests.JengaRemittance
	status        string
}

func newFakeJenga(t *testing.T) *fakeJenga {
	fake := &fakeJenga{status: "SUCCESS"}
	mux := http.NewServeMux()

	mux.HandleFunc("/identity/v2/token", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&fake.tokenCalls, 1)
		username, password, ok := r.BasicAuth()
		if fake.rejectAuth || !ok || username != "merchant-user" || password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"status":false,"code":401,"message":"invalid credentials"}`))
			return
		}
		w.Write([]byte(`{"accessToken":"access-token"}`))
	})

	mux.HandleFunc("/transaction/v2/remittance", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))
		assert.Equal(t, "api-key", r.Header.Get("Api-Key"))
		fake.lastSignature = r.Header.Get("Signature")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&fake.lastBody))

		if fake.rejectSubmit {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"status":false,"code":400,"message":"insufficient funds"}`))
			return
		}
		w.Write([]byte(`{"transactionId":"TX-1","status":"PENDING"}`))
	})

	mux.HandleFunc("/transaction/v2/remittance/APT12345678", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))
		w.Write([]byte(`{"transactionId":"TX-1","status":"` + fake.status + `"}`))
	})

	mux.HandleFunc("/account/v2/accounts/balances/KE/0011547896523", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"currency":"KES","balances":[{"amount":"997382.57","type":"Available"}]}`))
	})

	fake.server = httptest.NewServer(mux)
	t.Cleanup(fake.server.Close)
	return fake
}

func newTestJenga(baseURL string) *jengaService {
	mockClock := clock.NewMock()
	mockClock.Set(time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC))
	return NewJengaService(config.AppJenga{
		BaseUrl:                baseURL,
		Username:               "merchant-user",
		Password:               "secret",
		ApiKey:                 "api-key",
		AccountNumber:          "0011547896523",
		MerchantCode:           "0766000000",
		MerchantName:           "Tech Services",
		AirlineDestinationName: "Medical Services Ltd",
		RequestTimeoutInSecond: 5,
	}, mockClock, zap.NewNop()).(*jengaService)
}

func TestJengaService(t *testing.T) {
	ctx := context.Background()
	payment := &requests.GatewayPayment{
		Channel:       "merchant",
		PatientName:   "Jane Doe",
		PatientPhone:  "0722000000",
		Amount:        1500,
		Reference:     "APT12345678",
		AppointmentID: "6650f1c2a9e4b7d312345678",
	}

	t.Run("Merchant payment is signed and shaped for MerchantPay", func(t *testing.T) {
		fake := newFakeJenga(t)
		service := newTestJenga(fake.server.URL)

		ack, err := service.Initiate(ctx, payment)
		require.NoError(t, err)
		assert.Equal(t, "TX-1", ack.TransactionID)
		assert.Equal(t, "PENDING", ack.Status)
		assert.Equal(t, "APT12345678", ack.Reference)

		assert.Equal(t, "Foz8kEXbJpOKYjI28bsmePVHcWCZ65RDErTHlX4ckSQ=", fake.lastSignature)
		assert.Equal(t, "merchant", fake.lastBody.Destination.Type)
		assert.Equal(t, "0722000000", fake.lastBody.Destination.MobileNumber)
		assert.Equal(t, "0766000000", fake.lastBody.Destination.MerchantCode)
		assert.Equal(t, "MerchantPay", fake.lastBody.Transfer.Type)
		assert.Equal(t, "KES", fake.lastBody.Transfer.CurrencyCode)
		assert.Equal(t, "2025-05-10", fake.lastBody.Transfer.Date)
		assert.Equal(t, "Medical Appointment - Jane Doe - 6650f1c2a9e4b7d312345678", fake.lastBody.Transfer.Description)
	})

	t.Run("Airline payment settles to the fixed destination", func(t *testing.T) {
		fake := newFakeJenga(t)
		service := newTestJenga(fake.server.URL)

		airline := *payment
		airline.Channel = "airline"
		_, err := service.Initiate(ctx, &airline)
		require.NoError(t, err)

		assert.Equal(t, "airline", fake.lastBody.Destination.Type)
		assert.Equal(t, "Medical Services Ltd", fake.lastBody.Destination.Name)
		assert.Empty(t, fake.lastBody.Destination.MobileNumber)
		assert.Equal(t, "AirlinePay", fake.lastBody.Transfer.Type)
		assert.Equal(t, "Doctor Appointment Fee - Jane Doe", fake.lastBody.Transfer.Description)
	})

	t.Run("Each attempt authenticates again", func(t *testing.T) {
		fake := newFakeJenga(t)
		service := newTestJenga(fake.server.URL)

		_, err := service.Initiate(ctx, payment)
		require.NoError(t, err)
		_, err = service.Initiate(ctx, payment)
		require.NoError(t, err)
		assert.Equal(t, int32(2), atomic.LoadInt32(&fake.tokenCalls))
	})

	t.Run("Auth failure surfaces as a payment initiation error", func(t *testing.T) {
		fake := newFakeJenga(t)
		fake.rejectAuth = true
		service := newTestJenga(fake.server.URL)

		ack, err := service.Initiate(ctx, payment)
		assert.Nil(t, ack)
		require.Error(t, err)
		assert.Equal(t, constvars.ErrKindPaymentInitiation, exceptions.Kind(err))
		assert.Equal(t, constvars.ErrCodeGatewayAuth, exceptions.Code(err))
	})

	t.Run("Rejected submission carries the processor message", func(t *testing.T) {
		fake := newFakeJenga(t)
		fake.rejectSubmit = true
		service := newTestJenga(fake.server.URL)

		_, err := service.Initiate(ctx, payment)
		require.Error(t, err)
		assert.Equal(t, constvars.ErrKindPaymentInitiation, exceptions.Kind(err))
		assert.Equal(t, constvars.ErrCodeGatewaySubmit, exceptions.Code(err))
		assert.Contains(t, err.Error(), "insufficient funds")
	})

	t.Run("Status query returns the processor status", func(t *testing.T) {
		fake := newFakeJenga(t)
		service := newTestJenga(fake.server.URL)

		status, err := service.CheckStatus(ctx, "APT12345678")
		require.NoError(t, err)
		assert.Equal(t, "SUCCESS", status.Status)
		assert.Equal(t, "TX-1", status.TransactionID)
		assert.Equal(t, "APT12345678", status.Reference)
	})

	t.Run("Status query for an unknown reference fails", func(t *testing.T) {
		fake := newFakeJenga(t)
		service := newTestJenga(fake.server.URL)

		_, err := service.CheckStatus(ctx, "APT00000000")
		require.Error(t, err)
		assert.Equal(t, constvars.ErrCodeGatewayStatus, exceptions.Code(err))
	})

	t.Run("Account balance", func(t *testing.T) {
		fake := newFakeJenga(t)
		service := newTestJenga(fake.server.URL)

		balance, err := service.GetAccountBalance(ctx)
		require.NoError(t, err)
		assert.Equal(t, "KES", balance["currency"])
	})

	t.Run("Live client is never in mock mode", func(t *testing.T) {
		assert.False(t, newTestJenga("http://localhost").IsMockMode())
	})
}
